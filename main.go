package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"relief-engine/internal/assembler"
	"relief-engine/internal/catalog"
	"relief-engine/internal/engine"
	"relief-engine/internal/handler"
	"relief-engine/internal/policy"
	"relief-engine/internal/template"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	policies := policy.Load()
	cat := catalog.New()
	registry := template.NewRegistry()
	processor := template.NewProcessor(template.Config{
		Salt:   os.Getenv("TEMPLATE_CACHE_SALT"),
		Logger: logger,
	})

	eng := engine.New(cat, policies)
	asm := assembler.New(registry, processor, policies)
	api := handler.New(eng, asm, registry, logger)

	logger.Info("relief engine starting", zap.String("port", port))
	if err := fasthttp.ListenAndServe(":"+port, api.Handle); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
