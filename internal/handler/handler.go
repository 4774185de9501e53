package handler

import (
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"relief-engine/internal/assembler"
	"relief-engine/internal/engine"
	"relief-engine/internal/model"
	"relief-engine/internal/template"
)

// API is the HTTP boundary around the engine and assembler. The core is
// pure and synchronous; the handler only decodes, delegates, and encodes.
type API struct {
	engine    *engine.Engine
	assembler *assembler.Assembler
	registry  *template.Registry
	log       *zap.Logger
}

func New(eng *engine.Engine, asm *assembler.Assembler, reg *template.Registry, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{engine: eng, assembler: asm, registry: reg, log: log}
}

// Handle routes all requests.
func (a *API) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/v1/assess":
		a.handleAssess(ctx)
	case "/v1/documents/package":
		a.handlePackage(ctx)
	case "/v1/templates":
		a.handleTemplates(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", "Not found")
	}
}

func (a *API) handleAssess(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	var req model.AssessmentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "Invalid request body: "+err.Error())
		return
	}

	resp := a.engine.Process(&req)
	a.log.Info("assessment completed",
		zap.String("assessment_id", resp.Metadata.AssessmentID),
		zap.String("outcome", resp.Metadata.AssessmentOutcome),
		zap.Int64("duration_ms", resp.Metadata.AssessmentDurationMs),
	)
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (a *API) handlePackage(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	var req model.PackageRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	pkg, err := a.assembler.GeneratePackage(&req.UserCase, &req.AdditionalFactors, &req.PersonalInfo, req.CustomFields)
	if err != nil {
		a.log.Warn("package generation failed", zap.Error(err))
		status := fasthttp.StatusUnprocessableEntity
		code := model.CodePackageGenerationError
		if errors.Is(err, template.ErrTemplateNotFound) {
			code = model.CodeTemplateNotFound
		}
		writeError(ctx, status, code, err.Error())
		return
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	writeJSON(ctx, fasthttp.StatusOK, model.PackageResponse{
		Metadata: model.AssessmentMetadata{
			AssessmentID:          uuid.New().String(),
			Jurisdiction:          req.UserCase.Jurisdiction,
			AssessmentStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			AssessmentCompletedAt: now.Format(time.RFC3339),
			AssessmentDurationMs:  elapsed.Milliseconds(),
			AssessmentOutcome:     model.OutcomeSuccess,
		},
		Package: *pkg,
	})
}

func (a *API) handleTemplates(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, a.registry.List())
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Code: code, Message: message})
}
