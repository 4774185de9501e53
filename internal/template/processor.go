// Package template renders filing documents from a whitelisted
// mini-language: {{dotted.path}} variables and {{#if path OP literal}}
// blocks. Rendering always completes; security violations substitute a
// placeholder and record an event instead of aborting.
package template

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"relief-engine/internal/model"
)

// convictionPetitionTypes are document types that petition on a conviction
// and therefore always warrant attorney review.
var convictionPetitionTypes = map[string]bool{
	model.DocExpungementPetition: true,
	model.DocSealingMotion:       true,
}

// Config parameterizes a Processor. Zero values take defaults.
type Config struct {
	// Salt mixes into every cache key so deployments do not share key
	// spaces. Required in production; defaults to a random value.
	Salt          string
	CacheSize     int
	CacheTTL      time.Duration
	TimeBucket    time.Duration
	EventCapacity int
	MaxFieldLen   int
	Logger        *zap.Logger
	Now           func() time.Time
}

type Processor struct {
	cache    *Cache
	recorder *Recorder
	salt     string
	bucket   time.Duration
	maxField int
	now      func() time.Time
}

// NewProcessor builds a processor from cfg.
func NewProcessor(cfg Config) *Processor {
	if cfg.Salt == "" {
		cfg.Salt = uuid.New().String()
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 100
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.TimeBucket <= 0 {
		cfg.TimeBucket = 5 * time.Minute
	}
	if cfg.MaxFieldLen <= 0 {
		cfg.MaxFieldLen = 500
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Processor{
		cache:    NewCache(cfg.CacheSize, cfg.CacheTTL),
		recorder: NewRecorder(cfg.EventCapacity, cfg.Logger),
		salt:     cfg.Salt,
		bucket:   cfg.TimeBucket,
		maxField: cfg.MaxFieldLen,
		now:      cfg.Now,
	}
}

// Recorder exposes the security-event log.
func (p *Processor) Recorder() *Recorder { return p.recorder }

// Cache exposes the generation cache, mainly for tests and metrics.
func (p *Processor) Cache() *Cache { return p.cache }

// Render interprets the template against the context and returns the
// rendered text. It never fails: blocked paths become placeholders and
// broken conditionals are omitted.
func (p *Processor) Render(tpl *model.DocumentTemplate, ctx *Context) string {
	var b strings.Builder
	p.renderNodes(Parse(tpl.Template), tpl, ctx, &b)
	return b.String()
}

func (p *Processor) renderNodes(nodes []Node, tpl *model.DocumentTemplate, ctx *Context, b *strings.Builder) {
	for _, n := range nodes {
		switch node := n.(type) {
		case Literal:
			b.WriteString(node.Text)
		case Variable:
			b.WriteString(p.resolveVariable(tpl, node.Path, ctx))
		case Conditional:
			if p.evalCondition(tpl, node, ctx) {
				p.renderNodes(node.Body, tpl, ctx, b)
			}
		}
	}
}

func (p *Processor) resolveVariable(tpl *model.DocumentTemplate, path string, ctx *Context) string {
	if pat, bad := blockedPattern(path); bad {
		p.recorder.Record(SecurityEvent{
			Time: p.now(), Kind: EventBlockedPattern, TemplateID: tpl.ID,
			Path: path, Detail: "pattern in path: " + pat,
		})
		return BlockedPlaceholder
	}
	if !Allowed(path) {
		p.recorder.Record(SecurityEvent{
			Time: p.now(), Kind: EventBlockedVariable, TemplateID: tpl.ID,
			Path: path, Detail: "path not in whitelist",
		})
		return BlockedPlaceholder
	}
	val, ok := ctx.Resolve(path)
	if !ok {
		return ""
	}
	if pat, bad := blockedPattern(val); bad {
		p.recorder.Record(SecurityEvent{
			Time: p.now(), Kind: EventBlockedPattern, TemplateID: tpl.ID,
			Path: path, Detail: "pattern in value: " + pat,
		})
		return BlockedPlaceholder
	}
	return sanitizeValue(val, p.maxField)
}

// evalCondition resolves the condition path and compares. Unparsable
// conditions, non-whitelisted paths, and missing values all evaluate
// false, omitting the block rather than breaking the document.
func (p *Processor) evalCondition(tpl *model.DocumentTemplate, cond Conditional, ctx *Context) bool {
	if !cond.Parsed {
		return false
	}
	if !Allowed(cond.Path) {
		p.recorder.Record(SecurityEvent{
			Time: p.now(), Kind: EventBlockedVariable, TemplateID: tpl.ID,
			Path: cond.Path, Detail: "condition path not in whitelist",
		})
		return false
	}
	val, ok := ctx.Resolve(cond.Path)
	if !ok {
		return false
	}

	equal := val == cond.Literal
	switch cond.Op {
	case "==", "===":
		return equal
	case "!=", "!==":
		return !equal
	}
	return false
}

// ValidationResult reports template problems as leveled messages. Valid is
// false only on critical findings.
type ValidationResult struct {
	Valid    bool            `json:"valid"`
	Messages []model.Message `json:"messages"`
}

// Validate checks a template before registration: every referenced path
// must be whitelisted, the source must be free of blocked patterns, and
// every declared required field must actually appear in the template.
func (p *Processor) Validate(tpl *model.DocumentTemplate) ValidationResult {
	var msgs []model.Message
	critical := false

	paths := map[string]bool{}
	collectPaths(Parse(tpl.Template), paths)

	for path := range paths {
		if !Allowed(path) {
			msgs = append(msgs, model.Message{
				Level: model.LevelWarning, Code: model.CodeBlockedVariable,
				Message: fmt.Sprintf("path %q is not whitelisted and will render as %s", path, BlockedPlaceholder),
			})
		}
	}

	if pat, bad := blockedPattern(tpl.Template); bad {
		critical = true
		msgs = append(msgs, model.Message{
			Level: model.LevelCritical, Code: model.CodeBlockedPattern,
			Message: fmt.Sprintf("template source contains blocked pattern %q", pat),
		})
	}

	for _, f := range tpl.RequiredFields {
		if f.Required && !paths[f.Path] {
			critical = true
			msgs = append(msgs, model.Message{
				Level: model.LevelCritical, Code: model.CodeMissingRequiredField,
				Message: fmt.Sprintf("required field %q does not appear in the template", f.Path),
			})
		}
	}

	for i := range msgs {
		msgs[i].ID = i
	}
	return ValidationResult{Valid: !critical, Messages: msgs}
}

func collectPaths(nodes []Node, out map[string]bool) {
	for _, n := range nodes {
		switch node := n.(type) {
		case Variable:
			out[node.Path] = true
		case Conditional:
			if node.Parsed {
				out[node.Path] = true
			}
			collectPaths(node.Body, out)
		}
	}
}

// Generate renders a template into a GeneratedDocument, serving repeat
// requests from the cache. Failures are all-or-nothing: no partial output.
func (p *Processor) Generate(tpl *model.DocumentTemplate, ctx *Context, c *model.UserCase, custom map[string]string) (doc *model.GeneratedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%s: rendering %s: %v", model.CodeDocumentGenerationError, tpl.ID, r)
		}
	}()

	key := p.cacheKey(tpl.ID, c.ID, custom)
	content, cached := p.cache.Get(key)
	if !cached {
		content = p.Render(tpl, ctx)
		p.cache.Set(key, content)
	}

	now := p.now().UTC()
	return &model.GeneratedDocument{
		ID:           uuid.New().String(),
		TemplateID:   tpl.ID,
		DocumentType: tpl.DocumentType,
		Title:        tpl.Name,
		Content:      content,
		HTMLContent:  toHTML(content),
		Metadata: model.DocumentMetadata{
			Jurisdiction:           c.Jurisdiction,
			CaseID:                 c.ID,
			AttorneyReviewRequired: attorneyReviewRequired(tpl.DocumentType, c.Offense),
		},
		Status:    model.DocStatusGenerated,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

type cacheKeyPayload struct {
	TemplateID string            `json:"template_id"`
	CaseID     string            `json:"case_id"`
	Custom     map[string]string `json:"custom"`
	Bucket     int64             `json:"bucket"`
}

// cacheKey is a salted hash over template, case, custom fields, and a
// time bucket; the bucket bounds cache lifetime without explicit
// invalidation.
func (p *Processor) cacheKey(templateID, caseID string, custom map[string]string) string {
	payload, _ := json.Marshal(cacheKeyPayload{
		TemplateID: templateID,
		CaseID:     caseID,
		Custom:     custom,
		Bucket:     p.now().Unix() / int64(p.bucket/time.Second),
	})
	h := sha256.New()
	h.Write([]byte(p.salt))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// attorneyReviewRequired flags documents that warrant a lawyer's eyes:
// conviction-based petitions, and anything involving a felony. The flag is
// metadata only, never a gate on generation.
func attorneyReviewRequired(documentType, offense string) bool {
	if convictionPetitionTypes[documentType] {
		return true
	}
	return strings.Contains(strings.ToLower(offense), "felony")
}

func toHTML(content string) string {
	var b strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
		b.WriteString("</p>\n")
	}
	return b.String()
}
