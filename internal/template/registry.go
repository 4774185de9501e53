package template

import (
	"fmt"

	"relief-engine/internal/model"
)

// ErrTemplateNotFound is the hard failure for unknown template ids; its
// text carries the stable code.
var ErrTemplateNotFound = fmt.Errorf("%s: no such template", model.CodeTemplateNotFound)

// Registry maps template ids to document templates. Populated at startup,
// read-only afterward, so lookups need no synchronization.
type Registry struct {
	templates map[string]*model.DocumentTemplate
	order     []string
}

// NewRegistry returns a registry preloaded with the built-in templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]*model.DocumentTemplate)}
	for _, t := range builtinTemplates() {
		r.Register(t)
	}
	return r
}

// NewRegistryWith returns a registry holding only the given templates,
// for tests and deployments that load a custom template set.
func NewRegistryWith(templates ...*model.DocumentTemplate) *Registry {
	r := &Registry{templates: make(map[string]*model.DocumentTemplate)}
	for _, t := range templates {
		r.Register(t)
	}
	return r
}

// Register adds a template. Later registrations with the same id replace
// earlier ones; intended for startup only.
func (r *Registry) Register(t *model.DocumentTemplate) {
	if _, exists := r.templates[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.templates[t.ID] = t
}

// Get returns the template for an id, or ErrTemplateNotFound.
func (r *Registry) Get(id string) (*model.DocumentTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return t, nil
}

// GetByType returns the first registered template of the given document
// type, or ErrTemplateNotFound.
func (r *Registry) GetByType(documentType string) (*model.DocumentTemplate, error) {
	for _, id := range r.order {
		if r.templates[id].DocumentType == documentType {
			return r.templates[id], nil
		}
	}
	return nil, fmt.Errorf("%w: document type %q", ErrTemplateNotFound, documentType)
}

// List returns all templates in registration order.
func (r *Registry) List() []*model.DocumentTemplate {
	out := make([]*model.DocumentTemplate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out
}
