// Package templates holds the four interchangeable portfolio renderers.
// Every renderer consumes the same canonical render model; they differ only
// in presentation. Rendering is pure: model plus customization overrides in,
// HTML fragment out.
package templates

import (
	"html/template"
	"io"
	"strings"

	"github.com/folioforge/portfolio-backend/models"
)

// Customizations is the override bag merged over a template's defaults:
// color tokens, font family, layout flags. Unknown keys are carried through
// untouched so templates can grow options without code changes here.
type Customizations map[string]string

type Renderer interface {
	ID() string
	Name() string
	Render(w io.Writer, model *models.RenderModel, overrides Customizations) error
}

type portfolioTemplate struct {
	id       string
	name     string
	tmpl     *template.Template
	defaults Customizations
}

func (p *portfolioTemplate) ID() string   { return p.id }
func (p *portfolioTemplate) Name() string { return p.name }

func (p *portfolioTemplate) Render(w io.Writer, model *models.RenderModel, overrides Customizations) error {
	if model == nil {
		return emptyState.Execute(w, nil)
	}
	return p.tmpl.Execute(w, renderContext{
		Model: model,
		C:     p.merge(overrides),
	})
}

// merge lays overrides over the template defaults; unspecified keys keep
// their default value.
func (p *portfolioTemplate) merge(overrides Customizations) Customizations {
	merged := make(Customizations, len(p.defaults)+len(overrides))
	for k, v := range p.defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

type renderContext struct {
	Model *models.RenderModel
	C     Customizations
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

// emptyState is shown when there is no portfolio data at all.
var emptyState = template.Must(template.New("empty").Parse(
	`<div class="portfolio-empty"><p>Nothing to preview yet. Add your details in the builder to see your portfolio here.</p></div>`))

var registryOrder = []string{
	models.TemplateBusiness,
	models.TemplateModern,
	models.TemplateCreative,
	models.TemplateMinimal,
}

var registry = map[string]*portfolioTemplate{
	models.TemplateBusiness: businessTemplate,
	models.TemplateModern:   modernTemplate,
	models.TemplateCreative: creativeTemplate,
	models.TemplateMinimal:  minimalTemplate,
}

// Get returns the renderer for a template id.
func Get(id string) (Renderer, bool) {
	t, ok := registry[id]
	return t, ok
}

// Default is the renderer used when a record selects nothing valid.
func Default() Renderer {
	return registry[models.TemplateBusiness]
}

// IDs lists the available template ids in display order.
func IDs() []string {
	out := make([]string, len(registryOrder))
	copy(out, registryOrder)
	return out
}
