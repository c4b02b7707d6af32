package templates

import (
	"html/template"

	"github.com/folioforge/portfolio-backend/models"
)

var minimalTemplate = &portfolioTemplate{
	id:   models.TemplateMinimal,
	name: "Minimal Clean",
	defaults: Customizations{
		"primaryColor": "#111111",
		"accentColor":  "#666666",
		"fontFamily":   "Helvetica, Arial, sans-serif",
		"layout":       "single-column",
	},
	tmpl: template.Must(template.New(models.TemplateMinimal).Funcs(funcs).Parse(minimalHTML)),
}

// Minimal skips imagery entirely: plain type, thin rules, nothing else.
const minimalHTML = `<div class="portfolio portfolio-minimal" style="font-family:{{.C.fontFamily}};--primary:{{.C.primaryColor}};--accent:{{.C.accentColor}}" data-layout="{{.C.layout}}">
{{- with .Model.PersonalInfo}}
  <header>
    <h1>{{.FullName}}</h1>
    <p>{{.Title}}</p>
    <p class="contact">{{.Email}} / {{.Phone}} / {{.Location}}</p>
    {{if .Bio}}<p class="summary">{{.Bio}}</p>{{end}}
  </header>
  <hr>
{{- end}}
{{- if .Model.Experiences}}
  <section>
    <h2>Experience</h2>
    {{range .Model.Experiences}}
    <article>
      <p class="line"><strong>{{.Role}}</strong>, {{.Company}} <span class="dates">{{.StartDate}}&ndash;{{.EndDate}}</span></p>
      {{range .Description}}<p>{{.}}</p>{{end}}
    </article>
    {{end}}
  </section>
  <hr>
{{- end}}
{{- if .Model.Education}}
  <section>
    <h2>Education</h2>
    {{range .Model.Education}}<p class="line"><strong>{{.Degree}}</strong>, {{.Institution}} <span class="dates">{{.StartDate}}&ndash;{{.EndDate}}</span></p>{{end}}
  </section>
  <hr>
{{- end}}
{{- if .Model.Skills}}
  <section>
    <h2>Skills</h2>
    {{range .Model.Skills}}<p class="line"><strong>{{.Category}}:</strong> {{join .Items ", "}}</p>{{end}}
  </section>
  <hr>
{{- end}}
{{- if .Model.Projects}}
  <section>
    <h2>Projects</h2>
    {{range .Model.Projects}}
    <article>
      <p class="line"><strong>{{.Title}}</strong>{{if .Duration}} <span class="dates">{{.Duration}}</span>{{end}}</p>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .Technologies}}<p class="tech">{{join .Technologies ", "}}</p>{{end}}
    </article>
    {{end}}
  </section>
  <hr>
{{- end}}
{{- if .Model.Services}}
  <section><h2>Services</h2>{{range .Model.Services}}<p class="line"><strong>{{.Title}}</strong>{{range .Description}} {{.}}{{end}}</p>{{end}}</section>
  <hr>
{{- end}}
{{- if .Model.Certifications}}
  <section><h2>Certifications</h2>{{range .Model.Certifications}}<p class="line">{{.Name}}, {{.Issuer}}{{if .Date}} ({{.Date}}){{end}}</p>{{end}}</section>
  <hr>
{{- end}}
{{- if .Model.Languages}}
  <section><h2>Languages</h2>{{range .Model.Languages}}<p class="line">{{.Name}} &ndash; {{.Proficiency}}</p>{{end}}</section>
  <hr>
{{- end}}
{{- if .Model.Research}}
  <section><h2>Publications</h2>{{range .Model.Research}}<p class="line">{{.Title}}, {{.Publication}}{{if .Year}} ({{.Year}}){{end}}</p>{{end}}</section>
  <hr>
{{- end}}
{{- if .Model.Achievements}}
  <section><h2>Achievements</h2>{{range .Model.Achievements}}<p class="line">{{.Title}}{{if .Date}} ({{.Date}}){{end}}</p>{{end}}</section>
{{- end}}
</div>`
