package templates

import (
	"html/template"

	"github.com/folioforge/portfolio-backend/models"
)

var businessTemplate = &portfolioTemplate{
	id:   models.TemplateBusiness,
	name: "Business Professional",
	defaults: Customizations{
		"primaryColor": "#1e3a5f",
		"accentColor":  "#c9a227",
		"fontFamily":   "Georgia, serif",
		"layout":       "two-column",
	},
	tmpl: template.Must(template.New(models.TemplateBusiness).Funcs(funcs).Parse(businessHTML)),
}

const businessHTML = `<div class="portfolio portfolio-business" style="font-family:{{.C.fontFamily}};--primary:{{.C.primaryColor}};--accent:{{.C.accentColor}}" data-layout="{{.C.layout}}">
{{- with .Model.PersonalInfo}}
  <header class="hero">
    <img class="avatar" src="{{.Avatar}}" alt="{{.FullName}}">
    <h1>{{.FullName}}</h1>
    <p class="title">{{.Title}}</p>
    {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
    <ul class="contact">
      <li>{{.Email}}</li>
      <li>{{.Phone}}</li>
      <li>{{.Location}}</li>
      <li class="availability">{{.Availability}}</li>
    </ul>
    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
    <nav class="social">
      {{if .SocialLinks.LinkedIn}}<a href="{{.SocialLinks.LinkedIn}}">LinkedIn</a>{{end}}
      {{if .SocialLinks.GitHub}}<a href="{{.SocialLinks.GitHub}}">GitHub</a>{{end}}
      {{if .SocialLinks.Website}}<a href="{{.SocialLinks.Website}}">Website</a>{{end}}
    </nav>
  </header>
{{- end}}
{{- if .Model.Experiences}}
  <section class="experience">
    <h2>Professional Experience</h2>
    {{range .Model.Experiences}}
    <article>
      <h3>{{.Role}} &mdash; {{.Company}}</h3>
      <p class="meta">{{.StartDate}} &ndash; {{.EndDate}}{{if .Location}} | {{.Location}}{{end}}{{if .EmploymentType}} | {{.EmploymentType}}{{end}}</p>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .Technologies}}<p class="tech">{{join .Technologies ", "}}</p>{{end}}
      {{if .Achievements}}<ul class="achievements">{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Education}}
  <section class="education">
    <h2>Education</h2>
    {{range .Model.Education}}
    <article>
      <h3>{{.Degree}}{{if .FieldOfStudy}}, {{.FieldOfStudy}}{{end}}</h3>
      <p class="meta">{{.Institution}} | {{.StartDate}} &ndash; {{.EndDate}}{{if .GPA}} | GPA {{.GPA}}{{end}}</p>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .Honors}}<p class="honors">{{join .Honors ", "}}</p>{{end}}
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Skills}}
  <section class="skills">
    <h2>Core Competencies</h2>
    {{range .Model.Skills}}<div class="group"><h3>{{.Category}}</h3><p>{{join .Items ", "}}</p></div>{{end}}
  </section>
{{- end}}
{{- if .Model.Projects}}
  <section class="projects">
    <h2>Selected Projects</h2>
    {{range .Model.Projects}}
    <article{{if .Featured}} class="featured"{{end}}>
      <h3>{{.Title}}</h3>
      {{range .Description}}<p>{{.}}</p>{{end}}
      <p class="meta">{{.Status}}{{if .Duration}} | {{.Duration}}{{end}} | {{.Category}}</p>
      {{if .Technologies}}<p class="tech">{{join .Technologies ", "}}</p>{{end}}
      <p class="links"><a href="{{.LiveURL}}">Live</a> <a href="{{.GithubURL}}">Source</a></p>
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Services}}
  <section class="services">
    <h2>Services</h2>
    {{range .Model.Services}}<article><h3>{{.Title}}</h3>{{range .Description}}<p>{{.}}</p>{{end}}{{if .Price}}<p class="price">{{.Price}}</p>{{end}}</article>{{end}}
  </section>
{{- end}}
{{- if .Model.Certifications}}
  <section class="certifications">
    <h2>Certifications</h2>
    <ul>{{range .Model.Certifications}}<li>{{.Name}} &mdash; {{.Issuer}}{{if .Date}} ({{.Date}}){{end}}</li>{{end}}</ul>
  </section>
{{- end}}
{{- if .Model.Languages}}
  <section class="languages">
    <h2>Languages</h2>
    <ul>{{range .Model.Languages}}<li>{{.Name}} &mdash; {{.Proficiency}}</li>{{end}}</ul>
  </section>
{{- end}}
{{- if .Model.Research}}
  <section class="research">
    <h2>Research &amp; Publications</h2>
    {{range .Model.Research}}
    <article>
      <h3>{{.Title}}</h3>
      <p class="meta">{{.Publication}}{{if .Year}} ({{.Year}}){{end}} | {{.Status}}</p>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .CoAuthors}}<p class="coauthors">With {{join .CoAuthors ", "}}</p>{{end}}
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Achievements}}
  <section class="achievements">
    <h2>Achievements</h2>
    {{range .Model.Achievements}}<article><h3>{{.Title}}</h3>{{range .Description}}<p>{{.}}</p>{{end}}{{if .Date}}<p class="meta">{{.Date}}</p>{{end}}</article>{{end}}
  </section>
{{- end}}
</div>`
