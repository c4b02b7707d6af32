package templates

import (
	"html/template"

	"github.com/folioforge/portfolio-backend/models"
)

var modernTemplate = &portfolioTemplate{
	id:   models.TemplateModern,
	name: "Modern Professional",
	defaults: Customizations{
		"primaryColor": "#2563eb",
		"accentColor":  "#0ea5e9",
		"fontFamily":   "Inter, sans-serif",
		"layout":       "stacked",
	},
	tmpl: template.Must(template.New(models.TemplateModern).Funcs(funcs).Parse(modernHTML)),
}

// Modern leads with the work: projects before experience, skill pills,
// compact metadata rows.
const modernHTML = `<div class="portfolio portfolio-modern" style="font-family:{{.C.fontFamily}};--primary:{{.C.primaryColor}};--accent:{{.C.accentColor}}" data-layout="{{.C.layout}}">
{{- with .Model.PersonalInfo}}
  <header class="intro">
    <div class="identity">
      <h1>{{.FullName}}</h1>
      <p class="title">{{.Title}}{{if .Specialization}} &middot; {{.Specialization}}{{end}}</p>
      {{if .YearsExperience}}<span class="badge">{{.YearsExperience}} yrs</span>{{end}}
      <span class="badge availability">{{.Availability}}</span>
    </div>
    <img class="avatar" src="{{.Avatar}}" alt="{{.FullName}}">
    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
    <p class="contact">{{.Email}} &middot; {{.Phone}} &middot; {{.Location}}</p>
    <nav class="social">
      {{if .SocialLinks.GitHub}}<a href="{{.SocialLinks.GitHub}}">GitHub</a>{{end}}
      {{if .SocialLinks.LinkedIn}}<a href="{{.SocialLinks.LinkedIn}}">LinkedIn</a>{{end}}
      {{if .SocialLinks.Twitter}}<a href="{{.SocialLinks.Twitter}}">Twitter</a>{{end}}
      {{if .SocialLinks.YouTube}}<a href="{{.SocialLinks.YouTube}}">YouTube</a>{{end}}
    </nav>
  </header>
{{- end}}
{{- if .Model.Projects}}
  <section class="projects grid">
    <h2>Projects</h2>
    {{range .Model.Projects}}
    <article class="card{{if .Featured}} featured{{end}}">
      <img src="{{.Image}}" alt="{{.Title}}">
      <h3>{{.Title}}</h3>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .Technologies}}<div class="pills">{{range .Technologies}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}
      <p class="links"><a href="{{.LiveURL}}">Demo</a> <a href="{{.GithubURL}}">Code</a></p>
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Skills}}
  <section class="skills">
    <h2>Skills</h2>
    {{range .Model.Skills}}<div class="group"><h3>{{.Category}}</h3><div class="pills">{{range .Items}}<span class="pill">{{.}}</span>{{end}}</div></div>{{end}}
  </section>
{{- end}}
{{- if .Model.Experiences}}
  <section class="timeline">
    <h2>Experience</h2>
    {{range .Model.Experiences}}
    <article class="entry">
      <span class="period">{{.StartDate}} &ndash; {{.EndDate}}</span>
      <h3>{{.Role}} @ {{.Company}}</h3>
      {{range .Description}}<p>{{.}}</p>{{end}}
      {{if .Technologies}}<div class="pills">{{range .Technologies}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}
    </article>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Education}}
  <section class="education">
    <h2>Education</h2>
    {{range .Model.Education}}<article class="entry"><span class="period">{{.StartDate}} &ndash; {{.EndDate}}</span><h3>{{.Degree}}</h3><p>{{.Institution}}</p>{{range .Description}}<p>{{.}}</p>{{end}}</article>{{end}}
  </section>
{{- end}}
{{- if .Model.Services}}
  <section class="services grid">
    <h2>What I Do</h2>
    {{range .Model.Services}}<article class="card"><h3>{{.Title}}</h3>{{range .Description}}<p>{{.}}</p>{{end}}{{if .Features}}<ul>{{range .Features}}<li>{{.}}</li>{{end}}</ul>{{end}}</article>{{end}}
  </section>
{{- end}}
{{- if .Model.Certifications}}
  <section class="certifications"><h2>Certifications</h2><ul>{{range .Model.Certifications}}<li>{{.Name}} &middot; {{.Issuer}}</li>{{end}}</ul></section>
{{- end}}
{{- if .Model.Languages}}
  <section class="languages"><h2>Languages</h2><div class="pills">{{range .Model.Languages}}<span class="pill">{{.Name}} ({{.Proficiency}})</span>{{end}}</div></section>
{{- end}}
{{- if .Model.Research}}
  <section class="research"><h2>Research</h2>{{range .Model.Research}}<article><h3>{{.Title}}</h3><p class="meta">{{.Publication}} {{.Year}}</p>{{range .Description}}<p>{{.}}</p>{{end}}</article>{{end}}</section>
{{- end}}
{{- if .Model.Achievements}}
  <section class="achievements"><h2>Highlights</h2>{{range .Model.Achievements}}<article><h3>{{.Title}}</h3>{{range .Description}}<p>{{.}}</p>{{end}}</article>{{end}}</section>
{{- end}}
</div>`
