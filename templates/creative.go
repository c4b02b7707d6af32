package templates

import (
	"html/template"

	"github.com/folioforge/portfolio-backend/models"
)

var creativeTemplate = &portfolioTemplate{
	id:   models.TemplateCreative,
	name: "Creative Portfolio",
	defaults: Customizations{
		"primaryColor": "#7c3aed",
		"accentColor":  "#f472b6",
		"fontFamily":   "Poppins, sans-serif",
		"layout":       "mosaic",
	},
	tmpl: template.Must(template.New(models.TemplateCreative).Funcs(funcs).Parse(creativeHTML)),
}

// Creative is image-forward: big hero, project mosaic with media, the rest
// condensed into a closing strip.
const creativeHTML = `<div class="portfolio portfolio-creative" style="font-family:{{.C.fontFamily}};--primary:{{.C.primaryColor}};--accent:{{.C.accentColor}}" data-layout="{{.C.layout}}">
{{- with .Model.PersonalInfo}}
  <header class="hero full-bleed">
    <img class="avatar-large" src="{{.Avatar}}" alt="{{.FullName}}">
    <h1 class="display">{{.FullName}}</h1>
    {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{else}}<p class="tagline">{{.Title}}</p>{{end}}
    {{if .Bio}}<p class="bio">{{.Bio}}</p>{{end}}
    <p class="reach-me">{{.Email}}{{if .SocialLinks.Website}} &middot; <a href="{{.SocialLinks.Website}}">{{.SocialLinks.Website}}</a>{{end}}</p>
  </header>
{{- end}}
{{- if .Model.Projects}}
  <section class="mosaic">
    {{range .Model.Projects}}
    <figure class="tile{{if .Featured}} tile-wide{{end}}">
      <img src="{{.Image}}" alt="{{.Title}}">
      <figcaption>
        <h3>{{.Title}}</h3>
        {{range .Description}}<p>{{.}}</p>{{end}}
        {{if .DemoVideo}}<a class="video" href="{{.DemoVideo}}">Watch demo</a>{{end}}
        <a href="{{.LiveURL}}">View</a>
      </figcaption>
    </figure>
    {{end}}
  </section>
{{- end}}
{{- if .Model.Services}}
  <section class="services strip">
    <h2>Let's Work Together</h2>
    {{range .Model.Services}}<article><h3>{{.Title}}</h3>{{range .Description}}<p>{{.}}</p>{{end}}{{if .Price}}<p class="price">from {{.Price}}</p>{{end}}</article>{{end}}
  </section>
{{- end}}
{{- if .Model.Skills}}
  <section class="skills strip">
    {{range .Model.Skills}}<div><h3>{{.Category}}</h3><p>{{join .Items " / "}}</p></div>{{end}}
  </section>
{{- end}}
{{- if .Model.Experiences}}
  <section class="journey">
    <h2>The Journey</h2>
    {{range .Model.Experiences}}<article><h3>{{.Role}}</h3><p class="where">{{.Company}} &middot; {{.StartDate}}&ndash;{{.EndDate}}</p>{{range .Description}}<p>{{.}}</p>{{end}}</article>{{end}}
  </section>
{{- end}}
{{- if .Model.Education}}
  <section class="footnotes"><h2>Studies</h2><ul>{{range .Model.Education}}<li>{{.Degree}}, {{.Institution}} ({{.EndDate}})</li>{{end}}</ul></section>
{{- end}}
{{- if .Model.Achievements}}
  <section class="footnotes"><h2>Recognition</h2><ul>{{range .Model.Achievements}}<li>{{.Title}}{{if .Date}} &middot; {{.Date}}{{end}}</li>{{end}}</ul></section>
{{- end}}
{{- if .Model.Certifications}}
  <section class="footnotes"><h2>Certified</h2><ul>{{range .Model.Certifications}}<li>{{.Name}} ({{.Issuer}})</li>{{end}}</ul></section>
{{- end}}
{{- if .Model.Languages}}
  <section class="footnotes"><h2>Languages</h2><ul>{{range .Model.Languages}}<li>{{.Name}} &ndash; {{.Proficiency}}</li>{{end}}</ul></section>
{{- end}}
{{- if .Model.Research}}
  <section class="footnotes"><h2>Writing &amp; Research</h2><ul>{{range .Model.Research}}<li><a href="{{.Link}}">{{.Title}}</a>, {{.Publication}}</li>{{end}}</ul></section>
{{- end}}
</div>`
