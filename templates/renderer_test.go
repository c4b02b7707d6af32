package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/models"
)

func fullModel() *models.RenderModel {
	return &models.RenderModel{
		PersonalInfo: &models.PersonalInfo{
			FullName: "Jane Doe",
			Title:    "Platform Engineer",
			Email:    "jane@example.com",
			Phone:    "+1 (555) 000-1111",
			Location: "Lisbon",
			Bio:      "Building resilient systems.",
			Avatar:   "https://example.com/jane.png",
		},
		Experiences: []models.Experience{{
			ID: "1", Role: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "Present",
			Description: []string{"Owned the deploy pipeline."},
		}},
		Education: []models.Education{{
			ID: "2", Degree: "BSc Computer Science", Institution: "IST", StartDate: "2014", EndDate: "2018",
		}},
		Projects: []models.Project{{
			ID: "3", Title: "Orchestrator", Description: []string{"Schedules batch jobs."},
			Technologies: []string{"Go", "Redis"}, Image: "https://example.com/p.png", LiveURL: "#",
		}},
		Skills:         []models.SkillGroup{{Category: "Backend", Items: []string{"Go", "Postgres"}}},
		Services:       []models.Service{{ID: "4", Title: "Consulting", Description: []string{"Architecture reviews."}}},
		Certifications: []models.Certification{{ID: "5", Name: "CKA", Issuer: "CNCF", Date: "2023"}},
		Languages:      []models.Language{{ID: "6", Name: "Portuguese", Proficiency: "Native"}},
		Research:       []models.Research{{ID: "7", Title: "Consensus at the Edge", Publication: "SysConf", Year: "2022"}},
		Achievements:   []models.Achievement{{ID: "8", Title: "Hackathon Winner", Date: "2021"}},
	}
}

func TestRegistryCoversEveryTemplateID(t *testing.T) {
	ids := IDs()
	require.Equal(t, []string{
		models.TemplateBusiness,
		models.TemplateModern,
		models.TemplateCreative,
		models.TemplateMinimal,
	}, ids)
	for _, id := range ids {
		r, ok := Get(id)
		require.True(t, ok, id)
		require.Equal(t, id, r.ID())
		require.NotEmpty(t, r.Name())
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	_, ok := Get("brutalist")
	require.False(t, ok)
}

func TestDefaultIsBusiness(t *testing.T) {
	require.Equal(t, models.TemplateBusiness, Default().ID())
}

func TestRenderFullModelAllTemplates(t *testing.T) {
	model := fullModel()
	for _, id := range IDs() {
		r, _ := Get(id)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, model, nil), id)
		html := buf.String()
		require.Contains(t, html, "Jane Doe", id)
		require.Contains(t, html, "Acme", id)
		require.Contains(t, html, "Orchestrator", id)
		require.Contains(t, html, "CKA", id)
		// ZgotmplZ means html/template rejected a default value.
		require.NotContains(t, html, "ZgotmplZ", id)
	}
}

func TestRenderNilModelShowsEmptyState(t *testing.T) {
	for _, id := range IDs() {
		r, _ := Get(id)
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, nil, Customizations{"primaryColor": "#000"}))
		require.Contains(t, buf.String(), "portfolio-empty", id)
	}
}

func TestCustomizationOverridesMergeOverDefaults(t *testing.T) {
	r, _ := Get(models.TemplateMinimal)
	var buf bytes.Buffer
	err := r.Render(&buf, fullModel(), Customizations{
		"primaryColor": "#ff0000",
		"accentColor":  "", // empty keeps the default
	})
	require.NoError(t, err)
	html := buf.String()
	require.Contains(t, html, "#ff0000")
	require.Contains(t, html, "#666666")
	require.NotContains(t, html, "#111111")
}

func TestCustomizationUnknownKeysAreHarmless(t *testing.T) {
	r, _ := Get(models.TemplateModern)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, fullModel(), Customizations{"showParticles": "true"}))
	require.NotEmpty(t, buf.String())
}

func TestMergeDoesNotMutateDefaults(t *testing.T) {
	before := minimalTemplate.defaults["primaryColor"]
	var buf bytes.Buffer
	require.NoError(t, minimalTemplate.Render(&buf, fullModel(), Customizations{"primaryColor": "#abcdef"}))
	require.Equal(t, before, minimalTemplate.defaults["primaryColor"])
}

func TestPlaceholderStyleSectionsRenderWhenPresent(t *testing.T) {
	// A model with a present-but-empty section renders no heading for it.
	model := &models.RenderModel{
		PersonalInfo: &models.PersonalInfo{FullName: "Jane Doe"},
		Experiences:  []models.Experience{},
	}
	var buf bytes.Buffer
	require.NoError(t, minimalTemplate.Render(&buf, model, nil))
	require.NotContains(t, buf.String(), "<h2>Experience</h2>")
	require.True(t, strings.Contains(buf.String(), "Jane Doe"))
}
