package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/models"
)

func TestResumeTextFullModel(t *testing.T) {
	model := &models.RenderModel{
		PersonalInfo: &models.PersonalInfo{
			FullName: "Jane Doe",
			Title:    "Platform Engineer",
			Email:    "jane@example.com",
			Phone:    "+1 (555) 000-1111",
			Location: "Lisbon",
			Bio:      "Ten years of infrastructure work.",
		},
		Experiences: []models.Experience{{
			Role: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "Present",
			Description: []string{"Owned the deploy pipeline."},
		}},
		Education: []models.Education{{Degree: "BSc", Institution: "IST", StartDate: "2014", EndDate: "2018"}},
		Skills:    []models.SkillGroup{{Category: "Backend", Items: []string{"Go", "Postgres"}}},
		Projects: []models.Project{{
			Title: "Orchestrator", Description: []string{"Schedules batch jobs."}, Technologies: []string{"Go"},
		}},
		Certifications: []models.Certification{{Name: "CKA", Issuer: "CNCF", Date: "2023"}},
	}

	text := ResumeText(model)

	assert.True(t, strings.HasPrefix(text, "Jane Doe\nPlatform Engineer\n"))
	assert.Contains(t, text, "jane@example.com | +1 (555) 000-1111 | Lisbon")
	assert.Contains(t, text, "PROFESSIONAL SUMMARY\n====================\nTen years of infrastructure work.")
	assert.Contains(t, text, "Engineer at Acme (2020 - Present)")
	assert.Contains(t, text, "  - Owned the deploy pipeline.")
	assert.Contains(t, text, "BSc, IST (2014 - 2018)")
	assert.Contains(t, text, "Backend: Go, Postgres")
	assert.Contains(t, text, "  Technologies: Go")
	assert.Contains(t, text, "CKA, CNCF, 2023")
}

func TestResumeTextEmptySections(t *testing.T) {
	model := &models.RenderModel{
		PersonalInfo: &models.PersonalInfo{FullName: "Jane Doe"},
	}
	text := ResumeText(model)
	assert.Contains(t, text, "No summary provided")
	assert.NotContains(t, text, "EXPERIENCE")
	assert.NotContains(t, text, "SKILLS")
}

func TestResumeTextNilModel(t *testing.T) {
	text := ResumeText(nil)
	require.True(t, strings.HasPrefix(text, "Resume\n"))
	assert.Contains(t, text, "No summary provided")
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "jane-doe-resume.txt", ExportFilename("Jane Doe"))
	assert.Equal(t, "resume.txt", ExportFilename(""))
	assert.Equal(t, "resume.txt", ExportFilename("  !!  "))
}
