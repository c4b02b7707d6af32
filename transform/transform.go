package transform

import (
	"github.com/folioforge/portfolio-backend/models"
)

// Transform derives the canonical render model from a raw wizard document.
// It is a pure function of its two inputs; nil in, nil out.
//
// Section order is fixed (personal info, experiences, education, projects,
// skills, services, certifications, languages, research, achievements) so
// synthesized ids are reproducible within a pass.
func Transform(raw *models.RawPortfolio, mode Mode) *models.RenderModel {
	if raw == nil {
		return nil
	}

	g := newIDGen()
	model := &models.RenderModel{}

	model.PersonalInfo = normalizePersonalInfo(raw.PersonalInfo, raw.Summary, mode)
	model.Experiences = sectionOut(normalizeExperience(raw.Experience, mode, g), mode)
	model.Education = sectionOut(normalizeEducation(raw.Education, mode, g), mode)
	model.Projects = sectionOut(normalizeProjects(raw.Projects, mode, g), mode)
	model.Skills = sectionOut(normalizeSkills(raw.Skills, mode), mode)
	model.Services = sectionOut(normalizeServices(raw.Services, mode, g), mode)
	model.Certifications = sectionOut(normalizeCertifications(raw.Certifications, mode, g), mode)
	model.Languages = sectionOut(normalizeLanguages(raw.Languages, mode, g), mode)
	model.Research = sectionOut(normalizeResearch(raw.Research, mode, g), mode)
	model.Achievements = sectionOut(normalizeAchievements(raw.Achievements, mode, g), mode)

	return model
}

// sectionOut applies the per-mode presence rule: sparse mode omits a section
// that ended up empty (nil slice), placeholder mode always keeps the key
// (non-nil, possibly empty).
func sectionOut[T any](items []T, m Mode) []T {
	if m == ModeSparse && len(items) == 0 {
		return nil
	}
	return items
}

// HasPreviewContent is the "enough data to preview" gate: the sparse
// transform must produce personal info, which requires a non-empty full name.
func HasPreviewContent(raw *models.RawPortfolio) bool {
	model := Transform(raw, ModeSparse)
	return model != nil && model.PersonalInfo != nil
}
