package transform

import (
	"strconv"
	"time"

	"github.com/folioforge/portfolio-backend/models"
)

// idGen hands out canonical item ids. Raw ids are kept when present (they
// only exist for list-key stability); synthesized ids are time-derived and
// unique within one transformer pass, but carry no meaning across passes.
type idGen struct {
	base int64
	n    int64
}

func newIDGen() *idGen {
	return &idGen{base: time.Now().UnixMilli()}
}

func (g *idGen) next() string {
	g.n++
	return strconv.FormatInt(g.base+g.n, 10)
}

func (g *idGen) id(item map[string]any) string {
	switch v := item["id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		// numeric ids arrive as JSON numbers
		if v != 0 {
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return g.next()
}

// keep filters a raw section for normalization. Placeholder mode keeps every
// item; sparse mode drops items with no truthy field at all.
func keep(items []map[string]any, m Mode) []map[string]any {
	if m == ModePlaceholder {
		return items
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if hasContent(item) {
			out = append(out, item)
		}
	}
	return out
}

func normalizePersonalInfo(info map[string]any, summary string, m Mode) *models.PersonalInfo {
	if info == nil {
		info = map[string]any{}
	}

	fullName, _ := info["fullName"].(string)
	if m == ModeSparse && fullName == "" {
		return nil
	}

	bio := summary
	if bio == "" {
		bio = stringField(info, m.text("Your professional summary will appear here."), "bio", "summary")
	}

	return &models.PersonalInfo{
		FullName:        stringField(info, m.text("Your Name"), "fullName"),
		Title:           stringField(info, m.text("Your Professional Title"), "title"),
		Email:           stringField(info, m.text("your.email@example.com"), "email"),
		Phone:           stringField(info, m.text("+1 (555) 123-4567"), "phone"),
		Location:        stringField(info, m.text("Your Location"), "address", "location"),
		Bio:             bio,
		Avatar:          stringField(info, fallbackAvatar, "avatar"),
		Tagline:         stringField(info, "", "tagline"),
		Availability:    stringField(info, fallbackAvailability, "availability"),
		YearsExperience: stringField(info, "", "yearsExperience"),
		Specialization:  stringField(info, "", "specialization"),
		SocialLinks: models.SocialLinks{
			LinkedIn: stringField(info, "", "linkedin"),
			GitHub:   stringField(info, "", "github"),
			Website:  stringField(info, "", "website"),
			Twitter:  stringField(info, "", "twitter"),
			YouTube:  stringField(info, "", "youtube"),
		},
	}
}

func normalizeExperience(items []map[string]any, m Mode, g *idGen) []models.Experience {
	items = keep(items, m)
	out := make([]models.Experience, 0, len(items))
	for _, item := range items {
		out = append(out, models.Experience{
			ID:             g.id(item),
			Role:           stringField(item, m.text("Job Title"), "jobTitle", "role"),
			Company:        stringField(item, m.text("Company Name"), "company"),
			Location:       stringField(item, m.text("Location"), "location"),
			StartDate:      stringField(item, m.text("2020"), "startDate"),
			EndDate:        stringField(item, m.text("Present"), "endDate"),
			Description:    descriptionList(item, m.text("Job description will appear here."), "description"),
			Technologies:   stringList(item, "technologies"),
			Achievements:   stringList(item, "achievements"),
			EmploymentType: stringField(item, m.text("Full-time"), "employmentType"),
			Salary:         stringField(item, "", "salary"),
			CompanyLogo:    stringField(item, "", "companyLogo"),
			CompanyWebsite: stringField(item, "", "companyWebsite"),
		})
	}
	return out
}

func normalizeEducation(items []map[string]any, m Mode, g *idGen) []models.Education {
	items = keep(items, m)
	out := make([]models.Education, 0, len(items))
	for _, item := range items {
		out = append(out, models.Education{
			ID:                 g.id(item),
			Degree:             stringField(item, m.text("Degree"), "degree"),
			Institution:        stringField(item, m.text("Institution"), "institution"),
			Location:           stringField(item, m.text("Location"), "location"),
			StartDate:          stringField(item, m.text("2016"), "startDate"),
			EndDate:            stringField(item, m.text("2020"), "endDate"),
			Description:        descriptionList(item, m.text("Education description"), "description"),
			GPA:                stringField(item, "", "gpa"),
			FieldOfStudy:       stringField(item, "", "fieldOfStudy"),
			Honors:             stringList(item, "honors"),
			RelevantCoursework: stringList(item, "relevantCoursework"),
			Thesis:             stringField(item, "", "thesis"),
			Advisor:            stringField(item, "", "advisor"),
			InstitutionLogo:    stringField(item, "", "institutionLogo"),
			InstitutionWebsite: stringField(item, "", "institutionWebsite"),
		})
	}
	return out
}

func normalizeProjects(items []map[string]any, m Mode, g *idGen) []models.Project {
	items = keep(items, m)
	out := make([]models.Project, 0, len(items))
	for _, item := range items {
		teamSize := stringField(item, m.text("1"), "teamSize")
		if ts, ok := item["teamSize"].(float64); ok && ts != 0 {
			teamSize = strconv.Itoa(int(ts))
		}
		out = append(out, models.Project{
			ID:           g.id(item),
			Title:        stringField(item, m.text("Project Title"), "name", "title"),
			Description:  descriptionList(item, m.text("Project description"), "description"),
			Image:        stringField(item, fallbackProjectImage, "image"),
			Technologies: stringList(item, "technologies"),
			LiveURL:      stringField(item, fallbackLink, "link", "liveUrl"),
			GithubURL:    stringField(item, fallbackLink, "githubUrl"),
			Featured:     boolField(item, "featured"),
			Status:       stringField(item, fallbackProjStatus, "status"),
			Duration:     stringField(item, "", "duration"),
			TeamSize:     teamSize,
			Role:         stringField(item, "", "role"),
			Challenges:   stringList(item, "challenges"),
			Achievements: stringList(item, "achievements"),
			DemoVideo:    stringField(item, "", "demoVideo"),
			Category:     stringField(item, fallbackCategory, "category"),
		})
	}
	return out
}

func normalizeSkills(items []map[string]any, m Mode) []models.SkillGroup {
	items = keep(items, m)
	out := make([]models.SkillGroup, 0, len(items))
	for _, item := range items {
		out = append(out, models.SkillGroup{
			Category: stringField(item, m.text("Skills"), "category"),
			Items:    stringList(item, "items"),
		})
	}
	return out
}

func normalizeServices(items []map[string]any, m Mode, g *idGen) []models.Service {
	items = keep(items, m)
	out := make([]models.Service, 0, len(items))
	for _, item := range items {
		out = append(out, models.Service{
			ID:          g.id(item),
			Title:       stringField(item, m.text("Service Title"), "title"),
			Description: descriptionList(item, m.text("Service description"), "description"),
			Features:    stringList(item, "features"),
			Price:       stringField(item, "", "price"),
		})
	}
	return out
}

func normalizeCertifications(items []map[string]any, m Mode, g *idGen) []models.Certification {
	items = keep(items, m)
	out := make([]models.Certification, 0, len(items))
	for _, item := range items {
		out = append(out, models.Certification{
			ID:           g.id(item),
			Name:         stringField(item, m.text("Certification Name"), "name"),
			Issuer:       stringField(item, m.text("Issuing Organization"), "issuer"),
			Date:         stringField(item, "", "date"),
			CredentialID: stringField(item, "", "credentialId"),
		})
	}
	return out
}

func normalizeLanguages(items []map[string]any, m Mode, g *idGen) []models.Language {
	items = keep(items, m)
	out := make([]models.Language, 0, len(items))
	for _, item := range items {
		out = append(out, models.Language{
			ID:          g.id(item),
			Name:        stringField(item, m.text("Language"), "name"),
			Proficiency: stringField(item, m.text("Intermediate"), "proficiency"),
		})
	}
	return out
}

func normalizeResearch(items []map[string]any, m Mode, g *idGen) []models.Research {
	items = keep(items, m)
	out := make([]models.Research, 0, len(items))
	for _, item := range items {
		out = append(out, models.Research{
			ID:           g.id(item),
			Title:        stringField(item, m.text("Research Title"), "title"),
			Publication:  stringField(item, m.text("Publication"), "publication"),
			Conference:   stringField(item, "", "conference"),
			Year:         stringField(item, "", "year"),
			Description:  descriptionList(item, m.text("Research description"), "description", "abstract"),
			Link:         stringField(item, fallbackLink, "link"),
			DOI:          stringField(item, "", "doi"),
			Citations:    stringField(item, "", "citations"),
			CoAuthors:    stringList(item, "coAuthors"),
			Status:       stringField(item, fallbackPubStatus, "status"),
			ResearchArea: stringField(item, "", "researchArea"),
			Guidance:     stringField(item, "", "guidance"),
		})
	}
	return out
}

func normalizeAchievements(items []map[string]any, m Mode, g *idGen) []models.Achievement {
	items = keep(items, m)
	out := make([]models.Achievement, 0, len(items))
	for _, item := range items {
		out = append(out, models.Achievement{
			ID:          g.id(item),
			Title:       stringField(item, m.text("Achievement Title"), "title"),
			Description: descriptionList(item, m.text("Achievement description"), "description"),
			Date:        stringField(item, "", "date"),
		})
	}
	return out
}
