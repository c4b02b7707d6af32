package services

import (
	"fmt"
	"strings"

	"github.com/folioforge/portfolio-backend/models"
)

// ResumeText flattens a render model into a plain-text resume. The layout is
// fixed: a header line with name and title, then a contact line, then the
// standard sections in order. Sections without items are skipped, but the
// summary always appears with a stand-in when empty.
func ResumeText(model *models.RenderModel) string {
	var b strings.Builder

	name := "Resume"
	title := ""
	contact := ""
	if model != nil && model.PersonalInfo != nil {
		pi := model.PersonalInfo
		if pi.FullName != "" {
			name = pi.FullName
		}
		title = pi.Title
		contact = joinPresent(" | ", pi.Email, pi.Phone, pi.Location)
	}

	b.WriteString(name + "\n")
	if title != "" {
		b.WriteString(title + "\n")
	}
	if contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString("\n")

	writeHeading(&b, "PROFESSIONAL SUMMARY")
	summary := "No summary provided"
	if model != nil && model.PersonalInfo != nil && model.PersonalInfo.Bio != "" {
		summary = model.PersonalInfo.Bio
	}
	b.WriteString(summary + "\n\n")

	if model == nil {
		return b.String()
	}

	if len(model.Experiences) > 0 {
		writeHeading(&b, "EXPERIENCE")
		for _, exp := range model.Experiences {
			b.WriteString(fmt.Sprintf("%s at %s (%s - %s)\n", exp.Role, exp.Company, exp.StartDate, exp.EndDate))
			for _, line := range exp.Description {
				b.WriteString("  - " + line + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(model.Education) > 0 {
		writeHeading(&b, "EDUCATION")
		for _, edu := range model.Education {
			b.WriteString(fmt.Sprintf("%s, %s (%s - %s)\n", edu.Degree, edu.Institution, edu.StartDate, edu.EndDate))
		}
		b.WriteString("\n")
	}

	if len(model.Skills) > 0 {
		writeHeading(&b, "SKILLS")
		for _, group := range model.Skills {
			b.WriteString(fmt.Sprintf("%s: %s\n", group.Category, strings.Join(group.Items, ", ")))
		}
		b.WriteString("\n")
	}

	if len(model.Projects) > 0 {
		writeHeading(&b, "PROJECTS")
		for _, proj := range model.Projects {
			b.WriteString(proj.Title + "\n")
			for _, line := range proj.Description {
				b.WriteString("  " + line + "\n")
			}
			if len(proj.Technologies) > 0 {
				b.WriteString("  Technologies: " + strings.Join(proj.Technologies, ", ") + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(model.Certifications) > 0 {
		writeHeading(&b, "CERTIFICATIONS")
		for _, cert := range model.Certifications {
			b.WriteString(joinPresent(", ", cert.Name, cert.Issuer, cert.Date) + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// ExportFilename derives a download filename from the portfolio owner's name.
func ExportFilename(fullName string) string {
	slug := Slugify(fullName)
	if slug == "" {
		slug = "resume"
		return slug + ".txt"
	}
	return slug + "-resume.txt"
}

func writeHeading(b *strings.Builder, heading string) {
	b.WriteString(heading + "\n")
	b.WriteString(strings.Repeat("=", len(heading)) + "\n")
}

func joinPresent(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
