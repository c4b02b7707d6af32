package models

// RawPortfolio is the wizard document exactly as the client holds it:
// loosely typed, partially filled, with legacy field aliases intact
// (jobTitle/role, name/title, link/liveUrl). Items stay as generic maps so
// the transform layer can absorb whatever shape the forms produced.
type RawPortfolio struct {
	PersonalInfo     map[string]any   `json:"personal_info"`
	Summary          string           `json:"summary"`
	Experience       []map[string]any `json:"experience"`
	Education        []map[string]any `json:"education"`
	Skills           []map[string]any `json:"skills"`
	Projects         []map[string]any `json:"projects"`
	Services         []map[string]any `json:"services"`
	Certifications   []map[string]any `json:"certifications"`
	Languages        []map[string]any `json:"languages"`
	Research         []map[string]any `json:"research"`
	Achievements     []map[string]any `json:"achievements"`
	SelectedTemplate string           `json:"selected_template,omitempty"`
	IsPublished      bool             `json:"is_published,omitempty"`
	PublishedURL     string           `json:"published_url,omitempty"`
}

// FullName returns the minimal-required field of the record, empty when the
// user has not entered it yet.
func (r *RawPortfolio) FullName() string {
	if r == nil || r.PersonalInfo == nil {
		return ""
	}
	name, _ := r.PersonalInfo["fullName"].(string)
	return name
}

// Section returns the named raw section list. Personal info and summary are
// not lists and are not addressable through this accessor.
func (r *RawPortfolio) Section(name string) []map[string]any {
	if r == nil {
		return nil
	}
	switch name {
	case "experience":
		return r.Experience
	case "education":
		return r.Education
	case "skills":
		return r.Skills
	case "projects":
		return r.Projects
	case "services":
		return r.Services
	case "certifications":
		return r.Certifications
	case "languages":
		return r.Languages
	case "research":
		return r.Research
	case "achievements":
		return r.Achievements
	}
	return nil
}
