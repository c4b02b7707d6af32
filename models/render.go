package models

// RenderModel is the canonical template-ready shape derived from a
// RawPortfolio. It is rebuilt on every render pass and never persisted.
//
// Section presence semantics: a nil slice means the section was omitted
// (sparse transforms drop empty sections), a non-nil empty slice means the
// section key exists but holds no items (placeholder transforms always emit
// every section). Templates only ever range, so both read the same.
type RenderModel struct {
	PersonalInfo   *PersonalInfo   `json:"personalInfo,omitempty"`
	Experiences    []Experience    `json:"experiences,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Skills         []SkillGroup    `json:"skills,omitempty"`
	Services       []Service       `json:"services,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
	Research       []Research      `json:"research,omitempty"`
	Achievements   []Achievement   `json:"achievements,omitempty"`
}

type PersonalInfo struct {
	FullName        string      `json:"fullName"`
	Title           string      `json:"title"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Location        string      `json:"location"`
	Bio             string      `json:"bio"`
	Avatar          string      `json:"avatar"`
	Tagline         string      `json:"tagline"`
	Availability    string      `json:"availability"`
	YearsExperience string      `json:"yearsExperience"`
	Specialization  string      `json:"specialization"`
	SocialLinks     SocialLinks `json:"socialLinks"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
	Twitter  string `json:"twitter"`
	YouTube  string `json:"youtube"`
}

type Experience struct {
	ID             string   `json:"id"`
	Role           string   `json:"role"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Description    []string `json:"description"`
	Technologies   []string `json:"technologies"`
	Achievements   []string `json:"achievements"`
	EmploymentType string   `json:"employmentType"`
	Salary         string   `json:"salary"`
	CompanyLogo    string   `json:"companyLogo"`
	CompanyWebsite string   `json:"companyWebsite"`
}

type Education struct {
	ID                 string   `json:"id"`
	Degree             string   `json:"degree"`
	Institution        string   `json:"institution"`
	Location           string   `json:"location"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	Description        []string `json:"description"`
	GPA                string   `json:"gpa"`
	FieldOfStudy       string   `json:"fieldOfStudy"`
	Honors             []string `json:"honors"`
	RelevantCoursework []string `json:"relevantCoursework"`
	Thesis             string   `json:"thesis"`
	Advisor            string   `json:"advisor"`
	InstitutionLogo    string   `json:"institutionLogo"`
	InstitutionWebsite string   `json:"institutionWebsite"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  []string `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl"`
	GithubURL    string   `json:"githubUrl"`
	Featured     bool     `json:"featured"`
	Status       string   `json:"status"`
	Duration     string   `json:"duration"`
	TeamSize     string   `json:"teamSize"`
	Role         string   `json:"role"`
	Challenges   []string `json:"challenges"`
	Achievements []string `json:"achievements"`
	DemoVideo    string   `json:"demoVideo"`
	Category     string   `json:"category"`
}

type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}

type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId"`
}

type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Research struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Publication  string   `json:"publication"`
	Conference   string   `json:"conference"`
	Year         string   `json:"year"`
	Description  []string `json:"description"`
	Link         string   `json:"link"`
	DOI          string   `json:"doi"`
	Citations    string   `json:"citations"`
	CoAuthors    []string `json:"coAuthors"`
	Status       string   `json:"status"`
	ResearchArea string   `json:"researchArea"`
	Guidance     string   `json:"guidance"`
}

type Achievement struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description []string `json:"description"`
	Date        string   `json:"date"`
}
