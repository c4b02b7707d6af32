package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Template ids a portfolio can select.
const (
	TemplateBusiness = "business"
	TemplateModern   = "modern"
	TemplateCreative = "creative"
	TemplateMinimal  = "minimal"
)

// Portfolio is the single persisted record per user. Section content is
// stored as JSON columns because the wizard edits loosely-typed documents;
// the relational layer only cares about ownership and publish state.
type Portfolio struct {
	ID               uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID           uuid.UUID      `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	PersonalInfo     datatypes.JSON `json:"personal_info" db:"personal_info" gorm:"type:jsonb"`
	Summary          string         `json:"summary" db:"summary" gorm:"type:text;not null;default:''"`
	Experience       datatypes.JSON `json:"experience" db:"experience" gorm:"type:jsonb"`
	Education        datatypes.JSON `json:"education" db:"education" gorm:"type:jsonb"`
	Skills           datatypes.JSON `json:"skills" db:"skills" gorm:"type:jsonb"`
	Projects         datatypes.JSON `json:"projects" db:"projects" gorm:"type:jsonb"`
	Services         datatypes.JSON `json:"services" db:"services" gorm:"type:jsonb"`
	Certifications   datatypes.JSON `json:"certifications" db:"certifications" gorm:"type:jsonb"`
	Languages        datatypes.JSON `json:"languages" db:"languages" gorm:"type:jsonb"`
	Research         datatypes.JSON `json:"research" db:"research" gorm:"type:jsonb"`
	Achievements     datatypes.JSON `json:"achievements" db:"achievements" gorm:"type:jsonb"`
	SelectedTemplate string         `json:"selected_template" db:"selected_template" gorm:"type:text;not null;default:'business'"`
	IsPublished      bool           `json:"is_published" db:"is_published" gorm:"not null;default:false"`
	PublishedURL     *string        `json:"published_url,omitempty" db:"published_url" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time      `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// Raw unpacks the JSON columns into the loosely-typed wizard document.
func (p *Portfolio) Raw() (*RawPortfolio, error) {
	if p == nil {
		return nil, nil
	}

	raw := &RawPortfolio{
		Summary:          p.Summary,
		SelectedTemplate: p.SelectedTemplate,
		IsPublished:      p.IsPublished,
	}
	if p.PublishedURL != nil {
		raw.PublishedURL = *p.PublishedURL
	}

	if err := unpackObject(p.PersonalInfo, &raw.PersonalInfo); err != nil {
		return nil, err
	}

	sections := []struct {
		col  datatypes.JSON
		dest *[]map[string]any
	}{
		{p.Experience, &raw.Experience},
		{p.Education, &raw.Education},
		{p.Skills, &raw.Skills},
		{p.Projects, &raw.Projects},
		{p.Services, &raw.Services},
		{p.Certifications, &raw.Certifications},
		{p.Languages, &raw.Languages},
		{p.Research, &raw.Research},
		{p.Achievements, &raw.Achievements},
	}
	for _, s := range sections {
		if err := unpackList(s.col, s.dest); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

// ApplyRaw packs a wizard document back into the JSON columns, replacing the
// record's content wholesale. Ownership and publish state are untouched.
func (p *Portfolio) ApplyRaw(raw *RawPortfolio) error {
	if raw == nil {
		return nil
	}

	p.Summary = raw.Summary
	if raw.SelectedTemplate != "" {
		p.SelectedTemplate = raw.SelectedTemplate
	}

	var err error
	if p.PersonalInfo, err = packJSON(raw.PersonalInfo); err != nil {
		return err
	}

	sections := []struct {
		src  []map[string]any
		dest *datatypes.JSON
	}{
		{raw.Experience, &p.Experience},
		{raw.Education, &p.Education},
		{raw.Skills, &p.Skills},
		{raw.Projects, &p.Projects},
		{raw.Services, &p.Services},
		{raw.Certifications, &p.Certifications},
		{raw.Languages, &p.Languages},
		{raw.Research, &p.Research},
		{raw.Achievements, &p.Achievements},
	}
	for _, s := range sections {
		packed, err := packJSON(s.src)
		if err != nil {
			return err
		}
		*s.dest = packed
	}

	return nil
}

func unpackObject(col datatypes.JSON, dest *map[string]any) error {
	if len(col) == 0 {
		*dest = map[string]any{}
		return nil
	}
	return json.Unmarshal(col, dest)
}

func unpackList(col datatypes.JSON, dest *[]map[string]any) error {
	if len(col) == 0 {
		*dest = nil
		return nil
	}
	return json.Unmarshal(col, dest)
}

func packJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON("null"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
