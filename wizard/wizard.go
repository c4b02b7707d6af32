// Package wizard models the portfolio builder's step flow as an explicit
// state machine so transitions can be validated independently of any UI.
// Five top-level stages run in strict forward/backward sequence; the data
// entry stage holds its own eleven-section sub-sequence.
package wizard

import (
	"errors"

	"github.com/folioforge/portfolio-backend/models"
	"github.com/folioforge/portfolio-backend/transform"
)

type Step int

const (
	StepInputMethod Step = iota + 1
	StepDataEntry
	StepTemplateChoice
	StepPreview
	StepPublish
)

func (s Step) String() string {
	switch s {
	case StepInputMethod:
		return "input_method"
	case StepDataEntry:
		return "data_entry"
	case StepTemplateChoice:
		return "template_choice"
	case StepPreview:
		return "preview"
	case StepPublish:
		return "publish"
	}
	return "unknown"
}

type SectionID string

const (
	SectionPersonalInfo   SectionID = "personalInfo"
	SectionSummary        SectionID = "summary"
	SectionExperience     SectionID = "experience"
	SectionEducation      SectionID = "education"
	SectionSkills         SectionID = "skills"
	SectionProjects       SectionID = "projects"
	SectionServices       SectionID = "services"
	SectionCertifications SectionID = "certifications"
	SectionLanguages      SectionID = "languages"
	SectionResearch       SectionID = "research"
	SectionAchievements   SectionID = "achievements"
)

// Sections in the order the wizard walks them. Only the first two are
// required to leave data entry.
var Sections = []SectionID{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionServices,
	SectionCertifications,
	SectionLanguages,
	SectionResearch,
	SectionAchievements,
}

func (s SectionID) Required() bool {
	return s == SectionPersonalInfo || s == SectionSummary
}

var (
	ErrAtFirstStep        = errors.New("already at the first step")
	ErrAtLastStep         = errors.New("already at the last step")
	ErrUnknownStep        = errors.New("unknown step")
	ErrUnknownSection     = errors.New("unknown section")
	ErrRequiredIncomplete = errors.New("required sections are incomplete")
	ErrNotEnoughData      = errors.New("not enough data to preview")
)

// State is the full position of a wizard session. Section is only
// meaningful while Step is StepDataEntry.
type State struct {
	Step        Step      `json:"step"`
	Section     SectionID `json:"section,omitempty"`
	InputMethod string    `json:"input_method,omitempty"`
}

func NewState() State {
	return State{Step: StepInputMethod}
}

// ChooseInputMethod records the selection. Choosing manual entry advances
// straight into the first data-entry section, matching the historical
// auto-advance behavior.
func ChooseInputMethod(s State, method string) State {
	s.InputMethod = method
	if method == "manual" {
		s.Step = StepDataEntry
		s.Section = Sections[0]
	}
	return s
}

// Next advances by one section within data entry, or by one step otherwise.
// Gates: leaving the last data-entry section requires the required sections
// to be complete; leaving preview requires the sparse transform to find
// enough data to show anything.
func Next(s State, form *models.RawPortfolio) (State, error) {
	switch s.Step {
	case StepInputMethod:
		s.Step = StepDataEntry
		s.Section = Sections[0]
	case StepDataEntry:
		idx := sectionIndex(s.Section)
		if idx < 0 {
			return s, ErrUnknownSection
		}
		if idx < len(Sections)-1 {
			s.Section = Sections[idx+1]
			return s, nil
		}
		if !RequiredComplete(form) {
			return s, ErrRequiredIncomplete
		}
		s.Step = StepTemplateChoice
		s.Section = ""
	case StepTemplateChoice:
		s.Step = StepPreview
	case StepPreview:
		if !transform.HasPreviewContent(form) {
			return s, ErrNotEnoughData
		}
		s.Step = StepPublish
	case StepPublish:
		return s, ErrAtLastStep
	default:
		return s, ErrUnknownStep
	}
	return s, nil
}

// Prev retreats by one section within data entry, or by one step otherwise.
// Backward movement is never gated.
func Prev(s State) (State, error) {
	switch s.Step {
	case StepInputMethod:
		return s, ErrAtFirstStep
	case StepDataEntry:
		idx := sectionIndex(s.Section)
		if idx < 0 {
			return s, ErrUnknownSection
		}
		if idx > 0 {
			s.Section = Sections[idx-1]
			return s, nil
		}
		s.Step = StepInputMethod
		s.Section = ""
	case StepTemplateChoice:
		s.Step = StepDataEntry
		s.Section = Sections[len(Sections)-1]
	case StepPreview:
		s.Step = StepTemplateChoice
	case StepPublish:
		s.Step = StepPreview
	default:
		return s, ErrUnknownStep
	}
	return s, nil
}

// SectionHasData mirrors the completion check shown next to each section:
// lists count when non-empty, personal info counts when any field is truthy,
// summary counts when non-empty.
func SectionHasData(form *models.RawPortfolio, section SectionID) bool {
	if form == nil {
		return false
	}
	switch section {
	case SectionPersonalInfo:
		for _, v := range form.PersonalInfo {
			if transform.Present(v) {
				return true
			}
		}
		return false
	case SectionSummary:
		return form.Summary != ""
	default:
		return len(form.Section(string(section))) > 0
	}
}

// RequiredComplete reports whether every required section holds data.
func RequiredComplete(form *models.RawPortfolio) bool {
	for _, section := range Sections {
		if section.Required() && !SectionHasData(form, section) {
			return false
		}
	}
	return true
}

// CompletedSections returns the ids of sections that currently hold data.
func CompletedSections(form *models.RawPortfolio) []SectionID {
	var done []SectionID
	for _, section := range Sections {
		if SectionHasData(form, section) {
			done = append(done, section)
		}
	}
	return done
}

func sectionIndex(id SectionID) int {
	for i, s := range Sections {
		if s == id {
			return i
		}
	}
	return -1
}
