package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/models"
)

func completeForm() *models.RawPortfolio {
	return &models.RawPortfolio{
		PersonalInfo: map[string]any{"fullName": "Jane Doe"},
		Summary:      "Experienced engineer.",
	}
}

func TestForwardSequence(t *testing.T) {
	s := NewState()
	assert.Equal(t, StepInputMethod, s.Step)

	s, err := Next(s, completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepDataEntry, s.Step)
	assert.Equal(t, SectionPersonalInfo, s.Section)

	// walk all eleven sections
	for i := 1; i < len(Sections); i++ {
		s, err = Next(s, completeForm())
		require.NoError(t, err)
		assert.Equal(t, StepDataEntry, s.Step)
		assert.Equal(t, Sections[i], s.Section)
	}

	s, err = Next(s, completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepTemplateChoice, s.Step)

	s, err = Next(s, completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepPreview, s.Step)

	s, err = Next(s, completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepPublish, s.Step)

	_, err = Next(s, completeForm())
	assert.ErrorIs(t, err, ErrAtLastStep)
}

func TestPrevBlockedAtFirstStep(t *testing.T) {
	_, err := Prev(NewState())
	assert.ErrorIs(t, err, ErrAtFirstStep)
}

func TestPrevWalksBackThroughSections(t *testing.T) {
	s := State{Step: StepTemplateChoice}

	s, err := Prev(s)
	require.NoError(t, err)
	assert.Equal(t, StepDataEntry, s.Step)
	assert.Equal(t, SectionAchievements, s.Section)

	s, err = Prev(s)
	require.NoError(t, err)
	assert.Equal(t, SectionResearch, s.Section)

	s = State{Step: StepDataEntry, Section: SectionPersonalInfo}
	s, err = Prev(s)
	require.NoError(t, err)
	assert.Equal(t, StepInputMethod, s.Step)
}

func TestLeavingDataEntryRequiresRequiredSections(t *testing.T) {
	s := State{Step: StepDataEntry, Section: SectionAchievements}

	// summary empty: blocked
	form := &models.RawPortfolio{
		PersonalInfo: map[string]any{"fullName": "Jane Doe"},
	}
	_, err := Next(s, form)
	assert.ErrorIs(t, err, ErrRequiredIncomplete)

	// filling summary unblocks the same transition
	form.Summary = "Now present."
	next, err := Next(s, form)
	require.NoError(t, err)
	assert.Equal(t, StepTemplateChoice, next.Step)
}

func TestPreviewToPublishGatedOnSparseContent(t *testing.T) {
	s := State{Step: StepPreview}

	_, err := Next(s, &models.RawPortfolio{})
	assert.ErrorIs(t, err, ErrNotEnoughData)

	next, err := Next(s, completeForm())
	require.NoError(t, err)
	assert.Equal(t, StepPublish, next.Step)
}

func TestChooseInputMethodManualAutoAdvances(t *testing.T) {
	s := ChooseInputMethod(NewState(), "manual")
	assert.Equal(t, StepDataEntry, s.Step)
	assert.Equal(t, SectionPersonalInfo, s.Section)
	assert.Equal(t, "manual", s.InputMethod)

	s = ChooseInputMethod(NewState(), "upload")
	assert.Equal(t, StepInputMethod, s.Step)
	assert.Equal(t, "upload", s.InputMethod)
}

func TestSectionHasData(t *testing.T) {
	form := &models.RawPortfolio{
		PersonalInfo: map[string]any{"fullName": ""},
		Skills:       []map[string]any{{"category": "Backend"}},
	}

	assert.False(t, SectionHasData(form, SectionPersonalInfo))
	assert.False(t, SectionHasData(form, SectionSummary))
	assert.True(t, SectionHasData(form, SectionSkills))
	assert.False(t, SectionHasData(form, SectionProjects))
	assert.False(t, SectionHasData(nil, SectionSkills))

	form.PersonalInfo["fullName"] = "Jane Doe"
	assert.True(t, SectionHasData(form, SectionPersonalInfo))
}

func TestSectionHasDataIgnoresFalsyPersonalInfoValues(t *testing.T) {
	// leftover falsy values from a cleared form are not data
	form := &models.RawPortfolio{
		PersonalInfo: map[string]any{
			"fullName":    "",
			"newsletter":  false,
			"socialLinks": map[string]any{"linkedin": ""},
		},
	}
	assert.False(t, SectionHasData(form, SectionPersonalInfo))

	form.PersonalInfo["socialLinks"] = map[string]any{"linkedin": "https://linkedin.com/in/jane"}
	assert.True(t, SectionHasData(form, SectionPersonalInfo))
}

func TestCompletedSections(t *testing.T) {
	form := completeForm()
	form.Projects = []map[string]any{{"name": "App"}}

	done := CompletedSections(form)
	assert.Equal(t, []SectionID{SectionPersonalInfo, SectionSummary, SectionProjects}, done)
}
