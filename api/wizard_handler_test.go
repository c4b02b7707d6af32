package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioforge/portfolio-backend/wizard"
)

func postTransition(t *testing.T, body string) (*httptest.ResponseRecorder, transitionResponse) {
	t.Helper()
	handler := newWizardHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wizard/transition", strings.NewReader(body))
	handler.transition().ServeHTTP(rec, req)

	var resp transitionResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestTransitionDefaultsToFirstStep(t *testing.T) {
	rec, resp := postTransition(t, `{"action": "next"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.StepDataEntry, resp.State.Step)
	assert.Equal(t, wizard.SectionPersonalInfo, resp.State.Section)
}

func TestTransitionChooseManualAutoAdvances(t *testing.T) {
	rec, resp := postTransition(t, `{"action": "choose_input_method", "method": "manual"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.StepDataEntry, resp.State.Step)
	assert.Equal(t, "manual", resp.State.InputMethod)
}

func TestTransitionPrevAtFirstStepConflicts(t *testing.T) {
	rec, _ := postTransition(t, `{"state": {"step": 1}, "action": "prev"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTransitionLeavingDataEntryRequiresSections(t *testing.T) {
	// end of data entry without the required sections filled
	body := `{
		"state": {"step": 2, "section": "achievements"},
		"action": "next",
		"form": {"experience": [{"jobTitle": "Engineer"}]}
	}`
	rec, _ := postTransition(t, body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// filling personal info and summary unblocks the move
	body = `{
		"state": {"step": 2, "section": "achievements"},
		"action": "next",
		"form": {
			"personal_info": {"fullName": "Jane Doe"},
			"summary": "Hello."
		}
	}`
	rec, resp := postTransition(t, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.StepTemplateChoice, resp.State.Step)
	assert.True(t, resp.RequiredComplete)
}

func TestTransitionReportsCompletedSections(t *testing.T) {
	body := `{
		"state": {"step": 2, "section": "personalInfo"},
		"action": "next",
		"form": {
			"personal_info": {"fullName": "Jane Doe"},
			"skills": [{"category": "Backend"}]
		}
	}`
	rec, resp := postTransition(t, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.SectionSummary, resp.State.Section)
	assert.Contains(t, resp.CompletedSections, wizard.SectionPersonalInfo)
	assert.Contains(t, resp.CompletedSections, wizard.SectionSkills)
	assert.NotContains(t, resp.CompletedSections, wizard.SectionSummary)
}

func TestTransitionPreviewGate(t *testing.T) {
	rec, _ := postTransition(t, `{"state": {"step": 4}, "action": "next", "form": {}}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	body := `{
		"state": {"step": 4},
		"action": "next",
		"form": {"personal_info": {"fullName": "Jane Doe"}}
	}`
	rec, resp := postTransition(t, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.StepPublish, resp.State.Step)
}

func TestTransitionUnknownAction(t *testing.T) {
	rec, _ := postTransition(t, `{"action": "sideways"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
