package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawApplyRawRoundTrip(t *testing.T) {
	raw := &RawPortfolio{
		PersonalInfo:     map[string]any{"fullName": "Jane Doe", "email": "jane@example.com"},
		Summary:          "Ten years of infra work.",
		Experience:       []map[string]any{{"jobTitle": "Engineer", "company": "Acme"}},
		Skills:           []map[string]any{{"category": "Backend", "items": []any{"Go"}}},
		SelectedTemplate: TemplateModern,
	}

	var portfolio Portfolio
	require.NoError(t, portfolio.ApplyRaw(raw))

	got, err := portfolio.Raw()
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.FullName())
	assert.Equal(t, "Ten years of infra work.", got.Summary)
	assert.Equal(t, TemplateModern, got.SelectedTemplate)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Acme", got.Experience[0]["company"])
	require.Len(t, got.Skills, 1)
}

func TestApplyRawKeepsTemplateWhenUnset(t *testing.T) {
	portfolio := Portfolio{SelectedTemplate: TemplateCreative}
	require.NoError(t, portfolio.ApplyRaw(&RawPortfolio{Summary: "Hello."}))
	assert.Equal(t, TemplateCreative, portfolio.SelectedTemplate)
}

func TestApplyRawNilIsNoop(t *testing.T) {
	portfolio := Portfolio{Summary: "unchanged"}
	require.NoError(t, portfolio.ApplyRaw(nil))
	assert.Equal(t, "unchanged", portfolio.Summary)
}

func TestNilPortfolioRaw(t *testing.T) {
	var portfolio *Portfolio
	raw, err := portfolio.Raw()
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestEmptyColumnsUnpackCleanly(t *testing.T) {
	var portfolio Portfolio
	raw, err := portfolio.Raw()
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.NotNil(t, raw.PersonalInfo)
	assert.Nil(t, raw.Experience)
	assert.Equal(t, "", raw.FullName())
}

func TestSectionAccessor(t *testing.T) {
	raw := &RawPortfolio{
		Projects: []map[string]any{{"name": "Orchestrator"}},
	}
	assert.Len(t, raw.Section("projects"), 1)
	assert.Nil(t, raw.Section("experience"))
	assert.Nil(t, raw.Section("summary"))

	var nilRaw *RawPortfolio
	assert.Nil(t, nilRaw.Section("projects"))
	assert.Equal(t, "", nilRaw.FullName())
}
