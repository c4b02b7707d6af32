package database

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/folioforge/portfolio-backend/models"
)

func parsePortfolioSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(&models.Portfolio{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

// The on-conflict assignment list is plain data with nothing else checking
// it; a name that drifts from the model's columns breaks every save to an
// existing record.
func TestUpsertColumnsExistOnPortfolioSchema(t *testing.T) {
	s := parsePortfolioSchema(t)
	for _, col := range upsertColumns {
		_, ok := s.FieldsByDBName[col]
		assert.True(t, ok, "column %q is not on the portfolios table", col)
	}
}

func TestUpsertConflictTargetIsUniqueColumn(t *testing.T) {
	s := parsePortfolioSchema(t)
	field, ok := s.FieldsByDBName["user_id"]
	require.True(t, ok)
	_, hasUniqueIndex := field.TagSettings["UNIQUEINDEX"]
	assert.True(t, field.Unique || hasUniqueIndex, "user_id must be unique for the conflict target")
}

func TestUpsertColumnsCoverAllContent(t *testing.T) {
	// every mutable column must be in the assignment list, or a second save
	// silently keeps stale data for it
	immutable := map[string]bool{
		"id":         true,
		"user_id":    true,
		"created_at": true,
	}
	listed := map[string]bool{}
	for _, col := range upsertColumns {
		listed[col] = true
	}

	s := parsePortfolioSchema(t)
	for col := range s.FieldsByDBName {
		if immutable[col] {
			continue
		}
		assert.True(t, listed[col], "column %q missing from the upsert assignment list", col)
	}
}
