package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyal/worklens/internal/scoring"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	questions, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, questions)

	// Ordered by display number ascending.
	for i := 1; i < len(questions); i++ {
		assert.Less(t, questions[i-1].DisplayNumber, questions[i].DisplayNumber)
	}

	// Every style is represented.
	counts := make(map[scoring.Style]int)
	for _, q := range questions {
		counts[q.Style]++
	}
	for _, st := range scoring.Styles {
		assert.Positive(t, counts[st], "style %s has no questions", st)
	}
}

func TestParseRejectsUnknownStyle(t *testing.T) {
	data := []byte(`{"version":1,"questions":[
		{"id":"x1","display_number":1,"style":"decisive","group":"g","prompt":"p"}]}`)
	_, err := Parse(data)
	require.Error(t, err)
}

func TestParseRejectsDuplicateID(t *testing.T) {
	data := []byte(`{"version":1,"questions":[
		{"id":"x1","display_number":1,"style":"driving","group":"g","prompt":"p"},
		{"id":"x1","display_number":2,"style":"amiable","group":"g","prompt":"p"}]}`)
	_, err := Parse(data)
	require.ErrorContains(t, err, "duplicate question id")
}

func TestParseRejectsDuplicateDisplayNumber(t *testing.T) {
	data := []byte(`{"version":1,"questions":[
		{"id":"x1","display_number":1,"style":"driving","group":"g","prompt":"p"},
		{"id":"x2","display_number":1,"style":"amiable","group":"g","prompt":"p"}]}`)
	_, err := Parse(data)
	require.ErrorContains(t, err, "duplicate display number")
}

func TestParseRejectsMissingFields(t *testing.T) {
	data := []byte(`{"version":1,"questions":[
		{"id":"x1","style":"driving","group":"g","prompt":"p"}]}`)
	_, err := Parse(data)
	require.Error(t, err, "display_number is required by the schema")
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse([]byte(`{"version":1,`))
	require.Error(t, err)
}

func TestParseSortsByDisplayNumber(t *testing.T) {
	data := []byte(`{"version":1,"questions":[
		{"id":"b","display_number":2,"style":"amiable","group":"g","prompt":"p2"},
		{"id":"a","display_number":1,"style":"driving","group":"g","prompt":"p1"}]}`)
	questions, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "a", questions[0].ID)
	assert.Equal(t, "b", questions[1].ID)
}

func TestStylePairs(t *testing.T) {
	questions, err := Default()
	require.NoError(t, err)

	pairs := StylePairs(questions)
	require.Len(t, pairs, len(questions))
	for i, p := range pairs {
		assert.Equal(t, questions[i].ID, p.ID)
		assert.Equal(t, questions[i].Style, p.Style)
	}
}
