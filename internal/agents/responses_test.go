package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priya/ideacraft/internal/models"
)

func TestBuildContext(t *testing.T) {
	docs := []models.Doc{
		{ID: "1", Name: "api.md", Content: "endpoints"},
		{ID: "2", Name: "notes.md", Content: "misc"},
	}

	got := buildContext("the idea", docs)
	assert.Contains(t, got, "BRAIN DUMP:\nthe idea")
	assert.Contains(t, got, "--- DOC: api.md ---\nendpoints")
	assert.Contains(t, got, "--- DOC: notes.md ---\nmisc")
}

func TestParseSectionsResponse(t *testing.T) {
	sections, err := parseSectionsResponse(`{"sections": ["Auth", "Billing"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Auth", "Billing"}, sections)

	_, err = parseSectionsResponse(`not json`)
	assert.Error(t, err)
}

func TestParseBacklogResponse(t *testing.T) {
	backlog, err := parseBacklogResponse(`{"backlog": {"Auth": ["Login"], "Billing": []}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Login"}, backlog["Auth"])
	assert.Empty(t, backlog["Billing"])

	// A missing backlog key is an empty mapping, not an error
	backlog, err = parseBacklogResponse(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, backlog)
	assert.Empty(t, backlog)
}

func TestParseDetailsResponse(t *testing.T) {
	details, err := parseDetailsResponse(`{"details": {"Login": "Implement OAuth."}}`)
	require.NoError(t, err)
	assert.Equal(t, "Implement OAuth.", details["Login"])

	_, err = parseDetailsResponse(`[1,2]`)
	assert.Error(t, err)
}

func TestParseSuggestionsResponseCapsAtTwo(t *testing.T) {
	raw := `{"suggestions": [
		{"featureName": "A", "description": "a"},
		{"featureName": "B", "description": "b"},
		{"featureName": "C", "description": "c"}
	]}`

	suggestions, err := parseSuggestionsResponse(raw)
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "A", suggestions[0].FeatureName)
	assert.Equal(t, "B", suggestions[1].FeatureName)
}

func TestCleanJSONBlock(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"  \n```json\n{\"a\":1}\n```\n ": `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanJSONBlock(in))
	}
}
