package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priya/ideacraft/internal/models"
	"github.com/priya/ideacraft/internal/store"
)

// fakeSuggester records calls and returns canned suggestions
type fakeSuggester struct {
	suggestions []models.SpotlightSuggestion
	calls       int
}

func (f *fakeSuggester) GenerateFeatureSuggestions(_ context.Context, _ string) []models.SpotlightSuggestion {
	f.calls++
	return f.suggestions
}

func TestSpotlightFetchesSuggestions(t *testing.T) {
	s := store.NewStore(nil)
	id := s.CreateProject("a")
	s.UpdateBrainDump(id, "an idea")

	gen := &fakeSuggester{suggestions: []models.SpotlightSuggestion{
		{FeatureName: "Dark mode", Description: "Night theme"},
	}}
	f := NewSpotlightFetcher(s, gen)

	f.Spotlight(context.Background(), id)

	assert.Equal(t, id, s.SpotlightedProjectID())
	assert.Equal(t, 1, gen.calls)
	assert.Len(t, s.SpotlightSuggestions(), 1)
}

func TestSpotlightSkipsEmptyBrainDump(t *testing.T) {
	s := store.NewStore(nil)
	id := s.CreateProject("a")

	gen := &fakeSuggester{}
	NewSpotlightFetcher(s, gen).Spotlight(context.Background(), id)

	assert.Equal(t, 0, gen.calls, "no call is made when the brain dump is empty")
	assert.Empty(t, s.SpotlightSuggestions())
}

func TestSpotlightUnknownProject(t *testing.T) {
	s := store.NewStore(nil)
	gen := &fakeSuggester{}

	NewSpotlightFetcher(s, gen).Spotlight(context.Background(), "ghost")
	assert.Equal(t, 0, gen.calls)
}

func TestSpotlightFailureYieldsEmptyList(t *testing.T) {
	s := store.NewStore(nil)
	id := s.CreateProject("a")
	s.UpdateBrainDump(id, "an idea")

	// A failing capability returns nil rather than an error
	gen := &fakeSuggester{suggestions: nil}
	NewSpotlightFetcher(s, gen).Spotlight(context.Background(), id)

	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, s.SpotlightSuggestions())
}

func TestSpotlightClearDiscardsSuggestions(t *testing.T) {
	s := store.NewStore(nil)
	id := s.CreateProject("a")
	s.UpdateBrainDump(id, "an idea")

	gen := &fakeSuggester{suggestions: []models.SpotlightSuggestion{{FeatureName: "x", Description: "y"}}}
	f := NewSpotlightFetcher(s, gen)
	f.Spotlight(context.Background(), id)
	f.Clear()

	assert.Empty(t, s.SpotlightedProjectID())
	assert.Empty(t, s.SpotlightSuggestions())
}
