package orchestrator

import (
	"context"

	"github.com/priya/ideacraft/internal/models"
	"github.com/priya/ideacraft/internal/store"
)

// SuggestionCapability surfaces ad-hoc feature ideas. Implementations catch
// their own failures and return an empty list; suggestions are decorative.
type SuggestionCapability interface {
	GenerateFeatureSuggestions(ctx context.Context, brainDump string) []models.SpotlightSuggestion
}

// SpotlightFetcher fetches suggestions for a single spotlighted project,
// independently of the main pipeline
type SpotlightFetcher struct {
	store      *store.Store
	capability SuggestionCapability
}

// NewSpotlightFetcher creates a fetcher over the given store and capability
func NewSpotlightFetcher(s *store.Store, capability SuggestionCapability) *SpotlightFetcher {
	return &SpotlightFetcher{store: s, capability: capability}
}

// Spotlight marks the project as spotlighted (discarding previous
// suggestions) and fetches fresh ones. Projects without a brain dump, and
// unknown ids, get no call and no suggestions.
func (f *SpotlightFetcher) Spotlight(ctx context.Context, projectID string) {
	f.store.SetSpotlightedProject(projectID)
	if projectID == "" {
		return
	}

	project, ok := f.store.GetProject(projectID)
	if !ok || project.BrainDump == "" {
		return
	}

	suggestions := f.capability.GenerateFeatureSuggestions(ctx, project.BrainDump)
	f.store.SetSpotlightSuggestions(suggestions)
}

// Clear ends spotlighting and discards the current suggestions
func (f *SpotlightFetcher) Clear() {
	f.store.SetSpotlightedProject("")
}
