package models

// SpotlightSuggestion is an ephemeral feature idea surfaced for a spotlighted
// project. Suggestions are never persisted.
type SpotlightSuggestion struct {
	FeatureName string `json:"featureName"`
	Description string `json:"description"`
}
