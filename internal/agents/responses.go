package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/priya/ideacraft/internal/models"
)

// maxSpotlightSuggestions caps how many ad-hoc suggestions are surfaced
const maxSpotlightSuggestions = 2

// buildContext joins the brain dump and attached docs into the context block
// shared by every pipeline prompt
func buildContext(brainDump string, docs []models.Doc) string {
	var sb strings.Builder
	sb.WriteString("BRAIN DUMP:\n")
	sb.WriteString(brainDump)
	sb.WriteString("\n\nDOCUMENTATION CONTEXT:\n")
	for i, d := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "--- DOC: %s ---\n%s", d.Name, d.Content)
	}
	return sb.String()
}

func parseSectionsResponse(raw string) ([]string, error) {
	var payload struct {
		Sections []string `json:"sections"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unparsable sections response: %w", err)
	}
	return payload.Sections, nil
}

func parseBacklogResponse(raw string) (map[string][]string, error) {
	var payload struct {
		Backlog map[string][]string `json:"backlog"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unparsable backlog response: %w", err)
	}
	if payload.Backlog == nil {
		payload.Backlog = map[string][]string{}
	}
	return payload.Backlog, nil
}

func parseDetailsResponse(raw string) (map[string]string, error) {
	var payload struct {
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unparsable details response: %w", err)
	}
	if payload.Details == nil {
		payload.Details = map[string]string{}
	}
	return payload.Details, nil
}

func parseSuggestionsResponse(raw string) ([]models.SpotlightSuggestion, error) {
	var payload struct {
		Suggestions []models.SpotlightSuggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unparsable suggestions response: %w", err)
	}
	if len(payload.Suggestions) > maxSpotlightSuggestions {
		payload.Suggestions = payload.Suggestions[:maxSpotlightSuggestions]
	}
	return payload.Suggestions, nil
}

// cleanJSONBlock strips markdown code fences that models sometimes wrap
// around JSON even when instructed not to
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
