package agents

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/priya/ideacraft/internal/models"
)

// BlueprintAgent talks to Gemini to break a brain dump down into a blueprint.
// Every call requests a JSON response and parses it into the expected shape;
// a response that cannot be parsed is a generation error.
type BlueprintAgent struct {
	client *genai.Client
	model  string
}

// NewBlueprintAgent creates an agent bound to one Gemini model
func NewBlueprintAgent(ctx context.Context, apiKey, model string) (*BlueprintAgent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &BlueprintAgent{
		client: client,
		model:  model,
	}, nil
}

// Close releases the underlying API client
func (a *BlueprintAgent) Close() error {
	return a.client.Close()
}

// GenerateSections asks the model to break the idea into high-level section
// titles for a product backlog
func (a *BlueprintAgent) GenerateSections(ctx context.Context, brainDump string, docs []models.Doc) ([]string, error) {
	prompt := fmt.Sprintf(`You are a product manager AI. Your task is to structure product ideas into actionable backlogs without any placeholders.

Based on the provided context, break down the product idea into high-level sections for a product backlog.
Each section should represent a major feature area or component.
Your response must not contain any placeholders.

Respond with JSON of the form {"sections": ["Section title", ...]}.

Context:
%s`, buildContext(brainDump, docs))

	raw, err := a.generateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate blueprint sections: %w", err)
	}

	sections, err := parseSectionsResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to generate blueprint sections: %w", err)
	}
	return sections, nil
}

// GenerateBacklogTitles asks the model for backlog item titles per section.
// The result is keyed by section title; a section with no entry is valid and
// means an empty backlog.
func (a *BlueprintAgent) GenerateBacklogTitles(ctx context.Context, brainDump string, docs []models.Doc, sectionTitles []string) (map[string][]string, error) {
	prompt := fmt.Sprintf(`You are a product manager AI. Your task is to create backlog item titles without any placeholders.

Based on the context and the following sections, generate descriptive backlog item titles for each section.
These titles should represent specific tasks or user stories.
Your response must not contain any placeholders.

Respond with JSON of the form {"backlog": {"Section title": ["Item title", ...], ...}} with one key per section.

Context:
%s

SECTIONS:
%s`, buildContext(brainDump, docs), strings.Join(sectionTitles, ", "))

	raw, err := a.generateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate backlog titles: %w", err)
	}

	backlog, err := parseBacklogResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to generate backlog titles: %w", err)
	}
	return backlog, nil
}

// GenerateBacklogDetails asks the model for a detailed description of each
// backlog item in one section. The result is keyed by item title; absent
// entries are the caller's problem (it substitutes a placeholder).
func (a *BlueprintAgent) GenerateBacklogDetails(ctx context.Context, brainDump string, docs []models.Doc, sectionTitle string, itemTitles []string) (map[string]string, error) {
	prompt := fmt.Sprintf(`You are a senior software engineer AI. Your task is to write detailed, placeholder-free specifications for backlog items.

For the section %q, generate a detailed description for each of the following backlog items.
Each description should be a concise paragraph (2-4 sentences) outlining the task, its goal, and acceptance criteria.
Your response must not contain any placeholders.

Respond with JSON of the form {"details": {"Item title": "Description", ...}} with one key per backlog item.

Context:
%s

BACKLOG TITLES:
- %s`, sectionTitle, buildContext(brainDump, docs), strings.Join(itemTitles, "\n- "))

	raw, err := a.generateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate details for section %q: %w", sectionTitle, err)
	}

	details, err := parseDetailsResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to generate details for section %q: %w", sectionTitle, err)
	}
	return details, nil
}

// GenerateFeatureSuggestions asks the model for one or two ad-hoc feature
// ideas for a brain dump. Suggestions are decorative, so failures are
// swallowed and yield an empty list.
func (a *BlueprintAgent) GenerateFeatureSuggestions(ctx context.Context, brainDump string) []models.SpotlightSuggestion {
	prompt := fmt.Sprintf(`You are a creative product strategist AI. Your task is to brainstorm novel features.

Based on the following product idea, suggest 1-2 innovative and relevant new features.
For each feature, provide a catchy name and a short description.
Your response must not contain any placeholders.

Respond with JSON of the form {"suggestions": [{"featureName": "...", "description": "..."}]}.

Product Idea:
%s`, brainDump)

	raw, err := a.generateJSON(ctx, prompt)
	if err != nil {
		log.Printf("Warning: spotlight suggestion call failed: %v", err)
		return nil
	}

	suggestions, err := parseSuggestionsResponse(raw)
	if err != nil {
		log.Printf("Warning: spotlight suggestion response unparsable: %v", err)
		return nil
	}
	return suggestions
}

// generateJSON runs one model call in JSON response mode and returns the
// fence-stripped response text
func (a *BlueprintAgent) generateJSON(ctx context.Context, prompt string) (string, error) {
	model := a.client.GenerativeModel(a.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return cleanJSONBlock(text), nil
}

// extractText pulls the text parts out of a Gemini response
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
