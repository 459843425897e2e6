// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/smartspend/backend/internal/application/adapter"
)

const geminiModelName = "gemini-1.5-flash"

// knownCategories is the label set the model is asked to choose from.
// It mirrors the keyword classifier's category list.
var knownCategories = []string{
	"Groceries",
	"Dining",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Healthcare",
	"Shopping",
	"Travel",
	"Housing",
	"Income",
	"Uncategorized",
}

// GeminiCategorizer implements adapter.Categorizer using the Gemini API.
// It is an alternative backend to the HTTP data service, selected via
// configuration.
type GeminiCategorizer struct {
	client *genai.Client
}

// NewGeminiCategorizer creates a Gemini-backed categorizer.
func NewGeminiCategorizer(ctx context.Context, apiKey string) (*GeminiCategorizer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCategorizer{client: client}, nil
}

// Categorize asks the model for a single category label.
func (g *GeminiCategorizer) Categorize(ctx context.Context, description string) (string, error) {
	model := g.client.GenerativeModel(geminiModelName)
	model.SetTemperature(0)

	prompt := fmt.Sprintf(
		"Classify this financial transaction description into exactly one of these categories: %s.\n"+
			"Respond with the category name only, nothing else.\n\nDescription: %s",
		strings.Join(knownCategories, ", "),
		description,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer += string(text)
		}
	}
	answer = strings.TrimSpace(answer)

	for _, category := range knownCategories {
		if strings.EqualFold(answer, category) {
			return category, nil
		}
	}
	return "", fmt.Errorf("gemini returned an unknown category %q", answer)
}

// Close releases the underlying client.
func (g *GeminiCategorizer) Close() error {
	return g.client.Close()
}

var _ adapter.Categorizer = (*GeminiCategorizer)(nil)
