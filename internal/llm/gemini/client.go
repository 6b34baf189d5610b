package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"vitae-backend/internal/llm"
	"vitae-backend/internal/shared/telemetry"
)

// Client implements llm.Completer on the Gemini API.
type Client struct {
	models *genai.Models
	model  string
}

// Options tweaks client construction. BaseURL is used by tests.
type Options struct {
	BaseURL string
}

// NewClient builds a Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string, opts Options) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{models: client.Models, model: model}, nil
}

// Complete sends the envelope once and returns the candidate text.
func (c *Client) Complete(ctx context.Context, env llm.Envelope) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(env.System, genai.RoleUser),
		Temperature:       genai.Ptr[float32](llm.Temperature),
		MaxOutputTokens:   llm.MaxTokens,
	}
	result, err := c.models.GenerateContent(ctx, c.model, genai.Text(env.User), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response empty content")
	}

	fields := map[string]any{
		"provider":    "gemini",
		"model":       c.model,
		"prompt_hash": llm.PromptHash(env),
	}
	if usage := result.UsageMetadata; usage != nil {
		fields["prompt_tokens"] = usage.PromptTokenCount
		fields["completion_tokens"] = usage.CandidatesTokenCount
		fields["total_tokens"] = usage.TotalTokenCount
	}
	telemetry.Info("llm.response", fields)
	return text, nil
}

var _ llm.Completer = (*Client)(nil)
