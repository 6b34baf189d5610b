package llm

import (
	"context"
	"errors"
)

// Generation parameters shared by every completion backend.
const (
	Temperature = 0.7
	MaxTokens   = 2500
)

// Completer sends a prompt envelope to a text-completion model and returns the raw text.
// Implementations make exactly one attempt.
type Completer interface {
	Complete(ctx context.Context, env Envelope) (string, error)
}

// Envelope is the system/user instruction pair sent to the model.
type Envelope struct {
	System string
	User   string
}

// GeneratedContent is the structured result parsed from the model output.
// RevisedResume carries the CV feedback section.
type GeneratedContent struct {
	CoverLetter   string `json:"coverLetter"`
	RevisedResume string `json:"revisedResume"`
}

// ErrNotConfigured is returned by UnconfiguredClient.
var ErrNotConfigured = errors.New("completion service not configured")

// UnconfiguredClient stands in when no provider credential is available in dev.
type UnconfiguredClient struct{}

// Complete returns ErrNotConfigured.
func (UnconfiguredClient) Complete(context.Context, Envelope) (string, error) {
	return "", ErrNotConfigured
}
