package generate

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"vitae-backend/internal/extract"
	"vitae-backend/internal/llm"
	"vitae-backend/internal/shared/metrics"
	"vitae-backend/internal/shared/telemetry"
)

const missingInputMessage = "Resume and job description are required"

// Service turns a résumé and a job description into a cover letter and CV feedback.
type Service struct {
	LLM llm.Completer
}

// NewService constructs a Service. A nil completer behaves like llm.UnconfiguredClient.
func NewService(completer llm.Completer) *Service {
	if completer == nil {
		completer = llm.UnconfiguredClient{}
	}
	return &Service{LLM: completer}
}

// Generate validates the inputs, builds the prompt, makes exactly one completion call and parses the answer.
func (s *Service) Generate(ctx context.Context, resumeText, jobDescriptionText string) (llm.GeneratedContent, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescriptionText) == "" {
		return llm.GeneratedContent{}, &ValidationError{Message: missingInputMessage}
	}

	env := llm.BuildPrompt(resumeText, jobDescriptionText)
	resumeChars := utf8.RuneCountInString(resumeText)
	jdChars := utf8.RuneCountInString(jobDescriptionText)
	telemetry.Info("generate.start", map[string]any{
		"resume_chars":          resumeChars,
		"job_description_chars": jdChars,
		"truncated":             resumeChars > llm.MaxInputChars || jdChars > llm.MaxInputChars,
		"prompt_hash":           llm.PromptHash(env),
	})
	metrics.IncGenerationStarted()

	start := time.Now()
	raw, err := s.completer().Complete(ctx, env)
	elapsed := time.Since(start)
	metrics.ObserveGenerationDuration(elapsed)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generate.completion_failed", map[string]any{
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
		})
		return llm.GeneratedContent{}, &CompletionServiceError{Err: err}
	}

	content := llm.ParseResponse(raw)
	if missing := content.Missing(); len(missing) > 0 {
		telemetry.Info("generate.section_missing", map[string]any{
			"sections":     missing,
			"output_chars": utf8.RuneCountInString(raw),
		})
	}
	metrics.IncGenerationCompleted()
	telemetry.Info("generate.complete", map[string]any{
		"duration_ms":        elapsed.Milliseconds(),
		"cover_letter_chars": utf8.RuneCountInString(content.CoverLetter),
		"feedback_chars":     utf8.RuneCountInString(content.RevisedResume),
	})
	return content, nil
}

// GenerateFromDocument extracts the résumé text from doc and then calls Generate.
// Extraction failures keep their own error types.
func (s *Service) GenerateFromDocument(ctx context.Context, doc extract.Document, jobDescriptionText string) (llm.GeneratedContent, error) {
	if strings.TrimSpace(jobDescriptionText) == "" || len(doc.Data) == 0 {
		return llm.GeneratedContent{}, &ValidationError{Message: missingInputMessage}
	}
	resumeText, err := extract.Extract(ctx, doc)
	if err != nil {
		return llm.GeneratedContent{}, err
	}
	return s.Generate(ctx, resumeText, jobDescriptionText)
}

func (s *Service) completer() llm.Completer {
	if s.LLM == nil {
		return llm.UnconfiguredClient{}
	}
	return s.LLM
}
