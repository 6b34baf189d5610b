package llm

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"strings"
)

// Section markers the model is instructed to echo around each part of its answer.
const (
	CoverLetterStart = "[START COVER LETTER]"
	CoverLetterEnd   = "[END COVER LETTER]"
	FeedbackStart    = "[START CV FEEDBACK]"
	FeedbackEnd      = "[END CV FEEDBACK]"
)

// Inputs longer than MaxInputChars are cut to TruncatedChars and suffixed.
const (
	MaxInputChars   = 6000
	TruncatedChars  = 5000
	TruncatedSuffix = "... [truncated]"
)

var (
	//go:embed prompts/system.txt
	systemTemplate string
	//go:embed prompts/user.txt
	userTemplate string
)

// BuildPrompt embeds the truncated résumé and job description into the fixed template.
func BuildPrompt(resumeText, jobDescriptionText string) Envelope {
	replacer := strings.NewReplacer(
		"{{JOB_DESCRIPTION}}", Truncate(jobDescriptionText),
		"{{RESUME}}", Truncate(resumeText),
		"{{COVER_LETTER_START}}", CoverLetterStart,
		"{{COVER_LETTER_END}}", CoverLetterEnd,
		"{{FEEDBACK_START}}", FeedbackStart,
		"{{FEEDBACK_END}}", FeedbackEnd,
	)
	return Envelope{
		System: strings.TrimSpace(systemTemplate),
		User:   replacer.Replace(strings.TrimSpace(userTemplate)),
	}
}

// Truncate applies the hard character cut. It counts runes, not bytes or tokens,
// and may split a word.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxInputChars {
		return text
	}
	return string(runes[:TruncatedChars]) + TruncatedSuffix
}

// PromptHash returns a stable digest of the envelope for log correlation.
func PromptHash(env Envelope) string {
	sum := sha256.Sum256([]byte("system: " + env.System + "\n\nuser: " + env.User))
	return hex.EncodeToString(sum[:])
}
