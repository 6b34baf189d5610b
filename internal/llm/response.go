package llm

import (
	"regexp"
	"strings"
)

var (
	coverLetterPattern = sectionPattern(CoverLetterStart, CoverLetterEnd)
	feedbackPattern    = sectionPattern(FeedbackStart, FeedbackEnd)
)

func sectionPattern(start, end string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `(.*?)` + regexp.QuoteMeta(end))
}

// ParseResponse extracts the delimited sections from raw model output.
// A missing or malformed marker pair yields an empty field, never an error.
func ParseResponse(raw string) GeneratedContent {
	return GeneratedContent{
		CoverLetter:   section(coverLetterPattern, raw),
		RevisedResume: section(feedbackPattern, raw),
	}
}

func section(pattern *regexp.Regexp, raw string) string {
	match := pattern.FindStringSubmatch(raw)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// Missing names the sections that came back empty.
func (g GeneratedContent) Missing() []string {
	var missing []string
	if g.CoverLetter == "" {
		missing = append(missing, "cover_letter")
	}
	if g.RevisedResume == "" {
		missing = append(missing, "cv_feedback")
	}
	return missing
}
