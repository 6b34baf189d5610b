package util

import (
	"strings"
	"unicode"
)

const maxFileNameRunes = 255

// SanitizeFileName keeps only the final path element of a client-supplied name and strips control characters.
// It returns fallback when nothing usable remains.
func SanitizeFileName(name, fallback string) string {
	s := strings.TrimSpace(name)
	if i := strings.LastIndexAny(s, `/\`); i >= 0 {
		s = s[i+1:]
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return fallback
	}
	if runes := []rune(s); len(runes) > maxFileNameRunes {
		s = string(runes[:maxFileNameRunes])
	}
	return s
}
