package llm

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 7000)
	got := Truncate(long)
	want := strings.Repeat("a", 5000) + "... [truncated]"
	if got != want {
		t.Fatalf("expected 5000 chars plus suffix, got %d chars", len([]rune(got)))
	}

	short := strings.Repeat("b", 100)
	if got := Truncate(short); got != short {
		t.Fatalf("expected short input unchanged, got %q", got)
	}

	atLimit := strings.Repeat("c", MaxInputChars)
	if got := Truncate(atLimit); got != atLimit {
		t.Fatalf("expected input at the threshold unchanged")
	}
}

func TestTruncateCountsRunesAndMaySplitWords(t *testing.T) {
	long := strings.Repeat("é", 4999) + "word" + strings.Repeat("x", 2000)
	got := Truncate(long)
	if !strings.HasSuffix(got, "w"+TruncatedSuffix) {
		t.Fatalf("expected mid-word cut after 5000 runes, got tail %q", got[len(got)-20:])
	}
	if n := len([]rune(strings.TrimSuffix(got, TruncatedSuffix))); n != TruncatedChars {
		t.Fatalf("expected %d runes kept, got %d", TruncatedChars, n)
	}
}

func TestBuildPromptEmbedsTruncatedInputs(t *testing.T) {
	resume := strings.Repeat("r", 7000)
	jd := strings.Repeat("j", 100)

	env := BuildPrompt(resume, jd)

	if !strings.Contains(env.User, strings.Repeat("r", 5000)+TruncatedSuffix) {
		t.Fatalf("expected truncated resume in user prompt")
	}
	if strings.Contains(env.User, strings.Repeat("r", 5001)) {
		t.Fatalf("expected resume cut at 5000 characters")
	}
	if !strings.Contains(env.User, "Job Description:\n"+jd+"\n") {
		t.Fatalf("expected job description embedded unmodified under its header")
	}
	if strings.Count(env.User, TruncatedSuffix) != 1 {
		t.Fatalf("expected exactly one truncated excerpt")
	}
}

func TestBuildPromptCarriesMarkerContract(t *testing.T) {
	env := BuildPrompt("resume text", "job description")

	for _, marker := range []string{CoverLetterStart, CoverLetterEnd, FeedbackStart, FeedbackEnd} {
		if strings.Count(env.User, marker) != 1 {
			t.Fatalf("expected marker %s exactly once in user prompt", marker)
		}
	}
	if strings.Contains(env.User, "{{") {
		t.Fatalf("expected all placeholders replaced, got %q", env.User)
	}
	if !strings.Contains(env.System, "cover letters") || !strings.Contains(env.System, "markdown") {
		t.Fatalf("unexpected system prompt %q", env.System)
	}
	jdAt := strings.Index(env.User, "Job Description:")
	cvAt := strings.Index(env.User, "Current CV:")
	if jdAt < 0 || cvAt < 0 || jdAt > cvAt {
		t.Fatalf("expected job description header before CV header")
	}
}

func TestBuildPromptDoesNotExpandPlaceholdersInInput(t *testing.T) {
	env := BuildPrompt("my CV mentions {{JOB_DESCRIPTION}}", "the JD")
	if !strings.Contains(env.User, "my CV mentions {{JOB_DESCRIPTION}}") {
		t.Fatalf("expected user text inserted verbatim")
	}
}

func TestPromptHashDeterministic(t *testing.T) {
	hash1 := PromptHash(BuildPrompt("resume text", "job description"))
	hash2 := PromptHash(BuildPrompt("resume text", "job description"))
	if hash1 != hash2 {
		t.Fatalf("expected deterministic prompt hash, got %q and %q", hash1, hash2)
	}
	if hashAlt := PromptHash(BuildPrompt("resume text", "different job")); hash1 == hashAlt {
		t.Fatalf("expected prompt hash to change when input changes")
	}
}
