package curator

import (
	"regexp"
	"strings"
)

// Summarizer produces an extractive summary: a ranked subset of the
// document's own sentences, never paraphrased text.
type Summarizer interface {
	// Summarize returns up to n sentences extracted from text.
	Summarize(text string, n int) ([]string, error)
}

// citationRE matches citation-style bracket references such as [1] or [a].
var citationRE = regexp.MustCompile(`\[[^\[\]]*\]`)

// StripCitations removes citation-style bracket references from s.
func StripCitations(s string) string {
	return citationRE.ReplaceAllString(s, "")
}

// WordCrop crops s on a word boundary so that at most n characters remain,
// appending "..." when a crop occurs. Lengths are measured in runes, not
// bytes, so multibyte text is never cut mid-rune. Citation markers are
// stripped before the length is measured. Input already within n
// characters is returned unchanged, with no suffix.
func WordCrop(s string, n int) string {
	s = StripCitations(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	prefix := string(runes[:n+1])
	cut := strings.LastIndex(prefix, " ")
	if cut < 0 {
		return string(runes[:n]) + "..."
	}
	return strings.TrimRight(prefix[:cut], " ") + "..."
}

// Truncate hard-truncates s to at most n characters (runes), appending
// "..." when a truncation occurs. No word-boundary care is taken.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
