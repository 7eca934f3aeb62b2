// Package tldr provides an extractive-summary implementation of
// curator.Summarizer backed by the tldr sentence-ranking algorithm.
package tldr

import (
	"strings"

	"github.com/JesusIslam/tldr"

	"curator"
)

// Ensure Summarizer implements curator.Summarizer at compile time.
var _ curator.Summarizer = (*Summarizer)(nil)

// Summarizer extracts ranked sentences from plain text. A fresh bag is
// built per call; tldr.Bag carries per-document state and is not reusable.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize returns up to n sentences extracted from text.
func (s *Summarizer) Summarize(text string, n int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, curator.Errorf(curator.EINVALID, "empty text input")
	}

	bag := tldr.New()
	sentences, err := bag.Summarize(text, n)
	if err != nil {
		return nil, curator.Errorf(curator.EINTERNAL, "summarization failed: %v", err)
	}

	out := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		if trimmed := strings.TrimSpace(sentence); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
