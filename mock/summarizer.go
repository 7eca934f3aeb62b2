package mock

import "curator"

var _ curator.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of curator.Summarizer.
type Summarizer struct {
	SummarizeFn func(text string, n int) ([]string, error)
}

func (s *Summarizer) Summarize(text string, n int) ([]string, error) {
	return s.SummarizeFn(text, n)
}
