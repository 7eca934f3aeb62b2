package mock

import "curator"

var _ curator.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of curator.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(fragment string) (string, error)
}

func (e *TextExtractor) ExtractText(fragment string) (string, error) {
	return e.ExtractTextFn(fragment)
}
