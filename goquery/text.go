package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"curator"
)

// Ensure TextExtractor implements curator.TextExtractor at compile time.
var _ curator.TextExtractor = (*TextExtractor)(nil)

// TextExtractor extracts the visible text of HTML fragments.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the visible text of an HTML fragment with runs of
// whitespace collapsed to single spaces.
func (e *TextExtractor) ExtractText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", curator.Errorf(curator.EINVALID, "failed to parse HTML fragment: %v", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
