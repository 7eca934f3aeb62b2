package curator

// TextExtractor returns the visible text of a rendered HTML fragment,
// used to feed article content to the summarizer.
type TextExtractor interface {
	ExtractText(fragment string) (string, error)
}
