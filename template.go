package curator

// Templates are pre-authored HTML skeletons with fixed insertion points.
// Binders parse a fresh tree from the template bytes on every call, mutate
// only that tree, and return the serialized document, so the template input
// is never aliased by the output.

// IndexEntry is one library-index block: a thumbnail, title, summary, and
// read-more link, all derived from a single article.
type IndexEntry struct {
	// Dir is the article directory name; links point at
	// <dir>/index.html and <dir>/cover-crop.jpg.
	Dir string

	Title   string
	Summary string
}

// Feature describes the homepage block highlighting one chosen article.
type Feature struct {
	// Dir is the article directory name; the image points at
	// <dir>/cover-sq.jpg and links at <dir>/index.html.
	Dir string

	Title string

	// Paragraph is the processed multi-sentence summary text.
	Paragraph string
}

// PageBinder builds a complete article page from the article template.
type PageBinder interface {
	// BindArticle binds the article's title, byline, content fragment,
	// optional artwork credit, and the copyright year into the template
	// and returns the serialized document.
	BindArticle(template []byte, article *Article, year int) ([]byte, error)
}

// IndexBinder builds the library index page from the library template.
type IndexBinder interface {
	// BindIndex appends one entry block per element of entries, in order,
	// to the template's list container and returns the serialized document.
	BindIndex(template []byte, entries []IndexEntry) ([]byte, error)
}

// FeatureBinder builds the homepage from the home template.
type FeatureBinder interface {
	// BindFeature replaces the feature section's image, links, heading,
	// and body text with the given feature and returns the serialized
	// document. Any paragraphs already present in the section are removed.
	BindFeature(template []byte, feature *Feature) ([]byte, error)
}
