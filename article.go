package curator

// Article represents one markdown-sourced content unit, identified by its
// directory name within the library.
type Article struct {
	// Dir is the article's directory name, relative to the library root.
	Dir string

	// Title, Author, and Artist come from document-level metadata.
	// Missing fields are empty strings, never an error.
	Title  string
	Author string
	Artist string

	// HTML is the rendered content fragment (no surrounding document).
	HTML string
}

// Extension names a markdown rendering extension enabled during a load.
type Extension string

// Rendering extensions understood by the loader. Unknown names are ignored.
const (
	ExtensionFootnotes   Extension = "footnotes"
	ExtensionTypographer Extension = "typographer"
	ExtensionGFM         Extension = "gfm"
)

// PageExtensions is the extension set used when rendering an article for
// its HTML page.
var PageExtensions = []Extension{ExtensionFootnotes, ExtensionTypographer, ExtensionGFM}

// SummaryExtensions is the extension set used when rendering an article
// only to feed the summarizer. Footnote markers would pollute sentence
// extraction, so the set is empty.
var SummaryExtensions = []Extension{}

// ArticleLoader loads an article's markdown source and metadata.
type ArticleLoader interface {
	// Load reads the markdown file at path and renders it honoring the
	// given extension set. Returns ENOTFOUND if the file is absent.
	Load(path string, exts ...Extension) (*Article, error)
}
