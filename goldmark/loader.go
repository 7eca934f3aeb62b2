// Package goldmark provides a markdown-backed implementation of
// curator.ArticleLoader using the goldmark engine, with document metadata
// parsed from YAML frontmatter.
package goldmark

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"curator"
)

// Ensure Loader implements curator.ArticleLoader at compile time.
var _ curator.ArticleLoader = (*Loader)(nil)

// Loader loads articles from markdown files. The loader is stateless; a
// fresh goldmark engine is built per call so extension sets never leak
// between loads.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// metadata is the frontmatter envelope. Fields absent from the document
// are left as empty strings.
type metadata struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Artist string `yaml:"artist"`
}

// Load reads the markdown file at path and renders it honoring the given
// extension set. Returns ENOTFOUND if the file is absent.
func (l *Loader) Load(path string, exts ...curator.Extension) (*curator.Article, error) {
	source, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, curator.Errorf(curator.ENOTFOUND, "article file %q not found", path)
	} else if err != nil {
		return nil, err
	}

	var meta metadata
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, curator.Errorf(curator.EINVALID, "invalid article metadata in %q: %v", path, err)
	}

	var buf bytes.Buffer
	if err := newEngine(exts).Convert(body, &buf); err != nil {
		return nil, curator.Errorf(curator.EINVALID, "failed to render %q: %v", path, err)
	}

	return &curator.Article{
		Dir:    filepath.Base(filepath.Dir(path)),
		Title:  meta.Title,
		Author: meta.Author,
		Artist: meta.Artist,
		HTML:   buf.String(),
	}, nil
}

// extensionRegistry maps extension names to goldmark extenders. Unknown
// names are ignored.
var extensionRegistry = map[curator.Extension]goldmark.Extender{
	curator.ExtensionFootnotes:   extension.Footnote,
	curator.ExtensionTypographer: extension.Typographer,
	curator.ExtensionGFM:         extension.GFM,
}

func newEngine(exts []curator.Extension) goldmark.Markdown {
	var extenders []goldmark.Extender
	for _, name := range exts {
		if e, ok := extensionRegistry[name]; ok {
			extenders = append(extenders, e)
		}
	}

	return goldmark.New(
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
		goldmark.WithExtensions(extenders...),
	)
}
