// Package goquery provides DOM-splicing implementations of the curator
// template binders. Each bind parses a fresh tree from the template bytes,
// mutates only that tree, and returns the serialized document, so callers
// can reuse one template value across many binds.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"curator"
)

// Ensure Binder implements the template binder interfaces at compile time.
var (
	_ curator.PageBinder    = (*Binder)(nil)
	_ curator.IndexBinder   = (*Binder)(nil)
	_ curator.FeatureBinder = (*Binder)(nil)
)

// Binder binds computed values into the fixed insertion points of the
// article, library, and home templates.
type Binder struct {
	siteName string
}

// NewBinder creates a new Binder. siteName prefixes every page title.
func NewBinder(siteName string) *Binder {
	return &Binder{siteName: siteName}
}

func parseTemplate(template []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(template))
	if err != nil {
		return nil, curator.Errorf(curator.EINVALID, "failed to parse template: %v", err)
	}
	return doc, nil
}
