// Package etree provides an XML implementation of curator.SitemapWriter.
package etree

import (
	"github.com/beevik/etree"

	"curator"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapWriter implements curator.SitemapWriter at compile time.
var _ curator.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter writes sitemap.xml documents.
type SitemapWriter struct{}

// NewSitemapWriter creates a new SitemapWriter.
func NewSitemapWriter() *SitemapWriter {
	return &SitemapWriter{}
}

// Write writes a sitemap listing entries to path, replacing any previous
// file.
func (w *SitemapWriter) Write(path string, entries []curator.SitemapEntry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, entry := range entries {
		url := urlset.CreateElement("url")
		url.CreateElement("loc").SetText(entry.Loc)
		if !entry.LastMod.IsZero() {
			url.CreateElement("lastmod").SetText(entry.LastMod.Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return curator.Errorf(curator.EINTERNAL, "failed to write sitemap %q: %v", path, err)
	}
	return nil
}
