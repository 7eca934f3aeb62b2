package curator

import "time"

// SitemapEntry is one URL in the generated sitemap.
type SitemapEntry struct {
	Loc     string
	LastMod time.Time
}

// SitemapWriter writes a sitemap document listing the library's pages.
type SitemapWriter interface {
	Write(path string, entries []SitemapEntry) error
}
