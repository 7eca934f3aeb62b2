package mock

import "curator"

var _ curator.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of curator.SitemapWriter.
type SitemapWriter struct {
	WriteFn func(path string, entries []curator.SitemapEntry) error
}

func (w *SitemapWriter) Write(path string, entries []curator.SitemapEntry) error {
	return w.WriteFn(path, entries)
}
