// Package build orchestrates the content-library workflows: building
// per-article pages with their derived assets, rebuilding the library
// index, and setting the homepage feature. It coordinates the loader,
// binders, summarizer, minifier, and image processor through their
// domain interfaces.
package build

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"curator"
	"curator/fs"
)

// SummaryLimit is the character budget for index summaries and feature
// sentences.
const SummaryLimit = 160

// Builder orchestrates the library workflows. All fields except Now,
// RandInt, and Logger are required.
type Builder struct {
	Config     curator.Config
	Library    curator.Library
	Loader     curator.ArticleLoader
	Text       curator.TextExtractor
	Summarizer curator.Summarizer
	Minifier   curator.Minifier
	Images     curator.ImageProcessor
	Pages      curator.PageBinder
	Index      curator.IndexBinder
	Features   curator.FeatureBinder
	Sitemap    curator.SitemapWriter
	Logger     *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// RandInt returns a uniform value in [0, n). Defaults to rand.Intn.
	RandInt func(n int) int
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) randInt(n int) int {
	if b.RandInt != nil {
		return b.RandInt(n)
	}
	return rand.Intn(n)
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// readTemplate reads one of the shared read-only templates by name
// (article, library, home). The templates are required inputs.
func (b *Builder) readTemplate(name string) ([]byte, error) {
	path := fs.TemplatePath(b.Config.LibraryDir, name)
	template, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, curator.Errorf(curator.ENOTFOUND, "template %q not found", path)
	} else if err != nil {
		return nil, err
	}
	return template, nil
}
