package build

import (
	"context"
	"os"
	"strings"

	"curator"
	"curator/fs"
)

// Reindex rebuilds the library index page from scratch: one entry per
// article, in the library's enumeration order, each carrying a truncated
// one-sentence extractive summary. The previous index is fully replaced,
// never merged. A sitemap.xml listing every page is written alongside.
func (b *Builder) Reindex(ctx context.Context) error {
	lib := b.Config.LibraryDir

	dirs, err := b.Library.Articles()
	if err != nil {
		return err
	}

	template, err := b.readTemplate("library")
	if err != nil {
		return err
	}

	entries := make([]curator.IndexEntry, 0, len(dirs))
	for _, dir := range dirs {
		article, err := b.Loader.Load(fs.MarkdownPath(lib, dir), curator.SummaryExtensions...)
		if err != nil {
			return err
		}

		entries = append(entries, curator.IndexEntry{
			Dir:     dir,
			Title:   article.Title,
			Summary: b.indexSummary(dir, article.HTML),
		})
	}

	out, err := b.Index.BindIndex(template, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.IndexPath(lib), out, 0644); err != nil {
		return err
	}

	if err := b.writeSitemap(dirs); err != nil {
		return err
	}

	b.logger().Info("library reindexed", "articles", len(entries))
	return nil
}

// indexSummary produces the truncated one-sentence summary for an index
// entry. Articles the summarizer cannot handle get an empty summary and a
// warning rather than failing the reindex.
func (b *Builder) indexSummary(dir, fragment string) string {
	text, err := b.Text.ExtractText(fragment)
	if err != nil {
		b.logger().Warn("summary skipped", "article", dir, "reason", curator.ErrorMessage(err))
		return ""
	}

	sentences, err := b.Summarizer.Summarize(text, 1)
	if err != nil {
		b.logger().Warn("summary skipped", "article", dir, "reason", curator.ErrorMessage(err))
		return ""
	}
	if len(sentences) == 0 {
		return ""
	}

	return curator.Truncate(sentences[0], SummaryLimit)
}

func (b *Builder) writeSitemap(dirs []string) error {
	lib := b.Config.LibraryDir
	now := b.now()

	entries := make([]curator.SitemapEntry, 0, len(dirs)+1)
	entries = append(entries, curator.SitemapEntry{Loc: b.absolutize("index.html"), LastMod: now})
	for _, dir := range dirs {
		entries = append(entries, curator.SitemapEntry{Loc: b.absolutize(dir + "/index.html"), LastMod: now})
	}

	return b.Sitemap.Write(fs.SitemapPath(lib), entries)
}

func (b *Builder) absolutize(loc string) string {
	if b.Config.BaseURL == "" {
		return loc
	}
	return strings.TrimSuffix(b.Config.BaseURL, "/") + "/" + loc
}
