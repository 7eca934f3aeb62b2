// Package fs provides the on-disk layout of a content library: article
// enumeration and the fixed path conventions for inputs, generated files,
// and shared templates.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"curator"
)

// Ensure Library implements curator.Library at compile time.
var _ curator.Library = (*Library)(nil)

// Library enumerates articles under the library root.
type Library struct {
	root string
}

// NewLibrary creates a Library rooted at root.
func NewLibrary(root string) *Library {
	return &Library{root: root}
}

// Root returns the library root directory.
func (l *Library) Root() string {
	return l.root
}

// Articles returns the names of subdirectories containing an article.md.
// Raw directory-listing order is not stable across filesystems, so names
// are returned in lexicographic order (os.ReadDir's order) and every
// ordered operation builds on it.
func (l *Library) Articles() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if os.IsNotExist(err) {
		return nil, curator.Errorf(curator.ENOTFOUND, "library root %q not found", l.root)
	} else if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(MarkdownPath(l.root, entry.Name())); err != nil {
			continue
		}
		dirs = append(dirs, entry.Name())
	}
	return dirs, nil
}

// CopyFile copies src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if os.IsNotExist(err) {
		return curator.Errorf(curator.ENOTFOUND, "file %q not found", src)
	} else if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Input and generated file names within an article directory.
const (
	MarkdownFile    = "article.md"
	CoverFile       = "cover.jpg"
	PageFile        = "index.html"
	StylesheetFile  = "article.css"
	CoverCropFile   = "cover-crop.jpg"
	CoverSquareFile = "cover-sq.jpg"
	SitemapFile     = "sitemap.xml"
)

// MarkdownPath returns <lib>/<dir>/article.md.
func MarkdownPath(lib, dir string) string {
	return filepath.Join(lib, dir, MarkdownFile)
}

// CoverPath returns <lib>/<dir>/cover.jpg.
func CoverPath(lib, dir string) string {
	return filepath.Join(lib, dir, CoverFile)
}

// CoverCropPath returns <lib>/<dir>/cover-crop.jpg.
func CoverCropPath(lib, dir string) string {
	return filepath.Join(lib, dir, CoverCropFile)
}

// CoverSquarePath returns <lib>/<dir>/cover-sq.jpg.
func CoverSquarePath(lib, dir string) string {
	return filepath.Join(lib, dir, CoverSquareFile)
}

// PagePath returns <lib>/<dir>/index.html.
func PagePath(lib, dir string) string {
	return filepath.Join(lib, dir, PageFile)
}

// StylesheetPath returns <lib>/<dir>/article.css.
func StylesheetPath(lib, dir string) string {
	return filepath.Join(lib, dir, StylesheetFile)
}

// IndexPath returns the library index page, <lib>/index.html.
func IndexPath(lib string) string {
	return filepath.Join(lib, PageFile)
}

// SitemapPath returns <lib>/sitemap.xml.
func SitemapPath(lib string) string {
	return filepath.Join(lib, SitemapFile)
}

// HomePath returns the site's top-level home page, <lib>/../index.html.
func HomePath(lib string) string {
	return filepath.Join(lib, "..", PageFile)
}

// TemplatePath returns <lib>/../assets/templates/<name>.html for the
// shared read-only templates (article, library, home).
func TemplatePath(lib, name string) string {
	return filepath.Join(lib, "..", "assets", "templates", name+".html")
}

// StylesheetTemplatePath returns the shared CSS template,
// <lib>/../assets/templates/article.css.
func StylesheetTemplatePath(lib string) string {
	return filepath.Join(lib, "..", "assets", "templates", StylesheetFile)
}
