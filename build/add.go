package build

import (
	"context"
	"os"
	"strings"

	"curator"
	"curator/fs"
)

// AddArticle builds the HTML page and derived assets for one article: the
// bound page document, a minified copy of the shared stylesheet, and the
// two cover variants. A missing cover image downgrades the image steps to
// a warning; a missing markdown file or template is fatal.
func (b *Builder) AddArticle(ctx context.Context, dir string) error {
	lib := b.Config.LibraryDir

	article, err := b.Loader.Load(fs.MarkdownPath(lib, dir), curator.PageExtensions...)
	if err != nil {
		return err
	}
	article.Dir = dir

	template, err := b.readTemplate("article")
	if err != nil {
		return err
	}

	page, err := b.Pages.BindArticle(template, article, b.now().Year())
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.PagePath(lib, dir), page, 0644); err != nil {
		return err
	}

	if err := fs.CopyFile(fs.StylesheetTemplatePath(lib), fs.StylesheetPath(lib, dir)); err != nil {
		return err
	}
	b.minifyStylesheet(ctx, dir)

	b.deriveCovers(dir)

	b.logger().Info("article added", "article", dir, "title", article.Title)
	return nil
}

// AddAll runs AddArticle for every article in the library.
func (b *Builder) AddAll(ctx context.Context) error {
	dirs, err := b.Library.Articles()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := b.AddArticle(ctx, dir); err != nil {
			return err
		}
	}
	return nil
}

// minifyStylesheet minifies the article's copied stylesheet. Remote
// failures are reported and skipped; the original file stays in place.
func (b *Builder) minifyStylesheet(ctx context.Context, dir string) {
	path := fs.StylesheetPath(b.Config.LibraryDir, dir)

	if err := MinifyFile(ctx, b.Minifier, path); err != nil {
		b.logger().Warn("stylesheet not minified",
			"article", dir,
			"reason", curator.ErrorMessage(err),
		)
	}
}

// deriveCovers writes the cropped and square cover variants. A missing
// source cover is a warning, not a failure; the add batch continues.
func (b *Builder) deriveCovers(dir string) {
	lib := b.Config.LibraryDir
	src := fs.CoverPath(lib, dir)

	if err := b.Images.CropCenter(src, fs.CoverCropPath(lib, dir), curator.CoverCropWidth, curator.CoverCropHeight); err != nil {
		b.logger().Warn("cover images skipped",
			"article", dir,
			"reason", curator.ErrorMessage(err),
		)
		return
	}

	if err := b.Images.Fill(src, fs.CoverSquarePath(lib, dir), curator.CoverSquareSize); err != nil {
		b.logger().Warn("square cover skipped",
			"article", dir,
			"reason", curator.ErrorMessage(err),
		)
	}
}

// MinifyFile submits the CSS file at path to the minifier and writes the
// result to a sibling <basename>.min.css file. Files already carrying the
// .min.css suffix are rejected with EINVALID; a missing file yields
// ENOTFOUND. On a service failure the original file is left untouched and
// the error is returned.
func MinifyFile(ctx context.Context, minifier curator.Minifier, path string) error {
	if strings.HasSuffix(path, ".min.css") {
		return curator.Errorf(curator.EINVALID, "%q is already minified", path)
	}
	if !strings.HasSuffix(path, ".css") {
		return curator.Errorf(curator.EINVALID, "%q is not a CSS file", path)
	}

	css, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return curator.Errorf(curator.ENOTFOUND, "CSS file %q not found", path)
	} else if err != nil {
		return err
	}

	minified, err := minifier.Minify(ctx, css)
	if err != nil {
		return err
	}

	out := strings.TrimSuffix(path, ".css") + ".min.css"
	return os.WriteFile(out, []byte(minified), 0644)
}
