package build_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"curator"
	"curator/build"
	"curator/fs"
	"curator/mock"

	"github.com/stretchr/testify/require"
)

// newTestSite lays out a site directory with the shared templates and the
// given article directories, returning the library root.
func newTestSite(t *testing.T, dirs ...string) string {
	t.Helper()

	site := t.TempDir()
	lib := filepath.Join(site, "library")
	templates := filepath.Join(site, "assets", "templates")
	require.NoError(t, os.MkdirAll(templates, 0755))

	for _, name := range []string{"article", "library", "home"} {
		path := filepath.Join(templates, name+".html")
		require.NoError(t, os.WriteFile(path, []byte("<html><body>"+name+"</body></html>"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(templates, "article.css"), []byte(".a {\n  color: red;\n}\n"), 0644))

	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(lib, dir), 0755))
		require.NoError(t, os.WriteFile(fs.MarkdownPath(lib, dir), []byte("---\ntitle: "+dir+"\n---\nbody\n"), 0644))
	}

	return lib
}

// newTestBuilder wires a Builder with permissive mocks; tests override the
// fields they care about.
func newTestBuilder(lib string, dirs []string) *build.Builder {
	return &build.Builder{
		Config: curator.Config{LibraryDir: lib, SiteName: "The Library"},
		Library: &mock.Library{
			ArticlesFn: func() ([]string, error) { return dirs, nil },
		},
		Loader: &mock.ArticleLoader{
			LoadFn: func(path string, _ ...curator.Extension) (*curator.Article, error) {
				if _, err := os.Stat(path); err != nil {
					return nil, curator.Errorf(curator.ENOTFOUND, "article file %q not found", path)
				}
				dir := filepath.Base(filepath.Dir(path))
				return &curator.Article{
					Dir:    dir,
					Title:  "On " + dir,
					Author: "Jan Nowak",
					HTML:   "<p>Body of " + dir + ".</p>",
				}, nil
			},
		},
		Text: &mock.TextExtractor{
			ExtractTextFn: func(fragment string) (string, error) { return fragment, nil },
		},
		Summarizer: &mock.Summarizer{
			SummarizeFn: func(text string, n int) ([]string, error) {
				return []string{"A summary sentence."}, nil
			},
		},
		Minifier: &mock.Minifier{
			MinifyFn: func(_ context.Context, _ []byte) (string, error) { return ".a{color:red}", nil },
		},
		Images: &mock.ImageProcessor{
			CropCenterFn: func(_, dst string, _, _ int) error { return os.WriteFile(dst, []byte("crop"), 0644) },
			FillFn:       func(_, dst string, _ int) error { return os.WriteFile(dst, []byte("sq"), 0644) },
		},
		Pages: &mock.Binder{
			BindArticleFn: func(_ []byte, a *curator.Article, _ int) ([]byte, error) {
				return []byte("<html>" + a.Title + "</html>"), nil
			},
		},
		Index: &mock.Binder{
			BindIndexFn: func(_ []byte, entries []curator.IndexEntry) ([]byte, error) {
				return []byte("<html>index</html>"), nil
			},
		},
		Features: &mock.Binder{
			BindFeatureFn: func(_ []byte, f *curator.Feature) ([]byte, error) {
				return []byte("<html>" + f.Title + "</html>"), nil
			},
		},
		Sitemap: &mock.SitemapWriter{
			WriteFn: func(_ string, _ []curator.SitemapEntry) error { return nil },
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
