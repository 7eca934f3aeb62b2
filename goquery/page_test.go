package goquery_test

import (
	"testing"

	"curator"
	"curator/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleTemplate = `<!DOCTYPE html>
<html>
<head><title>placeholder</title></head>
<body>
<h1 id="article-title"></h1>
<p id="article-byline"></p>
<div id="article-content"></div>
<footer>Copyright <span id="footer-year"></span></footer>
</body>
</html>`

func TestBinder_BindArticle(t *testing.T) {
	t.Parallel()

	t.Run("binds title, byline, year, and content", func(t *testing.T) {
		t.Parallel()

		article := &curator.Article{
			Dir:    "gophers",
			Title:  "On Gophers",
			Author: "Jan Nowak",
			HTML:   "<p>Gophers are <em>burrowing</em> rodents.</p>",
		}

		out, err := goquery.NewBinder("The Library").BindArticle([]byte(articleTemplate), article, 2026)

		require.NoError(t, err)
		page := string(out)
		assert.Contains(t, page, "<title>The Library - On Gophers</title>")
		assert.Contains(t, page, `<h1 id="article-title">On Gophers</h1>`)
		assert.Contains(t, page, `<p id="article-byline">By Jan Nowak</p>`)
		assert.Contains(t, page, `<span id="footer-year">2026</span>`)
		assert.Contains(t, page, "<em>burrowing</em>")
	})

	t.Run("appends artwork credit only when an artist is set", func(t *testing.T) {
		t.Parallel()

		binder := goquery.NewBinder("The Library")

		withArtist := &curator.Article{Title: "T", Author: "A", Artist: "A. Painter", HTML: "<p>x</p>"}
		out, err := binder.BindArticle([]byte(articleTemplate), withArtist, 2026)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Artwork by A. Painter")

		withoutArtist := &curator.Article{Title: "T", Author: "A", HTML: "<p>x</p>"}
		out, err = binder.BindArticle([]byte(articleTemplate), withoutArtist, 2026)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "artwork-credit")
	})

	t.Run("does not mutate the template bytes", func(t *testing.T) {
		t.Parallel()

		template := []byte(articleTemplate)
		article := &curator.Article{Title: "T", Author: "A", HTML: "<p>x</p>"}

		_, err := goquery.NewBinder("The Library").BindArticle(template, article, 2026)

		require.NoError(t, err)
		assert.Equal(t, articleTemplate, string(template))
	})

	t.Run("rejects a template without a content slot", func(t *testing.T) {
		t.Parallel()

		article := &curator.Article{Title: "T", HTML: "<p>x</p>"}

		_, err := goquery.NewBinder("The Library").BindArticle([]byte("<html><body></body></html>"), article, 2026)

		require.Error(t, err)
		assert.Equal(t, curator.EINVALID, curator.ErrorCode(err))
	})
}
