package goquery

import (
	"fmt"
	"html"
	"strconv"

	"curator"
)

// BindArticle binds an article into the article template and returns the
// serialized page document.
func (b *Binder) BindArticle(template []byte, article *curator.Article, year int) ([]byte, error) {
	doc, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}

	content := doc.Find("#article-content")
	if content.Length() == 0 {
		return nil, curator.Errorf(curator.EINVALID, "article template has no #article-content slot")
	}

	doc.Find("title").SetText(b.siteName + " - " + article.Title)
	doc.Find("#article-title").SetText(article.Title)
	doc.Find("#article-byline").SetText("By " + article.Author)
	doc.Find("#footer-year").SetText(strconv.Itoa(year))
	content.SetHtml(article.HTML)

	if article.Artist != "" {
		credit := fmt.Sprintf(`<aside class="artwork-credit">Artwork by %s</aside>`,
			html.EscapeString(article.Artist))
		content.AfterHtml(credit)
	}

	out, err := doc.Html()
	if err != nil {
		return nil, curator.Errorf(curator.EINTERNAL, "failed to serialize article page: %v", err)
	}
	return []byte(out), nil
}
