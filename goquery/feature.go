package goquery

import (
	"fmt"
	"html"

	"curator"
)

// BindFeature replaces the home template's feature section contents with
// the given feature and returns the serialized home page.
func (b *Binder) BindFeature(template []byte, feature *curator.Feature) ([]byte, error) {
	doc, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}

	section := doc.Find("#featured")
	if section.Length() == 0 {
		return nil, curator.Errorf(curator.EINVALID, "home template has no #featured section")
	}

	page := feature.Dir + "/index.html"

	section.Find("img").SetAttr("src", feature.Dir+"/cover-sq.jpg")
	section.Find("a").SetAttr("href", page)
	section.Find("h2").First().SetText(feature.Title)

	// Clear any previously featured text before inserting the new one.
	section.Find("p").Remove()

	section.PrependHtml(`<span class="feature-label">Featured Article</span>`)
	section.AppendHtml(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(feature.Paragraph)))

	out, err := doc.Html()
	if err != nil {
		return nil, curator.Errorf(curator.EINTERNAL, "failed to serialize home page: %v", err)
	}
	return []byte(out), nil
}
