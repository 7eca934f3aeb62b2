package goquery

import (
	"fmt"
	"html"
	"strings"

	"curator"
)

// BindIndex appends one entry block per element of entries, in order, to
// the library template's list container and returns the serialized index
// document. The template is fully replaced on every bind; entries never
// merge with a previous index.
func (b *Binder) BindIndex(template []byte, entries []curator.IndexEntry) ([]byte, error) {
	doc, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}

	container := doc.Find("#library-list")
	if container.Length() == 0 {
		return nil, curator.Errorf(curator.EINVALID, "library template has no #library-list container")
	}

	for _, entry := range entries {
		container.AppendHtml(indexEntryHTML(entry))
	}

	out, err := doc.Html()
	if err != nil {
		return nil, curator.Errorf(curator.EINTERNAL, "failed to serialize library index: %v", err)
	}
	return []byte(out), nil
}

func indexEntryHTML(entry curator.IndexEntry) string {
	page := entry.Dir + "/index.html"
	thumb := entry.Dir + "/cover-crop.jpg"
	title := html.EscapeString(entry.Title)

	var sb strings.Builder
	sb.WriteString(`<div class="index-entry">`)
	fmt.Fprintf(&sb, `<a href="%s"><img class="index-thumb" src="%s" alt="%s"></a>`, page, thumb, title)
	fmt.Fprintf(&sb, `<h2><a href="%s">%s</a></h2>`, page, title)
	fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(entry.Summary))
	fmt.Fprintf(&sb, `<a class="read-more" href="%s">Read more</a>`, page)
	sb.WriteString(`</div>`)
	return sb.String()
}
