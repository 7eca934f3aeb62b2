package build

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"curator"
	"curator/fs"
)

// FeatureSentences is the number of sentences in the featured paragraph.
const FeatureSentences = 3

// Feature rebuilds the homepage feature block around one article. name is
// an explicit article directory, or empty for a uniform random choice.
// Returns the chosen article's title.
func (b *Builder) Feature(ctx context.Context, name string) (string, error) {
	lib := b.Config.LibraryDir

	dir := name
	if dir == "" {
		dirs, err := b.Library.Articles()
		if err != nil {
			return "", err
		}
		if len(dirs) == 0 {
			return "", curator.Errorf(curator.ENOTFOUND, "library has no articles to feature")
		}
		dir = dirs[b.randInt(len(dirs))]
	}

	article, err := b.Loader.Load(fs.MarkdownPath(lib, dir), curator.SummaryExtensions...)
	if err != nil {
		return "", err
	}

	text, err := b.Text.ExtractText(article.HTML)
	if err != nil {
		return "", err
	}

	sentences, err := b.Summarizer.Summarize(text, FeatureSentences)
	if err != nil {
		return "", err
	}

	template, err := b.readTemplate("home")
	if err != nil {
		return "", err
	}

	out, err := b.Features.BindFeature(template, &curator.Feature{
		Dir:       dir,
		Title:     article.Title,
		Paragraph: FeatureParagraph(sentences, SummaryLimit),
	})
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(fs.HomePath(lib), out, 0644); err != nil {
		return "", err
	}

	b.logger().Info("feature set", "article", dir, "title", article.Title)
	return article.Title, nil
}

// FeatureParagraph joins extracted sentences into the featured paragraph.
// Citation markers are stripped; sentences longer than limit are cropped
// on a word boundary with a "..." suffix, shorter ones get "..." appended.
func FeatureParagraph(sentences []string, limit int) string {
	var sb strings.Builder
	for _, sentence := range sentences {
		stripped := curator.StripCitations(sentence)
		if utf8.RuneCountInString(stripped) > limit {
			sb.WriteString(curator.WordCrop(stripped, limit))
		} else {
			sb.WriteString(stripped)
			sb.WriteString("...")
		}
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
