package mock

import "curator"

var (
	_ curator.PageBinder    = (*Binder)(nil)
	_ curator.IndexBinder   = (*Binder)(nil)
	_ curator.FeatureBinder = (*Binder)(nil)
)

// Binder is a mock implementation of the curator template binders.
type Binder struct {
	BindArticleFn func(template []byte, article *curator.Article, year int) ([]byte, error)
	BindIndexFn   func(template []byte, entries []curator.IndexEntry) ([]byte, error)
	BindFeatureFn func(template []byte, feature *curator.Feature) ([]byte, error)
}

func (b *Binder) BindArticle(template []byte, article *curator.Article, year int) ([]byte, error) {
	return b.BindArticleFn(template, article, year)
}

func (b *Binder) BindIndex(template []byte, entries []curator.IndexEntry) ([]byte, error) {
	return b.BindIndexFn(template, entries)
}

func (b *Binder) BindFeature(template []byte, feature *curator.Feature) ([]byte, error) {
	return b.BindFeatureFn(template, feature)
}
