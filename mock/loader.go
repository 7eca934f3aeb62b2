// Package mock provides function-field mock implementations of the curator
// domain interfaces for use in tests.
package mock

import "curator"

var _ curator.ArticleLoader = (*ArticleLoader)(nil)

// ArticleLoader is a mock implementation of curator.ArticleLoader.
type ArticleLoader struct {
	LoadFn func(path string, exts ...curator.Extension) (*curator.Article, error)
}

func (l *ArticleLoader) Load(path string, exts ...curator.Extension) (*curator.Article, error) {
	return l.LoadFn(path, exts...)
}
