package mock

import "curator"

var _ curator.Library = (*Library)(nil)

// Library is a mock implementation of curator.Library.
type Library struct {
	ArticlesFn func() ([]string, error)
}

func (l *Library) Articles() ([]string, error) {
	return l.ArticlesFn()
}
