package mock

import (
	"context"

	"curator"
)

var _ curator.Minifier = (*Minifier)(nil)

// Minifier is a mock implementation of curator.Minifier.
type Minifier struct {
	MinifyFn func(ctx context.Context, css []byte) (string, error)
}

func (m *Minifier) Minify(ctx context.Context, css []byte) (string, error) {
	return m.MinifyFn(ctx, css)
}
