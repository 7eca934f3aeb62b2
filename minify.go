package curator

import "context"

// Minifier submits CSS to a minification service.
type Minifier interface {
	// Minify returns the minified form of css. A service failure yields
	// an EUNAVAILABLE error naming the response code; the caller decides
	// whether that is fatal.
	Minify(ctx context.Context, css []byte) (string, error)
}
