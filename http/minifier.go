// Package http provides an HTTP-based implementation of curator.Minifier
// that submits CSS to a remote minification service.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"curator"
)

// DefaultEndpoint is the minification service used when none is configured.
const DefaultEndpoint = "https://www.toptal.com/developers/cssminifier/raw"

// DefaultTimeout is the default timeout for minification requests.
const DefaultTimeout = 10 * time.Second

// Ensure Minifier implements curator.Minifier at compile time.
var _ curator.Minifier = (*Minifier)(nil)

// Minifier submits CSS payloads to a remote minification endpoint.
// One attempt per call; retry policy belongs to callers.
type Minifier struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a Minifier.
type Option func(*Minifier)

// WithEndpoint sets the minification service URL.
// Defaults to DefaultEndpoint if not specified.
func WithEndpoint(endpoint string) Option {
	return func(m *Minifier) {
		m.endpoint = endpoint
	}
}

// WithTimeout sets the timeout for minification requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(m *Minifier) {
		m.timeout = d
	}
}

// NewMinifier creates a new remote Minifier.
func NewMinifier(opts ...Option) *Minifier {
	m := &Minifier{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.client = &http.Client{
		Timeout: m.timeout,
	}

	return m
}

// Minify submits css to the remote endpoint and returns the minified text.
// A non-200 response yields an EUNAVAILABLE error naming the status code;
// the original payload is never modified.
func (m *Minifier) Minify(ctx context.Context, css []byte) (string, error) {
	form := url.Values{"input": {string(css)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", curator.Errorf(curator.EUNAVAILABLE, "minify service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", curator.Errorf(curator.EUNAVAILABLE, "minify service returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
