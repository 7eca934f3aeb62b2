package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"curator"
	"curator/mock"
	curslog "curator/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMinifier_Minify(t *testing.T) {
	t.Parallel()

	t.Run("logs success and returns the minified text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Minifier{
			MinifyFn: func(_ context.Context, _ []byte) (string, error) {
				return ".a{color:red}", nil
			},
		}

		out, err := curslog.NewLoggingMinifier(next, logger).Minify(context.Background(), []byte(".a {}"))

		require.NoError(t, err)
		assert.Equal(t, ".a{color:red}", out)
		assert.Contains(t, buf.String(), "css minified")
	})

	t.Run("logs a warning naming the failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Minifier{
			MinifyFn: func(_ context.Context, _ []byte) (string, error) {
				return "", curator.Errorf(curator.EUNAVAILABLE, "minify service returned HTTP 404")
			},
		}

		_, err := curslog.NewLoggingMinifier(next, logger).Minify(context.Background(), []byte(".a {}"))

		require.Error(t, err)
		assert.Contains(t, buf.String(), "css minification failed")
		assert.Contains(t, buf.String(), "404")
	})
}
