package main_test

import (
	"bytes"
	"context"
	"testing"

	"curator"
	main "curator/cmd/curator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("missing library path is a fatal configuration error", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{Config: curator.Config{SiteName: "The Library"}}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"library", "list"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, curator.ECONFIG, curator.ErrorCode(err))
		assert.Contains(t, stderr.String(), "CURATOR_LIBRARY")
	})

	t.Run("no command prints usage and errors", func(t *testing.T) {
		t.Parallel()

		m := &main.Main{Config: curator.Config{LibraryDir: t.TempDir(), SiteName: "The Library"}}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})
}
