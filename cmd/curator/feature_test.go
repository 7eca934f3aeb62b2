package main_test

import (
	"bytes"
	"os"
	"testing"

	"curator"
	main "curator/cmd/curator"
	"curator/fs"
	"curator/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("features the named article and prints its title", func(t *testing.T) {
		t.Parallel()

		lib := newTestSite(t, "gophers")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newTestDeps(lib, []string{"gophers"}, stdout, stderr)

		cmd := &main.FeatureCmd{Article: "gophers"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "On gophers\n", stdout.String())

		home, err := os.ReadFile(fs.HomePath(lib))
		require.NoError(t, err)
		assert.Equal(t, "<html>On gophers</html>", string(home))
	})

	t.Run("the literal token random selects from the library", func(t *testing.T) {
		t.Parallel()

		lib := newTestSite(t, "ants", "bees")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newTestDeps(lib, []string{"ants", "bees"}, stdout, stderr)
		deps.Builder.RandInt = func(n int) int { return n - 1 }

		cmd := &main.FeatureCmd{Article: "random"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "On bees\n", stdout.String())
	})

	t.Run("an empty library is reported", func(t *testing.T) {
		t.Parallel()

		lib := newTestSite(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := newTestDeps(lib, nil, stdout, stderr)
		deps.Builder.Library = &mock.Library{
			ArticlesFn: func() ([]string, error) { return nil, nil },
		}

		err := (&main.FeatureCmd{Article: "random"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, curator.ENOTFOUND, curator.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no articles")
	})
}
