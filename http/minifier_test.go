package http_test

import (
	"context"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"curator"
	"curator/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifier_Minify(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body on HTTP 200", func(t *testing.T) {
		t.Parallel()

		var received string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			require.NoError(t, r.ParseForm())
			received = r.PostFormValue("input")
			io.WriteString(w, ".a{color:red}")
		}))
		defer srv.Close()

		m := http.NewMinifier(http.WithEndpoint(srv.URL))

		out, err := m.Minify(context.Background(), []byte(".a {\n  color: red;\n}\n"))

		require.NoError(t, err)
		assert.Equal(t, ".a{color:red}", out)
		assert.Equal(t, ".a {\n  color: red;\n}\n", received)
	})

	t.Run("returns EUNAVAILABLE naming the code on non-200", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		m := http.NewMinifier(http.WithEndpoint(srv.URL))

		_, err := m.Minify(context.Background(), []byte(".a{}"))

		require.Error(t, err)
		assert.Equal(t, curator.EUNAVAILABLE, curator.ErrorCode(err))
		assert.Contains(t, curator.ErrorMessage(err), "404")
	})

	t.Run("returns EUNAVAILABLE when the service is unreachable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
		srv.Close() // shut down before use

		m := http.NewMinifier(http.WithEndpoint(srv.URL))

		_, err := m.Minify(context.Background(), []byte(".a{}"))

		require.Error(t, err)
		assert.Equal(t, curator.EUNAVAILABLE, curator.ErrorCode(err))
	})
}
