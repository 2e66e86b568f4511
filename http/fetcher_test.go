package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookbind/bookbind"
	bookhttp "github.com/bookbind/bookbind/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on 200", func(t *testing.T) {
		t.Parallel()

		var gotAccept, gotUserAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			gotUserAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := bookhttp.NewFetcher()
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", string(body))
		assert.Equal(t, "*/*", gotAccept)
		assert.Equal(t, bookhttp.DefaultUserAgent, gotUserAgent)
	})

	t.Run("non-200 is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := bookhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, bookbind.EUNAVAILABLE, bookbind.ErrorCode(err))
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUserAgent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserAgent = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := bookhttp.NewFetcher(bookhttp.WithUserAgent("bookbind-test/1.0"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "bookbind-test/1.0", gotUserAgent)
	})
}
