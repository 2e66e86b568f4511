package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bookbind/bookbind/fs"
	"github.com/bookbind/bookbind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	// Deterministic, hex-encoded, and sensitive to every byte of the URL.
	key := fs.CacheKey("https://example.com/article")
	assert.Len(t, key, 64)
	assert.Equal(t, key, fs.CacheKey("https://example.com/article"))
	assert.NotEqual(t, key, fs.CacheKey("https://example.com/article/"))
}

func TestPageCache_Load(t *testing.T) {
	t.Parallel()

	t.Run("fetches once and persists", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		var fetches int
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				fetches++
				return []byte("<html>page</html>"), nil
			},
		}

		cache := fs.NewPageCache(root, fetcher)

		got, err := cache.Load(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", got)
		assert.Equal(t, 1, fetches)

		// Second load comes from disk; the network is never consulted again.
		got, err = cache.Load(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", got)
		assert.Equal(t, 1, fetches)

		path := filepath.Join(root, fs.CacheDirName, fs.CacheKey("https://example.com/a")+".html")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html>page</html>", string(data))
	})

	t.Run("fetch error propagates without writing", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return nil, assert.AnError
			},
		}

		cache := fs.NewPageCache(root, fetcher)
		_, err := cache.Load(context.Background(), "https://example.com/a")
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(root, fs.CacheDirName))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("pre-seeded cache needs no fetcher call", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, fs.CacheDirName)
		require.NoError(t, os.MkdirAll(dir, 0755))
		url := "https://example.com/seeded"
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.CacheKey(url)+".html"), []byte("cached"), 0644))

		cache := fs.NewPageCache(root, &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				t.Fatal("fetcher must not be called")
				return nil, nil
			},
		})

		got, err := cache.Load(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, "cached", got)
	})
}
