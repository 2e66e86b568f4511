package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bookbind/bookbind/fs"
	"github.com/bookbind/bookbind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePath(t *testing.T) {
	t.Parallel()

	t.Run("pure function of url and root", func(t *testing.T) {
		t.Parallel()

		p1, n1, err := fs.ImagePath("https://example.com/img/cat.png", "out")
		require.NoError(t, err)
		p2, n2, err := fs.ImagePath("https://example.com/img/cat.png", "out")
		require.NoError(t, err)

		assert.Equal(t, p1, p2)
		assert.Equal(t, n1, n2)
	})

	tests := []struct {
		name    string
		url     string
		wantExt string
	}{
		{name: "png extension preserved", url: "https://example.com/a/photo.png", wantExt: ".png"},
		{name: "jpeg extension preserved", url: "https://example.com/photo.jpeg", wantExt: ".jpeg"},
		{name: "query string ignored for extension", url: "https://example.com/photo.gif?w=640", wantExt: ".gif"},
		{name: "no extension", url: "https://example.com/photo", wantExt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, name, err := fs.ImagePath(tt.url, "out")
			require.NoError(t, err)

			assert.Equal(t, fs.CacheKey(tt.url)+tt.wantExt, name)
			assert.Equal(t, filepath.Join("out", fs.ImageDirName, name), path)
			assert.True(t, strings.HasSuffix(name, tt.wantExt))
		})
	}
}

func TestImageStore_Download(t *testing.T) {
	t.Parallel()

	t.Run("downloads once", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		var fetches int
		store := fs.NewImageStore(root, &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				fetches++
				return []byte{0x89, 0x50}, nil
			},
		})

		name, err := store.Download(context.Background(), "https://example.com/cat.png")
		require.NoError(t, err)
		assert.Equal(t, fs.CacheKey("https://example.com/cat.png")+".png", name)

		again, err := store.Download(context.Background(), "https://example.com/cat.png")
		require.NoError(t, err)
		assert.Equal(t, name, again)
		assert.Equal(t, 1, fetches)

		data, err := os.ReadFile(filepath.Join(root, fs.ImageDirName, name))
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 0x50}, data)
	})

	t.Run("creates the images directory", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "nested", "out")
		store := fs.NewImageStore(root, &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return []byte("img"), nil
			},
		})

		_, err := store.Download(context.Background(), "https://example.com/cat.png")
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(root, fs.ImageDirName))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		t.Parallel()

		store := fs.NewImageStore(t.TempDir(), &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) ([]byte, error) {
				return nil, assert.AnError
			},
		})

		_, err := store.Download(context.Background(), "https://example.com/cat.png")
		require.Error(t, err)
	})
}
