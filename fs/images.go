package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/bookbind/bookbind"
)

// ImageDirName is the subdirectory of the output root holding downloaded
// images. The master index points :imagesdir: at it.
const ImageDirName = "images"

// ImagePath computes the local target for an image URL without touching the
// filesystem. The file name is the hex SHA-256 of the URL string with the
// extension taken from the URL's path component, so the mapping is a pure
// function of its inputs.
func ImagePath(rawURL, root string) (filePath, fileName string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", bookbind.Errorf(bookbind.EINVALID, "invalid image URL %q: %v", rawURL, err)
	}

	fileName = CacheKey(rawURL) + path.Ext(u.Path)
	filePath = filepath.Join(root, ImageDirName, fileName)
	return filePath, fileName, nil
}

// Ensure ImageStore implements bookbind.ImageStore at compile time.
var _ bookbind.ImageStore = (*ImageStore)(nil)

// ImageStore downloads images into <root>/images, keyed by ImagePath.
type ImageStore struct {
	root    string
	fetcher bookbind.Fetcher
}

// NewImageStore creates an ImageStore rooted at the output directory.
func NewImageStore(root string, fetcher bookbind.Fetcher) *ImageStore {
	return &ImageStore{root: root, fetcher: fetcher}
}

// Download returns the cached file name for the image, streaming the remote
// bytes to disk first unless the target file already exists.
func (s *ImageStore) Download(ctx context.Context, rawURL string) (string, error) {
	filePath, fileName, err := ImagePath(rawURL, s.root)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(filePath); err == nil {
		return fileName, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return "", err
	}

	return fileName, nil
}
