package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// extensions maps the mime types the canvas uploads to file extensions.
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"audio/mpeg": ".mp3",
	"audio/wav":  ".wav",
	"video/mp4":  ".mp4",
}

// FSStore stores blobs on the local filesystem under root/bucket/ and
// returns file:// URLs. Suitable for desktop builds and tests.
type FSStore struct {
	root string
}

// NewFSStore creates a filesystem store rooted at root, creating the
// directory if missing.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Put implements the Store interface.
func (s *FSStore) Put(ctx context.Context, bucket string, data []byte, mimeType string) (Object, error) {
	if len(data) == 0 {
		return Object{}, ErrEmptyBlob
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Object{}, fmt.Errorf("create bucket %s: %w", bucket, err)
	}

	name := uuid.NewString() + extensions[mimeType]
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Object{}, fmt.Errorf("write blob: %w", err)
	}

	return Object{URL: "file://" + path, MimeType: mimeType}, nil
}
