package blob

import (
	"context"
	"errors"
)

// ErrEmptyBlob is returned when an upload carries no data.
var ErrEmptyBlob = errors.New("blob is empty")

// Object describes a stored blob.
type Object struct {
	// URL locates the stored blob. Node data references this.
	URL string `json:"url"`

	// MimeType is the content type the blob was uploaded with.
	MimeType string `json:"mimeType"`
}

// Store uploads binary blobs into a destination bucket and returns where
// they landed. Implementations make no assumption about the storage medium.
type Store interface {
	Put(ctx context.Context, bucket string, data []byte, mimeType string) (Object, error)
}
