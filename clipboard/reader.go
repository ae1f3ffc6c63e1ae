package clipboard

import (
	"context"
	"errors"
)

var (
	// ErrNoImage is returned by readers when the system clipboard holds
	// no image.
	ErrNoImage = errors.New("no image on clipboard")

	// ErrNoContent is returned by readers when the system clipboard holds
	// no content of the requested flavor.
	ErrNoContent = errors.New("no content on clipboard")
)

// Image is raw image data pulled off the system clipboard.
type Image struct {
	Data     []byte
	MimeType string
}

// Reader abstracts the platform clipboard. Implementations live with the
// embedding product (browser binding, desktop shell); the engine only
// consumes this interface.
type Reader interface {
	// ReadImage returns image data from the clipboard, or ErrNoImage.
	// Permission denials surface as ordinary errors.
	ReadImage(ctx context.Context) (*Image, error)

	// ReadHTML returns an HTML payload from the clipboard, or
	// ErrNoContent.
	ReadHTML(ctx context.Context) (string, error)
}

// StaticReader is a Reader with fixed contents, for tests and headless use.
type StaticReader struct {
	Image *Image
	HTML  string

	// Err, when set, is returned by every read. Simulates denied
	// clipboard permission.
	Err error
}

// ReadImage implements the Reader interface.
func (r *StaticReader) ReadImage(ctx context.Context) (*Image, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Image == nil {
		return nil, ErrNoImage
	}
	return r.Image, nil
}

// ReadHTML implements the Reader interface.
func (r *StaticReader) ReadHTML(ctx context.Context) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	if r.HTML == "" {
		return "", ErrNoContent
	}
	return r.HTML, nil
}
