package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

const DefaultMaxDimension = 4096

var (
	ErrUnsupportedImage = errors.New("media: unsupported image format")
	ErrImageTooLarge    = errors.New("media: image exceeds size limit")
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// ValidateImage reads the upload, checks it decodes as gif/jpeg/png/webp and
// stays within the byte and dimension limits, and returns the raw bytes with
// the sniffed content type.
func ValidateImage(upload Upload, maxBytes int64, maxDimension int) ([]byte, string, error) {
	if upload.Reader == nil {
		return nil, "", fmt.Errorf("media: empty reader")
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if maxBytes > 0 && upload.Size > maxBytes {
		return nil, "", ErrImageTooLarge
	}

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, "", fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("media: empty image data")
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, "", ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", ErrUnsupportedImage
	}
	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return nil, "", ErrImageTooLarge
	}

	return data, "image/" + format, nil
}
