package blobstore

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const magicNumberSeek = 512

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrInvalidImageData    = errors.New("invalid image data")
)

type Image struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// DecodeImage decodes a base64 image payload and sniffs its content type
// against the allow-list. A "data:...;base64," prefix is tolerated.
func DecodeImage(payload string) (*Image, error) {
	if idx := strings.Index(payload, ";base64,"); idx != -1 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidImageData, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidImageData
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &Image{
		Size:     int64(len(data)),
		Data:     data,
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
	}, nil
}
