package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/h2non/filetype"

	"github.com/jsupreme/bgkit/internal/core/domain"
)

// ImageInfo summarizes a background candidate
type ImageInfo struct {
	MIME      string
	Extension string
	Bytes     int64
	Width     int // Zero when the format cannot be decoded
	Height    int
}

// FullSize reports whether the image has the slot dimensions
func (i ImageInfo) FullSize() bool {
	return i.Width == domain.Width && i.Height == domain.Height
}

// IsJPEG reports whether the content matches the .jpg slot filename
func (i ImageInfo) IsJPEG() bool {
	return i.Extension == "jpg"
}

// Inspect checks that data is an image of at least minBytes
func Inspect(data []byte, minBytes int) (ImageInfo, error) {
	info := ImageInfo{Bytes: int64(len(data))}

	if len(data) < minBytes {
		return info, fmt.Errorf("%w: %d bytes (minimum %d)", domain.ErrTooSmall, len(data), minBytes)
	}

	kind, err := filetype.Match(data)
	if err != nil || !filetype.IsImage(data) {
		return info, fmt.Errorf("%w: detected %q", domain.ErrNotImage, kind.MIME.Value)
	}
	info.MIME = kind.MIME.Value
	info.Extension = kind.Extension

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		info.Width, info.Height = cfg.Width, cfg.Height
	}
	return info, nil
}

// InspectFile runs Inspect on the file at path
func InspectFile(path string, minBytes int) (ImageInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImageInfo{}, err
	}
	return Inspect(data, minBytes)
}
