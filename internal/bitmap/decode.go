// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"golang.org/x/image/webp"
)

// Decode errors.
var (
	// ErrUnsupportedFormat is returned when the data is not a decodable
	// image format.
	ErrUnsupportedFormat = errors.New("bitmap: unsupported format")

	// ErrEmptyData is returned when the input contains no bytes.
	ErrEmptyData = errors.New("bitmap: empty data")
)

// Decode decodes an image from the given reader, auto-detecting the
// format. Supported formats: PNG, JPEG, GIF, WebP.
func Decode(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: read: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an image from a byte slice, auto-detecting the
// format with content sniffing.
func DecodeBytes(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind.Extension)
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("bitmap: sniff: %w", err)
	}

	var img image.Image
	switch kind.Extension {
	case "webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode %s: %w", kind.Extension, err)
	}
	return NewFromImage(img), nil
}

// Load decodes an image from the given file path.
func Load(path string) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("bitmap: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
