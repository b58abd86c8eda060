// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"image"
	"io"

	"github.com/gogpu/canvas/internal/bitmap"
)

// Bitmap is a public alias for the internal bitmap type: decoded pixel
// data plus EXIF orientation metadata. Size queries take an explicit
// Orientation so the decoded and display grids are never confused.
type Bitmap = bitmap.Bitmap

// Orientation selects how orientation metadata is interpreted when
// querying a bitmap.
type Orientation = bitmap.Orientation

// Orientation values.
const (
	// OrientationFromDecoded ignores orientation metadata: the decoded
	// pixel grid, exactly as stored.
	OrientationFromDecoded = bitmap.FromDecoded

	// OrientationFromImage honors the bitmap's embedded metadata.
	OrientationFromImage = bitmap.FromImage
)

// ExifOrientation is an EXIF orientation tag value (1..8; 0 for none).
type ExifOrientation = bitmap.ExifOrientation

// EXIF orientation values.
const (
	ExifNone       = bitmap.ExifNone
	ExifNormal     = bitmap.ExifNormal
	ExifFlipH      = bitmap.ExifFlipH
	ExifRotate180  = bitmap.ExifRotate180
	ExifFlipV      = bitmap.ExifFlipV
	ExifTranspose  = bitmap.ExifTranspose
	ExifRotate90   = bitmap.ExifRotate90
	ExifTransverse = bitmap.ExifTransverse
	ExifRotate270  = bitmap.ExifRotate270
)

// NewBitmap creates a blank bitmap with the given decoded-grid
// dimensions.
func NewBitmap(width, height int) (*Bitmap, error) {
	return bitmap.New(width, height)
}

// BitmapFromImage converts a standard image into a Bitmap with no
// orientation metadata.
func BitmapFromImage(img image.Image) *Bitmap {
	return bitmap.NewFromImage(img)
}

// BitmapFromImageWithExif converts a standard image into a Bitmap
// carrying the given EXIF orientation.
func BitmapFromImageWithExif(img image.Image, exif ExifOrientation) *Bitmap {
	return bitmap.FromImageWithExif(img, exif)
}

// DecodeBitmap decodes an image from the reader, auto-detecting the
// format. Supported formats: PNG, JPEG, GIF, WebP.
func DecodeBitmap(r io.Reader) (*Bitmap, error) {
	return bitmap.Decode(r)
}

// LoadBitmap decodes an image from the given file path.
func LoadBitmap(path string) (*Bitmap, error) {
	return bitmap.Load(path)
}
