// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package bitmap provides decoded bitmap storage for gogpu/canvas.
//
// A Bitmap couples pixel data in the decoded grid with optional EXIF
// orientation metadata. Size queries take an explicit Orientation so
// callers must decide whether the decoded or the display-rotated grid is
// wanted; there is deliberately no orientation-free Width/Height.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
)

// ErrInvalidSize is returned when a bitmap is created with non-positive
// dimensions.
var ErrInvalidSize = errors.New("bitmap: width and height must be positive")

// Bitmap is an immutable-by-convention pixel buffer in the decoded grid,
// plus the EXIF orientation it was decoded with.
//
// The pixel data is shared, not copied, by accessors; owners must not
// mutate it while draws that reference the bitmap are in flight.
type Bitmap struct {
	pix  *image.NRGBA
	exif ExifOrientation
}

// New creates a blank bitmap with the given decoded-grid dimensions.
func New(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Bitmap{pix: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// NewFromImage wraps or converts a standard image into a Bitmap with no
// orientation metadata. NRGBA images are wrapped without copying.
func NewFromImage(img image.Image) *Bitmap {
	return FromImageWithExif(img, ExifNone)
}

// FromImageWithExif converts a standard image into a Bitmap carrying the
// given EXIF orientation. The orientation describes how the pixels should
// be presented, not how they are stored.
func FromImageWithExif(img image.Image, exif ExifOrientation) *Bitmap {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return &Bitmap{pix: nrgba, exif: exif}
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Bitmap{pix: dst, exif: exif}
}

// Width returns the bitmap width in pixels under the given orientation
// interpretation. FromDecoded reports the stored grid; FromImage reports
// the display grid, which swaps width and height for the 90-degree EXIF
// orientations.
func (b *Bitmap) Width(o Orientation) int {
	if o == FromImage && b.exif.SwapsDimensions() {
		return b.pix.Rect.Dy()
	}
	return b.pix.Rect.Dx()
}

// Height returns the bitmap height in pixels under the given orientation
// interpretation.
func (b *Bitmap) Height(o Orientation) int {
	if o == FromImage && b.exif.SwapsDimensions() {
		return b.pix.Rect.Dx()
	}
	return b.pix.Rect.Dy()
}

// Exif returns the EXIF orientation metadata carried by the bitmap.
func (b *Bitmap) Exif() ExifOrientation {
	return b.exif
}

// Image returns the pixel data in the decoded grid. The returned image
// shares storage with the bitmap.
func (b *Bitmap) Image() *image.NRGBA {
	return b.pix
}

// Oriented materializes the pixel data under the given orientation.
//
// For FromDecoded, or when the bitmap carries no effective orientation,
// the stored pixels are returned directly. Otherwise a new image with the
// EXIF transform applied is returned.
func (b *Bitmap) Oriented(o Orientation) image.Image {
	if o == FromDecoded || b.exif <= ExifNormal {
		return b.pix
	}
	resize := &transform.RotationOptions{ResizeBounds: true}
	switch b.exif {
	case ExifFlipH:
		return transform.FlipH(b.pix)
	case ExifRotate180:
		return transform.Rotate(b.pix, 180, resize)
	case ExifFlipV:
		return transform.FlipV(b.pix)
	case ExifTranspose:
		return transform.FlipH(transform.Rotate(b.pix, 90, resize))
	case ExifRotate90:
		return transform.Rotate(b.pix, 90, resize)
	case ExifTransverse:
		return transform.FlipH(transform.Rotate(b.pix, -90, resize))
	case ExifRotate270:
		return transform.Rotate(b.pix, -90, resize)
	}
	return b.pix
}
