// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: surface is closed")

// ImageSurface is a CPU surface backed by an *image.RGBA.
//
// This is the default backing store for canvas elements when no GPU
// backend is registered.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA
	closed bool
}

var (
	_ ImageBacked = (*ImageSurface)(nil)
	_ Resizable   = (*ImageSurface)(nil)
)

// NewImageSurface creates a CPU surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface that renders directly into
// the provided image.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	if s.closed {
		return 0
	}
	return s.width
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	if s.closed {
		return 0
	}
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// RGBA returns the live pixel buffer shared with the surface.
func (s *ImageSurface) RGBA() *image.RGBA {
	if s.closed {
		return nil
	}
	return s.img
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewRGBA(s.img.Bounds())
	copy(dst.Pix, s.img.Pix)
	return dst
}

// Flush is a no-op for CPU surfaces.
func (s *ImageSurface) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Resize changes the surface dimensions and clears the content.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close releases the pixel buffer. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	s.img = nil
	return nil
}
