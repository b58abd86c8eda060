// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the backing store of a canvas element.
//
// A canvas element that has been sized and used owns a live rendering
// surface; the canvas draw layer reads the surface's pixel size and
// snapshots its contents when the canvas is drawn as an image source.
// Backends register themselves through the Registry so GPU
// implementations can plug in without a hard dependency here.
package surface

import (
	"image"
	"image/color"
)

// Surface is the rendering target owned by a canvas element.
//
// Surfaces are not safe for concurrent use; a surface belongs to a
// single owner which must not mutate it while draws reading from it are
// in flight.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// Snapshot returns a copy of the current surface contents.
	// Modifications to the returned image do not affect the surface.
	Snapshot() *image.RGBA

	// Flush completes pending operations. CPU surfaces return nil
	// immediately; GPU surfaces may submit and wait.
	Flush() error

	// Close releases resources. Close is idempotent; after Close the
	// surface reports zero size and empty snapshots.
	Close() error
}

// ImageBacked is implemented by surfaces whose pixels are directly
// addressable in memory. The canvas draw layer composites into the
// returned image without a copy.
type ImageBacked interface {
	Surface

	// RGBA returns the live pixel buffer, or nil if the surface is
	// closed. The buffer is shared with the surface.
	RGBA() *image.RGBA
}

// Resizable is implemented by surfaces that support changing dimensions.
// Resizing discards existing content, matching canvas semantics where
// setting width or height clears the bitmap.
type Resizable interface {
	Surface

	// Resize changes the surface dimensions and clears the content.
	Resize(width, height int) error
}

// Options configures surface creation.
type Options struct {
	// Width and Height are the surface dimensions in pixels.
	// Non-positive values are clamped to 1.
	Width  int
	Height int
}
