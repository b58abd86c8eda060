// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
)

// Draw errors.
var (
	// ErrNilPainter is returned when a Context is created without a
	// painter.
	ErrNilPainter = errors.New("canvas: painter is nil")

	// ErrDetachedBitmap is returned when drawing an ImageBitmap that has
	// been closed.
	ErrDetachedBitmap = errors.New("canvas: image bitmap is detached")

	// ErrZeroSizeCanvas is returned when drawing a canvas element whose
	// bitmap has a zero dimension.
	ErrZeroSizeCanvas = errors.New("canvas: canvas source has no pixels")
)

// SmoothingQuality is the quality level used when a draw scales its
// source, mirroring the imageSmoothingQuality canvas attribute.
type SmoothingQuality uint8

const (
	// SmoothingLow is fast approximate bilinear filtering. Default.
	SmoothingLow SmoothingQuality = iota

	// SmoothingMedium is exact bilinear filtering.
	SmoothingMedium

	// SmoothingHigh is Catmull-Rom filtering.
	SmoothingHigh
)

// String returns the canvas keyword for the quality level.
func (q SmoothingQuality) String() string {
	switch q {
	case SmoothingLow:
		return "low"
	case SmoothingMedium:
		return "medium"
	case SmoothingHigh:
		return "high"
	}
	return "unknown"
}

// PaintOptions carries the resolved compositing inputs alongside a draw
// request.
type PaintOptions struct {
	// Orientation is how the source bitmap's orientation metadata should
	// be interpreted, as resolved by SourceOrientation.
	Orientation Orientation

	// Smoothing enables interpolation when the draw scales.
	Smoothing bool

	// Quality selects the interpolation quality when Smoothing is on.
	Quality SmoothingQuality
}

// Painter performs the actual pixel compositing for draw operations. It
// owns clipping and blending; the Context owns argument defaulting and
// source resolution.
//
// The source rectangle is expressed in the grid selected by
// opts.Orientation.
type Painter interface {
	DrawBitmap(b *Bitmap, src, dst Rect, opts PaintOptions) error
}

// Context exposes the draw-image operations of a 2D canvas context,
// normalized onto a single painter primitive.
type Context struct {
	painter   Painter
	smoothing bool
	quality   SmoothingQuality
}

// NewContext creates a drawing context over the given painter.
func NewContext(p Painter) (*Context, error) {
	if p == nil {
		return nil, ErrNilPainter
	}
	return &Context{painter: p, smoothing: true, quality: SmoothingLow}, nil
}

// SetImageSmoothing enables or disables interpolation for scaled draws.
// Smoothing is enabled by default.
func (c *Context) SetImageSmoothing(enabled bool) { c.smoothing = enabled }

// ImageSmoothing reports whether interpolation is enabled.
func (c *Context) ImageSmoothing() bool { return c.smoothing }

// SetSmoothingQuality sets the interpolation quality for scaled draws.
func (c *Context) SetSmoothingQuality(q SmoothingQuality) { c.quality = q }

// SmoothingQuality returns the current interpolation quality.
func (c *Context) SmoothingQuality() SmoothingQuality { return c.quality }

// DrawImage draws the whole source at (dx, dy), one output unit per
// natural pixel. The source rectangle defaults to (0, 0, w, h) where
// (w, h) is the source's natural size, and the destination rectangle
// takes the same width and height.
func (c *Context) DrawImage(src ImageSource, dx, dy float64) error {
	size := NaturalSize(src)
	return c.drawImageInternal(src,
		0, 0, size.Width, size.Height,
		dx, dy, size.Width, size.Height)
}

// DrawImageScaled draws the whole source into the destination rectangle
// (dx, dy, dw, dh). The source rectangle defaults to the source's natural
// size.
func (c *Context) DrawImageScaled(src ImageSource, dx, dy, dw, dh float64) error {
	size := NaturalSize(src)
	return c.drawImageInternal(src,
		0, 0, size.Width, size.Height,
		dx, dy, dw, dh)
}

// DrawImageRect draws the source rectangle (sx, sy, sw, sh) into the
// destination rectangle (dx, dy, dw, dh). No defaulting is performed and
// the natural size is never consulted.
func (c *Context) DrawImageRect(src ImageSource, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	return c.drawImageInternal(src, sx, sy, sw, sh, dx, dy, dw, dh)
}

// drawImageInternal is the canonical 8-parameter draw primitive. It
// checks source usability, drops degenerate requests, and forwards
// everything else to the painter unchanged.
func (c *Context) drawImageInternal(src ImageSource, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	b, err := sourceBitmap(src)
	if err != nil {
		return err
	}
	if b == nil {
		// Source not ready (nothing decoded, no frame yet): drawing is
		// defined to do nothing.
		return nil
	}

	srcRect := Rect{X: sx, Y: sy, Width: sw, Height: sh}
	dstRect := Rect{X: dx, Y: dy, Width: dw, Height: dh}
	if srcRect.Empty() || dstRect.Empty() {
		return nil
	}

	opts := PaintOptions{
		Orientation: SourceOrientation(src),
		Smoothing:   c.smoothing,
		Quality:     c.quality,
	}
	Logger().Debug("draw image",
		"src", srcRect, "dst", dstRect, "orientation", opts.Orientation)
	return c.painter.DrawBitmap(b, srcRect, dstRect, opts)
}

// sourceBitmap materializes the pixel data for a source and applies the
// per-kind usability rules. A nil bitmap with a nil error means the
// source has nothing to draw yet.
func sourceBitmap(src ImageSource) (*Bitmap, error) {
	switch s := src.(type) {
	case *ImageBitmap:
		if s.Detached() {
			return nil, ErrDetachedBitmap
		}
		return s.Bitmap(), nil
	case *CanvasElement:
		if NaturalSize(s).Empty() {
			return nil, ErrZeroSizeCanvas
		}
		surf := s.Surface()
		if surf == nil {
			return nil, nil
		}
		return BitmapFromImage(surf.Snapshot()), nil
	case *ImageElement:
		// Animated images draw their current frame; static images draw
		// the decoded bitmap.
		if f := s.CurrentFrame(); f != nil {
			return f, nil
		}
		return s.Bitmap(), nil
	default:
		return src.Bitmap(), nil
	}
}
