// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

// Rect is an axis-aligned rectangle in floating-point pixel coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Size is a width/height pair in pixels. Both components may be zero: an
// empty source is valid, and whether drawing it is an error or a no-op is
// decided by the draw primitive.
type Size struct {
	Width, Height float64
}

// Empty reports whether either component is zero.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}
