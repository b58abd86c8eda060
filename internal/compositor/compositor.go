// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor implements the software blit behind canvas draw
// operations: a source-rectangle to destination-rectangle composite of a
// bitmap into any draw.Image, with scaling and orientation applied.
package compositor

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/canvas/internal/bitmap"
)

// Quality selects the interpolator used when the composite scales.
type Quality uint8

const (
	// QualityNearest selects the closest source pixel. Fast and blocky.
	QualityNearest Quality = iota

	// QualityLow uses fast approximate bilinear interpolation.
	QualityLow

	// QualityMedium uses exact bilinear interpolation.
	QualityMedium

	// QualityHigh uses the Catmull-Rom kernel.
	QualityHigh
)

// String returns a string representation of the quality.
func (q Quality) String() string {
	switch q {
	case QualityNearest:
		return "Nearest"
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	}
	return "Unknown"
}

func (q Quality) interpolator() xdraw.Interpolator {
	switch q {
	case QualityLow:
		return xdraw.ApproxBiLinear
	case QualityMedium:
		return xdraw.BiLinear
	case QualityHigh:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// Params describes one composite.
//
// The source rectangle is expressed in the grid selected by Orientation:
// the decoded grid for FromDecoded, the display-rotated grid for
// FromImage.
type Params struct {
	SrcX, SrcY, SrcW, SrcH float64
	DstX, DstY, DstW, DstH float64

	Orientation bitmap.Orientation
	Quality     Quality
}

// Composite draws the source region of b into the destination region of
// dst, scaling as needed. Output is clipped to dst's bounds. Degenerate
// regions (zero or negative extent) and a nil bitmap are silent no-ops.
func Composite(dst draw.Image, b *bitmap.Bitmap, p Params) {
	if dst == nil || b == nil {
		return
	}
	if p.SrcW <= 0 || p.SrcH <= 0 || p.DstW <= 0 || p.DstH <= 0 {
		return
	}

	src := b.Oriented(p.Orientation)
	sr := image.Rect(
		int(math.Floor(p.SrcX)),
		int(math.Floor(p.SrcY)),
		int(math.Ceil(p.SrcX+p.SrcW)),
		int(math.Ceil(p.SrcY+p.SrcH)),
	).Intersect(src.Bounds())
	if sr.Empty() {
		return
	}

	// Affine map taking source-rect coordinates onto the destination rect.
	sx := p.DstW / p.SrcW
	sy := p.DstH / p.SrcH
	s2d := f64.Aff3{
		sx, 0, p.DstX - sx*p.SrcX,
		0, sy, p.DstY - sy*p.SrcY,
	}

	p.Quality.interpolator().Transform(dst, s2d, src, sr, xdraw.Over, nil)
}
