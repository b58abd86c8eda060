// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"fmt"
	"image/draw"

	"github.com/gogpu/canvas/internal/compositor"
	"github.com/gogpu/canvas/surface"
)

// NewSurfacePainter returns a Painter that composites into target with
// the software compositor. Output is clipped to target's bounds.
func NewSurfacePainter(target draw.Image) Painter {
	return &surfacePainter{target: target}
}

type surfacePainter struct {
	target draw.Image
}

func (p *surfacePainter) DrawBitmap(b *Bitmap, src, dst Rect, opts PaintOptions) error {
	compositor.Composite(p.target, b, compositor.Params{
		SrcX: src.X, SrcY: src.Y, SrcW: src.Width, SrcH: src.Height,
		DstX: dst.X, DstY: dst.Y, DstW: dst.Width, DstH: dst.Height,
		Orientation: opts.Orientation,
		Quality:     paintQuality(opts),
	})
	return nil
}

func paintQuality(opts PaintOptions) compositor.Quality {
	if !opts.Smoothing {
		return compositor.QualityNearest
	}
	switch opts.Quality {
	case SmoothingHigh:
		return compositor.QualityHigh
	case SmoothingMedium:
		return compositor.QualityMedium
	default:
		return compositor.QualityLow
	}
}

// NewSoftwareContext creates a Context drawing into a freshly created
// surface from the surface registry. The surface is returned so the
// caller can snapshot or close it; the caller owns its lifetime.
func NewSoftwareContext(width, height int) (*Context, surface.Surface, error) {
	s, err := surface.New(width, height)
	if err != nil {
		return nil, nil, err
	}
	backed, ok := s.(surface.ImageBacked)
	if !ok {
		_ = s.Close()
		return nil, nil, fmt.Errorf("canvas: surface backend %T is not CPU-addressable", s)
	}
	ctx, err := NewContext(NewSurfacePainter(backed.RGBA()))
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return ctx, s, nil
}
