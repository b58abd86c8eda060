// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "github.com/gogpu/canvas/internal/bitmap"

// NaturalSize returns the size used as the default source rectangle when
// a draw operation omits one.
//
// Every source kind prefers ground-truth pixel data when decoding or
// compositing has already produced some, and degrades to the declared
// intrinsic size otherwise, so drawing works even before a resource
// finishes loading. The declared-size fallback is a best-effort
// approximation: it need not match the eventual bitmap size, and callers
// must not treat the two paths as interchangeable.
//
// Bitmap sizes are always measured in the decoded grid; orientation
// metadata never affects the reported size.
func NaturalSize(src ImageSource) Size {
	switch s := src.(type) {
	case *ImageElement:
		if b := s.Bitmap(); b != nil {
			return decodedSize(b)
		}
		return Size{Width: s.DeclaredWidth(), Height: s.DeclaredHeight()}
	case *SVGImageElement:
		if b := s.Bitmap(); b != nil {
			return decodedSize(b)
		}
		return Size{
			Width:  s.WidthLength().AnimVal(),
			Height: s.HeightLength().AnimVal(),
		}
	case *VideoElement:
		if b := s.CurrentFrame(); b != nil {
			return decodedSize(b)
		}
		return Size{
			Width:  float64(s.VideoWidth()),
			Height: float64(s.VideoHeight()),
		}
	case *CanvasElement:
		if surf := s.Surface(); surf != nil {
			return Size{
				Width:  float64(surf.Width()),
				Height: float64(surf.Height()),
			}
		}
		return Size{Width: s.DeclaredWidth(), Height: s.DeclaredHeight()}
	default:
		// Bitmap-backed sources with no element semantics (ImageBitmap).
		if b := src.Bitmap(); b != nil {
			return decodedSize(b)
		}
		return Size{Width: src.DeclaredWidth(), Height: src.DeclaredHeight()}
	}
}

func decodedSize(b *Bitmap) Size {
	return Size{
		Width:  float64(b.Width(bitmap.FromDecoded)),
		Height: float64(b.Height(bitmap.FromDecoded)),
	}
}
