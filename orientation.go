// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"github.com/gogpu/canvas/internal/bitmap"
	"github.com/gogpu/canvas/style"
)

// SourceOrientation returns the orientation to apply when compositing a
// source's pixels.
//
// Style-participating sources read the computed image-orientation
// property when a computed style is available and default to honoring
// embedded metadata otherwise. Pre-decoded bitmap sources do not
// participate in style computation and always honor embedded metadata.
//
// Orientation is independent of NaturalSize: sizes are always reported in
// the decoded grid regardless of what this function returns.
func SourceOrientation(src ImageSource) Orientation {
	switch s := src.(type) {
	case *ImageElement:
		return styledOrientation(s.ComputedStyle())
	case *SVGImageElement:
		return styledOrientation(s.ComputedStyle())
	case *VideoElement:
		return styledOrientation(s.ComputedStyle())
	case *CanvasElement:
		return styledOrientation(s.ComputedStyle())
	default:
		return bitmap.FromImage
	}
}

func styledOrientation(cv *style.ComputedValues) Orientation {
	if cv == nil {
		return bitmap.FromImage
	}
	return orientationFromStyle(cv.ImageOrientation())
}

// orientationFromStyle maps the style-level orientation enumeration onto
// the graphics-level one.
func orientationFromStyle(o style.ImageOrientation) Orientation {
	if o == style.OrientationNone {
		return bitmap.FromDecoded
	}
	return bitmap.FromImage
}
