// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas implements the draw-image layer of a 2D canvas API.
//
// A heterogeneous, closed set of drawable sources (image elements, SVG
// image elements, video elements, canvas elements, and pre-decoded image
// bitmaps) can all be drawn with one of three operations:
//
//	ctx.DrawImage(src, dx, dy)
//	ctx.DrawImageScaled(src, dx, dy, dw, dh)
//	ctx.DrawImageRect(src, sx, sy, sw, sh, dx, dy, dw, dh)
//
// The shorter forms default the omitted rectangles from the source's
// natural size; all three collapse onto one canonical source-rect plus
// destination-rect request handed to a Painter, which owns the actual
// compositing.
//
// Two pure resolvers drive this:
//
//   - NaturalSize reports a source's effective pixel dimensions, always
//     measured in the decoded grid (orientation metadata is ignored when
//     sizing), preferring live pixel data and falling back to declared
//     sizes so drawing works before resources finish loading.
//   - SourceOrientation reports how orientation metadata should be
//     interpreted when compositing, from computed style when available.
//
// A software Painter built on golang.org/x/image/draw is provided; see
// NewSurfacePainter and NewSoftwareContext. Canvas-element backing
// stores live in the surface subpackage, which supports pluggable
// backends.
package canvas
