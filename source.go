// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"github.com/gogpu/canvas/style"
	"github.com/gogpu/canvas/surface"
)

// ImageSource is a drawable source for canvas draw-image operations.
//
// The set of implementations is closed: image elements, SVG image
// elements, video elements, canvas elements, and pre-decoded image
// bitmaps. Every source exposes an optional backing bitmap and its
// element-level declared size; the concrete types add kind-specific
// probes (current video frame, live rendering surface, animated lengths).
type ImageSource interface {
	// Bitmap returns the backing bitmap, or nil when no pixel data has
	// been materialized for the source yet.
	Bitmap() *Bitmap

	// DeclaredWidth returns the element-level declared width, 0 if unset.
	DeclaredWidth() float64

	// DeclaredHeight returns the element-level declared height, 0 if
	// unset.
	DeclaredHeight() float64

	// isImageSource keeps the union closed.
	isImageSource()
}

// AnimatedLength is an SVG length with a base and an animated value.
// The animated value is what layout and drawing consume; it equals the
// base value when no animation is running.
type AnimatedLength struct {
	baseVal float64
	animVal float64
}

// NewAnimatedLength creates an animated length.
func NewAnimatedLength(base, anim float64) AnimatedLength {
	return AnimatedLength{baseVal: base, animVal: anim}
}

// StaticLength creates a length that is not being animated.
func StaticLength(v float64) AnimatedLength {
	return AnimatedLength{baseVal: v, animVal: v}
}

// BaseVal returns the underlying non-animated value.
func (l AnimatedLength) BaseVal() float64 { return l.baseVal }

// AnimVal returns the current animated value.
func (l AnimatedLength) AnimVal() float64 { return l.animVal }

// ImageElement is a bitmap-backed image element source.
//
// The decoded bitmap appears once loading and decoding complete; until
// then only the width/height content attributes are known. Animated
// images additionally carry a current frame distinct from the long-lived
// decoded bitmap.
type ImageElement struct {
	attrWidth  float64
	attrHeight float64
	bitmap     *Bitmap
	frame      *Bitmap
	computed   *style.ComputedValues
}

// NewImageElement creates an image element with the given width/height
// content attributes. Pass 0 for unset attributes.
func NewImageElement(width, height float64) *ImageElement {
	return &ImageElement{attrWidth: width, attrHeight: height}
}

// SetBitmap attaches the decoded bitmap.
func (e *ImageElement) SetBitmap(b *Bitmap) { e.bitmap = b }

// SetCurrentFrame attaches the current animation frame.
func (e *ImageElement) SetCurrentFrame(b *Bitmap) { e.frame = b }

// SetComputedStyle attaches the element's computed style snapshot.
func (e *ImageElement) SetComputedStyle(cv *style.ComputedValues) { e.computed = cv }

// Bitmap returns the decoded bitmap, or nil before decoding completes.
func (e *ImageElement) Bitmap() *Bitmap { return e.bitmap }

// CurrentFrame returns the current animation frame, or nil for static
// images.
func (e *ImageElement) CurrentFrame() *Bitmap { return e.frame }

// DeclaredWidth returns the width content attribute.
func (e *ImageElement) DeclaredWidth() float64 { return e.attrWidth }

// DeclaredHeight returns the height content attribute.
func (e *ImageElement) DeclaredHeight() float64 { return e.attrHeight }

// ComputedStyle returns the computed style, or nil when unavailable.
func (e *ImageElement) ComputedStyle() *style.ComputedValues { return e.computed }

func (e *ImageElement) isImageSource() {}

// SVGImageElement is a vector image element source. Its declared width
// and height are animated values that must be unwrapped before use.
type SVGImageElement struct {
	width    AnimatedLength
	height   AnimatedLength
	current  *Bitmap
	computed *style.ComputedValues
}

// NewSVGImageElement creates an SVG image element with the given declared
// lengths.
func NewSVGImageElement(width, height AnimatedLength) *SVGImageElement {
	return &SVGImageElement{width: width, height: height}
}

// SetCurrentBitmap attaches the currently rendered bitmap.
func (e *SVGImageElement) SetCurrentBitmap(b *Bitmap) { e.current = b }

// SetComputedStyle attaches the element's computed style snapshot.
func (e *SVGImageElement) SetComputedStyle(cv *style.ComputedValues) { e.computed = cv }

// Bitmap returns the currently rendered bitmap, or nil when the vector
// image has not been rasterized yet.
func (e *SVGImageElement) Bitmap() *Bitmap { return e.current }

// WidthLength returns the declared width as an animated length.
func (e *SVGImageElement) WidthLength() AnimatedLength { return e.width }

// HeightLength returns the declared height as an animated length.
func (e *SVGImageElement) HeightLength() AnimatedLength { return e.height }

// DeclaredWidth returns the unwrapped animated width value.
func (e *SVGImageElement) DeclaredWidth() float64 { return e.width.AnimVal() }

// DeclaredHeight returns the unwrapped animated height value.
func (e *SVGImageElement) DeclaredHeight() float64 { return e.height.AnimVal() }

// ComputedStyle returns the computed style, or nil when unavailable.
func (e *SVGImageElement) ComputedStyle() *style.ComputedValues { return e.computed }

func (e *SVGImageElement) isImageSource() {}

// VideoElement is a video element source. Frames arrive as playback
// progresses; before the first frame only the intrinsic video dimensions
// from container metadata are known.
type VideoElement struct {
	attrWidth   float64
	attrHeight  float64
	videoWidth  int
	videoHeight int
	frame       *Bitmap
	computed    *style.ComputedValues
}

// NewVideoElement creates a video element with the given intrinsic video
// dimensions (from the media container, not the display size).
func NewVideoElement(videoWidth, videoHeight int) *VideoElement {
	return &VideoElement{videoWidth: videoWidth, videoHeight: videoHeight}
}

// SetDeclaredSize sets the width/height content attributes.
func (e *VideoElement) SetDeclaredSize(width, height float64) {
	e.attrWidth = width
	e.attrHeight = height
}

// SetCurrentFrame attaches the current playback frame.
func (e *VideoElement) SetCurrentFrame(b *Bitmap) { e.frame = b }

// SetComputedStyle attaches the element's computed style snapshot.
func (e *VideoElement) SetComputedStyle(cv *style.ComputedValues) { e.computed = cv }

// Bitmap returns the current playback frame, or nil before the video is
// ready.
func (e *VideoElement) Bitmap() *Bitmap { return e.frame }

// CurrentFrame returns the current playback frame, or nil before the
// video is ready.
func (e *VideoElement) CurrentFrame() *Bitmap { return e.frame }

// VideoWidth returns the intrinsic video width in pixels.
func (e *VideoElement) VideoWidth() int { return e.videoWidth }

// VideoHeight returns the intrinsic video height in pixels.
func (e *VideoElement) VideoHeight() int { return e.videoHeight }

// DeclaredWidth returns the width content attribute.
func (e *VideoElement) DeclaredWidth() float64 { return e.attrWidth }

// DeclaredHeight returns the height content attribute.
func (e *VideoElement) DeclaredHeight() float64 { return e.attrHeight }

// ComputedStyle returns the computed style, or nil when unavailable.
func (e *VideoElement) ComputedStyle() *style.ComputedValues { return e.computed }

func (e *VideoElement) isImageSource() {}

// CanvasElement is a canvas element source. Once drawn to, the element
// owns a live rendering surface; its pixel size wins over the declared
// attributes.
type CanvasElement struct {
	attrWidth  float64
	attrHeight float64
	surf       surface.Surface
	computed   *style.ComputedValues
}

// NewCanvasElement creates a canvas element with the given width/height
// attributes.
func NewCanvasElement(width, height float64) *CanvasElement {
	return &CanvasElement{attrWidth: width, attrHeight: height}
}

// SetSurface attaches the element's live rendering surface.
func (e *CanvasElement) SetSurface(s surface.Surface) { e.surf = s }

// SetComputedStyle attaches the element's computed style snapshot.
func (e *CanvasElement) SetComputedStyle(cv *style.ComputedValues) { e.computed = cv }

// Surface returns the live rendering surface, or nil when the canvas has
// never been drawn to.
func (e *CanvasElement) Surface() surface.Surface { return e.surf }

// Bitmap returns nil; a canvas element's pixels live in its surface.
func (e *CanvasElement) Bitmap() *Bitmap { return nil }

// DeclaredWidth returns the width content attribute.
func (e *CanvasElement) DeclaredWidth() float64 { return e.attrWidth }

// DeclaredHeight returns the height content attribute.
func (e *CanvasElement) DeclaredHeight() float64 { return e.attrHeight }

// ComputedStyle returns the computed style, or nil when unavailable.
func (e *CanvasElement) ComputedStyle() *style.ComputedValues { return e.computed }

func (e *CanvasElement) isImageSource() {}

// ImageBitmap is a pre-decoded bitmap source. It does not participate in
// style computation and can be detached with Close, after which it is no
// longer drawable.
type ImageBitmap struct {
	bm       *Bitmap
	detached bool
}

// NewImageBitmap wraps a decoded bitmap as a drawable source.
func NewImageBitmap(b *Bitmap) *ImageBitmap {
	return &ImageBitmap{bm: b}
}

// Close detaches the bitmap, releasing its pixel data for this source.
func (ib *ImageBitmap) Close() {
	ib.detached = true
	ib.bm = nil
}

// Detached reports whether Close has been called.
func (ib *ImageBitmap) Detached() bool { return ib.detached }

// Bitmap returns the decoded bitmap, or nil once detached.
func (ib *ImageBitmap) Bitmap() *Bitmap { return ib.bm }

// Width returns the bitmap width in the decoded grid, 0 once detached.
func (ib *ImageBitmap) Width() int {
	if ib.bm == nil {
		return 0
	}
	return ib.bm.Width(OrientationFromDecoded)
}

// Height returns the bitmap height in the decoded grid, 0 once detached.
func (ib *ImageBitmap) Height() int {
	if ib.bm == nil {
		return 0
	}
	return ib.bm.Height(OrientationFromDecoded)
}

// DeclaredWidth returns 0; bitmap sources have no element attributes.
func (ib *ImageBitmap) DeclaredWidth() float64 { return 0 }

// DeclaredHeight returns 0; bitmap sources have no element attributes.
func (ib *ImageBitmap) DeclaredHeight() float64 { return 0 }

func (ib *ImageBitmap) isImageSource() {}
