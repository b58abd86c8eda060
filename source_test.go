// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import "testing"

func TestAnimatedLength(t *testing.T) {
	l := NewAnimatedLength(100, 250)
	if l.BaseVal() != 100 {
		t.Errorf("BaseVal: got %v", l.BaseVal())
	}
	if l.AnimVal() != 250 {
		t.Errorf("AnimVal: got %v", l.AnimVal())
	}

	s := StaticLength(42)
	if s.BaseVal() != 42 || s.AnimVal() != 42 {
		t.Errorf("StaticLength: got base %v anim %v", s.BaseVal(), s.AnimVal())
	}
}

func TestImageBitmapClose(t *testing.T) {
	ib := NewImageBitmap(mustBitmap(t, 8, 4))
	if ib.Detached() {
		t.Fatal("fresh ImageBitmap should not be detached")
	}
	if ib.Width() != 8 || ib.Height() != 4 {
		t.Errorf("expected 8x4, got %dx%d", ib.Width(), ib.Height())
	}

	ib.Close()
	if !ib.Detached() {
		t.Error("expected detached after Close")
	}
	if ib.Bitmap() != nil {
		t.Error("detached bitmap should not expose pixel data")
	}
	if ib.Width() != 0 || ib.Height() != 0 {
		t.Errorf("detached bitmap should report zero size, got %dx%d", ib.Width(), ib.Height())
	}
}

func TestDeclaredSizeDefaults(t *testing.T) {
	// Unset attributes read as zero across the union.
	sources := map[string]ImageSource{
		"image":  NewImageElement(0, 0),
		"svg":    NewSVGImageElement(AnimatedLength{}, AnimatedLength{}),
		"video":  NewVideoElement(0, 0),
		"canvas": NewCanvasElement(0, 0),
		"bitmap": NewImageBitmap(nil),
	}
	for name, src := range sources {
		if w := src.DeclaredWidth(); w != 0 {
			t.Errorf("%s: DeclaredWidth = %v, want 0", name, w)
		}
		if h := src.DeclaredHeight(); h != 0 {
			t.Errorf("%s: DeclaredHeight = %v, want 0", name, h)
		}
	}
}

func TestVideoElementAccessors(t *testing.T) {
	v := NewVideoElement(1920, 1080)
	if v.VideoWidth() != 1920 || v.VideoHeight() != 1080 {
		t.Errorf("intrinsic size: got %dx%d", v.VideoWidth(), v.VideoHeight())
	}

	v.SetDeclaredSize(640, 360)
	if v.DeclaredWidth() != 640 || v.DeclaredHeight() != 360 {
		t.Errorf("declared size: got %vx%v", v.DeclaredWidth(), v.DeclaredHeight())
	}

	frame := mustBitmap(t, 1920, 1080)
	v.SetCurrentFrame(frame)
	if v.CurrentFrame() != frame || v.Bitmap() != frame {
		t.Error("current frame should back both accessors")
	}
}

func TestCanvasElementHasNoBitmap(t *testing.T) {
	c := NewCanvasElement(10, 10)
	c.SetSurface(newTestSurface(t, 10, 10))
	if c.Bitmap() != nil {
		t.Error("canvas pixels live in the surface, not a bitmap")
	}
}
