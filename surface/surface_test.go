// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSurfaceSize(t *testing.T) {
	s := NewImageSurface(800, 600)
	defer func() { _ = s.Close() }()

	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("expected 800x600, got %dx%d", s.Width(), s.Height())
	}
}

func TestImageSurfaceClampsDimensions(t *testing.T) {
	s := NewImageSurface(0, -5)
	defer func() { _ = s.Close() }()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected clamped 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer func() { _ = s.Close() }()

	s.Clear(color.RGBA{R: 255, A: 255})
	if got := s.RGBA().RGBAAt(2, 2); got.R != 255 || got.A != 255 {
		t.Errorf("expected red after clear, got %v", got)
	}
}

func TestImageSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer func() { _ = s.Close() }()

	snap := s.Snapshot()
	snap.SetRGBA(0, 0, color.RGBA{G: 255, A: 255})
	if got := s.RGBA().RGBAAt(0, 0); got.G != 0 {
		t.Errorf("snapshot should not share storage with the surface, got %v", got)
	}
}

func TestImageSurfaceFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 20))
	s := NewImageSurfaceFromImage(img)
	defer func() { _ = s.Close() }()

	if s.Width() != 10 || s.Height() != 20 {
		t.Errorf("expected 10x20, got %dx%d", s.Width(), s.Height())
	}
	if s.RGBA() != img {
		t.Error("surface should render into the provided image")
	}
}

func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer func() { _ = s.Close() }()

	s.Clear(color.RGBA{R: 255, A: 255})
	if err := s.Resize(8, 2); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("expected 8x2 after resize, got %dx%d", s.Width(), s.Height())
	}
	if got := s.RGBA().RGBAAt(0, 0); got.A != 0 {
		t.Errorf("resize should clear content, got %v", got)
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(4, 4)

	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close should be idempotent: %v", err)
	}

	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("closed surface should report zero size, got %dx%d", s.Width(), s.Height())
	}
	if s.RGBA() != nil {
		t.Error("closed surface should not expose a pixel buffer")
	}
	if snap := s.Snapshot(); !snap.Bounds().Empty() {
		t.Errorf("closed surface snapshot should be empty, got %v", snap.Bounds())
	}
	if err := s.Flush(); err != ErrClosed {
		t.Errorf("expected ErrClosed from Flush, got %v", err)
	}
	if err := s.Resize(2, 2); err != ErrClosed {
		t.Errorf("expected ErrClosed from Resize, got %v", err)
	}
}
