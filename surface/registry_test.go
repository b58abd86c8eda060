// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func TestGlobalRegistryHasImageBackend(t *testing.T) {
	s, err := New(100, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("expected default backend to produce *ImageSurface, got %T", s)
	}
	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", s.Width(), s.Height())
	}
}

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
	r.Register("high", 100, func(opts Options) (Surface, error) {
		return nil, errors.New("high backend broken")
	}, nil)

	names := r.Available()
	if len(names) != 2 || names[0] != "high" || names[1] != "low" {
		t.Fatalf("expected [high low], got %v", names)
	}

	// New falls through the broken high-priority backend to the working one.
	s, err := r.New(Options{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("New should fall back to the low backend: %v", err)
	}
	defer func() { _ = s.Close() }()
}

func TestRegistryAvailabilityFilter(t *testing.T) {
	r := NewRegistry()
	r.Register("never", 100, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, func() bool { return false })

	if names := r.Available(); len(names) != 0 {
		t.Errorf("unavailable backend should be filtered, got %v", names)
	}

	_, err := r.NewByName("never", Options{Width: 1, Height: 1})
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected UnavailableError, got %v", err)
	}

	_, err = r.New(Options{Width: 1, Height: 1})
	if !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("expected ErrNoBackendAvailable, got %v", err)
	}
}

func TestRegistryNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.NewByName("missing", Options{Width: 1, Height: 1})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "missing" {
		t.Errorf("expected name in error, got %q", notFound.Name)
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
	r.Unregister("temp")

	if names := r.Available(); len(names) != 0 {
		t.Errorf("expected empty registry after unregister, got %v", names)
	}
}
