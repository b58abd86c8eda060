// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package style holds the computed style values consumed by canvas draw
// operations.
//
// Only the properties the canvas layer actually reads are modeled; style
// resolution itself (cascading, inheritance) is the embedding
// application's concern.
package style

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when parsing an unknown property value.
var ErrInvalidValue = errors.New("style: invalid value")

// ImageOrientation is the computed value of the image-orientation
// property.
type ImageOrientation uint8

const (
	// OrientationFromImage honors the orientation metadata embedded in
	// the image. This is the initial value.
	OrientationFromImage ImageOrientation = iota

	// OrientationNone ignores embedded orientation metadata; pixels are
	// presented in the decoded grid.
	OrientationNone
)

// String returns the CSS keyword for the orientation.
func (o ImageOrientation) String() string {
	switch o {
	case OrientationFromImage:
		return "from-image"
	case OrientationNone:
		return "none"
	}
	return "unknown"
}

// ParseImageOrientation parses a CSS image-orientation keyword.
func ParseImageOrientation(s string) (ImageOrientation, error) {
	switch s {
	case "from-image":
		return OrientationFromImage, nil
	case "none":
		return OrientationNone, nil
	}
	return OrientationFromImage, fmt.Errorf("%w: image-orientation %q", ErrInvalidValue, s)
}

// ComputedValues is a read-only snapshot of an element's computed style.
//
// A nil *ComputedValues means no computed style is available for the
// element (for example, it is not connected to a styled tree yet);
// consumers fall back to property initial values.
type ComputedValues struct {
	imageOrientation ImageOrientation
}

// NewComputedValues creates a computed style snapshot.
func NewComputedValues(orientation ImageOrientation) *ComputedValues {
	return &ComputedValues{imageOrientation: orientation}
}

// ImageOrientation returns the computed image-orientation value.
func (cv *ComputedValues) ImageOrientation() ImageOrientation {
	return cv.imageOrientation
}
