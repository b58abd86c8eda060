// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bitmap

// Orientation selects how a bitmap's embedded orientation metadata is
// interpreted when querying sizes or materializing pixels.
type Orientation uint8

const (
	// FromDecoded ignores orientation metadata entirely: sizes and pixels
	// are reported in the decoded pixel grid, exactly as stored.
	FromDecoded Orientation = iota

	// FromImage honors the bitmap's embedded EXIF orientation, so sizes
	// and pixels reflect the display-rotated grid.
	FromImage
)

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case FromDecoded:
		return "FromDecoded"
	case FromImage:
		return "FromImage"
	}
	return "Unknown"
}

// ExifOrientation is an EXIF orientation tag value.
//
// Values follow the EXIF specification (1..8). The zero value means the
// bitmap carries no orientation metadata and is treated like ExifNormal.
type ExifOrientation uint8

const (
	// ExifNone means no orientation metadata is present.
	ExifNone ExifOrientation = 0

	// ExifNormal is the identity orientation.
	ExifNormal ExifOrientation = 1

	// ExifFlipH mirrors the image across the vertical axis.
	ExifFlipH ExifOrientation = 2

	// ExifRotate180 rotates the image by 180 degrees.
	ExifRotate180 ExifOrientation = 3

	// ExifFlipV mirrors the image across the horizontal axis.
	ExifFlipV ExifOrientation = 4

	// ExifTranspose rotates 90 degrees clockwise, then mirrors horizontally.
	ExifTranspose ExifOrientation = 5

	// ExifRotate90 rotates the image by 90 degrees clockwise.
	ExifRotate90 ExifOrientation = 6

	// ExifTransverse rotates 90 degrees counter-clockwise, then mirrors
	// horizontally.
	ExifTransverse ExifOrientation = 7

	// ExifRotate270 rotates the image by 90 degrees counter-clockwise.
	ExifRotate270 ExifOrientation = 8
)

// Valid reports whether e is a defined EXIF orientation value (1..8).
func (e ExifOrientation) Valid() bool {
	return e >= ExifNormal && e <= ExifRotate270
}

// SwapsDimensions reports whether displaying with this orientation swaps
// the bitmap's width and height (the four 90-degree variants do).
func (e ExifOrientation) SwapsDimensions() bool {
	return e >= ExifTranspose && e <= ExifRotate270
}
