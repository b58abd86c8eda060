// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command canvasdemo exercises the canvas draw-image layer: it draws an
// image element, a pre-decoded bitmap, and a nested canvas element onto
// a software surface and writes the result as a PNG.
package main

import (
	"flag"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/surface"
)

func main() {
	var (
		width   = flag.Int("width", 640, "output width")
		height  = flag.Int("height", 480, "output height")
		input   = flag.String("input", "", "optional image file to draw (PNG, JPEG, GIF, WebP)")
		output  = flag.String("output", "canvasdemo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, surf, err := canvas.NewSoftwareContext(*width, *height)
	if err != nil {
		log.Fatalf("create context: %v", err)
	}
	defer func() { _ = surf.Close() }()

	// Pre-decoded bitmap source: a generated checker pattern, drawn at
	// natural size and scaled up.
	checker := makeChecker(64, 64)
	bm := canvas.NewImageBitmap(checker)
	if err := ctx.DrawImage(bm, 16, 16); err != nil {
		log.Fatalf("draw bitmap: %v", err)
	}
	if err := ctx.DrawImageScaled(bm, 96, 16, 128, 128); err != nil {
		log.Fatalf("draw scaled bitmap: %v", err)
	}

	// Image element source: decoded from a file when given, otherwise
	// left undecoded to demonstrate the silent not-ready no-op.
	img := canvas.NewImageElement(128, 128)
	if *input != "" {
		b, err := canvas.LoadBitmap(*input)
		if err != nil {
			log.Fatalf("load %s: %v", *input, err)
		}
		img.SetBitmap(b)
	}
	if err := ctx.DrawImageScaled(img, 240, 16, 192, 128); err != nil {
		log.Fatalf("draw image element: %v", err)
	}

	// Canvas element source: a nested surface drawn into the main one,
	// cropping its center with the fully explicit form.
	nested := surface.NewImageSurface(100, 100)
	defer func() { _ = nested.Close() }()
	nested.Clear(color.RGBA{R: 40, G: 120, B: 220, A: 255})
	cnv := canvas.NewCanvasElement(100, 100)
	cnv.SetSurface(nested)
	if err := ctx.DrawImageRect(cnv, 25, 25, 50, 50, 16, 160, 200, 200); err != nil {
		log.Fatalf("draw canvas element: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, surf.Snapshot()); err != nil {
		log.Fatalf("encode: %v", err)
	}
	log.Printf("wrote %s", *output)
}

func makeChecker(w, h int) *canvas.Bitmap {
	b, err := canvas.NewBitmap(w, h)
	if err != nil {
		log.Fatalf("make checker: %v", err)
	}
	img := b.Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 230, G: 90, B: 60, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 240, B: 220, A: 255})
			}
		}
	}
	return b
}
