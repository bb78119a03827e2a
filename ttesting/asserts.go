// Package ttesting contains shared asserts and fixtures for tests in
// this module.
//
// This package has an API with no stability guarantees.
package ttesting

import (
	"image"
	"image/color"
	"testing"

	"github.com/bradfitz/iter"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualRect(t *testing.T, name string, got, want image.Rectangle) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertSamePixels compares the pixels of got inside rect against want,
// with want's top-left corner mapped onto rect's top-left corner.
func AssertSamePixels(t *testing.T, name string, got image.Image, rect image.Rectangle, want image.Image) {
	t.Run(name, func(t *testing.T) {
		for y := 0; y < rect.Dy(); y++ {
			for x := 0; x < rect.Dx(); x++ {
				g := got.At(rect.Min.X+x, rect.Min.Y+y)
				w := want.At(want.Bounds().Min.X+x, want.Bounds().Min.Y+y)
				gr, gg, gb, ga := g.RGBA()
				wr, wg, wb, wa := w.RGBA()
				if gr != wr || gg != wg || gb != wb || ga != wa {
					t.Fatalf("pixel (%d,%d) of %v: got %v; want %v", x, y, rect, g, w)
				}
			}
		}
	})
}

// SolidFrames builds n solid-color frames of the given size. Each frame
// gets a distinct red channel value so tests can tell tiles apart.
func SolidFrames(n, w, h int) []image.Image {
	out := make([]image.Image, 0, n)
	for i := range iter.N(n) {
		out = append(out, SolidFrame(w, h, color.RGBA{R: uint8(i + 1), A: 0xff}))
	}
	return out
}

// SolidFrame builds a single frame filled with col.
func SolidFrame(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, col)
		}
	}
	return img
}
