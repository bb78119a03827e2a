package preview

import (
	"image"

	"github.com/nfnt/resize"
)

// Fit downsizes img so it fits the current terminal, preserving aspect
// ratio; it never upscales. For renderers that draw real pixels (kitty,
// iTerm2) the terminal's pixel geometry is preferred over its cell
// geometry when known.
func Fit(img image.Image, r Renderer) image.Image {
	sz, err := termSize()
	if err != nil || (sz.Rows == 0 && sz.Cols == 0) {
		sz = winSize{Rows: 25, Cols: 80}
	}

	if (r == Auto || r == RasTerm || r == ITerm) && sz.XPixels > 0 && sz.YPixels > 0 {
		return resize.Thumbnail(sz.XPixels/2, sz.YPixels/2, img, resize.Lanczos3)
	}

	// Cell renderers spend two characters per pixel.
	return resize.Thumbnail(sz.Cols/2, sz.Rows, img, resize.Lanczos3)
}
