package sheet

import (
	"image"
	"image/draw"

	"github.com/golang/glog"
)

// Compose renders a chunk onto a single RGBA canvas laid out per grid.
//
// The tile size is the first frame's size. Every frame is cropped from
// its top-left corner to the tile size, never scaled; frames smaller
// than the tile leave the rest of their cell transparent. The canvas is
// tileW*columns by tileH*rows and starts fully transparent.
//
// Frame i lands in column i%columns, row i/columns. Once an index
// reaches the grid's capacity, the rest of the chunk is dropped with a
// warning; tiles placed so far stay on the sheet.
func Compose(c Chunk, g GridSpec) *image.RGBA {
	tileW := c.Frames[0].Bounds().Dx()
	tileH := c.Frames[0].Bounds().Dy()

	img := image.NewRGBA(image.Rect(0, 0, tileW*g.Columns, tileH*g.Rows))

	for i, frame := range c.Frames {
		if i >= g.Capacity() {
			glog.Warningf("chunk %d: %d frames exceed grid capacity %d; dropping the rest", c.Number, len(c.Frames), g.Capacity())
			break
		}

		col := i % g.Columns
		row := i / g.Columns
		dst := image.Rect(col*tileW, row*tileH, (col+1)*tileW, (row+1)*tileH)

		glog.V(1).Infof("chunk %d: frame %d at %v", c.Number, i, dst)
		draw.Draw(img, dst, frame, frame.Bounds().Min, draw.Over)
	}

	return img
}
