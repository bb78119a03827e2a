// Package sheet lays out an ordered sequence of animation frames onto
// fixed-size tile grids and renders one RGBA sprite sheet per grid.
//
// The pipeline is strictly sequential: frames are split into chunks, and
// for each chunk in turn a grid is resolved, a sheet is composed and the
// sheet is handed to the sink before the next chunk starts. Chunks share
// no state, so a failed save leaves earlier sheets in place.
package sheet

import (
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Sink persists one composed sheet under the given file name and returns
// the full path it was written to.
type Sink interface {
	Save(img image.Image, name string) (string, error)
}

// Params configure one generation run.
type Params struct {
	ChunkSize int    // frames per sheet; 0 puts all frames on one sheet
	Columns   int    // 0 means DefaultColumns
	Rows      int    // 0 means estimated from the chunk's frame count
	Name      string // output name prefix; empty selects the timestamp fallback

	Sink Sink
}

// Generate runs the pipeline over frames. Zero frames is a normal
// outcome: nothing is composed and nil is returned.
func Generate(frames []image.Image, p Params) error {
	chunks := Split(frames, p.ChunkSize)
	if len(chunks) == 0 {
		glog.Warning("no source frames; no sheets generated")
		return nil
	}
	glog.Infof("source frame count: %d", len(frames))

	for _, c := range chunks {
		glog.Infof("generating chunk %d of %d", c.Number, len(chunks))
		g := ResolveGrid(len(c.Frames), p.Columns, p.Rows)
		glog.Infof("grid size: columns = %d, rows = %d", g.Columns, g.Rows)

		img := Compose(c, g)

		path, err := p.Sink.Save(img, FileName(p.Name, c.Number))
		if err != nil {
			return errors.Wrapf(err, "saving sheet for chunk %d", c.Number)
		}
		glog.Infof("generated sheet: %s", path)
	}
	return nil
}
