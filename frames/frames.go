// Package frames loads ordered frame sequences for sheet composition.
//
// Frames come either from a directory of single-image files, listed in
// lexicographic name order, or from a single animated GIF.
package frames

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"sort"

	_ "image/jpeg"
	_ "image/png"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// A Set is an ordered sequence of decoded frames.
type Set struct {
	Images []image.Image
}

// FromDir decodes every regular file in dir, sorted by file name so the
// frame order is deterministic. A file that does not decode as an image
// fails the whole set; the error names the file. An empty directory
// yields an empty set, which is not an error.
func FromDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source dir %q", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	s := &Set{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		glog.V(1).Infof("read file: %s", path)

		img, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		s.Images = append(s.Images, img)
	}
	return s, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%q is not a valid image", path)
	}
	return img, nil
}

// FromGIF decodes an animated GIF into one frame per animation step, in
// animation order. Animation steps are coalesced: each step is drawn
// over a running logical-screen canvas and the step's disposal is
// applied afterwards, so delta-encoded GIFs with partial frame rects
// still produce complete, uniformly sized tiles.
func FromGIF(r io.Reader) (*Set, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding gif")
	}

	screenRect := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	screen := image.NewRGBA(screenRect)
	s := &Set{Images: make([]image.Image, 0, len(g.Image))}
	for i, pal := range g.Image {
		var saved *image.RGBA
		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalPrevious {
			saved = image.NewRGBA(screenRect)
			draw.Draw(saved, screenRect, screen, screenRect.Min, draw.Src)
		}

		draw.Draw(screen, pal.Bounds(), pal, pal.Bounds().Min, draw.Over)

		frame := image.NewRGBA(screenRect)
		draw.Draw(frame, screenRect, screen, screenRect.Min, draw.Src)
		s.Images = append(s.Images, frame)

		if i < len(g.Disposal) {
			switch g.Disposal[i] {
			case gif.DisposalBackground:
				draw.Draw(screen, pal.Bounds(), image.Transparent, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				screen = saved
			}
		}
	}
	return s, nil
}
