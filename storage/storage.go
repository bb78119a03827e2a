// Package storage persists composed sheets as PNG files.
package storage

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Dir writes sheets into a single output directory.
type Dir struct {
	Path string
}

// NewDir validates that path is an existing, writable directory. The
// check runs before any composition starts so a read-only target fails
// the run up front rather than after work was done.
func NewDir(path string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "output dir %q", path)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("output dir %q: not a directory", path)
	}

	probe, err := os.CreateTemp(path, ".spritesheet-probe-*")
	if err != nil {
		return nil, errors.Wrapf(err, "output dir %q is not writable", path)
	}
	probe.Close()
	os.Remove(probe.Name())

	return &Dir{Path: path}, nil
}

// Save encodes img as a PNG named name inside the directory and returns
// the full path written. An existing file of the same name is
// overwritten.
func (d *Dir) Save(img image.Image, name string) (string, error) {
	path := filepath.Join(d.Path, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "opening output file %q", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "encoding %q", path)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "closing %q", path)
	}
	return path, nil
}
