//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package preview

import (
	"golang.org/x/crypto/ssh/terminal"
)

type winSize struct {
	Rows, Cols       uint
	XPixels, YPixels uint
}

func termSize() (winSize, error) {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return winSize{}, err
	}
	return winSize{Rows: uint(h), Cols: uint(w)}, nil
}
