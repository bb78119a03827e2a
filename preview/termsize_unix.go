//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package preview

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

type winSize struct {
	Rows, Cols       uint
	XPixels, YPixels uint
}

func termSize() (winSize, error) {
	// The ioctl also reports pixel geometry where the terminal fills it
	// in; the ssh/terminal fallback only knows cells.
	if f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666); err == nil {
		defer f.Close()
		if sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return winSize{
				Rows:    uint(sz.Row),
				Cols:    uint(sz.Col),
				XPixels: uint(sz.Xpixel),
				YPixels: uint(sz.Ypixel),
			}, nil
		}
	}

	w, h, err := terminal.GetSize(0)
	if err != nil {
		return winSize{}, err
	}
	return winSize{Rows: uint(h), Cols: uint(w)}, nil
}
