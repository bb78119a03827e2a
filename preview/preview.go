// Package preview prints composed sheets on the terminal.
//
// On capable terminals (kitty, iTerm2/WezTerm, sixel) the sheet is shown
// as an actual image through rasterm; everywhere else it is rendered as
// colored character cells, two characters per pixel.
package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/gookit/color"
)

// Renderer selects how Print draws the image.
type Renderer int

const (
	Auto Renderer = iota
	TrueColor
	Col256
	NoColor
	RasTerm
	ITerm
)

// ParseRenderer maps a CLI renderer name onto a Renderer.
func ParseRenderer(s string) (Renderer, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "24bit":
		return TrueColor, nil
	case "256col":
		return Col256, nil
	case "nocolor":
		return NoColor, nil
	case "rasterm":
		return RasTerm, nil
	case "iterm":
		return ITerm, nil
	}
	return Auto, fmt.Errorf("unknown renderer %q; want auto, 24bit, 256col, nocolor, rasterm or iterm", s)
}

// Options configure Print.
type Options struct {
	Renderer Renderer

	// Blanks renders each pixel as a colored blank cell instead of
	// ascii shading. Only meaningful for the cell renderers.
	Blanks bool
}

// Print renders img on the terminal.
func Print(img image.Image, o Options) {
	r := o.Renderer
	if r == Auto {
		if rasterm.IsTermKitty() || rasterm.IsTermItermWez() {
			r = RasTerm
		} else {
			r = TrueColor
		}
	}

	switch r {
	case RasTerm:
		printRasTerm(img)
	case ITerm:
		printITerm(img, "sheet.png")
	case Col256:
		printCells(img, cell256, o.Blanks)
	case NoColor:
		printCells(img, cellNoColor, o.Blanks)
	default:
		printCells(img, cellTrueColor, o.Blanks)
	}
}

type cellMode int

const (
	cellTrueColor cellMode = iota
	cell256
	cellNoColor
)

func printCells(img image.Image, mode cellMode, blanks bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cell(img.At(x, y), mode, blanks)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

func cell(c ic.Color, mode cellMode, blanks bool) {
	cR, cG, cB, cA := c.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	glyph := "  "
	if !blanks {
		switch l := ((cR + cG + cB) / 3) >> 8; {
		case l < 32:
			glyph = ".."
		case l < 64:
			glyph = "--"
		case l < 128:
			glyph = "=="
		default:
			glyph = "##"
		}
	}

	switch mode {
	case cellNoColor:
		fmt.Print(glyph)
	case cell256:
		color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Printf("%s", glyph)
	default:
		fmt.Printf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), glyph)
	}
}

func printRasTerm(img image.Image) {
	switch {
	case rasterm.IsTermKitty():
		rasterm.Settings{}.KittyWriteImage(os.Stdout, img)
		fmt.Println()
	case rasterm.IsTermItermWez():
		rasterm.Settings{}.ItermWriteImage(os.Stdout, img)
		fmt.Println()
	default:
		capable, err := rasterm.IsSixelCapable()
		if !capable || err != nil {
			return
		}
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		pal := q.Quantize(make(ic.Palette, 0, 64), img)
		dst := image.NewPaletted(img.Bounds(), pal)
		draw.Draw(dst, img.Bounds(), img, img.Bounds().Min, draw.Src)
		rasterm.Settings{}.SixelWriteImage(os.Stdout, dst)
		fmt.Println()
	}
}

// printITerm draws an image using iTerm2's escape sequence.
//
// https://www.iterm2.com/documentation-images.html
func printITerm(img image.Image, fn string) {
	if !rasterm.IsTermItermWez() {
		return
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(enc, img)
	enc.Close()
	fmt.Printf("\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n",
		name, b.Len(), img.Bounds().Dx(), img.Bounds().Dy(), b.String())
}
