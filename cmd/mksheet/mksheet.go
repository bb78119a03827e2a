// mksheet packs an ordered set of frame images into sprite sheet PNGs.
//
// Usage:
//
//	mksheet [flags] sourceDir outputDir
//	mksheet --from_gif anim.gif [flags] outputDir
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/spritesheet/frames"
	"badc0de.net/pkg/spritesheet/preview"
	"badc0de.net/pkg/spritesheet/sheet"
	"badc0de.net/pkg/spritesheet/storage"

	"github.com/golang/glog"
)

const version = "1.0.0"

var (
	rows      = flag.Int("rows", 0, "rows per sheet; estimated from the chunk's frame count when unset")
	columns   = flag.Int("columns", 0, "columns per sheet; 5 when unset")
	chunkSize = flag.Int("chunk_size", 0, "frames per sheet; all frames go onto a single sheet when unset")
	sheetName = flag.String("spritesheet_name", "", "output name prefix without extension; the chunk number is appended. A UTC timestamp is used when empty.")
	logLevel  = flag.String("log_level", "info", "log level: info, debug or warn")
	fromGIF   = flag.String("from_gif", "", "read frames from this animated GIF instead of a source directory")

	doPreview    = flag.Bool("preview", false, "print each generated sheet on the terminal")
	previewRend  = flag.String("preview_renderer", "auto", "preview renderer: auto, 24bit, 256col, nocolor, rasterm or iterm")
	blanks       = flag.Bool("blanks", true, "preview with colored blanks instead of ascii shading")
	printVersion = flag.Bool("version", false, "print program version and exit")
)

// applyLogLevel maps the CLI log level onto glog's flags once, at
// startup.
func applyLogLevel(level string) error {
	switch level {
	case "info":
		flag.Set("logtostderr", "true")
	case "debug":
		flag.Set("logtostderr", "true")
		flag.Set("v", "1")
	case "warn":
		// glog keeps Info in its log files; only warnings and up reach
		// stderr.
		flag.Set("stderrthreshold", "WARNING")
	default:
		return fmt.Errorf("unknown level %q, want info, debug or warn", level)
	}
	return nil
}

// checkLayoutFlag rejects explicitly set layout flags that are not
// positive integers. Flags other than the three layout flags pass.
func checkLayoutFlag(name, value string) error {
	switch name {
	case "rows", "columns", "chunk_size":
	default:
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("--%s must be a positive integer, got %q", name, value)
	}
	return nil
}

func splitArgs() (srcDir, outDir string) {
	args := flag.Args()
	if *fromGIF != "" {
		if len(args) != 1 {
			glog.Exitf("usage: mksheet --from_gif anim.gif [flags] outputDir")
		}
		return "", args[0]
	}
	if len(args) != 2 {
		glog.Exitf("usage: mksheet [flags] sourceDir outputDir")
	}
	return args[0], args[1]
}

func loadFrames(srcDir string) *frames.Set {
	if *fromGIF != "" {
		f, err := os.Open(*fromGIF)
		if err != nil {
			glog.Exitf("--from_gif: %v", err)
		}
		defer f.Close()
		set, err := frames.FromGIF(f)
		if err != nil {
			glog.Exitf("--from_gif: %v", err)
		}
		return set
	}

	info, err := os.Stat(srcDir)
	if err != nil {
		glog.Exitf("source dir %q: %v", srcDir, err)
	}
	if !info.IsDir() {
		glog.Exitf("source dir %q: not a directory", srcDir)
	}
	set, err := frames.FromDir(srcDir)
	if err != nil {
		glog.Exitf("%v", err)
	}
	return set
}

// previewSink saves through the wrapped sink, then prints the sheet on
// the terminal.
type previewSink struct {
	sheet.Sink
	opts preview.Options
}

func (s *previewSink) Save(img image.Image, name string) (string, error) {
	path, err := s.Sink.Save(img, name)
	if err == nil {
		preview.Print(preview.Fit(img, s.opts.Renderer), s.opts)
	}
	return path, err
}

func main() {
	flagutil.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}
	if err := applyLogLevel(*logLevel); err != nil {
		glog.Exitf("--log_level: %v", err)
	}
	// Layout flags left at their 0 default mean "unset"; a 0 or negative
	// value passed explicitly is rejected.
	flag.Visit(func(f *flag.Flag) {
		if err := checkLayoutFlag(f.Name, f.Value.String()); err != nil {
			glog.Exitf("%v", err)
		}
	})
	rend, err := preview.ParseRenderer(*previewRend)
	if err != nil {
		glog.Exitf("--preview_renderer: %v", err)
	}

	srcDir, outDir := splitArgs()

	glog.Infof("source dir: %s", srcDir)
	glog.Infof("output dir: %s", outDir)

	set := loadFrames(srcDir)

	sink, err := storage.NewDir(outDir)
	if err != nil {
		glog.Exitf("%v", err)
	}

	var s sheet.Sink = sink
	if *doPreview {
		s = &previewSink{Sink: sink, opts: preview.Options{Renderer: rend, Blanks: *blanks}}
	}

	if err := sheet.Generate(set.Images, sheet.Params{
		ChunkSize: *chunkSize,
		Columns:   *columns,
		Rows:      *rows,
		Name:      *sheetName,
		Sink:      s,
	}); err != nil {
		glog.Exitf("%v", err)
	}
}
