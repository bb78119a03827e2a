// Package web serves sprite sheets composed on demand over HTTP.
//
// Sheets are composed fresh from the source directory on each request;
// nothing is written to disk. ETags derived from the source directory's
// modification time keep repeat fetches cheap.
package web

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"html/template"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/spritesheet/frames"
	"badc0de.net/pkg/spritesheet/sheet"
)

// bump if the way sheets are generated changes
const generation = 1

// Handler composes sheets from one source directory.
type Handler struct {
	mu        sync.Mutex
	sourceDir string
}

// NewHandler constructs a web handler reading frames from sourceDir.
func NewHandler(sourceDir string) *Handler {
	return &Handler{sourceDir: sourceDir}
}

// Register attaches all routes to r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/sheet/{chunk:[0-9]+}", h.sheetHandler)
	r.HandleFunc("/anim/{chunk:[0-9]+}", h.animHandler)
}

// layoutParams mirror the CLI layout options; 0 means unset.
type layoutParams struct {
	rows, columns, chunkSize int
}

func layoutFromQuery(r *http.Request) (layoutParams, error) {
	var p layoutParams
	for _, q := range []struct {
		name string
		dst  *int
	}{
		{"rows", &p.rows},
		{"columns", &p.columns},
		{"chunk_size", &p.chunkSize},
	} {
		v := r.URL.Query().Get(q.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, fmt.Errorf("%s must be a positive integer", q.name)
		}
		*q.dst = n
	}
	return p, nil
}

func (h *Handler) loadChunks(p layoutParams) ([]sheet.Chunk, error) {
	set, err := frames.FromDir(h.sourceDir)
	if err != nil {
		return nil, err
	}
	return sheet.Split(set.Images, p.chunkSize), nil
}

// fingerprint changes whenever a source frame is added, removed,
// renamed or edited in place: it hashes every entry's name, size and
// modification time.
func (h *Handler) fingerprint() string {
	entries, err := os.ReadDir(h.sourceDir)
	if err != nil {
		return "0"
	}
	fp := fnv.New64a()
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		fmt.Fprintf(fp, "%s:%d:%x;", e.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return fmt.Sprintf("%x", fp.Sum64())
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := layoutFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := strconv.Atoi(mux.Vars(r)["chunk"])
	if err != nil {
		http.Error(w, "chunk not a number", http.StatusBadRequest)
		return
	}

	mime := "image/png"
	etag := fmt.Sprintf(`W/"sheet:%d:%s:%d:%d.%d.%d:%s"`, generation, h.fingerprint(), n, p.rows, p.columns, p.chunkSize, mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	chunks, err := h.loadChunks(p)
	if err != nil {
		glog.Errorf("loading frames from %s: %v", h.sourceDir, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if n < 1 || n > len(chunks) {
		http.Error(w, "no such chunk", http.StatusNotFound)
		return
	}
	c := chunks[n-1]

	img := sheet.Compose(c, sheet.ResolveGrid(len(c.Frames), p.columns, p.rows))

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	png.Encode(w, img)
}

func (h *Handler) animHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := layoutFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, err := strconv.Atoi(mux.Vars(r)["chunk"])
	if err != nil {
		http.Error(w, "chunk not a number", http.StatusBadRequest)
		return
	}

	mime := "image/gif"
	etag := fmt.Sprintf(`W/"anim:%d:%s:%d:%d.%d.%d:%s"`, generation, h.fingerprint(), n, p.rows, p.columns, p.chunkSize, mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	chunks, err := h.loadChunks(p)
	if err != nil {
		glog.Errorf("loading frames from %s: %v", h.sourceDir, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if n < 1 || n > len(chunks) {
		http.Error(w, "no such chunk", http.StatusNotFound)
		return
	}

	g := animate(chunks[n-1])

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	gif.EncodeAll(w, g)
}

// animate turns a chunk into an animated GIF, one animation step per
// frame.
func animate(c sheet.Chunk) *gif.GIF {
	g := &gif.GIF{}

	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // up to 255 colors plus 1 slot for transparency

	for _, frame := range c.Frames {
		pal := image.NewPaletted(frame.Bounds(), nil)
		quantizer.Quantize(pal, frame.Bounds(), frame, image.ZP)

		// gogif's quantizer has no transparency slot of its own, so the
		// quantized palette is re-rooted at color.Transparent and the
		// frame redrawn over it.
		palTransparent := image.NewPaletted(frame.Bounds(), append(color.Palette{color.Transparent}, pal.Palette...))
		draw.Draw(palTransparent, frame.Bounds(), frame, image.ZP, draw.Over)

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)

		if frame.Bounds().Dx() > g.Config.Width {
			g.Config.Width = frame.Bounds().Dx()
		}
		if frame.Bounds().Dy() > g.Config.Height {
			g.Config.Height = frame.Bounds().Dy()
		}
	}
	g.BackgroundIndex = 0 // color.Transparent
	return g
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>spritesheet</title></head><body>
<h1>sheets from {{.Source}}</h1>
{{range .Sheets}}<h2><a href="/sheet/{{.Number}}">sheet {{.Number}}</a> (<a href="/anim/{{.Number}}">anim</a>)</h2>
<p><img src="{{.Src}}" alt="sheet {{.Number}}"></p>
{{end}}</body></html>
`))

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := layoutFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chunks, err := h.loadChunks(p)
	if err != nil {
		glog.Errorf("loading frames from %s: %v", h.sourceDir, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type entry struct {
		Number int
		Src    template.URL
	}
	data := struct {
		Source string
		Sheets []entry
	}{Source: h.sourceDir}

	for _, c := range chunks {
		img := sheet.Compose(c, sheet.ResolveGrid(len(c.Frames), p.columns, p.rows))
		buf := pngBytes(img)
		data.Sheets = append(data.Sheets, entry{
			Number: c.Number,
			Src:    template.URL(dataurl.New(buf, "image/png").String()),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		glog.Errorf("rendering index: %v", err)
	}
}

func pngBytes(img image.Image) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}
