package web

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"badc0de.net/pkg/spritesheet/ttesting"
)

func writeFrame(t *testing.T, path string, frame image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	if err := png.Encode(f, frame); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
	f.Close()
}

func testServer(t *testing.T, frameCount int) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	for i, frame := range ttesting.SolidFrames(frameCount, 4, 4) {
		writeFrame(t, filepath.Join(dir, string(rune('a'+i))+".png"), frame)
	}

	r := mux.NewRouter()
	NewHandler(dir).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, dir
}

func TestSheetHandler(t *testing.T) {
	srv, _ := testServer(t, 3)

	resp, err := http.Get(srv.URL + "/sheet/1?columns=3&rows=1")
	if err != nil {
		t.Fatalf("GET /sheet/1: %v", err)
	}
	defer resp.Body.Close()

	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusOK)
	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("content type: got %q", got)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Error("missing ETag")
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	ttesting.AssertEqualRect(t, "bounds", img.Bounds(), image.Rect(0, 0, 12, 4))

	// Conditional refetch hits the 304 path.
	req, _ := http.NewRequest("GET", srv.URL+"/sheet/1?columns=3&rows=1", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	resp2.Body.Close()
	ttesting.AssertEqualInt(t, "conditional status", resp2.StatusCode, http.StatusNotModified)
}

// Editing a frame file in place must invalidate the ETag, even though
// the directory's own mtime does not change.
func TestSheetHandlerETagChangesWhenFrameEdited(t *testing.T) {
	srv, dir := testServer(t, 2)

	resp, err := http.Get(srv.URL + "/sheet/1")
	if err != nil {
		t.Fatalf("GET /sheet/1: %v", err)
	}
	resp.Body.Close()
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	// Rewrite one frame and force a distinct mtime so the test does not
	// depend on filesystem timestamp resolution.
	path := filepath.Join(dir, "a.png")
	writeFrame(t, path, ttesting.SolidFrame(4, 4, color.RGBA{B: 0xff, A: 0xff}))
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("touching %s: %v", path, err)
	}

	req, _ := http.NewRequest("GET", srv.URL+"/sheet/1", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer resp2.Body.Close()
	ttesting.AssertEqualInt(t, "status after edit", resp2.StatusCode, http.StatusOK)
	if got := resp2.Header.Get("ETag"); got == etag {
		t.Errorf("ETag unchanged after frame edit: %q", got)
	}
}

func TestSheetHandlerChunking(t *testing.T) {
	srv, _ := testServer(t, 5)

	// chunk_size=2 over 5 frames gives chunks of 2, 2 and 1.
	resp, err := http.Get(srv.URL + "/sheet/3?chunk_size=2&columns=1&rows=1")
	if err != nil {
		t.Fatalf("GET /sheet/3: %v", err)
	}
	defer resp.Body.Close()
	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusOK)

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	ttesting.AssertEqualRect(t, "bounds", img.Bounds(), image.Rect(0, 0, 4, 4))
}

func TestSheetHandlerNoSuchChunk(t *testing.T) {
	srv, _ := testServer(t, 2)

	resp, err := http.Get(srv.URL + "/sheet/2")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusNotFound)
}

func TestSheetHandlerBadParams(t *testing.T) {
	srv, _ := testServer(t, 2)

	resp, err := http.Get(srv.URL + "/sheet/1?columns=-3")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusBadRequest)
}

func TestAnimHandler(t *testing.T) {
	srv, _ := testServer(t, 3)

	resp, err := http.Get(srv.URL + "/anim/1")
	if err != nil {
		t.Fatalf("GET /anim/1: %v", err)
	}
	defer resp.Body.Close()

	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusOK)
	if got := resp.Header.Get("Content-Type"); got != "image/gif" {
		t.Errorf("content type: got %q", got)
	}

	g, err := gif.DecodeAll(resp.Body)
	if err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	ttesting.AssertEqualInt(t, "frames", len(g.Image), 3)
}

func TestIndexHandler(t *testing.T) {
	srv, _ := testServer(t, 4)

	resp, err := http.Get(srv.URL + "/?chunk_size=2")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	ttesting.AssertEqualInt(t, "status", resp.StatusCode, http.StatusOK)
	if got := resp.Header.Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("content type: got %q", got)
	}
}
