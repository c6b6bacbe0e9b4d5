package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkoester/lightbox/pkg/cache"
	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewMemoryCache(32), nil, nil)
	t.Cleanup(func() { runner.Close() })

	srv := NewServer(Config{Runner: runner})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestLayoutEndpoint(t *testing.T) {
	ts := newTestServer(t)

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 200, 100)
	writePNG(t, filepath.Join(dir, "b.png"), 100, 100)

	resp := postJSON(t, ts.URL+"/v1/layout", pipeline.Options{
		Root:           dir,
		Mode:           "grid",
		ContainerWidth: 1280,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body LayoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.ItemCount != 2 || len(body.Layout.Layout) != 2 {
		t.Errorf("items = %d, layout = %d", body.ItemCount, len(body.Layout.Layout))
	}
	if body.Layout.TotalHeight <= 0 {
		t.Errorf("TotalHeight = %v", body.Layout.TotalHeight)
	}
	if body.RequestID == "" || body.LibraryHash == "" {
		t.Error("request id or library hash missing")
	}
}

func TestLayoutEndpointBadMode(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/layout", pipeline.Options{Root: "/photos", Mode: "cubist"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "INVALID_MODE" {
		t.Errorf("code = %q, want INVALID_MODE", body.Code)
	}
}

func TestLayoutEndpointMissingRoot(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/layout", pipeline.Options{Root: "/definitely/not/here"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWindowEndpoint(t *testing.T) {
	ts := newTestServer(t)

	layout := []gallery.LayoutItem{
		{ID: "a", X: 24, Y: 0, Width: 100, Height: 100},
		{ID: "b", X: 24, Y: 500, Width: 100, Height: 100},
		{ID: "c", X: 24, Y: 5000, Width: 100, Height: 100},
	}

	resp := postJSON(t, ts.URL+"/v1/window", WindowRequest{
		Layout:         layout,
		ScrollTop:      0,
		ViewportHeight: 600,
		Buffer:         100,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body WindowResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	// a and b fall inside [0-100, 600+100); c is far below.
	if body.Count != 2 {
		t.Errorf("visible = %d, want 2", body.Count)
	}
	for _, it := range body.Visible {
		if it.ID == "c" {
			t.Error("item far below viewport should be excluded")
		}
	}
}

func TestWindowEndpointBadViewport(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/window", WindowRequest{ViewportHeight: 0})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
