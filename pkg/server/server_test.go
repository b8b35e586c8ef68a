package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/kbdlayout/pkg/cache"
	"github.com/matzehuels/kbdlayout/pkg/pipeline"
)

const testMap = "keymaps 0-1\nkeycode 30 = a\ninclude \"extra\"\n"

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(fc, nil, log.New(io.Discard))
	includes := fstest.MapFS{
		"keymaps/extra.inc": {Data: []byte("keycode 57 = space\n")},
	}
	return New(runner, append([]Option{WithIncludeFS(includes)}, opts...)...)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, rec.Body)
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body)
	}
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("X-Request-ID = %q, want a UUID", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	s := newTestServer(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed request IDs should be replaced")
	}
}

func TestGeometries(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/geometries", "")

	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if strings.Join(names, ",") != "ansi,iso" {
		t.Errorf("geometries = %v, want [ansi iso]", names)
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/render?geometry=iso&format=svg", testMap)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `data-keycode="57"`) {
		t.Error("svg should contain the included space bar")
	}
	if rec.Header().Get("X-Cache") != "miss" {
		t.Errorf("first X-Cache = %q, want miss", rec.Header().Get("X-Cache"))
	}

	rec = do(t, s, http.MethodPost, "/render?geometry=iso&format=svg", testMap)
	if rec.Header().Get("X-Cache") != "hit" {
		t.Errorf("second X-Cache = %q, want hit", rec.Header().Get("X-Cache"))
	}
}

func TestRenderJSON(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/render?geometry=ansi&format=json&scale=20", testMap)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var doc struct {
		Geometry string  `json:"geometry"`
		Keys     int     `json:"keys"`
		Width    float64 `json:"width"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Geometry != "ansi" || doc.Keys != 104 {
		t.Errorf("geometry, keys = %q, %d, want ansi, 104", doc.Geometry, doc.Keys)
	}
	if doc.Width != 450 {
		t.Errorf("width = %g, want 450 at scale 20", doc.Width)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		status   int
		code     string
		contains string
	}{
		{"parse error", "/render", "keycode 30 = a\nfrobnicate\n", 400, "UNRECOGNIZED_DIRECTIVE", "request:2"},
		{"missing include", "/render", "include \"nope\"\n", 400, "FILE_NOT_FOUND", "nope"},
		{"empty body", "/render", "", 400, "INVALID_INPUT", ""},
		{"geometry", "/render?geometry=jis", testMap, 400, "INVALID_GEOMETRY", "jis"},
		{"format", "/render?format=gif", testMap, 400, "INVALID_FORMAT", "gif"},
		{"scale", "/render?scale=big", testMap, 400, "INVALID_INPUT", "big"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			body := decodeError(t, rec)
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if !strings.Contains(body.Error, tt.contains) {
				t.Errorf("error = %q, want it to contain %q", body.Error, tt.contains)
			}
		})
	}
}

func TestRenderBodyLimit(t *testing.T) {
	s := newTestServer(t, WithMaxBodyBytes(16))
	rec := do(t, s, http.MethodPost, "/render", testMap)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestRenderMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/render", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestWithDefaults(t *testing.T) {
	s := newTestServer(t, WithDefaults(pipeline.Options{Geometry: "ansi", Title: "Custom"}))
	// WithIncludeFS ran first, so the defaults replaced its FS.
	if s.defaults.FS != nil {
		t.Fatal("WithDefaults should replace earlier defaults")
	}
	rec := do(t, s, http.MethodPost, "/render?format=json", "keycode 30 = a\n")
	if !strings.Contains(rec.Body.String(), `"geometry": "ansi"`) {
		t.Errorf("defaults not applied: %.80s", rec.Body)
	}
}
