package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestServer() *Server {
	srv := NewServer(0, scene.NewDefaultScene())
	srv.config = renderer.Config{Workers: 2}
	return srv
}

func serve(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := serve(newTestServer(), http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleRender(t *testing.T) {
	rec := serve(newTestServer(), http.MethodGet, "/api/render?width=24&height=16", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 16 {
		t.Errorf("Expected 24x16 image, got %v", img.Bounds())
	}
}

func TestHandleRender_InvalidSize(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"zero width", "width=0"},
		{"too tall", "height=2001"},
		{"not a number", "width=abc"},
	}

	srv := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(srv, http.MethodGet, "/api/render?"+tt.query, "")
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRender_NoCamera(t *testing.T) {
	srv := NewServer(0, scene.NewScene())
	rec := serve(srv, http.MethodGet, "/api/render?width=4&height=4", "")

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", rec.Code)
	}
}

func TestHandleScene(t *testing.T) {
	rec := serve(newTestServer(), http.MethodGet, "/api/scene", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	s, err := scene.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a valid scene: %v", err)
	}
	if len(s.GetObjects()) != 4 || len(s.GetCameras()) != 1 {
		t.Errorf("Expected 4 objects and 1 camera, got %d and %d", len(s.GetObjects()), len(s.GetCameras()))
	}
}

func TestHandleScenes(t *testing.T) {
	srv := newTestServer()
	srv.scenesDir = t.TempDir()

	rec := serve(srv, http.MethodGet, "/api/scenes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(scenes) != 2 || scenes[0].ID != "default" || scenes[1].ID != "spheregrid" {
		t.Errorf("Expected the built-in scenes, got %+v", scenes)
	}
}

func TestHandleEvents(t *testing.T) {
	srv := newTestServer()
	before := srv.scene.GetObjects()[scene.MovableObject].Shape.(*geometry.Sphere).Center

	rec := serve(srv, http.MethodPost, "/api/events", `{"target":"object","index":3,"delta":[5,-50,0]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	after := srv.scene.GetObjects()[scene.MovableObject].Shape.(*geometry.Sphere).Center
	if after != before.Add(core.NewVec3(5, -50, 0)) {
		t.Errorf("Expected center %v, got %v", before.Add(core.NewVec3(5, -50, 0)), after)
	}

	rec = serve(srv, http.MethodPost, "/api/events", `{"target":"camera","index":0,"delta":[0,0,10]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if pos := srv.scene.GetCameras()[0].Position; pos != core.NewVec3(0, 0, -490) {
		t.Errorf("Expected camera at (0, 0, -490), got %v", pos)
	}
}

func TestHandleEvents_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"target":`},
		{"unknown field", `{"target":"object","index":0,"delta":[0,0,0],"speed":2}`},
		{"object out of range", `{"target":"object","index":4,"delta":[0,0,0]}`},
		{"negative camera", `{"target":"camera","index":-1,"delta":[0,0,0]}`},
		{"unknown target", `{"target":"light","index":0,"delta":[0,0,0]}`},
	}

	srv := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(srv, http.MethodPost, "/api/events", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleEvents_WrongMethod(t *testing.T) {
	rec := serve(newTestServer(), http.MethodGet, "/api/events", "")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleCamera(t *testing.T) {
	srv := newTestServer()
	srv.scene.AddCamera(geometry.DefaultCamera())

	tests := []struct {
		name     string
		index    string
		status   int
		expected int
	}{
		{"select second", "1", http.StatusOK, 1},
		{"out of range ignored", "7", http.StatusOK, 1},
		{"negative ignored", "-1", http.StatusOK, 1},
		{"select first", "0", http.StatusOK, 0},
		{"not a number", "x", http.StatusBadRequest, 0},
		{"missing", "", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/camera"
			if tt.index != "" {
				target += "?index=" + url.QueryEscape(tt.index)
			}
			rec := serve(srv, http.MethodPost, target, "")
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d", tt.status, rec.Code)
			}
			if tt.status != http.StatusOK {
				return
			}

			var body CameraResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if body.ActiveCamera != tt.expected || body.Cameras != 2 {
				t.Errorf("Expected camera %d of 2, got %+v", tt.expected, body)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"width": {"640"}, "height": {"0"}, "depth": {"deep"}}

	if v, err := parseIntParam(values, "width", 400, 1, 2000); err != nil || v != 640 {
		t.Errorf("Expected 640, got %d (%v)", v, err)
	}
	if v, err := parseIntParam(values, "missing", 400, 1, 2000); err != nil || v != 400 {
		t.Errorf("Expected default 400, got %d (%v)", v, err)
	}
	if _, err := parseIntParam(values, "height", 400, 1, 2000); err == nil {
		t.Error("Expected range error for height=0")
	}
	if _, err := parseIntParam(values, "depth", 400, 1, 2000); err == nil {
		t.Error("Expected parse error for depth=deep")
	}
}
