package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	defaultSize = 400
	maxSize     = 2000

	consoleBufferSize = 256

	defaultScenesDir = "scenes"
)

// Server exposes one shared scene over HTTP
type Server struct {
	port      int
	scene     *scene.Scene
	scenesDir string
	config    renderer.Config
	console   chan ConsoleMessage
	renders   atomic.Int64
}

// NewServer creates a new web server for the given scene
func NewServer(port int, sceneObj *scene.Scene) *Server {
	return &Server{
		port:      port,
		scene:     sceneObj,
		scenesDir: defaultScenesDir,
		config:    renderer.DefaultConfig(),
		console:   make(chan ConsoleMessage, consoleBufferSize),
	}
}

// EventRequest is the JSON body of a mutation event
type EventRequest struct {
	Target string     `json:"target"` // "camera" or "object"
	Index  int        `json:"index"`
	Delta  [3]float64 `json:"delta"`
}

// CameraResponse reports the active camera after a selection
type CameraResponse struct {
	ActiveCamera int `json:"activeCamera"`
	Cameras      int `json:"cameras"`
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	mux.HandleFunc("GET /api/console", s.handleConsole)
	mux.HandleFunc("POST /api/events", s.handleEvents)
	mux.HandleFunc("POST /api/camera", s.handleCamera)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender renders the current scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	width, err := parseIntParam(r.URL.Query(), "width", defaultSize, 1, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	height, err := parseIntParam(r.URL.Query(), "height", defaultSize, 1, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	raytracer, err := renderer.NewRenderer(s.scene, width, height, s.config, NewWebLogger(renderID, s.console))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	stats, err := raytracer.Render()
	if err != nil {
		log.Printf("Render error: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrNoCamera) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, raytracer.Frame().Image()); err != nil {
		log.Printf("Failed to encode image: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Rays", strconv.Itoa(stats.Rays))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleScene returns the current scene description
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := scene.Encode(&buf, s.scene); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleScenes lists the built-in scenes and the scene files on disk
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleEvents applies one mutation event to the shared scene
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid event: %w", err))
		return
	}

	event := scene.Event{
		Target: scene.Target(req.Target),
		Index:  req.Index,
		Delta:  core.NewVec3(req.Delta[0], req.Delta[1], req.Delta[2]),
	}
	if err := s.scene.Apply(event); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCamera selects the active camera; an out of range index is ignored
func (s *Server) handleCamera(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("index") == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing index"))
		return
	}
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid index: %s", r.URL.Query().Get("index")))
		return
	}

	s.scene.SetActiveCamera(index)

	s.scene.RLock()
	response := CameraResponse{
		ActiveCamera: s.scene.ActiveCameraIndex(),
		Cameras:      len(s.scene.GetCameras()),
	}
	s.scene.RUnlock()

	writeJSON(w, http.StatusOK, response)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
