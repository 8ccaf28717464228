package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Workers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: 0, // Auto-detect CPU count
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	RLock()
	RUnlock()
	ActiveCamera() (geometry.Camera, error)
}

// Renderer owns the frame buffer and drives full frame passes over a scene
type Renderer struct {
	mu         sync.Mutex
	scene      Scene
	integrator integrator.Integrator
	frame      *FrameBuffer
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer with a width x height frame buffer
func NewRenderer(scene Scene, width, height int, config Config, logger core.Logger) (*Renderer, error) {
	frame, err := NewFrameBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:      scene,
		integrator: integrator.NewWhittedIntegrator(),
		frame:      frame,
		config:     config,
		logger:     logger,
	}, nil
}

// Resize replaces the frame buffer with a freshly allocated one of the new size.
// The new buffer is black until the next Render.
func (r *Renderer) Resize(width, height int) error {
	frame, err := NewFrameBuffer(width, height)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.frame = frame
	return nil
}

// Frame returns the current frame buffer. It must not be read while Render runs.
func (r *Renderer) Frame() *FrameBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame
}

// Render traces every pixel of the frame from the scene's active camera.
// The scene read lock is held for the whole pass.
func (r *Renderer) Render() (RenderStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime := time.Now()

	r.scene.RLock()
	defer r.scene.RUnlock()

	camera, err := r.scene.ActiveCamera()
	if err != nil {
		return RenderStats{}, fmt.Errorf("render: %w", err)
	}

	width, height := r.frame.Width(), r.frame.Height()
	viewport := camera.Viewport(width, height)

	numWorkers := r.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, height)

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Pixels:  width * height,
		Workers: numWorkers,
	}

	pool := NewWorkerPool(r.integrator, height, numWorkers)
	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{
			Row:      j,
			Viewport: viewport,
			Scene:    r.scene,
			Frame:    r.frame,
		})
	}
	pool.Stop()

	for result, ok := pool.GetResult(); ok; result, ok = pool.GetResult() {
		stats.addTrace(result.Stats)
	}

	stats.Elapsed = time.Since(startTime)
	r.logger.Printf("Rendered %dx%d on %d workers: %d rays, depth %d, %v\n",
		width, height, numWorkers, stats.Rays, stats.MaxDepth, stats.Elapsed)

	return stats, nil
}
