package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RowTask represents one raster row to trace
type RowTask struct {
	Row      int
	Viewport geometry.Viewport
	Scene    integrator.Scene
	Frame    *FrameBuffer // Shared frame; each task writes only its own row
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row   int
	Stats integrator.TraceStats
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	integrator  integrator.Integrator
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool able to queue maxTasks rows without blocking
func NewWorkerPool(integratorInst integrator.Integrator, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			integrator:  integratorInst,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- RowResult{
			Row:   task.Row,
			Stats: w.renderRow(task),
		}
	}
}

// renderRow traces every pixel of one row into the shared frame
func (w *Worker) renderRow(task RowTask) integrator.TraceStats {
	var stats integrator.TraceStats
	for i := 0; i < task.Frame.Width(); i++ {
		ray := task.Viewport.GetRay(i, task.Row)
		task.Frame.Set(i, task.Row, w.integrator.RayColor(ray, task.Scene, &stats))
	}
	return stats
}
