package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderStats contains statistics about one frame pass
type RenderStats struct {
	Width    int           // Raster width
	Height   int           // Raster height
	Pixels   int           // Total number of pixels rendered
	Rays     int           // Primary and secondary rays traced
	MaxDepth int           // Deepest trace nesting seen in the pass
	Workers  int           // Workers that shared the pass
	Elapsed  time.Duration // Wall time of the pass
}

// addTrace folds one row's trace statistics into the pass statistics
func (rs *RenderStats) addTrace(ts integrator.TraceStats) {
	rs.Rays += ts.Rays
	rs.MaxDepth = max(rs.MaxDepth, ts.MaxDepth)
}
