package renderer

import (
	"image"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
	"github.com/davawen/go-raytracing/pkg/integrator"
)

// Config holds the render-time parameters of the pixel evaluator
type Config struct {
	Width      int
	Height     int
	Samples    int // Samples per pixel
	TileSize   int
	NumWorkers int // 0 selects the CPU count
	Seed       int64
	Gamma      GammaMode
}

// DefaultConfig returns a reasonable starting configuration
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   450,
		Samples:  128,
		TileSize: 64,
		Seed:     1,
		Gamma:    GammaLegacy,
	}
}

// Raytracer drives the full render: it partitions the image into tiles,
// dispatches them to a worker pool, and finishes the canvas with the
// configured gamma transfer.
type Raytracer struct {
	bvh    *geometry.BVH
	camera *Camera
	tracer *integrator.PathTracer
	config Config
	logger core.Logger
}

// NewRaytracer creates a renderer over a prebuilt scene hierarchy
func NewRaytracer(bvh *geometry.BVH, camera *Camera, tracer *integrator.PathTracer, config Config, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		bvh:    bvh,
		camera: camera,
		tracer: tracer,
		config: config,
		logger: logger,
	}
}

// Render produces the finished canvas. Each tile owns an RNG seeded
// from the configured base seed and its task ID, so a fixed seed gives
// a deterministic image regardless of worker scheduling.
func (rt *Raytracer) Render() (*Canvas, RenderStats) {
	start := time.Now()
	canvas := NewCanvas(rt.config.Width, rt.config.Height)

	tiles := rt.tiles()
	pool := NewWorkerPool(rt.config.NumWorkers, len(tiles))
	tr := NewTileRenderer(rt.bvh, rt.camera, rt.tracer, canvas, rt.config.Samples, rt.config.Gamma)

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, %d tiles on %d workers\n",
		rt.config.Width, rt.config.Height, rt.config.Samples, len(tiles), pool.NumWorkers())

	pool.Start(tr)
	for _, task := range tiles {
		pool.Submit(task)
	}

	stats := RenderStats{}
	for i := 0; i < len(tiles); i++ {
		result := <-pool.Results()
		stats.Merge(result.Stats)
	}
	pool.Stop()

	if rt.config.Gamma == GammaLegacy {
		canvas.GammaPass()
	}

	rt.logger.Printf("Render finished in %v (%d primary rays)\n",
		time.Since(start).Round(time.Millisecond), stats.TotalSamples)

	return canvas, stats
}

// tiles partitions the image into non-overlapping tile tasks
func (rt *Raytracer) tiles() []TileTask {
	var tasks []TileTask
	size := rt.config.TileSize

	id := 0
	for y := 0; y < rt.config.Height; y += size {
		for x := 0; x < rt.config.Width; x += size {
			bounds := image.Rect(x, y,
				min(x+size, rt.config.Width),
				min(y+size, rt.config.Height))

			tasks = append(tasks, TileTask{
				Bounds: bounds,
				TaskID: id,
				Random: rand.New(rand.NewSource(rt.config.Seed + int64(id))),
			})
			id++
		}
	}

	return tasks
}

// DefaultLogger logs render progress to stderr
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a logger writing to stderr
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// Printf implements core.Logger
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}

// SilentLogger discards all output; used by tests
type SilentLogger struct{}

// Printf implements core.Logger
func (SilentLogger) Printf(format string, args ...interface{}) {}
