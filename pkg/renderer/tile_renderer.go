package renderer

import (
	"image"
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
	"github.com/davawen/go-raytracing/pkg/integrator"
)

// GammaMode selects the transfer applied to finished pixels
type GammaMode int

const (
	// GammaLegacy reproduces the historical pipeline: ACES tone map in
	// linear, 8-bit quantization, then a sqrt pass over the byte buffer.
	// This double-gamma over-darkens but matches existing renders.
	GammaLegacy GammaMode = iota
	// GammaLinear tone-maps in linear and applies a single 1/2.2
	// transfer before quantization
	GammaLinear
)

// TileRenderer renders rectangular pixel regions. The scene data it
// holds is read-only, so one instance is shared by all workers; tiles
// never overlap, so canvas writes need no locking.
type TileRenderer struct {
	bvh     *geometry.BVH
	camera  *Camera
	tracer  *integrator.PathTracer
	canvas  *Canvas
	samples int
	gamma   GammaMode
}

// NewTileRenderer creates a tile renderer drawing into the given canvas
func NewTileRenderer(bvh *geometry.BVH, camera *Camera, tracer *integrator.PathTracer, canvas *Canvas, samples int, gamma GammaMode) *TileRenderer {
	return &TileRenderer{
		bvh:     bvh,
		camera:  camera,
		tracer:  tracer,
		canvas:  canvas,
		samples: samples,
		gamma:   gamma,
	}
}

// RenderBounds renders every pixel inside bounds: accumulate jittered
// samples, average, tone map, and write out.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, random *rand.Rand) RenderStats {
	stats := RenderStats{TotalTiles: 1}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sum core.Vec3
			for s := 0; s < tr.samples; s++ {
				ray := tr.camera.GetRay(x, y, random)
				sum = sum.Add(tr.tracer.RayColor(ray, tr.bvh, random))
			}

			color := acesToneMap(sum.Multiply(1 / float64(tr.samples)))
			if tr.gamma == GammaLinear {
				color = color.GammaCorrect(2.2)
			}
			tr.canvas.Set(x, y, color)

			stats.TotalPixels++
			stats.TotalSamples += tr.samples
		}
	}

	return stats
}

// acesToneMap applies the ACES filmic approximation componentwise:
// x(2.51x + 0.03) / (x(2.43x + 0.59) + 0.14)
func acesToneMap(c core.Vec3) core.Vec3 {
	curve := func(x float64) float64 {
		return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
	}
	return core.NewVec3(curve(c.X), curve(c.Y), curve(c.Z)).Clamp(0, 1)
}
