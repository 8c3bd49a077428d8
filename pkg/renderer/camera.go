package renderer

import (
	"math"
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Camera projects pixel coordinates into world-space rays. Orientation
// is a unit quaternion applied to the view-space direction; fov is the
// full vertical field of view in radians.
type Camera struct {
	Position    core.Vec3
	Orientation core.Quat

	width    int
	height   int
	aspect   float64
	fovScale float64 // tan(fov/2)
}

// NewCamera creates a camera rendering to a width x height surface
func NewCamera(position core.Vec3, orientation core.Quat, fov float64, width, height int) *Camera {
	return &Camera{
		Position:    position,
		Orientation: orientation.Normalize(),
		width:       width,
		height:      height,
		aspect:      float64(width) / float64(height),
		fovScale:    math.Tan(fov / 2),
	}
}

// GetRay generates the ray through pixel (x, y), jittered inside the
// pixel footprint for antialiasing
func (c *Camera) GetRay(x, y int, random *rand.Rand) core.Ray {
	dx := random.Float64()
	dy := random.Float64()

	// Normalized device coordinates in [-1, 1], y growing downward on screen
	px := (float64(x)+dx)/float64(c.width)*2 - 1
	py := (float64(y)+dy)/float64(c.height)*2 - 1

	view := core.NewVec3(px*c.aspect*c.fovScale, -py*c.fovScale, 1).Normalize()

	return core.NewRay(c.Position, c.Orientation.RotateVector(view))
}

// GetRayCentered generates the ray through the exact center of pixel
// (x, y), used by tests and debugging probes
func (c *Camera) GetRayCentered(x, y int) core.Ray {
	px := (float64(x)+0.5)/float64(c.width)*2 - 1
	py := (float64(y)+0.5)/float64(c.height)*2 - 1

	view := core.NewVec3(px*c.aspect*c.fovScale, -py*c.fovScale, 1).Normalize()

	return core.NewRay(c.Position, c.Orientation.RotateVector(view))
}
