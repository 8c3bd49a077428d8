package integrator

import (
	"math"
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
)

const (
	// DefaultMaxDepth bounds path recursion for the primary configuration
	DefaultMaxDepth = 7

	// sunThreshold is the cosine above which a ray direction counts as
	// looking into the sun disc
	sunThreshold = 0.95

	// sunIntensity scales the white sun contribution
	sunIntensity = 30.0
)

var (
	skyHorizon = core.NewVec3(0.1, 0.4, 0.7)
	skyZenith  = core.NewVec3(0.7, 0.8, 0.9)
	sunColor   = core.NewVec3(1, 1, 1).Multiply(sunIntensity)
)

// PathTracer estimates radiance along camera rays by recursively
// scattering them through the scene until they escape to the sky or the
// depth bound cuts them off.
type PathTracer struct {
	MaxDepth int       // Maximum number of path segments
	Sun      core.Vec3 // Unit direction toward the sun
}

// NewPathTracer creates a path tracer with the given sun direction
func NewPathTracer(sun core.Vec3) *PathTracer {
	return &PathTracer{
		MaxDepth: DefaultMaxDepth,
		Sun:      sun.Normalize(),
	}
}

// RayColor computes the radiance carried back along a camera ray
func (pt *PathTracer) RayColor(ray core.Ray, bvh *geometry.BVH, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, bvh, random, 0)
}

func (pt *PathTracer) rayColor(ray core.Ray, bvh *geometry.BVH, random *rand.Rand, depth int) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth >= pt.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := bvh.Hit(ray, 0, math.Inf(1))
	if !isHit {
		return pt.Background(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{}
	}

	incoming := pt.rayColor(scatter.Scattered.Offset(), bvh, random, depth+1)
	return scatter.Attenuation.MultiplyVec(incoming)
}

// Background returns the sky model for a ray that escaped the scene: a
// vertical gradient plus a bright sun disc around the sun direction.
func (pt *PathTracer) Background(ray core.Ray) core.Vec3 {
	sky := skyHorizon.Lerp(skyZenith, ray.Direction.Y/2+0.5)

	if ray.Direction.Dot(pt.Sun) >= sunThreshold {
		return sky.Add(sunColor)
	}
	return sky
}
