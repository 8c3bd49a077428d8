package material

import (
	"math/rand"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Color attenuation applied to light carried back along it
}

// HitRecord contains information about a ray-shape intersection.
// Each shape fills Normal and FrontFace by its own convention: spheres
// use the inside/outside test (sign-aware for inverted shells), triangles
// flip the face normal against the ray, planes never flip.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	UV        core.Vec2 // Surface parameterization at the hit point
	Material  Material  // Material of the hit shape
}
