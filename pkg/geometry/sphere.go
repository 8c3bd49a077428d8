package geometry

import (
	"math"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/material"
)

// Sphere represents a sphere shape. A negative radius denotes an
// inward-facing sphere (a hollow shell interior): the geometry is the
// same but the front/back test is inverted.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. The quadratic is in the
// reduced form that assumes a unit ray direction.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	toCenter := s.Center.Subtract(ray.Origin)

	b := toCenter.Dot(ray.Direction)
	c := toCenter.Dot(toCenter) - s.Radius*s.Radius
	discriminant := b*b - c

	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearer root first, farther root if the nearer one is behind the ray
	root := b - sqrtD
	if root < tMin || root > tMax {
		root = b + sqrtD
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Normalize()

	// Multiplying both sides by the radius sign inverts the comparison
	// for inside-out spheres.
	sgn := math.Copysign(1, s.Radius)
	inside := ray.Origin.Subtract(s.Center).LengthSquared()*sgn <= s.Radius*s.Radius*sgn

	front := !inside
	normal := outward
	if inside {
		normal = outward.Negate()
	}

	return &material.HitRecord{
		Point:     point,
		Normal:    normal,
		T:         root,
		FrontFace: front,
		UV:        s.uv(point),
		Material:  s.Material,
	}, true
}

// uv returns spherical surface coordinates for a point on the sphere.
// The longitude is shifted by 0.3 before wrapping to move the seam.
func (s *Sphere) uv(point core.Vec3) core.Vec2 {
	dist := point.Subtract(s.Center)

	u := math.Mod(math.Atan2(-dist.X, dist.Z)/(2*math.Pi)+0.5+0.3, 1)
	v := dist.Y/(2*s.Radius) + 0.5

	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
// Canonicalize fixes the corner order for negative radii.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	).Canonicalize()
}

// Position returns the sphere center
func (s *Sphere) Position() core.Vec3 {
	return s.Center
}
