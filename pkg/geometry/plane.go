package geometry

import (
	"math"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// Plane hits never flip the normal and always report a back face.
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (normalized at construction)
	Material material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)

	return &material.HitRecord{
		Point:     point,
		Normal:    p.Normal,
		T:         t,
		FrontFace: false,
		UV:        core.NewVec2(point.X, point.Z),
		Material:  p.Material,
	}, true
}

// BoundingBox returns the bounding box for this plane. An axis-aligned
// horizontal plane is flat in Y; anything else covers all of space.
func (p *Plane) BoundingBox() core.AABB {
	if math.Abs(p.Normal.Y) == 1 {
		inf := math.Inf(1)
		return core.NewAABB(
			core.NewVec3(-inf, p.Point.Y, -inf),
			core.NewVec3(inf, p.Point.Y, inf),
		)
	}
	return core.NewAABBInfinite()
}

// Position returns the plane's anchor point
func (p *Plane) Position() core.Vec3 {
	return p.Point
}
