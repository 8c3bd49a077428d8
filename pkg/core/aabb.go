package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBInfinite returns a box covering all of space
func NewAABBInfinite() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(-inf, -inf, -inf),
		Max: NewVec3(inf, inf, inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Canonicalize reorders the corners so Min <= Max on every axis.
// Needed for shapes whose natural corner order can invert, e.g. a
// sphere with negative radius.
func (aabb AABB) Canonicalize() AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, aabb.Max.X),
			Y: math.Min(aabb.Min.Y, aabb.Max.Y),
			Z: math.Min(aabb.Min.Z, aabb.Max.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Min.X, aabb.Max.X),
			Y: math.Max(aabb.Min.Y, aabb.Max.Y),
			Z: math.Max(aabb.Min.Z, aabb.Max.Z),
		},
	}
}

// Hit tests if a ray intersects this AABB using the slab method.
// Division by a zero direction component is fine: the resulting ±Inf
// slab distances propagate correctly through min/max.
func (aabb AABB) Hit(ray Ray) bool {
	invX := 1.0 / ray.Direction.X
	t1 := (aabb.Min.X - ray.Origin.X) * invX
	t2 := (aabb.Max.X - ray.Origin.X) * invX

	tMin := math.Min(t1, t2)
	tMax := math.Max(t1, t2)

	invY := 1.0 / ray.Direction.Y
	t1 = (aabb.Min.Y - ray.Origin.Y) * invY
	t2 = (aabb.Max.Y - ray.Origin.Y) * invY

	tMin = math.Max(tMin, math.Min(t1, t2))
	tMax = math.Min(tMax, math.Max(t1, t2))

	invZ := 1.0 / ray.Direction.Z
	t1 = (aabb.Min.Z - ray.Origin.Z) * invZ
	t2 = (aabb.Max.Z - ray.Origin.Z) * invZ

	tMin = math.Max(tMin, math.Min(t1, t2))
	tMax = math.Min(tMax, math.Max(t1, t2))

	return tMax >= math.Max(tMin, 0)
}

// Contains reports whether the point lies inside the box
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// ContainsBox reports whether other lies entirely inside the box
func (aabb AABB) ContainsBox(other AABB) bool {
	return aabb.Contains(other.Min) && aabb.Contains(other.Max)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if min <= max for all axes
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
