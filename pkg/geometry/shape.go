package geometry

import (
	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit tests the ray against the shape and returns the surface record
	// for the nearest intersection with t in [tMin, tMax].
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns the axis-aligned bounding box for the shape
	BoundingBox() core.AABB

	// Position returns a representative point used to order shapes
	// during BVH construction.
	Position() core.Vec3
}

// Vertex is a mesh vertex with position, normal and texture coordinates
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
	UV       core.Vec2
}
