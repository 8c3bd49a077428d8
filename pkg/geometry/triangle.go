package geometry

import (
	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// The normal and edge vectors are precomputed from the vertices and are
// never mutated independently of them.
type Triangle struct {
	P0, P1, P2 Vertex
	Material   material.Material

	normal core.Vec3 // Unit face normal
	edge1  core.Vec3 // P1 - P0
	edge2  core.Vec3 // P2 - P0
	edge3  core.Vec3 // P2 - P1, used by the barycentric weights
	bbox   core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(p0, p1, p2 Vertex, mat material.Material) *Triangle {
	t := &Triangle{
		P0:       p0,
		P1:       p1,
		P2:       p2,
		Material: mat,
	}
	t.precompute()
	return t
}

func (t *Triangle) precompute() {
	t.edge1 = t.P1.Position.Subtract(t.P0.Position)
	t.edge2 = t.P2.Position.Subtract(t.P0.Position)
	t.edge3 = t.P2.Position.Subtract(t.P1.Position)
	t.normal = t.edge1.Cross(t.edge2).Normalize().Negate()
	t.bbox = core.NewAABBFromPoints(t.P0.Position, t.P1.Position, t.P2.Position)
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// Ray parallel to the triangle plane; also rejects degenerate triangles
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.P0.Position)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam <= 0 || tParam < tMin || tParam > tMax {
		return nil, false
	}

	point := ray.At(tParam)

	// Face normal flipped to oppose the incoming ray
	normal := t.normal
	if ray.Direction.Dot(t.normal) > 0 {
		normal = t.normal.Negate()
	}

	return &material.HitRecord{
		Point:     point,
		Normal:    normal,
		T:         tParam,
		FrontFace: true,
		UV:        t.uv(point),
		Material:  t.Material,
	}, true
}

// uv interpolates the vertex texture coordinates with barycentric
// weights of the hit point projected onto the XY plane. A triangle that
// projects to a segment yields NaN weights, which is tolerated.
func (t *Triangle) uv(p core.Vec3) core.Vec2 {
	div := -t.edge3.Y*(-t.edge2.X) + t.edge3.X*(-t.edge2.Y)

	w0 := (-t.edge3.Y*(p.X-t.P2.Position.X) + t.edge3.X*(p.Y-t.P2.Position.Y)) / div
	w1 := (t.edge2.Y*(p.X-t.P2.Position.X) - t.edge2.X*(p.Y-t.P2.Position.Y)) / div
	w2 := 1 - w0 - w1

	return t.P0.UV.Multiply(w0).
		Add(t.P1.UV.Multiply(w1)).
		Add(t.P2.UV.Multiply(w2))
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Position returns the triangle centroid
func (t *Triangle) Position() core.Vec3 {
	return t.P0.Position.
		Add(t.P1.Position).
		Add(t.P2.Position).
		Multiply(1.0 / 3.0)
}

// Normal returns the precomputed unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
