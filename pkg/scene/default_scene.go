package scene

import (
	"math"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
	"github.com/davawen/go-raytracing/pkg/material"
)

// NewDefaultScene assembles the built-in demo scene: a matte ground
// plane, a diffuse sphere, a mirror sphere, a hollow glass shell (outer
// sphere plus inward-facing inner sphere) and a small pyramid.
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.7, 0.4))
	matte := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.95))
	glass := material.NewDielectric(1.5)

	s := &Scene{
		Sun:      core.NewVec3(-0.5, 0.8, -0.6).Normalize(),
		Width:    800,
		Height:   450,
		Samples:  128,
		MaxDepth: 7,
		Camera: CameraConfig{
			Position:    core.NewVec3(0, 1.2, -4),
			Orientation: core.QuatFromEuler(core.NewVec3(6*math.Pi/180, 0, 0)),
			Fov:         60 * math.Pi / 180,
		},
	}

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		geometry.NewSphere(core.NewVec3(-2.1, 1, 0), 1, matte),
		geometry.NewSphere(core.NewVec3(2.1, 1, 0), 1, mirror),

		// Hollow glass shell: the negative-radius inner sphere faces inward
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(0, 1, 0), -0.85, glass),
	)

	s.Add(pyramid(core.NewVec3(0, 0, 2.2), 1.2, 1.4, matte)...)

	return s
}

// pyramid builds a four-faced pyramid sitting on the ground plane
func pyramid(base core.Vec3, halfWidth, height float64, mat material.Material) []geometry.Shape {
	apex := base.Add(core.NewVec3(0, height, 0))
	corners := []core.Vec3{
		base.Add(core.NewVec3(-halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(-halfWidth, 0, halfWidth)),
	}

	var shapes []geometry.Shape
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		shapes = append(shapes, geometry.NewTriangle(
			geometry.Vertex{Position: a, UV: core.NewVec2(0, 0)},
			geometry.Vertex{Position: b, UV: core.NewVec2(1, 0)},
			geometry.Vertex{Position: apex, UV: core.NewVec2(0.5, 1)},
			mat,
		))
	}

	return shapes
}
