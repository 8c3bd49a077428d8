package scene

import (
	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
	"github.com/davawen/go-raytracing/pkg/loaders"
	"github.com/davawen/go-raytracing/pkg/material"
)

// CameraConfig describes the viewpoint: position, orientation and the
// full vertical field of view in radians
type CameraConfig struct {
	Position    core.Vec3
	Orientation core.Quat
	Fov         float64
}

// Scene is everything the renderer consumes: the flat shape list, the
// viewpoint, the sun direction and the image parameters. Shapes and
// textures are assembled once and are read-only during rendering.
type Scene struct {
	Shapes []geometry.Shape
	Camera CameraConfig
	Sun    core.Vec3

	Width    int
	Height   int
	Samples  int
	MaxDepth int
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddMesh binds a material to loaded triangles and adds them, scaled
// then translated
func (s *Scene) AddMesh(triangles []loaders.MeshTriangle, mat material.Material, scale float64, translate core.Vec3) {
	place := func(v geometry.Vertex) geometry.Vertex {
		v.Position = v.Position.Multiply(scale).Add(translate)
		return v
	}

	for _, t := range triangles {
		s.Add(geometry.NewTriangle(place(t.V0), place(t.V1), place(t.V2), mat))
	}
}

// BuildBVH constructs the acceleration structure over the scene's
// shapes. Fails with geometry.ErrEmptyScene when the scene is empty.
func (s *Scene) BuildBVH() (*geometry.BVH, error) {
	return geometry.NewBVH(s.Shapes)
}
