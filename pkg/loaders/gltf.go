package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
)

// LoadGLTF reads a glTF or GLB file and flattens every triangle
// primitive into loaded triangles. Vertex normals and UVs are carried
// over when present; glTF's top-left V origin is flipped to bottom-left.
func LoadGLTF(filename string) ([]MeshTriangle, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}

	var triangles []MeshTriangle
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}

			verts, err := readPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("glTF mesh %q: %w", mesh.Name, err)
			}

			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("glTF mesh %q: reading indices: %w", mesh.Name, err)
				}
				for i := 0; i+2 < len(indices); i += 3 {
					triangles = append(triangles, MeshTriangle{
						V0: verts[indices[i]],
						V1: verts[indices[i+1]],
						V2: verts[indices[i+2]],
					})
				}
			} else {
				for i := 0; i+2 < len(verts); i += 3 {
					triangles = append(triangles, MeshTriangle{
						V0: verts[i],
						V1: verts[i+1],
						V2: verts[i+2],
					})
				}
			}
		}
	}

	return triangles, nil
}

// readPrimitive extracts per-vertex attributes from a triangle primitive
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]geometry.Vertex, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("primitive has no positions")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading texture coordinates: %w", err)
		}
	}

	verts := make([]geometry.Vertex, len(positions))
	for i, pos := range positions {
		verts[i].Position = vec3From(pos)
		if i < len(normals) {
			verts[i].Normal = vec3From(normals[i])
		}
		if i < len(uvs) {
			// glTF puts V=0 at the top of the image
			verts[i].UV = core.NewVec2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
		}
	}

	return verts, nil
}
