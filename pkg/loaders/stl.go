package loaders

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davawen/go-raytracing/pkg/core"
	"github.com/davawen/go-raytracing/pkg/geometry"
)

// ErrTruncated reports a mesh file that ended before its declared data
var ErrTruncated = errors.New("truncated mesh file")

// MeshTriangle is one loaded triangle, material-free: scene assembly
// binds a material when turning these into geometry.
type MeshTriangle struct {
	V0, V1, V2 geometry.Vertex
}

// stlTriangle matches the 50-byte binary STL triangle record
type stlTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// LoadSTL reads a binary STL file: an ignored 80-byte header, a
// little-endian uint32 triangle count, then per triangle a float32
// normal, three float32 vertices and two ignored attribute bytes. The
// stored face normal is copied into each vertex; UVs are zero.
func LoadSTL(filename string) ([]MeshTriangle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open STL file: %w", err)
	}
	defer file.Close()

	return ReadSTL(file)
}

// ReadSTL parses binary STL data from a reader
func ReadSTL(r io.Reader) ([]MeshTriangle, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", truncated(err))
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("stl: reading triangle count: %w", truncated(err))
	}

	triangles := make([]MeshTriangle, 0, count)
	for i := uint32(0); i < count; i++ {
		var raw stlTriangle
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("stl: reading triangle %d of %d: %w", i, count, truncated(err))
		}

		normal := vec3From(raw.Normal)
		triangles = append(triangles, MeshTriangle{
			V0: geometry.Vertex{Position: vec3From(raw.Vertices[0]), Normal: normal},
			V1: geometry.Vertex{Position: vec3From(raw.Vertices[1]), Normal: normal},
			V2: geometry.Vertex{Position: vec3From(raw.Vertices[2]), Normal: normal},
		})
	}

	return triangles, nil
}

// truncated maps premature EOF onto the parse error sentinel
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func vec3From(v [3]float32) core.Vec3 {
	return core.NewVec3(float64(v[0]), float64(v[1]), float64(v[2]))
}
