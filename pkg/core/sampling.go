package core

import (
	"math"
	"math/rand"
)

// TangentFrame is an orthonormal basis aligned to a surface normal.
// Normal-map samples and hemisphere samples are expressed in this frame
// (normal is the local up axis) and rotated into world space.
type TangentFrame struct {
	Tangent   Vec3
	Normal    Vec3
	Bitangent Vec3
}

// NewTangentFrame builds a frame around a unit normal. The tangent is
// chosen from whichever world axis the normal leans away from, so the
// construction never degenerates.
func NewTangentFrame(normal Vec3) TangentFrame {
	var tangent Vec3
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		tangent = NewVec3(normal.Z, 0, -normal.X)
	} else {
		tangent = NewVec3(0, -normal.Z, normal.Y)
	}
	tangent = tangent.Normalize()

	return TangentFrame{
		Tangent:   tangent,
		Normal:    normal,
		Bitangent: normal.Cross(tangent),
	}
}

// ToWorld rotates a tangent-local vector (y up) into world space
func (f TangentFrame) ToWorld(v Vec3) Vec3 {
	return f.Bitangent.Multiply(v.X).
		Add(f.Normal.Multiply(v.Y)).
		Add(f.Tangent.Multiply(v.Z))
}

// SampleHemisphere draws a random direction in the hemisphere around a
// unit normal: with r1, r2 uniform in [0,1), the local sample is
// (sqrt(1-r1²)·cos(2π·r2), r1, sqrt(1-r1²)·sin(2π·r2)). The cosine to the
// normal is r1 itself, so directions are spread uniformly over the
// hemisphere's solid angle rather than weighted toward the pole.
func SampleHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	sinTheta := math.Sqrt(1 - r1*r1)
	phi := 2 * math.Pi * r2

	sample := NewVec3(sinTheta*math.Cos(phi), r1, sinTheta*math.Sin(phi))

	return NewTangentFrame(normal).ToWorld(sample)
}
