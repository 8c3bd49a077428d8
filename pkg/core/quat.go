package core

import "math"

// Quat is a rotation quaternion. Camera orientation is stored as a unit
// quaternion and applied to ray directions with RotateVector.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle builds a rotation of angle radians around axis
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	halfAngle := angle / 2
	s := math.Sin(halfAngle)
	c := math.Cos(halfAngle)

	axis = axis.Normalize()
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// QuatFromEuler builds a rotation from XYZ Euler angles in radians
func QuatFromEuler(euler Vec3) Quat {
	cx := math.Cos(euler.X / 2)
	sx := math.Sin(euler.X / 2)
	cy := math.Cos(euler.Y / 2)
	sy := math.Sin(euler.Y / 2)
	cz := math.Cos(euler.Z / 2)
	sz := math.Sin(euler.Z / 2)

	return Quat{
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// Mul composes two rotations (q applied after other)
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Normalize returns a unit quaternion in the same orientation
func (q Quat) Normalize() Quat {
	length := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if length == 0 {
		return q
	}
	inv := 1 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Conjugate returns the inverse rotation for unit quaternions
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// RotateVector applies the rotation to a vector
func (q Quat) RotateVector(v Vec3) Vec3 {
	qVec := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := qVec.Cross(v).Multiply(2)
	return v.Add(t.Multiply(q.W)).Add(qVec.Cross(t))
}
