package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got := v1.Add(v2); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: expected {5,7,9}, got %v", got)
	}
	if got := v2.Subtract(v1); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: expected {3,3,3}, got %v", got)
	}
	if got := v1.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: expected {2,4,6}, got %v", got)
	}
	if got := v1.MultiplyVec(v2); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec: expected {4,10,18}, got %v", got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %f", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Cross: expected {0,0,1}, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.Equals(NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Expected {0.6,0.8,0}, got %v", v)
	}

	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalizing zero vector should stay zero, got %v", got)
	}
}

func TestVec3_ReflectIdempotence(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		normal Vec3
	}{
		{"axis aligned", NewVec3(1, -1, 0), NewVec3(0, 1, 0)},
		{"oblique", NewVec3(0.3, -2, 1.4), NewVec3(1, 1, 1).Normalize()},
		{"grazing", NewVec3(1, -1e-6, 0), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := tt.v.Reflect(tt.normal).Reflect(tt.normal)
			if !twice.Equals(tt.v) {
				t.Errorf("reflect(reflect(v,n),n) != v: got %v, want %v", twice, tt.v)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	got := NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0))
	if !got.Equals(NewVec3(1, 1, 0)) {
		t.Errorf("Expected {1,1,0}, got %v", got)
	}
}

func TestVec3_Project(t *testing.T) {
	got := NewVec3(2, 3, 0).Project(NewVec3(1, 0, 0))
	if !got.Equals(NewVec3(2, 0, 0)) {
		t.Errorf("Expected {2,0,0}, got %v", got)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	if got := a.Lerp(b, 0.5); !got.Equals(NewVec3(1, 2, 3)) {
		t.Errorf("Expected midpoint {1,2,3}, got %v", got)
	}
	if got := a.Lerp(b, 0); !got.Equals(a) {
		t.Errorf("Lerp at 0 should return start, got %v", got)
	}
	if got := a.Lerp(b, 1); !got.Equals(b) {
		t.Errorf("Lerp at 1 should return end, got %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !got.Equals(NewVec3(0, 0.5, 1)) {
		t.Errorf("Expected {0,0.5,1}, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 1))
	if got := ray.At(2.5); !got.Equals(NewVec3(1, 0, 2.5)) {
		t.Errorf("Expected {1,0,2.5}, got %v", got)
	}
}

func TestRay_Offset(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0))
	offset := ray.Offset()

	if !offset.Direction.Equals(ray.Direction) {
		t.Errorf("Offset must not change direction, got %v", offset.Direction)
	}

	moved := offset.Origin.Subtract(ray.Origin)
	if math.Abs(moved.Length()-rayEpsilon) > 1e-12 {
		t.Errorf("Expected origin nudged by %f, moved %f", rayEpsilon, moved.Length())
	}
	if moved.Normalize().Dot(ray.Direction) < 0.999 {
		t.Errorf("Origin should move along the ray direction, moved %v", moved)
	}
}
