package geometry

import (
	"math"
	"testing"

	"github.com/davawen/go-raytracing/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	hit, isHit := plane.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	if !hit.Point.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected hit at origin, got %v", hit.Point)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Plane normal should never flip, got %v", hit.Normal)
	}
	if hit.FrontFace {
		t.Error("Plane hits always report a back face")
	}
}

func TestPlane_Hit_ParallelMiss(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	// Ray travels inside a plane parallel to the surface
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))
	if _, isHit := plane.Hit(ray, 0, math.Inf(1)); isHit {
		t.Error("Parallel ray should not hit the plane")
	}
}

func TestPlane_Hit_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	if _, isHit := plane.Hit(ray, 0, math.Inf(1)); isHit {
		t.Error("Plane behind the ray should not be hit")
	}
}

func TestPlane_Hit_NormalNotNormalized(t *testing.T) {
	// The constructor normalizes the normal
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 10, 0), DummyMaterial{})

	if math.Abs(plane.Normal.Length()-1) > 1e-12 {
		t.Errorf("Expected unit normal, got length %f", plane.Normal.Length())
	}
}

func TestPlane_UV(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), DummyMaterial{})

	ray := core.NewRay(core.NewVec3(3.5, 2, -1.25), core.NewVec3(0, -1, 0))
	hit, isHit := plane.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}

	if hit.UV.X != 3.5 || hit.UV.Y != -1.25 {
		t.Errorf("Plane UV should be the hit point's (x, z): got (%f, %f)", hit.UV.X, hit.UV.Y)
	}
}

func TestPlane_BoundingBox(t *testing.T) {
	horizontal := NewPlane(core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0), DummyMaterial{})
	box := horizontal.BoundingBox()
	if box.Min.Y != 2 || box.Max.Y != 2 {
		t.Errorf("Horizontal plane should be flat at its height, got %v/%v", box.Min, box.Max)
	}
	if !math.IsInf(box.Min.X, -1) || !math.IsInf(box.Max.Z, 1) {
		t.Error("Horizontal plane should extend infinitely in X and Z")
	}

	tilted := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), DummyMaterial{})
	if !tilted.BoundingBox().Contains(core.NewVec3(1e10, -1e10, 0)) {
		t.Error("Tilted plane bound should cover all of space")
	}
}
