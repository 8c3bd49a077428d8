package material

import (
	"math"
	"testing"

	"github.com/davawen/go-raytracing/pkg/core"
)

// checkerboard builds a 2x2 texture with distinct corner colors
func checkerboard() *Texture {
	return NewTexture(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), // top row
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1), // bottom row
	})
}

func TestTexture_SampleCorners(t *testing.T) {
	// Clamp wrapping so u=1 and v=1 sample the far edge instead of
	// wrapping back to 0
	tex := checkerboard().WithWrapping(ClampToEdge)

	tests := []struct {
		name string
		u, v float64
		want core.Vec3
	}{
		{"bottom left", 0, 0, core.NewVec3(0, 0, 1)},
		{"bottom right", 1, 0, core.NewVec3(1, 1, 1)},
		{"top left", 0, 1, core.NewVec3(1, 0, 0)},
		{"top right", 1, 1, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Sample(tt.u, tt.v); !got.Equals(tt.want) {
				t.Errorf("Sample(%f, %f) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestTexture_BilinearBlend(t *testing.T) {
	tex := checkerboard()

	// Center of the texture blends all four texels evenly
	got := tex.Sample(0.5, 0.5)
	want := core.NewVec3(0.5, 0.5, 0.5)
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Center sample = %v, want %v", got, want)
	}
}

func TestTexture_RepeatIdentity(t *testing.T) {
	tex := checkerboard()

	for _, u := range []float64{-1.75, -0.3, 0.1, 0.6, 2.4} {
		a := tex.Sample(u, 0.25)
		b := tex.Sample(u+1, 0.25)
		if a.Subtract(b).Length() > 1e-9 {
			t.Errorf("Repeat: sample(%f) = %v differs from sample(%f) = %v", u, a, u+1, b)
		}
	}
}

func TestTexture_MirroredIdentity(t *testing.T) {
	tex := checkerboard().WithWrapping(MirroredRepeat)

	for _, u := range []float64{0.1, 0.5, 0.75, 1.3, 2.6} {
		a := tex.Sample(u, 0.25)
		b := tex.Sample(-u, 0.25)
		if a.Subtract(b).Length() > 1e-9 {
			t.Errorf("Mirrored: sample(%f) = %v differs from sample(%f) = %v", u, a, -u, b)
		}
	}
}

func TestTexture_ClampToEdge(t *testing.T) {
	tex := checkerboard().WithWrapping(ClampToEdge)

	inside := tex.Sample(1, 0)
	outside := tex.Sample(3.7, -2)
	if inside.Subtract(outside).Length() > 1e-9 {
		t.Errorf("Clamp: out-of-range sample %v should equal edge sample %v", outside, inside)
	}
}

func TestTexture_WrapFunctions(t *testing.T) {
	repeat := checkerboard()
	mirrored := checkerboard().WithWrapping(MirroredRepeat)

	for _, x := range []float64{-3.2, -0.5, 0, 0.25, 1, 7.9} {
		if w := repeat.wrap(x); w < 0 || w > 1 {
			t.Errorf("Repeat wrap(%f) = %f out of [0,1]", x, w)
		}
		if w := mirrored.wrap(x); w < 0 || w > 1 {
			t.Errorf("Mirrored wrap(%f) = %f out of [0,1]", x, w)
		}
	}

	// Sawtooth keeps the fractional part
	if w := repeat.wrap(2.25); math.Abs(w-0.25) > 1e-12 {
		t.Errorf("Repeat wrap(2.25) = %f, want 0.25", w)
	}
	// Triangle wave folds back past 1
	if w := mirrored.wrap(1.25); math.Abs(w-0.75) > 1e-12 {
		t.Errorf("Mirrored wrap(1.25) = %f, want 0.75", w)
	}
}
