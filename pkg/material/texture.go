package material

import (
	"math"

	"github.com/davawen/go-raytracing/pkg/core"
)

// TextureWrapping selects how texture coordinates outside [0,1] are
// remapped before sampling
type TextureWrapping int

const (
	// Repeat tiles the texture (sawtooth remap)
	Repeat TextureWrapping = iota
	// MirroredRepeat tiles the texture, mirroring every other tile
	MirroredRepeat
	// ClampToEdge stretches the border texels outward
	ClampToEdge
)

// Texture is an immutable 2D image sampled at continuous (u,v)
// coordinates with bilinear filtering. Texels are stored as linear
// colors, row-major, with the first row at the top of the source image.
type Texture struct {
	Width    int
	Height   int
	Pixels   []core.Vec3 // Pixels[y*Width + x]
	Wrapping TextureWrapping
}

// NewTexture creates a texture with Repeat wrapping
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{
		Width:    width,
		Height:   height,
		Pixels:   pixels,
		Wrapping: Repeat,
	}
}

// WithWrapping sets the wrap mode and returns the texture
func (t *Texture) WithWrapping(wrapping TextureWrapping) *Texture {
	t.Wrapping = wrapping
	return t
}

// Sample returns the bilinearly filtered color at (u, v). V grows
// upward: (0,0) is the bottom-left corner of the image.
func (t *Texture) Sample(u, v float64) core.Vec3 {
	u, v = t.wrap(u), t.wrap(v)

	x := u * float64(t.Width-1)
	y := (1 - v) * float64(t.Height-1)

	fx, cx := math.Floor(x), math.Ceil(x)
	fy, cy := math.Floor(y), math.Ceil(y)

	nw := t.texel(int(fx), int(fy))
	ne := t.texel(int(cx), int(fy))
	sw := t.texel(int(fx), int(cy))
	se := t.texel(int(cx), int(cy))

	north := nw.Lerp(ne, x-fx)
	south := sw.Lerp(se, x-fx)

	return north.Lerp(south, y-fy)
}

func (t *Texture) wrap(x float64) float64 {
	switch t.Wrapping {
	case Repeat:
		x = x - math.Floor(x)
	case MirroredRepeat:
		// Triangle wave with period 2 and peak 1
		x = 2 * math.Abs(x/2-math.Floor(x/2+0.5))
	case ClampToEdge:
		// Handled by the final clamp
	}
	return max(0, min(1, x))
}

func (t *Texture) texel(x, y int) core.Vec3 {
	return t.Pixels[y*t.Width+x]
}
