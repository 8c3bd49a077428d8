package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/davawen/go-raytracing/pkg/core"
)

// Canvas is the output pixel surface: a row-major, top-to-bottom buffer
// of 8-bit RGB values. Each pixel is written exactly once by its owning
// render worker; writes outside the surface are discarded.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // 3 bytes per pixel
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Set writes a linear color to the pixel at (x, y), clamping each
// channel to [0,1] before 8-bit quantization. Out-of-range coordinates
// are dropped so oversize primitives saturate at the edge.
func (c *Canvas) Set(x, y int, col core.Vec3) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}

	col = col.Clamp(0, 1)
	i := (y*c.width + x) * 3
	c.pix[i] = uint8(math.Round(col.X * 255))
	c.pix[i+1] = uint8(math.Round(col.Y * 255))
	c.pix[i+2] = uint8(math.Round(col.Z * 255))
}

// At returns the stored 8-bit color at (x, y)
func (c *Canvas) At(x, y int) (r, g, b uint8) {
	i := (y*c.width + x) * 3
	return c.pix[i], c.pix[i+1], c.pix[i+2]
}

// GammaPass applies the legacy gamma approximation to the finished
// buffer: every 8-bit channel is replaced with sqrt of its normalized
// value. Runs once, after all pixels are written.
func (c *Canvas) GammaPass() {
	for i, v := range c.pix {
		c.pix[i] = uint8(math.Round(math.Sqrt(float64(v)/255) * 255))
	}
}

// WritePPM encodes the canvas as a binary PPM (P6) stream
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}
	_, err := w.Write(c.pix)
	return err
}

// ToImage copies the canvas into an image.RGBA for the PNG encoder
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
