package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// maxPPMLineLength is the longest line a PPM writer may emit
const maxPPMLineLength = 70

// Canvas is a grid of unclamped colors, initially black
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// WritePixel sets the color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// toByte clamps a channel to [0, 1] and scales it to [0, 255]
func toByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// WritePPM writes the canvas as a plain (P3) PPM image
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range [3]float64{p.R, p.G, p.B} {
				s := strconv.Itoa(int(toByte(v)))
				if lineLen > 0 && lineLen+1+len(s) > maxPPMLineLength {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(s)
				lineLen += len(s)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ToImage converts the canvas to an RGBA image with clamping
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(p.R),
				G: toByte(p.G),
				B: toByte(p.B),
				A: 255,
			})
		}
	}
	return img
}
