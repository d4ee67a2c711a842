package uptable

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/uptable/text"
)

// Canvas is one card being composed.
// It is created per codepoint, drawn on, encoded and discarded.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas filled with White.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(White), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// At returns the color of one pixel.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// FillRect fills the rectangle with corners (x0, y0) and (x1, y1), both
// inclusive.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.Color) {
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeRect outlines the rectangle with corners (x0, y0) and (x1, y1),
// both inclusive. The outline grows inwards by width pixels.
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width int, col color.Color) {
	if width <= 0 {
		return
	}
	c.FillRect(x0, y0, x1, y0+width-1, col)
	c.FillRect(x0, y1-width+1, x1, y1, col)
	c.FillRect(x0, y0, x0+width-1, y1, col)
	c.FillRect(x1-width+1, y0, x1, y1, col)
}

// DrawString draws s so that the anchor point of its box lands on (x, y).
func (c *Canvas) DrawString(s string, face text.Face, x, y float64, anchor text.Anchor, col color.Color) error {
	return text.DrawAnchored(c.img, s, face, x, y, anchor, col)
}

// EncodePNG writes the canvas as PNG to w.
// Cards are fully opaque, so the encoder emits 3-channel RGB.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from the output directory and codepoint
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := c.EncodePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
