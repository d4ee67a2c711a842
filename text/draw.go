package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
// The face must come from FontSource.Face.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) error {
	if text == "" {
		return nil
	}
	if face == nil {
		return ErrNilFace
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return fmt.Errorf("text: unsupported face type %T", face)
	}

	otFace, err := sf.source.raster().face(sf.size, sf.config.hinting)
	if err != nil {
		return fmt.Errorf("text: failed to create face: %w", err)
	}
	defer func() {
		_ = otFace.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: otFace,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}

	d.DrawString(text)
	return nil
}

// DrawAnchored renders text so that the anchor point of its box lands on (x, y).
//
// Horizontally the box spans the advance width of the text. Vertically
// AlignTop is the ascender line and AlignBottom the descender line.
func DrawAnchored(dst draw.Image, text string, face Face, x, y float64, anchor Anchor, col color.Color) error {
	if face == nil {
		return ErrNilFace
	}
	ox, oy := Origin(text, face, x, y, anchor)
	return Draw(dst, text, face, ox, oy, col)
}

// Origin returns the baseline origin at which text must be drawn for the
// anchor point of its box to land on (x, y).
func Origin(text string, face Face, x, y float64, anchor Anchor) (ox, oy float64) {
	switch anchor.H {
	case AlignCenter:
		x -= face.Advance(text) / 2
	case AlignRight:
		x -= face.Advance(text)
	}

	switch anchor.V {
	case AlignTop:
		y += face.Metrics().Ascent
	case AlignBottom:
		y -= face.Metrics().Descent
	}

	return x, y
}

// Measure returns the dimensions of text.
// Width is the horizontal advance, height is the font's line height.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}

	width = face.Advance(text)
	height = face.Metrics().LineHeight()

	return width, height
}
