package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Coverage is the character map of one face of a font file.
// It answers "does this font have a glyph for r" without any raster setup.
type Coverage struct {
	face  *font.Face
	index int
}

// LoadCoverage parses the character maps of every face in data.
// Single fonts yield one Coverage, collections one per face in face order.
func LoadCoverage(data []byte) ([]*Coverage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	r := bytes.NewReader(data)
	if IsCollection(data) {
		faces, err := font.ParseTTC(r)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
		}
		out := make([]*Coverage, len(faces))
		for i, f := range faces {
			out[i] = &Coverage{face: f, index: i}
		}
		return out, nil
	}

	f, err := font.ParseTTF(r)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return []*Coverage{{face: f}}, nil
}

// Has reports whether the face maps r to a glyph.
func (c *Coverage) Has(r rune) bool {
	_, ok := c.face.NominalGlyph(r)
	return ok
}

// Index returns the face index inside its file.
func (c *Coverage) Index() int {
	return c.index
}
