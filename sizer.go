package uptable

import (
	"github.com/gogpu/uptable/internal/ucd"
	"github.com/gogpu/uptable/text"
)

// Fit is the face chosen to draw one glyph.
type Fit struct {
	// Face is the font at the chosen size.
	Face text.Face
	// Size is the chosen size in pixels.
	Size float64
	// Bounds is the glyph's ink box at Size.
	Bounds text.Rect
	// Fits is false when no candidate size fit and Size is the smallest
	// candidate.
	Fits bool
}

// Sizer picks the largest candidate size at which a glyph fits the card.
type Sizer struct {
	sizes     []float64
	maxWidth  float64
	maxHeight float64
	names     ucd.Database
}

// SizerOption configures a Sizer.
type SizerOption func(*Sizer)

// WithSizes replaces the candidate sizes. Sizes are tried in the given
// order, so they should be descending. An empty list keeps the defaults.
func WithSizes(sizes ...float64) SizerOption {
	return func(s *Sizer) {
		if len(sizes) > 0 {
			s.sizes = sizes
		}
	}
}

// WithBounds sets the limits a glyph's ink box must stay strictly under.
func WithBounds(maxWidth, maxHeight float64) SizerOption {
	return func(s *Sizer) {
		s.maxWidth = maxWidth
		s.maxHeight = maxHeight
	}
}

// NewSizer creates a Sizer for the card geometry. names is used to label
// the too-large warning and may be nil.
func NewSizer(names ucd.Database, opts ...SizerOption) *Sizer {
	s := &Sizer{
		sizes:     GlyphSizes,
		maxWidth:  maxGlyphWidth,
		maxHeight: maxGlyphHeight,
		names:     names,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Smallest returns the last candidate size.
func (s *Sizer) Smallest() float64 {
	return s.sizes[len(s.sizes)-1]
}

// Fit returns the face at the largest size whose ink box for r is strictly
// narrower than the width limit and strictly shorter than the height limit.
// When none fits it logs a warning and returns the smallest size with
// Fits set to false.
func (s *Sizer) Fit(r rune, src *text.FontSource) Fit {
	glyph := string(r)

	var fit Fit
	for _, size := range s.sizes {
		face := src.Face(size)
		b := face.Bounds(glyph)
		fit = Fit{Face: face, Size: size, Bounds: b}
		if b.Width() < s.maxWidth && b.Height() < s.maxHeight {
			fit.Fits = true
			return fit
		}
	}

	name := ""
	if s.names != nil {
		name = s.names.Name(r)
	}
	Logger().Warn("glyph too large for the smallest font size",
		"codepoint", FormatCodepoint(r),
		"name", name,
		"font", src.Name(),
		"size", fit.Size)
	return fit
}
