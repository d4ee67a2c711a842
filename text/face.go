package text

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	// This is the sum of all glyph advances.
	Advance(text string) float64

	// Bounds returns the ink bounding box of the text, relative to an
	// origin at the start of the baseline.
	Bounds(text string) Rect

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fontMetrics := f.source.Parsed().Metrics(f.size, f.config.hinting)

	// FontMetrics.Descent is negative (below baseline)
	// Metrics.Descent is positive (absolute distance from baseline)
	descent := fontMetrics.Descent
	if descent < 0 {
		descent = -descent
	}

	return Metrics{
		Ascent:  fontMetrics.Ascent,
		Descent: descent,
		LineGap: max(fontMetrics.LineGap, 0),
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	totalAdvance := 0.0

	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		totalAdvance += parsed.GlyphAdvance(gid, f.size, f.config.hinting)
	}

	return totalAdvance
}

// Bounds implements Face.Bounds.
func (f *sourceFace) Bounds(text string) Rect {
	parsed := f.source.Parsed()
	var bounds Rect
	x := 0.0

	for _, r := range text {
		gid := parsed.GlyphIndex(r)
		b := parsed.GlyphBounds(gid, f.size, f.config.hinting)
		b.MinX += x
		b.MaxX += x
		bounds = bounds.Union(b)
		x += parsed.GlyphAdvance(gid, f.size, f.config.hinting)
	}

	return bounds
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.HasGlyph(r)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// private implements the Face interface.
func (f *sourceFace) private() {}
