package text

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying raster font representation.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width for a glyph at the given ppem.
	GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64

	// GlyphBounds returns the ink bounding box for a glyph at the given ppem.
	GlyphBounds(glyphIndex uint16, ppem float64, h Hinting) Rect

	// Metrics returns the font metrics at the given ppem.
	Metrics(ppem float64, h Hinting) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// collectionTag is the magic number at the start of a font collection.
const collectionTag = "ttcf"

// IsCollection reports whether data holds a font collection (.ttc/.otc)
// rather than a single font.
func IsCollection(data []byte) bool {
	return len(data) >= 4 && string(data[:4]) == collectionTag
}
