package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// parseXImage parses face index of data using golang.org/x/image/font/opentype.
func parseXImage(data []byte, index int) (*ximageParsedFont, error) {
	if !IsCollection(data) {
		if index != 0 {
			return nil, &FaceIndexError{Index: index, Count: 1}
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: failed to parse font: %w", err)
		}
		return &ximageParsedFont{font: f}, nil
	}

	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, &FaceIndexError{Index: index, Count: c.NumFonts()}
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse collection face %d: %w", index, err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return 0
	}

	return fixedToFloat64(advance)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(glyphIndex uint16, ppem float64, h Hinting) Rect {
	var buf sfnt.Buffer

	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return Rect{}
	}

	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64, h Hinting) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), mapHinting(h))
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance; FontMetrics keeps it negative.
	return FontMetrics{
		Ascent:  fixedToFloat64(metrics.Ascent),
		Descent: -fixedToFloat64(metrics.Descent),
		LineGap: fixedToFloat64(metrics.Height) - fixedToFloat64(metrics.Ascent) - fixedToFloat64(metrics.Descent),
	}
}

// face returns an x/image font.Face at the given size, ready for a font.Drawer.
// The caller must close it.
func (f *ximageParsedFont) face(size float64, h Hinting) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(h),
	})
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
