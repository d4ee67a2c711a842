package text

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	// Note: Unlike FontMetrics.Descent, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
