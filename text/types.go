package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Rect represents a rectangle for glyph bounds.
// Y grows downwards; glyph ink above the baseline has negative Y.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// HAlign is the horizontal part of an anchor.
type HAlign int

const (
	// AlignLeft puts the anchor at the start of the advance box.
	AlignLeft HAlign = iota
	// AlignCenter puts the anchor at the middle of the advance box.
	AlignCenter
	// AlignRight puts the anchor at the end of the advance box.
	AlignRight
)

// VAlign is the vertical part of an anchor.
type VAlign int

const (
	// AlignTop puts the anchor on the ascender line.
	AlignTop VAlign = iota
	// AlignBaseline puts the anchor on the baseline.
	AlignBaseline
	// AlignBottom puts the anchor on the descender line.
	AlignBottom
)

// Anchor tells DrawAnchored which point of the text box lands on (x, y).
type Anchor struct {
	H HAlign
	V VAlign
}

// Common anchors.
var (
	TopLeft      = Anchor{H: AlignLeft, V: AlignTop}
	TopCenter    = Anchor{H: AlignCenter, V: AlignTop}
	TopRight     = Anchor{H: AlignRight, V: AlignTop}
	BottomCenter = Anchor{H: AlignCenter, V: AlignBottom}
)
