package uptable

// Card geometry, in pixels.
const (
	// Width and Height are the card dimensions.
	Width  = 512
	Height = 512

	border = 10
	margin = 10

	innerMarginHorizontal = 20
	innerMarginBottom     = 80
	innerMarginTop        = 20

	// glyphTop and glyphBottom delimit the band reserved for the glyph.
	glyphTop    = 80
	glyphBottom = 360

	labelSize       = 70
	scriptSize      = 40
	smallScriptSize = 30

	// scriptWidthLimit is the widest script label drawn at scriptSize.
	scriptWidthLimit = 320
)

// GlyphSizes are the candidate glyph sizes, largest first.
var GlyphSizes = []float64{250, 200, 150, 100, 70, 50, 20}

// glyph area limits a fitted glyph must stay strictly under.
const (
	maxGlyphWidth  = Width - 2*(border+margin*2)
	maxGlyphHeight = glyphBottom - glyphTop
)

// label anchor points.
const (
	inset        = margin + border
	labelLeft    = inset + innerMarginHorizontal
	labelRight   = Width - (inset + innerMarginHorizontal)
	labelTop     = inset + innerMarginTop
	codepointTop = Height - (inset + innerMarginBottom)
	spaceTop     = glyphTop + inset
)
