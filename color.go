package uptable

import "image/color"

// Card palette.
var (
	// White is the base background of every card.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Black is used for the border, labels and control pictures.
	Black = color.RGBA{A: 255}

	// LightCyan marks control/format backgrounds and space widths.
	LightCyan = color.RGBA{R: 216, G: 255, B: 255, A: 255}

	// PrivateUsePurple is the glyph color for private-use codepoints.
	PrivateUsePurple = color.RGBA{R: 100, G: 50, B: 127, A: 255}

	// DarkGray is the glyph color for everything else.
	DarkGray = color.RGBA{R: 50, G: 50, B: 50, A: 255}
)
