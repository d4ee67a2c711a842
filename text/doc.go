// Package text provides font loading, glyph coverage, measurement and
// drawing for uptable cards.
//
// The package separates three concerns:
//
//   - FontSource: heavyweight parsed font file, shared for a whole run
//   - Face: lightweight view of a FontSource at one size (in pixels, 72 DPI)
//   - Coverage: the character map of a font file, used to decide which font
//     can render a rune without paying for a full raster setup
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("fonts/NotoSans-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(250)
//	w := face.Advance("A")
//	text.DrawAnchored(img, "A", face, 256, 360, text.BottomCenter, color.Black)
//
// Coverage tables are loaded with github.com/go-text/typesetting; raster
// work uses golang.org/x/image/font/opentype. Font collections (.ttc/.otc)
// are supported by both: every face of a collection is addressed by its
// index.
package text
