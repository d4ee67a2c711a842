// Package uptable renders a "periodic table" of Unicode: one 512x512 card
// per codepoint showing its glyph, general category, script and number.
//
// The pipeline has four parts:
//
//   - ParseRange resolves the "<hex>-<hex>" range to render
//   - a catalog.Catalog finds the first font in a directory covering a rune
//   - a Sizer picks the largest size at which the glyph fits the card
//   - a Renderer composes the card according to the codepoint's category
//
// A Generator drives them over a range and writes one PNG per card.
//
// # Example usage
//
//	db := ucd.New()
//	cat := catalog.New("fonts")
//	defer cat.Close()
//
//	r, err := uptable.NewRenderer(cat, db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := uptable.NewGenerator(r, "codepoint_images", os.Stdout)
//	rng, _ := uptable.ParseRange("41-5b")
//	if _, err := g.Run(context.Background(), rng); err != nil {
//	    log.Fatal(err)
//	}
//
// # Card layout
//
// Every card has a 10px black border inset by 10px. The glyph sits in the
// band between y=80 and y=360, bottom-anchored at y=360. The category code
// is drawn top-left, the script name top-right and the U+ label near the
// bottom.
package uptable
