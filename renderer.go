package uptable

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/uptable/internal/catalog"
	"github.com/gogpu/uptable/internal/ucd"
	"github.com/gogpu/uptable/text"
)

// Card is the textual content of one card.
type Card struct {
	Codepoint rune
	Category  string
	Kind      Kind
	// Label is the formatted codepoint ("U+0041").
	Label string
	// Script is the displayed script name.
	Script string
}

// Renderer composes cards.
// A Renderer is not safe for concurrent use; it shares its catalog's memo.
type Renderer struct {
	catalog *catalog.Catalog
	db      ucd.Database
	sizer   *Sizer

	generateFontless bool

	privateUsePath string
	symbolPath     string
	spacePath      string
	labelSource    *text.FontSource

	privateUse *text.FontSource
	symbol     lazySource
	space      lazySource

	labelFace       text.Face
	scriptFace      text.Face
	smallScriptFace text.Face
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithPrivateUseFont makes private-use codepoints render with the font at
// path instead of the catalog.
func WithPrivateUseFont(path string) RendererOption {
	return func(r *Renderer) {
		r.privateUsePath = path
	}
}

// WithSymbolFont sets the font drawing control pictures. If the file does
// not exist, or lacks a picture, the catalog is asked instead.
func WithSymbolFont(path string) RendererOption {
	return func(r *Renderer) {
		r.symbolPath = path
	}
}

// WithSpaceFont sets the font measuring space widths. If the file does not
// exist, or lacks the space, the catalog is asked instead.
func WithSpaceFont(path string) RendererOption {
	return func(r *Renderer) {
		r.spacePath = path
	}
}

// WithLabelSource sets the font of the category, script and codepoint
// labels. The default is Go Regular.
func WithLabelSource(src *text.FontSource) RendererOption {
	return func(r *Renderer) {
		r.labelSource = src
	}
}

// WithGenerateFontless makes codepoints without a covering font produce a
// card without glyph instead of no card.
func WithGenerateFontless(on bool) RendererOption {
	return func(r *Renderer) {
		r.generateFontless = on
	}
}

// NewRenderer creates a Renderer looking fonts up in cat and character
// properties in db.
func NewRenderer(cat *catalog.Catalog, db ucd.Database, opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		catalog: cat,
		db:      db,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.sizer = NewSizer(db)

	if r.labelSource == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("uptable: label font: %w", err)
		}
		r.labelSource = src
	}
	r.labelFace = r.labelSource.Face(labelSize)
	r.scriptFace = r.labelSource.Face(scriptSize)
	r.smallScriptFace = r.labelSource.Face(smallScriptSize)

	if r.privateUsePath != "" {
		src, err := text.NewFontSourceFromFile(r.privateUsePath)
		if err != nil {
			return nil, fmt.Errorf("uptable: private use font: %w", err)
		}
		r.privateUse = src
	}
	r.symbol.path = r.symbolPath
	r.space.path = r.spacePath

	return r, nil
}

// Describe returns the textual content of the card for cp.
func (rd *Renderer) Describe(cp rune) Card {
	category := rd.db.Category(cp)
	plan := PlanFor(category)

	script := plan.Script
	if script == "" {
		script = rd.db.Script(cp)
	}

	return Card{
		Codepoint: cp,
		Category:  category,
		Kind:      plan.Kind,
		Label:     FormatCodepoint(cp),
		Script:    ScriptLabel(script),
	}
}

// Render composes the card for cp. It returns a nil canvas when cp gets no
// card: unassigned and surrogate codepoints, and codepoints no font covers
// unless fontless generation is on.
func (rd *Renderer) Render(cp rune) (*Canvas, error) {
	card := rd.Describe(cp)
	plan := plans[card.Kind]

	var c *Canvas
	var err error
	switch plan.Kind {
	case KindSkip:
		return nil, nil
	case KindControl:
		c, err = rd.renderControl(cp, plan)
	case KindSpace:
		c, err = rd.renderSpace(cp, plan)
	case KindPrivateUse, KindGraphic:
		c, err = rd.renderGlyph(cp, plan)
	default:
		return nil, fmt.Errorf("uptable: unhandled kind %v", plan.Kind)
	}
	if err != nil || c == nil {
		return nil, err
	}

	if err := rd.drawLabels(c, card); err != nil {
		return nil, err
	}
	return c, nil
}

// newCard creates a canvas with the black border drawn.
func newCard() *Canvas {
	c := NewCanvas(Width, Height)
	c.StrokeRect(margin, margin, Width-margin, Height-margin, border, Black)
	return c
}

// renderControl fills the inside of the border and overlays the control
// picture for ASCII control codes and DEL.
func (rd *Renderer) renderControl(cp rune, plan Plan) (*Canvas, error) {
	c := newCard()
	c.FillRect(inset, inset, Width-inset, Height-inset, plan.Background)

	pic, ok := controlPicture(cp)
	if !ok {
		return c, nil
	}

	src, err := rd.symbol.get()
	if err != nil {
		return nil, err
	}
	if src == nil || !src.HasGlyph(pic) {
		if src, err = rd.lookup(pic); err != nil {
			return nil, err
		}
	}
	if src == nil {
		return c, nil
	}

	face := src.Face(GlyphSizes[0])
	if err := c.DrawString(string(pic), face, Width/2, glyphBottom, text.BottomCenter, plan.Ink); err != nil {
		return nil, err
	}
	return c, nil
}

// renderSpace draws a box as wide as the space's advance. The Ogham space
// mark also gets its glyph.
func (rd *Renderer) renderSpace(cp rune, plan Plan) (*Canvas, error) {
	c := newCard()

	src, err := rd.space.get()
	if err != nil {
		return nil, err
	}
	if src == nil || !src.HasGlyph(cp) {
		found, err := rd.lookup(cp)
		if err != nil {
			return nil, err
		}
		if found != nil {
			src = found
		}
	}
	if src != nil {
		w := src.Face(GlyphSizes[0]).Advance(string(cp))
		x0 := int(math.Round((Width - w) / 2))
		x1 := int(math.Round((Width + w) / 2))
		c.FillRect(x0, spaceTop, x1, glyphBottom, plan.Background)
	}

	if cp == oghamSpaceMark {
		fit, ok, err := rd.findFit(cp)
		if err != nil {
			return nil, err
		}
		if ok {
			if err := c.DrawString(string(cp), fit.Face, Width/2, Height/2, text.BottomCenter, plan.Ink); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// renderGlyph draws the glyph at its best fitting size. Private-use
// codepoints prefer the configured override font.
func (rd *Renderer) renderGlyph(cp rune, plan Plan) (*Canvas, error) {
	var fit Fit
	var ok bool
	if plan.Kind == KindPrivateUse && rd.privateUse != nil {
		fit, ok = rd.sizer.Fit(cp, rd.privateUse), true
	} else {
		covered, err := rd.catalog.Covers(cp)
		if err != nil {
			return nil, err
		}
		if covered {
			if fit, ok, err = rd.findFit(cp); err != nil {
				return nil, err
			}
		}
	}

	if !ok && !rd.generateFontless {
		return nil, nil
	}

	c := newCard()
	if ok {
		if err := c.DrawString(string(cp), fit.Face, Width/2, glyphBottom, text.BottomCenter, plan.Ink); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// drawLabels draws the codepoint, category and script labels.
func (rd *Renderer) drawLabels(c *Canvas, card Card) error {
	if err := c.DrawString(card.Label, rd.labelFace, Width/2, codepointTop, text.TopCenter, Black); err != nil {
		return err
	}
	if err := c.DrawString(card.Category, rd.labelFace, labelLeft, labelTop, text.TopLeft, Black); err != nil {
		return err
	}
	face, _ := rd.scriptLabelFace(card.Script)
	return c.DrawString(card.Script, face, labelRight, labelTop, text.TopRight, Black)
}

// scriptLabelFace returns the face for a script label: the standard size,
// or the small size when the label is wider than scriptWidthLimit.
func (rd *Renderer) scriptLabelFace(label string) (face text.Face, small bool) {
	if w, _ := text.Measure(label, rd.scriptFace); w > scriptWidthLimit {
		return rd.smallScriptFace, true
	}
	return rd.scriptFace, false
}

// findFit looks cp up in the catalog and sizes it.
func (rd *Renderer) findFit(cp rune) (Fit, bool, error) {
	src, err := rd.lookup(cp)
	if err != nil || src == nil {
		return Fit{}, false, err
	}
	return rd.sizer.Fit(cp, src), true, nil
}

// lookup returns the catalog font covering cp, or nil.
func (rd *Renderer) lookup(cp rune) (*text.FontSource, error) {
	ref, found, err := rd.catalog.Find(cp)
	if err != nil || !found {
		return nil, err
	}
	return rd.catalog.Open(ref)
}

// Close releases the fonts the renderer opened itself.
// The catalog is owned by the caller.
func (rd *Renderer) Close() error {
	var errs []error
	for _, src := range []*text.FontSource{rd.privateUse, rd.symbol.src, rd.space.src} {
		if src != nil {
			errs = append(errs, src.Close())
		}
	}
	return errors.Join(errs...)
}

// lazySource loads an optional font file on first use.
// A missing file yields a nil source; any other failure is an error.
type lazySource struct {
	path   string
	loaded bool
	src    *text.FontSource
}

func (l *lazySource) get() (*text.FontSource, error) {
	if l.loaded || l.path == "" {
		return l.src, nil
	}
	l.loaded = true

	src, err := text.NewFontSourceFromFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Debug("optional font not found, using catalog", "path", l.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("uptable: %w", err)
	}
	l.src = src
	return src, nil
}
