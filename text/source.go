package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font face from a font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the run.
//
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed *ximageParsedFont
	index  int

	name string

	mu     sync.RWMutex
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF, OTF or a collection).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// sfnt keeps a reference to the slice it parses, so parse the copy.
	parsed, err := parseXImage(dataCopy, config.index)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		index:  config.index,
		name:   config.name,
	}
	s.addr = s

	if s.name == "" {
		s.name = extractFontName(parsed)
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (pixels at 72 DPI).
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Index returns the face index inside a collection, 0 for single fonts.
func (s *FontSource) Index() int {
	s.copyCheck()
	return s.index
}

// HasGlyph reports whether the font maps r to a real glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	return s.Parsed().GlyphIndex(r) != 0
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	return s.raster()
}

// raster returns the x/image backed font used for drawing.
func (s *FontSource) raster() *ximageParsedFont {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		panic("text: FontSource used after Close")
	}
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	s.closed = true

	return nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}

	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	return "Unknown Font"
}
