package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/uptable/text"
)

// ErrNotDirectory is returned when the font path is not a directory.
var ErrNotDirectory = errors.New("catalog: font path is not a directory")

// fontExtensions lists the file extensions treated as fonts.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// Ref identifies one font face on disk.
type Ref struct {
	// Path is the font file path.
	Path string
	// Index is the face index inside a collection, 0 for single fonts.
	Index int
}

// String returns the path, suffixed with the face index for collections.
func (r Ref) String() string {
	if r.Index == 0 {
		return r.Path
	}
	return fmt.Sprintf("%s#%d", r.Path, r.Index)
}

// entry is a loaded coverage table.
type entry struct {
	ref Ref
	cov *text.Coverage
}

// Catalog looks fonts up by glyph coverage in one directory.
type Catalog struct {
	dir    string
	logger *slog.Logger

	files    []string
	scanned  bool
	coverage map[string][]*entry
	sources  map[Ref]*text.FontSource

	memo Memo
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Catalog over dir. The directory is not read until the first
// lookup.
func New(dir string, opts ...Option) *Catalog {
	c := &Catalog{
		dir:      dir,
		logger:   slog.New(slog.DiscardHandler),
		coverage: make(map[string][]*entry),
		sources:  make(map[Ref]*text.FontSource),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Find returns the first font covering r.
//
// The memoized font is tried first and re-validated against r. On a miss
// every font file is scanned in filename order; the first covering face is
// returned and memoized. found is false when no font covers r.
func (c *Catalog) Find(r rune) (ref Ref, found bool, err error) {
	if e, ok := c.memo.lookup(r); ok {
		return e.ref, true, nil
	}

	files, err := c.fontFiles()
	if err != nil {
		return Ref{}, false, err
	}

	for _, path := range files {
		entries, err := c.load(path)
		if err != nil {
			return Ref{}, false, err
		}
		for _, e := range entries {
			if e.cov.Has(r) {
				prev, _ := c.memo.Last()
				c.logger.Debug("catalog: font switch",
					"codepoint", fmt.Sprintf("U+%04X", r),
					"from", prev.String(),
					"font", e.ref.String())
				c.memo.remember(e)
				return e.ref, true, nil
			}
		}
	}

	return Ref{}, false, nil
}

// Covers reports whether any font in the directory covers r.
// It shares the scan and memo with Find.
func (c *Catalog) Covers(r rune) (bool, error) {
	_, found, err := c.Find(r)
	return found, err
}

// Open returns the raster font source for ref. Faces returned by Find are
// already loaded; other refs are loaded on first use.
func (c *Catalog) Open(ref Ref) (*text.FontSource, error) {
	if src, ok := c.sources[ref]; ok {
		return src, nil
	}
	src, err := text.NewFontSourceFromFile(ref.Path, text.WithFaceIndex(ref.Index))
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", ref, err)
	}
	c.sources[ref] = src
	return src, nil
}

// Memo returns the catalog's memo. Exposed for inspection in tests and
// diagnostics.
func (c *Catalog) Memo() *Memo {
	return &c.memo
}

// Close releases every font source opened through the catalog.
func (c *Catalog) Close() error {
	var errs []error
	for ref, src := range c.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(c.sources, ref)
	}
	clear(c.coverage)
	c.memo.Reset()
	return errors.Join(errs...)
}

// fontFiles lists font files in dir, sorted by filename.
func (c *Catalog) fontFiles() ([]string, error) {
	if c.scanned {
		return c.files, nil
	}

	info, err := os.Stat(c.dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, c.dir)
	}

	// os.ReadDir returns entries sorted by filename.
	dirEntries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	files := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !isFontFile(de.Name()) {
			c.logger.Debug("catalog: skipping entry", "name", de.Name())
			continue
		}
		files = append(files, filepath.Join(c.dir, de.Name()))
	}

	c.logger.Debug("catalog: scanned directory", "dir", c.dir, "fonts", len(files))
	c.files = files
	c.scanned = true
	return files, nil
}

// load returns the coverage entries of path, parsing the file on first use.
//
// Every face is also parsed for drawing. A face whose character map is
// readable but whose outlines or metrics are not is left out with a warning,
// so a covered rune can always be sized and drawn.
func (c *Catalog) load(path string) ([]*entry, error) {
	if entries, ok := c.coverage[path]; ok {
		return entries, nil
	}

	// #nosec G304 -- font directory is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	covs, err := text.LoadCoverage(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}

	entries := make([]*entry, 0, len(covs))
	for _, cov := range covs {
		ref := Ref{Path: path, Index: cov.Index()}
		src, err := text.NewFontSource(data, text.WithFaceIndex(cov.Index()))
		if err != nil {
			c.logger.Warn("catalog: skipping font face that cannot be drawn",
				"font", ref.String(),
				"error", err)
			continue
		}
		c.sources[ref] = src
		entries = append(entries, &entry{ref: ref, cov: cov})
	}
	c.coverage[path] = entries
	return entries, nil
}

// isFontFile reports whether name has a font file extension.
func isFontFile(name string) bool {
	return fontExtensions[strings.ToLower(filepath.Ext(name))]
}
