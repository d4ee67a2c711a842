package uptable

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultOutputDir is the directory cards are written to by default.
const DefaultOutputDir = "codepoint_images"

// CardRenderer composes the card for one codepoint.
// A nil canvas with a nil error means the codepoint gets no card.
type CardRenderer interface {
	Render(cp rune) (*Canvas, error)
}

// Stats summarizes a run.
type Stats struct {
	// Written is the number of card files written.
	Written int
	// Skipped is the number of codepoints that produced no card.
	Skipped int
}

// Generator writes one PNG file per rendered codepoint.
type Generator struct {
	renderer CardRenderer
	outDir   string
	progress io.Writer
}

// NewGenerator creates a Generator writing into outDir and printing one
// line per written file to progress.
func NewGenerator(r CardRenderer, outDir string, progress io.Writer) *Generator {
	if progress == nil {
		progress = io.Discard
	}
	return &Generator{
		renderer: r,
		outDir:   outDir,
		progress: progress,
	}
}

// Path returns the file a card for cp is written to.
func (g *Generator) Path(cp rune) string {
	return filepath.Join(g.outDir, FileName(cp))
}

// Run renders every codepoint of rng in ascending order. The first error
// aborts the run. Cancelling ctx stops the run between codepoints.
func (g *Generator) Run(ctx context.Context, rng Range) (Stats, error) {
	var stats Stats
	if err := rng.Validate(); err != nil {
		return stats, err
	}

	if err := os.MkdirAll(g.outDir, 0o750); err != nil {
		return stats, fmt.Errorf("uptable: output directory: %w", err)
	}

	Logger().Info("run started", "range", rng.String(), "codepoints", rng.Len(), "output", g.outDir)

	for cp := rng.Start; cp < rng.End; cp++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		c, err := g.renderer.Render(cp)
		if err != nil {
			return stats, fmt.Errorf("uptable: render %s: %w", FormatCodepoint(cp), err)
		}
		if c == nil {
			stats.Skipped++
			continue
		}

		path := g.Path(cp)
		if err := c.SavePNG(path); err != nil {
			return stats, fmt.Errorf("uptable: write %s: %w", path, err)
		}
		stats.Written++
		if _, err := fmt.Fprintln(g.progress, path); err != nil {
			return stats, err
		}
	}

	Logger().Info("run finished", "written", stats.Written, "skipped", stats.Skipped)
	return stats, nil
}
