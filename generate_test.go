package uptable

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeRenderer renders small blank cards for even codepoints and nothing
// for odd ones.
type fakeRenderer struct {
	calls  []rune
	failAt rune
	cancel context.CancelFunc
}

var errRender = errors.New("render failed")

func (f *fakeRenderer) Render(cp rune) (*Canvas, error) {
	f.calls = append(f.calls, cp)
	if f.failAt != 0 && cp == f.failAt {
		return nil, errRender
	}
	if f.cancel != nil {
		f.cancel()
	}
	if cp%2 == 1 {
		return nil, nil
	}
	return NewCanvas(4, 4), nil
}

func TestGeneratorRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var progress bytes.Buffer
	fake := &fakeRenderer{}

	stats, err := NewGenerator(fake, dir, &progress).Run(context.Background(), Range{Start: 0x40, End: 0x45})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if diff := cmp.Diff(Stats{Written: 3, Skipped: 2}, stats); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]rune{0x40, 0x41, 0x42, 0x43, 0x44}, fake.calls); diff != "" {
		t.Errorf("render order mismatch (-want +got):\n%s", diff)
	}

	wantFiles := []string{"D+0000064.png", "D+0000066.png", "D+0000068.png"}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var gotFiles []string
	for _, e := range entries {
		gotFiles = append(gotFiles, e.Name())
	}
	if diff := cmp.Diff(wantFiles, gotFiles); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	var wantLines []string
	for _, name := range wantFiles {
		wantLines = append(wantLines, filepath.Join(dir, name))
	}
	if diff := cmp.Diff(wantLines, lines); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratorRunEmptyRange(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fake := &fakeRenderer{}

	stats, err := NewGenerator(fake, dir, nil).Run(context.Background(), Range{Start: 0x50, End: 0x50})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats != (Stats{}) || len(fake.calls) != 0 {
		t.Errorf("empty range rendered %v, stats %+v", fake.calls, stats)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}

func TestGeneratorRunInvalidRange(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	_, err := NewGenerator(&fakeRenderer{}, dir, nil).Run(context.Background(), Range{Start: 0x200, End: 0x100})
	var ve *RangeValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Run error = %v, want *RangeValidationError", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Error("invalid range should not create the output directory")
	}
}

func TestGeneratorRunRenderError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	fake := &fakeRenderer{failAt: 0x42}

	stats, err := NewGenerator(fake, dir, nil).Run(context.Background(), Range{Start: 0x40, End: 0x50})
	if !errors.Is(err, errRender) {
		t.Fatalf("Run error = %v, want errRender", err)
	}
	if !strings.Contains(err.Error(), "U+0042") {
		t.Errorf("error %q does not name the codepoint", err)
	}
	if stats.Written != 1 || stats.Skipped != 1 {
		t.Errorf("Stats = %+v, want 1 written 1 skipped", stats)
	}
	if len(fake.calls) != 3 {
		t.Errorf("rendered %d codepoints after the error, want stop at 3", len(fake.calls))
	}
}

func TestGeneratorRunCancelled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fake := &fakeRenderer{cancel: cancel}

	stats, err := NewGenerator(fake, dir, nil).Run(ctx, Range{Start: 0x40, End: 0x50})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if len(fake.calls) != 1 || stats.Written != 1 {
		t.Errorf("calls = %v, stats = %+v; want one card before stopping", fake.calls, stats)
	}
}

func TestGeneratorPath(t *testing.T) {
	g := NewGenerator(&fakeRenderer{}, "cards", nil)
	if got, want := g.Path('A'), filepath.Join("cards", "D+0000065.png"); got != want {
		t.Errorf("Path('A') = %q, want %q", got, want)
	}
}

func TestGeneratorRunWithRenderer(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := newTestRenderer(t, testFontDir(t))

	stats, err := NewGenerator(r, dir, nil).Run(context.Background(), Range{Start: 0x41, End: 0x42})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if stats.Written != 1 {
		t.Fatalf("Stats = %+v, want 1 written", stats)
	}

	data, err := os.ReadFile(filepath.Join(dir, "D+0000065.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG file")
	}
}
