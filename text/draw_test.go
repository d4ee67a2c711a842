package text

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// countInk returns the number of pixels that differ from transparent.
func countInk(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(12.0)

	dst := image.NewRGBA(image.Rect(0, 0, 200, 50))
	if err := Draw(dst, "Hello, World!", face, 10, 30, color.Black); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if countInk(dst) == 0 {
		t.Error("Expected Draw to modify the destination image")
	}
}

func TestDrawEmpty(t *testing.T) {
	source := loadTestFont(t)

	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	if err := Draw(dst, "", source.Face(12), 10, 30, color.Black); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if countInk(dst) != 0 {
		t.Error("Draw with empty text modified the image")
	}
}

func TestDrawNilFace(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))
	if err := Draw(dst, "x", nil, 0, 0, color.Black); !errors.Is(err, ErrNilFace) {
		t.Errorf("Draw(nil face) error = %v, want ErrNilFace", err)
	}
	if err := DrawAnchored(dst, "x", nil, 0, 0, TopLeft, color.Black); !errors.Is(err, ErrNilFace) {
		t.Errorf("DrawAnchored(nil face) error = %v, want ErrNilFace", err)
	}
}

func TestDrawColor(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(100)
	want := color.RGBA{R: 100, G: 50, B: 127, A: 255}

	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	if err := Draw(dst, "I", face, 50, 150, want); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	// The stem of a 100px "I" has fully covered pixels.
	solid := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			if dst.RGBAAt(x, y) == want {
				solid++
			}
		}
	}
	if solid == 0 {
		t.Error("no pixel carries the exact drawing color")
	}
}

func TestOrigin(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(70)
	m := face.Metrics()
	w := face.Advance("U+0041")

	tests := []struct {
		name   string
		anchor Anchor
		wantX  float64
		wantY  float64
	}{
		{"top left", TopLeft, 40, 40 + m.Ascent},
		{"top center", TopCenter, 256 - w/2, 40 + m.Ascent},
		{"top right", TopRight, 256 - w, 40 + m.Ascent},
		{"bottom center", BottomCenter, 256 - w/2, 40 - m.Descent},
		{"baseline left", Anchor{H: AlignLeft, V: AlignBaseline}, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := 40.0
			if tt.anchor.H != AlignLeft {
				x = 256
			}
			gotX, gotY := Origin("U+0041", face, x, 40, tt.anchor)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("Origin() = (%f, %f), want (%f, %f)", gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestDrawAnchoredBottom checks bottom-anchored ink stays above the anchor
// line.
func TestDrawAnchoredBottom(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(100)

	dst := image.NewRGBA(image.Rect(0, 0, 300, 300))
	if err := DrawAnchored(dst, "A", face, 150, 200, BottomCenter, color.Black); err != nil {
		t.Fatalf("DrawAnchored failed: %v", err)
	}

	for y := 201; y < 300; y++ {
		for x := 0; x < 300; x++ {
			if dst.RGBAAt(x, y).A != 0 {
				t.Fatalf("ink at (%d, %d), below the anchor line", x, y)
			}
		}
	}
	if countInk(dst) == 0 {
		t.Error("DrawAnchored drew nothing")
	}
}

func TestMeasure(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(40)

	w, h := Measure("Latin", face)
	if w != face.Advance("Latin") {
		t.Errorf("width = %f, want advance %f", w, face.Advance("Latin"))
	}
	if h != face.Metrics().LineHeight() {
		t.Errorf("height = %f, want line height %f", h, face.Metrics().LineHeight())
	}

	if w, h := Measure("", face); w != 0 || h != 0 {
		t.Errorf("Measure(\"\") = (%f, %f), want (0, 0)", w, h)
	}
	if w, h := Measure("x", nil); w != 0 || h != 0 {
		t.Errorf("Measure(nil face) = (%f, %f), want (0, 0)", w, h)
	}
}
