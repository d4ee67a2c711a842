package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFace is returned when drawing is requested without a face.
	ErrNilFace = errors.New("text: nil face")
)

// FaceIndexError is returned when a face index does not exist in the font data.
type FaceIndexError struct {
	Index int
	Count int
}

func (e *FaceIndexError) Error() string {
	return fmt.Sprintf("text: face index %d out of range (font has %d faces)", e.Index, e.Count)
}
