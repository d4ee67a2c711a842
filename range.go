package uptable

import (
	"fmt"
	"regexp"
	"strconv"

	"fortio.org/safecast"
)

// MaxCodepoint is one past the last Unicode codepoint.
const MaxCodepoint = 0x110000

// Range is the half-open codepoint interval [Start, End).
type Range struct {
	Start rune
	End   rune
}

// FullRange covers every Unicode codepoint.
var FullRange = Range{Start: 0, End: MaxCodepoint}

// Len returns the number of codepoints in the range.
func (r Range) Len() int {
	return int(r.End - r.Start)
}

// String returns the range in the "<hex>-<hex>" form ParseRange accepts.
func (r Range) String() string {
	return fmt.Sprintf("%x-%x", r.Start, r.End)
}

// Validate checks 0 <= Start <= End <= MaxCodepoint.
func (r Range) Validate() error {
	return validateBounds(int64(r.Start), int64(r.End))
}

// RangeFormatError is returned when range text is not "<hex>-<hex>".
type RangeFormatError struct {
	Text string
	Err  error
}

func (e *RangeFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("range %q: expected <hex>-<hex>: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("range %q: expected <hex>-<hex>", e.Text)
}

func (e *RangeFormatError) Unwrap() error {
	return e.Err
}

// RangeValidationError is returned when range bounds are out of order or
// outside the Unicode codespace. Err is set when a bound does not fit a rune.
type RangeValidationError struct {
	Start int64
	End   int64
	Err   error
}

func (e *RangeValidationError) Error() string {
	msg := fmt.Sprintf("range [%#x, %#x): need 0 <= start <= end <= %#x", e.Start, e.End, MaxCodepoint)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *RangeValidationError) Unwrap() error {
	return e.Err
}

var rangePattern = regexp.MustCompile(`^([0-9a-fA-F]+)-([0-9a-fA-F]+)$`)

// ParseRange resolves range text. Empty text means FullRange.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return FullRange, nil
	}

	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return Range{}, &RangeFormatError{Text: s}
	}

	start, err := strconv.ParseInt(m[1], 16, 64)
	if err != nil {
		return Range{}, &RangeFormatError{Text: s, Err: err}
	}
	end, err := strconv.ParseInt(m[2], 16, 64)
	if err != nil {
		return Range{}, &RangeFormatError{Text: s, Err: err}
	}

	r := Range{}
	if r.Start, err = safecast.Conv[rune](start); err != nil {
		return Range{}, &RangeValidationError{Start: start, End: end, Err: err}
	}
	if r.End, err = safecast.Conv[rune](end); err != nil {
		return Range{}, &RangeValidationError{Start: start, End: end, Err: err}
	}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func validateBounds(start, end int64) error {
	if start < 0 || start > end || end > MaxCodepoint {
		return &RangeValidationError{Start: start, End: end}
	}
	return nil
}
