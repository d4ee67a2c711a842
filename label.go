package uptable

import (
	"fmt"
	"strings"
)

// FormatCodepoint returns the card label for r: "U+" and four upper-case
// hex digits below U+10000, six digits above.
func FormatCodepoint(r rune) string {
	if r < 0x10000 {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%06X", r)
}

// FileName returns the card file name for r: "D+" and the decimal codepoint
// zero-padded to seven digits.
func FileName(r rune) string {
	return fmt.Sprintf("D+%07d.png", r)
}

// ScriptLabel returns the displayed form of a database script name.
func ScriptLabel(script string) string {
	return strings.ReplaceAll(script, "_", " ")
}
