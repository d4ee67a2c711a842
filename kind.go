package uptable

import "image/color"

// Kind is the rendering bucket of a general category.
type Kind int

const (
	// KindSkip covers unassigned (Cn) and surrogate (Cs) codepoints.
	// No card is produced.
	KindSkip Kind = iota
	// KindControl covers control (Cc) and format (Cf) codepoints.
	KindControl
	// KindSpace covers space separators (Zs).
	KindSpace
	// KindPrivateUse covers private-use codepoints (Co).
	KindPrivateUse
	// KindGraphic covers every other category.
	KindGraphic
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSkip:
		return "Skip"
	case KindControl:
		return "Control"
	case KindSpace:
		return "Space"
	case KindPrivateUse:
		return "PrivateUse"
	case KindGraphic:
		return "Graphic"
	default:
		return "Unknown"
	}
}

// Classify returns the bucket of a two-letter general category.
func Classify(category string) Kind {
	switch category {
	case "Cn", "Cs":
		return KindSkip
	case "Cc", "Cf":
		return KindControl
	case "Zs":
		return KindSpace
	case "Co":
		return KindPrivateUse
	default:
		return KindGraphic
	}
}

// Plan carries the per-kind rendering parameters.
type Plan struct {
	Kind Kind

	// Background fills the inside of the border (control) or the space
	// width box (space). Nil means no background.
	Background color.Color

	// Ink is the glyph color.
	Ink color.Color

	// Script replaces the database script name when non-empty.
	Script string
}

// privateUseScript is the script label of private-use cards; the database
// reports "Unknown" for them.
const privateUseScript = "Private Use"

// plans is indexed by Kind.
var plans = [...]Plan{
	KindSkip:       {Kind: KindSkip},
	KindControl:    {Kind: KindControl, Background: LightCyan, Ink: Black},
	KindSpace:      {Kind: KindSpace, Background: LightCyan, Ink: DarkGray},
	KindPrivateUse: {Kind: KindPrivateUse, Ink: PrivateUsePurple, Script: privateUseScript},
	KindGraphic:    {Kind: KindGraphic, Ink: DarkGray},
}

// PlanFor returns the rendering plan for a general category.
func PlanFor(category string) Plan {
	return plans[Classify(category)]
}

// controlPicture returns the Control Pictures symbol standing for an ASCII
// control code or DEL.
func controlPicture(r rune) (rune, bool) {
	switch {
	case r >= 0 && r < 0x20:
		return r + 0x2400, true
	case r == 0x7F:
		return 0x2421, true
	default:
		return 0, false
	}
}

// oghamSpaceMark is the only space separator with a visible glyph.
const oghamSpaceMark = 0x1680
