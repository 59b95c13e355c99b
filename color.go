// Package sgrmix models true-color (24-bit) ANSI SGR color sequences: parsing
// them into structured values, serializing them back, and deriving new colors
// by bitwise combination of two existing ones. Sequences may carry the
// non-printable wrapping used inside line-editing shell prompts.
package sgrmix

// Kind selects whether a color applies to the foreground or the background of
// a cell. It maps directly onto the SGR parameter (38 or 48)
type Kind uint8

const (
	Foreground Kind = iota
	Background
)

func (k Kind) String() string {
	if k == Background {
		return "background"
	}
	return "foreground"
}

// param returns the SGR parameter selecting this kind
func (k Kind) param() string {
	if k == Background {
		return "48"
	}
	return "38"
}

// Color is a single true-color terminal color. The zero value is a
// non-prompt-safe black foreground. Colors are values: every operation that
// would change one returns a new Color instead
type Color struct {
	Kind       Kind
	PromptSafe bool
	Red        uint8
	Green      uint8
	Blue       uint8
}

const rgbMask uint32 = 0xFFFFFF

// NewForeground returns a foreground color with the given components
func NewForeground(r uint8, g uint8, b uint8) Color {
	return Color{Kind: Foreground, Red: r, Green: g, Blue: b}
}

// NewBackground returns a background color with the given components
func NewBackground(r uint8, g uint8, b uint8) Color {
	return Color{Kind: Background, Red: r, Green: g, Blue: b}
}

// FromRGB builds a color of the given kind from a packed 24-bit value. Bits
// above the low 24 are discarded
func FromRGB(kind Kind, rgb uint32) Color {
	rgb &= rgbMask
	return Color{
		Kind:  kind,
		Red:   uint8(rgb >> 16),
		Green: uint8(rgb >> 8),
		Blue:  uint8(rgb),
	}
}

// RGB packs the components into a single 24-bit value, red in the high byte
func (c Color) RGB() uint32 {
	return uint32(c.Red)<<16 | uint32(c.Green)<<8 | uint32(c.Blue)
}

// Params returns the numeric components in sequence order
func (c Color) Params() []uint8 {
	return []uint8{c.Red, c.Green, c.Blue}
}

// Prompt returns the prompt-safe variant of c: the same color, serialized
// with the non-printable wrapping
func (c Color) Prompt() Color {
	c.PromptSafe = true
	return c
}
