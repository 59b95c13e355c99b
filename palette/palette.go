// Package palette enumerates the true-color palette of the seven primary
// color families, each parameterized by a 0-255 intensity level, for both
// foreground and background use.
package palette

import "github.com/sgrmix/sgrmix"

// Family is one of the seven primary color families. A family is a mask over
// the RGB channels; its level sets every masked channel to the same intensity
type Family uint8

const (
	Red Family = iota
	Green
	Blue
	Yellow
	Magenta
	Cyan
	White
)

// channel masks, in r, g, b order
var familyMasks = [...][3]bool{
	Red:     {true, false, false},
	Green:   {false, true, false},
	Blue:    {false, false, true},
	Yellow:  {true, true, false},
	Magenta: {true, false, true},
	Cyan:    {false, true, true},
	White:   {true, true, true},
}

var familyNames = [...]string{
	Red:     "red",
	Green:   "green",
	Blue:    "blue",
	Yellow:  "yellow",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

func (f Family) String() string {
	if int(f) >= len(familyNames) {
		return "unknown"
	}
	return familyNames[f]
}

// Level returns the family's components at the given intensity
func (f Family) Level(l uint8) (r uint8, g uint8, b uint8) {
	mask := familyMasks[f]
	if mask[0] {
		r = l
	}
	if mask[1] {
		g = l
	}
	if mask[2] {
		b = l
	}
	return r, g, b
}

// Families returns the seven families in stable display order
func Families() []Family {
	return []Family{Red, Green, Blue, Yellow, Magenta, Cyan, White}
}

// Key identifies one palette entry
type Key struct {
	Kind   sgrmix.Kind
	Family Family
	Level  uint8
}

// Palette holds every family/level combination for both kinds. Entries are
// plain colors; use Color.Prompt for the prompt-safe variant
type Palette map[Key]sgrmix.Color

// New builds the full palette: 2 kinds x 7 families x 256 levels
func New() Palette {
	p := make(Palette, 2*7*256)
	for _, kind := range []sgrmix.Kind{sgrmix.Foreground, sgrmix.Background} {
		for _, family := range Families() {
			for level := 0; level <= 255; level++ {
				r, g, b := family.Level(uint8(level))
				p[Key{Kind: kind, Family: family, Level: uint8(level)}] = sgrmix.Color{
					Kind:  kind,
					Red:   r,
					Green: g,
					Blue:  b,
				}
			}
		}
	}
	return p
}

// Lookup returns the palette entry for k
func (p Palette) Lookup(k Key) (sgrmix.Color, bool) {
	c, ok := p[k]
	return c, ok
}
