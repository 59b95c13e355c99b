package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Method selects how the printable part of a prompt is measured
type Method int

const (
	// Wcwidth measures per rune, the way legacy wcwidth(3) does
	Wcwidth Method = iota
	// UnicodeStd measures per grapheme cluster following the unicode
	// standard
	UnicodeStd
)

// Width returns the number of display columns s occupies, measured with the
// unicode standard method. Regions wrapped in the non-printable prompt
// markers count as zero columns
func Width(s string) int {
	return WidthMethod(s, UnicodeStd)
}

// WidthMethod is Width with an explicit measurement method
func WidthMethod(s string, method Method) int {
	s = stripWrapped(s)
	switch method {
	case UnicodeStd:
		return uniseg.StringWidth(s)
	default:
		total := 0
		for _, r := range s {
			if r >= 0xFE00 && r <= 0xFE0F {
				// Variation Selectors 1 - 16
				continue
			}
			if r >= 0xE0100 && r <= 0xE01EF {
				// Variation Selectors 17-256
				continue
			}
			total += runewidth.RuneWidth(r)
		}
		return total
	}
}

// stripWrapped removes every non-printable-wrapped region. An unterminated
// start marker hides the rest of the string, which is also how a line editor
// treats it
func stripWrapped(s string) string {
	var sb strings.Builder
	for {
		start := strings.Index(s, `\[`)
		if start < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:start])
		s = s[start+2:]
		end := strings.Index(s, `\]`)
		if end < 0 {
			return sb.String()
		}
		s = s[end+2:]
	}
}
