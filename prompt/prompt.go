// Package prompt assembles shell prompt strings from colors and text, and
// measures the display width such a string occupies on screen.
package prompt

import (
	"strings"

	"github.com/sgrmix/sgrmix"
)

const (
	sgrReset       = "\x1b[0m"
	sgrResetPrompt = `\[` + "\x1b[0m" + `\]`
)

// Builder concatenates colored segments into a prompt string. The zero value
// is ready to use
type Builder struct {
	sb strings.Builder
	// last applied color was prompt-safe, so resets must be wrapped too
	promptSafe bool
}

// Style appends a color sequence. Following text renders in that color
func (b *Builder) Style(c sgrmix.Color) *Builder {
	b.promptSafe = c.PromptSafe
	b.sb.WriteString(c.String())
	return b
}

// Text appends literal text
func (b *Builder) Text(s string) *Builder {
	b.sb.WriteString(s)
	return b
}

// Reset appends an SGR reset, wrapped in the non-printable markers when the
// last applied color was prompt-safe
func (b *Builder) Reset() *Builder {
	if b.promptSafe {
		b.sb.WriteString(sgrResetPrompt)
	} else {
		b.sb.WriteString(sgrReset)
	}
	return b
}

// String returns the assembled prompt
func (b *Builder) String() string {
	return b.sb.String()
}
