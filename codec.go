package sgrmix

import (
	"strconv"
	"strings"
)

const (
	esc = "\x1b"

	// Markers telling a line-editing shell the enclosed bytes occupy zero
	// display columns
	promptStart = `\[`
	promptEnd   = `\]`
)

// ParseReason classifies a parse failure
type ParseReason uint8

const (
	// InvalidKind means the sequence selects neither foreground (38) nor
	// background (48)
	InvalidKind ParseReason = iota
	// InvalidComponent means an R/G/B field is missing, non-numeric, or
	// outside [0,255]
	InvalidComponent
)

func (r ParseReason) String() string {
	if r == InvalidKind {
		return "invalid kind"
	}
	return "invalid component"
}

// ParseError reports why an input could not be parsed as a true-color
// sequence. Field and Value identify the offending parameter
type ParseError struct {
	Reason ParseReason
	Field  string
	Value  string
}

func (e *ParseError) Error() string {
	return "parse color: " + e.Reason.String() + ": " + e.Field + " " + strconv.Quote(e.Value)
}

// String serializes the color as an ANSI SGR true-color sequence,
// ESC[<38|48>;2;<R>;<G>;<B>m, wrapped in the non-printable markers when the
// color is prompt-safe. Serialization depends only on the field values
func (c Color) String() string {
	var sb strings.Builder
	if c.PromptSafe {
		sb.WriteString(promptStart)
	}
	sb.WriteString(esc)
	sb.WriteString("[")
	sb.WriteString(c.Kind.param())
	sb.WriteString(";2")
	for _, p := range c.Params() {
		sb.WriteString(";")
		sb.WriteString(strconv.Itoa(int(p)))
	}
	sb.WriteString("m")
	if c.PromptSafe {
		sb.WriteString(promptEnd)
	}
	return sb.String()
}

// Parse reads a serialized true-color sequence, optionally wrapped in the
// non-printable prompt markers, back into a Color. Failures are reported as a
// *ParseError
func Parse(input string) (Color, error) {
	promptSafe := strings.Contains(input, promptEnd)

	// Strip the escape, bracket, marker, and terminator characters. What
	// remains is the semicolon-delimited parameter list
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case 0x1b, '[', ']', '\\', 'm':
			return -1
		}
		return r
	}, input)

	fields := strings.Split(stripped, ";")

	kind, err := parseKind(fields[0])
	if err != nil {
		return Color{}, err
	}

	components := [3]uint8{}
	names := [3]string{"red", "green", "blue"}
	for i, name := range names {
		v, err := parseComponent(name, fields, 2+i)
		if err != nil {
			return Color{}, err
		}
		components[i] = v
	}

	return Color{
		Kind:       kind,
		PromptSafe: promptSafe,
		Red:        components[0],
		Green:      components[1],
		Blue:       components[2],
	}, nil
}

func parseKind(field string) (Kind, error) {
	switch field {
	case "38":
		return Foreground, nil
	case "48":
		return Background, nil
	}
	return 0, &ParseError{Reason: InvalidKind, Field: "kind", Value: field}
}

func parseComponent(name string, fields []string, i int) (uint8, error) {
	if i >= len(fields) {
		return 0, &ParseError{Reason: InvalidComponent, Field: name, Value: ""}
	}
	v, err := strconv.Atoi(fields[i])
	if err != nil || v < 0 || v > 255 {
		return 0, &ParseError{Reason: InvalidComponent, Field: name, Value: fields[i]}
	}
	return uint8(v), nil
}
