package sgrmix

import "fmt"

// Operator is a bitwise combination of two colors' packed RGB values. The
// "Not" variants invert the second operand before applying the base operator
type Operator uint8

const (
	Or Operator = iota
	OrNot
	And
	AndNot
	Xor
	XorNot
)

// operatorTokens maps the textual operator surface to operators. Tokens are
// matched exactly
var operatorTokens = map[string]Operator{
	"OR":   Or,
	"~OR":  OrNot,
	"AND":  And,
	"~AND": AndNot,
	"XOR":  Xor,
	"~XOR": XorNot,
}

func (op Operator) String() string {
	for tok, o := range operatorTokens {
		if o == op {
			return tok
		}
	}
	return fmt.Sprintf("operator(%d)", uint8(op))
}

// ParseOperator resolves a token from {OR, ~OR, AND, ~AND, XOR, ~XOR}.
// Unrecognized tokens fail with a *CombineError
func ParseOperator(token string) (Operator, error) {
	op, ok := operatorTokens[token]
	if !ok {
		return 0, &CombineError{Reason: InvalidOperator, Detail: token}
	}
	return op, nil
}

// CombineReason classifies a combination failure
type CombineReason uint8

const (
	// MissingArguments means fewer than three tokens were supplied
	MissingArguments CombineReason = iota
	// InvalidOperator means the operator token is not recognized
	InvalidOperator
	// MismatchedKind means one operand is a foreground color and the
	// other a background color
	MismatchedKind
	// MismatchedPromptSafety means the operands differ in prompt-safe
	// wrapping
	MismatchedPromptSafety
)

func (r CombineReason) String() string {
	switch r {
	case MissingArguments:
		return "missing arguments"
	case InvalidOperator:
		return "invalid operator"
	case MismatchedKind:
		return "mismatched kind"
	default:
		return "mismatched prompt safety"
	}
}

// CombineError reports why two colors could not be combined
type CombineError struct {
	Reason CombineReason
	Detail string
}

func (e *CombineError) Error() string {
	if e.Detail == "" {
		return "combine colors: " + e.Reason.String()
	}
	return "combine colors: " + e.Reason.String() + ": " + e.Detail
}

// invert flips a packed RGB value within the 24-bit color domain. Masking
// after the negation keeps the result independent of the integer's width
func invert(rgb uint32) uint32 {
	return ^rgb & rgbMask
}

// Combine applies op to the packed RGB values of a and b and returns the
// resulting color. The operands must agree in kind and prompt-safety; the
// result carries both from a. On failure no color is produced
func Combine(a Color, op Operator, b Color) (Color, error) {
	if a.Kind != b.Kind {
		return Color{}, &CombineError{
			Reason: MismatchedKind,
			Detail: a.Kind.String() + " vs " + b.Kind.String(),
		}
	}
	if a.PromptSafe != b.PromptSafe {
		return Color{}, &CombineError{Reason: MismatchedPromptSafety}
	}

	ra := a.RGB()
	rb := b.RGB()
	switch op {
	case OrNot, AndNot, XorNot:
		rb = invert(rb)
	}

	var rgb uint32
	switch op {
	case Or, OrNot:
		rgb = ra | rb
	case And, AndNot:
		rgb = ra & rb
	case Xor, XorNot:
		rgb = ra ^ rb
	default:
		return Color{}, &CombineError{Reason: InvalidOperator, Detail: op.String()}
	}

	result := FromRGB(a.Kind, rgb)
	result.PromptSafe = a.PromptSafe
	return result, nil
}

// CombineTokens is the string surface of Combine: two serialized colors and
// an operator token, in the order first, operator, second. It returns the
// serialized result. Any failure, parse failures included, is reported as an
// error and no color string is produced
func CombineTokens(tokens []string) (string, error) {
	if len(tokens) < 3 {
		return "", &CombineError{
			Reason: MissingArguments,
			Detail: fmt.Sprintf("want 3, got %d", len(tokens)),
		}
	}

	a, err := Parse(tokens[0])
	if err != nil {
		return "", fmt.Errorf("first operand: %w", err)
	}
	op, err := ParseOperator(tokens[1])
	if err != nil {
		return "", err
	}
	b, err := Parse(tokens[2])
	if err != nil {
		return "", fmt.Errorf("second operand: %w", err)
	}

	combined, err := Combine(a, op, b)
	if err != nil {
		return "", err
	}
	return combined.String(), nil
}
