package sgrmix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{
			name:  "foreground",
			color: NewForeground(0, 128, 255),
			want:  "\x1b[38;2;0;128;255m",
		},
		{
			name:  "background",
			color: NewBackground(255, 0, 0),
			want:  "\x1b[48;2;255;0;0m",
		},
		{
			name:  "prompt safe foreground",
			color: NewForeground(1, 2, 3).Prompt(),
			want:  `\[` + "\x1b[38;2;1;2;3m" + `\]`,
		},
		{
			name:  "zero value",
			color: Color{},
			want:  "\x1b[38;2;0;0;0m",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.color.String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{
			name:  "foreground",
			input: "\x1b[38;2;10;20;30m",
			want:  NewForeground(10, 20, 30),
		},
		{
			name:  "background",
			input: "\x1b[48;2;200;100;0m",
			want:  NewBackground(200, 100, 0),
		},
		{
			name:  "prompt safe",
			input: `\[` + "\x1b[48;2;0;0;0m" + `\]`,
			want:  NewBackground(0, 0, 0).Prompt(),
		},
		{
			name:  "leading zeros accepted",
			input: "\x1b[38;2;007;08;9m",
			want:  NewForeground(7, 8, 9),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason ParseReason
	}{
		{
			name:   "empty input",
			input:  "",
			reason: InvalidKind,
		},
		{
			name:   "legacy 16-color parameter",
			input:  "\x1b[31m",
			reason: InvalidKind,
		},
		{
			name:   "kind neither 38 nor 48",
			input:  "\x1b[58;2;1;2;3m",
			reason: InvalidKind,
		},
		{
			name:   "red out of range",
			input:  "\x1b[38;2;300;0;0m",
			reason: InvalidComponent,
		},
		{
			name:   "negative component",
			input:  "\x1b[38;2;0;-1;0m",
			reason: InvalidComponent,
		},
		{
			name:   "non numeric component",
			input:  "\x1b[38;2;0;zz;0m",
			reason: InvalidComponent,
		},
		{
			name:   "missing blue",
			input:  "\x1b[38;2;0;0m",
			reason: InvalidComponent,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.input)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, test.reason, perr.Reason)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Sample the component space rather than walking all 16M values
	levels := []uint8{0, 1, 7, 63, 127, 128, 200, 254, 255}
	for _, kind := range []Kind{Foreground, Background} {
		for _, promptSafe := range []bool{false, true} {
			for _, r := range levels {
				for _, g := range levels {
					for _, b := range levels {
						c := Color{
							Kind:       kind,
							PromptSafe: promptSafe,
							Red:        r,
							Green:      g,
							Blue:       b,
						}
						got, err := Parse(c.String())
						require.NoError(t, err)
						require.Equal(t, c, got)
					}
				}
			}
		}
	}
}

func TestRGBPacking(t *testing.T) {
	c := NewForeground(0xAB, 0xCD, 0xEF)
	assert.Equal(t, uint32(0xABCDEF), c.RGB())
	assert.Equal(t, c, FromRGB(Foreground, 0xABCDEF))
	assert.Equal(t, []uint8{0xAB, 0xCD, 0xEF}, c.Params())

	// High bits beyond the color domain are discarded
	assert.Equal(t, NewBackground(1, 2, 3), FromRGB(Background, 0xFF010203))
}
