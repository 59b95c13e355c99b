package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sgrmix/sgrmix"
	"github.com/sgrmix/sgrmix/palette"
)

const sgrReset = "\x1b[0m"

func chartCmd() *cobra.Command {
	var step int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "print a swatch chart of the palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			if step < 1 || step > 255 {
				return fmt.Errorf("step must be in [1,255], got %d", step)
			}
			printChart(cmd.OutOrStdout(), step)
			return nil
		},
	}
	cmd.Flags().IntVar(&step, "step", 32, "level increment between swatches")
	return cmd
}

func printChart(w io.Writer, step int) {
	cols := chartWidth()
	log.Debug("printing chart", "step", step, "columns", cols)

	p := palette.New()
	for _, kind := range []sgrmix.Kind{sgrmix.Foreground, sgrmix.Background} {
		fmt.Fprintf(w, "%s\n", kind)
		for _, family := range palette.Families() {
			var row strings.Builder
			row.WriteString(fmt.Sprintf("%-8s ", family))
			used := 9
			for level := 0; level <= 255; level += step {
				if used+2 > cols {
					break
				}
				c, ok := p.Lookup(palette.Key{
					Kind:   kind,
					Family: family,
					Level:  uint8(level),
				})
				if !ok {
					continue
				}
				row.WriteString(swatch(c))
				used += 2
			}
			row.WriteString(sgrReset)
			fmt.Fprintln(w, row.String())
		}
		fmt.Fprintln(w)
	}
}

// swatch renders two cells of the color: a solid block pair for foreground
// colors, a colored space pair for background colors
func swatch(c sgrmix.Color) string {
	if c.Kind == sgrmix.Background {
		return c.String() + "  "
	}
	return c.String() + "██"
}

// chartWidth is the terminal width, or 80 when stdout is not a terminal
func chartWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
