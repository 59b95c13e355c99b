package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sgrmix/sgrmix"
	"github.com/sgrmix/sgrmix/palette"
	"github.com/sgrmix/sgrmix/prompt"
)

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "print an example colored shell prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := palette.New()
			pick := func(f palette.Family, level uint8) sgrmix.Color {
				c, _ := p.Lookup(palette.Key{
					Kind:   sgrmix.Foreground,
					Family: f,
					Level:  level,
				})
				return c.Prompt()
			}

			// Accent color derived from the palette, not listed in it
			user := pick(palette.Green, 200)
			host, err := sgrmix.Combine(user, sgrmix.Or, pick(palette.Blue, 255))
			if err != nil {
				return err
			}

			var b prompt.Builder
			ps1 := b.
				Style(user).
				Text("user").
				Style(pick(palette.White, 180)).
				Text("@").
				Style(host).
				Text("host").
				Style(pick(palette.Yellow, 220)).
				Text(" ~/src").
				Reset().
				Text(" $ ").
				String()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "PS1=%s\n", strconv.Quote(ps1))
			fmt.Fprintf(out, "rendered: %s\n", ps1)
			fmt.Fprintf(out, "display width: %d\n", prompt.Width(ps1))
			return nil
		},
	}
}
