package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sgrmix/sgrmix"
)

func mixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mix <color> <operator> <color>",
		Short: "bitwise-combine two serialized colors",
		Long: `Combine two serialized true-color sequences with a bitwise operator.
Operators: OR, ~OR, AND, ~AND, XOR, ~XOR. The ~ variants invert the second
operand before applying the base operator.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := sgrmix.CombineTokens(args)
			if err != nil {
				log.Debug("combination failed", "args", args)
				return err
			}

			parsed, err := sgrmix.Parse(result)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n",
				strconv.Quote(result), swatch(parsed), sgrReset)
			log.Debug("combined",
				"red", parsed.Red, "green", parsed.Green, "blue", parsed.Blue)
			return nil
		},
	}
}
