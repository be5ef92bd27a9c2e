package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/calebcase/float"
)

// boundaryLiterals must each parse to a finite value whose shortest text
// reads back to the same bits.
var boundaryLiterals = []struct {
	literal string
	bits    int
}{
	{literal: "1.0902420340782359E+27", bits: 32},
	{literal: "1.0902420340782359E+57", bits: 64},
}

// Boundary round trips the boundary literals.
var Boundary = &cobra.Command{
	Use:   "boundary",
	Short: "Round trip literals that sit on a rounding boundary.",
	Args:  cobra.NoArgs,
	RunE:  commandBoundary,
}

func commandBoundary(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, b := range boundaryLiterals {
		v, err := float.ParseFloat(b.literal, b.bits)
		if err != nil {
			return err
		}

		text := float.FormatFloat(v, b.bits)

		back, err := float.ParseFloat(text, b.bits)
		if err != nil {
			return err
		}

		word, backWord := bitsOf(v, b.bits), bitsOf(back, b.bits)

		fmt.Fprintf(out, "binary%d\t%s\t0x%0*x\t%s\n", b.bits, b.literal, b.bits/4, word, text)

		if word != backWord {
			slog.Error("boundary round trip failed", "literal", b.literal, "bits", b.bits, "text", text)

			return Error.New("boundary %q: %s reads back as %#x, want %#x", b.literal, text, backWord, word)
		}
	}

	return nil
}
