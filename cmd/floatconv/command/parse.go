package command

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/calebcase/float"
	"github.com/calebcase/float/roundtrip"
)

var (
	parseArgs = struct {
		Bits  int
		Check bool
	}{
		Bits: 64,
	}

	// Parse prints the bits and shortest text of each literal.
	Parse = &cobra.Command{
		Use:   "parse <literal>...",
		Short: "Parse decimal literals and print their bit patterns.",
		Long: "Parse each decimal literal to the nearest binary value and print the literal, the bit pattern in hex, and the shortest text for that value, separated by tabs.\n\n" +
			"With `--check` every result is compared against the standard library.",
		Args: cobra.MinimumNArgs(1),
		RunE: commandParse,
	}
)

func init() {
	Parse.Flags().IntVar(&parseArgs.Bits, "bits", parseArgs.Bits, "Width of the binary format: 32 or 64.")
	Parse.Flags().BoolVar(&parseArgs.Check, "check", parseArgs.Check, "Compare each result against the standard library.")
}

func commandParse(cmd *cobra.Command, args []string) error {
	err := checkBits(parseArgs.Bits)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		v, err := float.ParseFloat(arg, parseArgs.Bits)
		if err != nil {
			return err
		}

		word := bitsOf(v, parseArgs.Bits)
		text := float.FormatFloat(v, parseArgs.Bits)
		fmt.Fprintf(out, "%s\t0x%0*x\t%s\n", arg, parseArgs.Bits/4, word, text)

		slog.Debug("parsed", "literal", arg, "bits", parseArgs.Bits, "word", word)

		if !parseArgs.Check || math.IsNaN(v) {
			continue
		}

		want, err := referenceBits(arg, parseArgs.Bits)
		if err != nil {
			return err
		}

		if word != want {
			slog.Error("parse mismatch", "literal", arg, "bits", parseArgs.Bits, "got", word, "want", want)

			return Error.New("parse mismatch: %q: got %#x, want %#x", arg, word, want)
		}
	}

	return nil
}

// bitsOf returns the bit pattern of v at the given width.
func bitsOf(v float64, bits int) uint64 {
	if bits == 32 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(v)
}

func referenceBits(literal string, bits int) (uint64, error) {
	ref := roundtrip.Strconv{}

	if bits == 32 {
		v, err := ref.Parse32([]byte(literal))
		if err != nil {
			return 0, Error.Wrap(err)
		}

		return uint64(math.Float32bits(v)), nil
	}

	v, err := ref.Parse64([]byte(literal))
	if err != nil {
		return 0, Error.Wrap(err)
	}

	return math.Float64bits(v), nil
}
