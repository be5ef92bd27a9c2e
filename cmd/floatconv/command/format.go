package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/float"
)

var (
	formatArgs = struct {
		Bits int
	}{
		Bits: 64,
	}

	// Format prints the shortest text of each value.
	Format = &cobra.Command{
		Use:   "format <value>...",
		Short: "Format values as shortest decimal text.",
		Long: "Format each value as the shortest decimal text that reads back to the same bits.\n\n" +
			"A value starting with `0x` is a raw bit pattern; anything else is parsed as a decimal literal first.",
		Args: cobra.MinimumNArgs(1),
		RunE: commandFormat,
	}
)

func init() {
	Format.Flags().IntVar(&formatArgs.Bits, "bits", formatArgs.Bits, "Width of the binary format: 32 or 64.")
}

// valueOf interprets arg as a bit pattern or a decimal literal.
func valueOf(arg string, bits int) (float64, error) {
	if !strings.HasPrefix(arg, "0x") && !strings.HasPrefix(arg, "0X") {
		return float.ParseFloat(arg, bits)
	}

	word, err := strconv.ParseUint(arg[2:], 16, bits)
	if err != nil {
		return 0, Error.New("invalid bit pattern %q: %w", arg, err)
	}

	if bits == 32 {
		return float64(math.Float32frombits(uint32(word))), nil
	}

	return math.Float64frombits(word), nil
}

func commandFormat(cmd *cobra.Command, args []string) error {
	err := checkBits(formatArgs.Bits)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		v, err := valueOf(arg, formatArgs.Bits)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, float.FormatFloat(v, formatArgs.Bits))
	}

	return nil
}
