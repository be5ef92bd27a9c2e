package command

import (
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
)

// Error is the class of floatconv errors.
var Error = errs.Class("floatconv")

var (
	// Root is the floatconv command.
	Root = &cobra.Command{
		Use:   "floatconv",
		Short: "floatconv converts between IEEE-754 values and shortest decimal text.",
		Long: "`floatconv` parses decimal literals to correctly rounded binary32 or binary64 values and formats values as the shortest text that reads back to the same bits.\n\n" +
			"The `stress` command cross-checks both directions against the Go standard library.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLog(cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	registerLogFlags(Root.PersistentFlags())

	Root.AddCommand(Parse)
	Root.AddCommand(Format)
	Root.AddCommand(Boundary)
	Root.AddCommand(Stress)
}

func checkBits(bits int) error {
	if bits != 32 && bits != 64 {
		return Error.New("invalid --bits %d: expected 32 or 64", bits)
	}

	return nil
}
