package command

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebcase/float/roundtrip"
)

var (
	stressArgs = struct {
		Bits       int
		Stride     uint64
		Exhaustive bool
		Samples    uint64
		Seed       int64
		Workers    int
	}{
		Bits:    32,
		Stride:  101,
		Samples: 1_000_000,
		Seed:    1,
	}

	// Stress cross-checks the conversions against the standard library.
	Stress = &cobra.Command{
		Use:   "stress",
		Short: "Cross-check parsing and formatting against the standard library.",
		Long: "Format bit patterns, compare the text against the standard library byte for byte, and parse it back with both implementations.\n\n" +
			"binary32 sweeps every `--stride`-th pattern, or all of them with `--exhaustive`. binary64 checks a fixed set of edge cases plus `--samples` random patterns.",
		Args: cobra.NoArgs,
		RunE: commandStress,
	}
)

func init() {
	Stress.Flags().IntVar(&stressArgs.Bits, "bits", stressArgs.Bits, "Width of the binary format: 32 or 64.")
	Stress.Flags().Uint64Var(&stressArgs.Stride, "stride", stressArgs.Stride, "Check every n-th binary32 pattern.")
	Stress.Flags().BoolVar(&stressArgs.Exhaustive, "exhaustive", stressArgs.Exhaustive, "Check every binary32 pattern.")
	Stress.Flags().Uint64Var(&stressArgs.Samples, "samples", stressArgs.Samples, "Number of random binary64 patterns.")
	Stress.Flags().Int64Var(&stressArgs.Seed, "seed", stressArgs.Seed, "Seed for the random binary64 patterns.")
	Stress.Flags().IntVar(&stressArgs.Workers, "workers", stressArgs.Workers, "Concurrent workers; 0 means GOMAXPROCS.")
}

func commandStress(cmd *cobra.Command, args []string) error {
	err := checkBits(stressArgs.Bits)
	if err != nil {
		return err
	}

	opts := roundtrip.Options{
		Workers: stressArgs.Workers,
		Stride:  stressArgs.Stride,
		Progress: func(checked uint64) {
			slog.Debug("stress progress", "checked", checked)
		},
	}

	if stressArgs.Exhaustive {
		opts.Stride = 1
	}

	start := time.Now()

	var stats roundtrip.Stats

	if stressArgs.Bits == 32 {
		slog.Info("stress started", "bits", 32, "stride", opts.Stride)

		stats, err = roundtrip.Sweep32(cmd.Context(), roundtrip.Strconv{}, opts)
	} else {
		slog.Info("stress started", "bits", 64, "samples", stressArgs.Samples, "seed", stressArgs.Seed)

		stats, err = roundtrip.Sample64(cmd.Context(), roundtrip.Strconv{}, stressArgs.Samples, stressArgs.Seed, opts)
	}

	elapsed := time.Since(start)

	var m *roundtrip.Mismatch
	if errors.As(err, &m) {
		slog.Error("stress mismatch",
			"bits", m.Width,
			"word", m.Bits,
			"op", m.Op,
			"got", m.Got,
			"want", m.Want,
		)
	}

	if err != nil {
		return err
	}

	slog.Info("stress finished", "checked", stats.Checked, "elapsed", elapsed)

	return nil
}
