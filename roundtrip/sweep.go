package roundtrip

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// chunk is the number of binary32 bit patterns handed to a worker at once.
const chunk = 1 << 20

// Options configures a sweep.
type Options struct {
	// Workers bounds the number of concurrent goroutines. Zero means
	// GOMAXPROCS.
	Workers int

	// Stride checks every Stride-th bit pattern. Zero or one means every
	// pattern.
	Stride uint64

	// Progress, if set, is called after each completed chunk with the total
	// number of patterns checked so far. It may be called concurrently.
	Progress func(checked uint64)
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (o Options) stride() uint64 {
	if o.Stride > 1 {
		return o.Stride
	}

	return 1
}

// Stats summarizes a finished sweep.
type Stats struct {
	Checked uint64
}

// Sweep32 checks binary32 bit patterns against ref, stopping at the first
// mismatch or when ctx is done.
func Sweep32(ctx context.Context, ref Reference, opts Options) (stats Stats, err error) {
	stride := opts.stride()

	var checked atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for start := uint64(0); start <= math.MaxUint32; start += chunk {
		start := start // per-iteration copy (pre-Go 1.22 loopvar semantics)

		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			// First multiple of stride at or after start.
			word := (start + stride - 1) / stride * stride

			count := uint64(0)
			for ; word < start+chunk; word += stride {
				err := Check32(ref, uint32(word))
				if err != nil {
					return err
				}

				count++
			}

			total := checked.Add(count)
			if opts.Progress != nil {
				opts.Progress(total)
			}

			return Error.Wrap(gctx.Err())
		})
	}

	err = g.Wait()
	if err == nil {
		err = Error.Wrap(ctx.Err())
	}

	stats.Checked = checked.Load()

	return stats, err
}

// Edges64 are binary64 bit patterns every sample includes.
var Edges64 = []uint64{
	0x0000_0000_0000_0000, // 0
	0x8000_0000_0000_0000, // -0
	0x0000_0000_0000_0001, // smallest subnormal
	0x000f_ffff_ffff_ffff, // largest subnormal
	0x0010_0000_0000_0000, // smallest normal
	0x3ff0_0000_0000_0000, // 1
	0x3fb9_9999_9999_999a, // 0.1
	0x4340_0000_0000_0000, // 2^53
	0x4bc6_3b54_3792_0326, // 1.0902420340782359e57
	0x7fef_ffff_ffff_ffff, // largest finite
	0x7ff0_0000_0000_0000, // inf
	0xfff0_0000_0000_0000, // -inf
	0x7ff8_0000_0000_0000, // NaN
}

// Sample64 checks Edges64 and n random binary64 bit patterns drawn from
// seed against ref.
func Sample64(ctx context.Context, ref Reference, n uint64, seed int64, opts Options) (stats Stats, err error) {
	for _, word := range Edges64 {
		err = Check64(ref, word)
		if err != nil {
			return stats, err
		}

		stats.Checked++
	}

	workers := opts.workers()
	per := n / uint64(workers)

	var checked atomic.Uint64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < workers; i++ {
		i := i // per-iteration copy (pre-Go 1.22 loopvar semantics)

		count := per
		if i == 0 {
			count += n % uint64(workers)
		}

		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))

			for j := uint64(0); j < count; j++ {
				if j%chunk == 0 && gctx.Err() != nil {
					return Error.Wrap(gctx.Err())
				}

				err := Check64(ref, rng.Uint64())
				if err != nil {
					return err
				}
			}

			total := checked.Add(count)
			if opts.Progress != nil {
				opts.Progress(total)
			}

			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = Error.Wrap(ctx.Err())
	}

	stats.Checked += checked.Load()

	return stats, err
}
