// Command floatconv parses and formats IEEE-754 values and stress tests the
// conversions against the standard library.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/calebcase/float/cmd/floatconv/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := command.Root.ExecuteContext(ctx)
	if err != nil {
		slog.Error("floatconv failed", "err", err)
		stop()
		os.Exit(1)
	}
}
