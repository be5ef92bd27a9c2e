package command

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

var (
	// logFormat is the configured log format.
	logFormat = "text"

	// logLevel is the configured log level.
	logLevel = "info"
)

func registerLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logFormat, "log-fmt", logFormat, "Log format: text or json.")
	fs.StringVar(&logLevel, "log-level", logLevel, "Log level: debug, info, warn or error.")
}

// initLog installs the default slog logger writing to w.
func initLog(w io.Writer) error {
	level, err := slogLevel(logLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}

	handler, err := slogHandler(w, logFormat, opts)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, Error.New("invalid log-level %q: expected debug, info, warn, or error", level)
}

func slogHandler(w io.Writer, format string, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "text", "logfmt":
		return slog.NewTextHandler(w, opts), nil
	}

	return nil, Error.New("invalid log-fmt %q: expected json or text", format)
}
