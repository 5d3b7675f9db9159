package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matpool/num"
)

type rootOptions struct {
	workers   int
	logLevel  string
	logFormat string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "matpool",
		Short:         "Multiply dense matrices on a fixed pool of workers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger.With("run", uuid.NewString())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVarP(&opts.workers, "workers", "w", 0, "number of workers (0 = $"+num.EnvNumWorkers+" or GOMAXPROCS)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+num.EnvLogLevel+" or warn)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newMultiplyCmd(opts), newBenchCmd(opts), newInfoCmd())
	return cmd
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl := num.LogLevelEnv(slog.LevelWarn)
	if level != "" {
		var err error
		if lvl, err = num.ParseLogLevel(level); err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}
