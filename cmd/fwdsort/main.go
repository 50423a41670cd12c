package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/ydb-platform/fwdlist/internal/xerrors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()

	os.Exit(exitCode(err, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := NewConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("program started", zap.Strings("inputs", cfg.Inputs))
	defer logger.Debug("program finished")

	return newSorter(cfg, logger, clockwork.NewRealClock(), stdin).Run(ctx, stdout)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case xerrors.Is(err, flag.ErrHelp):
		return 0
	case xerrors.Is(err, ErrWrongArgs):
		return 2
	default:
		fmt.Fprintf(stderr, "fwdsort: %v\n", err)

		return 1
	}
}
