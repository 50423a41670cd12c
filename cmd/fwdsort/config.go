package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
)

// ErrWrongArgs marks command line parsing failures; main exits with code 2 on it.
var ErrWrongArgs = errors.New("wrong args")

const stdinName = "-"

// Config holds the parsed command line of fwdsort.
type Config struct {
	Inputs []string

	Numeric bool
	Reverse bool
	Merge   bool

	Parallel int

	LogLevel string
	Trace    string
}

// NewConfig parses args (without the program name). Usage and flag errors are
// written to stderr; -h returns flag.ErrHelp.
func NewConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("fwdsort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), mainHelp)
		fs.PrintDefaults()
	}

	fs.BoolVar(&cfg.Numeric, "numeric", false, "compare lines as signed 64-bit integers")
	fs.BoolVar(&cfg.Numeric, "n", false, "compare lines as signed 64-bit integers (shorthand)")
	fs.BoolVar(&cfg.Reverse, "reverse", false, "sort in descending order")
	fs.BoolVar(&cfg.Reverse, "r", false, "sort in descending order (shorthand)")
	fs.BoolVar(&cfg.Merge, "merge", false, "merge sorted inputs into a single output")
	fs.BoolVar(&cfg.Merge, "m", false, "merge sorted inputs into a single output (shorthand)")

	fs.IntVar(&cfg.Parallel, "parallel", runtime.GOMAXPROCS(0), "amount of inputs sorted concurrently")
	fs.IntVar(&cfg.Parallel, "p", runtime.GOMAXPROCS(0), "amount of inputs sorted concurrently (shorthand)")

	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Trace, "trace", "", "regexp of list trace events to log, e.g. '^fwdlist\\.sort$'")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrWrongArgs, err)
	}

	cfg.Inputs = fs.Args()
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{stdinName}
	}

	if cfg.Parallel < 1 {
		fmt.Fprintf(stderr, "parallel must be positive, got %d\n", cfg.Parallel)

		return nil, ErrWrongArgs
	}

	stdinCount := 0
	for _, input := range cfg.Inputs {
		if input == stdinName {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		fmt.Fprintln(stderr, "stdin may be given only once")

		return nil, ErrWrongArgs
	}

	return cfg, nil
}
