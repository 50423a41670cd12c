package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/fwdlist"
	"github.com/ydb-platform/fwdlist/internal/xerrors"
	"github.com/ydb-platform/fwdlist/log"
	"github.com/ydb-platform/fwdlist/trace"
)

const (
	// checkEvery is the amount of scanned lines between context checks.
	checkEvery = 1024

	// maxLineSize bounds a single input line; longer lines fail the input with bufio.ErrTooLong.
	maxLineSize = 16 << 20
)

type sorter struct {
	cfg    *Config
	logger *zap.Logger
	clock  clockwork.Clock
	stdin  io.Reader
	trace  trace.List
}

func newSorter(cfg *Config, logger *zap.Logger, clock clockwork.Clock, stdin io.Reader) *sorter {
	details := trace.Details(0)
	if cfg.Trace != "" {
		details = trace.MatchDetails(cfg.Trace, trace.WithDefaultDetails(0))
	}

	return &sorter{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		stdin:  stdin,
		trace:  log.List(zapLogger{l: logger}, details, log.WithClock(clock)),
	}
}

func (s *sorter) open(name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(s.stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return f, nil
}

func (s *sorter) Run(ctx context.Context, w io.Writer) error {
	if s.cfg.Numeric {
		return sortInputs(ctx, s, w, cmp.Compare[int64], parseInt)
	}

	return sortInputs(ctx, s, w, cmp.Compare[string], parseString)
}

func parseInt(line string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
}

func parseString(line string) (string, error) {
	return line, nil
}

func sortInputs[T any](
	ctx context.Context,
	s *sorter,
	w io.Writer,
	compare func(lhs, rhs T) int,
	parse func(line string) (T, error),
) error {
	if s.cfg.Reverse {
		ascending := compare
		compare = func(lhs, rhs T) int {
			return ascending(rhs, lhs)
		}
	}

	// every list is owned by the goroutine that fills it until Wait returns
	lists := make([]*fwdlist.List[T], len(s.cfg.Inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Parallel)
	for i, input := range s.cfg.Inputs {
		g.Go(func() (err error) {
			lists[i], err = sortInput(ctx, s, input, compare, parse)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if s.cfg.Merge && len(lists) > 1 {
		for _, l := range lists[1:] {
			lists[0].Merge(l)
		}
		lists = lists[:1]
	}

	bw := bufio.NewWriter(w)
	for _, l := range lists {
		for v := range l.All() {
			if _, err := fmt.Fprintln(bw, v); err != nil {
				return xerrors.WithStackTrace(err)
			}
		}
		l.Clear()
	}

	return xerrors.WithStackTrace(bw.Flush())
}

func sortInput[T any](
	ctx context.Context,
	s *sorter,
	input string,
	compare func(lhs, rhs T) int,
	parse func(line string) (T, error),
) (*fwdlist.List[T], error) {
	logger := s.logger.With(
		zap.Stringer("job", uuid.New()),
		zap.String("input", input),
	)
	start := s.clock.Now()

	r, err := s.open(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close()
	}()

	var (
		values  []T
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		if len(values)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
		v, err := parse(scanner.Text())
		if err != nil {
			return nil, xerrors.WithStackTrace(fmt.Errorf("%s:%d: %w", input, len(values)+1, err))
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%s: %w", input, err))
	}
	logger.Debug("read", zap.Int("lines", len(values)))

	l := fwdlist.NewFunc(compare, values, fwdlist.WithTrace(s.trace))
	l.Sort()

	logger.Info("sorted",
		zap.Int("lines", l.Len()),
		zap.Duration("latency", s.clock.Since(start)),
	)

	return l, nil
}
