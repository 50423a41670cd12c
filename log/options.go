package log

import (
	"github.com/jonboulle/clockwork"
)

type Option interface {
	applyHolderOption(h *wrapper)
}

type simpleLoggerOption interface {
	applySimpleOption(l *defaultLogger)
}

var (
	_ simpleLoggerOption = minLevelOption(INFO)
	_ simpleLoggerOption = clockOption{}
	_ Option             = clockOption{}
)

type minLevelOption Level

func (level minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(level)
}

// WithMinLevel drops events below level. The default is INFO.
func WithMinLevel(level Level) simpleLoggerOption {
	return minLevelOption(level)
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applySimpleOption(l *defaultLogger) {
	l.clock = o.clock
}

func (o clockOption) applyHolderOption(h *wrapper) {
	h.clock = o.clock
}

// WithClock overrides the clock used for timestamps and latencies.
func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}
