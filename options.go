package fwdlist

import (
	"github.com/ydb-platform/fwdlist/trace"
)

type config struct {
	trace *trace.List
}

// Option configures a list at construction time.
type Option func(c *config)

// WithTrace appends t to the list trace. Lists produced by Split and Clone inherit it.
func WithTrace(t trace.List, opts ...trace.ListComposeOption) Option {
	return func(c *config) {
		c.trace = c.trace.Compose(&t, opts...)
	}
}

func newConfig(opts ...Option) config {
	c := config{
		trace: &trace.List{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
