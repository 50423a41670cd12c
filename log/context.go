package log

import (
	"context"
	"slices"
)

// scope describes the event being logged: its level and the dotted name path
// shown by the default logger. A scope is never mutated once stored.
type scope struct {
	level Level
	names []string
}

type scopeKey struct{}

func scopeFromContext(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// WithLevel returns a copy of ctx whose events are logged at lvl.
func WithLevel(ctx context.Context, lvl Level) context.Context {
	s := scopeFromContext(ctx)
	s.level = lvl

	return context.WithValue(ctx, scopeKey{}, s)
}

// LevelFromContext returns the level set by WithLevel, TRACE if none.
func LevelFromContext(ctx context.Context) Level {
	return scopeFromContext(ctx).level
}

// WithNames returns a copy of ctx with names appended to its name path.
// Sibling contexts derived from the same parent never share storage.
func WithNames(ctx context.Context, names ...string) context.Context {
	s := scopeFromContext(ctx)
	s.names = slices.Concat(s.names, names)

	return context.WithValue(ctx, scopeKey{}, s)
}

// NamesFromContext returns the name path of ctx. The result is never nil.
func NamesFromContext(ctx context.Context) []string {
	names := scopeFromContext(ctx).names
	if names == nil {
		return []string{}
	}

	return slices.Clip(names)
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	s := scopeFromContext(ctx)

	return context.WithValue(ctx, scopeKey{}, scope{
		level: lvl,
		names: slices.Concat(s.names, names),
	})
}
