package log

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	l := &defaultLogger{clock: clockwork.NewFakeClock()}
	for _, tt := range []struct {
		name  string
		names []string
		lvl   Level
		exp   string
	}{
		{
			name:  "Scoped",
			names: []string{"test", "scope"},
			lvl:   ERROR,
			exp:   "1984-04-04 00:00:00.000 ERROR 'test.scope' => message",
		},
		{
			name: "Unscoped",
			lvl:  WARN,
			exp:  "1984-04-04 00:00:00.000 WARN '' => message",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, l.format(tt.names, "message", tt.lvl))
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	var (
		buf bytes.Buffer
		l   = Default(&buf, WithMinLevel(DEBUG), WithClock(clockwork.NewFakeClock()))
		ctx = with(context.Background(), DEBUG, "fwdlist", "sort")
	)

	l.Log(ctx, "done", Int("size", 5), Error(errors.New("boom")))
	l.Log(WithLevel(ctx, TRACE), "skipped")

	require.Equal(t,
		"1984-04-04 00:00:00.000 DEBUG 'fwdlist.sort' => done {\"size\":\"5\",\"error\":\"boom\"}\n",
		buf.String(),
	)
}

func TestLevel(t *testing.T) {
	for _, tt := range []struct {
		s   string
		lvl Level
	}{
		{s: "trace", lvl: TRACE},
		{s: "Debug", lvl: DEBUG},
		{s: "INFO", lvl: INFO},
		{s: "warn", lvl: WARN},
		{s: "error", lvl: ERROR},
		{s: "fatal", lvl: FATAL},
		{s: "quiet", lvl: QUIET},
		{s: "unknown", lvl: QUIET},
	} {
		t.Run(tt.s, func(t *testing.T) {
			require.Equal(t, tt.lvl, FromString(tt.s))
		})
	}
	require.Equal(t, "QUIET", Level(100).String())
	require.Equal(t, "QUIET", Level(-1).String())
}

func TestNamesFromContext(t *testing.T) {
	ctx := WithNames(context.Background(), "a")
	child1 := WithNames(ctx, "b")
	child2 := WithNames(ctx, "c")

	require.Equal(t, []string{"a"}, NamesFromContext(ctx))
	require.Equal(t, []string{"a", "b"}, NamesFromContext(child1))
	require.Equal(t, []string{"a", "c"}, NamesFromContext(child2))
	require.Equal(t, []string{}, NamesFromContext(context.Background()))
}

func TestLevelAndNamesShareScope(t *testing.T) {
	ctx := with(context.Background(), DEBUG, "fwdlist")
	require.Equal(t, DEBUG, LevelFromContext(ctx))

	ctx = WithLevel(WithNames(ctx, "sort"), ERROR)
	require.Equal(t, ERROR, LevelFromContext(ctx))
	require.Equal(t, []string{"fwdlist", "sort"}, NamesFromContext(ctx))

	names := NamesFromContext(ctx)
	_ = append(names, "leak")
	require.Equal(t, []string{"fwdlist", "sort"}, NamesFromContext(WithNames(ctx)))
	require.Equal(t, TRACE, LevelFromContext(context.Background()))
}
