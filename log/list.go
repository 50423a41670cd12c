package log

import (
	"context"

	"github.com/ydb-platform/fwdlist/trace"
)

// List makes trace.List with logging events from details.
func List(l Logger, d trace.Detailer, opts ...Option) (t trace.List) {
	return internalList(wrapLogger(l, opts...), d)
}

func internalList(l *wrapper, d trace.Detailer) (t trace.List) { //nolint:funlen
	t.OnSort = func(info trace.ListSortStartInfo) func(trace.ListSortDoneInfo) {
		if d.Details()&trace.ListSortEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "fwdlist", "sort")
		l.Log(ctx, "start",
			Int("size", info.Size),
		)
		start := l.clock.Now()

		return func(info trace.ListSortDoneInfo) {
			l.Log(WithLevel(ctx, DEBUG), "done",
				latencyField(l.clock, start),
				Int("size", info.Size),
			)
		}
	}
	t.OnSplit = func(info trace.ListSplitStartInfo) func(trace.ListSplitDoneInfo) {
		if d.Details()&trace.ListSplitEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "fwdlist", "split")
		l.Log(ctx, "start",
			Int("size", info.Size),
		)

		return func(info trace.ListSplitDoneInfo) {
			l.Log(ctx, "done",
				Int("size", info.Size),
				Int("sibling", info.SiblingSize),
			)
		}
	}
	t.OnMerge = func(info trace.ListMergeStartInfo) func(trace.ListMergeDoneInfo) {
		if d.Details()&trace.ListMergeEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "fwdlist", "merge")
		l.Log(ctx, "start",
			Int("size", info.Size),
			Int("other", info.OtherSize),
		)
		start := l.clock.Now()

		return func(info trace.ListMergeDoneInfo) {
			l.Log(WithLevel(ctx, DEBUG), "done",
				latencyField(l.clock, start),
				Int("size", info.Size),
			)
		}
	}
	t.OnClear = func(info trace.ListClearStartInfo) func(trace.ListClearDoneInfo) {
		if d.Details()&trace.ListClearEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "fwdlist", "clear")
		size := info.Size

		return func(info trace.ListClearDoneInfo) {
			l.Log(ctx, "done",
				Int("released", size),
			)
		}
	}

	return t
}
