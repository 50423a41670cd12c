package log

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/fwdlist/internal/kv"
)

type Field = kv.KeyValue

const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	StringsType  = kv.StringsType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

var (
	String   = kv.String
	Int      = kv.Int
	Int64    = kv.Int64
	Bool     = kv.Bool
	Duration = kv.Duration
	Error    = kv.Error
	Any      = kv.Any
	Stringer = kv.Stringer
)

func latencyField(clock clockwork.Clock, start time.Time) Field {
	return kv.Duration("latency", clock.Since(start))
}
