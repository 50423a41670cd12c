package main

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/fwdlist/internal/xerrors"
	"github.com/ydb-platform/fwdlist/log"
)

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core, zap.AddStacktrace(zapcore.PanicLevel)), nil
}

var _ log.Logger = zapLogger{}

// zapLogger writes list trace events into zap.
type zapLogger struct {
	l *zap.Logger
}

func (z zapLogger) Log(ctx context.Context, msg string, fields ...log.Field) {
	lvl := log.LevelFromContext(ctx)
	if lvl == log.QUIET {
		return
	}

	l := z.l
	if names := log.NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}

	ce := l.Check(zapLevel(lvl), msg)
	if ce == nil {
		return
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zapField(f))
	}
	ce.Write(zapFields...)
}

func zapLevel(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	default:
		// fatal list events must not terminate the process
		return zapcore.ErrorLevel
	}
}

func zapField(f log.Field) zap.Field {
	switch f.Type() {
	case log.IntType:
		return zap.Int(f.Key(), f.IntValue())
	case log.Int64Type:
		return zap.Int64(f.Key(), f.Int64Value())
	case log.StringType:
		return zap.String(f.Key(), f.StringValue())
	case log.BoolType:
		return zap.Bool(f.Key(), f.BoolValue())
	case log.DurationType:
		return zap.Duration(f.Key(), f.DurationValue())
	case log.StringsType:
		return zap.Strings(f.Key(), f.StringsValue())
	case log.ErrorType:
		return zap.NamedError(f.Key(), f.ErrorValue())
	case log.StringerType:
		return zap.Stringer(f.Key(), f.Stringer())
	default:
		return zap.Any(f.Key(), f.AnyValue())
	}
}
