package zapsink

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xyoga"
)

// Sink delivers engine log records to go.uber.org/zap.
//
// Optimizations:
//   - Pre-binds fields in With() by creating a child zap.Logger with those
//     fields attached, eliminating per-record bound-field loops.
//   - Uses Logger.Check(level, msg) to skip field building when disabled.
//   - Writes "ts" as an RFC3339Nano string from the record's timestamp.
//
// SetMinLevel adjusts the backend through a zap.AtomicLevel when one was
// provided at construction; otherwise it is a no-op.
type Sink struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithAtomicLevel wires a zap.AtomicLevel so SetMinLevel can adjust the
// backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Sink {
	return NewWithTimestampKey(l, al, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key.
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, al: al, tsKey: tsKey}
}

// With returns a child sink by binding fields onto a child zap.Logger.
func (s *Sink) With(fs []xyoga.Field) xyoga.Sink {
	child := *s
	if len(fs) > 0 {
		child.l = s.l.With(convertFields(fs)...)
	}
	return &child
}

// Write emits one record. Fatal maps to Error so library code never exits.
func (s *Sink) Write(rec xyoga.Record) {
	ce := s.l.Check(toZapLevel(rec.Level), rec.Message)
	if ce == nil {
		return
	}

	zfs := make([]zap.Field, 0, 5)
	zfs = append(zfs,
		zap.String(s.tsKey, rec.At.UTC().Format(time.RFC3339Nano)),
		zap.String("yoga_level", rec.Level.String()),
	)
	if !rec.Config.IsNil() {
		zfs = append(zfs, zap.Uint64("config", uint64(rec.Config)))
	}
	if !rec.Node.IsNil() {
		zfs = append(zfs, zap.Uint64("node", uint64(rec.Node)))
	}
	if rec.Truncated {
		zfs = append(zfs, zap.Bool("truncated", true))
	}
	ce.Write(zfs...)
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
func (s *Sink) SetMinLevel(l xyoga.LogLevel) {
	if s.al == nil {
		return
	}
	s.al.SetLevel(toZapLevel(l))
}

func toZapLevel(l xyoga.LogLevel) zapcore.Level {
	switch l {
	case xyoga.LogLevelVerbose, xyoga.LogLevelDebug:
		return zapcore.DebugLevel // zap has no trace
	case xyoga.LogLevelInfo:
		return zapcore.InfoLevel
	case xyoga.LogLevelWarn:
		return zapcore.WarnLevel
	default:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}

func convertFields(fs []xyoga.Field) []zap.Field {
	out := make([]zap.Field, len(fs))
	for i := range fs {
		out[i] = toZapField(&fs[i])
	}
	return out
}

func toZapField(f *xyoga.Field) zap.Field {
	switch f.Kind {
	case xyoga.KindString:
		return zap.String(f.K, f.Str)
	case xyoga.KindInt64:
		return zap.Int64(f.K, f.Int64)
	case xyoga.KindUint64:
		return zap.Uint64(f.K, f.Uint64)
	case xyoga.KindFloat64:
		return zap.Float64(f.K, f.Float64)
	case xyoga.KindBool:
		return zap.Bool(f.K, f.Bool)
	case xyoga.KindDuration:
		return zap.Duration(f.K, f.Dur)
	case xyoga.KindError:
		if f.Err == nil {
			return zap.Skip()
		}
		if f.K == "" || f.K == "error" {
			return zap.Error(f.Err)
		}
		return zap.NamedError(f.K, f.Err)
	case xyoga.KindAny:
		return zap.Any(f.K, f.Any)
	default:
		return zap.Skip()
	}
}
