package zerologsink

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xyoga"
)

// Sink delivers engine log records to rs/zerolog.
//
// Optimizations:
//   - Pre-binds fields in With() on a child zerolog.Logger.
//   - Pre-checks GetLevel() to avoid allocating a zerolog.Event when disabled.
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// With returns a child sink by binding fields onto a child zerolog.Logger.
func (s *Sink) With(fs []xyoga.Field) xyoga.Sink {
	child := *s
	if len(fs) == 0 {
		return &child
	}
	ctx := s.l.With()
	for i := range fs {
		ctx = appendCtxField(ctx, &fs[i])
	}
	child.l = ctx.Logger()
	return &child
}

// Write emits one record. Fatal is written at error level to avoid os.Exit.
func (s *Sink) Write(rec xyoga.Record) {
	zlvl := mapLevel(rec.Level)
	if zlvl < s.l.GetLevel() {
		return
	}

	ev := s.l.WithLevel(zlvl)
	// RFC3339Nano string keeps output independent of zerolog.TimeFieldFormat.
	ev.Str("ts", rec.At.UTC().Format(time.RFC3339Nano))
	ev.Str("yoga_level", rec.Level.String())
	if !rec.Config.IsNil() {
		ev.Uint64("config", uint64(rec.Config))
	}
	if !rec.Node.IsNil() {
		ev.Uint64("node", uint64(rec.Node))
	}
	if rec.Truncated {
		ev.Bool("truncated", true)
	}
	ev.Msg(rec.Message)
}

// SetMinLevel propagates the min level into zerolog (optional interface).
func (s *Sink) SetMinLevel(l xyoga.LogLevel) {
	s.l = s.l.Level(mapLevel(l))
}

// mapLevel converts engine levels; Verbose is zerolog's trace.
func mapLevel(l xyoga.LogLevel) zerolog.Level {
	switch l {
	case xyoga.LogLevelVerbose:
		return zerolog.TraceLevel
	case xyoga.LogLevelDebug:
		return zerolog.DebugLevel
	case xyoga.LogLevelInfo:
		return zerolog.InfoLevel
	case xyoga.LogLevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// appendCtxField binds a field to zerolog.Context (used by With()).
func appendCtxField(ctx zerolog.Context, f *xyoga.Field) zerolog.Context {
	switch f.Kind {
	case xyoga.KindString:
		return ctx.Str(f.K, f.Str)
	case xyoga.KindInt64:
		return ctx.Int64(f.K, f.Int64)
	case xyoga.KindUint64:
		return ctx.Uint64(f.K, f.Uint64)
	case xyoga.KindFloat64:
		return ctx.Float64(f.K, f.Float64)
	case xyoga.KindBool:
		return ctx.Bool(f.K, f.Bool)
	case xyoga.KindDuration:
		return ctx.Dur(f.K, f.Dur)
	case xyoga.KindError:
		// Context has no named-error variant.
		if f.Err == nil {
			return ctx
		}
		if f.K == "" || f.K == "error" {
			return ctx.Err(f.Err)
		}
		return ctx.Str(f.K, f.Err.Error())
	case xyoga.KindAny:
		return ctx.Interface(f.K, f.Any)
	default:
		return ctx.Interface(f.K, nil)
	}
}
