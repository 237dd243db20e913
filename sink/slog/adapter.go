package slogsink

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/xyoga"
)

// Sink delivers engine log records to a *slog.Logger. It builds slog.Attrs
// directly and uses LogAttrs.
type Sink struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string
	bound []slog.Attr
}

func New(l *slog.Logger) *Sink {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey wires an optional LevelVar and overrides the
// timestamp attribute key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *Sink {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, lv: lv, tsKey: tsKey}
}

// ToSlogLevel maps engine levels onto slog's numeric scale: Verbose sits
// below Debug, Fatal above Error.
func ToSlogLevel(l xyoga.LogLevel) slog.Level {
	switch l {
	case xyoga.LogLevelVerbose:
		return slog.LevelDebug - 4
	case xyoga.LogLevelDebug:
		return slog.LevelDebug
	case xyoga.LogLevelInfo:
		return slog.LevelInfo
	case xyoga.LogLevelWarn:
		return slog.LevelWarn
	case xyoga.LogLevelFatal:
		return slog.LevelError + 4
	default:
		return slog.LevelError
	}
}

func (s *Sink) With(fs []xyoga.Field) xyoga.Sink {
	child := *s
	if len(fs) == 0 {
		return &child
	}
	child.bound = make([]slog.Attr, 0, len(s.bound)+len(fs))
	child.bound = append(child.bound, s.bound...)
	for i := range fs {
		child.bound = append(child.bound, toAttr(fs[i]))
	}
	return &child
}

func (s *Sink) Write(rec xyoga.Record) {
	lvl := ToSlogLevel(rec.Level)
	ctx := context.Background()
	if !s.l.Enabled(ctx, lvl) {
		return
	}

	attrs := make([]slog.Attr, 0, len(s.bound)+4)
	attrs = append(attrs, slog.Time(s.tsKey, rec.At))
	if !rec.Config.IsNil() {
		attrs = append(attrs, slog.Uint64("config", uint64(rec.Config)))
	}
	if !rec.Node.IsNil() {
		attrs = append(attrs, slog.Uint64("node", uint64(rec.Node)))
	}
	if rec.Truncated {
		attrs = append(attrs, slog.Bool("truncated", true))
	}
	attrs = append(attrs, s.bound...)

	s.l.LogAttrs(ctx, lvl, rec.Message, attrs...)
}

// SetMinLevel adjusts the LevelVar when one was supplied.
func (s *Sink) SetMinLevel(l xyoga.LogLevel) {
	if s.lv == nil {
		return
	}
	s.lv.Set(ToSlogLevel(l))
}

func toAttr(f xyoga.Field) slog.Attr {
	switch f.Kind {
	case xyoga.KindString:
		return slog.String(f.K, f.Str)
	case xyoga.KindInt64:
		return slog.Int64(f.K, f.Int64)
	case xyoga.KindUint64:
		return slog.Uint64(f.K, f.Uint64)
	case xyoga.KindFloat64:
		return slog.Float64(f.K, f.Float64)
	case xyoga.KindBool:
		return slog.Bool(f.K, f.Bool)
	case xyoga.KindDuration:
		return slog.Duration(f.K, f.Dur)
	case xyoga.KindError:
		return slog.Any(f.K, f.Err)
	case xyoga.KindAny:
		return slog.Any(f.K, f.Any)
	default:
		return slog.Any(f.K, nil)
	}
}
