package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xyoga"
)

// Config is an explicit, code-first configuration for zap + xyoga.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer             // default: os.Stderr
	MinLevel           xyoga.Threshold       // zero value: everything
	Console            bool                  // console encoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
	Fields             []xyoga.Field         // bound onto every record, e.g. component=layout
	MessageLimit       int                   // 0 means xyoga.MessageBufferSize
}

// NewLogger builds the zap.Logger and AtomicLevel described by cfg.
func NewLogger(cfg Config) (*zap.Logger, *zap.AtomicLevel) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	// Do not let zap inject its own time; the sink writes "ts".
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	lvl := zapcore.DebugLevel
	if cfg.MinLevel.Set {
		lvl = toZapLevel(cfg.MinLevel.Level)
	}
	al := zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1)), &al
}

// Use builds a zap-backed fallback sink, wraps it in a Registry and Bridge,
// sets the bridge global and returns it. Records are stamped with xclock.Now()
// at write time, so a later xclock.SetDefault takes effect.
func Use(cfg Config) *xyoga.Bridge {
	zl, al := NewLogger(cfg)
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	var s xyoga.Sink = NewWithTimestampKey(zl, al, cfg.TimestampFieldName)
	if len(cfg.Fields) > 0 {
		s = s.With(cfg.Fields)
	}

	reg := xyoga.NewRegistry(s)
	b, err := xyoga.NewBuilder().
		WithHost(reg).
		WithThreshold(cfg.MinLevel).
		WithMessageLimit(cfg.MessageLimit).
		Build()
	if err != nil {
		panic(err)
	}

	xyoga.SetGlobal(b)
	return b
}
