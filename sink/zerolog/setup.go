package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xyoga"
)

// Config is an explicit, code-first configuration for zerolog + xyoga.
type Config struct {
	Writer            io.Writer       // default: os.Stderr
	MinLevel          xyoga.Threshold // zero value: everything
	Console           bool            // pretty console output instead of JSON
	ConsoleTimeFormat string          // only used if Console; default time.RFC3339Nano
	Fields            []xyoga.Field
	MessageLimit      int // 0 means xyoga.MessageBufferSize
}

// NewLogger builds the zerolog.Logger described by cfg.
func NewLogger(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	if !cfg.MinLevel.Set {
		return zl.Level(zerolog.TraceLevel)
	}
	return zl.Level(mapLevel(cfg.MinLevel.Level))
}

// Use builds a zerolog-backed fallback sink, wraps it in a Registry and
// Bridge, sets the bridge global and returns it.
func Use(cfg Config) *xyoga.Bridge {
	var s xyoga.Sink = New(NewLogger(cfg))
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
		// Build only fails on a bad MessageLimit; surface programming errors early.
		panic(err)
	}

	xyoga.SetGlobal(b)
	return b
}
