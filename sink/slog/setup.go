package slogsink

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xyoga"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xyoga.
type Config struct {
	Writer             io.Writer            // default: os.Stderr
	MinLevel           xyoga.Threshold      // registry + slog both use this; zero value: everything
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts"
	Fields             []xyoga.Field
	MessageLimit       int // 0 means xyoga.MessageBufferSize
}

// NewSink builds the slog handler and sink described by cfg.
func NewSink(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	lv := new(slog.LevelVar)
	if cfg.MinLevel.Set {
		lv.Set(ToSlogLevel(cfg.MinLevel.Level))
	} else {
		lv.Set(ToSlogLevel(xyoga.LogLevelVerbose))
	}
	opts.Level = lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return NewWithTimestampKey(slog.New(h), lv, cfg.TimestampFieldName)
}

// Use builds a slog-backed fallback sink, wraps it in a Registry and Bridge,
// sets the bridge global and returns it.
func Use(cfg Config) *xyoga.Bridge {
	var s xyoga.Sink = NewSink(cfg)
	if len(cfg.Fields) > 0 {
		s = s.With(cfg.Fields)
	}

	b, err := xyoga.NewBuilder().
		WithHost(xyoga.NewRegistry(s)).
		WithThreshold(cfg.MinLevel).
		WithMessageLimit(cfg.MessageLimit).
		Build()
	if err != nil {
		panic(err)
	}
	xyoga.SetGlobal(b)
	return b
}
