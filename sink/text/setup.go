package textsink

import (
	"io"
	"os"

	"github.com/trickstertwo/xyoga"
)

// Config is an explicit, code-first configuration for the built-in sink.
type Config struct {
	// Writer receives all records when WriterFactory is nil. Defaults to os.Stderr.
	Writer io.Writer

	// WriterFactory optionally routes records by level and takes precedence
	// over Writer.
	WriterFactory WriterFactory

	MinLevel     xyoga.Threshold
	Format       Format
	ErrorHandler ErrorHandler
	TimeFormat   string
	JSONTime     JSONTimeEncoding
	BufferSize   int

	Fields       []xyoga.Field
	MessageLimit int // 0 means xyoga.MessageBufferSize
}

// NewSink builds the sink described by cfg.
func NewSink(cfg Config) *Sink {
	opts := Options{
		Format:       cfg.Format,
		MinLevel:     cfg.MinLevel,
		ErrorHandler: cfg.ErrorHandler,
		TimeFormat:   cfg.TimeFormat,
		JSONTime:     cfg.JSONTime,
		BufferSize:   cfg.BufferSize,
	}
	if cfg.WriterFactory != nil {
		return NewWithWriterFactory(cfg.WriterFactory, opts)
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	return New(w, opts)
}

// Use builds a Registry + Bridge with the built-in sink as fallback, sets
// the bridge global and returns it.
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
