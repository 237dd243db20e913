package textsink

import (
	"io"

	"github.com/trickstertwo/xyoga"
)

// Format defines the output format for records.
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// ErrorHandler receives write errors.
type ErrorHandler func(error)

// JSONTimeEncoding controls how "ts" is encoded in JSON.
type JSONTimeEncoding uint8

const (
	JSONTimeRFC3339Nano JSONTimeEncoding = iota + 1 // default
	JSONTimeUnixMillis                              // numeric, t.UnixMilli()
	JSONTimeUnixNanos                               // numeric, t.UnixNano()
)

// Options configures the sink.
type Options struct {
	Format       Format
	MinLevel     xyoga.Threshold // zero value: everything
	ErrorHandler ErrorHandler
	TimeFormat   string // text only; empty = RFC3339Nano
	JSONTime     JSONTimeEncoding

	// Initial capacity of the format buffer. Defaults to 2048 when <= 0.
	BufferSize int
}

// WriterFactory routes records by level.
type WriterFactory interface {
	GetWriter(level xyoga.LogLevel) io.Writer
}

type DefaultWriterFactory struct{ Writer io.Writer }

func (f *DefaultWriterFactory) GetWriter(xyoga.LogLevel) io.Writer { return f.Writer }

// LevelWriterFactory sends chosen levels to dedicated writers, e.g. errors
// and fatals to stderr.
type LevelWriterFactory struct {
	Default     io.Writer
	LevelWriter map[xyoga.LogLevel]io.Writer
}

func (f *LevelWriterFactory) GetWriter(level xyoga.LogLevel) io.Writer {
	if w, ok := f.LevelWriter[level]; ok {
		return w
	}
	return f.Default
}
