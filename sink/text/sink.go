package textsink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xyoga"
)

// Sink writes records as text or JSON lines with pre-encoded bound prefixes.
type Sink struct {
	// immutable after construction
	writerFactory WriterFactory
	opts          Options
	formatter     Formatter

	mu          *sync.Mutex   // shared across parent/children
	minSeverity *atomic.Int64 // -1 accepts everything
	st          *stats

	bound       []xyoga.Field
	boundPrefix []byte

	// fast path for single writer
	singleWriter bool
	w            io.Writer
}

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "xyoga: sink write: %v\n", err) }

// New creates a sink writing every record to w.
func New(w io.Writer, opts Options) *Sink {
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

func NewWithWriterFactory(factory WriterFactory, opts Options) *Sink {
	if factory == nil {
		factory = &DefaultWriterFactory{Writer: os.Stderr}
	}
	if opts.Format == 0 {
		opts.Format = FormatText
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	if opts.JSONTime == 0 {
		opts.JSONTime = JSONTimeRFC3339Nano
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 2048
	}

	s := &Sink{
		writerFactory: factory,
		opts:          opts,
		mu:            &sync.Mutex{},
		minSeverity:   &atomic.Int64{},
		st:            &stats{},
	}
	if opts.Format == FormatJSON {
		s.formatter = JSONFormatter{}
	} else {
		s.formatter = TextFormatter{}
	}
	s.minSeverity.Store(-1)
	if opts.MinLevel.Set {
		s.minSeverity.Store(int64(opts.MinLevel.Level.Severity()))
	}
	if df, ok := factory.(*DefaultWriterFactory); ok {
		s.singleWriter = true
		s.w = df.Writer
	}
	return s
}

// Stats returns a snapshot of counters shared by the sink and its children.
func (s *Sink) Stats() StatsSnapshot { return s.st.snapshot() }

func (s *Sink) ResetStats() { s.st.reset() }

// With clones the sink and pre-encodes bound fields into an immutable prefix.
func (s *Sink) With(fs []xyoga.Field) xyoga.Sink {
	child := *s
	child.bound = nil
	if n := len(s.bound); n > 0 {
		child.bound = make([]xyoga.Field, n, n+len(fs))
		copy(child.bound, s.bound)
	}
	child.bound = append(child.bound, fs...)
	child.boundPrefix = encodeBound(child.bound, s.opts.Format)
	return &child
}

// SetMinLevel is shared with children created before or after the call.
func (s *Sink) SetMinLevel(l xyoga.LogLevel) { s.minSeverity.Store(int64(l.Severity())) }

func (s *Sink) Write(rec xyoga.Record) {
	if min := s.minSeverity.Load(); min >= 0 && int64(rec.Level.Severity()) < min {
		s.st.filtered.Add(1)
		return
	}

	buf := getBufWithCap(s.opts.BufferSize)
	defer putBuf(buf)
	s.formatter.FormatRecord(buf, &rec, s.boundPrefix, &s.opts)

	w := s.w
	if !s.singleWriter {
		w = s.writerFactory.GetWriter(rec.Level)
	}
	if w == nil {
		return
	}

	s.mu.Lock()
	_, err := w.Write(buf.b)
	s.mu.Unlock()

	if err != nil {
		s.st.loggedErrors.Add(1)
		s.opts.ErrorHandler(err)
		return
	}
	s.st.written.Add(1)
}
