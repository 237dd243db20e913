package xyoga

import "time"

// Record is one engine log message after rendering.
type Record struct {
	At        time.Time
	Config    ConfigRef
	Node      NodeRef
	Level     LogLevel
	Message   string
	Truncated bool
	// Status is the host's return value; zero when the record has not been
	// delivered yet (sinks always see zero).
	Status int
}

// Sink is a host-side log backend (Adapter Strategy). Implementations live in
// sink/<backend> and MUST be concurrency-safe.
type Sink interface {
	Write(rec Record)
	With(fields []Field) Sink // child sink with bound fields; receiver unchanged
}

// Observer is notified after each forwarded log call (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnRecord(rec Record)
}

// ObserverFunc adapter.
type ObserverFunc func(Record)

func (f ObserverFunc) OnRecord(rec Record) { f(rec) }
