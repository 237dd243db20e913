package xyoga

import "github.com/trickstertwo/xclock"

// LoggerFromSink turns a Sink into a LoggerFunc that stamps each message with
// one authoritative timestamp and reports status 0. A nil clock uses
// xclock.Now.
func LoggerFromSink(s Sink, clock xclock.Clock) LoggerFunc {
	return func(config ConfigRef, node NodeRef, level LogLevel, message string) int {
		rec := Record{
			Config:  config,
			Node:    node,
			Level:   level,
			Message: message,
		}
		if clock != nil {
			rec.At = clock.Now()
		} else {
			rec.At = xclock.Now()
		}
		s.Write(rec)
		return 0
	}
}

// DiscardSink drops every record.
type DiscardSink struct{}

func (DiscardSink) Write(Record)        {}
func (d DiscardSink) With([]Field) Sink { return d }
