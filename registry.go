package xyoga

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Registry is a Host keyed by handle: each config may carry its own logger
// and each node its own measure function. Messages for configs without a
// logger go to the fallback Sink.
type Registry struct {
	mu       sync.RWMutex
	loggers  map[ConfigRef]LoggerFunc
	measures map[NodeRef]MeasureFunc

	fallback atomic.Pointer[sinkBox]
	clock    xclock.Clock

	// min severity for the fallback path; -1 means unset
	minSeverity atomic.Int64
}

type sinkBox struct{ s Sink }

// NewRegistry creates an empty registry. fallback may be nil, in which case
// unclaimed messages are dropped.
func NewRegistry(fallback Sink) *Registry {
	r := &Registry{
		loggers:  make(map[ConfigRef]LoggerFunc),
		measures: make(map[NodeRef]MeasureFunc),
	}
	r.minSeverity.Store(-1)
	r.SetFallback(fallback)
	return r
}

// SetFallback replaces the sink used for configs without a logger.
func (r *Registry) SetFallback(s Sink) {
	if s == nil {
		r.fallback.Store(nil)
		return
	}
	r.fallback.Store(&sinkBox{s: s})
}

// WithClock sets the clock used to stamp fallback records. Not safe to call
// concurrently with OnLayoutLog.
func (r *Registry) WithClock(c xclock.Clock) *Registry {
	r.clock = c
	return r
}

// SetMinLevel drops fallback records below l and forwards l to the fallback
// sink when it supports it. Registered loggers always see every message.
func (r *Registry) SetMinLevel(l LogLevel) {
	r.minSeverity.Store(int64(l.Severity()))
	if box := r.fallback.Load(); box != nil {
		if ls, ok := box.s.(minLevelSetter); ok {
			ls.SetMinLevel(l)
		}
	}
}

// SetLogger registers fn for config. A nil fn unsets.
func (r *Registry) SetLogger(config ConfigRef, fn LoggerFunc) {
	if fn == nil {
		r.UnsetLogger(config)
		return
	}
	r.mu.Lock()
	r.loggers[config] = fn
	r.mu.Unlock()
}

// Logger returns the logger registered for config, or nil.
func (r *Registry) Logger(config ConfigRef) LoggerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loggers[config]
}

func (r *Registry) UnsetLogger(config ConfigRef) {
	r.mu.Lock()
	delete(r.loggers, config)
	r.mu.Unlock()
}

// SetMeasureFunc registers fn for node. A nil fn unsets.
func (r *Registry) SetMeasureFunc(node NodeRef, fn MeasureFunc) {
	if fn == nil {
		r.UnsetMeasureFunc(node)
		return
	}
	r.mu.Lock()
	r.measures[node] = fn
	r.mu.Unlock()
}

// MeasureFunc returns the measure function registered for node, or nil.
func (r *Registry) MeasureFunc(node NodeRef) MeasureFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.measures[node]
}

func (r *Registry) HasMeasureFunc(node NodeRef) bool {
	return r.MeasureFunc(node) != nil
}

func (r *Registry) UnsetMeasureFunc(node NodeRef) {
	r.mu.Lock()
	delete(r.measures, node)
	r.mu.Unlock()
}

// ReleaseConfig drops every callback attached to config.
func (r *Registry) ReleaseConfig(config ConfigRef) { r.UnsetLogger(config) }

// ReleaseNode drops every callback attached to node.
func (r *Registry) ReleaseNode(node NodeRef) { r.UnsetMeasureFunc(node) }

// Len reports the number of registered loggers and measure functions.
func (r *Registry) Len() (loggers, measures int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers), len(r.measures)
}

func (r *Registry) OnLayoutLog(config ConfigRef, node NodeRef, level LogLevel, message string) int {
	return r.OnLayoutRecord(Record{Config: config, Node: node, Level: level, Message: message})
}

// OnLayoutRecord routes rec to the config's logger, or else writes it to the
// fallback sink with its truncation flag. A zero rec.At is stamped from the
// registry clock.
func (r *Registry) OnLayoutRecord(rec Record) int {
	if fn := r.Logger(rec.Config); fn != nil {
		return fn(rec.Config, rec.Node, rec.Level, rec.Message)
	}
	box := r.fallback.Load()
	if box == nil {
		return 0
	}
	if min := r.minSeverity.Load(); min >= 0 && int64(rec.Level.Severity()) < min {
		return 0
	}
	if rec.At.IsZero() {
		rec.At = r.now()
	}
	rec.Status = 0
	box.s.Write(rec)
	return 0
}

func (r *Registry) MeasureContent(node NodeRef, c Constraints) Size {
	if node.IsNil() {
		return Size{}
	}
	fn := r.MeasureFunc(node)
	if fn == nil {
		return Size{}
	}
	return fn(node, c)
}

func (r *Registry) now() time.Time {
	if r.clock != nil {
		return r.clock.Now()
	}
	return xclock.Now()
}
