package xyoga

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Bridge is the engine-facing side of the callback pair. The engine binding
// calls Logf/Log and Measure; the Bridge forwards to the Host it was built with.
// A Bridge holds no per-call state and may be used from many goroutines.
type Bridge struct {
	host  Host
	limit int
	clock xclock.Clock

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

func newBridge(cfg Config) *Bridge {
	b := &Bridge{
		host:  cfg.Host,
		limit: cfg.MessageLimit,
		clock: cfg.Clock,
	}
	if b.limit <= 0 {
		b.limit = MessageBufferSize
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		b.observers.Store(obs)
	} else {
		b.observers.Store(([]Observer)(nil))
	}
	return b
}

// Host returns the host this bridge forwards to.
func (b *Bridge) Host() Host { return b.host }

// MessageLimit returns the rendering buffer size, terminator slot included.
func (b *Bridge) MessageLimit() int { return b.limit }

// Logf renders format/args into a bounded message and forwards it with the
// handles and level untouched. The host's status is returned unmodified.
func (b *Bridge) Logf(config ConfigRef, node NodeRef, level LogLevel, format string, args ...any) int {
	msg, truncated := Render(b.limit, format, args...)
	return b.forward(config, node, level, msg, truncated)
}

// Log forwards a message rendered on the engine side, applying the same bound.
func (b *Bridge) Log(config ConfigRef, node NodeRef, level LogLevel, message string) int {
	msg, truncated := Bound(b.limit, message)
	return b.forward(config, node, level, msg, truncated)
}

// LogTruncated is Log for a message the engine side already cut to its own
// buffer; truncated is ORed with the bridge's bound.
func (b *Bridge) LogTruncated(config ConfigRef, node NodeRef, level LogLevel, message string, truncated bool) int {
	msg, cut := Bound(b.limit, message)
	return b.forward(config, node, level, msg, truncated || cut)
}

// Measure forwards an engine measure call to the host unchanged.
func (b *Bridge) Measure(node NodeRef, width float32, widthMode MeasureMode, height float32, heightMode MeasureMode) Size {
	return b.host.MeasureContent(node, Constraints{
		Width:      width,
		WidthMode:  widthMode,
		Height:     height,
		HeightMode: heightMode,
	})
}

func (b *Bridge) AddObserver(o Observer) {
	b.obsMu.Lock()
	defer b.obsMu.Unlock()
	cur := b.snapshotObservers()
	cur = append(cur, o)
	b.observers.Store(cur)
}

func (b *Bridge) snapshotObservers() []Observer {
	v := b.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (b *Bridge) forward(config ConfigRef, node NodeRef, level LogLevel, msg string, truncated bool) int {
	rec := Record{
		Config:    config,
		Node:      node,
		Level:     level,
		Message:   msg,
		Truncated: truncated,
	}

	var status int
	if rh, ok := b.host.(RecordHost); ok {
		status = rh.OnLayoutRecord(rec)
	} else {
		status = b.host.OnLayoutLog(config, node, level, msg)
	}

	v := b.observers.Load()
	if v == nil {
		return status
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return status
	}
	rec.At = b.now()
	rec.Status = status
	for _, o := range obs {
		o.OnRecord(rec)
	}
	return status
}

func (b *Bridge) now() time.Time {
	if b.clock != nil {
		return b.clock.Now()
	}
	return xclock.Now()
}
