package xyoga

import (
	"io"
	"os"
	"sync/atomic"
)

// defaultSinkFactory is set by a sink package (e.g., sink/zerolog) in its
// init() to avoid import cycles. Default() uses it to build the fallback sink.
var defaultSinkFactory func(w io.Writer) Sink

// RegisterDefaultSinkFactory registers the constructor used by Default().
// Sink packages call this from init().
func RegisterDefaultSinkFactory(f func(io.Writer) Sink) {
	defaultSinkFactory = f
}

// Facade: global access (Singleton + Facade). Native engine callbacks carry no
// Go receiver, so the cgo shim dispatches through this pointer.
var global atomic.Pointer[Bridge]

// SetGlobal sets the global Bridge (Singleton setter).
func SetGlobal(b *Bridge) { global.Store(b) }

// B returns the global Bridge; panic if unset to surface misconfig early.
func B() *Bridge {
	b := global.Load()
	if b == nil {
		panic("xyoga: global bridge not set. Build one and call xyoga.SetGlobal(...)")
	}
	return b
}

// Global returns the global Bridge or nil.
func Global() *Bridge { return global.Load() }

// Default builds a Bridge over a fresh Registry whose fallback sink comes from
// the registered factory writing to os.Stderr. Without a factory the fallback
// drops messages.
func Default() *Bridge {
	var fallback Sink
	if defaultSinkFactory != nil {
		fallback = defaultSinkFactory(os.Stderr)
	}
	return newBridge(Config{
		Host:         NewRegistry(fallback),
		MessageLimit: MessageBufferSize,
	})
}

// New creates a Default() bridge and sets it as global.
func New() *Bridge {
	b := Default()
	SetGlobal(b)
	return b
}

// UseSink builds a Registry with s as fallback, wraps it in a Bridge, sets it
// global and returns it.
func UseSink(s Sink, min Threshold, observers ...Observer) *Bridge {
	reg := NewRegistry(s)
	b, _ := NewBuilder().
		WithHost(reg).
		WithThreshold(min).
		Build()
	for _, o := range observers {
		b.AddObserver(o)
	}
	SetGlobal(b)
	return b
}

// Registry returns b's host as a *Registry, or nil when b was built over a
// different Host.
func (b *Bridge) Registry() *Registry {
	r, _ := b.host.(*Registry)
	return r
}
