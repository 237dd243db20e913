package xyoga

import (
	"errors"

	"github.com/trickstertwo/xclock"
)

var (
	ErrNoHost       = errors.New("xyoga: builder has no host")
	ErrMessageLimit = errors.New("xyoga: message limit must be at least 2 bytes")
)

// Config for constructing a Bridge (Factory data structure).
type Config struct {
	Host         Host
	MessageLimit int       // bytes incl. terminator slot; 0 means MessageBufferSize
	MinLevel     Threshold // pushed to hosts implementing SetMinLevel
	Observers    []Observer
	Clock        xclock.Clock // optional; defaults to xclock.Default()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MessageLimit: MessageBufferSize}}
}

func (b *Builder) WithHost(h Host) *Builder {
	b.cfg.Host = h
	return b
}

// WithMessageLimit sets the rendering buffer size, terminator slot included.
// 0 selects MessageBufferSize; 1 and negative values fail Build.
func (b *Builder) WithMessageLimit(n int) *Builder {
	b.cfg.MessageLimit = n
	return b
}

// WithMinLevel is pushed down to hosts implementing SetMinLevel. The bridge
// itself never filters: every engine call reaches the host.
func (b *Builder) WithMinLevel(l LogLevel) *Builder {
	b.cfg.MinLevel = AtLeast(l)
	return b
}

// WithThreshold is WithMinLevel for an optional level; an unset Threshold
// leaves the host's filter alone.
func (b *Builder) WithThreshold(t Threshold) *Builder {
	b.cfg.MinLevel = t
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Bridge (Factory + Builder).
func (b *Builder) Build() (*Bridge, error) {
	if b.cfg.Host == nil {
		return nil, ErrNoHost
	}
	if b.cfg.MessageLimit == 0 {
		b.cfg.MessageLimit = MessageBufferSize
	}
	if b.cfg.MessageLimit < 2 {
		return nil, ErrMessageLimit
	}
	b.applyHostConfig(b.cfg.Host)
	return newBridge(b.cfg), nil
}

// minLevelSetter is an optional interface hosts and sinks can implement to
// receive the builder's min level.
type minLevelSetter interface {
	SetMinLevel(LogLevel)
}

func (b *Builder) applyHostConfig(h Host) {
	if !b.cfg.MinLevel.Set {
		return
	}
	if ls, ok := h.(minLevelSetter); ok {
		ls.SetMinLevel(b.cfg.MinLevel.Level)
	}
}
