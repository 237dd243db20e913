package xyoga

import (
	"fmt"
	"sync"
)

// MessageBufferSize is the engine-side rendering buffer, terminator slot
// included: at most MessageBufferSize-1 bytes of text reach the host.
const MessageBufferSize = 1024

type buffer struct{ b []byte }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, MessageBufferSize)} }}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

// Render formats like fmt.Sprintf and bounds the result to limit-1 bytes, the
// way vsnprintf fills a fixed buffer: the cut is byte-exact and may split a
// multibyte rune. truncated reports whether anything was cut. A limit <= 0 selects
// MessageBufferSize.
func Render(limit int, format string, args ...any) (msg string, truncated bool) {
	buf := getBuf()
	buf.b = fmt.Appendf(buf.b, format, args...)
	msg, truncated = bound(buf.b, limit)
	putBuf(buf)
	return msg, truncated
}

// Bound applies the same limit as Render to an already rendered message.
func Bound(limit int, message string) (string, bool) {
	if limit <= 0 {
		limit = MessageBufferSize
	}
	max := limit - 1
	if len(message) <= max {
		return message, false
	}
	return message[:max], true
}

func bound(b []byte, limit int) (string, bool) {
	if limit <= 0 {
		limit = MessageBufferSize
	}
	max := limit - 1
	if max < 0 {
		max = 0
	}
	if len(b) <= max {
		return string(b), false
	}
	return string(b[:max]), true
}
