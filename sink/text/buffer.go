package textsink

import "sync"

// buffer is a growing byte buffer reused across writes.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }

var bufPool = sync.Pool{New: func() any { return &buffer{b: make([]byte, 0, 2048)} }}

func getBufWithCap(initCap int) *buffer {
	buf := bufPool.Get().(*buffer)
	if cap(buf.b) < initCap {
		buf.b = make([]byte, 0, initCap)
	} else {
		buf.b = buf.b[:0]
	}
	return buf
}

func putBuf(buf *buffer) {
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}
