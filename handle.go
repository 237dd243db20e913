package xyoga

import (
	"strconv"
	"sync/atomic"
)

// ConfigRef and NodeRef are opaque identifiers for engine objects. The bridge
// forwards them untouched; only the engine binding and the host attach meaning.
// The zero value is the nil handle.
type (
	ConfigRef uint64
	NodeRef   uint64
)

var (
	nextConfig atomic.Uint64
	nextNode   atomic.Uint64
)

// NewConfigRef allocates a process-unique, non-zero config handle.
func NewConfigRef() ConfigRef { return ConfigRef(nextConfig.Add(1)) }

// NewNodeRef allocates a process-unique, non-zero node handle.
func NewNodeRef() NodeRef { return NodeRef(nextNode.Add(1)) }

func (c ConfigRef) IsNil() bool { return c == 0 }
func (n NodeRef) IsNil() bool   { return n == 0 }

func (c ConfigRef) String() string { return "config#" + strconv.FormatUint(uint64(c), 10) }
func (n NodeRef) String() string   { return "node#" + strconv.FormatUint(uint64(n), 10) }
