//go:build yoga

package native

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/trickstertwo/xyoga"
)

// Node owns a YGNodeRef bound to the bridge. Measure callbacks set through
// SetMeasureFunc live in the global bridge's Registry under Ref().
type Node struct {
	node C.YGNodeRef
	ref  xyoga.NodeRef
}

func wrapNode(n C.YGNodeRef) *Node {
	out := &Node{node: n, ref: BindNode(unsafe.Pointer(n))}
	runtime.SetFinalizer(out, (*Node).Free)
	return out
}

// NewNode allocates a node with Yoga's default config.
func NewNode() *Node { return wrapNode(C.YGNodeNew()) }

// NewNodeWithConfig allocates a node under config, so its engine log calls
// carry config.Ref().
func NewNodeWithConfig(config *Config) *Node {
	if config == nil || config.config == nil {
		return NewNode()
	}
	return wrapNode(C.YGNodeNewWithConfig(C.YGConfigConstRef(config.config)))
}

// Free detaches the node from its parent and children, drops its handle and
// registry entries, and frees it.
func (n *Node) Free() {
	if n.node == nil {
		return
	}
	ReleaseNode(unsafe.Pointer(n.node))
	C.YGNodeFree(n.node)
	n.node = nil
	runtime.SetFinalizer(n, nil)
}

// Ref is the handle measure calls for this node carry.
func (n *Node) Ref() xyoga.NodeRef { return n.ref }

func (n *Node) SetWidth(width float32) {
	if n.node != nil {
		C.YGNodeStyleSetWidth(n.node, C.float(width))
	}
}

func (n *Node) SetHeight(height float32) {
	if n.node != nil {
		C.YGNodeStyleSetHeight(n.node, C.float(height))
	}
}

func (n *Node) InsertChild(child *Node, index int) {
	if n.node != nil && child != nil && child.node != nil {
		C.YGNodeInsertChild(n.node, child.node, C.size_t(index))
	}
}

func (n *Node) RemoveChild(child *Node) {
	if n.node != nil && child != nil && child.node != nil {
		C.YGNodeRemoveChild(n.node, child.node)
	}
}

func (n *Node) ChildCount() int {
	if n.node == nil {
		return 0
	}
	return int(C.YGNodeGetChildCount(n.node))
}

// SetMeasureFunc registers fn on the global Registry and routes the node's
// measure calls through the bridge; the node is marked dirty. nil removes
// the callback.
func (n *Node) SetMeasureFunc(fn xyoga.MeasureFunc) {
	if n.node == nil {
		return
	}
	reg := registry()
	if fn == nil {
		C.YGNodeSetMeasureFunc(n.node, nil)
		if reg != nil {
			reg.UnsetMeasureFunc(n.ref)
		}
		return
	}
	if reg != nil {
		reg.SetMeasureFunc(n.ref, fn)
	}
	EnableMeasure(unsafe.Pointer(n.node))
}

// UnsetMeasureFunc is SetMeasureFunc(nil).
func (n *Node) UnsetMeasureFunc() { n.SetMeasureFunc(nil) }

// MarkDirty invalidates the cached measurement of a measured leaf.
func (n *Node) MarkDirty() { MarkDirty(unsafe.Pointer(n.node)) }

func (n *Node) IsDirty() bool {
	if n.node == nil {
		return false
	}
	return bool(C.YGNodeIsDirty(n.node))
}

// CalculateLayout runs the engine over the tree rooted at n. Measure and log
// callbacks fire synchronously on the calling goroutine.
func (n *Node) CalculateLayout(width, height float32, direction Direction) {
	if n.node != nil {
		C.YGNodeCalculateLayout(n.node, C.float(width), C.float(height), C.YGDirection(direction))
	}
}

// Layout returns the computed box from the last CalculateLayout.
func (n *Node) Layout() Layout {
	if n.node == nil {
		return Layout{}
	}
	return Layout{
		Left:   float32(C.YGNodeLayoutGetLeft(n.node)),
		Right:  float32(C.YGNodeLayoutGetRight(n.node)),
		Top:    float32(C.YGNodeLayoutGetTop(n.node)),
		Bottom: float32(C.YGNodeLayoutGetBottom(n.node)),
		Width:  float32(C.YGNodeLayoutGetWidth(n.node)),
		Height: float32(C.YGNodeLayoutGetHeight(n.node)),
	}
}
