//go:build yoga

package native

/*
#cgo LDFLAGS: -lyogacore -lstdc++ -lm
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/trickstertwo/xyoga"
)

//export goBridgeLogger
func goBridgeLogger(config, node unsafe.Pointer, level C.int, message *C.char, truncated C.int) C.int {
	return C.int(dispatchLog(bridge(), refs, uintptr(config), uintptr(node), int(level), C.GoString(message), truncated != 0))
}

//export goMeasureInvoke
func goMeasureInvoke(node unsafe.Pointer, width C.float, widthMode C.int, height C.float, heightMode C.int, outWidth, outHeight *C.float) {
	size := dispatchMeasure(bridge(), refs, uintptr(node), float32(width), int(widthMode), float32(height), int(heightMode))
	*outWidth = C.float(size.Width)
	*outHeight = C.float(size.Height)
}

// BindConfig assigns a handle to a native YGConfigRef and installs the
// logging bridge on it. Calling it again returns the same handle.
func BindConfig(config unsafe.Pointer) xyoga.ConfigRef {
	ref := refs.bindConfig(uintptr(config))
	if !ref.IsNil() {
		C.YGConfigSetLogger(C.YGConfigRef(config), C.YGLogger(C.c_bridge_yg_logger))
	}
	return ref
}

// ReleaseConfig detaches the logging bridge and forgets the handle. Call it
// before YGConfigFree.
func ReleaseConfig(config unsafe.Pointer) {
	if config == nil {
		return
	}
	C.YGConfigSetLogger(C.YGConfigRef(config), nil)
	releaseConfig(bridge(), refs, uintptr(config))
}

// BindNode assigns a handle to a native YGNodeRef.
func BindNode(node unsafe.Pointer) xyoga.NodeRef {
	return refs.bindNode(uintptr(node))
}

// EnableMeasure binds node and routes its measure calls to the global
// bridge. Register the measure func on the bridge's Registry under the
// returned handle. The node is marked dirty so a cached measurement from a
// previous callback is discarded.
func EnableMeasure(node unsafe.Pointer) xyoga.NodeRef {
	ref := refs.bindNode(uintptr(node))
	if !ref.IsNil() {
		C.YGNodeSetMeasureFunc(C.YGNodeRef(node), C.YGMeasureFunc(C.c_bridge_yg_measure))
		C.YGNodeMarkDirty(C.YGNodeRef(node))
	}
	return ref
}

// MarkDirty invalidates the engine's cached measurement for a node with a
// measure callback, e.g. after its content changed. Yoga rejects the call on
// nodes without one.
func MarkDirty(node unsafe.Pointer) {
	if node == nil || !bool(C.YGNodeHasMeasureFunc(C.YGNodeRef(node))) {
		return
	}
	C.YGNodeMarkDirty(C.YGNodeRef(node))
}

// ReleaseNode clears the measure callback and forgets the handle. Call it
// before YGNodeFree.
func ReleaseNode(node unsafe.Pointer) {
	if node == nil {
		return
	}
	C.YGNodeSetMeasureFunc(C.YGNodeRef(node), nil)
	releaseNode(bridge(), refs, uintptr(node))
}
