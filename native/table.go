package native

import (
	"sync"

	"github.com/trickstertwo/xyoga"
)

// table maps native engine pointers to the bridge's opaque handles.
type table struct {
	mu      sync.RWMutex
	configs map[uintptr]xyoga.ConfigRef
	nodes   map[uintptr]xyoga.NodeRef
}

func newTable() *table {
	return &table{
		configs: make(map[uintptr]xyoga.ConfigRef),
		nodes:   make(map[uintptr]xyoga.NodeRef),
	}
}

var refs = newTable()

func (t *table) bindConfig(p uintptr) xyoga.ConfigRef {
	if p == 0 {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if ref, ok := t.configs[p]; ok {
		return ref
	}
	ref := xyoga.NewConfigRef()
	t.configs[p] = ref
	return ref
}

func (t *table) config(p uintptr) xyoga.ConfigRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.configs[p]
}

func (t *table) releaseConfig(p uintptr) xyoga.ConfigRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	ref := t.configs[p]
	delete(t.configs, p)
	return ref
}

func (t *table) bindNode(p uintptr) xyoga.NodeRef {
	if p == 0 {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if ref, ok := t.nodes[p]; ok {
		return ref
	}
	ref := xyoga.NewNodeRef()
	t.nodes[p] = ref
	return ref
}

func (t *table) node(p uintptr) xyoga.NodeRef {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes[p]
}

func (t *table) releaseNode(p uintptr) xyoga.NodeRef {
	t.mu.Lock()
	defer t.mu.Unlock()
	ref := t.nodes[p]
	delete(t.nodes, p)
	return ref
}

var defaultBridge = sync.OnceValue(xyoga.Default)

// bridge returns the global bridge, falling back to a process default so an
// engine callback never lands on a nil bridge.
func bridge() *xyoga.Bridge {
	if b := xyoga.Global(); b != nil {
		return b
	}
	return defaultBridge()
}

// registry returns the Registry behind the global bridge, or nil when that
// bridge was built over another Host.
func registry() *xyoga.Registry { return bridge().Registry() }

// dispatchLog forwards an already rendered engine message. truncated reports
// that the engine-side buffer cut the message. Pointers that were never bound
// arrive as nil handles.
func dispatchLog(b *xyoga.Bridge, t *table, config, node uintptr, level int, message string, truncated bool) int {
	return b.LogTruncated(t.config(config), t.node(node), xyoga.LogLevel(level), message, truncated)
}

// dispatchMeasure forwards an engine measure call. A nil or unbound node
// measures as zero.
func dispatchMeasure(b *xyoga.Bridge, t *table, node uintptr, width float32, widthMode int, height float32, heightMode int) xyoga.Size {
	ref := t.node(node)
	if ref.IsNil() {
		return xyoga.Size{}
	}
	return b.Measure(ref, width, xyoga.MeasureMode(widthMode), height, xyoga.MeasureMode(heightMode))
}

// releaseConfig drops the handle for a native config and its registry entries.
func releaseConfig(b *xyoga.Bridge, t *table, config uintptr) {
	if ref := t.releaseConfig(config); !ref.IsNil() {
		if reg := b.Registry(); reg != nil {
			reg.ReleaseConfig(ref)
		}
	}
}

func releaseNode(b *xyoga.Bridge, t *table, node uintptr) {
	if ref := t.releaseNode(node); !ref.IsNil() {
		if reg := b.Registry(); reg != nil {
			reg.ReleaseNode(ref)
		}
	}
}
