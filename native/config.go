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

// Config owns a YGConfigRef bound to the bridge: engine log calls made under
// it reach the global bridge tagged with Ref().
type Config struct {
	config C.YGConfigRef
	ref    xyoga.ConfigRef
}

// NewConfig allocates a Yoga config with the logging bridge installed.
func NewConfig() *Config {
	c := &Config{config: C.YGConfigNew()}
	c.ref = BindConfig(unsafe.Pointer(c.config))
	runtime.SetFinalizer(c, (*Config).Destroy)
	return c
}

// Destroy releases the handle, its registry entries and the native config.
// Nodes created with this config must be freed first.
func (c *Config) Destroy() {
	if c.config == nil {
		return
	}
	ReleaseConfig(unsafe.Pointer(c.config))
	C.YGConfigFree(c.config)
	c.config = nil
	runtime.SetFinalizer(c, nil)
}

// Ref is the handle engine log calls under this config carry.
func (c *Config) Ref() xyoga.ConfigRef { return c.ref }

// SetLogger registers fn for this config on the global bridge's Registry;
// nil unsets. It is a no-op when the global bridge is not Registry-backed.
func (c *Config) SetLogger(fn xyoga.LoggerFunc) {
	if reg := registry(); reg != nil {
		reg.SetLogger(c.ref, fn)
	}
}

// UnsetLogger sends this config's messages back to the fallback sink.
func (c *Config) UnsetLogger() { c.SetLogger(nil) }

func (c *Config) SetPointScaleFactor(pixelsInPoint float32) {
	if c.config != nil {
		C.YGConfigSetPointScaleFactor(c.config, C.float(pixelsInPoint))
	}
}

func (c *Config) PointScaleFactor() float32 {
	if c.config == nil {
		return 0
	}
	return float32(C.YGConfigGetPointScaleFactor(c.config))
}

func (c *Config) SetUseWebDefaults(enabled bool) {
	if c.config != nil {
		C.YGConfigSetUseWebDefaults(c.config, C.bool(enabled))
	}
}

func (c *Config) UseWebDefaults() bool {
	if c.config == nil {
		return false
	}
	return bool(C.YGConfigGetUseWebDefaults(c.config))
}
