// Package native connects a Yoga installation to the xyoga bridge through cgo.
//
// The cgo half is compiled only with the yoga build tag:
//
//	go build -tags yoga
//
// It expects the Yoga headers and libyogacore on the default compiler and
// linker search paths (or supplied through CGO_CFLAGS / CGO_LDFLAGS).
// Engine log calls are rendered with vsnprintf into a MessageBufferSize
// buffer on the C side and handed to the global bridge; measure calls are
// routed to the global bridge's host.
//
// Config and Node wrap the engine objects and bind handles automatically;
// BindConfig, EnableMeasure and friends cover objects allocated elsewhere.
// Without the tag only the handle table, Direction and Layout are built.
package native
