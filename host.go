package xyoga

// Host is the capability the layout engine calls back into (Strategy).
// Implementations MUST be safe to call from whatever goroutine runs the layout.
type Host interface {
	// OnLayoutLog receives an engine message that has already been rendered
	// and bounded. The returned status is handed back to the engine as-is.
	OnLayoutLog(config ConfigRef, node NodeRef, level LogLevel, message string) int

	// MeasureContent reports the intrinsic size of a leaf under c.
	MeasureContent(node NodeRef, c Constraints) Size
}

// RecordHost is an optional Host extension. When the host implements it the
// bridge delivers the whole Record, truncation flag included, instead of
// calling OnLayoutLog. Record.At is left zero for the host to stamp.
type RecordHost interface {
	OnLayoutRecord(rec Record) int
}

// LoggerFunc is the function form of Host.OnLayoutLog.
type LoggerFunc func(config ConfigRef, node NodeRef, level LogLevel, message string) int

// MeasureFunc is the function form of Host.MeasureContent.
type MeasureFunc func(node NodeRef, c Constraints) Size

// HostFuncs adapts plain functions to Host. A nil Log returns 0; a nil
// Measure returns a zero Size.
type HostFuncs struct {
	Log     LoggerFunc
	Measure MeasureFunc
}

func (h HostFuncs) OnLayoutLog(config ConfigRef, node NodeRef, level LogLevel, message string) int {
	if h.Log == nil {
		return 0
	}
	return h.Log(config, node, level, message)
}

func (h HostFuncs) MeasureContent(node NodeRef, c Constraints) Size {
	if h.Measure == nil {
		return Size{}
	}
	return h.Measure(node, c)
}
