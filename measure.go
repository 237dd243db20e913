package xyoga

import "fmt"

// MeasureMode mirrors YGMeasureMode.
type MeasureMode int

const (
	MeasureModeUndefined MeasureMode = iota
	MeasureModeExactly
	MeasureModeAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureModeUndefined:
		return "undefined"
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	}
	return "unknown"
}

// Size is the result of a measurement.
type Size struct {
	Width  float32
	Height float32
}

// Constraints carries the available space the engine offers a leaf on each axis.
type Constraints struct {
	Width      float32
	WidthMode  MeasureMode
	Height     float32
	HeightMode MeasureMode
}

func (c Constraints) String() string {
	return fmt.Sprintf("w=%g(%s) h=%g(%s)", c.Width, c.WidthMode, c.Height, c.HeightMode)
}

// Fit clamps a content extent to one axis' constraint: Exactly forces the
// offered size, AtMost caps it, Undefined keeps the content size.
func Fit(content, avail float32, mode MeasureMode) float32 {
	switch mode {
	case MeasureModeExactly:
		return avail
	case MeasureModeAtMost:
		if content > avail {
			return avail
		}
	}
	return content
}
