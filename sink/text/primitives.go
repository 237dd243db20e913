package textsink

import (
	"math"
	"strconv"
	"time"
)

const digits = "0123456789abcdef"

func appendInt64(buf *buffer, v int64) {
	buf.b = strconv.AppendInt(buf.b, v, 10)
}

func appendUint64(buf *buffer, v uint64) {
	buf.b = strconv.AppendUint(buf.b, v, 10)
}

// appendFloat64 writes NaN/Inf as JSON null when json is set.
func appendFloat64(buf *buffer, f float64, json bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		switch {
		case json:
			buf.writeString("null")
		case math.IsNaN(f):
			buf.writeString("NaN")
		case f > 0:
			buf.writeString("+Inf")
		default:
			buf.writeString("-Inf")
		}
		return
	}
	buf.b = strconv.AppendFloat(buf.b, f, 'g', -1, 64)
}

func appendTime(buf *buffer, t time.Time, layout string) {
	if layout == "" {
		layout = time.RFC3339Nano
	}
	buf.b = t.AppendFormat(buf.b, layout)
}
