package textsink

import (
	"encoding/json"

	"github.com/trickstertwo/xyoga"
)

type JSONFormatter struct{}

func (JSONFormatter) FormatRecord(buf *buffer, rec *xyoga.Record, boundPrefix []byte, opts *Options) {
	switch opts.JSONTime {
	case JSONTimeUnixMillis:
		buf.writeString(`{"ts":`)
		appendInt64(buf, rec.At.UnixMilli())
	case JSONTimeUnixNanos:
		buf.writeString(`{"ts":`)
		appendInt64(buf, rec.At.UnixNano())
	default:
		buf.writeString(`{"ts":"`)
		appendTime(buf, rec.At, "")
		buf.writeByte('"')
	}
	buf.writeString(`,"level":"`)
	buf.writeString(rec.Level.String())
	buf.writeString(`","msg":`)
	appendQuoted(buf, rec.Message)
	if !rec.Config.IsNil() {
		buf.writeString(`,"config":`)
		appendUint64(buf, uint64(rec.Config))
	}
	if !rec.Node.IsNil() {
		buf.writeString(`,"node":`)
		appendUint64(buf, uint64(rec.Node))
	}
	if rec.Truncated {
		buf.writeString(`,"truncated":true`)
	}
	buf.writeBytes(boundPrefix)
	buf.writeString("}\n")
}

func appendJSONField(buf *buffer, f *xyoga.Field) {
	buf.writeByte(',')
	appendQuoted(buf, f.K)
	buf.writeByte(':')
	switch f.Kind {
	case xyoga.KindString:
		appendQuoted(buf, f.Str)
	case xyoga.KindInt64:
		appendInt64(buf, f.Int64)
	case xyoga.KindUint64:
		appendUint64(buf, f.Uint64)
	case xyoga.KindFloat64:
		appendFloat64(buf, f.Float64, true)
	case xyoga.KindBool:
		if f.Bool {
			buf.writeString("true")
		} else {
			buf.writeString("false")
		}
	case xyoga.KindDuration:
		appendQuoted(buf, f.Dur.String())
	case xyoga.KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeString("null")
		}
	case xyoga.KindAny:
		// only reached via encodeBound
		if data, err := json.Marshal(f.Any); err == nil {
			buf.writeBytes(data)
		} else {
			buf.writeString("null")
		}
	default:
		buf.writeString("null")
	}
}
