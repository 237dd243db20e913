package textsink

import "github.com/trickstertwo/xyoga"

// Formatter writes one full line with the given, already pre-encoded bound prefix.
type Formatter interface {
	FormatRecord(buf *buffer, rec *xyoga.Record, boundPrefix []byte, opts *Options)
}

type TextFormatter struct{}

func (TextFormatter) FormatRecord(buf *buffer, rec *xyoga.Record, boundPrefix []byte, opts *Options) {
	buf.writeString("ts=")
	appendTime(buf, rec.At, opts.TimeFormat)
	buf.writeString(" level=")
	buf.writeString(rec.Level.String())
	buf.writeString(" msg=")
	appendTextString(buf, rec.Message)
	if !rec.Config.IsNil() {
		buf.writeString(" config=")
		appendUint64(buf, uint64(rec.Config))
	}
	if !rec.Node.IsNil() {
		buf.writeString(" node=")
		appendUint64(buf, uint64(rec.Node))
	}
	if rec.Truncated {
		buf.writeString(" truncated=true")
	}
	buf.writeBytes(boundPrefix)
	buf.writeByte('\n')
}

func appendTextField(buf *buffer, f *xyoga.Field) {
	buf.writeByte(' ')
	buf.writeString(f.K)
	buf.writeByte('=')
	switch f.Kind {
	case xyoga.KindString:
		appendTextString(buf, f.Str)
	case xyoga.KindInt64:
		appendInt64(buf, f.Int64)
	case xyoga.KindUint64:
		appendUint64(buf, f.Uint64)
	case xyoga.KindFloat64:
		appendFloat64(buf, f.Float64, false)
	case xyoga.KindBool:
		if f.Bool {
			buf.writeString("true")
		} else {
			buf.writeString("false")
		}
	case xyoga.KindDuration:
		buf.writeString(f.Dur.String())
	case xyoga.KindError:
		if f.Err != nil {
			appendQuoted(buf, f.Err.Error())
		} else {
			buf.writeString("null")
		}
	default:
		// Any values are not rendered reflectively in text mode.
		buf.writeString("?")
	}
}
