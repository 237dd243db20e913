package textsink

import "github.com/trickstertwo/xyoga"

// Pre-encode bound fields for both formats once per With().

func encodeBound(bound []xyoga.Field, format Format) []byte {
	if len(bound) == 0 {
		return nil
	}
	buf := getBufWithCap(256)
	for i := range bound {
		if format == FormatJSON {
			appendJSONField(buf, &bound[i])
		} else {
			appendTextField(buf, &bound[i]) // leading space included
		}
	}
	cp := make([]byte, len(buf.b))
	copy(cp, buf.b)
	putBuf(buf)
	return cp
}
