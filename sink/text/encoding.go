package textsink

import "unicode/utf8"

// appendQuoted writes s as a JSON string literal.
func appendQuoted(buf *buffer, s string) {
	buf.writeByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if start < i {
			buf.writeString(s[start:i])
		}
		if c < 0x80 {
			switch c {
			case '\\', '"':
				buf.writeByte('\\')
				buf.writeByte(c)
			case '\n':
				buf.writeString(`\n`)
			case '\r':
				buf.writeString(`\r`)
			case '\t':
				buf.writeString(`\t`)
			default:
				buf.writeString(`\u00`)
				buf.writeByte(digits[c>>4])
				buf.writeByte(digits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			buf.writeString(`\uFFFD`)
		case r == '\u2028':
			buf.writeString(`\u2028`)
		case r == '\u2029':
			buf.writeString(`\u2029`)
		default:
			buf.writeString(s[i : i+size])
		}
		i += size
		start = i
	}
	if start < len(s) {
		buf.writeString(s[start:])
	}
	buf.writeByte('"')
}

// appendTextString writes s bare unless it holds spaces, quotes or control
// bytes, in which case it is quoted.
func appendTextString(buf *buffer, s string) {
	if s == "" {
		buf.writeString(`""`)
		return
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1F || c == ' ' || c == '"' || c == '=' {
			appendQuoted(buf, s)
			return
		}
	}
	buf.writeString(s)
}
