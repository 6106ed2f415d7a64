package tabular

import "strings"

const (
	separator  = ','
	quote      = '"'
	terminator = '\n'
)

// appendHeader appends the header line. Names are written verbatim.
func appendHeader(dst []byte, names []string) []byte {
	for i, name := range names {
		if i > 0 {
			dst = append(dst, separator)
		}
		dst = append(dst, name...)
	}
	return append(dst, terminator)
}

// appendRow appends one data line. There is exactly one separator between
// adjacent cells, whether or not either of them is empty.
func appendRow(dst []byte, values []Value) []byte {
	for i, v := range values {
		if i > 0 {
			dst = append(dst, separator)
		}
		if v.present {
			dst = appendCell(dst, v.text)
		}
	}
	return append(dst, terminator)
}

// appendCell escapes a present cell: text containing a comma is wrapped in
// quotes, then every CR and LF becomes a space. Embedded quotes are left as is.
func appendCell(dst []byte, text string) []byte {
	wrap := strings.IndexByte(text, separator) >= 0
	if wrap {
		dst = append(dst, quote)
	}
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\r', '\n':
			dst = append(dst, ' ')
		default:
			dst = append(dst, c)
		}
	}
	if wrap {
		dst = append(dst, quote)
	}
	return dst
}

// escapeCell returns the rendered form of a single present cell.
func escapeCell(text string) string {
	return string(appendCell(nil, text))
}
