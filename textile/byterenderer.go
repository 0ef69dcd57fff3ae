package textile

import (
	"bytes"
	"fmt"
	"strconv"
)

// ByteRenderer accumulates rendered output in a single growing byte slice.
type ByteRenderer struct {
	buf []byte
}

// Render appends its arguments, which can be strings, byte slices, bytes, runes or ints.
// Anything else is formatted with fmt.
func (br *ByteRenderer) Render(args ...any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			br.buf = append(br.buf, v...)
		case []byte:
			br.buf = append(br.buf, v...)
		case byte:
			br.buf = append(br.buf, v)
		case rune:
			br.buf = append(br.buf, string(v)...)
		case int:
			br.buf = strconv.AppendInt(br.buf, int64(v), 10)
		default:
			br.buf = fmt.Append(br.buf, v)
		}
	}
}

// Renderln is like Render but adds a newline at the end.
func (br *ByteRenderer) Renderln(args ...any) {
	br.Render(args...)
	br.buf = append(br.buf, '\n')
}

// Bytes returns the output accumulated so far.
func (br *ByteRenderer) Bytes() []byte {
	return br.buf
}

func (br *ByteRenderer) Len() int {
	return len(br.buf)
}

// The indentation string
var aBigIndentationString = bytes.Repeat([]byte(" "), 200)

func indent(n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > len(aBigIndentationString) {
		return bytes.Repeat([]byte(" "), n)
	}
	return aBigIndentationString[:n]
}

// indentLines prefixes every non-empty line of src with n spaces.
func indentLines(src []byte, n int) []byte {
	if n <= 0 || len(src) == 0 {
		return src
	}
	prefix := indent(n)
	out := make([]byte, 0, len(src)+n*(bytes.Count(src, []byte("\n"))+1))
	for len(src) > 0 {
		line := src
		rest := []byte(nil)
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			line, rest = src[:i+1], src[i+1:]
		}
		if len(line) > 0 && line[0] != '\n' {
			out = append(out, prefix...)
		}
		out = append(out, line...)
		src = rest
	}
	return out
}
