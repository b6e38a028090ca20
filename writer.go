package jasonify

import (
	"encoding/base64"
	"io"
	"math"
	"strconv"
)

// Writer is a streaming JSON emitter over an append-only byte buffer. It
// keeps no document tree: only the nesting depth, one "no child written yet"
// flag per open container, and whether a field name is waiting for its value.
//
// Writer does not validate structural balance. Callers (generated codecs)
// pair Start*/End* calls themselves. A Writer is not safe for concurrent use.
type Writer struct {
	buf      []byte
	first    []bool
	depth    int
	afterKey bool
}

const defaultWriterSize = 256

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return NewWriterSize(defaultWriterSize) }

// NewWriterSize returns an empty Writer whose buffer has at least n bytes of
// capacity.
func NewWriterSize(n int) *Writer {
	if n <= 0 {
		n = defaultWriterSize
	}
	w := &Writer{buf: make([]byte, 0, n), first: make([]bool, 1, 8)}
	w.first[0] = true
	return w
}

// Reset truncates the output and returns the writer to depth 0 so it can be
// reused for a new document.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.first = w.first[:1]
	w.first[0] = true
	w.depth = 0
	w.afterKey = false
}

// Bytes returns the output written so far. The slice aliases the internal
// buffer and is only valid until the next write or Reset.
func (w *Writer) Bytes() []byte { return w.buf }

// String returns a copy of the output written so far.
func (w *Writer) String() string { return string(w.buf) }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return len(w.buf) }

// Depth returns the current container nesting depth.
func (w *Writer) Depth() int { return w.depth }

// WriteTo writes the buffered output to dst. A short or failed write is
// returned as is; the buffer is left untouched so the caller decides whether
// to retry or discard.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)
	if err == nil && n != len(w.buf) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// beforeValue emits the separating comma unless the value is the first child
// of its container or directly follows a field name.
func (w *Writer) beforeValue() {
	if w.afterKey {
		w.afterKey = false
		return
	}
	if w.first[w.depth] {
		w.first[w.depth] = false
		return
	}
	w.buf = append(w.buf, ',')
}

func (w *Writer) open(c byte) {
	w.beforeValue()
	w.buf = append(w.buf, c)
	w.depth++
	if w.depth < len(w.first) {
		w.first[w.depth] = true
	} else {
		w.first = append(w.first, true)
	}
}

func (w *Writer) close(c byte) {
	w.buf = append(w.buf, c)
	w.afterKey = false
	if w.depth > 0 {
		w.depth--
	}
}

// StartObject writes '{'.
func (w *Writer) StartObject() { w.open('{') }

// EndObject writes '}'.
func (w *Writer) EndObject() { w.close('}') }

// StartArray writes '['.
func (w *Writer) StartArray() { w.open('[') }

// EndArray writes ']'.
func (w *Writer) EndArray() { w.close(']') }

// WriteFieldName writes a quoted, escaped object key followed by ':'.
func (w *Writer) WriteFieldName(name string) {
	w.beforeValue()
	w.buf = appendQuoted(w.buf, name)
	w.buf = append(w.buf, ':')
	w.afterKey = true
}

// WriteString writes a quoted, escaped string value.
func (w *Writer) WriteString(s string) {
	w.beforeValue()
	w.buf = appendQuoted(w.buf, s)
}

// WriteBool writes true or false.
func (w *Writer) WriteBool(b bool) {
	w.beforeValue()
	w.buf = strconv.AppendBool(w.buf, b)
}

// WriteNull writes null.
func (w *Writer) WriteNull() {
	w.beforeValue()
	w.buf = append(w.buf, "null"...)
}

// WriteInt writes a signed integer in decimal.
func (w *Writer) WriteInt(n int64) {
	w.beforeValue()
	w.buf = strconv.AppendInt(w.buf, n, 10)
}

// WriteUint writes an unsigned integer in decimal.
func (w *Writer) WriteUint(n uint64) {
	w.beforeValue()
	w.buf = strconv.AppendUint(w.buf, n, 10)
}

// WriteFloat writes f in the shortest form that round-trips at bitSize (32
// or 64). NaN and infinities have no JSON form and are written as null.
func (w *Writer) WriteFloat(f float64, bitSize int) {
	w.beforeValue()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		w.buf = append(w.buf, "null"...)
		return
	}
	w.buf = strconv.AppendFloat(w.buf, f, 'g', -1, bitSize)
}

// WriteRaw splices an already encoded JSON value into the output verbatim.
// Comma placement around it is still handled by the writer. An empty
// fragment is written as null.
func (w *Writer) WriteRaw(raw []byte) {
	w.beforeValue()
	if len(raw) == 0 {
		w.buf = append(w.buf, "null"...)
		return
	}
	w.buf = append(w.buf, raw...)
}

// WriteBase64 writes b as a string holding its standard Base64 encoding.
func (w *Writer) WriteBase64(b []byte) {
	w.beforeValue()
	w.buf = append(w.buf, '"')
	w.buf = base64.StdEncoding.AppendEncode(w.buf, b)
	w.buf = append(w.buf, '"')
}

const hexDigits = "0123456789abcdef"

// appendQuoted escapes '"', '\\' and control characters. Everything else,
// including non-ASCII text, is copied through unchanged.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
