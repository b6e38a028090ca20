package gen

import (
	"bytes"
	"fmt"
	"strings"
)

// printer accumulates Go source one line at a time. Indentation is only
// cosmetic; the result is run through go/format.
type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) line(format string, args ...any) {
	if format == "" {
		p.buf.WriteByte('\n')
		return
	}
	if strings.HasPrefix(format, "}") {
		p.indent--
	}
	p.buf.WriteString(strings.Repeat("\t", max(p.indent, 0)))
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
	if strings.HasSuffix(format, "{") {
		p.indent++
	}
}

func (p *printer) bytes() []byte { return p.buf.Bytes() }
