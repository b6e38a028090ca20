package jasonify

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Parser is a pull-based JSON tokenizer over an in-memory document. Next
// advances exactly one token; Token and Text inspect the current one without
// consuming input. Number and boolean literals are kept as text and converted
// only when an accessor asks for them.
//
// Object keys are told apart from string values by tracking, per open
// container, whether the next string in an object is a key. A Parser is not
// safe for concurrent use.
type Parser struct {
	data     []byte
	pos      int
	pending  int // pushed back byte, or -1
	start    int // offset of the current token
	tok      Token
	text     string
	stack    []frame
	maxDepth int
	err      error
	scratch  []byte
}

type frame struct {
	object     bool
	expectKey  bool
	awaitValue bool // a field name was read and its value has not started
}

// NewParser returns a Parser reading data. The slice must not be modified
// while the parser is in use.
func NewParser(data []byte, opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(p)
	}
	p.Reset(data)
	return p
}

// NewParserString returns a Parser reading s.
func NewParserString(s string, opts ...ParserOption) *Parser {
	return NewParser([]byte(s), opts...)
}

// Reset rewinds the parser onto new input, keeping its options and buffers.
func (p *Parser) Reset(data []byte) {
	p.data = data
	p.pos = 0
	p.pending = -1
	p.start = 0
	p.tok = TokenNone
	p.text = ""
	p.stack = p.stack[:0]
	p.err = nil
}

// Token returns the current token.
func (p *Parser) Token() Token { return p.tok }

// Text returns the decoded literal of the current token: the key for
// FIELD_NAME, the unescaped string for VALUE_STRING, the literal text for
// VALUE_NUMBER and VALUE_BOOLEAN, and "" otherwise.
func (p *Parser) Text() string { return p.text }

// Depth returns the number of currently open containers.
func (p *Parser) Depth() int { return len(p.stack) }

// Offset returns the byte offset of the next unread character.
func (p *Parser) Offset() int64 {
	if p.pending >= 0 {
		return int64(p.pos - 1)
	}
	return int64(p.pos)
}

// Next advances to the next token and returns it. Commas and colons are
// consumed silently. At the end of input it returns TokenEndDocument, or
// ErrUnexpectedEnd when containers are still open. Lexical errors are sticky:
// every later call returns the same error.
func (p *Parser) Next() (Token, error) {
	if p.err != nil {
		return p.tok, p.err
	}
	for {
		p.skipWhitespace()
		p.start = int(p.Offset())
		c := p.read()
		switch c {
		case -1:
			if len(p.stack) > 0 {
				return p.fail(ErrUnexpectedEnd)
			}
			return p.set(TokenEndDocument, ""), nil
		case ':':
			continue
		case ',':
			if p.awaitingValue() {
				return p.fail(p.syntaxError("missing value after field name"))
			}
			continue
		case '{':
			return p.push(true)
		case '[':
			return p.push(false)
		case '}':
			return p.pop(true)
		case ']':
			return p.pop(false)
		case '"':
			s, err := p.parseString()
			if err != nil {
				return p.fail(err)
			}
			if n := len(p.stack); n > 0 && p.stack[n-1].object && p.stack[n-1].expectKey {
				p.stack[n-1].expectKey = false
				p.stack[n-1].awaitValue = true
				return p.set(TokenFieldName, s), nil
			}
			p.valueDone()
			return p.set(TokenValueString, s), nil
		case 'n':
			if err := p.parseLiteral("null"); err != nil {
				return p.fail(err)
			}
			p.valueDone()
			return p.set(TokenNull, ""), nil
		case 't':
			if err := p.parseLiteral("true"); err != nil {
				return p.fail(err)
			}
			p.valueDone()
			return p.set(TokenValueBool, "true"), nil
		case 'f':
			if err := p.parseLiteral("false"); err != nil {
				return p.fail(err)
			}
			p.valueDone()
			return p.set(TokenValueBool, "false"), nil
		default:
			if c == '-' || isDigit(c) {
				p.valueDone()
				return p.set(TokenValueNumber, p.parseNumber()), nil
			}
			return p.fail(p.syntaxError(fmt.Sprintf("unexpected character %q", rune(c))))
		}
	}
}

// SkipChildren discards the object or array the parser is positioned on,
// leaving the matching END token current.
func (p *Parser) SkipChildren() error {
	if !p.tok.IsStart() {
		return ErrSkipPosition
	}
	depth := 1
	for depth > 0 {
		tok, err := p.Next()
		if err != nil {
			return err
		}
		switch {
		case tok == TokenEndDocument:
			return ErrUnexpectedEnd
		case tok.IsStart():
			depth++
		case tok.IsEnd():
			depth--
		}
	}
	return nil
}

// Skip discards the current value. On a container start it skips the whole
// subtree, on a field name it skips the field's value, and on a scalar it
// does nothing because the scalar has already been consumed.
func (p *Parser) Skip() error {
	switch {
	case p.tok.IsStart():
		return p.SkipChildren()
	case p.tok == TokenFieldName:
		if _, err := p.Next(); err != nil {
			return err
		}
		return p.Skip()
	}
	return nil
}

// Bool interprets the current literal as a boolean.
func (p *Parser) Bool() bool { return p.text == "true" }

// Int converts the current number literal to a signed integer of bitSize bits.
func (p *Parser) Int(bitSize int) (int64, error) {
	n, err := strconv.ParseInt(p.text, 10, bitSize)
	if err != nil {
		return 0, &NumberError{Literal: p.text, Err: err}
	}
	return n, nil
}

// Uint converts the current number literal to an unsigned integer of bitSize bits.
func (p *Parser) Uint(bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(p.text, 10, bitSize)
	if err != nil {
		return 0, &NumberError{Literal: p.text, Err: err}
	}
	return n, nil
}

// Float converts the current number literal to a float of bitSize bits.
func (p *Parser) Float(bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(p.text, bitSize)
	if err != nil {
		return 0, &NumberError{Literal: p.text, Err: err}
	}
	return f, nil
}

// Base64 decodes the current string as standard Base64.
func (p *Parser) Base64() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(p.text)
	if err != nil {
		return nil, fmt.Errorf("jasonify: invalid base64 value: %w", err)
	}
	return b, nil
}

func (p *Parser) set(t Token, text string) Token {
	p.tok = t
	p.text = text
	return t
}

func (p *Parser) fail(err error) (Token, error) {
	p.err = err
	return p.tok, err
}

func (p *Parser) push(object bool) (Token, error) {
	if p.maxDepth > 0 && len(p.stack) >= p.maxDepth {
		return p.fail(fmt.Errorf("%w (limit %d at offset %d)", ErrMaxDepth, p.maxDepth, p.Offset()))
	}
	if n := len(p.stack); n > 0 {
		p.stack[n-1].awaitValue = false
	}
	p.stack = append(p.stack, frame{object: object, expectKey: object})
	if object {
		return p.set(TokenStartObject, ""), nil
	}
	return p.set(TokenStartArray, ""), nil
}

func (p *Parser) pop(object bool) (Token, error) {
	n := len(p.stack)
	if n == 0 || p.stack[n-1].object != object {
		c := ']'
		if object {
			c = '}'
		}
		return p.fail(p.syntaxError(fmt.Sprintf("unexpected %q", c)))
	}
	if p.stack[n-1].awaitValue {
		return p.fail(p.syntaxError("missing value after field name"))
	}
	p.stack = p.stack[:n-1]
	p.valueDone()
	if object {
		return p.set(TokenEndObject, ""), nil
	}
	return p.set(TokenEndArray, ""), nil
}

// valueDone marks that a complete value was read in the enclosing container,
// so the next string in an object is a key again.
func (p *Parser) valueDone() {
	if n := len(p.stack); n > 0 && p.stack[n-1].object {
		p.stack[n-1].expectKey = true
		p.stack[n-1].awaitValue = false
	}
}

func (p *Parser) awaitingValue() bool {
	n := len(p.stack)
	return n > 0 && p.stack[n-1].awaitValue
}

// UnexpectedToken reports the current token as out of place, such as a
// value where an object key belongs. At the end of input it returns
// ErrUnexpectedEnd, otherwise a *SyntaxError at the token's offset. The
// error is sticky like any other lexical error.
func (p *Parser) UnexpectedToken() error {
	if p.tok == TokenEndDocument {
		return ErrUnexpectedEnd
	}
	_, err := p.fail(&SyntaxError{Offset: int64(p.start), Msg: "unexpected " + p.tok.String()})
	return err
}

// expectEnd checks that nothing but whitespace follows the top-level value.
func (p *Parser) expectEnd() error {
	tok, err := p.Next()
	if err != nil {
		return err
	}
	if tok != TokenEndDocument {
		_, err := p.fail(&SyntaxError{Offset: int64(p.start), Msg: "unexpected data after top-level value"})
		return err
	}
	return nil
}

func (p *Parser) read() int {
	if p.pending >= 0 {
		c := p.pending
		p.pending = -1
		return c
	}
	if p.pos >= len(p.data) {
		return -1
	}
	c := p.data[p.pos]
	p.pos++
	return int(c)
}

// pushBack returns the byte just read to the input. Only one byte may be
// outstanding; a second push is a bug in the parser, not bad input.
func (p *Parser) pushBack(c int) {
	if p.pending >= 0 {
		panic(ErrPushback)
	}
	p.pending = c
}

func (p *Parser) skipWhitespace() {
	for {
		c := p.read()
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case -1:
			return
		}
		p.pushBack(c)
		return
	}
}

func (p *Parser) parseLiteral(lit string) error {
	for i := 1; i < len(lit); i++ {
		if p.read() != int(lit[i]) {
			return p.syntaxError("invalid literal: expected " + lit)
		}
	}
	return nil
}

// parseNumber scans a number literal whose first character was just read.
// Validation of the literal is deferred to the accessors.
func (p *Parser) parseNumber() string {
	start := p.pos - 1
	for {
		c := p.read()
		if c == -1 {
			return string(p.data[start:p.pos])
		}
		if isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			continue
		}
		p.pushBack(c)
		return string(p.data[start : p.pos-1])
	}
}

// parseString reads a string body after its opening quote.
func (p *Parser) parseString() (string, error) {
	start := p.pos
	for i := start; i < len(p.data); i++ {
		switch p.data[i] {
		case '"':
			p.pos = i + 1
			return string(p.data[start:i]), nil
		case '\\':
			p.scratch = append(p.scratch[:0], p.data[start:i]...)
			p.pos = i
			return p.parseEscapedString()
		}
	}
	p.pos = len(p.data)
	return "", &SyntaxError{Offset: int64(start - 1), Msg: "unterminated string"}
}

func (p *Parser) parseEscapedString() (string, error) {
	for {
		c := p.read()
		switch c {
		case -1:
			return "", p.syntaxError("unterminated string")
		case '"':
			return string(p.scratch), nil
		case '\\':
			e := p.read()
			switch e {
			case '"', '\\', '/':
				p.scratch = append(p.scratch, byte(e))
			case 'b':
				p.scratch = append(p.scratch, '\b')
			case 'f':
				p.scratch = append(p.scratch, '\f')
			case 'n':
				p.scratch = append(p.scratch, '\n')
			case 'r':
				p.scratch = append(p.scratch, '\r')
			case 't':
				p.scratch = append(p.scratch, '\t')
			case 'u':
				r, err := p.readUnicodeEscape()
				if err != nil {
					return "", err
				}
				p.scratch = utf8.AppendRune(p.scratch, r)
			case -1:
				return "", p.syntaxError("unterminated string")
			default:
				return "", p.syntaxError(fmt.Sprintf("invalid escape sequence \\%c", rune(e)))
			}
		default:
			p.scratch = append(p.scratch, byte(c))
		}
	}
}

// readUnicodeEscape reads the XXXX of \uXXXX, joining a following low
// surrogate escape when the first is a high surrogate.
func (p *Parser) readUnicodeEscape() (rune, error) {
	r, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if p.pos+1 < len(p.data) && p.data[p.pos] == '\\' && p.data[p.pos+1] == 'u' {
		save := p.pos
		p.pos += 2
		r2, err := p.readHex4()
		if err == nil {
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				return dec, nil
			}
		}
		p.pos = save
	}
	return utf8.RuneError, nil
}

func (p *Parser) readHex4() (rune, error) {
	var r rune
	for i := 0; i < 4; i++ {
		c := p.read()
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			return 0, p.syntaxError("invalid \\u escape")
		}
		r = r<<4 | rune(v)
	}
	return r, nil
}

func (p *Parser) syntaxError(msg string) *SyntaxError {
	off := p.pos - 1
	if off < 0 {
		off = 0
	}
	return &SyntaxError{Offset: int64(off), Msg: msg}
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }
