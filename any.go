package jasonify

import "strconv"

// Number is an undecoded JSON number literal as produced by DecodeAny.
type Number string

func (n Number) String() string { return string(n) }

// Float64 converts the literal to a float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Int64 converts the literal to an int64.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// DecodeAny reads the next complete value from p into a generic tree of
// map[string]any, []any, string, Number, bool and nil.
func DecodeAny(p *Parser) (any, error) {
	if _, err := p.Next(); err != nil {
		return nil, err
	}
	return decodeAnyValue(p)
}

// DecodeAnyBytes decodes a whole document held in data.
// Anything after the value other than whitespace is a syntax error.
func DecodeAnyBytes(data []byte, opts ...ParserOption) (any, error) {
	p := NewParser(data, opts...)
	v, err := DecodeAny(p)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeAnyValue(p *Parser) (any, error) {
	switch p.Token() {
	case TokenStartObject:
		return decodeAnyObject(p)
	case TokenStartArray:
		return decodeAnyArray(p)
	case TokenValueString:
		return p.Text(), nil
	case TokenValueNumber:
		return Number(p.Text()), nil
	case TokenValueBool:
		return p.Bool(), nil
	case TokenNull:
		return nil, nil
	default:
		return nil, p.UnexpectedToken()
	}
}

func decodeAnyObject(p *Parser) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if tok == TokenEndObject {
			return m, nil
		}
		if tok != TokenFieldName {
			return nil, p.UnexpectedToken()
		}
		key := p.Text()
		if _, err := p.Next(); err != nil {
			return nil, err
		}
		v, err := decodeAnyValue(p)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}
}

func decodeAnyArray(p *Parser) (any, error) {
	arr := []any{}
	for {
		tok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if tok == TokenEndArray {
			return arr, nil
		}
		v, err := decodeAnyValue(p)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
