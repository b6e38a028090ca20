package jasonify_test

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/jasonify"
)

type tokenText struct {
	tok  jasonify.Token
	text string
}

func tokens(t *testing.T, doc string, opts ...jasonify.ParserOption) []tokenText {
	t.Helper()
	p := jasonify.NewParserString(doc, opts...)
	var out []tokenText
	for {
		tok, err := p.Next()
		require.NoError(t, err)
		out = append(out, tokenText{tok, p.Text()})
		if tok == jasonify.TokenEndDocument {
			return out
		}
	}
}

func TestParser_Tokens(t *testing.T) {
	got := tokens(t, ` {"a": [1, -2.5e3, true, false, null], "b": {"c": "d"}, "e": ""} `)
	want := []tokenText{
		{jasonify.TokenStartObject, ""},
		{jasonify.TokenFieldName, "a"},
		{jasonify.TokenStartArray, ""},
		{jasonify.TokenValueNumber, "1"},
		{jasonify.TokenValueNumber, "-2.5e3"},
		{jasonify.TokenValueBool, "true"},
		{jasonify.TokenValueBool, "false"},
		{jasonify.TokenNull, ""},
		{jasonify.TokenEndArray, ""},
		{jasonify.TokenFieldName, "b"},
		{jasonify.TokenStartObject, ""},
		{jasonify.TokenFieldName, "c"},
		{jasonify.TokenValueString, "d"},
		{jasonify.TokenEndObject, ""},
		{jasonify.TokenFieldName, "e"},
		{jasonify.TokenValueString, ""},
		{jasonify.TokenEndObject, ""},
		{jasonify.TokenEndDocument, ""},
	}
	assert.Equal(t, want, got)
}

func TestParser_StringsInArrayAreValues(t *testing.T) {
	got := tokens(t, `["a","b"]`)
	assert.Equal(t, []tokenText{
		{jasonify.TokenStartArray, ""},
		{jasonify.TokenValueString, "a"},
		{jasonify.TokenValueString, "b"},
		{jasonify.TokenEndArray, ""},
		{jasonify.TokenEndDocument, ""},
	}, got)
}

func TestParser_KeyStateAcrossNesting(t *testing.T) {
	got := tokens(t, `{"k":["x",{"y":"z"},"w"],"k2":"v"}`)
	var kinds []jasonify.Token
	for _, tt := range got {
		kinds = append(kinds, tt.tok)
	}
	assert.Equal(t, []jasonify.Token{
		jasonify.TokenStartObject,
		jasonify.TokenFieldName,
		jasonify.TokenStartArray,
		jasonify.TokenValueString,
		jasonify.TokenStartObject,
		jasonify.TokenFieldName,
		jasonify.TokenValueString,
		jasonify.TokenEndObject,
		jasonify.TokenValueString,
		jasonify.TokenEndArray,
		jasonify.TokenFieldName,
		jasonify.TokenValueString,
		jasonify.TokenEndObject,
		jasonify.TokenEndDocument,
	}, kinds)
}

func TestParser_Escapes(t *testing.T) {
	doc := `"q\" b\\ s\/ \b\f\n\r\t é 😀 plain"`
	p := jasonify.NewParserString(doc)
	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenValueString, tok)

	var want string
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	assert.Equal(t, want, p.Text())
	assert.Equal(t, "q\" b\\ s/ \b\f\n\r\t é 😀 plain", p.Text())
}

func TestParser_LoneSurrogate(t *testing.T) {
	p := jasonify.NewParserString(`"\ud83d!"`)
	_, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "�!", p.Text())
}

func TestParser_Accessors(t *testing.T) {
	p := jasonify.NewParserString(`[127, 128, 255, -1, 3.25, 6.022e23, "AAECAw==", true, 1-2]`)
	_, err := p.Next()
	require.NoError(t, err)

	next := func() {
		t.Helper()
		_, err := p.Next()
		require.NoError(t, err)
	}

	next()
	i, err := p.Int(8)
	require.NoError(t, err)
	assert.Equal(t, int64(127), i)

	next()
	_, err = p.Int(8)
	var ne *jasonify.NumberError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "128", ne.Literal)

	next()
	u, err := p.Uint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(255), u)

	next()
	_, err = p.Uint(64)
	require.Error(t, err)

	next()
	f, err := p.Float(32)
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	next()
	f, err = p.Float(64)
	require.NoError(t, err)
	assert.Equal(t, 6.022e23, f)

	next()
	b, err := p.Base64()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3}, b)

	next()
	assert.True(t, p.Bool())

	next()
	assert.Equal(t, "1-2", p.Text())
	_, err = p.Int(64)
	require.ErrorAs(t, err, &ne)
}

func TestParser_SkipChildren(t *testing.T) {
	p := jasonify.NewParserString(`{"unknownField":{"a":[1,2,{"b":3}]},"known":"v"}`)
	_, err := p.Next()
	require.NoError(t, err)
	_, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "unknownField", p.Text())

	_, err = p.Next()
	require.NoError(t, err)
	require.NoError(t, p.SkipChildren())
	assert.Equal(t, jasonify.TokenEndObject, p.Token())
	assert.Equal(t, 1, p.Depth())

	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenFieldName, tok)
	assert.Equal(t, "known", p.Text())
	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenValueString, tok)
	assert.Equal(t, "v", p.Text())
}

func TestParser_SkipChildrenWrongPosition(t *testing.T) {
	p := jasonify.NewParserString(`"x"`)
	_, err := p.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, p.SkipChildren(), jasonify.ErrSkipPosition)
}

func TestParser_Skip(t *testing.T) {
	p := jasonify.NewParserString(`{"a":[1,[2]],"b":3}`)
	_, err := p.Next()
	require.NoError(t, err)
	_, err = p.Next()
	require.NoError(t, err)

	require.NoError(t, p.Skip())
	assert.Equal(t, jasonify.TokenEndArray, p.Token())

	_, err = p.Next()
	require.NoError(t, err)
	_, err = p.Next()
	require.NoError(t, err)
	require.NoError(t, p.Skip())
	assert.Equal(t, "3", p.Text())

	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenEndObject, tok)
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		doc    string
		offset int64
	}{
		{`{"a":tru}`, 8},
		{`{"a":1]`, 6},
		{`]`, 0},
		{`[1,@]`, 3},
		{`"bad \x escape"`, 6},
		{`"\u12G4"`, 5},
		{`{"id"}`, 5},
		{`{"a","b":1}`, 4},
		{`{"a":1,"b"}`, 10},
		{`{"attrs":{"k"}}`, 13},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			p := jasonify.NewParserString(tt.doc)
			var err error
			for err == nil {
				var tok jasonify.Token
				tok, err = p.Next()
				if tok == jasonify.TokenEndDocument {
					t.Fatalf("expected syntax error")
				}
			}
			var se *jasonify.SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.offset, se.Offset)
			assert.True(t, jasonify.IsSyntaxError(err))

			_, again := p.Next()
			assert.Equal(t, err, again)
		})
	}
}

func TestParser_FieldNameNeedsValue(t *testing.T) {
	p := jasonify.NewParserString(`{"a":{"b":[1]},"c":{}}`)
	var got []jasonify.Token
	for {
		tok, err := p.Next()
		require.NoError(t, err)
		if tok == jasonify.TokenEndDocument {
			break
		}
		got = append(got, tok)
	}
	assert.Len(t, got, 12)
}

func TestParser_UnexpectedToken(t *testing.T) {
	p := jasonify.NewParserString(`{ 12:3}`)
	_, err := p.Next()
	require.NoError(t, err)
	tok, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, jasonify.TokenValueNumber, tok)

	err = p.UnexpectedToken()
	var se *jasonify.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int64(2), se.Offset)
	assert.Contains(t, se.Msg, "VALUE_NUMBER")
	_, again := p.Next()
	assert.Equal(t, err, again)

	p = jasonify.NewParserString(``)
	_, err = p.Next()
	require.NoError(t, err)
	assert.ErrorIs(t, p.UnexpectedToken(), jasonify.ErrUnexpectedEnd)
}

func TestParser_UnterminatedString(t *testing.T) {
	p := jasonify.NewParserString(`["abc`)
	_, err := p.Next()
	require.NoError(t, err)
	_, err = p.Next()
	var se *jasonify.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int64(1), se.Offset)
	assert.Contains(t, se.Error(), "unterminated string")
}

func TestParser_UnexpectedEnd(t *testing.T) {
	p := jasonify.NewParserString(`{"a":[1,2`)
	var err error
	for err == nil {
		_, err = p.Next()
	}
	assert.ErrorIs(t, err, jasonify.ErrUnexpectedEnd)
}

func TestParser_EndDocument(t *testing.T) {
	p := jasonify.NewParserString("  \n")
	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenEndDocument, tok)
	tok, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenEndDocument, tok)
}

func TestParser_MaxDepth(t *testing.T) {
	p := jasonify.NewParserString(`{"a":{"b":{"c":1}}}`, jasonify.WithMaxDepth(2))
	var err error
	for err == nil {
		_, err = p.Next()
	}
	assert.True(t, errors.Is(err, jasonify.ErrMaxDepth))

	assert.Len(t, tokens(t, `[[1]]`, jasonify.WithMaxDepth(2)), 6)
}

func TestParser_Reset(t *testing.T) {
	p := jasonify.NewParserString(`{"a":`)
	for {
		if _, err := p.Next(); err != nil {
			break
		}
	}
	p.Reset([]byte(`[true]`))
	tok, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, jasonify.TokenStartArray, tok)
	assert.Equal(t, 1, p.Depth())
}

func TestParser_MatchesOracle(t *testing.T) {
	doc := `{"id":"o-1","n":[1,2.5,-3],"m":{"x":{"y":[true,null,"é"]}},"e":[],"o":{}}`
	got, err := jasonify.DecodeAnyBytes([]byte(doc))
	require.NoError(t, err)

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &want))
	assert.Equal(t, want, normalize(got))
}

// normalize converts Numbers to float64 the way the oracle decodes them.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	case jasonify.Number:
		f, err := v.Float64()
		if err != nil {
			panic(err)
		}
		return f
	}
	return v
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "VALUE_BOOLEAN", jasonify.TokenValueBool.String())
	assert.Equal(t, "UNKNOWN", jasonify.Token(99).String())
	assert.True(t, jasonify.TokenStartArray.IsStart())
	assert.True(t, jasonify.TokenEndObject.IsEnd())
	assert.True(t, jasonify.TokenNull.IsScalar())
	assert.False(t, jasonify.TokenFieldName.IsScalar())
}

func BenchmarkParser_Tokens(b *testing.B) {
	doc := []byte(`{"id":"ord-1","lines":[{"sku":"a","qty":1},{"sku":"b","qty":2}],"note":"` + strings.Repeat("x", 64) + `"}`)
	p := jasonify.NewParser(nil)
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	for b.Loop() {
		p.Reset(doc)
		for {
			tok, err := p.Next()
			if err != nil {
				b.Fatal(err)
			}
			if tok == jasonify.TokenEndDocument {
				break
			}
		}
	}
}

func BenchmarkGoJSON_Decode(b *testing.B) {
	doc := []byte(`{"id":"ord-1","lines":[{"sku":"a","qty":1},{"sku":"b","qty":2}],"note":"` + strings.Repeat("x", 64) + `"}`)
	b.SetBytes(int64(len(doc)))
	b.ReportAllocs()
	for b.Loop() {
		var v map[string]any
		if err := json.Unmarshal(doc, &v); err != nil {
			b.Fatal(err)
		}
	}
}
