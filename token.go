package jasonify

// Token enumerates the JSON tokens produced by Parser.Next. Separators (',' and
// ':') never surface as tokens.
type Token int

const (
	TokenNone Token = iota // no token read yet
	TokenStartObject
	TokenEndObject
	TokenStartArray
	TokenEndArray
	TokenFieldName
	TokenValueString
	TokenValueNumber
	TokenValueBool
	TokenNull
	TokenEndDocument
)

var tokenNames = [...]string{
	TokenNone:        "NONE",
	TokenStartObject: "START_OBJECT",
	TokenEndObject:   "END_OBJECT",
	TokenStartArray:  "START_ARRAY",
	TokenEndArray:    "END_ARRAY",
	TokenFieldName:   "FIELD_NAME",
	TokenValueString: "VALUE_STRING",
	TokenValueNumber: "VALUE_NUMBER",
	TokenValueBool:   "VALUE_BOOLEAN",
	TokenNull:        "NULL",
	TokenEndDocument: "END_DOCUMENT",
}

func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[t]
}

// IsStart reports whether t opens a container.
func (t Token) IsStart() bool { return t == TokenStartObject || t == TokenStartArray }

// IsEnd reports whether t closes a container.
func (t Token) IsEnd() bool { return t == TokenEndObject || t == TokenEndArray }

// IsScalar reports whether t is a single-token value.
func (t Token) IsScalar() bool {
	switch t {
	case TokenValueString, TokenValueNumber, TokenValueBool, TokenNull:
		return true
	}
	return false
}
