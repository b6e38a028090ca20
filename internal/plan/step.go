package plan

import "github.com/reoring/jasonify"

// Op is one operation of a codec program.
type Op int

const (
	// encode
	OpWriteField     Op = iota // write key Name
	OpStartObject              // writer StartObject
	OpEndObject                // writer EndObject
	OpStartArray               // writer StartArray
	OpEndArray                 // writer EndArray
	OpWriteNull                // writer WriteNull
	OpIfNil                    // Body when Src is nil, Else otherwise
	OpIfNotNil                 // Body when Src is not nil
	OpRange                    // bind Var (and Key for maps) to each element of Src, run Body
	OpWriteKey                 // write map key variable Key as an object key
	OpWriteScalar              // write Src with Scalar.Write
	OpEncodeDelegate           // encode Src with the codec for TypeID and splice it raw

	// decode
	OpNext           // advance the parser; Declare binds fresh tok/err variables
	OpIfToken        // Body when the current token is Token, Else otherwise
	OpSkip           // discard the current value
	OpNewList        // declare Var as an empty Type slice
	OpNewMap         // declare Var as an empty Type map
	OpNewArray       // declare Var as a zero Type array and Index as its fill position
	OpLoop           // advance until Token (END_ARRAY or END_OBJECT), running Body per element
	OpReadKey        // bind Key (of Type) to the current field name
	OpReadScalar     // bind Var to the current value read with Scalar.Read, converted to Scalar.Type
	OpDecodeDelegate // decode with the codec for TypeID, bind Var as *Type and run Body if it is one
	OpStore          // store Src (or nil) into Target
	OpIncr           // increment Var
)

var opNames = [...]string{
	OpWriteField:     "write-field",
	OpStartObject:    "start-object",
	OpEndObject:      "end-object",
	OpStartArray:     "start-array",
	OpEndArray:       "end-array",
	OpWriteNull:      "write-null",
	OpIfNil:          "if-nil",
	OpIfNotNil:       "if-not-nil",
	OpRange:          "range",
	OpWriteKey:       "write-key",
	OpWriteScalar:    "write-scalar",
	OpEncodeDelegate: "encode-delegate",
	OpNext:           "next",
	OpIfToken:        "if-token",
	OpSkip:           "skip",
	OpNewList:        "new-list",
	OpNewMap:         "new-map",
	OpNewArray:       "new-array",
	OpLoop:           "loop",
	OpReadKey:        "read-key",
	OpReadScalar:     "read-scalar",
	OpDecodeDelegate: "decode-delegate",
	OpStore:          "store",
	OpIncr:           "incr",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

// Ref is a value reference. With Var empty it refers to Field of the
// instance being encoded, read through an accessor call when Call is set.
type Ref struct {
	Var   string
	Field string
	Call  bool
	Deref bool // the value behind the pointer
	Addr  bool // the address of the variable
}

// deref returns the value behind r.
func (r Ref) deref() Ref {
	r.Deref = true
	return r
}

// TargetKind selects where a decoded value is stored.
type TargetKind int

const (
	TargetField  TargetKind = iota // instance field Field
	TargetAppend                   // append to slice Var
	TargetMapKey                   // map Var at key Key
	TargetIndex                    // array Var at position Index, if in range
)

// Target is a store destination.
type Target struct {
	Kind  TargetKind
	Field string
	Var   string
	Key   string
	Index string
}

// Step is one operation with its operands. Body and Else hold nested
// programs for the control-flow operations.
type Step struct {
	Op      Op
	Name    string
	Src     Ref
	Var     string
	Key     string
	Index   string
	Type    string
	TypeID  string
	Token   jasonify.Token
	Scalar  *Scalar
	Target  Target
	Nil     bool
	Declare bool
	Body    []Step
	Else    []Step
}

// Walk calls fn for every step in steps, depth first, Body before Else.
func Walk(steps []Step, fn func(depth int, s Step)) {
	walk(steps, 0, fn)
}

func walk(steps []Step, depth int, fn func(int, Step)) {
	for _, s := range steps {
		fn(depth, s)
		walk(s.Body, depth+1, fn)
		walk(s.Else, depth+1, fn)
	}
}
