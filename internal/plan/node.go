// Package plan turns analyzed shapes into codec plans: a tree describing the
// nesting of each field, and for each direction a structured program of
// writer or parser operations. Back ends render the programs; they never
// re-derive the recursion themselves.
package plan

import (
	"github.com/reoring/jasonify"
	"github.com/reoring/jasonify/internal/shape"
)

// NodeKind tags the plan tree variants.
type NodeKind int

const (
	NodeScalar NodeKind = iota
	NodeDelegate
	NodeArray
	NodeList
	NodeMap
)

var nodeKindNames = [...]string{
	NodeScalar:   "scalar",
	NodeDelegate: "delegate",
	NodeArray:    "array",
	NodeList:     "list",
	NodeMap:      "map",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "unknown"
	}
	return nodeKindNames[k]
}

// Node is a plan tree node.
type Node interface {
	Kind() NodeKind
}

// Scalar is a leaf written and read with one writer/parser primitive.
type Scalar struct {
	Type    string // declared type
	Pointer bool
	// Write names the Writer method; Conv, when set, converts the value to
	// the method's parameter type.
	Write string
	Conv  string
	// Read names the Parser accessor, Basic the type it returns and Bits the
	// width passed to it.
	Read  string
	Basic string
	Bits  int
	// Token is the token the value must arrive as.
	Token jasonify.Token
}

func (*Scalar) Kind() NodeKind { return NodeScalar }

// Delegate is a leaf handled by another registered codec.
type Delegate struct {
	TypeID  string
	Type    string
	Pointer bool
}

func (*Delegate) Kind() NodeKind { return NodeDelegate }

// Layers is a run of Depth consecutive containers of one kind.
type Layers struct {
	Depth int
	Types []string // Go type of each layer, outermost first
	Inner Node     // element below the last layer
}

// Array is a run of fixed-length array layers.
type Array struct {
	Layers
	Lens []int
}

func (*Array) Kind() NodeKind { return NodeArray }

// List is a run of slice layers.
type List struct {
	Layers
}

func (*List) Kind() NodeKind { return NodeList }

// Map is a run of string-keyed map layers.
type Map struct {
	Layers
	KeyTypes []string
}

func (*Map) Kind() NodeKind { return NodeMap }

// NodeFor builds the plan tree for s.
func NodeFor(s *shape.Shape) Node {
	switch s.Kind {
	case shape.Object:
		return &Delegate{TypeID: s.TypeID, Type: s.GoType, Pointer: s.Pointer}
	case shape.Array, shape.List, shape.Map:
		return containerFor(s)
	}
	return scalarFor(s)
}

func containerFor(s *shape.Shape) Node {
	l := Layers{Depth: s.Depth}
	var lens []int
	var keys []string
	cur := s
	for i := 0; i < s.Depth; i++ {
		l.Types = append(l.Types, cur.GoType)
		lens = append(lens, cur.Len)
		if cur.Key != nil {
			keys = append(keys, cur.Key.GoType)
		}
		cur = cur.Elem
	}
	l.Inner = NodeFor(cur)
	switch s.Kind {
	case shape.Array:
		return &Array{Layers: l, Lens: lens}
	case shape.Map:
		return &Map{Layers: l, KeyTypes: keys}
	}
	return &List{Layers: l}
}

func scalarFor(s *shape.Shape) *Scalar {
	sc := &Scalar{Type: s.GoType, Pointer: s.Pointer}
	switch {
	case s.Kind == shape.String:
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteString", "Text", "string", jasonify.TokenValueString
	case s.Kind == shape.Bytes:
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteBase64", "Base64", "[]byte", jasonify.TokenValueString
	case s.Prim == shape.PrimBool:
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteBool", "Bool", "bool", jasonify.TokenValueBool
	case s.Prim.IsSigned():
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteInt", "Int", "int64", jasonify.TokenValueNumber
		sc.Bits = s.Prim.BitSize()
	case s.Prim.IsUnsigned():
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteUint", "Uint", "uint64", jasonify.TokenValueNumber
		sc.Bits = s.Prim.BitSize()
	case s.Prim.IsFloat():
		sc.Write, sc.Read, sc.Basic, sc.Token = "WriteFloat", "Float", "float64", jasonify.TokenValueNumber
		sc.Bits = s.Prim.BitSize()
	}
	if sc.Type != sc.Basic {
		sc.Conv = sc.Basic
	}
	return sc
}
