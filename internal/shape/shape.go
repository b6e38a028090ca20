// Package shape classifies declared field types into the shapes the codec
// planner understands. It runs once per type, ahead of any encode or decode
// traffic; the results are immutable.
package shape

import "go/token"

// Kind is the classification of a field or element type.
type Kind int

const (
	Invalid Kind = iota
	Primitive
	String
	Bytes
	Array
	List
	Map
	Object       // registered type with its own codec
	Unregistered // named type without a codec; always an analysis error
)

var kindNames = [...]string{
	Invalid:      "invalid",
	Primitive:    "primitive",
	String:       "string",
	Bytes:        "bytes",
	Array:        "array",
	List:         "list",
	Map:          "map",
	Object:       "object",
	Unregistered: "unregistered",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsContainer reports whether k nests other shapes.
func (k Kind) IsContainer() bool { return k == Array || k == List || k == Map }

// Prim is the sub-kind of a Primitive shape.
type Prim int

const (
	PrimNone Prim = iota
	PrimBool
	PrimInt
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimUint
	PrimUint8
	PrimUint16
	PrimUint32
	PrimUint64
	PrimFloat32
	PrimFloat64
)

var prims = map[string]Prim{
	"bool":    PrimBool,
	"int":     PrimInt,
	"int8":    PrimInt8,
	"int16":   PrimInt16,
	"int32":   PrimInt32,
	"rune":    PrimInt32,
	"int64":   PrimInt64,
	"uint":    PrimUint,
	"uint8":   PrimUint8,
	"byte":    PrimUint8,
	"uint16":  PrimUint16,
	"uint32":  PrimUint32,
	"uint64":  PrimUint64,
	"float32": PrimFloat32,
	"float64": PrimFloat64,
}

var primGoNames = [...]string{
	PrimBool:    "bool",
	PrimInt:     "int",
	PrimInt8:    "int8",
	PrimInt16:   "int16",
	PrimInt32:   "int32",
	PrimInt64:   "int64",
	PrimUint:    "uint",
	PrimUint8:   "uint8",
	PrimUint16:  "uint16",
	PrimUint32:  "uint32",
	PrimUint64:  "uint64",
	PrimFloat32: "float32",
	PrimFloat64: "float64",
}

// GoName returns the predeclared Go type for p.
func (p Prim) GoName() string {
	if p <= PrimNone || int(p) >= len(primGoNames) {
		return ""
	}
	return primGoNames[p]
}

// IsSigned reports whether p is a signed integer.
func (p Prim) IsSigned() bool { return p >= PrimInt && p <= PrimInt64 }

// IsUnsigned reports whether p is an unsigned integer.
func (p Prim) IsUnsigned() bool { return p >= PrimUint && p <= PrimUint64 }

// IsFloat reports whether p is a floating point type.
func (p Prim) IsFloat() bool { return p == PrimFloat32 || p == PrimFloat64 }

// BitSize returns the width used for text conversion. Zero means the
// platform int size.
func (p Prim) BitSize() int {
	switch p {
	case PrimInt8, PrimUint8:
		return 8
	case PrimInt16, PrimUint16:
		return 16
	case PrimInt32, PrimUint32, PrimFloat32:
		return 32
	case PrimInt64, PrimUint64, PrimFloat64:
		return 64
	}
	return 0
}

// Shape is the classified form of one type. Container shapes describe a
// single layer; Depth counts how many consecutive layers of the same kind
// start here, so the planner can loop through them uniformly.
type Shape struct {
	Kind     Kind
	Prim     Prim   // Primitive
	GoType   string // spelling of the type without the pointer, e.g. "[][]int32" or "Status"
	Pointer  bool   // the value is held behind a pointer; nil encodes as null
	Len      int    // Array: length of this layer
	Key      *Shape // Map: key shape (always String)
	Elem     *Shape // container element
	Depth    int    // containers: same-kind layers from here down
	Delegate bool   // the innermost element is a registered object
	TypeID   string // Object: registry identity
}

// IsContainer reports whether s is an array, list or map layer.
func (s *Shape) IsContainer() bool { return s != nil && s.Kind.IsContainer() }

// Innermost returns the element below the run of same-kind layers starting
// at s. For non-containers it returns s.
func (s *Shape) Innermost() *Shape {
	cur := s
	for i := 0; i < s.Depth; i++ {
		cur = cur.Elem
	}
	return cur
}

// Leaf follows every container layer, including a kind switch, down to the
// first non-container shape.
func (s *Shape) Leaf() *Shape {
	cur := s
	for cur.IsContainer() {
		cur = cur.Elem
	}
	return cur
}

// Decl returns the Go declaration of the value, pointer included.
func (s *Shape) Decl() string {
	if s.Pointer {
		return "*" + s.GoType
	}
	return s.GoType
}

// TypeDecl is one registered type as handed over by discovery.
type TypeDecl struct {
	ID     string // registry identity, e.g. "example.Order"
	Name   string // Go type name
	Fields []FieldDecl
}

// FieldDecl is one struct field as declared.
type FieldDecl struct {
	Name     string // Go field name
	Type     *Expr
	Rename   string // wire name from the json tag; empty keeps Name
	Ignore   bool   // json:"-"
	Accessor string // zero-argument method returning the field, if any
}

// Exported reports whether the field is accessible outside its package.
func (f FieldDecl) Exported() bool {
	return token.IsExported(f.Name)
}

// Type is an analyzed type: its fields in declaration order, each with a
// resolved wire name and read path.
type Type struct {
	ID     string
	Name   string
	Fields []Field
}

// Field is an analyzed field.
type Field struct {
	Name     string // Go field name, used for decode assignment
	Wire     string // JSON key
	Accessor string // encode reads through this method when set
	Shape    *Shape
}
