package shape

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// ExprKind identifies the syntactic form of a type expression.
type ExprKind int

const (
	ExprNamed   ExprKind = iota // identifier, possibly package-qualified
	ExprSlice                   // []Elem
	ExprArray                   // [Len]Elem
	ExprMap                     // map[Key]Elem
	ExprPointer                 // *Elem
)

// Expr is a declared type as written in source, before classification. The
// discovery step produces it; the Analyzer turns it into a Shape.
type Expr struct {
	Kind ExprKind
	Name string // ExprNamed
	Len  int    // ExprArray
	Key  *Expr  // ExprMap
	Elem *Expr  // ExprSlice, ExprArray, ExprMap, ExprPointer
}

// Named returns an ExprNamed for name.
func Named(name string) *Expr { return &Expr{Kind: ExprNamed, Name: name} }

// SliceOf returns []elem.
func SliceOf(elem *Expr) *Expr { return &Expr{Kind: ExprSlice, Elem: elem} }

// ArrayOf returns [n]elem.
func ArrayOf(n int, elem *Expr) *Expr { return &Expr{Kind: ExprArray, Len: n, Elem: elem} }

// MapOf returns map[key]elem.
func MapOf(key, elem *Expr) *Expr { return &Expr{Kind: ExprMap, Key: key, Elem: elem} }

// PointerTo returns *elem.
func PointerTo(elem *Expr) *Expr { return &Expr{Kind: ExprPointer, Elem: elem} }

// String renders the expression in Go syntax.
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ExprSlice:
		return "[]" + e.Elem.String()
	case ExprArray:
		return "[" + strconv.Itoa(e.Len) + "]" + e.Elem.String()
	case ExprMap:
		return "map[" + e.Key.String() + "]" + e.Elem.String()
	case ExprPointer:
		return "*" + e.Elem.String()
	default:
		return e.Name
	}
}

// ParseExpr parses a Go type expression such as "map[string][]*Address".
func ParseExpr(src string) (*Expr, error) {
	x, err := parser.ParseExpr(strings.TrimSpace(src))
	if err != nil {
		return nil, fmt.Errorf("shape: parse type %q: %w", src, err)
	}
	return FromAST(x)
}

// FromAST converts a go/ast type expression. Interface, func, channel and
// inline struct types have no JSON shape and are rejected.
func FromAST(x ast.Expr) (*Expr, error) {
	switch t := x.(type) {
	case *ast.Ident:
		return Named(t.Name), nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("shape: unsupported qualified type %T", t.X)
		}
		return Named(pkg.Name + "." + t.Sel.Name), nil
	case *ast.ParenExpr:
		return FromAST(t.X)
	case *ast.StarExpr:
		elem, err := FromAST(t.X)
		if err != nil {
			return nil, err
		}
		return PointerTo(elem), nil
	case *ast.ArrayType:
		elem, err := FromAST(t.Elt)
		if err != nil {
			return nil, err
		}
		if t.Len == nil {
			return SliceOf(elem), nil
		}
		lit, ok := t.Len.(*ast.BasicLit)
		if !ok || lit.Kind != token.INT {
			return nil, fmt.Errorf("shape: array length must be an integer literal")
		}
		n, err := strconv.Atoi(lit.Value)
		if err != nil {
			return nil, fmt.Errorf("shape: array length %q: %w", lit.Value, err)
		}
		return ArrayOf(n, elem), nil
	case *ast.MapType:
		key, err := FromAST(t.Key)
		if err != nil {
			return nil, err
		}
		elem, err := FromAST(t.Value)
		if err != nil {
			return nil, err
		}
		return MapOf(key, elem), nil
	}
	return nil, fmt.Errorf("shape: unsupported type expression %T", x)
}
