package shape

import (
	"fmt"

	"go.uber.org/multierr"
)

// Issue codes reported by the Analyzer.
const (
	CodeUnsupportedType    = "unsupported_type"
	CodeUnregisteredObject = "unregistered_object"
	CodeMixedNesting       = "mixed_nesting"
	CodeUnsupportedMapKey  = "unsupported_map_key"
	CodeDuplicateWireName  = "duplicate_wire_name"
)

// Issue is one analysis problem, located by Type.Field path.
type Issue struct {
	Path    string
	Code    string
	Message string
}

func (i *Issue) Error() string { return i.Code + " at " + i.Path + ": " + i.Message }

// Issues splits an error returned by Analyze into its individual issues.
func Issues(err error) []*Issue {
	var out []*Issue
	for _, e := range multierr.Errors(err) {
		if is, ok := e.(*Issue); ok {
			out = append(out, is)
		}
	}
	return out
}

// Analyzer classifies type declarations into shapes.
type Analyzer struct {
	// Aliases maps named types declared next to the analyzed types to the
	// predeclared type underneath, e.g. "Status" -> "string".
	Aliases map[string]string
	// External maps Go type names registered by other packages to their
	// registry identity, e.g. "geo.Point" -> "geo.Point".
	External map[string]string
	// Accessors lets unexported fields take part when they have an accessor.
	Accessors bool
}

// Analyze classifies every field of every declaration. A declaration's own
// name is a registered object for the others, so types may refer to each
// other (and to themselves through pointers or containers). All issues are
// reported together.
func (a *Analyzer) Analyze(decls []TypeDecl) ([]Type, error) {
	registered := make(map[string]string, len(decls)+len(a.External))
	for k, v := range a.External {
		registered[k] = v
	}
	for _, d := range decls {
		registered[d.Name] = d.ID
	}

	var errs error
	types := make([]Type, 0, len(decls))
	for _, d := range decls {
		t := Type{ID: d.ID, Name: d.Name}
		seen := make(map[string]string)
		for _, fd := range d.Fields {
			if fd.Ignore {
				continue
			}
			accessor := ""
			if !fd.Exported() {
				if !a.Accessors || fd.Accessor == "" {
					continue
				}
				accessor = fd.Accessor
			}
			path := d.Name + "." + fd.Name
			s, err := a.classify(fd.Type, registered, path)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if err := checkNesting(s, path); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			wire := fd.Name
			if fd.Rename != "" {
				wire = fd.Rename
			}
			if prev, dup := seen[wire]; dup {
				errs = multierr.Append(errs, &Issue{Path: path, Code: CodeDuplicateWireName,
					Message: fmt.Sprintf("wire name %q already used by %s", wire, prev)})
				continue
			}
			seen[wire] = fd.Name
			t.Fields = append(t.Fields, Field{Name: fd.Name, Wire: wire, Accessor: accessor, Shape: s})
		}
		types = append(types, t)
	}
	if errs != nil {
		return nil, errs
	}
	return types, nil
}

// Classify analyzes a single type expression against a set of registered
// names (Go name -> registry identity).
func (a *Analyzer) Classify(e *Expr, registered map[string]string) (*Shape, error) {
	s, err := a.classify(e, registered, e.String())
	if err != nil {
		return nil, err
	}
	if err := checkNesting(s, e.String()); err != nil {
		return nil, err
	}
	return s, nil
}

// classify applies the classification order: byte sequence, array, list,
// map, registered object, then primitive or string.
func (a *Analyzer) classify(e *Expr, registered map[string]string, path string) (*Shape, error) {
	if e == nil {
		return nil, &Issue{Path: path, Code: CodeUnsupportedType, Message: "missing type"}
	}
	switch e.Kind {
	case ExprSlice:
		if e.Elem.Kind == ExprNamed && (e.Elem.Name == "byte" || e.Elem.Name == "uint8") {
			return &Shape{Kind: Bytes, GoType: e.String()}, nil
		}
		return a.container(List, e, registered, path)
	case ExprArray:
		return a.container(Array, e, registered, path)
	case ExprMap:
		key := a.resolve(e.Key)
		if key.Kind != ExprNamed || key.Name != "string" {
			return nil, &Issue{Path: path, Code: CodeUnsupportedMapKey,
				Message: fmt.Sprintf("map key %s is not a string type", e.Key)}
		}
		s, err := a.container(Map, e, registered, path)
		if err != nil {
			return nil, err
		}
		s.Key = &Shape{Kind: String, GoType: e.Key.String()}
		return s, nil
	case ExprPointer:
		s, err := a.classify(e.Elem, registered, path)
		if err != nil {
			return nil, err
		}
		if s.Pointer || s.IsContainer() || s.Kind == Bytes {
			return nil, &Issue{Path: path, Code: CodeUnsupportedType,
				Message: fmt.Sprintf("pointer to %s is not supported", e.Elem)}
		}
		s.Pointer = true
		return s, nil
	}

	if id, ok := registered[e.Name]; ok {
		return &Shape{Kind: Object, GoType: e.Name, Delegate: true, TypeID: id}, nil
	}
	base := a.resolve(e)
	if base.Kind == ExprSlice && base.Elem.Kind == ExprNamed && (base.Elem.Name == "byte" || base.Elem.Name == "uint8") {
		return &Shape{Kind: Bytes, GoType: e.Name}, nil
	}
	if base.Kind == ExprNamed {
		if base.Name == "string" {
			return &Shape{Kind: String, GoType: e.Name}, nil
		}
		if p, ok := prims[base.Name]; ok {
			return &Shape{Kind: Primitive, Prim: p, GoType: e.Name}, nil
		}
	}
	return nil, &Issue{Path: path, Code: CodeUnregisteredObject,
		Message: fmt.Sprintf("type %s has no codec and is not a supported primitive", e.Name)}
}

func (a *Analyzer) container(kind Kind, e *Expr, registered map[string]string, path string) (*Shape, error) {
	elem, err := a.classify(e.Elem, registered, path)
	if err != nil {
		return nil, err
	}
	s := &Shape{Kind: kind, GoType: e.String(), Len: e.Len, Elem: elem, Depth: 1}
	if elem.Kind == kind {
		s.Depth = elem.Depth + 1
	}
	s.Delegate = s.Leaf().Kind == Object
	return s, nil
}

// resolve follows local aliases for named types.
func (a *Analyzer) resolve(e *Expr) *Expr {
	if e.Kind != ExprNamed {
		return e
	}
	for i := 0; i < 8; i++ {
		target, ok := a.Aliases[e.Name]
		if !ok {
			return e
		}
		next, err := ParseExpr(target)
		if err != nil {
			return e
		}
		if next.Kind != ExprNamed {
			return next
		}
		e = next
	}
	return e
}

// checkNesting rejects shapes that switch container kind more than once,
// e.g. []map[string][]int. One switch ([]map[string]int) is supported.
func checkNesting(s *Shape, path string) error {
	if !s.IsContainer() {
		return nil
	}
	inner := s.Innermost()
	if inner.IsContainer() && inner.Innermost().IsContainer() {
		return &Issue{Path: path, Code: CodeMixedNesting,
			Message: fmt.Sprintf("%s switches container kind more than once", s.GoType)}
	}
	return nil
}
