// Package gen renders codec plans as Go source and as inspectable dumps.
package gen

import (
	"fmt"
	"go/format"
	"path"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/reoring/jasonify"
	"github.com/reoring/jasonify/internal/plan"
)

// ImportPath is the runtime package generated code depends on.
const ImportPath = "github.com/reoring/jasonify"

// File is one generated Go file.
type File struct {
	Package string
	Types   []plan.Type
	// Methods adds MarshalJSON and UnmarshalJSON bound to the default
	// registry.
	Methods bool
	// Imports maps package qualifiers to import paths. Every qualifier used
	// by a delegated type, e.g. "geo" in geo.Point, must be present.
	Imports map[string]string
}

// Render returns the formatted source of f.
func Render(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: package name is required")
	}
	imports, err := importsFor(f)
	if err != nil {
		return nil, err
	}
	var p printer
	p.line("// Code generated by jasonify. DO NOT EDIT.")
	p.line("")
	p.line("package %s", f.Package)
	p.line("")
	if len(imports) == 0 {
		p.line("import %q", ImportPath)
	} else {
		p.line("import (")
		p.line("%q", ImportPath)
		p.line("")
		for _, imp := range imports {
			p.line("%s", imp)
		}
		p.line(")")
	}
	p.line("")
	p.line("func init() { jasonify.Install(registerJasonify) }")
	p.line("")
	p.line("func registerJasonify(b *jasonify.Builder) {")
	for _, t := range f.Types {
		p.line("b.Register(%q, encode%s, decode%s)", t.ID, t.Name, t.Name)
	}
	p.line("}")

	for _, t := range f.Types {
		p.line("")
		renderEncoder(&p, t)
		p.line("")
		renderDecoder(&p, t)
		if f.Methods {
			p.line("")
			renderMethods(&p, t)
		}
		Logger().Debug("rendered type", zap.String("type", t.ID), zap.Int("fields", len(t.Fields)))
	}

	src, err := format.Source(p.bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting %s: %w", f.Package, err)
	}
	return src, nil
}

// importsFor returns the import specs for the packages delegated types
// live in, sorted by path.
func importsFor(f File) ([]string, error) {
	var quals []string
	for _, t := range f.Types {
		for _, fl := range t.Fields {
			if q := qualifier(fl.Node); q != "" && !slices.Contains(quals, q) {
				quals = append(quals, q)
			}
		}
	}
	specs := make(map[string]string, len(quals))
	paths := make([]string, 0, len(quals))
	for _, q := range quals {
		p, ok := f.Imports[q]
		if !ok {
			return nil, fmt.Errorf("gen: no import path for package %q", q)
		}
		spec := strconv.Quote(p)
		if path.Base(p) != q {
			spec = q + " " + spec
		}
		if _, dup := specs[p]; !dup {
			paths = append(paths, p)
		}
		specs[p] = spec
	}
	slices.Sort(paths)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, specs[p])
	}
	return out, nil
}

// qualifier returns the package qualifier of the delegated type at the
// bottom of n, or "" for local types and scalars.
func qualifier(n plan.Node) string {
	switch n := n.(type) {
	case *plan.Delegate:
		if q, _, ok := strings.Cut(n.Type, "."); ok {
			return q
		}
	case *plan.Array:
		return qualifier(n.Inner)
	case *plan.List:
		return qualifier(n.Inner)
	case *plan.Map:
		return qualifier(n.Inner)
	}
	return ""
}

func renderEncoder(p *printer, t plan.Type) {
	p.line("func encode%s(r *jasonify.Registry, w *jasonify.Writer, v any) error {", t.Name)
	p.line("var x *%s", t.Name)
	p.line("switch t := v.(type) {")
	p.line("case *%s:", t.Name)
	p.line("x = t")
	p.line("case %s:", t.Name)
	p.line("x = &t")
	p.line("default:")
	p.line("return jasonify.WrongType(%q, v)", t.ID)
	p.line("}")
	p.line("if x == nil {")
	p.line("w.WriteNull()")
	p.line("return nil")
	p.line("}")
	p.line("w.StartObject()")
	for _, f := range t.Fields {
		encodeSteps(p, f.Encode)
	}
	p.line("w.EndObject()")
	p.line("return nil")
	p.line("}")
}

func encodeSteps(p *printer, steps []plan.Step) {
	for _, s := range steps {
		switch s.Op {
		case plan.OpWriteField:
			p.line("w.WriteFieldName(%q)", s.Name)
		case plan.OpStartObject:
			p.line("w.StartObject()")
		case plan.OpEndObject:
			p.line("w.EndObject()")
		case plan.OpStartArray:
			p.line("w.StartArray()")
		case plan.OpEndArray:
			p.line("w.EndArray()")
		case plan.OpWriteNull:
			p.line("w.WriteNull()")
		case plan.OpIfNil:
			p.line("if %s == nil {", ref(s.Src))
			encodeSteps(p, s.Body)
			p.line("} else {")
			encodeSteps(p, s.Else)
			p.line("}")
		case plan.OpIfNotNil:
			p.line("if %s != nil {", ref(s.Src))
			encodeSteps(p, s.Body)
			p.line("}")
		case plan.OpRange:
			if s.Key != "" {
				p.line("for _, %s := range jasonify.SortedKeys(%s) {", s.Key, ref(s.Src))
				p.line("%s := %s[%s]", s.Var, ref(s.Src), s.Key)
			} else {
				p.line("for _, %s := range %s {", s.Var, ref(s.Src))
			}
			encodeSteps(p, s.Body)
			p.line("}")
		case plan.OpWriteKey:
			if s.Type == "string" {
				p.line("w.WriteFieldName(%s)", s.Key)
			} else {
				p.line("w.WriteFieldName(string(%s))", s.Key)
			}
		case plan.OpWriteScalar:
			p.line("w.%s(%s)", s.Scalar.Write, writeArgs(s.Scalar, ref(s.Src)))
		case plan.OpEncodeDelegate:
			p.line("if err := r.EncodeTo(w, %q, %s); err != nil {", s.TypeID, ref(s.Src))
			p.line("return err")
			p.line("}")
		default:
			panic("gen: unexpected encode op " + s.Op.String())
		}
	}
}

func writeArgs(sc *plan.Scalar, v string) string {
	if sc.Conv != "" {
		v = sc.Conv + "(" + v + ")"
	}
	if sc.Write == "WriteFloat" {
		v += ", " + strconv.Itoa(sc.Bits)
	}
	return v
}

func renderDecoder(p *printer, t plan.Type) {
	p.line("func decode%s(r *jasonify.Registry, p *jasonify.Parser) (any, error) {", t.Name)
	p.line("if p.Token() != jasonify.TokenStartObject {")
	p.line("return nil, p.Skip()")
	p.line("}")
	p.line("x := &%s{}", t.Name)
	p.line("for {")
	next(p, true)
	p.line("if tok == jasonify.TokenEndObject {")
	p.line("break")
	p.line("}")
	expectKey(p)
	p.line("switch p.Text() {")
	for _, f := range t.Fields {
		p.line("case %q:", f.Wire)
		decodeSteps(p, f.Decode)
	}
	p.line("default:")
	skip(p)
	p.line("}")
	p.line("}")
	p.line("return x, nil")
	p.line("}")
}

func next(p *printer, declare bool) {
	if declare {
		p.line("tok, err := p.Next()")
	} else {
		p.line("tok, err = p.Next()")
	}
	p.line("if err != nil {")
	p.line("return nil, err")
	p.line("}")
}

// expectKey rejects anything but a field name where an object key belongs.
func expectKey(p *printer) {
	p.line("if tok != jasonify.TokenFieldName {")
	p.line("return nil, p.UnexpectedToken()")
	p.line("}")
}

func skip(p *printer) {
	p.line("if err := p.Skip(); err != nil {")
	p.line("return nil, err")
	p.line("}")
}

func decodeSteps(p *printer, steps []plan.Step) {
	for _, s := range steps {
		switch s.Op {
		case plan.OpNext:
			next(p, s.Declare)
		case plan.OpIfToken:
			ifToken(p, s, "if")
		case plan.OpSkip:
			skip(p)
		case plan.OpNewList, plan.OpNewMap:
			p.line("%s := %s{}", s.Var, s.Type)
		case plan.OpNewArray:
			p.line("var %s %s", s.Var, s.Type)
			p.line("%s := 0", s.Index)
		case plan.OpLoop:
			p.line("for {")
			next(p, true)
			p.line("if tok == jasonify.%s {", tokenName(s.Token))
			p.line("break")
			p.line("}")
			if s.Token == jasonify.TokenEndObject {
				expectKey(p)
			} else {
				p.line("if tok == jasonify.TokenEndDocument {")
				p.line("return nil, jasonify.ErrUnexpectedEnd")
				p.line("}")
			}
			decodeSteps(p, s.Body)
			p.line("}")
		case plan.OpReadKey:
			if s.Type == "string" {
				p.line("%s := p.Text()", s.Key)
			} else {
				p.line("%s := %s(p.Text())", s.Key, s.Type)
			}
		case plan.OpReadScalar:
			readScalar(p, s.Var, s.Scalar)
		case plan.OpDecodeDelegate:
			p.line("raw, err := r.Decode(%q, p)", s.TypeID)
			p.line("if err != nil {")
			p.line("return nil, err")
			p.line("}")
			p.line("if %s, ok := raw.(*%s); ok {", s.Var, s.Type)
			decodeSteps(p, s.Body)
			p.line("}")
		case plan.OpStore:
			store(p, s)
		case plan.OpIncr:
			p.line("%s++", s.Var)
		default:
			panic("gen: unexpected decode op " + s.Op.String())
		}
	}
}

// ifToken renders an IfToken step. A lone Skip or IfToken in Else folds
// into an else-if chain.
func ifToken(p *printer, s plan.Step, kw string) {
	p.line("%s tok == jasonify.%s {", kw, tokenName(s.Token))
	decodeSteps(p, s.Body)
	switch {
	case len(s.Else) == 0:
		p.line("}")
	case len(s.Else) == 1 && s.Else[0].Op == plan.OpSkip:
		p.line("} else if err := p.Skip(); err != nil {")
		p.line("return nil, err")
		p.line("}")
	case len(s.Else) == 1 && s.Else[0].Op == plan.OpIfToken:
		ifToken(p, s.Else[0], "} else if")
	default:
		p.line("} else {")
		decodeSteps(p, s.Else)
		p.line("}")
	}
}

func readScalar(p *printer, v string, sc *plan.Scalar) {
	switch sc.Read {
	case "Text", "Bool":
		if sc.Conv == "" {
			p.line("%s := p.%s()", v, sc.Read)
		} else {
			p.line("%s := %s(p.%s())", v, sc.Type, sc.Read)
		}
		return
	}
	call := "p." + sc.Read + "()"
	if sc.Read != "Base64" {
		call = "p." + sc.Read + "(" + strconv.Itoa(sc.Bits) + ")"
	}
	if sc.Conv == "" {
		p.line("%s, err := %s", v, call)
	} else {
		p.line("raw, err := %s", call)
	}
	p.line("if err != nil {")
	p.line("return nil, err")
	p.line("}")
	if sc.Conv != "" {
		p.line("%s := %s(raw)", v, sc.Type)
	}
}

func store(p *printer, s plan.Step) {
	src := "nil"
	if !s.Nil {
		src = ref(s.Src)
	}
	t := s.Target
	switch t.Kind {
	case plan.TargetField:
		p.line("x.%s = %s", t.Field, src)
	case plan.TargetAppend:
		p.line("%s = append(%s, %s)", t.Var, t.Var, src)
	case plan.TargetMapKey:
		p.line("%s[%s] = %s", t.Var, t.Key, src)
	case plan.TargetIndex:
		p.line("if %s < len(%s) {", t.Index, t.Var)
		p.line("%s[%s] = %s", t.Var, t.Index, src)
		p.line("}")
	}
}

func renderMethods(p *printer, t plan.Type) {
	p.line("// MarshalJSON encodes x with the default jasonify registry.")
	p.line("func (x %s) MarshalJSON() ([]byte, error) {", t.Name)
	p.line("r, err := jasonify.Default()")
	p.line("if err != nil {")
	p.line("return nil, err")
	p.line("}")
	p.line("return r.Encode(%q, x)", t.ID)
	p.line("}")
	p.line("")
	p.line("// UnmarshalJSON decodes data into x with the default jasonify registry.")
	p.line("func (x *%s) UnmarshalJSON(data []byte) error {", t.Name)
	p.line("r, err := jasonify.Default()")
	p.line("if err != nil {")
	p.line("return err")
	p.line("}")
	p.line("v, err := jasonify.Unmarshal[%s](r, %q, data)", t.Name, t.ID)
	p.line("if err != nil {")
	p.line("return err")
	p.line("}")
	p.line("if v != nil {")
	p.line("*x = *v")
	p.line("}")
	p.line("return nil")
	p.line("}")
}

func ref(r plan.Ref) string {
	s := r.Var
	if s == "" {
		s = "x." + r.Field
		if r.Call {
			s += "()"
		}
	}
	switch {
	case r.Deref:
		return "*" + s
	case r.Addr:
		return "&" + s
	}
	return s
}

var tokenNames = map[jasonify.Token]string{
	jasonify.TokenStartObject: "TokenStartObject",
	jasonify.TokenEndObject:   "TokenEndObject",
	jasonify.TokenStartArray:  "TokenStartArray",
	jasonify.TokenEndArray:    "TokenEndArray",
	jasonify.TokenValueString: "TokenValueString",
	jasonify.TokenValueNumber: "TokenValueNumber",
	jasonify.TokenValueBool:   "TokenValueBool",
	jasonify.TokenNull:        "TokenNull",
}

func tokenName(t jasonify.Token) string {
	if n, ok := tokenNames[t]; ok {
		return n
	}
	panic("gen: no generated name for token " + t.String())
}
