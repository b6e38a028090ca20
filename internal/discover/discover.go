// Package discover finds the struct types to generate codecs for by parsing
// a package directory, and turns their declarations into shape.TypeDecls.
package discover

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/reoring/jasonify/internal/shape"
)

// Directive marks a struct type for generation when it appears in the
// type's doc comment.
const Directive = "//jasonify:json"

// Options controls a scan.
type Options struct {
	// Types selects struct types by name. Empty selects every type carrying
	// Directive.
	Types []string
	// Exclude names files to leave out, typically the generated output.
	Exclude []string
}

// Result is what a scan found.
type Result struct {
	Package string // package name
	Decls   []shape.TypeDecl
	// Aliases maps non-struct named types declared in the package to their
	// underlying type expression, e.g. "Status" -> "string".
	Aliases map[string]string
	// Imports maps package qualifiers used in the package's files to their
	// import paths, e.g. "geo" -> "example.com/maps/geo".
	Imports map[string]string
}

// Package parses the non-test Go files in dir and returns the selected
// struct types in source order. Problems with individual fields are
// reported together; the result still carries everything that parsed.
func Package(dir string, opts Options) (*Result, error) {
	fset := token.NewFileSet()
	filter := func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !slices.Contains(opts.Exclude, name)
	}
	pkgs, err := parser.ParseDir(fset, dir, filter, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("discover: parse %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("discover: no Go package in %s", dir)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("discover: %s holds more than one package", dir)
	}
	var pkg *ast.Package
	for _, p := range pkgs {
		pkg = p
	}

	files := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		files = append(files, name)
	}
	slices.Sort(files)

	s := &scanner{
		fset:     fset,
		res:      &Result{Package: pkg.Name, Aliases: make(map[string]string), Imports: make(map[string]string)},
		methods:  make(map[string]map[string]bool),
		explicit: opts.Types,
	}
	for _, name := range files {
		s.collectMethods(pkg.Files[name])
		s.collectImports(pkg.Files[name])
	}
	for _, name := range files {
		s.collectTypes(pkg.Files[name])
	}
	if len(opts.Types) > 0 {
		s.orderExplicit()
	}
	for i := range s.res.Decls {
		s.resolveAccessors(&s.res.Decls[i])
	}
	Logger().Debug("scanned package",
		zap.String("dir", dir), zap.String("package", pkg.Name),
		zap.Int("types", len(s.res.Decls)), zap.Int("aliases", len(s.res.Aliases)))
	return s.res, s.errs
}

type scanner struct {
	fset     *token.FileSet
	res      *Result
	methods  map[string]map[string]bool // receiver type -> zero-argument single-result methods
	explicit []string
	errs     error
}

func (s *scanner) collectMethods(f *ast.File) {
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 {
			continue
		}
		if fd.Type.Params.NumFields() != 0 || fd.Type.Results.NumFields() != 1 {
			continue
		}
		recv := fd.Recv.List[0].Type
		if star, ok := recv.(*ast.StarExpr); ok {
			recv = star.X
		}
		id, ok := recv.(*ast.Ident)
		if !ok {
			continue
		}
		if s.methods[id.Name] == nil {
			s.methods[id.Name] = make(map[string]bool)
		}
		s.methods[id.Name][fd.Name.Name] = true
	}
}

func (s *scanner) collectImports(f *ast.File) {
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := importName(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		if prev, ok := s.res.Imports[name]; ok && prev != p {
			Logger().Warn("package qualifier imported from two paths",
				zap.String("name", name), zap.String("kept", prev), zap.String("ignored", p))
			continue
		}
		s.res.Imports[name] = p
	}
}

// importName guesses the package name of an unnamed import from its path:
// the last element, skipping a /vN major version directory and a .vN suffix.
func importName(p string) string {
	elems := strings.Split(p, "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && isMajorVersion(name) {
		name = elems[len(elems)-2]
	}
	if base, v, ok := strings.Cut(name, "."); ok && isMajorVersion(v) {
		name = base
	}
	return name
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (s *scanner) collectTypes(f *ast.File) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name == nil || ts.TypeParams != nil {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				if e, err := shape.FromAST(ts.Type); err == nil {
					s.res.Aliases[ts.Name.Name] = e.String()
				}
				continue
			}
			if !s.selected(ts.Name.Name, gd.Doc, ts.Doc) {
				continue
			}
			s.res.Decls = append(s.res.Decls, s.typeDecl(ts.Name.Name, st))
		}
	}
}

func (s *scanner) selected(name string, docs ...*ast.CommentGroup) bool {
	if len(s.explicit) > 0 {
		return slices.Contains(s.explicit, name)
	}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			if strings.TrimSpace(c.Text) == Directive {
				return true
			}
		}
	}
	return false
}

func (s *scanner) typeDecl(name string, st *ast.StructType) shape.TypeDecl {
	d := shape.TypeDecl{ID: s.res.Package + "." + name, Name: name}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			Logger().Warn("skipping embedded field", zap.String("type", name),
				zap.String("pos", s.fset.Position(field.Pos()).String()))
			continue
		}
		rename, ignore := jsonTag(field.Tag)
		typ, err := shape.FromAST(field.Type)
		for _, n := range field.Names {
			if n.Name == "_" {
				continue
			}
			if err != nil && !ignore {
				s.errs = multierr.Append(s.errs, &shape.Issue{Path: name + "." + n.Name,
					Code: shape.CodeUnsupportedType, Message: err.Error()})
				continue
			}
			d.Fields = append(d.Fields, shape.FieldDecl{Name: n.Name, Type: typ, Rename: rename, Ignore: ignore})
		}
	}
	return d
}

// orderExplicit puts explicitly requested types in the requested order and
// reports names that were not found.
func (s *scanner) orderExplicit() {
	byName := make(map[string]shape.TypeDecl, len(s.res.Decls))
	for _, d := range s.res.Decls {
		byName[d.Name] = d
	}
	decls := make([]shape.TypeDecl, 0, len(s.explicit))
	for _, name := range s.explicit {
		d, ok := byName[name]
		if !ok {
			s.errs = multierr.Append(s.errs, fmt.Errorf("discover: struct type %s not found", name))
			continue
		}
		decls = append(decls, d)
	}
	s.res.Decls = decls
}

// resolveAccessors attaches Name() or GetName() to unexported fields of d
// when the type declares one.
func (s *scanner) resolveAccessors(d *shape.TypeDecl) {
	methods := s.methods[d.Name]
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Exported() {
			continue
		}
		upper := capitalize(f.Name)
		for _, m := range []string{upper, "Get" + upper} {
			if methods[m] {
				f.Accessor = m
				break
			}
		}
	}
}

// jsonTag returns the rename and ignore settings of a json struct tag.
// Options after the name are accepted and ignored.
func jsonTag(tag *ast.BasicLit) (rename string, ignore bool) {
	if tag == nil {
		return "", false
	}
	j, ok := reflect.StructTag(strings.Trim(tag.Value, "`")).Lookup("json")
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(j, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
