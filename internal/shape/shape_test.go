package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExpr(t *testing.T, src string) *Expr {
	t.Helper()
	e, err := ParseExpr(src)
	require.NoError(t, err)
	return e
}

func TestParseExpr_RoundTrip(t *testing.T) {
	for _, src := range []string{
		"int",
		"geo.Point",
		"[]byte",
		"[4][2]float64",
		"map[string][]*Address",
		"*Order",
	} {
		assert.Equal(t, src, mustExpr(t, src).String())
	}
}

func TestParseExpr_Rejects(t *testing.T) {
	for _, src := range []string{"func()", "chan int", "interface{}", "struct{ X int }", "[n]int"} {
		_, err := ParseExpr(src)
		assert.Error(t, err, src)
	}
}

func TestClassify(t *testing.T) {
	a := &Analyzer{Aliases: map[string]string{"Status": "string", "Level": "uint8", "Blob": "[]byte", "Code": "Status"}}
	registered := map[string]string{"Line": "shop.Line"}

	tests := []struct {
		src   string
		kind  Kind
		prim  Prim
		depth int
	}{
		{src: "string", kind: String},
		{src: "Status", kind: String},
		{src: "Code", kind: String},
		{src: "bool", kind: Primitive, prim: PrimBool},
		{src: "rune", kind: Primitive, prim: PrimInt32},
		{src: "Level", kind: Primitive, prim: PrimUint8},
		{src: "float32", kind: Primitive, prim: PrimFloat32},
		{src: "[]byte", kind: Bytes},
		{src: "[]uint8", kind: Bytes},
		{src: "Blob", kind: Bytes},
		{src: "[4]byte", kind: Array, depth: 1},
		{src: "[][]Line", kind: List, depth: 2},
		{src: "map[string]map[Status]int", kind: Map, depth: 2},
		{src: "[][]byte", kind: List, depth: 1},
		{src: "Line", kind: Object},
		{src: "*Line", kind: Object},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s, err := a.Classify(mustExpr(t, tt.src), registered)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, s.Kind)
			assert.Equal(t, tt.prim, s.Prim)
			assert.Equal(t, tt.depth, s.Depth)
		})
	}
}

func TestClassify_Details(t *testing.T) {
	a := &Analyzer{}
	registered := map[string]string{"Line": "shop.Line"}

	s, err := a.Classify(mustExpr(t, "[][]Line"), registered)
	require.NoError(t, err)
	assert.True(t, s.Delegate)
	assert.Equal(t, "[][]Line", s.GoType)
	assert.Equal(t, "[]Line", s.Elem.GoType)
	assert.Equal(t, 1, s.Elem.Depth)
	assert.Equal(t, "shop.Line", s.Innermost().TypeID)

	s, err = a.Classify(mustExpr(t, "*int"), registered)
	require.NoError(t, err)
	assert.True(t, s.Pointer)
	assert.Equal(t, "*int", s.Decl())
	assert.Equal(t, "int", s.GoType)

	s, err = a.Classify(mustExpr(t, "[]map[string]Line"), registered)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Depth)
	assert.Equal(t, Map, s.Innermost().Kind)
	assert.Equal(t, Object, s.Leaf().Kind)
	assert.True(t, s.Delegate)

	s, err = a.Classify(mustExpr(t, "[]*string"), registered)
	require.NoError(t, err)
	assert.True(t, s.Elem.Pointer)
}

func TestClassify_Errors(t *testing.T) {
	a := &Analyzer{}
	tests := []struct {
		src  string
		code string
	}{
		{src: "Unknown", code: CodeUnregisteredObject},
		{src: "[]Unknown", code: CodeUnregisteredObject},
		{src: "map[int]string", code: CodeUnsupportedMapKey},
		{src: "[]map[string][]int", code: CodeMixedNesting},
		{src: "*[]int", code: CodeUnsupportedType},
		{src: "**int", code: CodeUnsupportedType},
		{src: "*[]byte", code: CodeUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := a.Classify(mustExpr(t, tt.src), nil)
			require.Error(t, err)
			issue, ok := err.(*Issue)
			require.True(t, ok)
			assert.Equal(t, tt.code, issue.Code)
		})
	}
}

func TestAnalyze(t *testing.T) {
	a := &Analyzer{Accessors: true}
	types, err := a.Analyze([]TypeDecl{
		{ID: "shop.Order", Name: "Order", Fields: []FieldDecl{
			{Name: "ID", Type: Named("string"), Rename: "id"},
			{Name: "Lines", Type: SliceOf(Named("Order"))},
			{Name: "Skip", Type: Named("func"), Ignore: true},
			{Name: "secret", Type: Named("string"), Accessor: "Secret"},
			{Name: "hidden", Type: Named("int")},
		}},
	})
	require.NoError(t, err)
	require.Len(t, types, 1)

	fields := types[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "id", fields[0].Wire)
	assert.Equal(t, "Lines", fields[1].Wire)
	assert.Equal(t, "shop.Order", fields[1].Shape.Elem.TypeID)
	assert.Equal(t, "secret", fields[2].Wire)
	assert.Equal(t, "Secret", fields[2].Accessor)
}

func TestAnalyze_AccessorsDisabled(t *testing.T) {
	a := &Analyzer{}
	types, err := a.Analyze([]TypeDecl{{ID: "p.T", Name: "T", Fields: []FieldDecl{
		{Name: "secret", Type: Named("string"), Accessor: "Secret"},
	}}})
	require.NoError(t, err)
	assert.Empty(t, types[0].Fields)
}

func TestAnalyze_External(t *testing.T) {
	a := &Analyzer{External: map[string]string{"geo.Point": "geo.Point"}}
	types, err := a.Analyze([]TypeDecl{{ID: "p.T", Name: "T", Fields: []FieldDecl{
		{Name: "At", Type: Named("geo.Point")},
	}}})
	require.NoError(t, err)
	assert.Equal(t, Object, types[0].Fields[0].Shape.Kind)
	assert.Equal(t, "geo.Point", types[0].Fields[0].Shape.TypeID)
}

func TestAnalyze_ReportsAllIssues(t *testing.T) {
	a := &Analyzer{}
	_, err := a.Analyze([]TypeDecl{
		{ID: "p.A", Name: "A", Fields: []FieldDecl{
			{Name: "X", Type: Named("Missing")},
			{Name: "Y", Type: Named("int"), Rename: "y"},
			{Name: "Z", Type: Named("int"), Rename: "y"},
		}},
		{ID: "p.B", Name: "B", Fields: []FieldDecl{
			{Name: "M", Type: MapOf(Named("int"), Named("int"))},
		}},
	})
	require.Error(t, err)

	issues := Issues(err)
	require.Len(t, issues, 3)
	assert.Equal(t, "A.X", issues[0].Path)
	assert.Equal(t, CodeUnregisteredObject, issues[0].Code)
	assert.Equal(t, "A.Z", issues[1].Path)
	assert.Equal(t, CodeDuplicateWireName, issues[1].Code)
	assert.Equal(t, "B.M", issues[2].Path)
	assert.Equal(t, CodeUnsupportedMapKey, issues[2].Code)
	assert.Contains(t, err.Error(), "duplicate_wire_name at A.Z")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Equal(t, "uint16", PrimUint16.GoName())
	assert.Equal(t, "", PrimNone.GoName())
	assert.Equal(t, 0, PrimInt.BitSize())
	assert.True(t, Map.IsContainer())
	assert.False(t, Bytes.IsContainer())
}
