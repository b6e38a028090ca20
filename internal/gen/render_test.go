package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/reoring/jasonify/internal/plan"
	"github.com/reoring/jasonify/internal/shape"
)

func fieldDecl(name, typ, rename string) shape.FieldDecl {
	e, err := shape.ParseExpr(typ)
	if err != nil {
		panic(err)
	}
	return shape.FieldDecl{Name: name, Type: e, Rename: rename}
}

func samplePlans(t *testing.T) []plan.Type {
	t.Helper()
	a := &shape.Analyzer{Aliases: map[string]string{"Status": "string", "Blob": "[]byte"}}
	types, err := a.Analyze([]shape.TypeDecl{
		{ID: "shop.Line", Name: "Line", Fields: []shape.FieldDecl{
			fieldDecl("SKU", "string", "sku"),
			fieldDecl("Qty", "int32", "qty"),
		}},
		{ID: "shop.Order", Name: "Order", Fields: []shape.FieldDecl{
			fieldDecl("ID", "string", "id"),
			fieldDecl("Status", "Status", "status"),
			fieldDecl("Lines", "[]Line", "lines"),
			fieldDecl("Batches", "[][]Line", "batches"),
			fieldDecl("Attrs", "map[string]string", "attrs"),
			fieldDecl("Sum", "[4]byte", "sum"),
			fieldDecl("Payload", "Blob", "payload"),
			fieldDecl("Note", "*string", "note"),
			fieldDecl("Parent", "*Order", "parent"),
			fieldDecl("Price", "float32", "price"),
		}},
	})
	require.NoError(t, err)
	return plan.BuildAll(types)
}

func TestRender_ParsesAndRegisters(t *testing.T) {
	src, err := Render(File{Package: "shop", Types: samplePlans(t), Methods: true})
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "zz_jasonify.go", src, parser.AllErrors)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by jasonify. DO NOT EDIT.\n"))
	for _, want := range []string{
		`import "github.com/reoring/jasonify"`,
		`b.Register("shop.Line", encodeLine, decodeLine)`,
		`b.Register("shop.Order", encodeOrder, decodeOrder)`,
		`func encodeOrder(r *jasonify.Registry, w *jasonify.Writer, v any) error {`,
		`func decodeOrder(r *jasonify.Registry, p *jasonify.Parser) (any, error) {`,
		`return jasonify.WrongType("shop.Order", v)`,
		`func (x Order) MarshalJSON() ([]byte, error) {`,
		`func (x *Order) UnmarshalJSON(data []byte) error {`,
		`v, err := jasonify.Unmarshal[Order](r, "shop.Order", data)`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_EncodeStatements(t *testing.T) {
	src, err := Render(File{Package: "shop", Types: samplePlans(t)})
	require.NoError(t, err)
	out := string(src)

	for _, want := range []string{
		`w.WriteFieldName("sku")`,
		`w.WriteString(x.SKU)`,
		`w.WriteInt(int64(x.Qty))`,
		`w.WriteString(string(x.Status))`,
		`for _, v0 := range x.Lines {`,
		`if err := r.EncodeTo(w, "shop.Line", v0); err != nil {`,
		`for _, k0 := range jasonify.SortedKeys(x.Attrs) {`,
		`v0 := x.Attrs[k0]`,
		`w.WriteFieldName(k0)`,
		`w.WriteUint(uint64(v0))`,
		`w.WriteBase64([]byte(x.Payload))`,
		`if x.Note == nil {`,
		`w.WriteString(*x.Note)`,
		`if err := r.EncodeTo(w, "shop.Order", x.Parent); err != nil {`,
		`w.WriteFloat(float64(x.Price), 32)`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "MarshalJSON")
}

func TestRender_DecodeStatements(t *testing.T) {
	src, err := Render(File{Package: "shop", Types: samplePlans(t)})
	require.NoError(t, err)
	out := string(src)

	for _, want := range []string{
		`case "sku":`,
		`if tok == jasonify.TokenValueString {`,
		`raw, err := p.Int(32)`,
		`v0 := int32(raw)`,
		`v0 := Status(p.Text())`,
		`list0 := []Line{}`,
		`list0 = append(list0, *v1)`,
		`list1 := []Line{}`,
		`list0 = append(list0, list1)`,
		`map0 := map[string]string{}`,
		`k0 := p.Text()`,
		`tok, err = p.Next()`,
		`map0[k0] = v1`,
		`var arr0 [4]byte`,
		`if n0 < len(arr0) {`,
		`arr0[n0] = v1`,
		`n0++`,
		`v0 := Blob(raw)`,
		`x.Note = &v0`,
		`} else if tok == jasonify.TokenNull {`,
		`x.Note = nil`,
		`raw, err := r.Decode("shop.Order", p)`,
		`if v0, ok := raw.(*Order); ok {`,
		`x.Parent = v0`,
		`} else if err := p.Skip(); err != nil {`,
		`if tok != jasonify.TokenFieldName {`,
		`return nil, p.UnexpectedToken()`,
		`if tok == jasonify.TokenEndDocument {`,
		`return nil, jasonify.ErrUnexpectedEnd`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_RequiresPackage(t *testing.T) {
	_, err := Render(File{})
	require.Error(t, err)
}

func TestRender_LogsPerType(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	_, err := Render(File{Package: "shop", Types: samplePlans(t)})
	require.NoError(t, err)
	assert.Equal(t, 2, logs.FilterMessage("rendered type").Len())
}

func TestDump_Formats(t *testing.T) {
	plans := samplePlans(t)

	text, err := Dump(plans, FormatText)
	require.NoError(t, err)
	assert.Contains(t, string(text), "type Order (shop.Order)")
	assert.Contains(t, string(text), `write-field name="lines"`)
	assert.Contains(t, string(text), "decode-delegate var=v1 type=Line id=shop.Line")

	raw, err := Dump(plans, FormatJSON)
	require.NoError(t, err)
	var fromJSON []typeView
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	require.Len(t, fromJSON, 2)
	batches := fromJSON[1].Fields[3]
	assert.Equal(t, "batches", batches.Wire)
	assert.Equal(t, "list", batches.Node.Kind)
	assert.Equal(t, 2, batches.Node.Depth)
	assert.Equal(t, "delegate", batches.Node.Inner.Kind)

	raw, err = Dump(plans, FormatYAML)
	require.NoError(t, err)
	var fromYAML []typeView
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)

	_, err = Dump(plans, "xml")
	require.Error(t, err)
}
