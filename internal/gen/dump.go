package gen

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/jasonify/internal/plan"
)

// Dump formats accepted by Dump.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type typeView struct {
	ID     string      `json:"id" yaml:"id"`
	Name   string      `json:"name" yaml:"name"`
	Fields []fieldView `json:"fields" yaml:"fields"`
}

type fieldView struct {
	Name     string     `json:"name" yaml:"name"`
	Wire     string     `json:"wire" yaml:"wire"`
	Accessor string     `json:"accessor,omitempty" yaml:"accessor,omitempty"`
	Node     *nodeView  `json:"node" yaml:"node"`
	Encode   []stepView `json:"encode" yaml:"encode"`
	Decode   []stepView `json:"decode" yaml:"decode"`
}

type nodeView struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Type     string    `json:"type,omitempty" yaml:"type,omitempty"`
	TypeID   string    `json:"typeId,omitempty" yaml:"typeId,omitempty"`
	Pointer  bool      `json:"pointer,omitempty" yaml:"pointer,omitempty"`
	Write    string    `json:"write,omitempty" yaml:"write,omitempty"`
	Read     string    `json:"read,omitempty" yaml:"read,omitempty"`
	Depth    int       `json:"depth,omitempty" yaml:"depth,omitempty"`
	Types    []string  `json:"types,omitempty" yaml:"types,omitempty"`
	Lens     []int     `json:"lens,omitempty" yaml:"lens,omitempty"`
	KeyTypes []string  `json:"keyTypes,omitempty" yaml:"keyTypes,omitempty"`
	Inner    *nodeView `json:"inner,omitempty" yaml:"inner,omitempty"`
}

type stepView struct {
	Op   string     `json:"op" yaml:"op"`
	Args string     `json:"args,omitempty" yaml:"args,omitempty"`
	Body []stepView `json:"body,omitempty" yaml:"body,omitempty"`
	Else []stepView `json:"else,omitempty" yaml:"else,omitempty"`
}

// Dump renders plans for inspection in the given format.
func Dump(types []plan.Type, format string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return dumpText(types), nil
	case FormatJSON:
		out, err := json.MarshalIndent(views(types), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("gen: encoding plan: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(views(types))
		if err != nil {
			return nil, fmt.Errorf("gen: encoding plan: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("gen: unknown dump format %q", format)
}

func views(types []plan.Type) []typeView {
	out := make([]typeView, 0, len(types))
	for _, t := range types {
		tv := typeView{ID: t.ID, Name: t.Name, Fields: []fieldView{}}
		for _, f := range t.Fields {
			tv.Fields = append(tv.Fields, fieldView{
				Name:     f.Name,
				Wire:     f.Wire,
				Accessor: f.Accessor,
				Node:     nodeOf(f.Node),
				Encode:   stepsOf(f.Encode),
				Decode:   stepsOf(f.Decode),
			})
		}
		out = append(out, tv)
	}
	return out
}

func nodeOf(n plan.Node) *nodeView {
	v := &nodeView{Kind: n.Kind().String()}
	layers := func(l *plan.Layers) {
		v.Depth, v.Types, v.Inner = l.Depth, l.Types, nodeOf(l.Inner)
		v.Type = l.Types[0]
	}
	switch n := n.(type) {
	case *plan.Scalar:
		v.Type, v.Pointer, v.Write, v.Read = n.Type, n.Pointer, n.Write, n.Read
	case *plan.Delegate:
		v.Type, v.TypeID, v.Pointer = n.Type, n.TypeID, n.Pointer
	case *plan.Array:
		layers(&n.Layers)
		v.Lens = n.Lens
	case *plan.List:
		layers(&n.Layers)
	case *plan.Map:
		layers(&n.Layers)
		v.KeyTypes = n.KeyTypes
	}
	return v
}

func stepsOf(steps []plan.Step) []stepView {
	if len(steps) == 0 {
		return nil
	}
	out := make([]stepView, 0, len(steps))
	for _, s := range steps {
		out = append(out, stepView{Op: s.Op.String(), Args: args(s), Body: stepsOf(s.Body), Else: stepsOf(s.Else)})
	}
	return out
}

func dumpText(types []plan.Type) []byte {
	var b strings.Builder
	for _, t := range types {
		fmt.Fprintf(&b, "type %s (%s)\n", t.Name, t.ID)
		for _, f := range t.Fields {
			fmt.Fprintf(&b, "  field %s -> %q  %s\n", f.Name, f.Wire, f.Node.Kind())
			for _, dir := range []struct {
				name  string
				steps []plan.Step
			}{{"encode", f.Encode}, {"decode", f.Decode}} {
				fmt.Fprintf(&b, "    %s:\n", dir.name)
				plan.Walk(dir.steps, func(depth int, s plan.Step) {
					b.WriteString(strings.Repeat("  ", depth+3))
					b.WriteString(s.Op.String())
					if a := args(s); a != "" {
						b.WriteByte(' ')
						b.WriteString(a)
					}
					b.WriteByte('\n')
				})
			}
		}
	}
	return []byte(b.String())
}

// args summarizes the operands of s that matter for its op.
func args(s plan.Step) string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	add("name", quoteIf(s.Name))
	if s.Src != (plan.Ref{}) {
		add("src", ref(s.Src))
	}
	add("var", s.Var)
	add("key", s.Key)
	add("index", s.Index)
	add("type", s.Type)
	add("id", s.TypeID)
	if s.Op == plan.OpIfToken || s.Op == plan.OpLoop {
		add("token", s.Token.String())
	}
	if s.Scalar != nil {
		add("call", scalarCall(s))
	}
	if s.Op == plan.OpStore {
		add("target", target(s.Target))
		if s.Nil {
			parts = append(parts, "nil")
		}
	}
	if s.Declare {
		parts = append(parts, "declare")
	}
	return strings.Join(parts, " ")
}

func quoteIf(s string) string {
	if s == "" {
		return ""
	}
	return strconv.Quote(s)
}

func scalarCall(s plan.Step) string {
	if s.Op == plan.OpWriteScalar {
		return s.Scalar.Write
	}
	if s.Scalar.Bits > 0 {
		return s.Scalar.Read + "(" + strconv.Itoa(s.Scalar.Bits) + ")"
	}
	return s.Scalar.Read
}

func target(t plan.Target) string {
	switch t.Kind {
	case plan.TargetField:
		return "x." + t.Field
	case plan.TargetAppend:
		return t.Var + "[+]"
	case plan.TargetMapKey:
		return t.Var + "[" + t.Key + "]"
	case plan.TargetIndex:
		return t.Var + "[" + t.Index + "]"
	}
	return ""
}
