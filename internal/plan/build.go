package plan

import (
	"strconv"

	"github.com/reoring/jasonify"
	"github.com/reoring/jasonify/internal/shape"
)

// Type is the codec plan for one registered type.
type Type struct {
	ID     string
	Name   string
	Fields []Field
}

// Field is the plan for one field: its tree and the encode and decode
// programs derived from it.
type Field struct {
	Name     string
	Wire     string
	Accessor string
	Node     Node
	Encode   []Step
	Decode   []Step
}

// Build plans every field of t.
func Build(t shape.Type) Type {
	pt := Type{ID: t.ID, Name: t.Name}
	for _, f := range t.Fields {
		pt.Fields = append(pt.Fields, BuildField(f))
	}
	return pt
}

// BuildAll plans every type in ts.
func BuildAll(ts []shape.Type) []Type {
	out := make([]Type, 0, len(ts))
	for _, t := range ts {
		out = append(out, Build(t))
	}
	return out
}

// BuildField plans a single field.
func BuildField(f shape.Field) Field {
	n := NodeFor(f.Shape)
	src := Ref{Field: f.Name, Call: f.Accessor != ""}
	if src.Call {
		src.Field = f.Accessor
	}
	return Field{
		Name:     f.Name,
		Wire:     f.Wire,
		Accessor: f.Accessor,
		Node:     n,
		Encode:   EncodeSteps(f.Wire, n, src),
		Decode:   DecodeSteps(n, Target{Kind: TargetField, Field: f.Name}),
	}
}

// EncodeSteps returns the program writing key wire followed by the value
// at src.
func EncodeSteps(wire string, n Node, src Ref) []Step {
	var e encoder
	steps := []Step{{Op: OpWriteField, Name: wire}}
	return append(steps, e.value(n, src)...)
}

// DecodeSteps returns the program run after a field name matched: advance
// to the value and store it into dst, or skip it.
func DecodeSteps(n Node, dst Target) []Step {
	var d decoder
	steps := []Step{{Op: OpNext, Declare: true}}
	return append(steps, d.value(n, dst)...)
}

// encoder numbers the variables bound by nested loops so every layer gets
// its own.
type encoder struct{ next int }

func (e *encoder) value(n Node, src Ref) []Step {
	switch n := n.(type) {
	case *Scalar:
		write := func(r Ref) Step { return Step{Op: OpWriteScalar, Src: r, Scalar: n} }
		if n.Pointer {
			return []Step{{Op: OpIfNil, Src: src,
				Body: []Step{{Op: OpWriteNull}},
				Else: []Step{write(src.deref())}}}
		}
		return []Step{write(src)}
	case *Delegate:
		enc := Step{Op: OpEncodeDelegate, Src: src, TypeID: n.TypeID, Type: n.Type}
		if n.Pointer {
			return []Step{{Op: OpIfNil, Src: src,
				Body: []Step{{Op: OpWriteNull}},
				Else: []Step{enc}}}
		}
		return []Step{enc}
	case *Array:
		return e.layer(NodeArray, &n.Layers, nil, 0, src)
	case *List:
		return e.layer(NodeList, &n.Layers, nil, 0, src)
	case *Map:
		return e.layer(NodeMap, &n.Layers, n.KeyTypes, 0, src)
	}
	return nil
}

// layer emits layer i of a same-kind run: open the container, guard against
// a nil container, loop over its elements recursing into layer i+1 or the
// inner element, then close the container.
func (e *encoder) layer(kind NodeKind, l *Layers, keyTypes []string, i int, src Ref) []Step {
	d := strconv.Itoa(e.next)
	e.next++
	v := "v" + d

	rng := Step{Op: OpRange, Src: src, Var: v}
	if kind == NodeMap {
		rng.Key = "k" + d
		rng.Type = l.Types[i]
		rng.Body = append(rng.Body, Step{Op: OpWriteKey, Key: rng.Key, Type: keyTypes[i]})
	}
	if i+1 < l.Depth {
		rng.Body = append(rng.Body, e.layer(kind, l, keyTypes, i+1, Ref{Var: v})...)
	} else {
		rng.Body = append(rng.Body, e.value(l.Inner, Ref{Var: v})...)
	}

	open, closing := Step{Op: OpStartArray}, Step{Op: OpEndArray}
	if kind == NodeMap {
		open, closing = Step{Op: OpStartObject}, Step{Op: OpEndObject}
	}
	if kind == NodeArray {
		return []Step{open, rng, closing}
	}
	return []Step{open, {Op: OpIfNotNil, Src: src, Body: []Step{rng}}, closing}
}

type decoder struct{ next int }

func (d *decoder) value(n Node, dst Target) []Step {
	switch n := n.(type) {
	case *Scalar:
		v := d.name("v")
		return []Step{{Op: OpIfToken, Token: n.Token,
			Body: []Step{
				{Op: OpReadScalar, Var: v, Scalar: n},
				{Op: OpStore, Target: dst, Src: Ref{Var: v, Addr: n.Pointer}},
			},
			Else: mismatch(n.Pointer, dst)}}
	case *Delegate:
		v := d.name("v")
		return []Step{{Op: OpIfToken, Token: jasonify.TokenStartObject,
			Body: []Step{{Op: OpDecodeDelegate, Var: v, TypeID: n.TypeID, Type: n.Type,
				Body: []Step{{Op: OpStore, Target: dst, Src: Ref{Var: v, Deref: !n.Pointer}}}}},
			Else: mismatch(n.Pointer, dst)}}
	case *Array:
		return d.layer(NodeArray, &n.Layers, nil, 0, dst)
	case *List:
		return d.layer(NodeList, &n.Layers, nil, 0, dst)
	case *Map:
		return d.layer(NodeMap, &n.Layers, n.KeyTypes, 0, dst)
	}
	return nil
}

// layer emits layer i of a same-kind run: on the matching start token,
// allocate the layer, fill it element by element until the end token
// (recursing into layer i+1 or the inner element), then store it into dst.
// Any other token skips the value and leaves dst untouched.
func (d *decoder) layer(kind NodeKind, l *Layers, keyTypes []string, i int, dst Target) []Step {
	n := strconv.Itoa(d.next)
	d.next++

	var alloc Step
	var elem Target
	var body []Step
	start, end := jasonify.TokenStartArray, jasonify.TokenEndArray
	switch kind {
	case NodeList:
		alloc = Step{Op: OpNewList, Var: "list" + n, Type: l.Types[i]}
		elem = Target{Kind: TargetAppend, Var: alloc.Var}
	case NodeArray:
		alloc = Step{Op: OpNewArray, Var: "arr" + n, Index: "n" + n, Type: l.Types[i]}
		elem = Target{Kind: TargetIndex, Var: alloc.Var, Index: alloc.Index}
	case NodeMap:
		start, end = jasonify.TokenStartObject, jasonify.TokenEndObject
		alloc = Step{Op: OpNewMap, Var: "map" + n, Type: l.Types[i]}
		elem = Target{Kind: TargetMapKey, Var: alloc.Var, Key: "k" + n}
		body = append(body,
			Step{Op: OpReadKey, Key: elem.Key, Type: keyTypes[i]},
			Step{Op: OpNext})
	}

	if i+1 < l.Depth {
		body = append(body, d.layer(kind, l, keyTypes, i+1, elem)...)
	} else {
		body = append(body, d.value(l.Inner, elem)...)
	}
	if kind == NodeArray {
		body = append(body, Step{Op: OpIncr, Var: alloc.Index})
	}

	return []Step{{Op: OpIfToken, Token: start,
		Body: []Step{
			alloc,
			{Op: OpLoop, Token: end, Body: body},
			{Op: OpStore, Target: dst, Src: Ref{Var: alloc.Var}},
		},
		Else: []Step{{Op: OpSkip}}}}
}

func (d *decoder) name(prefix string) string {
	s := prefix + strconv.Itoa(d.next)
	d.next++
	return s
}

// mismatch is the fallback for a leaf whose token is not the expected one:
// a pointer leaf stores nil for null, everything else is skipped.
func mismatch(pointer bool, dst Target) []Step {
	if !pointer {
		return []Step{{Op: OpSkip}}
	}
	return []Step{{Op: OpIfToken, Token: jasonify.TokenNull,
		Body: []Step{{Op: OpStore, Target: dst, Nil: true}},
		Else: []Step{{Op: OpSkip}}}}
}
