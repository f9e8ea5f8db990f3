package eval

import (
	"fmt"

	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// Vertices and buffers.

// (vertex POS COLOR), (vertex POS UV), (vertex E)
func evalVertex(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		v, ok := ev.evalArg(args[0], argWhat(l, 0))
		if !ok {
			return nil, false
		}
		switch v.(type) {
		case scene.Vertex, scene.TextureVertex:
			return v, true
		}
		ev.report(args[0], errs.WrongType{What: argWhat(l, 0),
			Valid: []string{"vertex", "texture-vertex"}, Actual: v.Kind()})
		return nil, false
	}
	if !ev.checkArity(l, 2, 2) {
		return nil, false
	}
	pos, ok := evalAs[scene.Position](ev, args[0], argWhat(l, 0))
	if !ok {
		return nil, false
	}
	attr, ok := ev.evalArg(args[1], argWhat(l, 1))
	if !ok {
		return nil, false
	}
	switch attr := attr.(type) {
	case scene.Color:
		return scene.Vertex{Position: pos, Color: attr}, true
	case scene.Position:
		return scene.TextureVertex{Position: pos, UV: [2]float32{attr[0], attr[1]}}, true
	}
	ev.report(args[1], errs.WrongType{What: argWhat(l, 1),
		Valid: []string{"color", "position"}, Actual: attr.Kind()})
	return nil, false
}

// (vertex-buffer (V1 V2 ...)), (vertex-buffer E)
func evalVertexBuffer(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	arg := l.Args()[0]
	elems, ok := elementList(arg)
	if !ok {
		v, ok := ev.evalArg(arg, argWhat(l, 0))
		if !ok {
			return nil, false
		}
		switch v.(type) {
		case scene.VertexBuffer, scene.TexVertexBuffer:
			return v, true
		}
		ev.report(arg, errs.WrongType{What: argWhat(l, 0),
			Valid: []string{"vertex-buffer", "texture-vertex-buffer"}, Actual: v.Kind()})
		return nil, false
	}

	var vb scene.VertexBuffer
	var tvb scene.TexVertexBuffer
	for i, elem := range elems {
		what := fmt.Sprintf("element %d of vertex-buffer", i+1)
		v, ok := ev.evalArg(elem, what)
		if !ok {
			return nil, false
		}
		switch v := v.(type) {
		case scene.Vertex:
			if tvb != nil {
				ev.reportNotHomogeneous(elem, "texture-vertex", v)
				return nil, false
			}
			vb = append(vb, v)
		case scene.TextureVertex:
			if vb != nil {
				ev.reportNotHomogeneous(elem, "vertex", v)
				return nil, false
			}
			tvb = append(tvb, v)
		default:
			ev.report(elem, errs.WrongType{What: what,
				Valid: []string{"vertex", "texture-vertex"}, Actual: v.Kind()})
			return nil, false
		}
	}
	if tvb != nil {
		return tvb, true
	}
	return vb, true
}

func (ev *Evaler) reportNotHomogeneous(n parse.Node, first string, v scene.Value) {
	ev.report(n, errs.NotHomogeneous{
		What: "elements of vertex-buffer", First: first, Actual: v.Kind()})
}

// (index-buffer (I1 I2 ...)), (index-buffer E)
func evalIndexBuffer(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	arg := l.Args()[0]
	elems, ok := elementList(arg)
	if !ok {
		return evalAs[scene.IndexBuffer](ev, arg, argWhat(l, 0))
	}
	ib := make(scene.IndexBuffer, len(elems))
	for i, elem := range elems {
		idx, ok := evalAs[scene.UInt](ev, elem, fmt.Sprintf("element %d of index-buffer", i+1))
		if !ok {
			return nil, false
		}
		ib[i] = uint32(idx)
	}
	return ib, true
}
