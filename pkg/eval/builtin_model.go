package eval

import (
	"fmt"

	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// Models and the forms only used to build them.

const validTopologies = "one of point-list, line-list, line-strip, " +
	"triangle-list, triangle-strip or default"

// (topology NAME), (topology E)
func evalTopology(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	arg := l.Args()[0]
	name, ok := atomName(arg)
	if !ok {
		return evalAs[scene.Topology](ev, arg, argWhat(l, 0))
	}
	if t, ok := scene.ParseTopology(name); ok {
		return t, true
	}
	if v, ok := ev.env.Lookup(name); ok {
		if t, ok := v.(scene.Topology); ok {
			return t, true
		}
	}
	ev.report(arg, errs.BadValue{What: "topology name", Valid: validTopologies, Actual: name})
	return nil, false
}

// (texture NAME)
func evalTexture(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	arg := l.Args()[0]
	name, ok := atomName(arg)
	if !ok {
		ev.report(arg, errs.BadValue{
			What: "texture name", Valid: "an identifier", Actual: parse.Repr(arg)})
		return nil, false
	}
	tex, err := ev.renderer.LoadTextureImage(name)
	if err != nil {
		ev.reportFatal(l, fmt.Errorf("load texture %s: %w", name, err))
		return nil, false
	}
	if tex.Name == "" {
		tex.Name = name
	}
	return tex, true
}

// (model VB IB TOPOLOGY TRANSFORM CAMERA), where VB is a vertex buffer, or
// (model VB IB TOPOLOGY TRANSFORM CAMERA TEXTURE), where VB is a texture
// vertex buffer. Arguments are evaluated from left to right, stopping at the
// first one that fails.
func evalModel(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 5, 6) {
		return nil, false
	}
	args := l.Args()
	textured := len(args) == 6
	m := &scene.Model{}
	var ok bool
	if textured {
		m.TexVertices, ok = evalAs[scene.TexVertexBuffer](ev, args[0], argWhat(l, 0))
	} else {
		m.Vertices, ok = evalAs[scene.VertexBuffer](ev, args[0], argWhat(l, 0))
	}
	if !ok {
		return nil, false
	}
	if m.Indices, ok = evalAs[scene.IndexBuffer](ev, args[1], argWhat(l, 1)); !ok {
		return nil, false
	}
	if m.Topology, ok = evalAs[scene.Topology](ev, args[2], argWhat(l, 2)); !ok {
		return nil, false
	}
	if m.Transform, ok = evalAs[scene.Transform](ev, args[3], argWhat(l, 3)); !ok {
		return nil, false
	}
	if m.Camera, ok = evalAs[scene.Camera](ev, args[4], argWhat(l, 4)); !ok {
		return nil, false
	}
	if textured {
		tex, ok := evalAs[scene.Texture](ev, args[5], argWhat(l, 5))
		if !ok {
			return nil, false
		}
		m.Texture = &tex
	}
	return m, true
}
