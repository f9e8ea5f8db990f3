package eval

import (
	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// Forms that bind names or cause side effects. None of them has a value.

// (def NAME EXPR)
func evalDef(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 2, 2) {
		return nil, false
	}
	args := l.Args()
	name, ok := atomName(args[0])
	if !ok {
		ev.report(args[0], errs.BadValue{
			What: "name in def", Valid: "an identifier", Actual: parse.Repr(args[0])})
		return nil, false
	}
	if v, ok := ev.evalArg(args[1], "value of "+name); ok {
		ev.env.Define(name, v)
	}
	return nil, false
}

// (draw D1 D2 ...), where each D is a model or a vertex buffer. Nothing is
// drawn unless all arguments are drawable.
func evalDraw(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, -1) {
		return nil, false
	}
	args := l.Args()
	drawables := make([]scene.Value, 0, len(args))
	allOK := true
	for i, arg := range args {
		v, ok := ev.evalArg(arg, argWhat(l, i))
		if ev.fatal != nil {
			return nil, false
		}
		if !ok {
			allOK = false
			continue
		}
		switch v.(type) {
		case *scene.Model, scene.VertexBuffer:
			drawables = append(drawables, v)
		default:
			ev.report(arg, errs.WrongType{What: argWhat(l, i),
				Valid: []string{"model", "vertex-buffer"}, Actual: v.Kind()})
			allOK = false
		}
	}
	if !allOK {
		return nil, false
	}
	for _, d := range drawables {
		switch d := d.(type) {
		case *scene.Model:
			m := *d
			ev.renderer.ReceiveModel(&m)
		case scene.VertexBuffer:
			ev.renderer.ReceiveVertexBuffer(d)
		}
	}
	return nil, false
}

// (config (primitive NAME) (interpreting-mode NAME) ...). Entries take effect
// only if all of them are valid.
func evalConfig(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, -1) {
		return nil, false
	}
	var topologies []scene.Topology
	mode, modeSet := ev.mode, false
	for _, arg := range l.Args() {
		entry, ok := arg.(*parse.List)
		if !ok || len(entry.Elems) != 2 {
			ev.reportBadConfig(arg)
			return nil, false
		}
		name, ok := atomName(entry.Elems[1])
		if !ok {
			ev.reportBadConfig(arg)
			return nil, false
		}
		switch entry.Head() {
		case parse.KwPrimitive:
			t, ok := scene.ParseTopology(name)
			if !ok {
				ev.report(entry.Elems[1], errs.BadValue{
					What: "primitive", Valid: validTopologies, Actual: name})
				return nil, false
			}
			topologies = append(topologies, t)
		case parse.KwInterpretingMode:
			switch name {
			case "continuous":
				mode = Continuous
			case "manual":
				mode = Manual
			default:
				ev.report(entry.Elems[1], errs.BadValue{
					What: "interpreting-mode", Valid: "continuous or manual", Actual: name})
				return nil, false
			}
			modeSet = true
		default:
			ev.reportBadConfig(arg)
			return nil, false
		}
	}
	for _, t := range topologies {
		ev.renderer.ChangeTopology(t)
	}
	if modeSet {
		ev.mode = mode
	}
	return nil, false
}

func (ev *Evaler) reportBadConfig(n parse.Node) {
	ev.report(n, errs.BadValue{What: "config entry",
		Valid: "(primitive NAME) or (interpreting-mode NAME)", Actual: parse.Repr(n)})
}
