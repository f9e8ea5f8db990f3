package eval

import (
	"fmt"

	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// Geometric forms.

var axisTags = [3]string{"x", "y", "z"}

// (position (x F) (y F) (z F)), (position E); also center and up.
func evalPosition(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		return evalAs[scene.Position](ev, args[0], argWhat(l, 0))
	}
	if !ev.checkArity(l, 3, 3) {
		return nil, false
	}
	var p scene.Position
	for i, arg := range args {
		f, ok := ev.taggedLiteral(arg, axisTags[i], argWhat(l, i))
		if !ok {
			return nil, false
		}
		p[i] = f
	}
	return p, true
}

// Extracts the number from a tagged literal like (x 1.5). The number must be
// a literal; it is not evaluated.
func (ev *Evaler) taggedLiteral(n parse.Node, tag, what string) (float32, bool) {
	if l, ok := n.(*parse.List); ok && len(l.Elems) == 2 {
		if name, _ := atomName(l.Elems[0]); name == tag {
			switch lit := l.Elems[1].(type) {
			case *parse.Float:
				return lit.Value, true
			case *parse.UInt:
				return float32(lit.Value), true
			}
		}
	}
	ev.report(n, errs.BadValue{
		What: what, Valid: "(" + tag + " NUMBER)", Actual: parse.Repr(n)})
	return 0, false
}

// (vec3 (A B C)), (vec3 E)
func evalVec3(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	arg := l.Args()[0]
	elems, ok := elementList(arg)
	if !ok {
		return evalAs[scene.Vec3](ev, arg, argWhat(l, 0))
	}
	if len(elems) != 3 {
		ev.report(arg, errs.ArityMismatch{
			What: "components of vec3", ValidLow: 3, ValidHigh: 3, Actual: len(elems)})
		return nil, false
	}
	var v scene.Vec3
	for i, elem := range elems {
		f, ok := ev.evalFloat(elem, fmt.Sprintf("component %d of vec3", i+1))
		if !ok {
			return nil, false
		}
		v[i] = f
	}
	return v, true
}

// (color #RRGGBBAA), (color E)
func evalColor(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	return evalAs[scene.Color](ev, l.Args()[0], argWhat(l, 0))
}

// (translate V), (scale V)
func evalTranslateScale(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	return evalAs[scene.Vec3](ev, l.Args()[0], argWhat(l, 0))
}

// (rotate ANGLE AXIS), (rotate E)
func evalRotate(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		return evalAs[scene.Rotate](ev, args[0], argWhat(l, 0))
	}
	if !ev.checkArity(l, 2, 2) {
		return nil, false
	}
	angle, ok := ev.evalFloat(args[0], argWhat(l, 0))
	if !ok {
		return nil, false
	}
	axis, ok := evalAs[scene.Vec3](ev, args[1], argWhat(l, 1))
	if !ok {
		return nil, false
	}
	return scene.Rotate{Angle: angle, Axis: axis}, true
}
