package eval

import (
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// Camera and transform forms.

// (fovy E), (z-near E), (z-far E) evaluate to the value of E. They only serve
// to label the components of a perspective.
func evalForward(ev *Evaler, l *parse.List) (scene.Value, bool) {
	if !ev.checkArity(l, 1, 1) {
		return nil, false
	}
	return ev.evalArg(l.Args()[0], argWhat(l, 0))
}

// (perspective FOVY ZNEAR ZFAR), (perspective E)
func evalPerspective(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		return ev.evalArg(args[0], argWhat(l, 0))
	}
	if !ev.checkArity(l, 3, 3) {
		return nil, false
	}
	var fs [3]float32
	for i, arg := range args {
		f, ok := ev.evalFloat(arg, argWhat(l, i))
		if !ok {
			return nil, false
		}
		fs[i] = f
	}
	return scene.Perspective{Fovy: fs[0], ZNear: fs[1], ZFar: fs[2]}, true
}

// (camera POSITION CENTER UP PERSPECTIVE), (camera E)
func evalCamera(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		return evalAs[scene.Camera](ev, args[0], argWhat(l, 0))
	}
	if !ev.checkArity(l, 4, 4) {
		return nil, false
	}
	var points [3]scene.Position
	for i := range points {
		p, ok := evalAs[scene.Position](ev, args[i], argWhat(l, i))
		if !ok {
			return nil, false
		}
		points[i] = p
	}
	pers, ok := evalAs[scene.Perspective](ev, args[3], argWhat(l, 3))
	if !ok {
		return nil, false
	}
	return scene.Camera{
		Position: points[0], Center: points[1], Up: points[2],
		Perspective: pers}, true
}

// (transform TRANSLATE SCALE ROTATE), (transform default), (transform E)
func evalTransform(ev *Evaler, l *parse.List) (scene.Value, bool) {
	args := l.Args()
	if len(args) == 1 {
		if name, _ := atomName(args[0]); name == "default" {
			return scene.DefaultTransform, true
		}
		return evalAs[scene.Transform](ev, args[0], argWhat(l, 0))
	}
	if !ev.checkArity(l, 3, 3) {
		return nil, false
	}
	translate, ok := evalAs[scene.Vec3](ev, args[0], argWhat(l, 0))
	if !ok {
		return nil, false
	}
	scale, ok := evalAs[scene.Vec3](ev, args[1], argWhat(l, 1))
	if !ok {
		return nil, false
	}
	rotate, ok := evalAs[scene.Rotate](ev, args[2], argWhat(l, 2))
	if !ok {
		return nil, false
	}
	return scene.Transform{Translate: translate, Scale: scale, Rotate: rotate}, true
}
