package eval

import (
	"fmt"

	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

// A handler evaluates a list form whose head is a keyword.
type handler func(ev *Evaler, l *parse.List) (scene.Value, bool)

// Returns the handler for a keyword, or nil if the keyword does not start a
// form.
func handlerFor(kw parse.Keyword) handler {
	switch kw {
	case parse.KwDef:
		return evalDef
	case parse.KwPosition, parse.KwCenter, parse.KwUp:
		return evalPosition
	case parse.KwVec3:
		return evalVec3
	case parse.KwColor:
		return evalColor
	case parse.KwVertex:
		return evalVertex
	case parse.KwVertexBuffer:
		return evalVertexBuffer
	case parse.KwIndexBuffer:
		return evalIndexBuffer
	case parse.KwFovy, parse.KwZNear, parse.KwZFar:
		return evalForward
	case parse.KwPerspective:
		return evalPerspective
	case parse.KwCamera:
		return evalCamera
	case parse.KwTransform:
		return evalTransform
	case parse.KwTranslate, parse.KwScale:
		return evalTranslateScale
	case parse.KwRotate:
		return evalRotate
	case parse.KwTopology:
		return evalTopology
	case parse.KwModel:
		return evalModel
	case parse.KwTexture:
		return evalTexture
	case parse.KwDraw:
		return evalDraw
	case parse.KwConfig:
		return evalConfig
	default:
		// KwNone, and keywords that are only meaningful inside other forms.
		return nil
	}
}

// Checks that the number of arguments is between low and high. A high of -1
// means there is no upper bound.
func (ev *Evaler) checkArity(l *parse.List, low, high int) bool {
	n := len(l.Args())
	if n < low || (high != -1 && n > high) {
		ev.report(l, errs.ArityMismatch{
			What:     "arguments to " + l.Head().String(),
			ValidLow: low, ValidHigh: high, Actual: n})
		return false
	}
	return true
}

func argWhat(l *parse.List, i int) string {
	return fmt.Sprintf("argument %d of %s", i+1, l.Head())
}

// Evaluates n, which must produce a value. If it does not, and the reason has
// not been recorded already, a diagnostic is recorded at n.
func (ev *Evaler) evalArg(n parse.Node, what string) (scene.Value, bool) {
	before := len(ev.diags)
	v, ok := ev.eval(n)
	if !ok && len(ev.diags) == before && ev.fatal == nil {
		ev.report(n, errs.NoValue{What: what})
	}
	return v, ok
}

// Evaluates n, which must produce a value of type T.
func evalAs[T scene.Value](ev *Evaler, n parse.Node, what string) (T, bool) {
	var zero T
	v, ok := ev.evalArg(n, what)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		ev.report(n, errs.WrongType{
			What: what, Valid: []string{zero.Kind()}, Actual: v.Kind()})
		return zero, false
	}
	return t, true
}

// Evaluates n, which must produce a float. UInt values are converted.
func (ev *Evaler) evalFloat(n parse.Node, what string) (float32, bool) {
	v, ok := ev.evalArg(n, what)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case scene.Float:
		return float32(v), true
	case scene.UInt:
		return float32(v), true
	}
	ev.report(n, errs.WrongType{
		What: what, Valid: []string{"float", "uint"}, Actual: v.Kind()})
	return 0, false
}

// Returns the elements of n if it is a list. Every element of the list is
// evaluated on its own, even when the first one is an atom that names a form.
func elementList(n parse.Node) ([]parse.Node, bool) {
	if l, ok := n.(*parse.List); ok {
		return l.Elems, true
	}
	return nil, false
}

// Returns the name of n if it is an atom.
func atomName(n parse.Node) (string, bool) {
	if a, ok := n.(*parse.Atom); ok {
		return a.Name, true
	}
	return "", false
}
