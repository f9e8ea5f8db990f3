// Package eval evaluates parsed scene descriptions.
//
// Evaluation walks each top-level form, producing [scene.Value] values,
// binding names in an [Env] and submitting drawables to a [Renderer]. Apart
// from collaborator failures reported by the renderer, evaluation never
// fails as a whole: a form that cannot be evaluated simply has no value, and
// the reason is recorded as a diagnostic.
package eval

import (
	"fmt"

	"src.tvk.sh/pkg/diag"
	"src.tvk.sh/pkg/eval/errs"
	"src.tvk.sh/pkg/logutil"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
)

var logger = logutil.GetLogger("[eval] ")

// Error is an evaluation diagnostic. It describes why a form had no value.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "eval error" }

// FatalError wraps an error returned by the renderer. It stops the evaluation
// pass.
type FatalError struct {
	Context diag.Context
	Err     error
}

func (e *FatalError) Error() string {
	line, col := e.Context.Position()
	return fmt.Sprintf("fatal error: %s:%d:%d: %v", e.Context.Name, line, col, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// Show shows the error with its context.
func (e *FatalError) Show(indent string) string {
	return "Fatal error: " + e.Err.Error() + "\n" +
		indent + "  " + e.Context.ShowCompact(indent+"  ")
}

// Mode controls how the watch front end reacts to source changes. It is set
// with (config (interpreting-mode NAME)).
type Mode uint8

// Possible values of Mode.
const (
	// Reevaluate the source whenever it changes.
	Continuous Mode = iota
	// Only evaluate the source when explicitly requested.
	Manual
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Evaler evaluates forms against an environment and a renderer.
type Evaler struct {
	env      *Env
	renderer Renderer
	src      parse.Source
	diags    []*Error
	fatal    error
	mode     Mode
}

// NewEvaler creates a new Evaler with an empty environment.
func NewEvaler(r Renderer) *Evaler {
	return &Evaler{env: NewEnv(), renderer: r}
}

// Env returns the environment of the Evaler.
func (ev *Evaler) Env() *Env { return ev.env }

// Diagnostics returns the diagnostics recorded so far.
func (ev *Evaler) Diagnostics() []*Error { return ev.diags }

// Fatal returns the fatal error that stopped evaluation, if any.
func (ev *Evaler) Fatal() error { return ev.fatal }

// Mode returns the interpreting mode last set by a config form.
func (ev *Evaler) Mode() Mode { return ev.mode }

// SetSource sets the source that forms passed to Eval are parsed from. It is
// used to give diagnostics their context.
func (ev *Evaler) SetSource(src parse.Source) { ev.src = src }

// Eval evaluates a top-level form. The second return value is false if the
// form has no value. After a fatal error, Eval does nothing and returns no
// value.
func (ev *Evaler) Eval(form parse.Node) (scene.Value, bool) {
	if ev.fatal != nil {
		return nil, false
	}
	if a, ok := form.(*parse.Atom); ok {
		// A stray identifier at the top level has no effect; it is not worth
		// a diagnostic.
		return ev.env.Lookup(a.Name)
	}
	return ev.eval(form)
}

// EvalTree evaluates all forms of a tree in order. It returns a non-nil error
// only if a fatal error stopped evaluation; it is always a *FatalError.
func (ev *Evaler) EvalTree(tree parse.Tree) error {
	ev.SetSource(tree.Source)
	for _, form := range tree.Forms {
		ev.Eval(form)
		if ev.fatal != nil {
			return ev.fatal
		}
	}
	return nil
}

func (ev *Evaler) eval(n parse.Node) (scene.Value, bool) {
	switch n := n.(type) {
	case *parse.Float:
		return scene.Float(n.Value), true
	case *parse.UInt:
		return scene.UInt(n.Value), true
	case *parse.Color:
		return scene.Color(n.Value), true
	case *parse.Atom:
		v, ok := ev.env.Lookup(n.Name)
		if !ok {
			ev.report(n, errs.Unbound{Name: n.Name})
		}
		return v, ok
	case *parse.List:
		h := handlerFor(n.Head())
		if h == nil {
			ev.report(n.Elems[0], errs.UnknownForm{Head: parse.Repr(n.Elems[0])})
			return nil, false
		}
		return h(ev, n)
	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

// Records a diagnostic at the given range.
func (ev *Evaler) report(r diag.Ranger, err error) {
	ev.diags = append(ev.diags, &Error{Message: err.Error(), Context: ev.context(r)})
}

// Records a fatal error caused by the form at the given range.
func (ev *Evaler) reportFatal(r diag.Ranger, err error) {
	logger.Printf("fatal error at %v: %v", r.Range(), err)
	ev.fatal = &FatalError{Context: ev.context(r), Err: err}
}

func (ev *Evaler) context(r diag.Ranger) diag.Context {
	rg := r.Range()
	if rg.To > len(ev.src.Code) {
		// The form was not parsed from the current source.
		rg = diag.PointRanging(len(ev.src.Code))
	}
	return *diag.NewContext(ev.src.Name, ev.src.Code, rg)
}
