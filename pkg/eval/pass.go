package eval

import (
	"src.tvk.sh/pkg/parse"
)

// PassResult describes the outcome of an evaluation pass.
type PassResult struct {
	// The number of top-level forms that were parsed.
	Forms       int
	ParseErrors []*parse.Error
	Diagnostics []*Error
	// Non-nil if the pass was stopped by a fatal error; always a *FatalError.
	Fatal error
	Mode  Mode
	Env   *Env
	Tree  parse.Tree
}

// OK returns whether the pass finished without any error or diagnostic.
func (r PassResult) OK() bool {
	return len(r.ParseErrors) == 0 && len(r.Diagnostics) == 0 && r.Fatal == nil
}

// Pass parses src and evaluates all of its forms with a new Evaler. The caller
// is responsible for clearing r before the pass if needed.
func Pass(src parse.Source, r Renderer) PassResult {
	tree, parseErr := parse.Parse(src)
	ev := NewEvaler(r)
	fatal := ev.EvalTree(tree)
	res := PassResult{
		Forms:       len(tree.Forms),
		ParseErrors: parse.UnpackErrors(parseErr),
		Diagnostics: ev.Diagnostics(),
		Fatal:       fatal,
		Mode:        ev.Mode(),
		Env:         ev.Env(),
		Tree:        tree,
	}
	logger.Printf("pass %s: %d forms, %d parse errors, %d diagnostics, fatal: %v",
		src.Name, res.Forms, len(res.ParseErrors), len(res.Diagnostics), fatal)
	return res
}
