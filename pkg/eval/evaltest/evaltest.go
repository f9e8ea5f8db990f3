// Package evaltest provides a framework for testing the evaluation of scene
// descriptions.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//		That("(vec3 (1 2 3))").Evals(scene.Vec3{1, 2, 3}),
//		That("(def a 1)", "(draw a)").Diagnoses(
//			"wrong type: argument 1 of draw must be model or vertex-buffer, but is uint"))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/scene"
	"src.tvk.sh/pkg/tt"
)

// Case is a test case that can be used in Test.
type Case struct {
	code   string
	sink   *Sink
	verify func(t *testing.T, ev *eval.Evaler, sink *Sink)
	want   result
}

type result struct {
	Values      []scene.Value
	Drawn       []scene.Value
	Topologies  []scene.Topology
	Diagnostics []string
	Fatal       error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "(color #FF0000FF)" evaluates to red
// reads:
//
//	That("(color #FF0000FF)").Evals(scene.Color{1, 0, 0, 1})
func That(lines ...string) Case {
	return Case{code: strings.Join(lines, "\n")}
}

// WithTextures returns an altered Case whose renderer can load the given
// textures.
func (c Case) WithTextures(textures ...scene.Texture) Case {
	c.sink = NewSink(textures...)
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any effect, for example:
//
//	That("(def a 1)").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Evals returns an altered Case that requires the top-level forms to produce
// the given values. Forms that produce no value are skipped.
func (c Case) Evals(vs ...scene.Value) Case {
	c.want.Values = vs
	return c
}

// Draws returns an altered Case that requires the given drawables to be
// submitted to the renderer, in order.
func (c Case) Draws(vs ...scene.Value) Case {
	c.want.Drawn = vs
	return c
}

// ChangesTopology returns an altered Case that requires the given topology
// changes to be submitted to the renderer, in order.
func (c Case) ChangesTopology(ts ...scene.Topology) Case {
	c.want.Topologies = ts
	return c
}

// Diagnoses returns an altered Case that requires evaluation to record
// diagnostics with the given messages, in order.
func (c Case) Diagnoses(msgs ...string) Case {
	c.want.Diagnostics = msgs
	return c
}

// FailsFatally returns an altered Case that requires evaluation to stop with a
// fatal error wrapping the given error.
func (c Case) FailsFatally(err error) Case {
	c.want.Fatal = err
	return c
}

// Passes returns an altered Case that runs an additional verification
// function.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler, sink *Sink)) Case {
	c.verify = f
	return c
}

// Test runs test cases. For each test case, a new Evaler is created with
// NewEvaler.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Evaler) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Evaler is created
// with NewEvaler and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Evaler), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			t.Helper()
			sink := tc.sink
			if sink == nil {
				sink = NewSink()
			}
			ev := eval.NewEvaler(sink)
			setup(ev)

			r := evalAndCollect(t, ev, tc.code)
			r.Drawn = sink.Drawn
			r.Topologies = sink.Topologies

			if tc.verify != nil {
				tc.verify(t, ev, sink)
			}
			if !cmp.Equal(tc.want.Values, r.Values, tt.CommonCmpOpt) {
				t.Errorf("got values (-want +got):\n%s",
					cmp.Diff(tc.want.Values, r.Values, tt.CommonCmpOpt))
			}
			if !cmp.Equal(tc.want.Drawn, r.Drawn, tt.CommonCmpOpt) {
				t.Errorf("got drawn (-want +got):\n%s",
					cmp.Diff(tc.want.Drawn, r.Drawn, tt.CommonCmpOpt))
			}
			if !cmp.Equal(tc.want.Topologies, r.Topologies, tt.CommonCmpOpt) {
				t.Errorf("got topologies %v, want %v", r.Topologies, tc.want.Topologies)
			}
			if !cmp.Equal(tc.want.Diagnostics, r.Diagnostics, tt.CommonCmpOpt) {
				t.Errorf("got diagnostics (-want +got):\n%s",
					cmp.Diff(tc.want.Diagnostics, r.Diagnostics, tt.CommonCmpOpt))
			}
			if !matchFatal(tc.want.Fatal, r.Fatal) {
				t.Errorf("got fatal error %v, want one wrapping %v", r.Fatal, tc.want.Fatal)
			}
		})
	}
}

func evalAndCollect(t *testing.T, ev *eval.Evaler, code string) result {
	var r result
	tree, err := parse.Parse(parse.SourceForTest(code))
	if err != nil {
		t.Fatalf("Parse(%q) error: %s", code, err)
	}
	ev.SetSource(tree.Source)
	for _, form := range tree.Forms {
		if v, ok := ev.Eval(form); ok {
			r.Values = append(r.Values, v)
		}
	}
	for _, d := range ev.Diagnostics() {
		r.Diagnostics = append(r.Diagnostics, d.Message)
	}
	r.Fatal = ev.Fatal()
	return r
}
