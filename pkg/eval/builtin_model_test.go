package eval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.tvk.sh/pkg/eval"
	. "src.tvk.sh/pkg/eval/evaltest"
	"src.tvk.sh/pkg/scene"
)

func TestTopology(t *testing.T) {
	Test(t,
		That("(topology point-list)").Evals(scene.PointList),
		That("(topology line-list)").Evals(scene.LineList),
		That("(topology line-strip)").Evals(scene.LineStrip),
		That("(topology triangle-list)").Evals(scene.TriangleList),
		That("(topology triangle-strip)").Evals(scene.TriangleStrip),
		That("(topology default)").Evals(scene.TriangleList),
		That("(def t (topology line-list))", "(topology t)").Evals(scene.LineList),

		That("(topology triangle-fan)").Diagnoses(
			"bad value: topology name must be one of point-list, line-list, " +
				"line-strip, triangle-list, triangle-strip or default, but is triangle-fan"),
		That("(topology 1)").Diagnoses(
			"wrong type: argument 1 of topology must be topology, but is uint"),
	)
}

func TestTexture(t *testing.T) {
	Test(t,
		That("(texture brick)").WithTextures(brick).Evals(brick),
		That("(texture missing)").FailsFatally(ErrNoTexture),
		That("(texture 1)").Diagnoses(
			"bad value: texture name must be an identifier, but is 1"),
	)
}

func TestModel(t *testing.T) {
	model := &scene.Model{
		Vertices: vb, Indices: ib, Topology: scene.LineList,
		Transform: scene.DefaultTransform, Camera: scene.DefaultCamera()}
	texturedBrick := brick
	textured := &scene.Model{
		TexVertices: tvb, Indices: ib, Topology: scene.TriangleList,
		Transform: scene.DefaultTransform, Camera: scene.DefaultCamera(),
		Texture: &texturedBrick}

	Test(t,
		That(prelude, "(model vb ib (topology line-list) (transform default) cam)").
			Evals(model),
		That(prelude, "(model tvb ib (topology triangle-list) (transform default) cam",
			"  (texture brick))").WithTextures(brick).Evals(textured),

		// Strict typing: the number of arguments decides the kind of buffer.
		That(prelude, "(model tvb ib (topology line-list) (transform default) cam)").
			Diagnoses("wrong type: argument 1 of model must be vertex-buffer, " +
				"but is texture-vertex-buffer"),
		That(prelude, "(model vb ib (topology line-list) (transform default) cam",
			"  (texture brick))").WithTextures(brick).
			Diagnoses("wrong type: argument 1 of model must be texture-vertex-buffer, " +
				"but is vertex-buffer").
			Passes(func(t *testing.T, _ *eval.Evaler, sink *Sink) {
				if len(sink.TextureLoads) != 0 {
					t.Errorf("texture loaded for a failed model: %v", sink.TextureLoads)
				}
			}),
		That(prelude, "(model vb ib (topology line-list) cam (transform default))").
			Diagnoses("wrong type: argument 4 of model must be transform, but is camera"),
		That(prelude, "(model vb ib)").Diagnoses(
			"arity mismatch: arguments to model must be 5 to 6 values, but is 2 values"),
	)
}

func TestModel_DrawnCopyIsIndependent(t *testing.T) {
	Test(t,
		That(prelude, "(def m (model vb ib (topology line-list) (transform default) cam))",
			"(draw m m)").
			Passes(func(t *testing.T, ev *eval.Evaler, sink *Sink) {
				if len(sink.Drawn) != 2 {
					t.Fatalf("got %d drawables, want 2", len(sink.Drawn))
				}
				m1 := sink.Drawn[0].(*scene.Model)
				m2 := sink.Drawn[1].(*scene.Model)
				m1.TextureHandle = 5
				bound, _ := ev.Env().Lookup("m")
				if m2.TextureHandle != 0 || bound.(*scene.Model).TextureHandle != 0 {
					t.Errorf("drawn models share state")
				}
				if !cmp.Equal(m2, bound) {
					t.Errorf("drawn model differs from bound model")
				}
			}).
			Draws(
				&scene.Model{Vertices: vb, Indices: ib, Topology: scene.LineList,
					Transform: scene.DefaultTransform, Camera: scene.DefaultCamera(),
					TextureHandle: 5},
				&scene.Model{Vertices: vb, Indices: ib, Topology: scene.LineList,
					Transform: scene.DefaultTransform, Camera: scene.DefaultCamera()}),
	)
}
