package eval_test

import (
	"testing"

	. "src.tvk.sh/pkg/eval/evaltest"
	"src.tvk.sh/pkg/scene"
)

func TestPosition(t *testing.T) {
	Test(t,
		That("(position (x 1) (y 2.5) (z -3))").Evals(scene.Position{1, 2.5, -3}),
		That("(center (x 0) (y 0) (z 0))").Evals(scene.Position{0, 0, 0}),
		That("(up (x 0) (y 1) (z 0))").Evals(scene.Position{0, 1, 0}),
		That("(def p (position (x 1) (y 2) (z 3)))", "(position p)").
			Evals(scene.Position{1, 2, 3}),
		That("(def p (position (x 1) (y 2) (z 3)))", "(up p)").
			Evals(scene.Position{1, 2, 3}),

		That("(position (y 1) (x 2) (z 3))").Diagnoses(
			"bad value: argument 1 of position must be (x NUMBER), but is (y 1)"),
		// Components are literals, not expressions.
		That("(def a 1)", "(position (x a) (y 1) (z 1))").Diagnoses(
			"bad value: argument 1 of position must be (x NUMBER), but is (x a)"),
		That("(position (x 1) (y 2))").Diagnoses(
			"arity mismatch: arguments to position must be 3 values, but is 2 values"),
		That("(center (color #FF0000FF))").Diagnoses(
			"wrong type: argument 1 of center must be position, but is color"),
	)
}

func TestVec3(t *testing.T) {
	Test(t,
		That("(vec3 (1 2.5 -3))").Evals(scene.Vec3{1, 2.5, -3}),
		That("(def a 2)", "(vec3 (a a 1))").Evals(scene.Vec3{2, 2, 1}),
		That("(def v (vec3 (1 2 3)))", "(vec3 v)").Evals(scene.Vec3{1, 2, 3}),
		// A list argument always holds components, even when a component
		// is named like a form.
		That("(def scale 2)", "(vec3 (scale 1 1))").Evals(scene.Vec3{2, 1, 1}),
		That("(vec3 (translate (vec3 (1 2 3))))").Diagnoses(
			"arity mismatch: components of vec3 must be 3 values, but is 2 values"),

		That("(vec3 (1 2))").Diagnoses(
			"arity mismatch: components of vec3 must be 3 values, but is 2 values"),
		That("(vec3 (1 2 #FF0000FF))").Diagnoses(
			"wrong type: component 3 of vec3 must be float or uint, but is color"),
		That("(vec3 1 2 3)").Diagnoses(
			"arity mismatch: arguments to vec3 must be 1 value, but is 3 values"),
	)
}

func TestColor(t *testing.T) {
	Test(t,
		That("(color #FF000080)").Evals(scene.Color{1, 0, 0, 128.0 / 255}),
		That("(def c (color #00FF00FF))", "(color c)").Evals(green),
		That("(color 1)").Diagnoses(
			"wrong type: argument 1 of color must be color, but is uint"),
	)
}

func TestTranslateScaleRotate(t *testing.T) {
	Test(t,
		That("(translate (vec3 (1 2 3)))").Evals(scene.Vec3{1, 2, 3}),
		That("(scale (vec3 (2 2 2)))").Evals(scene.Vec3{2, 2, 2}),
		That("(rotate 0.5 (vec3 (0 1 0)))").Evals(
			scene.Rotate{Angle: 0.5, Axis: scene.Vec3{0, 1, 0}}),
		That("(def r (rotate 1 (vec3 (0 0 1))))", "(rotate r)").Evals(
			scene.Rotate{Angle: 1, Axis: scene.Vec3{0, 0, 1}}),

		That("(translate v)").Diagnoses("unbound identifier: v"),
		That("(scale 2)").Diagnoses(
			"wrong type: argument 1 of scale must be vec3, but is uint"),
		That("(rotate 1 2)").Diagnoses(
			"wrong type: argument 2 of rotate must be vec3, but is uint"),
		That("(rotate #FF0000FF (vec3 (0 1 0)))").Diagnoses(
			"wrong type: argument 1 of rotate must be float or uint, but is color"),
	)
}
