package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.tvk.sh/pkg/scene"
	"src.tvk.sh/pkg/tt"
)

var Args = tt.Args

const halfPi = math.Pi / 2

func transformPoint(m Mat4, p Vec3) Vec3 {
	v := m.MulVec(Vec4{p[0], p[1], p[2], 1})
	return Vec3{v[0], v[1], v[2]}
}

func TestMul(t *testing.T) {
	a := Translate(Vec3{1, 2, 3})
	if got := Identity().Mul(a); got != a {
		t.Errorf("Identity*a = %v, want %v", got, a)
	}
	if got := a.Mul(Identity()); got != a {
		t.Errorf("a*Identity = %v, want %v", got, a)
	}
	// Translations compose by adding.
	b := Translate(Vec3{-1, 5, 0})
	if got, want := a.Mul(b), Translate(Vec3{0, 7, 3}); got != want {
		t.Errorf("a*b = %v, want %v", got, want)
	}
}

func TestTransformPoint(t *testing.T) {
	tt.Test(t, tt.Fn("transformPoint", transformPoint), tt.Table{
		Args(Identity(), Vec3{1, 2, 3}).Rets(Vec3{1, 2, 3}),
		Args(Translate(Vec3{1, 2, 3}), Vec3{1, 1, 1}).Rets(Vec3{2, 3, 4}),
		Args(Scale(Vec3{2, 3, 4}), Vec3{1, 1, 1}).Rets(Vec3{2, 3, 4}),
		Args(Rotate(halfPi, Vec3{0, 0, 1}), Vec3{1, 0, 0}).Rets(Vec3{0, 1, 0}),
		Args(Rotate(halfPi, Vec3{0, 1, 0}), Vec3{0, 0, 1}).Rets(Vec3{1, 0, 0}),
		Args(Rotate(halfPi, Vec3{1, 0, 0}), Vec3{0, 1, 0}).Rets(Vec3{0, 0, 1}),
		// The axis does not need to be normalized.
		Args(Rotate(halfPi, Vec3{0, 0, 5}), Vec3{1, 0, 0}).Rets(Vec3{0, 1, 0}),
		// A zero axis gives no rotation.
		Args(Rotate(1, Vec3{}), Vec3{1, 2, 3}).Rets(Vec3{1, 2, 3}),
		Args(LookAtRH(Vec3{0, 0, 3}, Vec3{}, Vec3{0, 1, 0}), Vec3{}).Rets(Vec3{0, 0, -3}),
		Args(LookAtRH(Vec3{0, 0, 3}, Vec3{}, Vec3{0, 1, 0}), Vec3{1, 0, 0}).Rets(Vec3{1, 0, -3}),
	})
}

func TestModelMatrix(t *testing.T) {
	tr := scene.Transform{
		Translate: scene.Vec3{1, 0, 0},
		Scale:     scene.Vec3{2, 2, 2},
		Rotate:    scene.Rotate{Angle: halfPi, Axis: scene.Vec3{0, 0, 1}},
	}
	// Scaled first, then rotated, then translated.
	got := transformPoint(ModelMatrix(tr), Vec3{1, 0, 0})
	if diff := cmp.Diff(Vec3{1, 2, 0}, got, tt.CommonCmpOpt); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(Identity(), ModelMatrix(scene.DefaultTransform), tt.CommonCmpOpt); diff != "" {
		t.Errorf("default transform is not identity (-want +got):\n%s", diff)
	}
}

func TestPerspectiveRHNO(t *testing.T) {
	m := PerspectiveRHNO(halfPi, 2, 1, 3)
	want := Mat4{
		0.5, 0, 0, 0,
		0, -1, 0, 0,
		0, 0, -2, -1,
		0, 0, -3, 0,
	}
	if diff := cmp.Diff(want, m, tt.CommonCmpOpt); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	// The near and far planes map to -1 and 1.
	for _, c := range []struct{ z, ndc float32 }{{-1, -1}, {-3, 1}} {
		v := m.MulVec(Vec4{0, 0, c.z, 1})
		if got := v[2] / v[3]; !cmp.Equal(got, c.ndc, tt.CommonCmpOpt) {
			t.Errorf("z = %v maps to %v, want %v", c.z, got, c.ndc)
		}
	}
	if PerspectiveRHNO(1, 0, 1, 2) != PerspectiveRHNO(1, 1, 1, 2) {
		t.Errorf("zero aspect is not treated as 1")
	}
}

func TestRadians(t *testing.T) {
	tt.Test(t, tt.Fn("Radians", Radians), tt.Table{
		Args(float32(0)).Rets(float32(0)),
		Args(float32(180)).Rets(float32(math.Pi)),
		Args(float32(-90)).Rets(float32(-halfPi)),
	})
}

func TestNewUBO(t *testing.T) {
	m := &scene.Model{Transform: scene.DefaultTransform, Camera: scene.DefaultCamera()}
	u := NewUBO(m, 0)
	pers := scene.DefaultCamera().Perspective
	want := 1 / (float32(scene.DefaultAspect) * float32(math.Tan(float64(pers.Fovy)/2)))
	if got := u.Projection.At(0, 0); !cmp.Equal(got, want, tt.CommonCmpOpt) {
		t.Errorf("got projection[0][0] = %v, want %v", got, want)
	}
	if u.View != ViewMatrix(m.Camera) {
		t.Errorf("view matrix differs from ViewMatrix")
	}
}

func TestProject(t *testing.T) {
	m := &scene.Model{Transform: scene.DefaultTransform, Camera: scene.DefaultCamera()}
	mvp := NewUBO(m, 800.0/600).MVP()

	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-3 }

	// The camera looks at the origin.
	x, y, depth, ok := Project(mvp, scene.Position{0, 0, 0}, 800, 600)
	if !ok || !near(x, 400) || !near(y, 300) {
		t.Errorf("origin projects to (%v, %v, %v), want (400, 300, true)", x, y, ok)
	}
	if depth <= -1 || depth >= 1 {
		t.Errorf("origin has depth %v, want in (-1, 1)", depth)
	}
	// Up is towards the top of the viewport.
	if _, y, _, ok := Project(mvp, scene.Position{0, 0.5, 0}, 800, 600); !ok || y >= 300 {
		t.Errorf("point above the origin projects to y = %v, ok = %v", y, ok)
	}
	if _, _, _, ok := Project(mvp, scene.Position{3, 3, 3}, 800, 600); ok {
		t.Errorf("point behind the camera projected")
	}
}
