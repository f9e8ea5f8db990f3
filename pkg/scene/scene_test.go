package scene_test

import (
	"testing"

	. "src.tvk.sh/pkg/scene"
	"src.tvk.sh/pkg/tt"
)

func repr(v Value) string { return v.Repr() }
func kind(v Value) string { return v.Kind() }

var (
	red   = Color{1, 0, 0, 1}
	green = Color{0, 1, 0, 1}
	v1    = Vertex{Position{0, 0, 0}, red}
	v2    = Vertex{Position{1, 0.5, -1}, green}
	tv1   = TextureVertex{Position{0, 0, 0}, [2]float32{0, 1}}
)

func TestRepr(t *testing.T) {
	tt.Test(t, tt.Fn("repr", repr), tt.Table{
		tt.Args(Float(1)).Rets("1.0"),
		tt.Args(Float(-0.25)).Rets("-0.25"),
		tt.Args(UInt(42)).Rets("42"),
		tt.Args(Position{1, 2, 3}).Rets("(position (x 1.0) (y 2.0) (z 3.0))"),
		tt.Args(Vec3{0, 1.5, 0}).Rets("(vec3 (0.0 1.5 0.0))"),
		tt.Args(Rotate{0.5, Vec3{0, 1, 0}}).Rets("(rotate 0.5 (vec3 (0.0 1.0 0.0)))"),
		tt.Args(red).Rets("(color #FF0000FF)"),
		tt.Args(v1).Rets(
			"(vertex (position (x 0.0) (y 0.0) (z 0.0)) (color #FF0000FF))"),
		tt.Args(tv1).Rets(
			"(vertex (position (x 0.0) (y 0.0) (z 0.0)) (position (x 0.0) (y 1.0) (z 0.0)))"),
		tt.Args(VertexBuffer{v1, v2}).Rets(
			"(vertex-buffer (" +
				"(vertex (position (x 0.0) (y 0.0) (z 0.0)) (color #FF0000FF)) " +
				"(vertex (position (x 1.0) (y 0.5) (z -1.0)) (color #00FF00FF))))"),
		tt.Args(IndexBuffer{0, 1, 2}).Rets("(index-buffer (0 1 2))"),
		tt.Args(Perspective{0.75, 0.1, 10}).Rets("(perspective 0.75 0.1 10.0)"),
		tt.Args(DefaultCamera()).Rets(
			"(camera (position (x 2.0) (y 2.0) (z 2.0)) " +
				"(center (x 0.0) (y 0.0) (z 0.0)) " +
				"(up (x 0.0) (y 1.0) (z 0.0)) " +
				"(perspective 0.75 0.1 10.0))"),
		tt.Args(DefaultTransform).Rets(
			"(transform (translate (vec3 (0.0 0.0 0.0))) " +
				"(scale (vec3 (1.0 1.0 1.0))) " +
				"(rotate 0.0 (vec3 (0.0 1.0 0.0))))"),
		tt.Args(LineStrip).Rets("(topology line-strip)"),
		tt.Args(Texture{Name: "brick"}).Rets("(texture brick)"),
	})
}

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("kind", kind), tt.Table{
		tt.Args(Float(0)).Rets("float"),
		tt.Args(UInt(0)).Rets("uint"),
		tt.Args(Position{}).Rets("position"),
		tt.Args(Vec3{}).Rets("vec3"),
		tt.Args(Rotate{}).Rets("rotate"),
		tt.Args(Color{}).Rets("color"),
		tt.Args(Vertex{}).Rets("vertex"),
		tt.Args(TextureVertex{}).Rets("texture-vertex"),
		tt.Args(VertexBuffer{}).Rets("vertex-buffer"),
		tt.Args(TexVertexBuffer{}).Rets("texture-vertex-buffer"),
		tt.Args(IndexBuffer{}).Rets("index-buffer"),
		tt.Args(Perspective{}).Rets("perspective"),
		tt.Args(Camera{}).Rets("camera"),
		tt.Args(Transform{}).Rets("transform"),
		tt.Args(TriangleList).Rets("topology"),
		tt.Args(Texture{}).Rets("texture"),
		tt.Args(&Model{}).Rets("model"),
	})
}

func TestModelRepr(t *testing.T) {
	m := &Model{
		Vertices:  VertexBuffer{v1},
		Indices:   IndexBuffer{0},
		Topology:  PointList,
		Transform: DefaultTransform,
		Camera:    DefaultCamera(),
	}
	want := "(model " + m.Vertices.Repr() + " (index-buffer (0)) (topology point-list) " +
		DefaultTransform.Repr() + " " + DefaultCamera().Repr() + ")"
	if got := m.Repr(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if m.Textured() {
		t.Errorf("untextured model reports Textured")
	}

	m.TexVertices = TexVertexBuffer{tv1}
	m.Vertices = nil
	m.Texture = &Texture{Name: "brick"}
	want = "(model " + m.TexVertices.Repr() + " (index-buffer (0)) (topology point-list) " +
		DefaultTransform.Repr() + " " + DefaultCamera().Repr() + " (texture brick))"
	if got := m.Repr(); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	if !m.Textured() {
		t.Errorf("textured model does not report Textured")
	}
}

func TestParseTopology(t *testing.T) {
	tt.Test(t, tt.Fn("ParseTopology", ParseTopology), tt.Table{
		tt.Args("point-list").Rets(PointList, true),
		tt.Args("line-list").Rets(LineList, true),
		tt.Args("line-strip").Rets(LineStrip, true),
		tt.Args("triangle-list").Rets(TriangleList, true),
		tt.Args("triangle-strip").Rets(TriangleStrip, true),
		tt.Args("default").Rets(TriangleList, true),
		tt.Args("triangle-fan").Rets(Topology(0), false),
	})
}

func TestTopologyPredicates(t *testing.T) {
	if !LineStrip.IsLine() || TriangleList.IsLine() {
		t.Errorf("IsLine is wrong")
	}
	if !TriangleStrip.IsTriangle() || PointList.IsTriangle() {
		t.Errorf("IsTriangle is wrong")
	}
	if s := Topology(9).String(); s != "topology(9)" {
		t.Errorf("String of unknown topology = %q", s)
	}
}

func TestDefaults(t *testing.T) {
	if DefaultTransform.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("default scale is %v", DefaultTransform.Scale)
	}
	if DefaultTransform.Rotate.Axis != (Vec3{0, 1, 0}) {
		t.Errorf("default rotation axis is %v", DefaultTransform.Rotate.Axis)
	}
	c := DefaultCamera()
	if c.Position != (Position{2, 2, 2}) || c.Up != (Position{0, 1, 0}) {
		t.Errorf("default camera is %v", c)
	}
}
