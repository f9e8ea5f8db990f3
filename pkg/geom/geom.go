// Package geom builds the model, view and projection matrices of scene
// models, and projects scene positions to a viewport.
//
// Matrices follow the conventions of Vulkan: right-handed eye space, clip
// space depth in [-1, 1] and the Y axis pointing down.
package geom

import (
	"math"

	"src.tvk.sh/pkg/scene"
)

// Vec3 is a 3D vector.
type Vec3 = [3]float32

// Vec4 is a 4D vector.
type Vec4 = [4]float32

// Mat4 is a column-major 4x4 matrix, indexed as m[col*4+row].
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

// MulVec returns m*v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// At returns the element at the given column and row.
func (m Mat4) At(col, row int) float32 { return m[col*4+row] }

func dot(a, b Vec3) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Returns v scaled to unit length, or the zero vector if v is zero.
func normalize(v Vec3) Vec3 {
	l := float32(math.Sqrt(float64(dot(v, v))))
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

// Scale returns a scaling matrix.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = v[0], v[1], v[2]
	return m
}

// Rotate returns a matrix rotating by angle radians around axis, following
// the right-hand rule. A zero axis gives the identity.
func Rotate(angle float32, axis Vec3) Mat4 {
	a := normalize(axis)
	if a == (Vec3{}) {
		return Identity()
	}
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	t := 1 - c
	x, y, z := a[0], a[1], a[2]
	return Mat4{
		c + t*x*x, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, c + t*y*y, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, c + t*z*z, 0,
		0, 0, 0, 1,
	}
}

// LookAtRH returns a right-handed view matrix for an eye at eye looking at
// center.
func LookAtRH(eye, center, up Vec3) Mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)
	return Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-dot(s, eye), -dot(u, eye), dot(f, eye), 1,
	}
}

// PerspectiveRHNO returns a right-handed perspective projection with clip
// space depth in [-1, 1]. The Y axis is flipped. A zero aspect is treated as
// 1.
func PerspectiveRHNO(fovy, aspect, zNear, zFar float32) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	tanHalf := float32(math.Tan(float64(fovy) / 2))
	var m Mat4
	m[0] = 1 / (aspect * tanHalf)
	m[5] = -1 / tanHalf
	m[10] = -(zFar + zNear) / (zFar - zNear)
	m[11] = -1
	m[14] = -(2 * zFar * zNear) / (zFar - zNear)
	return m
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

// ModelMatrix returns translate * rotate * scale.
func ModelMatrix(t scene.Transform) Mat4 {
	return Translate(Vec3(t.Translate)).
		Mul(Rotate(t.Rotate.Angle, Vec3(t.Rotate.Axis))).
		Mul(Scale(Vec3(t.Scale)))
}

// ViewMatrix returns the view matrix of a camera.
func ViewMatrix(c scene.Camera) Mat4 {
	return LookAtRH(Vec3(c.Position), Vec3(c.Center), Vec3(c.Up))
}

// ProjectionMatrix returns the projection matrix of a perspective for a
// viewport with the given aspect ratio.
func ProjectionMatrix(p scene.Perspective, aspect float32) Mat4 {
	return PerspectiveRHNO(p.Fovy, aspect, p.ZNear, p.ZFar)
}

// UBO holds the matrices a model is drawn with.
type UBO struct {
	Model      Mat4
	View       Mat4
	Projection Mat4
}

// NewUBO builds the matrices of a model. A non-positive aspect is replaced
// with scene.DefaultAspect.
func NewUBO(m *scene.Model, aspect float32) UBO {
	if aspect <= 0 {
		aspect = scene.DefaultAspect
	}
	return UBO{
		Model:      ModelMatrix(m.Transform),
		View:       ViewMatrix(m.Camera),
		Projection: ProjectionMatrix(m.Camera.Perspective, aspect),
	}
}

// MVP returns projection * view * model.
func (u UBO) MVP() Mat4 {
	return u.Projection.Mul(u.View).Mul(u.Model)
}

// Project maps p through mvp to a width by height viewport whose origin is at
// the top left. The last return value is false if p is behind the eye.
func Project(mvp Mat4, p scene.Position, width, height float32) (x, y, depth float32, ok bool) {
	clip := mvp.MulVec(Vec4{p[0], p[1], p[2], 1})
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
	return (nx + 1) / 2 * width, (ny + 1) / 2 * height, nz, true
}
