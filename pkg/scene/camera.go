package scene

// Perspective holds the parameters of a perspective projection. The aspect
// ratio is supplied by whoever renders the scene.
type Perspective struct {
	Fovy  float32
	ZNear float32
	ZFar  float32
}

func (Perspective) Kind() string { return "perspective" }

func (p Perspective) Repr() string {
	return "(perspective " + joinFloats([]float32{p.Fovy, p.ZNear, p.ZFar}) + ")"
}

// Camera is a viewpoint looking from Position at Center.
type Camera struct {
	Position    Position
	Center      Position
	Up          Position
	Perspective Perspective
}

func (Camera) Kind() string { return "camera" }

func (c Camera) Repr() string {
	return "(camera " + c.Position.Repr() + " " + c.Center.tagged("center") +
		" " + c.Up.tagged("up") + " " + c.Perspective.Repr() + ")"
}

// DefaultAspect is the aspect ratio used when the output has no natural one.
const DefaultAspect = 4.0 / 3.0

// DefaultCamera returns the camera used when none is given.
func DefaultCamera() Camera {
	return Camera{
		Position:    Position{2, 2, 2},
		Center:      Position{0, 0, 0},
		Up:          Position{0, 1, 0},
		Perspective: Perspective{Fovy: 0.75, ZNear: 0.1, ZFar: 10},
	}
}

// Transform places a model in the world.
type Transform struct {
	Translate Vec3
	Scale     Vec3
	Rotate    Rotate
}

func (Transform) Kind() string { return "transform" }

func (t Transform) Repr() string {
	return "(transform (translate " + t.Translate.Repr() + ") (scale " +
		t.Scale.Repr() + ") " + t.Rotate.Repr() + ")"
}

// DefaultTransform is the identity transform: no translation, unit scale and
// a zero rotation around the up axis.
var DefaultTransform = Transform{
	Translate: Vec3{0, 0, 0},
	Scale:     Vec3{1, 1, 1},
	Rotate:    Rotate{Angle: 0, Axis: Vec3{0, 1, 0}},
}
