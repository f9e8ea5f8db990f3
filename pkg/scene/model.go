package scene

import "fmt"

// Topology is the way vertices are assembled into primitives.
type Topology uint8

// Possible values of Topology.
const (
	PointList Topology = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

var topologyNames = [...]string{
	PointList:     "point-list",
	LineList:      "line-list",
	LineStrip:     "line-strip",
	TriangleList:  "triangle-list",
	TriangleStrip: "triangle-strip",
}

// DefaultTopology is the topology in effect before any is chosen.
const DefaultTopology = TriangleList

// ParseTopology returns the topology with the given name. The name "default"
// refers to [DefaultTopology].
func ParseTopology(name string) (Topology, bool) {
	if name == "default" {
		return DefaultTopology, true
	}
	for t, tname := range topologyNames {
		if name == tname {
			return Topology(t), true
		}
	}
	return 0, false
}

func (t Topology) String() string {
	if int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return fmt.Sprintf("topology(%d)", uint8(t))
}

func (Topology) Kind() string { return "topology" }

func (t Topology) Repr() string { return "(topology " + t.String() + ")" }

// IsLine returns whether the topology assembles lines.
func (t Topology) IsLine() bool { return t == LineList || t == LineStrip }

// IsTriangle returns whether the topology assembles triangles.
func (t Topology) IsTriangle() bool { return t == TriangleList || t == TriangleStrip }

// Texture is a decoded RGBA image. Pixels holds 4 bytes per pixel, row by
// row.
type Texture struct {
	Name   string
	Pixels []byte
	Width  int
	Height int
}

func (Texture) Kind() string { return "texture" }

func (t Texture) Repr() string { return "(texture " + t.Name + ")" }

// Model is a complete drawable object. Exactly one of Vertices and
// TexVertices is non-nil; TexVertices is used iff Texture is non-nil.
type Model struct {
	Vertices    VertexBuffer
	TexVertices TexVertexBuffer
	Indices     IndexBuffer
	Topology    Topology
	Transform   Transform
	Camera      Camera
	Texture     *Texture
	// Assigned by the renderer that receives the model. Zero means none.
	TextureHandle int
}

func (*Model) Kind() string { return "model" }

func (m *Model) Repr() string {
	var vb Value = m.Vertices
	if m.Texture != nil {
		vb = m.TexVertices
	}
	s := "(model " + vb.Repr() + " " + m.Indices.Repr() + " " +
		m.Topology.Repr() + " " + m.Transform.Repr() + " " + m.Camera.Repr()
	if m.Texture != nil {
		s += " " + m.Texture.Repr()
	}
	return s + ")"
}

// Textured returns whether the model samples a texture.
func (m *Model) Textured() bool { return m.Texture != nil }
