package render

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Snapshot summarizes what a Recorder has received.
type Snapshot struct {
	Topology      string                 `yaml:"topology"`
	Models        []ModelSnapshot        `yaml:"models,omitempty"`
	VertexBuffers []VertexBufferSnapshot `yaml:"vertex-buffers,omitempty"`
}

// ModelSnapshot summarizes a model.
type ModelSnapshot struct {
	Topology      string   `yaml:"topology"`
	Vertices      int      `yaml:"vertices"`
	Indices       []uint32 `yaml:"indices,flow"`
	Texture       string   `yaml:"texture,omitempty"`
	TextureHandle int      `yaml:"texture-handle,omitempty"`
	Transform     string   `yaml:"transform"`
	Camera        string   `yaml:"camera"`
}

// VertexBufferSnapshot is a vertex buffer drawn on its own.
type VertexBufferSnapshot struct {
	Topology string           `yaml:"topology"`
	Vertices []VertexSnapshot `yaml:"vertices"`
}

// VertexSnapshot is a vertex of a VertexBufferSnapshot.
type VertexSnapshot struct {
	Position [3]float32 `yaml:"position,flow"`
	Color    [4]float32 `yaml:"color,flow"`
}

// Snapshot returns a summary of what r has received.
func (r *Recorder) Snapshot() Snapshot {
	s := Snapshot{Topology: r.topology.String()}
	for _, m := range r.models {
		ms := ModelSnapshot{
			Topology:      m.Topology.String(),
			Vertices:      len(m.Vertices) + len(m.TexVertices),
			Indices:       []uint32(m.Indices),
			TextureHandle: m.TextureHandle,
			Transform:     m.Transform.Repr(),
			Camera:        m.Camera.Repr(),
		}
		if m.Textured() {
			ms.Texture = m.Texture.Name
		}
		s.Models = append(s.Models, ms)
	}
	for _, vb := range r.vbs {
		vs := VertexBufferSnapshot{Topology: vb.Topology.String()}
		for _, v := range vb.Vertices {
			vs.Vertices = append(vs.Vertices, VertexSnapshot{
				Position: [3]float32(v.Position), Color: [4]float32(v.Color)})
		}
		s.VertexBuffers = append(s.VertexBuffers, vs)
	}
	return s
}

// WriteYAML writes the snapshot of r to w as YAML.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Snapshot()); err != nil {
		return err
	}
	return enc.Close()
}
