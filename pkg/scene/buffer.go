package scene

import (
	"strconv"
	"strings"
)

// Vertex is a vertex with a solid color.
type Vertex struct {
	Position Position
	Color    Color
}

// TextureVertex is a vertex with texture coordinates.
type TextureVertex struct {
	Position Position
	UV       [2]float32
}

func (Vertex) Kind() string        { return "vertex" }
func (TextureVertex) Kind() string { return "texture-vertex" }

func (v Vertex) Repr() string {
	return "(vertex " + v.Position.Repr() + " " + v.Color.Repr() + ")"
}

func (v TextureVertex) Repr() string {
	uv := Position{v.UV[0], v.UV[1], 0}
	return "(vertex " + v.Position.Repr() + " " + uv.Repr() + ")"
}

// VertexBuffer is a sequence of colored vertices.
type VertexBuffer []Vertex

// TexVertexBuffer is a sequence of textured vertices.
type TexVertexBuffer []TextureVertex

// IndexBuffer is a sequence of vertex indices. Indices are not checked
// against any vertex buffer.
type IndexBuffer []uint32

func (VertexBuffer) Kind() string    { return "vertex-buffer" }
func (TexVertexBuffer) Kind() string { return "texture-vertex-buffer" }
func (IndexBuffer) Kind() string     { return "index-buffer" }

func (vb VertexBuffer) Repr() string {
	reprs := make([]string, len(vb))
	for i, v := range vb {
		reprs[i] = v.Repr()
	}
	return "(vertex-buffer (" + strings.Join(reprs, " ") + "))"
}

func (vb TexVertexBuffer) Repr() string {
	reprs := make([]string, len(vb))
	for i, v := range vb {
		reprs[i] = v.Repr()
	}
	return "(vertex-buffer (" + strings.Join(reprs, " ") + "))"
}

func (ib IndexBuffer) Repr() string {
	strs := make([]string, len(ib))
	for i, idx := range ib {
		strs[i] = strconv.FormatUint(uint64(idx), 10)
	}
	return "(index-buffer (" + strings.Join(strs, " ") + "))"
}
