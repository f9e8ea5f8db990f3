package preview

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"src.tvk.sh/pkg/geom"
	"src.tvk.sh/pkg/render"
	"src.tvk.sh/pkg/scene"
)

var background = color.NRGBA{0x18, 0x18, 0x20, 0xff}

const (
	lineWidth = 1.5
	pointSize = 3.0
)

// A canvas draws what a recorder has received.
type canvas struct {
	rec *render.Recorder
	// A white pixel, used as the source of untextured triangles.
	white    *ebiten.Image
	textures map[int]*ebiten.Image
}

func newCanvas(rec *render.Recorder) canvas {
	return canvas{rec: rec, textures: make(map[int]*ebiten.Image)}
}

func (c *canvas) dropTextures() {
	for handle, img := range c.textures {
		img.Deallocate()
		delete(c.textures, handle)
	}
}

func (c *canvas) draw(screen *ebiten.Image) {
	if c.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		c.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	screen.Fill(background)
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	for _, m := range c.rec.Models() {
		c.drawModel(screen, m, w, h)
	}
	for _, vb := range c.rec.VertexBuffers() {
		m := &scene.Model{
			Vertices: vb.Vertices, Indices: geom.Sequence(len(vb.Vertices)),
			Topology: vb.Topology, Transform: scene.DefaultTransform,
			Camera: scene.DefaultCamera()}
		c.drawModel(screen, m, w, h)
	}
}

// A vertex mapped to the screen.
type projected struct {
	x, y, depth float32
	ok          bool
	color       scene.Color
	uv          [2]float32
}

func project(m *scene.Model, w, h float32) []projected {
	mvp := geom.NewUBO(m, w/h).MVP()
	var pts []projected
	add := func(p scene.Position, c scene.Color, uv [2]float32) {
		x, y, depth, ok := geom.Project(mvp, p, w, h)
		pts = append(pts, projected{x, y, depth, ok, c, uv})
	}
	for _, v := range m.Vertices {
		add(v.Position, v.Color, [2]float32{})
	}
	for _, v := range m.TexVertices {
		add(v.Position, scene.Color{1, 1, 1, 1}, v.UV)
	}
	return pts
}

// Returns the vertices of a primitive, or false if an index is out of range
// or a vertex is behind the camera.
func primitive(pts []projected, indices []uint32) ([]projected, bool) {
	prim := make([]projected, len(indices))
	for i, idx := range indices {
		if int(idx) >= len(pts) || !pts[idx].ok {
			return nil, false
		}
		prim[i] = pts[idx]
	}
	return prim, true
}

func (c *canvas) drawModel(screen *ebiten.Image, m *scene.Model, w, h float32) {
	pts := project(m, w, h)
	var tris [][]projected
	for _, indices := range geom.Assemble(m.Topology, m.Indices) {
		prim, ok := primitive(pts, indices)
		if !ok {
			continue
		}
		switch len(prim) {
		case 1:
			p := prim[0]
			vector.DrawFilledRect(screen, p.x-pointSize/2, p.y-pointSize/2,
				pointSize, pointSize, nrgba(p.color), false)
		case 2:
			vector.StrokeLine(screen, prim[0].x, prim[0].y, prim[1].x, prim[1].y,
				lineWidth, nrgba(prim[0].color), true)
		case 3:
			tris = append(tris, prim)
		}
	}
	if len(tris) > 0 {
		c.drawTriangles(screen, m, tris)
	}
}

func (c *canvas) drawTriangles(screen *ebiten.Image, m *scene.Model, tris [][]projected) {
	src, sw, sh := c.white, float32(0), float32(0)
	if m.Textured() {
		if img := c.texture(m.TextureHandle); img != nil {
			src = img
			b := img.Bounds()
			sw, sh = float32(b.Dx()), float32(b.Dy())
		}
	}
	// Larger depths are further away and drawn first.
	sort.SliceStable(tris, func(i, j int) bool {
		return depth(tris[i]) > depth(tris[j])
	})

	var (
		vertices []ebiten.Vertex
		indices  []uint16
	)
	flush := func() {
		if len(indices) > 0 {
			screen.DrawTriangles(vertices, indices, src, nil)
		}
		vertices, indices = vertices[:0], indices[:0]
	}
	for _, tri := range tris {
		if len(vertices)+3 > math.MaxUint16 {
			flush()
		}
		for _, p := range tri {
			srcX, srcY := float32(1), float32(1)
			if src != c.white {
				srcX, srcY = p.uv[0]*sw, p.uv[1]*sh
			}
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX: p.x, DstY: p.y, SrcX: srcX, SrcY: srcY,
				ColorR: p.color[0], ColorG: p.color[1], ColorB: p.color[2], ColorA: p.color[3],
			})
		}
	}
	flush()
}

func depth(tri []projected) float32 {
	return (tri[0].depth + tri[1].depth + tri[2].depth) / 3
}

// Returns the image of a texture, creating it on first use. It returns nil if
// the recorder has no such texture or the texture is empty.
func (c *canvas) texture(handle int) *ebiten.Image {
	if img, ok := c.textures[handle]; ok {
		return img
	}
	tex, ok := c.rec.Texture(handle)
	if !ok || tex.Width == 0 || tex.Height == 0 || len(tex.Pixels) != 4*tex.Width*tex.Height {
		return nil
	}
	img := ebiten.NewImage(tex.Width, tex.Height)
	img.WritePixels(tex.Pixels)
	c.textures[handle] = img
	return img
}

func nrgba(c scene.Color) color.NRGBA {
	ch := func(f float32) uint8 {
		return uint8(math.Round(float64(max(0, min(1, f))) * 255))
	}
	return color.NRGBA{ch(c[0]), ch(c[1]), ch(c[2]), ch(c[3])}
}
