package evaltest

import (
	"errors"

	"src.tvk.sh/pkg/scene"
)

// Sink is an eval.Renderer that records everything it receives.
type Sink struct {
	// Drawables received, in order. Each element is either a *scene.Model or a
	// scene.VertexBuffer.
	Drawn []scene.Value
	// Topologies received via ChangeTopology, in order.
	Topologies []scene.Topology
	// Textures that LoadTextureImage can load, keyed by name.
	Textures map[string]scene.Texture
	// Names passed to LoadTextureImage, in order.
	TextureLoads []string
}

// NewSink returns a new Sink that can load the given textures.
func NewSink(textures ...scene.Texture) *Sink {
	s := &Sink{Textures: make(map[string]scene.Texture)}
	for _, tex := range textures {
		s.Textures[tex.Name] = tex
	}
	return s
}

func (s *Sink) ReceiveModel(m *scene.Model) { s.Drawn = append(s.Drawn, m) }

func (s *Sink) ReceiveVertexBuffer(vb scene.VertexBuffer) { s.Drawn = append(s.Drawn, vb) }

func (s *Sink) ChangeTopology(t scene.Topology) { s.Topologies = append(s.Topologies, t) }

// ErrNoTexture is returned by Sink.LoadTextureImage for unknown textures.
var ErrNoTexture = errors.New("no such texture")

func (s *Sink) LoadTextureImage(name string) (scene.Texture, error) {
	s.TextureLoads = append(s.TextureLoads, name)
	tex, ok := s.Textures[name]
	if !ok {
		return scene.Texture{}, ErrNoTexture
	}
	return tex, nil
}
