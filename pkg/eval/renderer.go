package eval

import "src.tvk.sh/pkg/scene"

// Renderer receives the side effects of evaluation.
type Renderer interface {
	// ReceiveModel is called for each model drawn by a draw form.
	ReceiveModel(m *scene.Model)
	// ReceiveVertexBuffer is called for each bare vertex buffer drawn by a
	// draw form.
	ReceiveVertexBuffer(vb scene.VertexBuffer)
	// LoadTextureImage loads the texture with the given name. An error stops
	// the evaluation pass.
	LoadTextureImage(name string) (scene.Texture, error)
	// ChangeTopology changes the topology used for bare vertex buffers drawn
	// afterwards.
	ChangeTopology(t scene.Topology)
}

// Discard is a Renderer that ignores everything. Its textures are empty
// images that carry only their names.
var Discard Renderer = discard{}

type discard struct{}

func (discard) ReceiveModel(*scene.Model) {}
func (discard) ReceiveVertexBuffer(scene.VertexBuffer) {}
func (discard) ChangeTopology(scene.Topology) {}
func (discard) LoadTextureImage(name string) (scene.Texture, error) {
	return scene.Texture{Name: name}, nil
}
