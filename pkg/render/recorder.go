// Package render implements renderers that receive the output of evaluation.
//
// A [Recorder] keeps everything it receives in memory, so that it can be
// inspected, dumped or drawn by a front end.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"src.tvk.sh/pkg/logutil"
	"src.tvk.sh/pkg/scene"
)

var logger = logutil.GetLogger("[render] ")

// ErrNoTextureDir is returned by LoadTextureImage when the Recorder has no
// texture directory.
var ErrNoTextureDir = errors.New("no texture directory")

// TextureExts are the extensions tried, in order, when the texture name does
// not name a file by itself.
var TextureExts = []string{".png", ".jpg", ".jpeg"}

// VertexBufferDraw is a vertex buffer submitted for drawing, with the topology
// active at the time of submission.
type VertexBufferDraw struct {
	Vertices scene.VertexBuffer
	Topology scene.Topology
}

// Recorder is a renderer that records drawables and topology changes.
//
// The zero value is not ready for use; use NewRecorder.
type Recorder struct {
	// Directory textures are loaded from.
	TextureDir string

	models   []*scene.Model
	vbs      []VertexBufferDraw
	topology scene.Topology
	textures []scene.Texture
}

// NewRecorder creates a Recorder that loads textures from textureDir.
func NewRecorder(textureDir string) *Recorder {
	return &Recorder{TextureDir: textureDir, topology: scene.DefaultTopology}
}

// ReceiveModel records a model. A textured model is assigned a texture handle.
func (r *Recorder) ReceiveModel(m *scene.Model) {
	if m.Textured() {
		r.textures = append(r.textures, *m.Texture)
		m.TextureHandle = len(r.textures)
	}
	r.models = append(r.models, m)
}

// ReceiveVertexBuffer records a vertex buffer together with the active
// topology.
func (r *Recorder) ReceiveVertexBuffer(vb scene.VertexBuffer) {
	r.vbs = append(r.vbs, VertexBufferDraw{Vertices: vb, Topology: r.topology})
}

// ChangeTopology changes the active topology.
func (r *Recorder) ChangeTopology(t scene.Topology) {
	logger.Println("topology changed to", t)
	r.topology = t
}

// LoadTextureImage loads the named image from the texture directory. The name
// is tried as is, then with each of TextureExts appended.
func (r *Recorder) LoadTextureImage(name string) (scene.Texture, error) {
	if r.TextureDir == "" {
		return scene.Texture{}, ErrNoTextureDir
	}
	path, err := r.findTexture(name)
	if err != nil {
		return scene.Texture{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return scene.Texture{}, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return scene.Texture{}, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.Printf("loaded texture %s from %s", name, path)
	return NewTexture(name, img), nil
}

func (r *Recorder) findTexture(name string) (string, error) {
	base := filepath.Join(r.TextureDir, filepath.Base(name))
	candidates := []string{base}
	for _, ext := range TextureExts {
		candidates = append(candidates, base+ext)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", base, os.ErrNotExist)
}

// NewTexture converts an image to a texture with RGBA8 pixels.
func NewTexture(name string, img image.Image) scene.Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return scene.Texture{Name: name, Pixels: rgba.Pix, Width: b.Dx(), Height: b.Dy()}
}

// Clear drops everything recorded and restores the default topology. It is
// called before each evaluation pass.
func (r *Recorder) Clear() {
	r.models = nil
	r.vbs = nil
	r.textures = nil
	r.topology = scene.DefaultTopology
}

// Topology returns the active topology.
func (r *Recorder) Topology() scene.Topology { return r.topology }

// Models returns the recorded models, in the order they were received.
func (r *Recorder) Models() []*scene.Model { return r.models }

// VertexBuffers returns the recorded vertex buffers, in the order they were
// received.
func (r *Recorder) VertexBuffers() []VertexBufferDraw { return r.vbs }

// Texture returns the texture with the given handle.
func (r *Recorder) Texture(handle int) (scene.Texture, bool) {
	if handle < 1 || handle > len(r.textures) {
		return scene.Texture{}, false
	}
	return r.textures[handle-1], true
}
