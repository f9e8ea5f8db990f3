// Package preview shows a scene in a window, and reloads it when its source
// changes.
//
// Models are projected with the matrices from package geom and drawn in
// software: triangles with DrawTriangles, sorted back to front since there is
// no depth buffer, lines with vector.StrokeLine and points as small filled
// squares.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"src.tvk.sh/pkg/config"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/logutil"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/render"
)

var logger = logutil.GetLogger("[preview] ")

var errSourceNotUTF8 = errors.New("source is not UTF-8")

// Run opens a window showing the scene in the file at path, and returns when
// the window is closed. Escape or Q closes the window, and R reloads the scene
// even when it sets the manual interpreting mode.
func Run(path string, cfg config.Config) error {
	g := newGame(path, cfg)
	if err := g.load(false); err != nil {
		return err
	}
	p := cfg.Preview
	ebiten.SetWindowTitle(p.Title + " - " + filepath.Base(path))
	ebiten.SetWindowSize(int(float64(p.Width)*p.Scale), int(float64(p.Height)*p.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	path string
	poll time.Duration
	rec  *render.Recorder

	code     string
	mode     eval.Mode
	loaded   bool
	status   string
	lastPoll time.Time

	canvas
}

func newGame(path string, cfg config.Config) *game {
	dir := cfg.TextureDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	rec := render.NewRecorder(dir)
	return &game{path: path, poll: cfg.PollInterval, rec: rec, canvas: newCanvas(rec)}
}

// Evaluates the source again if it has changed. In manual mode, changes are
// only picked up when force is true.
func (g *game) load(force bool) error {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return err
	}
	code := string(data)
	if g.loaded && !force && (code == g.code || g.mode == eval.Manual) {
		return nil
	}
	if !utf8.ValidString(code) {
		return errSourceNotUTF8
	}
	g.rec.Clear()
	g.dropTextures()
	res := eval.Pass(parse.Source{Name: g.path, Code: code}, g.rec)
	g.code, g.mode, g.loaded = code, res.Mode, true
	g.status = status(res)
	logger.Printf("loaded %s: %s", g.path, g.status)
	return nil
}

func status(res eval.PassResult) string {
	switch {
	case res.Fatal != nil:
		return res.Fatal.Error()
	case len(res.ParseErrors) > 0:
		return res.ParseErrors[0].Error()
	case len(res.Diagnostics) > 0:
		return res.Diagnostics[0].Error()
	}
	return fmt.Sprintf("%d forms, %s mode", res.Forms, res.Mode)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	force := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if !force && time.Since(g.lastPoll) < g.poll {
		return nil
	}
	g.lastPoll = time.Now()
	if err := g.load(force); err != nil {
		logger.Println("reload:", err)
		g.status = err.Error()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.draw(screen)
	ebitenutil.DebugPrint(screen, g.status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
