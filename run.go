package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and frame driver used by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ScreenRect is the world-space area shown in the window. The zero
	// value shows (0, 0)–(10, 10).
	ScreenRect Rect
	Resizable  bool
	ShowFPS    bool
	Debug      bool
}

// DefaultScreenRect is used when RunConfig.ScreenRect is empty.
var DefaultScreenRect = NewRect(Vector{0, 0}, Vector{10, 10})

// game adapts a Scene to ebiten.Game.
type game struct {
	scene      *Scene
	screenRect Rect
	fps        *fpsOverlay
	screen     EbitenImage
}

func newGame(scene *Scene, cfg RunConfig) *game {
	g := &game{scene: scene, screenRect: cfg.ScreenRect}
	if g.screenRect.Width() == 0 || g.screenRect.Height() == 0 {
		g.screenRect = DefaultScreenRect
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	return g
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.fps != nil {
		g.fps.update(dt)
	}
	return g.scene.Update(dt)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.screen.img = screen
	g.scene.Draw(&g.screen, g.screenRect)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.scene.flushScreenshots(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window is closed or
// Scene.Update returns an error. A scene without a title uses its name.
func Run(scene *Scene, cfg RunConfig) error {
	title := cfg.Title
	if title == "" {
		title = scene.Name
	}
	ebiten.SetWindowTitle(title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(newGame(scene, cfg))
}
