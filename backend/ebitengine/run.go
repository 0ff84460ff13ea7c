package ebitengine

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/sprig"
)

// RunConfig holds the presentation options of Run. Window title and size
// come from the stage's sprig.Config.
type RunConfig struct {
	// ClearColor fills the screen before every render.
	ClearColor sprig.Color
	// ShowFPS overlays FPS and TPS and repaints every frame.
	ShowFPS bool
	// ScreenshotDir receives PNGs queued with Stage.Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string
}

// game implements ebiten.Game on top of a sprig Stage.
type game struct {
	stage    *sprig.Stage
	input    *Input
	renderer *Renderer
	rc       RunConfig
	width    int
	height   int
}

// Run opens a window and drives stage until the window is closed. The screen
// is only repainted on frames where the stage reports a pending render.
func Run(stage *sprig.Stage, rc RunConfig) error {
	cfg := stage.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetScreenClearedEveryFrame(false)

	g := &game{
		stage:    stage,
		input:    NewInput(),
		renderer: &Renderer{},
		rc:       rc,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	stage.Bind(g.renderer, Window{})
	stage.Invalidate()

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.stage.Update(dt, g.input.Poll()...)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.rc.ShowFPS {
		g.stage.Invalidate()
	}
	if g.stage.NeedsRender() {
		screen.Fill(toNRGBA(g.rc.ClearColor))
		g.renderer.Target = screen
		g.stage.Draw()
		if g.rc.ShowFPS {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		}
	}
	// The screen is not cleared between frames, so it still holds the last
	// render when nothing changed.
	g.flushScreenshots(screen)
}

func (g *game) Layout(int, int) (int, int) {
	return g.width, g.height
}
