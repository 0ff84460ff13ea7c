// Package ebitengine runs a sprig Stage on Ebitengine: it draws through the
// ebiten vector package, samples mouse and touch input into sprig events, and
// provides a Run loop that repaints only when the stage asks for it.
package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sprig"
)

// Renderer implements sprig.Renderer on an ebiten image. Target is swapped
// for the screen image at the start of every draw.
type Renderer struct {
	Target    *ebiten.Image
	AntiAlias bool
}

// FillRect implements sprig.Renderer. ebiten's default source-over blend
// composites the color over existing content.
func (r *Renderer) FillRect(rc sprig.Rect, c sprig.Color) {
	if r.Target == nil || rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	vector.DrawFilledRect(r.Target,
		float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height),
		toNRGBA(c), r.AntiAlias)
}

// StrokeRect implements sprig.Renderer. The 1px stroke is centred on pixel
// rows and columns so it covers exactly the edge pixels of rc.
func (r *Renderer) StrokeRect(rc sprig.Rect, c sprig.Color) {
	if r.Target == nil || rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	vector.StrokeRect(r.Target,
		float32(rc.X)+0.5, float32(rc.Y)+0.5, float32(rc.Width-1), float32(rc.Height-1),
		1, toNRGBA(c), r.AntiAlias)
}

// toNRGBA converts a sprig color to a non-premultiplied 8-bit color.
func toNRGBA(c sprig.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Window implements sprig.Window for the ebiten window.
type Window struct{}

// Size returns the window size in device-independent pixels.
func (Window) Size() (int, int) {
	return ebiten.WindowSize()
}
