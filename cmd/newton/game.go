package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gogpu/newton"
)

// game adapts the renderer and controller to ebiten's per-frame loop.
type game struct {
	renderer *newton.Renderer
	ctrl     *newton.Controller
	texture  *ebiten.Image
}

func newGame(r *newton.Renderer) *game {
	pix := r.Pixmap()
	tex := ebiten.NewImage(pix.Width(), pix.Height())
	tex.WritePixels(pix.Data())
	return &game{
		renderer: r,
		ctrl:     newton.NewController(),
		texture:  tex,
	}
}

// Update polls the key states once per frame. A dirty viewport forces
// a full synchronous recompute before the frame is drawn; input
// arriving during the recompute is observed on the following frame.
func (g *game) Update() error {
	in := newton.Input{
		ZoomIn:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ZoomOut:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		PanUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		PanDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		PanLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		PanRight: ebiten.IsKeyPressed(ebiten.KeyD),
	}
	if g.ctrl.Apply(in, g.renderer.Viewport()) {
		g.renderer.Recompute()
		g.texture.WritePixels(g.renderer.Pixmap().Data())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.texture, nil)

	v := g.renderer.Viewport()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("span: %.3g  center: (%.3g, %.3g)\nfps: %.0f",
		v.UpperX-v.LowerX,
		(v.LowerX+v.UpperX)/2,
		(v.LowerY+v.UpperY)/2,
		ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Pixmap().Width(), g.renderer.Pixmap().Height()
}
