package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"vsasakiv/lifeframe/frame"
)

// Ebiten shows the bitmap in an ebiten window, scaled by Scale.
type Ebiten struct {
	Scale int
}

type game struct {
	pixels  []byte
	screen  *ebiten.Image
	written bool
	caption string
	width   int
	height  int
}

func (backend Ebiten) Show(bmp frame.Bitmap, title string) error {
	scale := max(backend.Scale, 1)
	ebiten.SetWindowSize(bmp.Width*scale, bmp.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{
		pixels:  make([]byte, bmp.Width*bmp.Height*4),
		screen:  ebiten.NewImage(bmp.Width, bmp.Height),
		caption: title,
		width:   bmp.Width,
		height:  bmp.Height,
	}
	ConvertToRGBA(g.pixels, bmp)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// the bitmap never changes, upload it once
	if !g.written {
		g.screen.WritePixels(g.pixels)
		g.written = true
	}
	screen.DrawImage(g.screen, nil)
	ebitenutil.DebugPrint(screen, g.caption)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
