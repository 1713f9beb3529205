//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 18
	swatchSize   = 10
)

// HUD renders the status panel to the right of the grid view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, st Status) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	lines := st.Lines()
	first := len(lines) - len(st.Counts)
	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight
		x := panelPadding
		if i >= first {
			h.swatch(x, y-swatchSize, st.Counts[i-first].Color)
			x += swatchSize + 6
		}
		text.Draw(h.panel, line, face, x, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) swatch(x, y int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(swatchSize, swatchSize)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}
