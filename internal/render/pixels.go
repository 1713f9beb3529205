package render

import (
	"image/color"
	"sync"

	"github.com/google/uuid"

	"gridcrawl/pkg/grid"
)

// DefaultPalette colors cell values 0..n; the last entry is reused for larger values.
var DefaultPalette = []color.RGBA{
	{R: 0x1d, G: 0x1f, B: 0x21, A: 0xff},
	{R: 0x8a, G: 0x9a, B: 0x5b, A: 0xff},
	{R: 0x5f, G: 0x81, B: 0x9d, A: 0xff},
	{R: 0xde, G: 0x93, B: 0x5f, A: 0xff},
	{R: 0xb2, G: 0x94, B: 0xbb, A: 0xff},
}

// EmptyColor is painted for cells without a value.
var EmptyColor = color.RGBA{}

// Mirror keeps an RGBA buffer in sync with a Grid[uint8]. Bind paints every
// cell once and then repaints single cells from their change listeners.
type Mirror struct {
	w, h    int
	palette []color.RGBA

	mu  sync.Mutex
	buf []byte

	grid *grid.Grid[uint8]
	regs []uuid.UUID
}

// NewMirror allocates a mirror for a grid of size w*h.
func NewMirror(w, h int, palette []color.RGBA) *Mirror {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Mirror{w: w, h: h, palette: palette, buf: make([]byte, 4*w*h)}
}

// Bind paints g and subscribes to every cell. A mirror follows one grid at a
// time; binding again first unbinds the previous grid.
func (m *Mirror) Bind(g *grid.Grid[uint8]) {
	m.Unbind()
	if g.Width() != m.w || g.Height() != m.h {
		return
	}
	m.grid = g
	m.regs = make([]uuid.UUID, 0, g.Len())
	for i, c := range g.All() {
		m.paint(i, c.Value())
		m.regs = append(m.regs, c.AddListener(m.changed))
	}
}

// Unbind removes every listener registered by Bind.
func (m *Mirror) Unbind() {
	if m.grid == nil {
		return
	}
	for i, c := range m.grid.All() {
		c.RemoveListener(m.regs[i])
	}
	m.grid = nil
	m.regs = nil
}

// Bound reports whether the mirror currently follows a grid.
func (m *Mirror) Bound() bool { return m.grid != nil }

func (m *Mirror) changed(c *grid.Cell[uint8], _, newValue grid.Optional[uint8]) {
	m.paint(c.Row()*m.w+c.Column(), newValue)
}

func (m *Mirror) paint(i int, v grid.Optional[uint8]) {
	col := EmptyColor
	if val, ok := v.Get(); ok {
		col = paletteColor(m.palette, val)
	}
	m.mu.Lock()
	setPixel(m.buf, i, col)
	m.mu.Unlock()
}

// Pixels copies the current buffer into dst, overlaying highlighted cells,
// and returns it. dst is reallocated when too small.
func (m *Mirror) Pixels(dst []byte, highlights map[*grid.Cell[uint8]]color.RGBA) []byte {
	if cap(dst) < len(m.buf) {
		dst = make([]byte, len(m.buf))
	}
	dst = dst[:len(m.buf)]
	m.mu.Lock()
	copy(dst, m.buf)
	m.mu.Unlock()
	for c, col := range highlights {
		if c.Row() < m.h && c.Column() < m.w {
			setPixel(dst, c.Row()*m.w+c.Column(), blend(col, dst, c.Row()*m.w+c.Column()))
		}
	}
	return dst
}

// Size returns the mirrored grid dimensions.
func (m *Mirror) Size() (int, int) { return m.w, m.h }

func paletteColor(palette []color.RGBA, v uint8) color.RGBA {
	idx := int(v)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

func setPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// blend mixes an overlay color over the pixel at index i using the overlay's alpha.
func blend(over color.RGBA, buf []byte, i int) color.RGBA {
	base := i * 4
	a := uint16(over.A)
	mix := func(top uint8, bottom byte) uint8 {
		return uint8((uint16(top)*a + uint16(bottom)*(255-a)) / 255)
	}
	return color.RGBA{
		R: mix(over.R, buf[base+0]),
		G: mix(over.G, buf[base+1]),
		B: mix(over.B, buf[base+2]),
		A: 0xff,
	}
}
