//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"gridcrawl/internal/config"
	"gridcrawl/internal/core"
	"gridcrawl/internal/render"
	"gridcrawl/internal/ui"
	"gridcrawl/pkg/crawler"
	"gridcrawl/pkg/grid"
)

const hudWidth = 180

var highlightColors = []color.RGBA{
	{R: 0xff, G: 0xe0, B: 0x40, A: 0xc0},
	{R: 0xff, G: 0x50, B: 0x50, A: 0xa0},
	{R: 0x40, G: 0xd0, B: 0xff, A: 0xa0},
	{R: 0xff, G: 0x70, B: 0xe0, A: 0xa0},
}

// Game adapts a crawler over a uint8 grid to the ebiten.Game interface.
type Game struct {
	cfg    *config.Config
	logger *zap.Logger

	grid    *grid.Grid[uint8]
	crawler *crawler.Crawler[uint8]
	mirror  *render.Mirror
	hud     *ui.HUD

	img *ebiten.Image
	buf []byte

	seed   int64
	status string
}

// New constructs a Game for the world described by cfg, crawled by the walk
// that factory builds.
func New(cfg *config.Config, factory core.Factory, logger *zap.Logger) (*Game, error) {
	g, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	mirror := render.NewMirror(cfg.Width, cfg.Height, render.DefaultPalette)
	mirror.Bind(g)
	return &Game{
		cfg:     cfg,
		logger:  logger,
		grid:    g,
		crawler: crawler.New(g, factory(cfg.Params), crawler.WithLogger(logger)),
		mirror:  mirror,
		hud:     ui.NewHUD(hudWidth),
		img:     ebiten.NewImage(cfg.Width, cfg.Height),
		seed:    cfg.Seed,
		status:  "click a cell to crawl",
	}, nil
}

// Crawl stops any running walk and starts a new one from (row, column).
func (g *Game) Crawl(row, column int) {
	start, err := g.grid.Get(row, column)
	if err != nil {
		return
	}
	g.halt()
	g.crawler.Reset()
	if _, err := g.crawler.StartCrawling(context.Background(), start); err != nil {
		g.status = err.Error()
		return
	}
	g.status = fmt.Sprintf("crawling from (%d,%d)", row, column)
}

// Reseed regenerates the world with seed. The mirror repaints through the
// cell listeners.
func (g *Game) Reseed(seed int64) {
	g.halt()
	g.crawler.Reset()
	g.seed = seed
	g.grid.Regenerate(Generator(g.cfg, seed))
	g.status = fmt.Sprintf("seed %d", seed)
}

// halt asks the running walk to stop and waits for it.
func (g *Game) halt() {
	g.crawler.SetGlobalState(core.StopState)
	g.crawler.Stop()
	if err := g.crawler.BlockUntilFinished(); err != nil && !errors.Is(err, crawler.ErrStopped) {
		g.logger.Warn("walk failed", zap.Error(err))
	}
	g.crawler.SetGlobalState(0)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.halt()
		g.mirror.Unbind()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.crawler.SetGlobalState(core.StopState)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.cfg.Width*g.cfg.Scale {
			g.Crawl(y/g.cfg.Scale, x/g.cfg.Scale)
		}
	}
	return nil
}

// Draw renders the grid with flagged cells highlighted, and the HUD beside it.
func (g *Game) Draw(screen *ebiten.Image) {
	st := ui.Status{
		Walk:    g.cfg.Walk,
		Seed:    g.seed,
		Running: g.crawler.Running(),
		Message: g.status,
	}
	highlights := make(map[*grid.Cell[uint8]]color.RGBA)
	flags := g.crawler.Flags()
	for i := len(flags) - 1; i >= 0; i-- {
		if flags[i] < 0 {
			continue
		}
		col := highlightColors[i%len(highlightColors)]
		cells := g.crawler.Flagged(flags[i])
		for _, c := range cells {
			highlights[c] = col
		}
		st.Counts = append([]ui.FlagCount{{Flag: flags[i], Cells: len(cells), Color: col}}, st.Counts...)
	}
	g.buf = g.mirror.Pixels(g.buf, highlights)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.img, op)

	w, h := g.mirror.Size()
	g.hud.Draw(screen, w*g.cfg.Scale, h*g.cfg.Scale, st)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.mirror.Size()
	return w*g.cfg.Scale + g.hud.Width(), h * g.cfg.Scale
}

// Run opens the viewer window and blocks until it is closed.
func Run(cfg *config.Config, factory core.Factory, logger *zap.Logger) error {
	game, err := New(cfg, factory, logger)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("gridcrawl - " + cfg.Walk)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+hudWidth, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
