package app

import (
	"gridcrawl/internal/config"
	"gridcrawl/pkg/core"
	"gridcrawl/pkg/grid"
)

// Generator returns the cell generator described by cfg for the given seed:
// cave maps when cfg.Passes is positive, uniform noise otherwise.
func Generator(cfg *config.Config, seed int64) grid.Generator[uint8] {
	rng := core.NewRNG(seed)
	if cfg.Passes > 0 {
		return core.Caves(rng, cfg.Height, cfg.Width, cfg.Fill, cfg.Passes)
	}
	return rng.Uniform(uint8(cfg.Palette))
}

// NewWorld builds the grid described by cfg.
func NewWorld(cfg *config.Config) (*grid.Grid[uint8], error) {
	return grid.NewGenerated(cfg.Height, cfg.Width, Generator(cfg, cfg.Seed))
}
