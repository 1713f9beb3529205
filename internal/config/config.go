// Package config loads gridcrawl settings from defaults, an optional YAML
// file, GRIDCRAWL_* environment variables and command-line flags, in rising
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeySeed     = "seed"
	KeyPalette  = "palette"
	KeyFill     = "fill"
	KeyPasses   = "passes"
	KeyWalk     = "walk"
	KeyStartRow = "start_row"
	KeyStartCol = "start_col"
	KeyScale    = "scale"
	KeyTPS      = "tps"
	KeyLogLevel = "log_level"
	KeyFormat   = "format"
	KeyParams   = "params"
)

const envPrefix = "GRIDCRAWL"

var keys = []string{
	KeyWidth, KeyHeight, KeySeed, KeyPalette, KeyFill, KeyPasses, KeyWalk,
	KeyStartRow, KeyStartCol, KeyScale, KeyTPS, KeyLogLevel, KeyFormat, KeyParams,
}

// flagName maps a config key to its command-line flag name.
func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

// Validation errors.
var (
	ErrInvalidSize   = errors.New("width and height must be positive")
	ErrInvalidStart  = errors.New("start cell outside the grid")
	ErrInvalidFormat = errors.New("format must be text or yaml")
)

// Config represents the runtime parameters of the CLI and viewer.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Palette int
	// Fill and Passes shape cave maps; Passes 0 gives uniform noise over Palette values.
	Fill   float64
	Passes int

	Walk     string
	StartRow int
	StartCol int
	Params   map[string]string

	Scale    int
	TPS      int
	LogLevel string
	Format   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    64,
		Height:   32,
		Seed:     42,
		Palette:  3,
		Fill:     0.45,
		Passes:   0,
		Walk:     "regions",
		Scale:    12,
		TPS:      60,
		LogLevel: "info",
		Format:   "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.Int(flagName(KeyWidth), c.Width, "grid width in cells")
	fs.Int(flagName(KeyHeight), c.Height, "grid height in cells")
	fs.Int64(flagName(KeySeed), c.Seed, "seed for grid generation")
	fs.Int(flagName(KeyPalette), c.Palette, "number of distinct cell values for uniform grids")
	fs.Float64(flagName(KeyFill), c.Fill, "initial wall probability for cave grids")
	fs.Int(flagName(KeyPasses), c.Passes, "cave smoothing passes (0 = uniform noise)")
	fs.String(flagName(KeyWalk), c.Walk, "walk to run")
	fs.Int(flagName(KeyStartRow), c.StartRow, "row of the start cell")
	fs.Int(flagName(KeyStartCol), c.StartCol, "column of the start cell")
	fs.StringToString(flagName(KeyParams), nil, "walk parameters as key=value pairs")
	fs.Int(flagName(KeyScale), c.Scale, "pixel scale multiplier for the viewer")
	fs.Int(flagName(KeyTPS), c.TPS, "viewer ticks per second")
	fs.String(flagName(KeyLogLevel), c.LogLevel, "log level (debug, info, warn, error)")
	fs.String(flagName(KeyFormat), c.Format, "output format for run (text, yaml)")
}

// Load resolves a Config. path may be empty; a named file that does not exist
// is an error, flags that were not set on fs fall back to file, env and
// defaults.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	def := NewConfig()
	v := viper.New()
	v.SetDefault(KeyWidth, def.Width)
	v.SetDefault(KeyHeight, def.Height)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyPalette, def.Palette)
	v.SetDefault(KeyFill, def.Fill)
	v.SetDefault(KeyPasses, def.Passes)
	v.SetDefault(KeyWalk, def.Walk)
	v.SetDefault(KeyStartRow, def.StartRow)
	v.SetDefault(KeyStartCol, def.StartCol)
	v.SetDefault(KeyScale, def.Scale)
	v.SetDefault(KeyTPS, def.TPS)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyFormat, def.Format)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if fs != nil {
		for _, key := range keys {
			f := fs.Lookup(flagName(key))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		}
	}

	c := &Config{
		Width:    v.GetInt(KeyWidth),
		Height:   v.GetInt(KeyHeight),
		Seed:     v.GetInt64(KeySeed),
		Palette:  v.GetInt(KeyPalette),
		Fill:     v.GetFloat64(KeyFill),
		Passes:   v.GetInt(KeyPasses),
		Walk:     v.GetString(KeyWalk),
		StartRow: v.GetInt(KeyStartRow),
		StartCol: v.GetInt(KeyStartCol),
		Params:   v.GetStringMapString(KeyParams),
		Scale:    v.GetInt(KeyScale),
		TPS:      v.GetInt(KeyTPS),
		LogLevel: v.GetString(KeyLogLevel),
		Format:   strings.ToLower(v.GetString(KeyFormat)),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the Config describes a buildable grid and start cell.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, c.Height, c.Width)
	}
	if c.StartRow < 0 || c.StartRow >= c.Height || c.StartCol < 0 || c.StartCol >= c.Width {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidStart, c.StartRow, c.StartCol)
	}
	if c.Format != "text" && c.Format != "yaml" {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if c.Palette <= 0 {
		c.Palette = 1
	}
	if c.Palette > 255 {
		c.Palette = 255
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return nil
}
