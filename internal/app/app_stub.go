//go:build !ebiten

package app

import (
	"errors"

	"go.uber.org/zap"

	"gridcrawl/internal/config"
	"gridcrawl/internal/core"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the viewer requires building with the 'ebiten' tag")

// Run always reports that the GUI build tag is missing.
func Run(*config.Config, core.Factory, *zap.Logger) error {
	return ErrNoGUI
}
