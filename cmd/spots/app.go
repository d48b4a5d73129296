package main

import (
	"fmt"
	"os"

	"github.com/go-drift/spots/internal/config"
	"github.com/go-drift/spots/internal/logger"
	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/errors"
	"github.com/go-drift/spots/pkg/graphics"
	"github.com/go-drift/spots/pkg/spots"
)

// app bundles what every command needs: settings and a registry configured
// from them.
type app struct {
	cfg      *config.Config
	registry *spots.Registry
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if rootFlags.width > 0 {
		cfg.ViewportWidth = rootFlags.width
	}
	if rootFlags.height > 0 {
		cfg.ViewportHeight = rootFlags.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Default.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	if rootFlags.verbose {
		logger.Default.SetOutput(os.Stderr)
	}
	errors.SetHandler(logger.Default.ErrorHandler())

	reg := spots.NewRegistry()
	if cfg.DefaultKind != "" {
		if !reg.IsRegistered(cfg.DefaultKind) {
			logger.Warn("default kind %q is not registered", cfg.DefaultKind)
		}
		reg.SetDefaultKind(cfg.DefaultKind)
	}
	return &app{cfg: cfg, registry: reg}, nil
}

// load decodes the document at path and lays it out in a controller sized
// to the configured viewport.
func (a *app) load(path string) (*spots.Controller, error) {
	components, err := component.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded %d components from %s", len(components), path)

	for i := range components {
		components[i] = a.applyDefaults(components[i])
	}

	ctrl := spots.NewController(a.registry, components)
	ctrl.SetViewport(graphics.Size{Width: a.cfg.ViewportWidth, Height: a.cfg.ViewportHeight})
	logger.Info("laid out %d spots, content height %.0f", len(ctrl.Spots()), ctrl.ScrollView().ContentSize.Value().Height)
	return ctrl, nil
}

// applyDefaults fills spacing a component leaves unset from the settings.
func (a *app) applyDefaults(c component.Component) component.Component {
	if c.Layout.ItemSpacing == 0 {
		c.Layout.ItemSpacing = a.cfg.ItemSpacing
	}
	if c.Layout.LineSpacing == 0 {
		c.Layout.LineSpacing = a.cfg.LineSpacing
	}
	return c
}
