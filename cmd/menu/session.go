package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/menuengine/internal/domain/selector"
	"github.com/younwookim/menuengine/internal/infrastructure/assets"
	"github.com/younwookim/menuengine/internal/infrastructure/config"
)

// session is everything loaded before a window opens
type session struct {
	settings  *config.Settings
	locations []selector.Point
	assets    *assets.Loader
}

// configDir returns the config filesystem selected by --config
func configDir() (fs.FS, error) {
	if flagConfig != "" {
		return os.DirFS(flagConfig), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return fsys, nil
}

// loadSession loads and validates settings, resolves selector locations and
// checks that every referenced asset exists.
func loadSession(configs, assetFS fs.FS) (*session, error) {
	loader := config.NewFSLoader(configs, ".")
	settings, err := loader.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	locations, err := loader.Locations(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load selector locations: %w", err)
	}

	al := assets.NewFSLoader(assetFS)
	if err := al.Check(settings.AssetPaths()...); err != nil {
		return nil, err
	}

	return &session{
		settings:  settings,
		locations: locations,
		assets:    al,
	}, nil
}
