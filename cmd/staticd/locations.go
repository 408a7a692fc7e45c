package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlowe/staticd"
	"github.com/nlowe/staticd/config"
	"github.com/nlowe/staticd/filesystem"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var files []string
	if cf, _ := cmd.Flags().GetString("config"); cf != "" {
		files = append(files, cf)
	}

	cfg, err := config.Load(files, cmd.Flags())
	if err != nil {
		return nil, err
	}

	// --root is a shortcut for serving a single directory.
	if root := viper.GetString("root"); root != "" {
		cfg.Locations = []config.LocationConfig{{Type: "dir", Path: root}}
	}

	if len(cfg.Locations) == 0 {
		return nil, errors.New("no locations configured: set locations in the config file or pass --root")
	}

	return cfg, nil
}

// openLocations opens every configured location in order. The returned
// cleanup closes whatever was opened, including on partial failure.
func openLocations(cfg *config.Config) ([]staticd.Location, func(), error) {
	var locations []staticd.Location
	var closers []func() error

	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				slog.Warn("failed to close location", "err", err)
			}
		}
	}

	for _, lc := range cfg.Locations {
		switch lc.Type {
		case "dir":
			dir, err := filesystem.NewDir(lc.Path)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("open location %q: %w", lc.Path, err)
			}
			locations = append(locations, dir)
			closers = append(closers, dir.Close)
		case "zip":
			bundle, err := filesystem.OpenZip(lc.Path)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("open location %q: %w", lc.Path, err)
			}
			locations = append(locations, bundle)
			closers = append(closers, bundle.Close)
		default:
			cleanup()
			return nil, nil, fmt.Errorf("unknown location type %q", lc.Type)
		}
	}

	return locations, cleanup, nil
}
