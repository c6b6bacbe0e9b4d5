package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mkoester/lightbox/pkg/pipeline"
)

// Config is the optional TOML configuration file. Flags override anything
// set here.
//
// Example (~/.config/lightbox/config.toml):
//
//	root = "/photos"
//	recursive = true
//	mode = "adaptive"
//	cell_size = 200
//
//	[serve]
//	addr = "localhost:8391"
//	redis = "localhost:6379"
type Config struct {
	Root      string  `toml:"root"`
	Recursive bool    `toml:"recursive"`
	ProbeExif bool    `toml:"probe_exif"`
	Mode      string  `toml:"mode"`
	View      string  `toml:"view"`
	CellSize  float64 `toml:"cell_size"`
	Width     float64 `toml:"width"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the sidecar service.
type ServeConfig struct {
	Addr  string `toml:"addr"`
	Redis string `toml:"redis"` // host:port; empty disables the redis cache
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; it yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		defaultPath, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig copies config values into options, only where the option is
// still at its zero value (flags win).
func applyConfig(opts *pipeline.Options, cfg Config) {
	if opts.Root == "" {
		opts.Root = cfg.Root
	}
	if !opts.Recursive {
		opts.Recursive = cfg.Recursive
	}
	if !opts.ProbeExif {
		opts.ProbeExif = cfg.ProbeExif
	}
	if opts.Mode == "" {
		opts.Mode = cfg.Mode
	}
	if opts.View == "" {
		opts.View = cfg.View
	}
	if opts.CellSize == 0 {
		opts.CellSize = cfg.CellSize
	}
	if opts.ContainerWidth == 0 {
		opts.ContainerWidth = cfg.Width
	}
}
