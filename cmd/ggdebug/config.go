package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	debugger "github.com/gogpu/gg-debugger"
)

const defaultConfigFile = "ggdebug.toml"

// Config holds the tool settings.
type Config struct {
	// Backend names the registered backend used by render and preview.
	Backend string `toml:"backend"`

	// Width and Height size the frame when a recording carries no size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// PreviewSize is the edge length of the square preview image.
	PreviewSize int `toml:"preview_size"`

	// Binaries embeds image, font and effect bytes when encoding.
	Binaries bool `toml:"binaries"`

	// Format is the default output format of convert: json or yaml.
	Format string `toml:"format"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Backend:     "raster",
		Width:       640,
		Height:      480,
		PreviewSize: 256,
		Binaries:    true,
		Format:      formatJSON,
	}
}

// LoadConfig reads path over the defaults. An empty path reads
// ggdebug.toml when it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid frame size %dx%d", c.Width, c.Height)
	}
	if c.PreviewSize <= 0 {
		return fmt.Errorf("config: invalid preview size %d", c.PreviewSize)
	}
	if !debugger.IsRegistered(c.Backend) {
		return fmt.Errorf("config: unknown backend %q (available: %v)", c.Backend, debugger.Backends())
	}
	switch c.Format {
	case formatJSON, formatYAML:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	return nil
}
