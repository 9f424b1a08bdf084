// Package config reads the settings shared by the commands from a TOML file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Site generators.
const (
	GeneratorGrid   = "grid"
	GeneratorRandom = "random"
)

// Config holds the plot and run settings.
type Config struct {
	Width  float64
	Height float64
	Sites  int

	// Generator is "grid" or "random".
	Generator string
	// Seed for the random generator. Zero picks a seed from the clock.
	Seed int64

	// Delaunay overlays the triangulation on rendered output.
	Delaunay bool

	Addr     string
	Output   string
	LogLevel string
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Width:     1000,
		Height:    1000,
		Sites:     12,
		Generator: GeneratorGrid,
		Addr:      ":8080",
		Output:    "voronoi.html",
		LogLevel:  "info",
	}
}

// Load reads the file at path on top of Default. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: open")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return c, nil
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the settings can produce a diagram.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("plot size must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.Sites < 0 {
		return errors.Errorf("negative site count %d", c.Sites)
	}
	switch c.Generator {
	case GeneratorGrid, GeneratorRandom:
	default:
		return errors.Errorf("unknown generator %q", c.Generator)
	}
	return nil
}
