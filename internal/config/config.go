package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lorenzview/internal/lorenz"
)

const DefaultFPS = 30

// Config is everything adjustable from outside the program: the Lorenz
// coefficients, the starting view, and the frame rate.
type Config struct {
	S         float64 `yaml:"s"`
	B         float64 `yaml:"b"`
	R         float64 `yaml:"r"`
	Azimuth   int     `yaml:"azimuth"`
	Elevation int     `yaml:"elevation"`
	Zoom      float64 `yaml:"zoom"`
	FPS       int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	p := lorenz.DefaultParams()
	return &Config{
		S:    p.S,
		B:    p.B,
		R:    p.R,
		Zoom: 1.0,
		FPS:  DefaultFPS,
	}
}

// Load reads a yaml file over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params returns the coefficient set the config describes.
func (c *Config) Params() lorenz.Params {
	return lorenz.Params{S: c.S, B: c.B, R: c.R}
}
