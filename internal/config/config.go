package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStiffness     = 50.0
	DefaultDamping       = 8.0
	DefaultTangentLength = 50.0
	DefaultWidth         = 1280
	DefaultHeight        = 720
	DefaultFrameRate     = 60
)

type Config struct {
	Stiffness     float64 `yaml:"stiffness"`
	Damping       float64 `yaml:"damping"`
	TangentLength float64 `yaml:"tangent_length"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	FrameRate     int     `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Stiffness:     DefaultStiffness,
		Damping:       DefaultDamping,
		TangentLength: DefaultTangentLength,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		FrameRate:     DefaultFrameRate,
	}
}

// Load reads a yaml config file on top of the defaults. Values are
// passed through as written: out-of-range stiffness or damping is the
// caller's responsibility, same as the live controls.
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
