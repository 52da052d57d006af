// Package config loads the CLI configuration from a YAML file, filling in
// defaults so the tool runs with no file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/promoforge/compositor/asset"
)

type Config struct {
	Brand  string `yaml:"brand"`
	Output Output `yaml:"output"`
	Redis  Redis  `yaml:"redis"`
	Log    Log    `yaml:"log"`
}

type Output struct {
	Dir      string `yaml:"dir"`
	Encoding string `yaml:"encoding"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Output: Output{Dir: ".", Encoding: "png"},
		Redis:  Redis{Addr: "localhost:6379"},
		Log:    Log{Level: "info"},
	}
}

// Load reads a config file over the defaults. An empty path, or a missing
// file at the default location, yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// OutputEncoding resolves the configured encoding name.
func (c Config) OutputEncoding() (asset.Encoding, error) {
	switch c.Output.Encoding {
	case "", "png":
		return asset.PNG, nil
	case "jpeg", "jpg":
		return asset.JPEG, nil
	default:
		return "", fmt.Errorf("config: unknown encoding %q", c.Output.Encoding)
	}
}
