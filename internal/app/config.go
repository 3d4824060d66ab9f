package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"searchlens/analyzer/evaldata"
)

const (
	fyneAppID         = "io.searchlens.analyzer"
	defaultConfigFile = "config.yaml"

	// Environment overrides, also honored from a .env file.
	envConfigPath = "SEARCHLENS_CONFIG"
	envDataSource = "SEARCHLENS_DATA"
)

// Config aggregates the runtime settings read from config.yaml.
type Config struct {
	// DataSource is an http(s) URL or a local file path for the dataset.
	DataSource string `yaml:"data_source"`
	// DetailDelayMS is the short pause before a selected query's results
	// render, so rapid re-selection feels smooth rather than flickery.
	DetailDelayMS int    `yaml:"detail_delay_ms"`
	Placeholder   string `yaml:"placeholder_image"`
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
}

// DetailDelay returns the render delay as a duration.
func (c Config) DetailDelay() time.Duration {
	return time.Duration(c.DetailDelayMS) * time.Millisecond
}

func defaultConfig() Config {
	return Config{
		DataSource:    evaldata.DefaultSource,
		DetailDelayMS: 200,
		Placeholder:   evaldata.PlaceholderImageURL,
		WindowWidth:   1180,
		WindowHeight:  760,
	}
}

func sanitizeConfig(cfg Config) Config {
	cfg.DataSource = strings.TrimSpace(cfg.DataSource)
	if cfg.DataSource == "" {
		cfg.DataSource = evaldata.DefaultSource
	}
	if cfg.DetailDelayMS < 0 {
		cfg.DetailDelayMS = 0
	}
	if cfg.DetailDelayMS > 2000 {
		cfg.DetailDelayMS = 2000
	}
	if strings.TrimSpace(cfg.Placeholder) == "" {
		cfg.Placeholder = evaldata.PlaceholderImageURL
	}
	if cfg.WindowWidth < 640 {
		cfg.WindowWidth = 1180
	}
	if cfg.WindowHeight < 480 {
		cfg.WindowHeight = 760
	}
	return cfg
}

// loadConfig reads the YAML config at path, falling back to defaults when
// the file does not exist. Environment variables override file values.
func loadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if src := os.Getenv(envDataSource); src != "" {
		cfg.DataSource = src
	}
	return sanitizeConfig(cfg), nil
}
