// Package config loads the dashboard settings file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Data      DataConfig      `yaml:"data"`
	Server    ServerConfig    `yaml:"server"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type DataConfig struct {
	// File is the CSV read when no dataset is given explicitly.
	File string `yaml:"file"`
	// Dataset is the name of a dataset imported into the workspace. Has preference over File.
	Dataset string `yaml:"dataset"`
}

type ServerConfig struct {
	Port uint `yaml:"port"`
}

type DashboardConfig struct {
	Title    string  `yaml:"title"`
	Footer   string  `yaml:"footer"`
	MapStyle string  `yaml:"mapStyle"`
	MapZoom  float64 `yaml:"mapZoom"`
	SizeMax  float64 `yaml:"sizeMax"`
}

func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			File: "BDCrimes.csv",
		},
		Server: ServerConfig{
			Port: 2427,
		},
		Dashboard: DashboardConfig{
			Title:    "Bangladesh Crime Statistics Dashboard (2010 - 2019)",
			Footer:   "Data Visualization with Plotly",
			MapStyle: "carto-positron",
			MapZoom:  5,
			SizeMax:  30,
		},
	}
}

func (c *Config) Validate() error {
	if c.Data.File == "" && c.Data.Dataset == "" {
		return errors.New("data.file or data.dataset is required")
	}
	if c.Server.Port == 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server.port: %v", c.Server.Port)
	}
	if c.Dashboard.MapZoom < 0 || c.Dashboard.MapZoom > 22 {
		return errors.Errorf("dashboard.mapZoom must be between 0 and 22")
	}
	if c.Dashboard.SizeMax <= 0 {
		return errors.Errorf("dashboard.sizeMax must be positive")
	}
	return nil
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %v", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %v", path)
	}

	return config, nil
}

func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Merge copies the non-zero fields of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Data.File != "" {
		c.Data.File = other.Data.File
	}
	if other.Data.Dataset != "" {
		c.Data.Dataset = other.Data.Dataset
	}
	if other.Server.Port != 0 {
		c.Server.Port = other.Server.Port
	}
	if other.Dashboard.Title != "" {
		c.Dashboard.Title = other.Dashboard.Title
	}
	if other.Dashboard.Footer != "" {
		c.Dashboard.Footer = other.Dashboard.Footer
	}
	if other.Dashboard.MapStyle != "" {
		c.Dashboard.MapStyle = other.Dashboard.MapStyle
	}
	if other.Dashboard.MapZoom != 0 {
		c.Dashboard.MapZoom = other.Dashboard.MapZoom
	}
	if other.Dashboard.SizeMax != 0 {
		c.Dashboard.SizeMax = other.Dashboard.SizeMax
	}
}
