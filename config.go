package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heshanpadmasiri/codart/report"
	"github.com/pelletier/go-toml/v2"
)

const configFileName = "Config.toml"

// config represents the tool configuration
type config struct {
	Strict  bool     `toml:"strict"`
	Workers int      `toml:"workers"`
	Format  string   `toml:"format"`
	Exclude []string `toml:"exclude"`
}

func defaultConfig() config {
	return config{
		Workers: 4,
		Format:  report.FormatText,
		Exclude: []string{".git", "build", "target", "out"},
	}
}

// loadConfig loads configuration from Config.toml in the working directory
func loadConfig() config {
	c := defaultConfig()

	wd, err := os.Getwd()
	if err != nil {
		return c
	}

	data, err := os.ReadFile(filepath.Join(wd, configFileName))
	if err != nil {
		// Config file doesn't exist, return defaults
		return c
	}

	var fileConfig config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		// Invalid TOML, return defaults
		return c
	}
	return mergeConfig(c, fileConfig)
}

// loadConfigFile loads an explicitly requested configuration file. Unlike
// loadConfig a missing or invalid file is an error.
func loadConfigFile(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("reading config: %w", err)
	}
	var fileConfig config
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return mergeConfig(defaultConfig(), fileConfig), nil
}

// mergeConfig uses values from file if provided, otherwise keeps defaults
func mergeConfig(c config, fileConfig config) config {
	if fileConfig.Strict {
		c.Strict = true
	}
	if fileConfig.Workers > 0 {
		c.Workers = fileConfig.Workers
	}
	if fileConfig.Format != "" {
		c.Format = fileConfig.Format
	}
	if fileConfig.Exclude != nil {
		c.Exclude = fileConfig.Exclude
	}
	return c
}
