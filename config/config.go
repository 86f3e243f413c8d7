// Package config loads the optional lvdex.yaml file.
//
//	log:
//	  level: debug
//	  format: json
//	data: ./pokedex.yaml   # relative to this file
//
// There is no global instance: callers load a Config and pass it on.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdex/logging"
)

// Config is the decoded configuration file.
type Config struct {
	Log logging.Config `yaml:"log"`

	// Data is the default record file for the dex commands.
	Data string `yaml:"data"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Log: logging.Config{Level: "info", Format: logging.FormatText}}
}

// Load reads path over Default. An empty path returns Default unchanged.
// Unknown keys are rejected so that typos surface early. A relative Data
// path is resolved against the directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Data != "" && !filepath.IsAbs(cfg.Data) {
		cfg.Data = filepath.Join(filepath.Dir(path), cfg.Data)
	}

	return cfg, nil
}
