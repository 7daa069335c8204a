// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be given in a config file.
// Command-line flags take precedence over these.
type Config struct {
	// Confidence is the default confidence level for intervals.
	Confidence float64 `yaml:"confidence"`

	// Precision is the number of significant digits printed.
	Precision int `yaml:"precision"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no config file
// is given. Keys missing from a config file keep these values.
func DefaultConfig() Config {
	return Config{
		Confidence: 0.95,
		Precision:  6,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML config file. An empty path returns
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Precision < 1 || cfg.Precision > 17 {
		return cfg, errors.Newf("config %s: precision must be in [1, 17], got %d", path, cfg.Precision)
	}
	return cfg, nil
}
