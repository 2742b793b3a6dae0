// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the settings of an ingest run.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreLevelDB = "leveldb"
	StoreSSTable = "sstable"
)

// StoreConfig selects and tunes the store cells are written to.
type StoreConfig struct {
	// Kind is "leveldb" for an embedded store or "sstable" for a directory of
	// sorted table files.
	Kind          string `yaml:"kind"`
	Path          string `yaml:"path"`
	Sync          bool   `yaml:"sync"`
	Compress      bool   `yaml:"compress"`
	WriteBufferMB int    `yaml:"write_buffer_mb"`
}

// LogConfig controls logging.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	File  string `yaml:"file"`
}

// Config holds the configuration of an ingest run.
type Config struct {
	Table       string `yaml:"table"`
	Namespace   string `yaml:"namespace"`
	Visibility  string `yaml:"visibility"`
	Workers     int    `yaml:"workers"`
	SkipCorrupt bool   `yaml:"skip_corrupt"`

	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`

	// MetricsInterval is how often process metrics are logged; zero
	// disables them.
	MetricsInterval time.Duration `yaml:"metrics_interval"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Table:      "OSM",
		Visibility: "public",
		Workers:    runtime.GOMAXPROCS(-1),
		Store: StoreConfig{
			Kind:     StoreLevelDB,
			Path:     "./osmkv-store",
			Compress: true,
		},
		MetricsInterval: 30 * time.Second,
	}
}

// Load reads a YAML file over the defaults.  Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Table == "" {
		errs = append(errs, errors.New("table is required"))
	}

	if c.Workers < 1 {
		errs = append(errs, errors.New("workers must be at least 1"))
	}

	switch c.Store.Kind {
	case StoreLevelDB, StoreSSTable:
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}

	if c.Store.Path == "" {
		errs = append(errs, errors.New("store path is required"))
	}

	if c.Store.WriteBufferMB < 0 {
		errs = append(errs, errors.New("write buffer must not be negative"))
	}

	if c.MetricsInterval < 0 {
		errs = append(errs, errors.New("metrics interval must not be negative"))
	}

	return errors.Join(errs...)
}
