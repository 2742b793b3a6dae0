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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "OSM", cfg.Table)
	assert.Equal(t, "public", cfg.Visibility)
	assert.Empty(t, cfg.Namespace)
	assert.Equal(t, StoreLevelDB, cfg.Store.Kind)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osmkv.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
table: planet
namespace: geo
visibility: admin
workers: 3
skip_corrupt: true
store:
  kind: sstable
  path: /data/bulk
metrics_interval: 5s
log:
  debug: true
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "planet", cfg.Table)
	assert.Equal(t, "geo", cfg.Namespace)
	assert.Equal(t, "admin", cfg.Visibility)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.SkipCorrupt)
	assert.Equal(t, StoreSSTable, cfg.Store.Kind)
	assert.Equal(t, "/data/bulk", cfg.Store.Path)
	assert.True(t, cfg.Store.Compress, "default kept")
	assert.Equal(t, 5*time.Second, cfg.MetricsInterval)
	assert.True(t, cfg.Log.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("table: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"empty table", func(c *Config) { c.Table = "" }, "table is required"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers must be at least 1"},
		{"store kind", func(c *Config) { c.Store.Kind = "s3" }, `unknown store kind "s3"`},
		{"store path", func(c *Config) { c.Store.Path = "" }, "store path is required"},
		{"write buffer", func(c *Config) { c.Store.WriteBufferMB = -1 }, "write buffer"},
		{"metrics", func(c *Config) { c.MetricsInterval = -time.Second }, "metrics interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
