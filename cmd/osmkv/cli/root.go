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

// Package cli holds the root command and helpers shared by the osmkv
// subcommands.
package cli

import (
	"github.com/spf13/cobra"

	"m4o.io/osmkv/internal/config"
	"m4o.io/osmkv/internal/logger"
)

var cfg = config.DefaultConfig()

// RootCmd is the osmkv command; subcommands register themselves on it.
var RootCmd = &cobra.Command{
	Use:   "osmkv",
	Short: "Decode OpenStreetMap PBF data into wide-column cells",
	Long: `osmkv decodes OpenStreetMap PBF files and projects every node, way and
relation onto a sparse wide-column schema of (row, family, qualifier,
visibility, value) cells, stored in an embedded sorted key/value store.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "also write JSON logs to this rotated file")
}

// Config returns the configuration of the running command: defaults,
// overlaid by the --config file, overlaid by flags.
func Config() *config.Config {
	return cfg
}

func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		*cfg = *loaded
	}

	if flags.Changed("debug") {
		cfg.Log.Debug, _ = flags.GetBool("debug")
	}

	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}

	logger.Init(logger.Options{Debug: cfg.Log.Debug, File: cfg.Log.File})

	return nil
}
