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

// Package ingest implements the ingest command.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"m4o.io/osmkv"
	"m4o.io/osmkv/cmd/osmkv/cli"
	"m4o.io/osmkv/internal/config"
	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/logger"
	"m4o.io/osmkv/internal/metrics"
	"m4o.io/osmkv/internal/parquet"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/store"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(ingestCmd)

	flags := ingestCmd.Flags()
	flags.String("store", "", "store path (default from config)")
	flags.String("store-kind", "", `store kind, "leveldb" or "sstable"`)
	flags.String("table", "", "table name")
	flags.String("namespace", "", "namespace qualifying the table name")
	flags.String("visibility", "", "visibility label applied to every cell")
	flags.IntP("workers", "c", 0, "number of decoding goroutines")
	flags.Bool("skip-corrupt", false, "log and skip blocks that fail to decode")
	flags.Bool("mmap", false, "memory map the input file")
	flags.Bool("progress", true, "show a progress bar on stderr")
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <OSM file | Parquet directory>",
	Short: "Map an OSM file into cells and write them to a store",
	Long: `Map an OSM PBF file, or a directory of nodes/ways/relations Parquet files
written by extract, into cells and write them to a store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cli.Config()
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		s, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}

		counters := metrics.NewCounters()

		err = run(cmd, args[0], cfg, s, counters)
		if cerr := s.Close(); err == nil {
			err = cerr
		}

		snap := counters.Snapshot()
		logger.Get().Info("ingest finished", snap.Fields()...)

		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Entities: %s (%s nodes, %s ways, %s relations)\n",
			humanize.Comma(snap.Entities()), humanize.Comma(snap.Nodes),
			humanize.Comma(snap.Ways), humanize.Comma(snap.Relations))
		fmt.Fprintf(out, "Cells: %s in %s blocks\n", humanize.Comma(snap.Cells), humanize.Comma(snap.Blocks))

		if snap.Corrupt > 0 {
			fmt.Fprintf(out, "Skipped: %s corrupt blocks\n", humanize.Comma(snap.Corrupt))
		}

		return nil
	},
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	strs := map[string]*string{
		"store":      &cfg.Store.Path,
		"store-kind": &cfg.Store.Kind,
		"table":      &cfg.Table,
		"namespace":  &cfg.Namespace,
		"visibility": &cfg.Visibility,
	}

	for name, p := range strs {
		if flags.Changed(name) {
			v, err := flags.GetString(name)
			if err != nil {
				return err
			}

			*p = v
		}
	}

	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}

	if flags.Changed("skip-corrupt") {
		cfg.SkipCorrupt, _ = flags.GetBool("skip-corrupt")
	}

	return nil
}

func run(cmd *cobra.Command, path string, cfg *config.Config, w store.Writer, counters *metrics.Counters) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, ctx := errgroup.WithContext(ctx)

	mctx, stopMetrics := context.WithCancel(ctx)
	defer stopMetrics()

	if cfg.MetricsInterval > 0 {
		collector := metrics.NewCollector(cfg.MetricsInterval, logger.Get(), counters)

		g.Go(func() error {
			collector.Start(mctx)

			return nil
		})
	}

	g.Go(func() error {
		defer stopMetrics()

		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			return IngestParquet(ctx, path, cfg, w, counters)
		}

		useMmap, _ := cmd.Flags().GetBool("mmap")
		progress, _ := cmd.Flags().GetBool("progress")

		in, err := cli.OpenInput(path, useMmap)
		if err != nil {
			return err
		}

		var r io.ReadCloser = in
		if progress {
			r = cli.WithProgress(in)
		}

		defer r.Close()

		return IngestPBF(ctx, r, cfg, w, counters)
	})

	return g.Wait()
}

func sessionOptions(cfg *config.Config) []osmkv.Option {
	return []osmkv.Option{
		osmkv.WithNCpus(uint16(min(max(cfg.Workers, 0), 1<<16-1))),
		osmkv.WithTable(cfg.Table),
		osmkv.WithNamespace(cfg.Namespace),
		osmkv.WithVisibility(cfg.Visibility),
		osmkv.WithSkipCorrupt(cfg.SkipCorrupt),
	}
}

// IngestPBF decodes a PBF stream and writes the cells of every block to w,
// one write per block.  With cfg.SkipCorrupt, blocks that fail to decode are
// logged, counted and skipped.  A stream that cannot be read to its end is
// always an error.
func IngestPBF(ctx context.Context, r io.Reader, cfg *config.Config, w store.Writer, counters *metrics.Counters) error {
	d, err := osmkv.NewDecoder(ctx, r, sessionOptions(cfg)...)
	if err != nil {
		return err
	}
	defer d.Close()

	table := d.Session().Table()
	log := logger.Get()

	for {
		blk, err := d.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			if !cfg.SkipCorrupt || errors.Is(err, osmkv.ErrStreamRead) {
				return err
			}

			log.Warn("skipping block", zap.Error(err))
			counters.AddCorrupt()

			continue
		}

		if err := w.Write(ctx, table, blk.Cells); err != nil {
			return fmt.Errorf("block %d: %w", blk.Index, err)
		}

		counters.AddBlock(blk.Entities, len(blk.Cells))
	}
}

// IngestParquet reads the Parquet files in dir and writes their cells to w
// in batches of one PBF block's worth of entities.
func IngestParquet(ctx context.Context, dir string, cfg *config.Config, w store.Writer, counters *metrics.Counters) error {
	session := osmkv.NewSession(sessionOptions(cfg)...)
	batch := make([]model.Entity, 0, encoder.EntityLimit)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		cells := session.MapEntities(batch)
		if err := w.Write(ctx, session.Table(), cells); err != nil {
			return err
		}

		counters.AddBlock(batch, len(cells))
		batch = batch[:0]

		return nil
	}

	err := parquet.ReadDir(ctx, dir, func(e model.Entity) error {
		batch = append(batch, e)
		if len(batch) < encoder.EntityLimit {
			return nil
		}

		return flush()
	})
	if err != nil {
		return err
	}

	return flush()
}
