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

// Package extract implements the extract command.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"m4o.io/osmkv"
	"m4o.io/osmkv/cmd/osmkv/cli"
	"m4o.io/osmkv/internal/logger"
	"m4o.io/osmkv/internal/parquet"
	"m4o.io/osmkv/model"
)

// Output formats.
const (
	FormatParquet = "parquet"
	FormatPBF     = "pbf"
)

var out io.Writer = os.Stdout

// Options controls an extraction.
type Options struct {
	Format      string
	NCpu        uint16
	Compression osmkv.Compression
	BlockSize   int
	DenseNodes  bool
	BatchSize   int
}

var compression osmkv.Compression

func init() {
	cli.RootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("format", "f", FormatParquet, `output format, "parquet" (a directory) or "pbf"`)
	flags.Uint16P("cpu", "c", osmkv.DefaultNCpu(), "number of CPUs to use")
	flags.Var(cli.NewCompressionValue(osmkv.DefaultCompression, &compression), "compression", "block compression of pbf output")
	flags.Int("block-size", 8000, "entities per block of pbf output")
	flags.Bool("dense", true, "write nodes as dense nodes in pbf output")
	flags.Int("batch-size", parquet.DefaultBatchSize, "rows per record batch of parquet output")
	flags.Bool("mmap", false, "memory map the input file")
}

var extractCmd = &cobra.Command{
	Use:   "extract <OSM file> <output>",
	Short: "Re-encode an OSM file as Parquet or PBF",
	Long: `Re-encode an OSM file either as a directory of nodes, ways and relations
Parquet files, which ingest accepts in place of a PBF file, or as a new PBF
file with a different compression or block size.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		opts := Options{Compression: compression}
		opts.Format, _ = flags.GetString("format")
		opts.NCpu, _ = flags.GetUint16("cpu")
		opts.BlockSize, _ = flags.GetInt("block-size")
		opts.DenseNodes, _ = flags.GetBool("dense")
		opts.BatchSize, _ = flags.GetInt("batch-size")
		useMmap, _ := flags.GetBool("mmap")

		in, err := cli.OpenInput(args[0], useMmap)
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := Extract(cmd.Context(), in, args[1], opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Extracted %s entities to %s\n", humanize.Comma(n), args[1])

		return nil
	},
}

// Extract decodes a PBF stream and writes its entities to path in the
// requested format.  It returns the number of entities written.
func Extract(ctx context.Context, r io.Reader, path string, opts Options) (int64, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := osmkv.NewDecoder(ctx, r, osmkv.WithNCpus(opts.NCpu), osmkv.WithEntitiesOnly())
	if err != nil {
		return 0, err
	}
	defer d.Close()

	var sink interface {
		write(entities []model.Entity) error
		close() error
	}

	switch opts.Format {
	case FormatParquet:
		w, err := parquet.NewWriter(path, opts.BatchSize)
		if err != nil {
			return 0, err
		}

		sink = parquetSink{w}
	case FormatPBF:
		s, err := newPBFSink(path, d.Header, opts)
		if err != nil {
			return 0, err
		}

		sink = s
	default:
		return 0, fmt.Errorf("unknown format %q", opts.Format)
	}

	var n int64

	for {
		entities, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}

		if err == nil {
			err = sink.write(entities)
		}

		if err != nil {
			_ = sink.close()

			return n, err
		}

		n += int64(len(entities))
	}

	logger.Get().Debug("extracted", zap.String("path", path), zap.Int64("entities", n))

	return n, sink.close()
}

type parquetSink struct {
	w *parquet.Writer
}

func (s parquetSink) write(entities []model.Entity) error {
	for _, e := range entities {
		if err := s.w.Write(e); err != nil {
			return err
		}
	}

	return nil
}

func (s parquetSink) close() error {
	return s.w.Close()
}

type pbfSink struct {
	f   *os.File
	enc *osmkv.Encoder
}

func newPBFSink(path string, hdr model.Header, opts Options) (*pbfSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	encOpts := []osmkv.EncoderOption{
		osmkv.WithCompression(opts.Compression),
		osmkv.WithEncoderNCpus(opts.NCpu),
		osmkv.WithBlockSize(opts.BlockSize),
		osmkv.WithDenseNodes(opts.DenseNodes),
		osmkv.WithWritingProgram("osmkv"),
		osmkv.WithSource(hdr.Source),
		osmkv.WithOptionalFeatures(hdr.OptionalFeatures...),
		osmkv.WithOsmosisReplicationTimestamp(hdr.OsmosisReplicationTimestamp),
		osmkv.WithOsmosisReplicationSequenceNumber(hdr.OsmosisReplicationSequenceNumber),
		osmkv.WithOsmosisReplicationBaseURL(hdr.OsmosisReplicationBaseURL),
	}

	if hdr.BoundingBox != nil {
		encOpts = append(encOpts, osmkv.WithBoundingBox(*hdr.BoundingBox))
	}

	enc, err := osmkv.NewEncoder(f, encOpts...)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	return &pbfSink{f: f, enc: enc}, nil
}

func (s *pbfSink) write(entities []model.Entity) error {
	return s.enc.Encode(entities...)
}

func (s *pbfSink) close() error {
	err := s.enc.Close()

	if cerr := s.f.Close(); err == nil {
		err = cerr
	}

	return err
}
