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

// Package info implements the info command.
package info

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmkv"
	"m4o.io/osmkv/cmd/osmkv/cli"
	"m4o.io/osmkv/model"
)

var out io.Writer = os.Stdout

type extendedHeader struct {
	model.Header

	NodeCount     int64 `json:"node_count"`
	WayCount      int64 `json:"way_count"`
	RelationCount int64 `json:"relation_count"`
	CellCount     int64 `json:"cell_count"`
	BlockCount    int64 `json:"block_count"`

	// NodesOutsideBBox counts the nodes that fall outside the header's
	// bounding box.  It stays zero when the header has none.
	NodesOutsideBBox int64 `json:"nodes_outside_bbox"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.Uint16P("cpu", "c", osmkv.DefaultNCpu(), "number of CPUs to use for scanning")
	flags.BoolP("extended", "e", false, "provide extended information (scans entire file)")
	flags.Bool("mmap", false, "memory map the input file")
}

var infoCmd = &cobra.Command{
	Use:   "info [<OSM file>]",
	Short: "Print information about an OSM file",
	Long:  "Print information about an OSM file, optionally counting its entities and the cells they map to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		useMmap, _ := flags.GetBool("mmap")

		f, err := cli.OpenInput(path, useMmap)
		if err != nil {
			return err
		}

		jsonfmt, _ := flags.GetBool("json")
		extended, _ := flags.GetBool("extended")
		ncpu, _ := flags.GetUint16("cpu")

		var in io.ReadCloser = f
		if extended && !jsonfmt {
			in = cli.WithProgress(f)
		}

		info, err := runInfo(cmd.Context(), in, ncpu, extended)
		if cerr := in.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return err
		}

		if jsonfmt {
			return renderJSON(info, extended)
		}

		renderTxt(info, extended)

		return nil
	},
}

func runInfo(ctx context.Context, in io.Reader, ncpu uint16, extended bool) (*extendedHeader, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := osmkv.NewDecoder(ctx, in, osmkv.WithNCpus(ncpu))
	if err != nil {
		return nil, err
	}
	defer d.Close()

	info := &extendedHeader{Header: d.Header}

	if !extended {
		return info, nil
	}

	for {
		blk, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		info.BlockCount++
		info.CellCount += int64(len(blk.Cells))

		for _, e := range blk.Entities {
			switch e.Kind() {
			case model.NODE:
				info.NodeCount++

				if n := e.(*model.Node); info.BoundingBox != nil && !info.BoundingBox.Contains(n.Lat, n.Lon) {
					info.NodesOutsideBBox++
				}
			case model.WAY:
				info.WayCount++
			case model.RELATION:
				info.RelationCount++
			}
		}
	}

	return info, nil
}

func renderJSON(info *extendedHeader, extended bool) error {
	// marshall the smallest struct needed
	var v any = info.Header
	if extended {
		v = info
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, string(b))

	return err
}

func renderTxt(info *extendedHeader, extended bool) {
	bbox := ""
	if info.BoundingBox != nil {
		bbox = info.BoundingBox.String()
	}

	fmt.Fprintf(out, "BoundingBox: %s\n", bbox)
	fmt.Fprintf(out, "RequiredFeatures: %s\n", strings.Join(info.RequiredFeatures, ", "))
	fmt.Fprintf(out, "OptionalFeatures: %s\n", strings.Join(info.OptionalFeatures, ", "))
	fmt.Fprintf(out, "WritingProgram: %s\n", info.WritingProgram)
	fmt.Fprintf(out, "Source: %s\n", info.Source)
	fmt.Fprintf(out, "OsmosisReplicationTimestamp: %s\n", info.OsmosisReplicationTimestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "OsmosisReplicationSequenceNumber: %d\n", info.OsmosisReplicationSequenceNumber)
	fmt.Fprintf(out, "OsmosisReplicationBaseURL: %s\n", info.OsmosisReplicationBaseURL)

	if extended {
		fmt.Fprintf(out, "BlockCount: %s\n", humanize.Comma(info.BlockCount))
		fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(info.NodeCount))
		fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(info.WayCount))
		fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(info.RelationCount))
		fmt.Fprintf(out, "CellCount: %s\n", humanize.Comma(info.CellCount))
		fmt.Fprintf(out, "NodesOutsideBBox: %s\n", humanize.Comma(info.NodesOutsideBBox))
	}
}
