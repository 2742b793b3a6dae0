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

// Package dump implements the dump command.
package dump

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"m4o.io/osmkv"
	"m4o.io/osmkv/cmd/osmkv/cli"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/schema"
	"m4o.io/osmkv/store"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(dumpCmd)

	flags := dumpCmd.Flags()
	flags.String("store", "", "store path (default from config)")
	flags.String("store-kind", "", `store kind, "leveldb" or "sstable"`)
	flags.String("table", "", "table name")
	flags.String("namespace", "", "namespace qualifying the table name")
	flags.Bool("cells", false, "print raw cells instead of entities")
	flags.Int64("id", 0, "only print the row of this entity id")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the contents of a store",
	Long:  "Print the entities, or the raw cells, held in a table of a store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := cli.Config()
		flags := cmd.Flags()

		if flags.Changed("store") {
			cfg.Store.Path, _ = flags.GetString("store")
		}

		if flags.Changed("store-kind") {
			cfg.Store.Kind, _ = flags.GetString("store-kind")
		}

		if flags.Changed("table") {
			cfg.Table, _ = flags.GetString("table")
		}

		if flags.Changed("namespace") {
			cfg.Namespace, _ = flags.GetString("namespace")
		}

		s, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()

		raw, _ := flags.GetBool("cells")

		var row []byte
		if flags.Changed("id") {
			id, _ := flags.GetInt64("id")
			row = schema.RowKey(model.ID(id))
		}

		return Dump(cmd.Context(), s, osmkv.TableName(cfg.Namespace, cfg.Table), row, raw)
	},
}

// Dump prints a table, or the single row given, either as entities or, when
// raw is set, as cells.
func Dump(ctx context.Context, s store.Scanner, table string, row []byte, raw bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return store.ScanRows(ctx, s, table, func(cells []schema.Cell) error {
		if row != nil && string(cells[0].Row) != string(row) {
			return nil
		}

		if raw {
			for _, c := range cells {
				fmt.Fprintln(out, FormatCell(c))
			}

			return nil
		}

		entities, err := schema.Assemble(cells)
		if err != nil {
			return fmt.Errorf("row %x: %w", cells[0].Row, err)
		}

		for _, e := range entities {
			fmt.Fprintln(out, FormatEntity(e))
		}

		return nil
	})
}

// FormatCell renders a cell as "row family:qualifier [visibility] value".
func FormatCell(c schema.Cell) string {
	value := hex.EncodeToString(c.Value)

	if kind, err := schema.KindOf(c.Family, c.Qualifier); err == nil {
		if v, err := schema.Decode(kind, c.Value); err == nil {
			value = v.String()
		}
	}

	return fmt.Sprintf("%x %s:%s [%s] %s", c.Row, c.Family, c.Qualifier, c.Visibility, value)
}

// FormatEntity renders an entity on one line.
func FormatEntity(e model.Entity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d", schema.CoreFamily(e.Kind()), e.GetID())

	switch v := e.(type) {
	case *model.Node:
		fmt.Fprintf(&b, " (%s, %s)",
			strconv.FormatFloat(float64(v.Lat), 'f', -1, 64),
			strconv.FormatFloat(float64(v.Lon), 'f', -1, 64))
	case *model.Way:
		refs := make([]string, len(v.NodeIDs))
		for i, id := range v.NodeIDs {
			refs[i] = strconv.FormatInt(int64(id), 10)
		}

		fmt.Fprintf(&b, " refs=[%s]", strings.Join(refs, ","))
	case *model.Relation:
		members := make([]string, len(v.Members))
		for i, m := range v.Members {
			members[i] = fmt.Sprintf("%s/%d/%s", schema.CoreFamily(m.Type), m.ID, m.Role)
		}

		fmt.Fprintf(&b, " members=[%s]", strings.Join(members, ","))
	}

	if info := e.GetInfo(); info != nil {
		if v, ok := info.Version.Get(); ok {
			fmt.Fprintf(&b, " v%d", v)
		}

		if v, ok := info.User.Get(); ok {
			fmt.Fprintf(&b, " user=%s", v)
		}

		if v, ok := info.Visible.Get(); ok {
			fmt.Fprintf(&b, " visible=%t", v)
		}
	}

	tags := e.GetTags()
	for _, k := range slices.Sorted(maps.Keys(tags)) {
		fmt.Fprintf(&b, " %s=%s", k, tags[k])
	}

	return b.String()
}
