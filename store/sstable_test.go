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

package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmkv/schema"
)

func TestSSTableRoundTrip(t *testing.T) {
	cells := sampleCells()

	var buf bytes.Buffer
	require.NoError(t, WriteSSTable(&buf, "OSM", cells))

	var got []schema.Cell

	require.NoError(t, ScanSSTable(bytes.NewReader(buf.Bytes()), int64(buf.Len()), func(tbl string, c schema.Cell) error {
		assert.Equal(t, "OSM", tbl)
		got = append(got, c)

		return nil
	}))

	assert.ElementsMatch(t, cells, got)
}

func TestSSTableLastWriteWins(t *testing.T) {
	c := schema.Cell{Row: []byte{1}, Family: schema.FamilyNode, Qualifier: schema.QualifierID, Value: []byte{1}}
	d := c
	d.Value = []byte{2}

	var buf bytes.Buffer
	require.NoError(t, WriteSSTable(&buf, "OSM", []schema.Cell{c, d}))

	var got []schema.Cell

	require.NoError(t, ScanSSTable(bytes.NewReader(buf.Bytes()), int64(buf.Len()), func(_ string, c schema.Cell) error {
		got = append(got, c)

		return nil
	}))

	require.Len(t, got, 1)
	assert.Equal(t, []byte{2}, got[0].Value)
}

func TestSSTableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bulk")

	d, err := NewSSTableDir(dir)
	require.NoError(t, err)

	cells := sampleCells()

	require.NoError(t, d.Write(context.Background(), "OSM", cells[:3]))
	require.NoError(t, d.Write(context.Background(), "OSM", nil))
	require.NoError(t, d.Write(context.Background(), "OSM", cells[3:]))

	files, err := d.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "OSM-00000001.sst", filepath.Base(files[0]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files left behind")

	var n int

	for _, name := range files {
		b, err := os.ReadFile(name)
		require.NoError(t, err)

		require.NoError(t, ScanSSTable(bytes.NewReader(b), int64(len(b)), func(string, schema.Cell) error {
			n++

			return nil
		}))
	}

	assert.Equal(t, len(cells), n)
}

func TestScanSSTableCorrupt(t *testing.T) {
	b := []byte("definitely not a table")

	err := ScanSSTable(bytes.NewReader(b), int64(len(b)), func(string, schema.Cell) error { return nil })
	assert.Error(t, err)
}

func TestSSTableDirScan(t *testing.T) {
	d, err := NewSSTableDir(t.TempDir())
	require.NoError(t, err)

	cells := sampleCells()

	require.NoError(t, d.Write(context.Background(), "OSM", cells))
	require.NoError(t, d.Write(context.Background(), "other", cells[:2]))

	var got []schema.Cell

	require.NoError(t, d.Scan(context.Background(), "OSM", func(c schema.Cell) error {
		got = append(got, c)

		return nil
	}))

	assert.ElementsMatch(t, cells, got)

	rows := 0

	require.NoError(t, ScanRows(context.Background(), d, "OSM", func(row []schema.Cell) error {
		rows++

		_, err := schema.Assemble(row)

		return err
	}))

	assert.Equal(t, 3, rows)
}
