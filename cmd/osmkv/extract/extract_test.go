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

package extract

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmkv"
	"m4o.io/osmkv/internal/parquet"
	"m4o.io/osmkv/model"
)

var replicated = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func entities() []model.Entity {
	return []model.Entity{
		&model.Node{ID: 1, Lat: 51.5, Lon: -0.25, Tags: map[string]string{"name": "a"}},
		&model.Node{ID: 2, Lat: 51.25, Lon: 0.125},
		&model.Way{ID: 10, NodeIDs: []model.ID{1, 2}, Tags: map[string]string{"highway": "path"}},
		&model.Relation{ID: 20, Members: []model.Member{{ID: 10, Type: model.WAY, Role: "outer"}}},
	}
}

func pbfFile(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	e, err := osmkv.NewEncoder(&buf,
		osmkv.WithBlockSize(3),
		osmkv.WithStorePath(t.TempDir()),
		osmkv.WithSource("unit"),
		osmkv.WithOsmosisReplicationTimestamp(replicated))
	require.NoError(t, err)
	require.NoError(t, e.Encode(entities()...))
	require.NoError(t, e.Close())

	return buf.Bytes()
}

func TestExtractParquet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	n, err := Extract(context.Background(), bytes.NewReader(pbfFile(t)), dir, Options{Format: FormatParquet, NCpu: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	var got []model.Entity

	require.NoError(t, parquet.ReadDir(context.Background(), dir, func(e model.Entity) error {
		got = append(got, e)

		return nil
	}))

	assert.Equal(t, entities(), got)
}

func TestExtractPBF(t *testing.T) {
	for _, c := range []osmkv.Compression{osmkv.Raw, osmkv.Zstd, osmkv.Lz4} {
		path := filepath.Join(t.TempDir(), "out.osm.pbf")

		n, err := Extract(context.Background(), bytes.NewReader(pbfFile(t)), path, Options{
			Format:      FormatPBF,
			NCpu:        2,
			Compression: c,
			BlockSize:   1,
			DenseNodes:  false,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)

		f, err := os.Open(path)
		require.NoError(t, err)

		d, err := osmkv.NewDecoder(context.Background(), f, osmkv.WithEntitiesOnly())
		require.NoError(t, err)

		assert.Equal(t, "osmkv", d.Header.WritingProgram)
		assert.Equal(t, "unit", d.Header.Source)
		assert.Equal(t, replicated, d.Header.OsmosisReplicationTimestamp.UTC())
		assert.Equal(t, []string{model.FeatureOsmSchema}, d.Header.RequiredFeatures)

		var got []model.Entity

		for {
			blk, err := d.Next()
			if err != nil {
				break
			}

			assert.Len(t, blk.Entities, 1, "one entity per block")
			got = append(got, blk.Entities...)
		}

		d.Close()
		require.NoError(t, f.Close())

		assert.Equal(t, entities(), got, c.String())
	}
}

func TestExtractUnknownFormat(t *testing.T) {
	_, err := Extract(context.Background(), bytes.NewReader(pbfFile(t)), t.TempDir(), Options{Format: "csv"})
	assert.ErrorContains(t, err, `unknown format "csv"`)
}
