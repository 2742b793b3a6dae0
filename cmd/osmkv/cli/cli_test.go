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

package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmkv"
	"m4o.io/osmkv/internal/config"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/schema"
)

func TestOpenInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	for _, useMmap := range []bool{false, true} {
		in, err := OpenInput(path, useMmap)
		require.NoError(t, err)

		assert.Equal(t, int64(5), in.Size)
		assert.Equal(t, path, in.Name)

		b, err := io.ReadAll(in)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(b))
		assert.NoError(t, in.Close())
	}
}

func TestOpenInputStdin(t *testing.T) {
	in, err := OpenInput("-", true)
	require.NoError(t, err)

	assert.Equal(t, int64(-1), in.Size)
	assert.Same(t, in, WithProgress(in))
}

func TestOpenInputMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompressionValue(t *testing.T) {
	var c osmkv.Compression

	v := NewCompressionValue(osmkv.Zlib, &c)
	assert.Equal(t, "zlib", v.String())
	assert.Equal(t, "compression", v.Type())

	require.NoError(t, v.Set("zstd"))
	assert.Equal(t, osmkv.Zstd, c)

	assert.Error(t, v.Set("bzip2-ish"))
	assert.Equal(t, osmkv.Zstd, c)
}

func TestOpenStore(t *testing.T) {
	cells := schema.NewMapper("public").Map(&model.Node{ID: 7, Lat: 1, Lon: 1})

	for _, kind := range []string{config.StoreLevelDB, config.StoreSSTable} {
		s, err := OpenStore(config.StoreConfig{Kind: kind, Path: filepath.Join(t.TempDir(), kind)})
		require.NoError(t, err)

		require.NoError(t, s.Write(context.Background(), "OSM", cells))

		n := 0

		require.NoError(t, s.Scan(context.Background(), "OSM", func(schema.Cell) error {
			n++

			return nil
		}))

		assert.Equal(t, len(cells), n, kind)
		assert.NoError(t, s.Close())
	}

	_, err := OpenStore(config.StoreConfig{Kind: "s3"})
	assert.Error(t, err)
}
