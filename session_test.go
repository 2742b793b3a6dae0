// Copyright 2017-25 the original author or authors.
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

package osmkv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/decoder"
	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/schema"
)

func sampleEntities() []model.Entity {
	ts := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)

	return []model.Entity{
		&model.Node{
			ID:   1,
			Lat:  51.5,
			Lon:  -0.12,
			Tags: map[string]string{"amenity": "pub", "name": "The Crown"},
			Info: &model.Info{
				Version:   model.Some[int32](4),
				Timestamp: model.Some(ts),
				Changeset: model.Some[int64](900),
				UID:       model.Some[model.UID](77),
				User:      model.Some("mapper"),
			},
		},
		&model.Node{
			ID:  5,
			Lat: 51.51,
			Lon: -0.13,
			Info: &model.Info{
				Version:   model.Some[int32](1),
				Timestamp: model.Some(ts.Add(time.Hour)),
				Changeset: model.Some[int64](901),
				UID:       model.Some[model.UID](78),
				User:      model.Some("other"),
			},
		},
		&model.Way{
			ID:      100,
			NodeIDs: []model.ID{5, 1, 5},
			Tags:    map[string]string{"highway": "residential"},
			Info:    &model.Info{Version: model.Some[int32](2), Visible: model.Some(false)},
		},
		&model.Relation{
			ID: 200,
			Members: []model.Member{
				{ID: 100, Type: model.WAY, Role: "inner"},
				{ID: 5, Type: model.NODE, Role: "label"},
			},
			Tags: map[string]string{"type": "multipolygon"},
		},
	}
}

func packedBlock(t *testing.T, c Compression) *pb.Blob {
	t.Helper()

	blob, err := encoder.Pack(encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions()), c)
	require.NoError(t, err)

	return blob
}

func marshal(t *testing.T, m proto.Message) []byte {
	t.Helper()

	b, err := proto.Marshal(m)
	require.NoError(t, err)

	return b
}

// payload returns the compressed bytes of a blob, whatever its compression.
func payload(blob *pb.Blob) []byte {
	switch d := blob.GetData().(type) {
	case *pb.Blob_Raw:
		return d.Raw
	case *pb.Blob_ZlibData:
		return d.ZlibData
	case *pb.Blob_LzmaData:
		return d.LzmaData
	case *pb.Blob_Lz4Data:
		return d.Lz4Data
	case *pb.Blob_ZstdData:
		return d.ZstdData
	default:
		return nil
	}
}

func qualifiers(cells []schema.Cell) []string {
	q := make([]string, len(cells))
	for i, c := range cells {
		q[i] = c.Family + ":" + c.Qualifier
	}

	return q
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "OSM", s.Table())
	assert.Equal(t, "public", s.Visibility())

	s = NewSession(WithNamespace("geo"), WithTable("planet"), WithVisibility("admin"))

	assert.Equal(t, "geo_planet", s.Table())
	assert.Equal(t, "admin", s.Visibility())
}

func TestSessionDecodeBlob(t *testing.T) {
	s := NewSession(WithVisibility("osm"))
	blob := packedBlock(t, Zlib)

	cells, err := s.DecodeBlob(marshal(t, blob))
	require.NoError(t, err)

	entities, err := decoder.DecodeData(blob)
	require.NoError(t, err)

	assert.Equal(t, s.MapEntities(entities), cells)

	assert.Equal(t, []string{
		"node:id", "node:lat", "node:lon",
		"node:version", "node:timestamp", "node:changeset", "node:user_id", "node:user_text",
		"node_tag:amenity", "node_tag:name",
		"node:id", "node:lat", "node:lon",
		"node:version", "node:timestamp", "node:changeset", "node:user_id", "node:user_text",
		"way:id", "way:refs", "way:version", "way:visible", "way_tag:highway",
		"relation:id",
		"relation:role_0", "relation:member_0", "relation:type_0",
		"relation:role_1", "relation:member_1", "relation:type_1",
		"relation_tag:type",
	}, qualifiers(cells))

	for _, c := range cells {
		assert.Equal(t, "osm", c.Visibility)
	}
}

func TestSessionDecodeIsIdempotent(t *testing.T) {
	s := NewSession()
	b := marshal(t, packedBlock(t, Zstd))

	first, err := s.DecodeBlob(b)
	require.NoError(t, err)

	second, err := s.DecodeBlob(b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSessionDecodeBlock(t *testing.T) {
	s := NewSession()

	for _, c := range []Compression{Raw, Zlib, Lzma, Lz4, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			blob := packedBlock(t, c)

			cells, err := s.DecodeBlock(payload(blob), c, blob.GetRawSize())
			require.NoError(t, err)
			assert.Len(t, cells, 31)

			cells, err = s.DecodeBlock(payload(blob), c, -1)
			require.NoError(t, err)
			assert.Len(t, cells, 31)
		})
	}
}

func TestSessionCorruptContainer(t *testing.T) {
	s := NewSession()

	cells, err := s.DecodeBlock([]byte("not deflate at all"), Zlib, 64)

	assert.ErrorIs(t, err, ErrCorruptContainer)
	assert.Nil(t, cells)

	blob := packedBlock(t, Zlib)

	cells, err = s.DecodeBlock(payload(blob), Zlib, blob.GetRawSize()-1)

	assert.ErrorIs(t, err, ErrCorruptContainer)
	assert.Nil(t, cells)

	cells, err = s.DecodeBlob([]byte{0x1a, 0x7f})

	assert.ErrorIs(t, err, ErrCorruptContainer)
	assert.Nil(t, cells)
}

func TestSessionStringIndexOutOfRange(t *testing.T) {
	blk := encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions())

	// a trailing group whose tag refers past the end of the string table
	blk.Primitivegroup = append(blk.Primitivegroup, &pb.PrimitiveGroup{
		Ways: []*pb.Way{{Id: proto.Int64(7), Keys: []uint32{1}, Vals: []uint32{999}}},
	})

	blob, err := encoder.Pack(blk, Raw)
	require.NoError(t, err)

	cells, err := NewSession().DecodeBlob(marshal(t, blob))

	assert.ErrorIs(t, err, ErrCorruptBlock)
	assert.Nil(t, cells)
}

func TestSessionUnsupportedCompression(t *testing.T) {
	cells, err := NewSession().DecodeBlock([]byte("BZh91AY"), pb.BZIP2, -1)

	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.Nil(t, cells)
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("lz4")
	require.NoError(t, err)
	assert.Equal(t, Lz4, c)
}
