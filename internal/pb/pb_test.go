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

package pb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestPrimitiveBlockDefaults(t *testing.T) {
	b, err := proto.Marshal(&PrimitiveBlock{Stringtable: &StringTable{}})
	require.NoError(t, err)

	blk := &PrimitiveBlock{}
	require.NoError(t, proto.Unmarshal(b, blk))

	assert.Equal(t, int32(100), blk.GetGranularity())
	assert.Equal(t, int32(1000), blk.GetDateGranularity())
	assert.Equal(t, int64(0), blk.GetLatOffset())
	assert.Equal(t, int64(0), blk.GetLonOffset())
	assert.Equal(t, int32(-1), (&Info{}).GetVersion())
	assert.Empty(t, blk.GetPrimitivegroup())
}

func TestPrimitiveBlockRequiresStringTable(t *testing.T) {
	assert.Error(t, proto.Unmarshal(nil, &PrimitiveBlock{}))
}

func TestPrimitiveBlockRoundTrip(t *testing.T) {
	in := &PrimitiveBlock{
		Stringtable: &StringTable{S: [][]byte{{}, []byte("highway"), []byte("primary"), []byte("inner")}},
		Primitivegroup: []*PrimitiveGroup{
			{Nodes: []*Node{{Id: proto.Int64(-5), Keys: []uint32{1}, Vals: []uint32{2},
				Lat: proto.Int64(-10), Lon: proto.Int64(20),
				Info: &Info{Version: proto.Int32(2), Visible: proto.Bool(false)}}}},
			{Dense: &DenseNodes{
				Id: []int64{1, 1}, Lat: []int64{5, -3}, Lon: []int64{7, 1},
				KeysVals:  []int32{1, 2, 0, 0},
				Denseinfo: &DenseInfo{Version: []int32{1, 2}, Uid: []int32{4, -1}, Visible: []bool{true, false}},
			}},
			{Ways: []*Way{{Id: proto.Int64(9), Refs: []int64{100, -1, 2}}}},
			{Relations: []*Relation{{Id: proto.Int64(3), RolesSid: []int32{3}, Memids: []int64{9},
				Types: []Relation_MemberType{Relation_WAY}}}},
		},
		Granularity:     proto.Int32(1000),
		DateGranularity: proto.Int32(1),
		LatOffset:       proto.Int64(-7),
		LonOffset:       proto.Int64(8),
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &PrimitiveBlock{}
	require.NoError(t, proto.Unmarshal(b, out))

	assert.True(t, proto.Equal(in, out))
}

func TestDenseGroupsMerge(t *testing.T) {
	first, err := proto.Marshal(&PrimitiveGroup{Dense: &DenseNodes{Id: []int64{1, 1}, Lat: []int64{1, 1}, Lon: []int64{2, 2}}})
	require.NoError(t, err)

	second, err := proto.Marshal(&PrimitiveGroup{Dense: &DenseNodes{Id: []int64{5}, Lat: []int64{3}, Lon: []int64{4}}})
	require.NoError(t, err)

	grp := &PrimitiveGroup{}
	require.NoError(t, proto.Unmarshal(append(first, second...), grp))

	assert.Equal(t, []int64{1, 1, 5}, grp.GetDense().GetId())
	assert.Equal(t, []int64{1, 1, 3}, grp.GetDense().GetLat())
	assert.Equal(t, []int64{2, 2, 4}, grp.GetDense().GetLon())
}

func TestRepeatedAcceptsUnpacked(t *testing.T) {
	var b []byte
	for _, ref := range []int64{10, -2, 5} {
		b = protowire.AppendTag(b, 8, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(ref))
	}

	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)

	w := &Way{}
	require.NoError(t, proto.Unmarshal(b, w))

	assert.Equal(t, int64(42), w.GetId())
	assert.Equal(t, []int64{10, -2, 5}, w.GetRefs())
}

func TestUnknownMemberTypeKept(t *testing.T) {
	b, err := proto.Marshal(&Relation{Id: proto.Int64(1), Memids: []int64{1}, Types: []Relation_MemberType{7}})
	require.NoError(t, err)

	rel := &Relation{}
	require.NoError(t, proto.Unmarshal(b, rel))

	assert.Equal(t, []Relation_MemberType{7}, rel.GetTypes())
}

func TestUnknownFieldsSkipped(t *testing.T) {
	b := protowire.AppendTag(nil, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 98, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	st, err := proto.Marshal(&StringTable{S: [][]byte{{}, []byte("a")}})
	require.NoError(t, err)

	out := &StringTable{}
	require.NoError(t, proto.Unmarshal(append(b, st...), out))

	assert.Equal(t, [][]byte{{}, []byte("a")}, out.GetS())
}

func TestTruncatedMessage(t *testing.T) {
	b, err := proto.Marshal(&Way{Id: proto.Int64(1), Refs: []int64{1, 2, 3}})
	require.NoError(t, err)

	assert.Error(t, proto.Unmarshal(b[:len(b)-1], &Way{}))
}

func TestWrongWireType(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, "not a varint")

	assert.Error(t, proto.Unmarshal(b, &ChangeSet{}))
}

func TestHeaderBlockRoundTrip(t *testing.T) {
	in := &HeaderBlock{
		Bbox:                             &HeaderBBox{Left: proto.Int64(-1), Right: proto.Int64(2), Top: proto.Int64(3), Bottom: proto.Int64(-4)},
		RequiredFeatures:                 []string{"OsmSchema-V0.6", "DenseNodes"},
		OptionalFeatures:                 []string{"Sort.Type_then_ID"},
		Writingprogram:                   proto.String("osmkv"),
		Source:                           proto.String("test"),
		OsmosisReplicationTimestamp:      proto.Int64(1700000000),
		OsmosisReplicationSequenceNumber: proto.Int64(12),
		OsmosisReplicationBaseUrl:        proto.String("https://example.org/replication"),
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &HeaderBlock{}
	require.NoError(t, proto.Unmarshal(b, out))

	assert.True(t, proto.Equal(in, out))
}

func TestBlobRoundTrip(t *testing.T) {
	for _, c := range []Compression{RAW, ZLIB, LZMA, BZIP2, LZ4, ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			in := NewBlob(c, []byte{1, 2, 3}, 3)

			b, err := proto.Marshal(in)
			require.NoError(t, err)

			out := &Blob{}
			require.NoError(t, proto.Unmarshal(b, out))

			assert.Equal(t, c, CompressionOf(out))
			assert.Equal(t, int32(3), out.GetRawSize())
		})
	}

	empty := &Blob{}
	require.NoError(t, proto.Unmarshal(nil, empty))
	assert.Equal(t, NONE, CompressionOf(empty))
	assert.Nil(t, empty.RawSize)

	assert.Nil(t, NewBlob(RAW, nil, -1).RawSize)
}

func TestBlobHeaderRequiresFields(t *testing.T) {
	typeOnly := protowire.AppendTag(nil, 1, protowire.BytesType)
	typeOnly = protowire.AppendString(typeOnly, TypeOSMData)
	assert.Error(t, proto.Unmarshal(typeOnly, &BlobHeader{}))

	sizeOnly := protowire.AppendTag(nil, 3, protowire.VarintType)
	sizeOnly = protowire.AppendVarint(sizeOnly, 10)
	assert.Error(t, proto.Unmarshal(sizeOnly, &BlobHeader{}))

	in := &BlobHeader{Type: proto.String(TypeOSMData), Datasize: proto.Int32(10), Indexdata: []byte{9}}
	b, err := proto.Marshal(in)
	require.NoError(t, err)

	h := &BlobHeader{}
	require.NoError(t, proto.Unmarshal(b, h))
	assert.True(t, proto.Equal(in, h))
}

func TestParseCompression(t *testing.T) {
	c, err := ParseCompression("zstd")
	require.NoError(t, err)
	assert.Equal(t, ZSTD, c)

	_, err = ParseCompression("snappy")
	assert.Error(t, err)
}
