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

package encoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

func TestCalcDeltasInt64(t *testing.T) {
	nodes := []model.ID{1, 1, 2, 3, 5, 7, 12}
	deltas := []model.ID{1, 0, 1, 1, 2, 2, 5}

	assert.Equal(t, deltas, calcDeltas(nodes))
}

func TestCalcDeltasFloat(t *testing.T) {
	nodes := []float32{1, 1, 2, 3, 5, 7, 12}
	deltas := []float32{1, 0, 1, 1, 2, 2, 5}

	assert.Equal(t, deltas, calcDeltas(nodes))
}

func TestCalcDeltasEmpty(t *testing.T) {
	assert.Nil(t, calcDeltas([]int64{}))
}

func TestCalcIDs(t *testing.T) {
	tags := map[string]string{"a": "b", "c": "d", "e": "f"}
	expectedKeyIDs := []uint32{1, 3, 5}
	expectedTagIDs := []uint32{2, 4, 6}

	strings := NewStrings()
	strings.Add("a")
	strings.Add("b")
	strings.Add("c")
	strings.Add("d")
	strings.Add("e")
	strings.Add("f")

	keyIDs, tagIDs := calcTagIDs(tags, strings.CalcTable())

	assert.Equal(t, expectedKeyIDs, keyIDs)
	assert.Equal(t, expectedTagIDs, tagIDs)
}

func TestTableReservesIndexZero(t *testing.T) {
	strings := NewStrings()
	strings.Add("b")
	strings.Add("")
	strings.Add("a")

	table := strings.CalcTable()

	assert.Equal(t, [][]byte{{}, []byte("a"), []byte("b")}, table.AsArray())
	assert.Equal(t, int32(0), table.IndexOf(""))
	assert.Panics(t, func() { table.IndexOf("missing") })
}

func TestFromTimestamp(t *testing.T) {
	ts, _ := time.Parse(time.RFC3339, "2022-02-13T20:40:22Z")

	assert.Equal(t, int64(1644784822), fromTimestamp(DateGranularityMs, ts))
	assert.Equal(t, int64(1644784822), fromTimestamp(DateGranularityMs, ts.Local()))
}

func TestEncodeBlockGroupsRuns(t *testing.T) {
	entities := []model.Entity{
		&model.Node{ID: 1},
		&model.Node{ID: 2},
		&model.Way{ID: 10, NodeIDs: []model.ID{1, 2}},
		&model.Node{ID: 3},
		&model.Relation{ID: 20, Members: []model.Member{{ID: 10, Type: model.WAY, Role: "outer"}}},
	}

	blk := EncodeBlock(entities, DefaultBlockOptions())

	require.Len(t, blk.Primitivegroup, 4)
	assert.Equal(t, []int64{1, 1}, blk.Primitivegroup[0].Dense.Id)
	assert.Equal(t, []int64{1, 1}, blk.Primitivegroup[1].Ways[0].Refs)
	assert.Equal(t, []int64{3}, blk.Primitivegroup[2].Dense.Id)
	assert.Equal(t, []pb.Relation_MemberType{pb.Relation_WAY}, blk.Primitivegroup[3].Relations[0].Types)
	assert.Equal(t, "outer", string(blk.Stringtable.S[blk.Primitivegroup[3].Relations[0].RolesSid[0]]))
	assert.Equal(t, int64(20), blk.Primitivegroup[3].Relations[0].GetId())
}

func TestEncodeDenseInfoColumns(t *testing.T) {
	entities := []model.Entity{
		&model.Node{ID: 1, Info: &model.Info{Version: model.Some[int32](3), Visible: model.Some(false)}},
		&model.Node{ID: 2},
	}

	dn := EncodeBlock(entities, DefaultBlockOptions()).Primitivegroup[0].Dense

	require.NotNil(t, dn.Denseinfo)
	assert.Equal(t, []int32{3, 0}, dn.Denseinfo.Version)
	assert.Equal(t, []bool{false, true}, dn.Denseinfo.Visible)
	assert.Empty(t, dn.Denseinfo.Timestamp)
	assert.Empty(t, dn.Denseinfo.Uid)
	assert.Empty(t, dn.KeysVals)
}

func TestEncodeDenseInfoOmittedWhenEmpty(t *testing.T) {
	entities := []model.Entity{
		&model.Node{ID: 1, Info: &model.Info{}},
		&model.Node{ID: 2},
	}

	dn := EncodeBlock(entities, DefaultBlockOptions()).Primitivegroup[0].Dense

	assert.Nil(t, dn.Denseinfo)
}

func TestEncodePlainNodes(t *testing.T) {
	opts := DefaultBlockOptions()
	opts.DenseNodes = false

	entities := []model.Entity{
		&model.Node{ID: 7, Lat: 51.5, Lon: -0.1, Tags: map[string]string{"k": "v"}},
	}

	pg := EncodeBlock(entities, opts).Primitivegroup[0]

	require.Len(t, pg.Nodes, 1)
	assert.Nil(t, pg.Dense)
	assert.Equal(t, int64(7), pg.Nodes[0].GetId())
	assert.Equal(t, int64(515000000), pg.Nodes[0].GetLat())
	assert.Equal(t, int64(-1000000), pg.Nodes[0].GetLon())
	assert.Nil(t, pg.Nodes[0].Info)
}

func TestPackAllCompressions(t *testing.T) {
	msg := &pb.StringTable{S: [][]byte{{}, []byte("highway"), []byte("residential")}}

	raw, err := proto.Marshal(msg)
	require.NoError(t, err)

	for _, c := range []pb.Compression{pb.RAW, pb.ZLIB, pb.LZMA, pb.LZ4, pb.ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			blob, err := Pack(msg, c)
			require.NoError(t, err)

			assert.Equal(t, c, pb.CompressionOf(blob))
			assert.Equal(t, int32(len(raw)), blob.GetRawSize())
			assert.NotNil(t, blob.GetData())
		})
	}

	_, err = Pack(msg, pb.BZIP2)
	assert.Error(t, err)
}

func TestPackRequiresFields(t *testing.T) {
	_, err := Pack(&pb.PrimitiveBlock{}, pb.RAW)
	assert.Error(t, err)
}
