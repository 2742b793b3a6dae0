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

package decoder

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/destel/rill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

func testHeader() model.Header {
	return model.Header{
		BoundingBox: &model.BoundingBox{Top: 51.7, Left: -0.6, Bottom: 51.2, Right: 0.4},
		RequiredFeatures: []string{
			model.FeatureOsmSchema,
			model.FeatureDenseNodes,
		},
		WritingProgram:              "osmkv-test",
		OsmosisReplicationTimestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLoadHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encoder.SaveHeader(&buf, testHeader(), pb.ZLIB))

	hdr, err := LoadHeader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "osmkv-test", hdr.WritingProgram)
	assert.Equal(t, testHeader().RequiredFeatures, hdr.RequiredFeatures)
	assert.True(t, testHeader().BoundingBox.EqualWithin(hdr.BoundingBox, model.E7))
	assert.Equal(t, testHeader().OsmosisReplicationTimestamp, hdr.OsmosisReplicationTimestamp)
}

func TestLoadHeaderUnsupportedFeature(t *testing.T) {
	h := testHeader()
	h.RequiredFeatures = append(h.RequiredFeatures, "LocationsOnWays")

	var buf bytes.Buffer
	require.NoError(t, encoder.SaveHeader(&buf, h, pb.RAW))

	_, err := LoadHeader(&buf)

	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.Contains(t, err.Error(), "LocationsOnWays")
}

func TestLoadHeaderWrongBlobType(t *testing.T) {
	var buf bytes.Buffer
	blk := encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions())
	require.NoError(t, encoder.WriteBlob(&buf, pb.TypeOSMData, blk, pb.RAW))

	_, err := LoadHeader(&buf)

	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestLoadHeaderEmptyStream(t *testing.T) {
	_, err := LoadHeader(&bytes.Buffer{})

	assert.ErrorIs(t, err, ErrCorruptContainer)
}

func writeFile(t *testing.T, blocks int) []byte {
	t.Helper()

	var buf bytes.Buffer

	w, err := encoder.NewWriter(&buf, testHeader(), pb.ZLIB, encoder.DefaultBlockOptions(), len(sampleEntities()))
	require.NoError(t, err)

	for range blocks {
		require.NoError(t, w.Write(sampleEntities()...))
	}

	require.NoError(t, w.Close())
	require.Equal(t, blocks, w.Blocks())

	return buf.Bytes()
}

func TestStreamBlobs(t *testing.T) {
	rdr := bytes.NewReader(writeFile(t, 3))

	_, err := LoadHeader(rdr)
	require.NoError(t, err)

	blobs, err := rill.ToSlice(StreamBlobs(context.Background(), rdr, 1))
	require.NoError(t, err)
	require.Len(t, blobs, 3)

	for i, enc := range blobs {
		assert.Equal(t, i+1, enc.Index)
		assert.Equal(t, pb.TypeOSMData, enc.Header.GetType())

		entities, err := DecodeEncoded(enc)
		require.NoError(t, err)
		assert.Len(t, entities, len(sampleEntities()))
	}
}

func TestStreamBlobsTruncated(t *testing.T) {
	file := writeFile(t, 2)

	rdr := bytes.NewReader(file[:len(file)-10])

	_, err := LoadHeader(rdr)
	require.NoError(t, err)

	var (
		values int
		errs   []error
	)

	for enc := range StreamBlobs(context.Background(), rdr, 1) {
		if enc.Error != nil {
			errs = append(errs, enc.Error)
		} else {
			values++
		}
	}

	assert.Equal(t, 1, values)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrCorruptContainer)
	assert.ErrorIs(t, errs[0], ErrStreamRead)
}

// writeFrame writes a blob header announcing data followed by data itself.
func writeFrame(t *testing.T, buf *bytes.Buffer, blobType string, data []byte) {
	t.Helper()

	hb, err := proto.Marshal(&pb.BlobHeader{Type: proto.String(blobType), Datasize: proto.Int32(int32(len(data)))})
	require.NoError(t, err)

	require.NoError(t, binary.Write(buf, binary.BigEndian, uint32(len(hb))))
	buf.Write(hb)
	buf.Write(data)
}

func TestStreamBlobsContinuesPastCorruptBlob(t *testing.T) {
	file := writeFile(t, 1)

	rdr := bytes.NewReader(file)

	_, err := LoadHeader(rdr)
	require.NoError(t, err)

	rest := make([]byte, rdr.Len())
	_, err = rdr.Read(rest)
	require.NoError(t, err)

	// A blob whose zlib field runs past the end of the blob, followed by
	// the intact data blob.
	var buf bytes.Buffer
	writeFrame(t, &buf, pb.TypeOSMData, []byte{0x1a, 0x7f})
	buf.Write(rest)

	var (
		values []Encoded
		errs   []error
	)

	for enc := range StreamBlobs(context.Background(), &buf, 1) {
		if enc.Error != nil {
			errs = append(errs, enc.Error)
		} else {
			values = append(values, enc.Value)
		}
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrCorruptContainer)
	assert.NotErrorIs(t, errs[0], ErrStreamRead)

	require.Len(t, values, 1)
	assert.Equal(t, 2, values[0].Index)
}

func TestStreamBlobsStopsAtUnreadableHeader(t *testing.T) {
	var buf bytes.Buffer

	// The size prefix announces more header bytes than there are.
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(100)))
	buf.Write([]byte{0x0a, 0x02})

	errs := 0

	for enc := range StreamBlobs(context.Background(), &buf, 1) {
		require.Error(t, enc.Error)
		assert.ErrorIs(t, enc.Error, ErrStreamRead)

		errs++
	}

	assert.Equal(t, 1, errs)
}

func TestReadBlobNegativeSize(t *testing.T) {
	var buf bytes.Buffer

	hb, err := proto.Marshal(&pb.BlobHeader{Type: proto.String(pb.TypeOSMData), Datasize: proto.Int32(-1)})
	require.NoError(t, err)

	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(len(hb))))
	buf.Write(hb)

	_, _, err = ReadBlob(&buf)

	assert.ErrorIs(t, err, ErrStreamRead)
}

func TestDecodeEncodedUnknownType(t *testing.T) {
	blob, err := encoder.Pack(&pb.StringTable{}, pb.RAW)
	require.NoError(t, err)

	_, err = DecodeEncoded(Encoded{Index: 4, Header: &pb.BlobHeader{Type: proto.String("OSMIndex")}, Blob: blob})

	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}
