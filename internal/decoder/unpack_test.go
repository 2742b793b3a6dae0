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
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/pb"
)

func TestUnpackAllCompressions(t *testing.T) {
	blk := encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions())
	raw, err := proto.Marshal(blk)
	require.NoError(t, err)

	for _, c := range []pb.Compression{pb.RAW, pb.ZLIB, pb.LZMA, pb.LZ4, pb.ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			blob, err := encoder.Pack(blk, c)
			require.NoError(t, err)

			buf, err := Unpack(blob)
			require.NoError(t, err)
			assert.Equal(t, raw, buf)

			entities, err := DecodeData(blob)
			require.NoError(t, err)
			assert.Len(t, entities, len(sampleEntities()))
		})
	}
}

func TestUnpackRawSizeMismatch(t *testing.T) {
	for _, c := range []pb.Compression{pb.RAW, pb.ZLIB} {
		t.Run(c.String(), func(t *testing.T) {
			blob, err := encoder.Pack(&pb.StringTable{S: [][]byte{{}, []byte("abc")}}, c)
			require.NoError(t, err)

			blob.RawSize = proto.Int32(blob.GetRawSize() + 1)

			buf, err := Unpack(blob)

			assert.ErrorIs(t, err, ErrCorruptContainer)
			assert.Nil(t, buf)
		})
	}
}

func TestUnpackRawBlobSize(t *testing.T) {
	buf, err := Unpack(pb.NewBlob(pb.RAW, []byte("payload"), 7))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), buf)

	buf, err = Unpack(pb.NewBlob(pb.RAW, []byte("payload"), -1))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), buf)

	_, err = Unpack(pb.NewBlob(pb.RAW, []byte("payload"), 3))
	assert.ErrorIs(t, err, ErrCorruptContainer)
}

func TestUnpackUndeclaredRawSize(t *testing.T) {
	var compressed bytes.Buffer

	w := zlib.NewWriter(&compressed)
	_, err := w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	buf, err := Unpack(pb.NewBlob(pb.ZLIB, compressed.Bytes(), -1))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), buf)
}

func TestUnpackCorruptData(t *testing.T) {
	for _, c := range []pb.Compression{pb.ZLIB, pb.LZMA, pb.ZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			blob := pb.NewBlob(c, []byte("definitely not compressed"), 10)

			buf, err := Unpack(blob)

			assert.ErrorIs(t, err, ErrCorruptContainer)
			assert.Nil(t, buf)
		})
	}
}

func TestUnpackUnsupported(t *testing.T) {
	for _, blob := range []*pb.Blob{
		{},
		pb.NewBlob(pb.BZIP2, []byte("BZh9"), -1),
	} {
		_, err := Unpack(blob)
		assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	}
}

func TestUnmarshalBlobCorrupt(t *testing.T) {
	_, err := UnmarshalBlob([]byte{0x0a, 0x05, 0x01})

	assert.ErrorIs(t, err, ErrCorruptContainer)
}
