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
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// encodeFile writes copies of the sample entities, one block per copy.
func encodeFile(t *testing.T, copies int, opts ...EncoderOption) []byte {
	t.Helper()

	var buf bytes.Buffer

	opts = append([]EncoderOption{
		WithBlockSize(len(sampleEntities())),
		WithStorePath(t.TempDir()),
		WithWritingProgram("osmkv-test"),
	}, opts...)

	enc, err := NewEncoder(&buf, opts...)
	require.NoError(t, err)

	for range copies {
		require.NoError(t, enc.Encode(sampleEntities()...))
	}

	require.NoError(t, enc.Close())
	require.Equal(t, copies, enc.Blocks())

	return buf.Bytes()
}

func TestDecoder(t *testing.T) {
	file := encodeFile(t, 5)

	d, err := NewDecoder(context.Background(), bytes.NewReader(file), WithNCpus(3), WithVisibility("team"))
	require.NoError(t, err)

	defer d.Close()

	assert.Equal(t, "osmkv-test", d.Header.WritingProgram)
	assert.Equal(t, "OSM", d.Session().Table())

	var blocks []Block

	for {
		blk, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		blocks = append(blocks, blk)
	}

	require.Len(t, blocks, 5)

	for i, blk := range blocks {
		assert.Equal(t, i+1, blk.Index)
		require.Len(t, blk.Entities, len(sampleEntities()))
		assert.Equal(t, d.Session().MapEntities(blk.Entities), blk.Cells)
		assert.Equal(t, "team", blk.Cells[0].Visibility)
	}

	_, err = d.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoderDecode(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(encodeFile(t, 3)), WithEntitiesOnly())
	require.NoError(t, err)

	var n int

	for {
		entities, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		n += len(entities)
	}

	assert.Equal(t, 3*len(sampleEntities()), n)
}

func TestDecoderEntitiesOnly(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(encodeFile(t, 1)), WithEntitiesOnly())
	require.NoError(t, err)

	blk, err := d.Next()
	require.NoError(t, err)

	assert.NotEmpty(t, blk.Entities)
	assert.Nil(t, blk.Cells)
}

func TestDecoderHeaderBoundingBox(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(encodeFile(t, 1)))
	require.NoError(t, err)

	defer d.Close()

	expected := &model.BoundingBox{Top: 51.51, Left: -0.13, Bottom: 51.5, Right: -0.12}

	require.NotNil(t, d.Header.BoundingBox)
	assert.True(t, expected.EqualWithin(d.Header.BoundingBox, model.E7), "%v", d.Header.BoundingBox)
}

// corruptFile has a good block, a block with a truncated string table and
// another good block.
func corruptFile(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, encoder.SaveHeader(&buf, model.Header{RequiredFeatures: []string{model.FeatureOsmSchema}}, pb.RAW))

	good := encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions())

	require.NoError(t, encoder.WriteBlob(&buf, pb.TypeOSMData, good, pb.ZLIB))
	require.NoError(t, encoder.WriteRawBlob(&buf, pb.TypeOSMData, pb.NewBlob(pb.RAW, []byte{0x0a, 0x05, 0x01}, -1)))
	require.NoError(t, encoder.WriteBlob(&buf, pb.TypeOSMData, good, pb.ZLIB))

	return buf.Bytes()
}

func TestDecoderStopsAtCorruptBlock(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(corruptFile(t)), WithNCpus(2))
	require.NoError(t, err)

	blk, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, blk.Index)

	_, err = d.Next()
	assert.ErrorIs(t, err, ErrCorruptBlock)
	assert.Contains(t, err.Error(), "blob 2")

	_, err = d.Next()
	assert.ErrorIs(t, err, ErrCorruptBlock)
}

func TestDecoderSkipCorrupt(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(corruptFile(t)), WithSkipCorrupt(true))
	require.NoError(t, err)

	defer d.Close()

	var (
		indices []int
		errs    []error
	)

	for {
		blk, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			errs = append(errs, err)

			continue
		}

		indices = append(indices, blk.Index)
	}

	assert.Equal(t, []int{1, 3}, indices)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrCorruptBlock)
}

func TestDecoderTruncatedStream(t *testing.T) {
	file := encodeFile(t, 2)

	d, err := NewDecoder(context.Background(), bytes.NewReader(file[:len(file)-3]), WithSkipCorrupt(true))
	require.NoError(t, err)

	_, err = d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	assert.ErrorIs(t, err, ErrCorruptContainer)
	assert.ErrorIs(t, err, ErrStreamRead)

	// The truncation is not skipped over like a corrupt block.
	_, err = d.Next()
	assert.ErrorIs(t, err, ErrStreamRead)
}

func TestDecoderRejectsMissingHeader(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, encoder.WriteBlob(&buf, pb.TypeOSMData, encoder.EncodeBlock(sampleEntities(), encoder.DefaultBlockOptions()), pb.RAW))

	_, err := NewDecoder(context.Background(), &buf)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestDecoderClose(t *testing.T) {
	d, err := NewDecoder(context.Background(), bytes.NewReader(encodeFile(t, 20)), WithNCpus(2))
	require.NoError(t, err)

	_, err = d.Next()
	require.NoError(t, err)

	d.Close()
	d.Close()

	var n int

	for {
		if _, err := d.Next(); err != nil {
			assert.ErrorIs(t, err, io.EOF)

			break
		}

		n++
	}

	assert.Less(t, n, 19, "Close did not cancel decoding")
}

func TestDecoderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	d, err := NewDecoder(ctx, bytes.NewReader(encodeFile(t, 20)))
	require.NoError(t, err)

	defer d.Close()

	cancel()

	var n int

	for {
		if _, err := d.Next(); err != nil {
			assert.ErrorIs(t, err, io.EOF)

			break
		}

		n++
	}

	assert.Less(t, n, 20)
}
