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
	"context"
	"errors"
	"io"
	"sync"

	"github.com/destel/rill"

	"m4o.io/osmkv/internal/decoder"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/schema"
)

// Block is one decoded data block of a PBF stream.
type Block struct {
	// Index is the position of the block's blob in the stream; the header
	// blob is 0.
	Index    int
	Entities []model.Entity

	// Cells holds the entities mapped to cells, unless the decoder was
	// created WithEntitiesOnly.
	Cells []schema.Cell
}

// Decoder reads and decodes OpenStreetMap PBF data from an input stream.
// Blocks are decoded in the background and delivered in stream order.
type Decoder struct {
	Header model.Header

	session     *Session
	skipCorrupt bool
	blocks      <-chan rill.Try[Block]
	cancel      context.CancelFunc
	err         error
	stop        sync.Once
}

// NewDecoder returns a new decoder, configured with opts, that reads from
// reader.  The decoder is initialized with the OSM header.
func NewDecoder(ctx context.Context, reader io.Reader, opts ...Option) (*Decoder, error) {
	cfg := newOptions(opts)

	hdr, err := decoder.LoadHeader(reader)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	d := &Decoder{
		Header:      hdr,
		session:     NewSession(opts...),
		skipCorrupt: cfg.skipCorrupt,
		cancel:      cancel,
	}

	encoded := decoder.StreamBlobs(ctx, reader, 1)

	d.blocks = rill.OrderedMap(encoded, int(cfg.nCPU), func(enc decoder.Encoded) (Block, error) {
		entities, err := decoder.DecodeEncoded(enc)
		if err != nil {
			return Block{}, err
		}

		blk := Block{Index: enc.Index, Entities: entities}
		if !cfg.entitiesOnly {
			blk.Cells = d.session.MapEntities(entities)
		}

		return blk, nil
	})

	return d, nil
}

// Session returns the session the decoder maps blocks with.
func (d *Decoder) Session() *Session {
	return d.session
}

// Next returns the next decoded block.  At the end of the stream it returns
// io.EOF.  A block that fails to decode is returned as an error; unless the
// decoder skips corrupt blocks, every later call returns the same error.
// An error wrapping ErrStreamRead is sticky even when skipping corrupt blocks.
func (d *Decoder) Next() (Block, error) {
	if d.err != nil {
		return Block{}, d.err
	}

	t, ok := <-d.blocks
	if !ok {
		d.err = io.EOF

		return Block{}, io.EOF
	}

	if t.Error != nil {
		if !d.skipCorrupt || errors.Is(t.Error, ErrStreamRead) {
			d.err = t.Error
			d.Close()
		}

		return Block{}, t.Error
	}

	return t.Value, nil
}

// Decode returns the entities of the next non-empty block, or io.EOF at the
// end of the stream.
func (d *Decoder) Decode() ([]model.Entity, error) {
	for {
		blk, err := d.Next()
		if err != nil {
			return nil, err
		}

		if len(blk.Entities) > 0 {
			return blk.Entities, nil
		}
	}
}

// Close will cancel the background decoding pipeline.  It is safe to call
// more than once and from another goroutine.  Next may still return blocks
// that were already in flight before it reports io.EOF.
func (d *Decoder) Close() {
	d.stop.Do(func() {
		d.cancel()

		rill.DrainNB(d.blocks)
	})
}
