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
	"fmt"
	"io"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// Writer writes entities as an OSM PBF stream: a header blob followed by data
// blobs of at most BlockSize entities each.
type Writer struct {
	w           io.Writer
	compression pb.Compression
	opts        BlockOptions
	blockSize   int
	pending     []model.Entity
	blocks      int
}

// NewWriter writes the header and returns a Writer for the entities that
// follow it.
func NewWriter(w io.Writer, hdr model.Header, c pb.Compression, opts BlockOptions, blockSize int) (*Writer, error) {
	if blockSize <= 0 || blockSize > EntityLimit {
		blockSize = EntityLimit
	}

	if err := SaveHeader(w, hdr, c); err != nil {
		return nil, err
	}

	return &Writer{
		w:           w,
		compression: c,
		opts:        opts,
		blockSize:   blockSize,
	}, nil
}

// Write buffers entities, flushing a block each time BlockSize is reached.
func (w *Writer) Write(entities ...model.Entity) error {
	for _, e := range entities {
		w.pending = append(w.pending, e)

		if len(w.pending) >= w.blockSize {
			if err := w.Flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Flush writes the buffered entities as one block.
func (w *Writer) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}

	blk := EncodeBlock(w.pending, w.opts)

	if err := WriteBlob(w.w, pb.TypeOSMData, blk, w.compression); err != nil {
		return fmt.Errorf("could not write block %d: %w", w.blocks, err)
	}

	w.blocks++
	w.pending = w.pending[:0]

	return nil
}

// Blocks returns the number of data blocks written so far.
func (w *Writer) Blocks() int {
	return w.blocks
}

// Close flushes any buffered entities.  The underlying writer is not closed.
func (w *Writer) Close() error {
	return w.Flush()
}
