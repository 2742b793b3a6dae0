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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/destel/rill"
	"go.uber.org/zap"

	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/internal/logger"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// ErrEncoderClosed is returned when entities are encoded after Close.
var ErrEncoderClosed = errors.New("encoder is closed")

type packed struct {
	blob *pb.Blob
	bbox *model.BoundingBox
}

// Encoder writes entities as an OpenStreetMap PBF stream.  Blocks are
// encoded and compressed in the background and spooled to a temporary file
// so that the header, written first, can carry the bounding box of every
// node.
type Encoder struct {
	Header model.Header

	cfg  encoderOptions
	wrtr io.Writer
	tmp  *os.File

	batch   []model.Entity
	batches chan rill.Try[[]model.Entity]
	bbox    *model.BoundingBox
	blocks  int

	mu     sync.Mutex
	err    error
	closed bool
	done   chan struct{}
}

// NewEncoder returns a new encoder, configured with opts, that writes to
// wrtr once it is closed.
func NewEncoder(wrtr io.Writer, opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderOptions(opts)

	tmp, err := os.CreateTemp(cfg.store, "osmkv-*.pbf")
	if err != nil {
		return nil, fmt.Errorf("cannot create temporary file: %w", err)
	}

	e := &Encoder{
		Header:  cfg.header,
		cfg:     cfg,
		wrtr:    wrtr,
		tmp:     tmp,
		batches: make(chan rill.Try[[]model.Entity]),
		bbox:    model.InitialBoundingBox(),
		done:    make(chan struct{}),
	}

	results := rill.OrderedMap(e.batches, int(cfg.nCPU), e.pack)

	go e.spool(results)

	return e, nil
}

// pack encodes and compresses one batch.
func (e *Encoder) pack(batch []model.Entity) (packed, error) {
	bbox := model.InitialBoundingBox()

	for _, entity := range batch {
		if n, ok := entity.(*model.Node); ok {
			bbox.ExpandWithNode(n)
		}
	}

	blob, err := encoder.Pack(encoder.EncodeBlock(batch, e.cfg.block), e.cfg.compression)
	if err != nil {
		return packed{}, err
	}

	return packed{blob: blob, bbox: bbox}, nil
}

// spool writes packed blocks to the temporary file in order.  After the
// first failure the remaining blocks are discarded.
func (e *Encoder) spool(results <-chan rill.Try[packed]) {
	defer close(e.done)

	for r := range results {
		err := r.Error
		if err == nil && e.failure() == nil {
			err = encoder.WriteRawBlob(e.tmp, pb.TypeOSMData, r.Value.blob)
		}

		if err != nil {
			logger.Get().Error("unable to encode block", zap.Int("block", e.blocks), zap.Error(err))
			e.fail(err)

			continue
		}

		e.bbox.ExpandWithBoundingBox(r.Value.bbox)
		e.blocks++
	}
}

func (e *Encoder) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) failure() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Encode queues entities for encoding.  It returns the first background
// failure, if any.
func (e *Encoder) Encode(entities ...model.Entity) error {
	if e.closed {
		return ErrEncoderClosed
	}

	for _, entity := range entities {
		e.batch = append(e.batch, entity)

		if len(e.batch) >= e.cfg.blockSize {
			e.flush()
		}
	}

	return e.failure()
}

func (e *Encoder) flush() {
	if len(e.batch) == 0 {
		return
	}

	e.batches <- rill.Try[[]model.Entity]{Value: e.batch}
	e.batch = make([]model.Entity, 0, e.cfg.blockSize)
}

// Blocks returns the number of data blocks written.  It is final once Close
// returns.
func (e *Encoder) Blocks() int {
	<-e.done

	return e.blocks
}

// Close encodes any queued entities and writes the header followed by every
// block to the underlying writer, which is not closed.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrEncoderClosed
	}

	e.closed = true

	e.flush()
	close(e.batches)
	<-e.done

	defer func() {
		_ = e.tmp.Close()

		if err := os.Remove(e.tmp.Name()); err != nil {
			logger.Get().Warn("error removing temp store", zap.String("file", e.tmp.Name()), zap.Error(err))
		}
	}()

	if err := e.failure(); err != nil {
		return err
	}

	if e.Header.BoundingBox == nil && !e.bbox.IsEmpty() {
		e.Header.BoundingBox = e.bbox
	}

	if _, err := e.tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("cannot seek to beginning of temp store: %w", err)
	}

	if err := encoder.SaveHeader(e.wrtr, e.Header, e.cfg.compression); err != nil {
		return err
	}

	if _, err := io.Copy(e.wrtr, e.tmp); err != nil {
		return fmt.Errorf("error copying entities: %w", err)
	}

	return nil
}
