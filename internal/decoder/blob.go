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

package decoder

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/destel/rill"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/logger"
	"m4o.io/osmkv/internal/pb"
)

// MaxBlobHeaderSize is the largest blob header the decoder accepts.
const MaxBlobHeaderSize = 64 * 1024

// Encoded is a blob read off of a stream together with its header.
type Encoded struct {
	// Index is the zero based position of the blob in the stream.
	Index  int
	Header *pb.BlobHeader
	Blob   *pb.Blob
}

// StreamBlobs reads blobs off of the reader and sends them down the returned
// channel in file order.  A blob that cannot be parsed is sent as an error
// and reading goes on.  The channel is closed at the end of the stream, after
// an error wrapping ErrStreamRead (which is sent) or when ctx is done.
func StreamBlobs(ctx context.Context, reader io.Reader, first int) <-chan rill.Try[Encoded] {
	ch := make(chan rill.Try[Encoded])

	go func() {
		defer close(ch)

		for i := first; ; i++ {
			h, b, err := ReadBlob(reader)
			if errors.Is(err, io.EOF) {
				return
			}

			item := rill.Try[Encoded]{Value: Encoded{Index: i, Header: h, Blob: b}}
			if err != nil {
				logger.Get().Error("unable to read blob", zap.Int("blob", i), zap.Error(err))

				item = rill.Try[Encoded]{Error: fmt.Errorf("blob %d: %w", i, err)}
			}

			select {
			case ch <- item:
			case <-ctx.Done():
				return
			}

			if errors.Is(err, ErrStreamRead) {
				return
			}
		}
	}()

	return ch
}

// ReadBlob reads the next blob header and blob from rdr.  io.EOF is returned
// only when the stream ends cleanly between two blobs.  Errors that leave rdr
// off a blob boundary wrap ErrStreamRead.
func ReadBlob(rdr io.Reader) (*pb.BlobHeader, *pb.Blob, error) {
	h, err := readBlobHeader(rdr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, io.EOF
		}

		return nil, nil, fmt.Errorf("error reading blob header: %w", err)
	}

	b, err := readBlobData(rdr, h.GetDatasize())
	if err != nil {
		return nil, nil, fmt.Errorf("error reading %s blob: %w", h.GetType(), err)
	}

	return h, b, nil
}

// readBlobHeader reads the size prefixed blob header.
func readBlobHeader(rdr io.Reader) (*pb.BlobHeader, error) {
	var size uint32

	if err := binary.Read(rdr, binary.BigEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, streamError("error reading blob header size: %w", err)
	}

	if size > MaxBlobHeaderSize {
		return nil, streamError("blob header size %d exceeds %d", size, MaxBlobHeaderSize)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(rdr, buf); err != nil {
		return nil, streamError("truncated blob header: %w", err)
	}

	header := &pb.BlobHeader{}
	if err := proto.Unmarshal(buf, header); err != nil {
		return nil, streamError("error unmarshalling blob header: %w", err)
	}

	if header.GetDatasize() < 0 {
		return nil, streamError("negative blob size %d", header.GetDatasize())
	}

	return header, nil
}

// readBlobData reads a blob of the given size.  The blob still needs to be
// unpacked and parsed.
func readBlobData(rdr io.Reader, size int32) (*pb.Blob, error) {
	if size > MaxBlobSize {
		return nil, streamError("blob size %d exceeds %d", size, MaxBlobSize)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(rdr, buf); err != nil {
		return nil, streamError("truncated blob: %w", err)
	}

	return UnmarshalBlob(buf)
}

// UnmarshalBlob parses the bytes of a single Blob message.
func UnmarshalBlob(buf []byte) (*pb.Blob, error) {
	blob := &pb.Blob{}
	if err := proto.Unmarshal(buf, blob); err != nil {
		return nil, fmt.Errorf("%w: error unmarshalling blob: %w", ErrCorruptContainer, err)
	}

	return blob, nil
}
