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
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/osmkv/internal/pb"
)

// MaxBlobSize is the largest decompressed block the decoder accepts.
const MaxBlobSize = 32 * 1024 * 1024

// Unpack uncompresses the blob into a new buffer.
//
// This is kept apart from reading blobs so that decompression can be
// performed concurrently.
func Unpack(blob *pb.Blob) ([]byte, error) {
	rawSize := int32(-1)
	if blob.RawSize != nil {
		rawSize = blob.GetRawSize()
	}

	if rawSize > MaxBlobSize {
		return nil, fmt.Errorf("%w: declared raw size %d exceeds %d", ErrCorruptContainer, rawSize, MaxBlobSize)
	}

	var (
		data    []byte
		factory func(r io.Reader) (io.ReadCloser, error)
	)

	switch x := blob.GetData().(type) {
	case *pb.Blob_Raw:
		if rawSize >= 0 && len(x.Raw) != int(rawSize) {
			return nil, fmt.Errorf("%w: raw blob data size %d but expected %d", ErrCorruptContainer, len(x.Raw), rawSize)
		}

		return x.Raw, nil
	case *pb.Blob_ZlibData:
		data = x.ZlibData
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return zlib.NewReader(r)
		}
	case *pb.Blob_LzmaData:
		data = x.LzmaData
		factory = func(r io.Reader) (io.ReadCloser, error) {
			rdr, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}

			return io.NopCloser(rdr), nil
		}
	case *pb.Blob_Lz4Data:
		data = x.Lz4Data
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		}
	case *pb.Blob_ZstdData:
		data = x.ZstdData
		factory = func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}

			return d.IOReadCloser(), nil
		}
	case nil:
		return nil, fmt.Errorf("%w: blob has no payload", ErrUnsupportedEncoding)
	default:
		return nil, fmt.Errorf("%w: %s compressed blob", ErrUnsupportedEncoding, pb.CompressionOf(blob))
	}

	c := pb.CompressionOf(blob)

	rdr, err := factory(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptContainer, c, err)
	}
	defer rdr.Close()

	buf := &bytes.Buffer{}
	if rawSize > 0 {
		buf.Grow(int(rawSize) + bytes.MinRead)
	}

	n, err := buf.ReadFrom(io.LimitReader(rdr, MaxBlobSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptContainer, c, err)
	}

	if n > MaxBlobSize {
		return nil, fmt.Errorf("%w: decompressed data exceeds %d bytes", ErrCorruptContainer, MaxBlobSize)
	}

	if rawSize >= 0 && n != int64(rawSize) {
		return nil, fmt.Errorf("%w: %s blob data size %d but expected %d", ErrCorruptContainer, c, n, rawSize)
	}

	return buf.Bytes(), nil
}
