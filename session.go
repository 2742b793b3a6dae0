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
	"m4o.io/osmkv/internal/decoder"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
	"m4o.io/osmkv/schema"
)

// Compression identifies how the payload of a block is compressed.
type Compression = pb.Compression

// Block payload compressions.
const (
	Raw  = pb.RAW
	Zlib = pb.ZLIB
	Lzma = pb.LZMA
	Lz4  = pb.LZ4
	Zstd = pb.ZSTD

	// DefaultCompression is the compression used when encoding.
	DefaultCompression = pb.ZLIB
)

// ParseCompression converts a compression name ("raw", "zlib", "lzma", "lz4"
// or "zstd") to a Compression.
func ParseCompression(s string) (Compression, error) {
	return pb.ParseCompression(s)
}

// Session decodes independent blocks and maps them to cells with one table
// and visibility label.  A Session holds no per-block state and is safe for
// concurrent use.
type Session struct {
	table  string
	mapper schema.Mapper
}

// NewSession returns a Session configured with opts.  Only the table,
// namespace and visibility options apply.
func NewSession(opts ...Option) *Session {
	cfg := newOptions(opts)

	return &Session{
		table:  TableName(cfg.namespace, cfg.table),
		mapper: schema.NewMapper(cfg.visibility),
	}
}

// Table returns the qualified name of the table the session's cells are
// destined for.
func (s *Session) Table() string {
	return s.table
}

// Visibility returns the label stamped on every cell.
func (s *Session) Visibility() string {
	return s.mapper.Visibility()
}

// DecodeBlob decodes a serialized Blob message holding a primitive block.
func (s *Session) DecodeBlob(b []byte) ([]schema.Cell, error) {
	blob, err := decoder.UnmarshalBlob(b)
	if err != nil {
		return nil, err
	}

	return s.decode(blob)
}

// DecodeBlock decodes a primitive block payload compressed with c.  rawSize
// is the declared uncompressed size; pass a negative value when it is not
// known.
func (s *Session) DecodeBlock(data []byte, c Compression, rawSize int32) ([]schema.Cell, error) {
	return s.decode(pb.NewBlob(c, data, rawSize))
}

func (s *Session) decode(blob *pb.Blob) ([]schema.Cell, error) {
	entities, err := decoder.DecodeData(blob)
	if err != nil {
		return nil, err
	}

	return s.MapEntities(entities), nil
}

// MapEntities maps entities, however they were decoded, to cells in order.
func (s *Session) MapEntities(entities []model.Entity) []schema.Cell {
	var cells []schema.Cell

	for _, e := range entities {
		cells = s.mapper.AppendCells(cells, e)
	}

	return cells
}
