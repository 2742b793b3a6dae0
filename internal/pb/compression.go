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

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=paths=source_relative ../../internal/pb/fileformat.proto ../../internal/pb/osmformat.proto

// Package pb holds the protocol buffer messages of the OSM PBF format.
package pb

import (
	"fmt"
)

// Blob header types.
const (
	TypeOSMHeader = "OSMHeader"
	TypeOSMData   = "OSMData"
)

// Compression discriminates the payload variants of a Blob.
type Compression int

const (
	// NONE denotes a blob that carries no payload at all.
	NONE Compression = iota
	RAW
	ZLIB
	LZMA
	BZIP2
	LZ4
	ZSTD
)

func (c Compression) String() string {
	switch c {
	case NONE:
		return "none"
	case RAW:
		return "raw"
	case ZLIB:
		return "zlib"
	case LZMA:
		return "lzma"
	case BZIP2:
		return "bzip2"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ParseCompression converts the String form of a Compression back.
func ParseCompression(s string) (Compression, error) {
	for c := RAW; c <= ZSTD; c++ {
		if c.String() == s {
			return c, nil
		}
	}

	return NONE, fmt.Errorf("unknown compression %q", s)
}

// CompressionOf reports which payload variant the blob carries.
func CompressionOf(blob *Blob) Compression {
	switch blob.GetData().(type) {
	case *Blob_Raw:
		return RAW
	case *Blob_ZlibData:
		return ZLIB
	case *Blob_LzmaData:
		return LZMA
	case *Blob_OBSOLETEBzip2Data:
		return BZIP2
	case *Blob_Lz4Data:
		return LZ4
	case *Blob_ZstdData:
		return ZSTD
	default:
		return NONE
	}
}

// NewBlob wraps an already compressed payload.  A negative rawSize leaves
// the uncompressed size undeclared.
func NewBlob(c Compression, data []byte, rawSize int32) *Blob {
	blob := &Blob{}

	if rawSize >= 0 {
		blob.RawSize = &rawSize
	}

	switch c {
	case RAW:
		blob.Data = &Blob_Raw{Raw: data}
	case ZLIB:
		blob.Data = &Blob_ZlibData{ZlibData: data}
	case LZMA:
		blob.Data = &Blob_LzmaData{LzmaData: data}
	case BZIP2:
		blob.Data = &Blob_OBSOLETEBzip2Data{OBSOLETEBzip2Data: data}
	case LZ4:
		blob.Data = &Blob_Lz4Data{Lz4Data: data}
	case ZSTD:
		blob.Data = &Blob_ZstdData{ZstdData: data}
	}

	return blob
}
