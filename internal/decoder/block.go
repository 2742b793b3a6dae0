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
	"fmt"

	"go.uber.org/zap"

	"m4o.io/osmkv/internal/logger"
	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// DecodeData unpacks an OSMData blob and parses it into entities.
func DecodeData(blob *pb.Blob) ([]model.Entity, error) {
	buf, err := Unpack(blob)
	if err != nil {
		return nil, err
	}

	return ParsePrimitiveBlock(buf)
}

// DecodeEncoded decodes a blob read off of a stream.  Header blobs after the
// first are checked for unsupported features and yield no entities.
func DecodeEncoded(enc Encoded) ([]model.Entity, error) {
	var (
		entities []model.Entity
		err      error
	)

	switch enc.Header.GetType() {
	case pb.TypeOSMData:
		entities, err = DecodeData(enc.Blob)
	case pb.TypeOSMHeader:
		var buf []byte

		if buf, err = Unpack(enc.Blob); err == nil {
			_, err = ParseHeaderBlock(buf)
		}
	default:
		err = fmt.Errorf("%w: unknown blob type %q", ErrUnsupportedEncoding, enc.Header.GetType())
	}

	if err != nil {
		logger.Get().Error("unable to decode blob",
			zap.Int("blob", enc.Index),
			zap.String("type", enc.Header.GetType()),
			zap.Stringer("compression", pb.CompressionOf(enc.Blob)),
			zap.Error(err))

		return nil, fmt.Errorf("blob %d: %w", enc.Index, err)
	}

	return entities, nil
}
