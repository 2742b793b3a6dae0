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
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// LoadHeader reads the first blob of a file, which must be an OSMHeader, and
// checks that every feature it requires is supported.
func LoadHeader(reader io.Reader) (model.Header, error) {
	h, b, err := ReadBlob(reader)
	if err != nil {
		if err == io.EOF {
			return model.Header{}, fmt.Errorf("%w: empty stream", ErrCorruptContainer)
		}

		return model.Header{}, err
	}

	if h.GetType() != pb.TypeOSMHeader {
		return model.Header{}, fmt.Errorf("%w: expected %s blob but got %q",
			ErrUnsupportedEncoding, pb.TypeOSMHeader, h.GetType())
	}

	buf, err := Unpack(b)
	if err != nil {
		return model.Header{}, err
	}

	return ParseHeaderBlock(buf)
}

// ParseHeaderBlock decodes a decompressed header block.
func ParseHeaderBlock(buf []byte) (model.Header, error) {
	hb := &pb.HeaderBlock{}
	if err := proto.Unmarshal(buf, hb); err != nil {
		return model.Header{}, fmt.Errorf("%w: unable to unmarshal header block: %w", ErrCorruptBlock, err)
	}

	header := model.Header{
		RequiredFeatures:                 hb.GetRequiredFeatures(),
		OptionalFeatures:                 hb.GetOptionalFeatures(),
		WritingProgram:                   hb.GetWritingprogram(),
		Source:                           hb.GetSource(),
		OsmosisReplicationSequenceNumber: hb.GetOsmosisReplicationSequenceNumber(),
		OsmosisReplicationBaseURL:        hb.GetOsmosisReplicationBaseUrl(),
	}

	if bbox := hb.GetBbox(); bbox != nil {
		header.BoundingBox = &model.BoundingBox{
			Left:   model.ToDegrees(0, 1, bbox.GetLeft()),
			Right:  model.ToDegrees(0, 1, bbox.GetRight()),
			Top:    model.ToDegrees(0, 1, bbox.GetTop()),
			Bottom: model.ToDegrees(0, 1, bbox.GetBottom()),
		}
	}

	if hb.OsmosisReplicationTimestamp != nil {
		header.OsmosisReplicationTimestamp = time.Unix(*hb.OsmosisReplicationTimestamp, 0).UTC()
	}

	if unsupported := header.UnsupportedFeatures(); len(unsupported) > 0 {
		return header, fmt.Errorf("%w: required features %s",
			ErrUnsupportedEncoding, strings.Join(unsupported, ", "))
	}

	return header, nil
}
