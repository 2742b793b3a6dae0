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

	"google.golang.org/protobuf/proto"

	"m4o.io/osmkv/internal/pb"
	"m4o.io/osmkv/model"
)

// EncodeHeader converts a file header into its wire form.
func EncodeHeader(hdr model.Header) *pb.HeaderBlock {
	hb := &pb.HeaderBlock{
		RequiredFeatures:                 hdr.RequiredFeatures,
		OptionalFeatures:                 hdr.OptionalFeatures,
		Writingprogram:                   proto.String(hdr.WritingProgram),
		Source:                           proto.String(hdr.Source),
		OsmosisReplicationSequenceNumber: proto.Int64(hdr.OsmosisReplicationSequenceNumber),
		OsmosisReplicationBaseUrl:        proto.String(hdr.OsmosisReplicationBaseURL),
	}

	if bbox := hdr.BoundingBox; bbox != nil {
		hb.Bbox = &pb.HeaderBBox{
			Top:    proto.Int64(bbox.Top.Coordinate()),
			Left:   proto.Int64(bbox.Left.Coordinate()),
			Bottom: proto.Int64(bbox.Bottom.Coordinate()),
			Right:  proto.Int64(bbox.Right.Coordinate()),
		}
	}

	if !hdr.OsmosisReplicationTimestamp.IsZero() {
		hb.OsmosisReplicationTimestamp = proto.Int64(hdr.OsmosisReplicationTimestamp.Unix())
	}

	return hb
}

// SaveHeader writes the OSMHeader blob that starts every file.
func SaveHeader(wrtr io.Writer, hdr model.Header, compression pb.Compression) error {
	if err := WriteBlob(wrtr, pb.TypeOSMHeader, EncodeHeader(hdr), compression); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	return nil
}
