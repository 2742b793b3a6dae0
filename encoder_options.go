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
	"time"

	"m4o.io/osmkv/internal/encoder"
	"m4o.io/osmkv/model"
)

// encoderOptions provides optional configuration parameters for Encoder construction.
type encoderOptions struct {
	compression Compression
	nCPU        uint16 // the number of CPUs to use for background processing
	blockSize   int
	block       encoder.BlockOptions

	store string

	header model.Header
}

// EncoderOption configures how we set up the encoder.
type EncoderOption func(*encoderOptions)

// WithCompression specifies the compression algorithm to use when encoding
// PBF blobs.  The default is Zlib.
func WithCompression(compression Compression) EncoderOption {
	return func(o *encoderOptions) {
		o.compression = compression
	}
}

// WithEncoderNCpus sets the number of CPUs used to encode and compress
// blocks.
func WithEncoderNCpus(n uint16) EncoderOption {
	return func(o *encoderOptions) {
		o.nCPU = n
	}
}

// WithBlockSize sets the number of entities per block, at most 8000.
func WithBlockSize(n int) EncoderOption {
	return func(o *encoderOptions) {
		o.blockSize = n
	}
}

// WithDenseNodes chooses between dense and plain node groups.  Dense is the
// default.
func WithDenseNodes(dense bool) EncoderOption {
	return func(o *encoderOptions) {
		o.block.DenseNodes = dense
	}
}

// WithGranularity sets the coordinate granularity in nanodegrees and the
// date granularity in milliseconds.
func WithGranularity(coordinate, date int32) EncoderOption {
	return func(o *encoderOptions) {
		o.block.Granularity = coordinate
		o.block.DateGranularity = date
	}
}

// WithStorePath lets you specify where to temporarily store entities.
func WithStorePath(path string) EncoderOption {
	return func(o *encoderOptions) {
		o.store = path
	}
}

// WithBoundingBox sets the bounding box of the PBF header.  Without it the
// box is computed from the encoded nodes.
func WithBoundingBox(bbox model.BoundingBox) EncoderOption {
	return func(o *encoderOptions) {
		o.header.BoundingBox = &bbox
	}
}

// WithRequiredFeatures sets the required features of the PBF header.
func WithRequiredFeatures(features ...string) EncoderOption {
	return func(o *encoderOptions) {
		o.header.RequiredFeatures = append(o.header.RequiredFeatures, features...)
	}
}

// WithOptionalFeatures sets the optional features of the PBF header.
func WithOptionalFeatures(features ...string) EncoderOption {
	return func(o *encoderOptions) {
		o.header.OptionalFeatures = append(o.header.OptionalFeatures, features...)
	}
}

// WithWritingProgram sets the writing program of the PBF header.
func WithWritingProgram(program string) EncoderOption {
	return func(o *encoderOptions) {
		o.header.WritingProgram = program
	}
}

// WithSource sets the source of the PBF header.
func WithSource(source string) EncoderOption {
	return func(o *encoderOptions) {
		o.header.Source = source
	}
}

// WithOsmosisReplicationTimestamp sets the Osmosis replication timestamp of
// the PBF header.
func WithOsmosisReplicationTimestamp(timestamp time.Time) EncoderOption {
	return func(o *encoderOptions) {
		o.header.OsmosisReplicationTimestamp = timestamp
	}
}

// WithOsmosisReplicationSequenceNumber sets the Osmosis replication sequence
// number of the PBF header.
func WithOsmosisReplicationSequenceNumber(sequenceNumber int64) EncoderOption {
	return func(o *encoderOptions) {
		o.header.OsmosisReplicationSequenceNumber = sequenceNumber
	}
}

// WithOsmosisReplicationBaseURL sets the Osmosis replication base URL of the
// PBF header.
func WithOsmosisReplicationBaseURL(url string) EncoderOption {
	return func(o *encoderOptions) {
		o.header.OsmosisReplicationBaseURL = url
	}
}

func newEncoderOptions(opts []EncoderOption) encoderOptions {
	cfg := encoderOptions{
		compression: DefaultCompression,
		nCPU:        DefaultNCpu(),
		blockSize:   encoder.EntityLimit,
		block:       encoder.DefaultBlockOptions(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.header.RequiredFeatures) == 0 {
		cfg.header.RequiredFeatures = []string{model.FeatureOsmSchema}
		if cfg.block.DenseNodes {
			cfg.header.RequiredFeatures = append(cfg.header.RequiredFeatures, model.FeatureDenseNodes)
		}
	}

	if cfg.blockSize <= 0 || cfg.blockSize > encoder.EntityLimit {
		cfg.blockSize = encoder.EntityLimit
	}

	cfg.nCPU = max(cfg.nCPU, 1)

	return cfg
}
