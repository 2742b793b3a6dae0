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
	"runtime"
)

const (
	// DefaultTable is the table cells are written to.
	DefaultTable = "OSM"

	// DefaultVisibility is the label stamped on every cell.
	DefaultVisibility = "public"
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// options provides optional configuration parameters for Session and Decoder
// construction.
type options struct {
	nCPU         uint16 // the number of CPUs to use for background processing
	table        string
	namespace    string
	visibility   string
	skipCorrupt  bool
	entitiesOnly bool
}

// Option configures a Session or a Decoder.
type Option func(*options)

// WithNCpus lets you set the number of CPUs to use for background processing.
// Zero selects DefaultNCpu.
func WithNCpus(n uint16) Option {
	return func(o *options) {
		o.nCPU = n
	}
}

// WithTable sets the name of the table cells are destined for.
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithNamespace qualifies the table name as <namespace>_<table>.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}

// WithVisibility sets the visibility label applied to every cell.
func WithVisibility(visibility string) Option {
	return func(o *options) {
		o.visibility = visibility
	}
}

// WithSkipCorrupt makes a Decoder carry on past blocks that fail to decode.
// The failure is still returned by Next, once.  A stream that cannot be read
// any further, reported as ErrStreamRead, still ends decoding.
func WithSkipCorrupt(skip bool) Option {
	return func(o *options) {
		o.skipCorrupt = skip
	}
}

// WithEntitiesOnly makes a Decoder skip mapping blocks to cells.
func WithEntitiesOnly() Option {
	return func(o *options) {
		o.entitiesOnly = true
	}
}

// defaultConfig provides a default configuration for sessions and decoders.
var defaultConfig = options{
	nCPU:       DefaultNCpu(),
	table:      DefaultTable,
	visibility: DefaultVisibility,
}

func newOptions(opts []Option) options {
	cfg := defaultConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nCPU == 0 {
		cfg.nCPU = DefaultNCpu()
	}

	return cfg
}

// TableName qualifies table with namespace, if there is one.
func TableName(namespace, table string) string {
	if namespace == "" {
		return table
	}

	return namespace + "_" + table
}
