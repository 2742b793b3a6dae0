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

// Package metrics counts ingest progress and samples process and system
// resource usage.
package metrics

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"m4o.io/osmkv/model"
)

// Counters accumulate ingest progress.  They are safe for concurrent use.
type Counters struct {
	start    time.Time
	blocks   atomic.Int64
	corrupt  atomic.Int64
	cells    atomic.Int64
	bytes    atomic.Int64
	entities [3]atomic.Int64
}

// Snapshot is a point in time copy of Counters.
type Snapshot struct {
	Elapsed   time.Duration
	Blocks    int64
	Corrupt   int64
	Cells     int64
	Bytes     int64
	Nodes     int64
	Ways      int64
	Relations int64
}

// NewCounters starts counting now.
func NewCounters() *Counters {
	return &Counters{start: time.Now()}
}

// AddBlock records one decoded block and the entities and cells it produced.
func (c *Counters) AddBlock(entities []model.Entity, cells int) {
	c.blocks.Add(1)
	c.cells.Add(int64(cells))

	for _, e := range entities {
		c.entities[e.Kind()].Add(1)
	}
}

// AddCorrupt records a block that failed to decode.
func (c *Counters) AddCorrupt() {
	c.corrupt.Add(1)
}

// AddBytes records input consumed.
func (c *Counters) AddBytes(n int64) {
	c.bytes.Add(n)
}

// Snapshot copies the current values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Elapsed:   time.Since(c.start),
		Blocks:    c.blocks.Load(),
		Corrupt:   c.corrupt.Load(),
		Cells:     c.cells.Load(),
		Bytes:     c.bytes.Load(),
		Nodes:     c.entities[model.NODE].Load(),
		Ways:      c.entities[model.WAY].Load(),
		Relations: c.entities[model.RELATION].Load(),
	}
}

// Entities returns the total entity count.
func (s Snapshot) Entities() int64 {
	return s.Nodes + s.Ways + s.Relations
}

// CellsPerSecond is the average cell throughput.
func (s Snapshot) CellsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}

	return float64(s.Cells) / s.Elapsed.Seconds()
}

// Fields renders the snapshot as zap fields.
func (s Snapshot) Fields() []zap.Field {
	return []zap.Field{
		zap.Duration("elapsed", s.Elapsed),
		zap.Int64("blocks", s.Blocks),
		zap.Int64("corrupt", s.Corrupt),
		zap.Int64("nodes", s.Nodes),
		zap.Int64("ways", s.Ways),
		zap.Int64("relations", s.Relations),
		zap.Int64("cells", s.Cells),
		zap.Int64("bytes", s.Bytes),
		zap.Float64("cells_per_sec", s.CellsPerSecond()),
	}
}
