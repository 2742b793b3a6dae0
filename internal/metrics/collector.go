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

package metrics

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
)

// SystemMetrics holds one sample of resource usage.
type SystemMetrics struct {
	CPUPercent        float64 // system wide, 0-100
	ProcessCPUPercent float64 // may exceed 100 on multi-core machines
	ProcessRSS        uint64
	MemoryUsed        uint64
	MemoryTotal       uint64
	MemoryPercent     float64
	Timestamp         time.Time
}

// Collector periodically samples resource usage and logs it together with
// the ingest counters.
type Collector struct {
	interval time.Duration
	logger   *zap.Logger
	counters *Counters
	proc     *process.Process

	mu   sync.RWMutex
	last *SystemMetrics
}

// NewCollector returns a collector logging every interval.  counters may be
// nil.
func NewCollector(interval time.Duration, logger *zap.Logger, counters *Counters) *Collector {
	if interval < time.Second {
		interval = 30 * time.Second
	}

	proc, _ := process.NewProcess(int32(os.Getpid()))

	return &Collector{
		interval: interval,
		logger:   logger,
		counters: counters,
		proc:     proc,
	}
}

// Start collects until ctx is done.
func (c *Collector) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Collect()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("metrics collection stopped")

			return
		case <-ticker.C:
			c.Collect()
		}
	}
}

// Last returns the most recent sample, or nil before the first one.
func (c *Collector) Last() *SystemMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.last
}

// Collect takes and logs one sample.
func (c *Collector) Collect() *SystemMetrics {
	m := &SystemMetrics{Timestamp: time.Now()}

	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		m.CPUPercent = pct[0]
	}

	if c.proc != nil {
		if pct, err := c.proc.Percent(0); err == nil {
			m.ProcessCPUPercent = pct
		}

		if info, err := c.proc.MemoryInfo(); err == nil {
			m.ProcessRSS = info.RSS
		}
	}

	if vmem, err := mem.VirtualMemory(); err == nil {
		m.MemoryPercent = vmem.UsedPercent
		m.MemoryUsed = vmem.Used
		m.MemoryTotal = vmem.Total
	}

	c.mu.Lock()
	c.last = m
	c.mu.Unlock()

	fields := []zap.Field{
		zap.Float64("sys_cpu", m.CPUPercent),
		zap.Float64("proc_cpu", m.ProcessCPUPercent),
		zap.String("rss", humanize.IBytes(m.ProcessRSS)),
		zap.Float64("mem_pct", m.MemoryPercent),
		zap.String("mem_used", humanize.IBytes(m.MemoryUsed)),
	}

	if c.counters != nil {
		fields = append(fields, c.counters.Snapshot().Fields()...)
	}

	c.logger.Info("ingest metrics", fields...)

	return m
}
