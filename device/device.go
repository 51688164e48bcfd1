// SPDX-License-Identifier: MIT
// Package device: the Device context — identity, worker width, and the
// byte-accounted memory budget behind MemInfo.

package device

import (
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"

	"github.com/voltgraph/voltgraph/metrics"
)

// Device is one accelerator context. All buffers and streams created from it
// share its memory budget and worker width. A Device has no Close: it owns
// no goroutines and no memory of its own; buffers and streams do.
type Device struct {
	id      uuid.UUID
	name    string
	workers int
	total   int64
	used    atomic.Int64
}

// New opens a device with the given configuration. Zero fields take their
// documented defaults; a configuration that normalizes to a non-positive
// worker count or budget returns ErrBadConfig.
func New(cfg Config) (*Device, error) {
	workers := cfg.Workers
	if workers == 0 {
		workers = defaultWorkers()
	}
	memMB := cfg.MemoryMB
	if memMB == 0 {
		memMB = DefaultMemoryMB
	}
	if workers < 0 || memMB < 0 {
		return nil, ErrBadConfig
	}

	return &Device{
		id:      uuid.New(),
		name:    deviceName(),
		workers: workers,
		total:   memMB * bytesPerMB,
	}, nil
}

// defaultWorkers prefers the cpuid logical-core count and falls back to the
// runtime's view when cpuid cannot identify the host.
func defaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// deviceName reports the host CPU brand as the device name.
func deviceName() string {
	if s := cpuid.CPU.BrandName; s != "" {
		return s
	}

	return "virtual device"
}

// ID returns the device's unique identity.
func (d *Device) ID() uuid.UUID { return d.id }

// Name returns the human-readable device name.
func (d *Device) Name() string { return d.name }

// Workers returns the data-parallel width kernels shard across.
func (d *Device) Workers() int { return d.workers }

// MemInfo returns the free and total device memory in bytes. Free memory is
// exact, not an estimate: it moves only on Buffer allocation and Free.
func (d *Device) MemInfo() (free, total int64) {
	return d.total - d.used.Load(), d.total
}

// reserve debits n bytes from the budget, failing without side effects when
// the budget would be exceeded.
func (d *Device) reserve(n int64) error {
	for {
		used := d.used.Load()
		if used+n > d.total {
			return ErrOutOfMemory
		}
		if d.used.CompareAndSwap(used, used+n) {
			metrics.DeviceBytesInUse.Set(float64(used + n))
			metrics.DeviceAllocsTotal.Inc()

			return nil
		}
	}
}

// release credits n bytes back to the budget.
func (d *Device) release(n int64) {
	metrics.DeviceBytesInUse.Set(float64(d.used.Add(-n)))
}
