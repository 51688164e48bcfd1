// SPDX-License-Identifier: MIT
// Package device: sentinel error set. Every sentinel wraps exactly one
// voltgraph status class so callers can branch coarse or fine via errors.Is.

package device

import (
	"fmt"

	"github.com/voltgraph/voltgraph"
)

var (
	// ErrOutOfMemory is returned when an allocation would exceed the
	// device's remaining memory budget.
	ErrOutOfMemory = fmt.Errorf("device: out of device memory: %w", voltgraph.ErrAllocFailure)

	// ErrBufferFreed is returned on any use of a Buffer after Free,
	// including a second Free.
	ErrBufferFreed = fmt.Errorf("device: buffer already freed: %w", voltgraph.ErrInvalidValue)

	// ErrSizeMismatch is returned by Upload/Download when the host buffer
	// length differs from the device buffer length.
	ErrSizeMismatch = fmt.Errorf("device: host/device length mismatch: %w", voltgraph.ErrInvalidValue)

	// ErrStreamClosed is returned when work is enqueued on a closed Stream.
	ErrStreamClosed = fmt.Errorf("device: stream closed: %w", voltgraph.ErrInvalidValue)

	// ErrBadConfig is returned by New for a configuration that normalizes
	// to a non-positive worker count or memory budget.
	ErrBadConfig = fmt.Errorf("device: invalid configuration: %w", voltgraph.ErrInvalidValue)
)
