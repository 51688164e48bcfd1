// SPDX-License-Identifier: MIT
// Package graph: sentinel error set. Argument errors wrap ErrInvalidValue,
// sequencing errors wrap ErrNotReady, so the coarse class survives wrapping.

package graph

import (
	"fmt"

	"github.com/voltgraph/voltgraph"
)

var (
	// ErrNilHandle is returned when a nil *Handle reaches the API.
	ErrNilHandle = fmt.Errorf("graph: nil handle: %w", voltgraph.ErrInvalidValue)

	// ErrNilDescriptor is returned when a nil *Descriptor reaches the API.
	ErrNilDescriptor = fmt.Errorf("graph: nil descriptor: %w", voltgraph.ErrInvalidValue)

	// ErrClosed is returned on any use of a closed Handle or Descriptor,
	// double Close included. Destruction is never silently repeated.
	ErrClosed = fmt.Errorf("graph: handle or descriptor already closed: %w", voltgraph.ErrInvalidValue)

	// ErrSlotIndex is returned when a slot index lies outside the
	// allocated table.
	ErrSlotIndex = fmt.Errorf("graph: data slot index out of range: %w", voltgraph.ErrInvalidValue)

	// ErrSlotType is returned when an allocation list names an element
	// type this release does not support (anything but Int32).
	ErrSlotType = fmt.Errorf("graph: unsupported data slot type: %w", voltgraph.ErrInvalidValue)

	// ErrNoTopology is returned by operations that require an installed
	// topology before one exists.
	ErrNoTopology = fmt.Errorf("graph: no topology installed: %w", voltgraph.ErrNotReady)

	// ErrNotAllocated is returned on slot access before the covering
	// allocation call.
	ErrNotAllocated = fmt.Errorf("graph: data slots not allocated: %w", voltgraph.ErrNotReady)
)
