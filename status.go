// SPDX-License-Identifier: MIT
// Package voltgraph: status taxonomy shared by every subpackage.
// This file defines ONLY the coarse status classes. Subpackages declare their
// own prefixed sentinels and wrap exactly one of these classes via %w, so a
// caller may branch on the precise condition (errors.Is(err, graph.ErrSlotIndex))
// or on the class (errors.Is(err, voltgraph.ErrInvalidValue)) as it prefers.

package voltgraph

import "errors"

// Success is represented by a nil error; there is no sentinel for it.
var (
	// ErrInvalidValue classes argument errors: nil handles or descriptors,
	// out-of-range vertices or slot indices, rejected topology orientations.
	// Bad calls are surfaced synchronously and never silently corrected.
	ErrInvalidValue = errors.New("voltgraph: invalid value")

	// ErrNotReady classes sequencing errors: an operation invoked before the
	// lifecycle state it requires (e.g. traversal before slot allocation).
	// Kept distinct from ErrInvalidValue so callers can tell "bad call"
	// from "bad ordering".
	ErrNotReady = errors.New("voltgraph: not ready")

	// ErrAllocFailure classes device memory exhaustion. Recoverable: the
	// caller may shrink its working set or retry later; the library never
	// retries on its own.
	ErrAllocFailure = errors.New("voltgraph: device allocation failure")

	// ErrInternal classes unexpected engine faults (a panicking kernel
	// worker, a corrupted workspace). These indicate a bug, not misuse.
	ErrInternal = errors.New("voltgraph: internal error")
)
