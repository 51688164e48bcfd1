// SPDX-License-Identifier: MIT
// Package topology: sentinel error set, each wrapping one voltgraph status
// class for coarse matching.

package topology

import (
	"fmt"

	"github.com/voltgraph/voltgraph"
)

var (
	// ErrOrientation is returned when a topology arrives in an orientation
	// other than CSR32. The transposed CSC32 form is never silently
	// reinterpreted.
	ErrOrientation = fmt.Errorf("topology: only CSR orientation is accepted: %w", voltgraph.ErrInvalidValue)

	// ErrInconsistent is returned when RowOffsets/ColIndices lengths
	// disagree with the declared (N, NNZ).
	ErrInconsistent = fmt.Errorf("topology: array lengths inconsistent with (n, nnz): %w", voltgraph.ErrInvalidValue)

	// ErrMalformed is returned by CheckStructure for non-monotonic offsets,
	// boundary offsets that miss 0 or NNZ, or column indices outside [0, n).
	ErrMalformed = fmt.Errorf("topology: malformed CSR structure: %w", voltgraph.ErrInvalidValue)
)
