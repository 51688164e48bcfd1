// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.

package builder

import (
	"fmt"

	"github.com/voltgraph/voltgraph"
)

var (
	// ErrTooFewVertices is returned when a generator's size parameter is
	// below its documented minimum.
	ErrTooFewVertices = fmt.Errorf("builder: too few vertices: %w", voltgraph.ErrInvalidValue)

	// ErrBadDegree is returned by RandomSparse for a degree that is
	// negative or cannot be satisfied without self-loops and duplicates
	// (deg ≥ n).
	ErrBadDegree = fmt.Errorf("builder: bad out-degree: %w", voltgraph.ErrInvalidValue)
)
