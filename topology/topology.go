// SPDX-License-Identifier: MIT
// Package topology: the CSR value type, orientations, and validation.

package topology

import "fmt"

// Orientation names how a sparse topology's offset array is oriented.
type Orientation int

const (
	// CSR32 is row-oriented: offsets index each vertex's outgoing edges.
	// The only orientation the traversal engine accepts.
	CSR32 Orientation = iota

	// CSC32 is column-oriented (the transpose). Representable so ingestion
	// code can label it honestly; always rejected at install time.
	CSC32
)

// String implements fmt.Stringer for diagnostics.
func (o Orientation) String() string {
	switch o {
	case CSR32:
		return "CSR32"
	case CSC32:
		return "CSC32"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// CSR is a compressed sparse row topology over int32 indices. Treat it as
// immutable once handed to a descriptor: the engine keeps the slices, it
// does not copy them back out.
type CSR struct {
	// N is the vertex count.
	N int
	// NNZ is the edge count.
	NNZ int
	// RowOffsets has N+1 entries; vertex u's edges are positions
	// RowOffsets[u]..RowOffsets[u+1] (half-open) of ColIndices.
	RowOffsets []int32
	// ColIndices has NNZ entries, each the destination vertex of one edge.
	ColIndices []int32
}

// Validate checks length consistency with (N, NNZ) and nothing more.
// Structural soundness is the caller's responsibility at this boundary;
// malformed content yields undefined traversal results, not an error here.
func (c CSR) Validate() error {
	if c.N < 0 || c.NNZ < 0 {
		return fmt.Errorf("negative n=%d or nnz=%d: %w", c.N, c.NNZ, ErrInconsistent)
	}
	if len(c.RowOffsets) != c.N+1 {
		return fmt.Errorf("len(rowOffsets)=%d, want n+1=%d: %w", len(c.RowOffsets), c.N+1, ErrInconsistent)
	}
	if len(c.ColIndices) != c.NNZ {
		return fmt.Errorf("len(colIndices)=%d, want nnz=%d: %w", len(c.ColIndices), c.NNZ, ErrInconsistent)
	}

	return nil
}

// CheckStructure is the strict validator for untrusted input: offsets must
// start at 0, end at NNZ, be non-decreasing, and every column index must lie
// in [0, N). O(N + NNZ).
func (c CSR) CheckStructure() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.RowOffsets[0] != 0 {
		return fmt.Errorf("rowOffsets[0]=%d, want 0: %w", c.RowOffsets[0], ErrMalformed)
	}
	if int(c.RowOffsets[c.N]) != c.NNZ {
		return fmt.Errorf("rowOffsets[n]=%d, want nnz=%d: %w", c.RowOffsets[c.N], c.NNZ, ErrMalformed)
	}
	for u := 0; u < c.N; u++ {
		if c.RowOffsets[u] > c.RowOffsets[u+1] {
			return fmt.Errorf("rowOffsets decrease at vertex %d: %w", u, ErrMalformed)
		}
	}
	for pos, v := range c.ColIndices {
		if v < 0 || int(v) >= c.N {
			return fmt.Errorf("colIndices[%d]=%d outside [0,%d): %w", pos, v, c.N, ErrMalformed)
		}
	}

	return nil
}

// Degree returns the out-degree of vertex u. No bounds check: callers index
// vertices they obtained from the same topology.
func (c CSR) Degree(u int) int {
	return int(c.RowOffsets[u+1] - c.RowOffsets[u])
}
