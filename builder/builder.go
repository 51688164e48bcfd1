// SPDX-License-Identifier: MIT
// Package builder: the generators.
//
// Shared contract:
//   - Vertices are 0..n-1; edges are emitted in ascending source order, and
//     within one source in the documented per-generator order, so edge
//     positions are stable.
//   - Generators return only sentinel errors and never panic at runtime.

package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/voltgraph/voltgraph/topology"
)

// Generator minimums (no magic numbers at call sites).
const (
	minCycleVertices = 2
	minPathVertices  = 2
	minGridSide      = 1
)

// Cycle builds the directed ring on n vertices: edge i → (i+1) mod n.
// The canonical sanity fixture: from source 0, distance[i] = i and
// predecessor[i] = i-1.
func Cycle(n int) (topology.CSR, error) {
	if n < minCycleVertices {
		return topology.CSR{}, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	offsets := make([]int32, n+1)
	cols := make([]int32, n)
	for i := 0; i < n; i++ {
		offsets[i] = int32(i)
		cols[i] = int32((i + 1) % n)
	}
	offsets[n] = int32(n)

	return topology.CSR{N: n, NNZ: n, RowOffsets: offsets, ColIndices: cols}, nil
}

// Path builds the directed chain 0 → 1 → … → n-1.
func Path(n int) (topology.CSR, error) {
	if n < minPathVertices {
		return topology.CSR{}, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
	}

	offsets := make([]int32, n+1)
	cols := make([]int32, n-1)
	for i := 0; i < n-1; i++ {
		offsets[i] = int32(i)
		cols[i] = int32(i + 1)
	}
	offsets[n-1] = int32(n - 1)
	offsets[n] = int32(n - 1)

	return topology.CSR{N: n, NNZ: n - 1, RowOffsets: offsets, ColIndices: cols}, nil
}

// Complete builds every ordered pair (u,v), u ≠ v; destinations ascend
// within each source.
func Complete(n int) (topology.CSR, error) {
	if n < minCycleVertices {
		return topology.CSR{}, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	nnz := n * (n - 1)
	offsets := make([]int32, n+1)
	cols := make([]int32, 0, nnz)
	for u := 0; u < n; u++ {
		offsets[u] = int32(len(cols))
		for v := 0; v < n; v++ {
			if v != u {
				cols = append(cols, int32(v))
			}
		}
	}
	offsets[n] = int32(len(cols))

	return topology.CSR{N: n, NNZ: nnz, RowOffsets: offsets, ColIndices: cols}, nil
}

// Grid builds a w×h lattice with 4-neighborhood adjacency; every lattice
// edge appears in both directions, so the topology is symmetric. Vertex
// (x, y) is index y*w + x; neighbors are emitted in up/left/right/down
// order.
func Grid(w, h int) (topology.CSR, error) {
	if w < minGridSide || h < minGridSide {
		return topology.CSR{}, fmt.Errorf("Grid: %dx%d below min side %d: %w", w, h, minGridSide, ErrTooFewVertices)
	}

	n := w * h
	offsets := make([]int32, n+1)
	cols := make([]int32, 0, 4*n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			offsets[y*w+x] = int32(len(cols))
			if y > 0 {
				cols = append(cols, int32((y-1)*w+x))
			}
			if x > 0 {
				cols = append(cols, int32(y*w+x-1))
			}
			if x < w-1 {
				cols = append(cols, int32(y*w+x+1))
			}
			if y < h-1 {
				cols = append(cols, int32((y+1)*w+x))
			}
		}
	}
	offsets[n] = int32(len(cols))

	return topology.CSR{N: n, NNZ: len(cols), RowOffsets: offsets, ColIndices: cols}, nil
}

// RandomSparse builds n vertices with exactly deg distinct out-neighbors
// each (no self-loops), drawn from a seeded source. Destinations ascend
// within each source so edge positions stay stable for one seed.
func RandomSparse(n, deg int, opts ...Option) (topology.CSR, error) {
	cfg := resolveOptions(opts)
	if n < minCycleVertices {
		return topology.CSR{}, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	if deg < 0 || deg >= n {
		return topology.CSR{}, fmt.Errorf("RandomSparse: deg=%d for n=%d: %w", deg, n, ErrBadDegree)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	offsets := make([]int32, n+1)
	cols := make([]int32, 0, n*deg)
	picked := make(map[int32]struct{}, deg)
	row := make([]int32, 0, deg)

	for u := 0; u < n; u++ {
		offsets[u] = int32(len(cols))
		for k := range picked {
			delete(picked, k)
		}
		row = row[:0]
		for len(row) < deg {
			v := int32(rng.Intn(n))
			if int(v) == u {
				continue
			}
			if _, dup := picked[v]; dup {
				continue
			}
			picked[v] = struct{}{}
			row = append(row, v)
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		cols = append(cols, row...)
	}
	offsets[n] = int32(len(cols))

	return topology.CSR{N: n, NNZ: len(cols), RowOffsets: offsets, ColIndices: cols}, nil
}
