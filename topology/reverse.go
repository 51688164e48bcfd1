// SPDX-License-Identifier: MIT
// Package topology: reverse-adjacency construction for undirected traversal.
//
// Contract:
//   - Reverse lists, per vertex v, every edge (u → v) of the source CSR.
//   - EdgePos[i] is the position of reverse edge i in the original CSR, so
//     per-edge data indexed by original position (masks, edge slots) applies
//     identically in both directions.
//   - Deterministic: for one CSR input the output is byte-for-byte stable
//     (counting sort preserves original edge-position order per bucket).

package topology

// Reverse is the incoming-edge view of a CSR: RowOffsets/ColIndices have the
// usual CSR shape but enumerate, for each vertex, the sources of its
// incoming edges. EdgePos maps every reverse edge back to the original
// edge position.
type Reverse struct {
	RowOffsets []int32
	ColIndices []int32
	EdgePos    []int32
}

// BuildReverse derives the reverse adjacency of c in O(N + NNZ) by counting
// sort over destination vertices.
func (c CSR) BuildReverse() Reverse {
	// Count in-degrees into the offset array (shifted by one so the
	// prefix-sum pass leaves RowOffsets[0] = 0).
	offsets := make([]int32, c.N+1)
	for _, v := range c.ColIndices {
		offsets[v+1]++
	}
	for u := 0; u < c.N; u++ {
		offsets[u+1] += offsets[u]
	}

	cols := make([]int32, c.NNZ)
	pos := make([]int32, c.NNZ)
	// next[v] is the write cursor for vertex v's incoming bucket.
	next := make([]int32, c.N)
	copy(next, offsets[:c.N])

	for u := 0; u < c.N; u++ {
		for e := c.RowOffsets[u]; e < c.RowOffsets[u+1]; e++ {
			v := c.ColIndices[e]
			slot := next[v]
			cols[slot] = int32(u)
			pos[slot] = e
			next[v] = slot + 1
		}
	}

	return Reverse{RowOffsets: offsets, ColIndices: cols, EdgePos: pos}
}
