// Package topology defines the compressed sparse row (CSR) graph
// representation the traversal engine operates on, and the reverse-adjacency
// view it derives for undirected traversal.
//
// What
//
//   - CSR: an immutable `{N, NNZ, RowOffsets, ColIndices}` value. Vertex u's
//     outgoing edges occupy positions RowOffsets[u]..RowOffsets[u+1] of
//     ColIndices, so an edge is identified by its position — the same
//     position edge data slots and masks are indexed by.
//   - Orientation: CSR32 (row-oriented, the only accepted input) and CSC32
//     (the transposed orientation, representable so it can be rejected
//     explicitly rather than misread).
//   - Reverse: incoming-edge adjacency derived from a CSR, carrying for each
//     reverse edge the position of the original edge so per-edge data (most
//     importantly traversal masks) follows the edge across directions.
//
// Why
//
//	BFS in undirected mode must discover v→u through an edge stored as u→v.
//	Rather than demand symmetric input, the engine derives Reverse once per
//	installed topology and walks both adjacencies.
//
// Validation policy
//
//	Validate checks only that array lengths are consistent with (N, NNZ) —
//	the trust-the-caller boundary the engine installs behind. CheckStructure
//	is the strict variant (offset monotonicity, index range) for callers
//	ingesting untrusted files; the engine itself does not pay for it.
//
// Complexity
//
//   - Validate:       O(1).
//   - CheckStructure: O(N + NNZ).
//   - Reverse:        O(N + NNZ) time, O(N + NNZ) space (counting sort).
//
// Errors
//
//   - ErrOrientation  — a non-CSR orientation where CSR is required.
//   - ErrInconsistent — array lengths disagree with (N, NNZ).
//   - ErrMalformed    — CheckStructure found a broken offset or index.
package topology
