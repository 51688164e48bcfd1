// Package graphio reads and writes the binary CSR graph format: a fixed
// header carrying the vertex and edge counts, the n+1 row offsets, the nnz
// column indices, and optionally one float32 value per edge.
//
// Layout (little-endian):
//
//	magic    [8]byte  "VOLTCSR1"
//	n        int32    vertex count
//	nnz      int32    edge count
//	flags    uint32   bit 0: edge values present
//	offsets  [n+1]int32
//	columns  [nnz]int32
//	values   [nnz]float32   (only when bit 0 of flags is set)
//
// Edge values are carried for completeness of the on-disk format; the
// traversal engine itself never reads them.
//
// Files are untrusted input, so ReadCSR runs topology.CheckStructure on the
// decoded arrays — unlike the descriptor install path, which trusts its
// caller.
//
// Errors
//
//   - ErrBadMagic  — the file does not start with the format magic.
//   - ErrBadHeader — negative counts or unknown flag bits.
//   - topology.ErrMalformed / ErrInconsistent — structural check failures.
package graphio
