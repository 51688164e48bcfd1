// Package traversal is the BFS execution engine: it consumes a Ready graph
// descriptor, a source vertex, and a traversal configuration, runs
// frontier-expansion breadth-first search on the descriptor's device, and
// writes distances and predecessors into the vertex slots the configuration
// names.
//
// What
//
//   - BFS(handle, descriptor, source, opts...) validates synchronously,
//     enqueues the kernel on the handle's stream, and returns. Results are
//     defined only after Handle.Synchronize (or an implicit synchronize via
//     GetVertexData).
//   - Configuration is an immutable value resolved from functional options:
//     WithDistances(i) / WithPredecessors(i) name output vertex slots,
//     WithEdgeMask(i) names an edge slot of boolean gates (nonzero = edge
//     active), WithUndirected(true) makes every edge traversable both ways.
//   - Unset outputs are simply not written — never zeroed.
//
// Semantics
//
//	Distances are unsigned hop counts in [0, n], with Unreachable
//	(math.MaxInt32) for vertices no path reaches. Predecessors are vertex
//	indices, with NoPredecessor (-1) for the source and for unreachable
//	vertices. A masked-out edge (mask entry 0) never discovers a vertex, in
//	either direction of an undirected traversal.
//
// Execution model
//
//	Level-synchronous frontier expansion, sharded across the device's
//	workers with no global lock. The first-discoverer-wins claim on each
//	vertex is an atomic compare-and-set on its distance cell, so a vertex is
//	claimed exactly once per run. Undirected mode walks the descriptor's
//	cached reverse adjacency alongside the forward CSR; reverse edges carry
//	their original edge position, so masks gate both directions.
//
// Determinism
//
//	Distances are deterministic across repeated identical runs: a vertex's
//	distance is the level at which the level-synchronous sweep first reaches
//	it, whatever the claim races resolve to. Predecessor choice among
//	equidistant parents is the per-run CAS winner — NOT deterministic across
//	runs, but always satisfying distance[v] = distance[pred[v]] + 1.
//
// Failure model
//
//	Argument and state errors surface synchronously from BFS. Faults inside
//	the enqueued kernel (workspace exhaustion, a panicking worker) are
//	contained and surface once, at the next synchronization. A failed call
//	leaves the configured output slots with unspecified contents; there is
//	no partial-success status.
//
// Errors
//
//   - ErrOptionViolation   — a negative slot index in an option.
//   - ErrSourceOutOfRange  — source outside [0, n).
//   - ErrForeignDescriptor — descriptor created under a different handle.
//   - graph.* sentinels    — nil/closed/not-ready descriptor or handle,
//     slot index out of table range.
package traversal
