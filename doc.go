// Package voltgraph is a device-resident graph traversal engine: it keeps
// large sparse graphs in compressed sparse row (CSR) form on an accelerator
// device and runs frontier-parallel breadth-first search over them through a
// stable Handle/Descriptor API.
//
// 🚀 What is voltgraph?
//
//	A library for shortest-hop analytics on graphs too large to walk casually:
//		• device/    — the accelerator model: buffers, streams, memory accounting
//		• topology/  — immutable CSR topologies and reverse-adjacency views
//		• graph/     — Handle & Descriptor lifecycle plus typed data slots
//		• traversal/ — the parallel BFS execution engine (masks, undirected mode)
//		• graphio/   — the binary CSR on-disk format
//		• builder/   — deterministic CSR fixtures (cycle, grid, random sparse)
//
// ✨ Guarantees
//
//   - Deterministic distances — identical inputs give identical distance
//     arrays on every invocation.
//   - Stable memory — repeated traversals on one Descriptor reuse a cached
//     workspace; steady-state device memory does not grow.
//   - Honest failure — every operation returns a status error classed as
//     ErrInvalidValue, ErrNotReady, ErrAllocFailure or ErrInternal; a failed
//     traversal never leaves partially-defined outputs you may rely on.
//
// Control flow, end to end:
//
//	h, _ := graph.NewHandle()
//	defer h.Close()
//	d, _ := h.NewDescriptor()
//	defer d.Close()
//	_ = d.SetTopology(csr, topology.CSR32)
//	_ = d.AllocVertexData(graph.Int32, graph.Int32)
//	_ = traversal.BFS(h, d, 0, traversal.WithDistances(0), traversal.WithPredecessors(1))
//	_ = h.Synchronize()
//	dist := make([]int32, csr.N)
//	_ = d.GetVertexData(0, dist)
//
// See cmd/voltgraph for the command-line front end.
package voltgraph
