// Package graph owns the Handle/Descriptor lifecycle: the session scope a
// caller opens against one device, the graph descriptors created under it,
// and the typed data slots attached to each descriptor.
//
// What
//
//   - Handle: one session on one device. Owns the device stream traversals
//     run on and, transitively, every descriptor created under it. Closing
//     the handle invalidates them all.
//   - Descriptor: one installed CSR topology plus two independent data-slot
//     tables (vertex slots of length n, edge slots of length nnz). The unit
//     a traversal call operates on.
//   - Data slots: bulk-allocated, index-addressed, typed device arrays.
//     Callers pick how many and which index means what; the engine reads
//     inputs (edge masks) from and writes outputs (distances, predecessors)
//     into the indices a traversal configuration names.
//
// Lifecycle
//
//	Created → TopologyInstalled → DataAllocated → Ready
//
//	SetTopology moves Created→TopologyInstalled; an edge-slot allocation
//	moves on to DataAllocated; a vertex-slot allocation moves to Ready —
//	"topology installed and vertex slots allocated", the earliest point
//	traversal is legal. Edge slots are optional and may also be allocated
//	after Ready.
//	Close is legal from any state and releases every owned device buffer.
//	A second Close is a caller error, not a no-op.
//
// Allocation semantics
//
//	AllocVertexData/AllocEdgeData take a per-slot type list and reserve all
//	slots in one call. Calling either again replaces the previous table
//	wholesale — there is no incremental growth. Only Int32 is supported in
//	this release; other types are rejected up front.
//
// Synchronization
//
//	GetVertexData/GetEdgeData synchronize the handle's stream before copying
//	device→host, mirroring a blocking device-copy: results of a previously
//	enqueued traversal are quiescent by the time the copy happens. Handle.
//	Synchronize is the explicit form and the place deferred kernel faults
//	surface.
//
// Errors
//
//   - ErrNilHandle / ErrNilDescriptor — nil receiver at the API boundary.
//   - ErrClosed       — use after Close (including double Close).
//   - ErrSlotIndex    — slot index outside the allocated table.
//   - ErrSlotType     — unsupported element type in an allocation list.
//   - ErrNoTopology   — an operation that needs an installed topology.
//   - ErrNotAllocated — slot access before any allocation call.
package graph
