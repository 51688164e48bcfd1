// Package device models the accelerator that voltgraph keeps its graphs on:
// a fixed memory budget, a wide pool of data-parallel workers, and streams of
// asynchronously executed work.
//
// What
//
//   - Device: one accelerator context with a byte-accounted memory budget,
//     a worker width used by kernels, and identity/properties reported from
//     the host CPU (brand string, logical core count).
//   - Buffer: a device-resident array of 32-bit words with explicit
//     Upload/Download copies across the host/device boundary and explicit Free.
//   - Stream: a FIFO executor. Work enqueued on a stream runs in order, one
//     task at a time; Synchronize blocks until the stream is quiescent and
//     reports any fault captured since the previous synchronization.
//
// Why
//
//	The traversal engine promises accelerator-style semantics: asynchronous
//	invocation, explicit synchronization before results are observable, and
//	measurable device memory so callers can verify that repeated work does
//	not leak. Modeling the device explicitly keeps those promises testable
//	on any host.
//
// Accounting
//
//	MemInfo returns (free, total) bytes. Every Buffer allocation debits the
//	budget and every Free credits it back, so steady-state memory across
//	repeated identical traversals is directly observable.
//
// Faults
//
//	A task that returns an error or panics does not poison the stream: the
//	fault is contained, later tasks still run, and the first fault since the
//	last Synchronize is returned (once) by the next Synchronize call.
//
// Errors
//
//   - ErrOutOfMemory  — allocation exceeds the remaining budget.
//   - ErrBufferFreed  — use of a buffer after Free.
//   - ErrSizeMismatch — host buffer length differs from device buffer length.
//   - ErrStreamClosed — enqueue on a closed stream.
//   - ErrBadConfig    — non-positive worker count or memory budget.
package device
