// SPDX-License-Identifier: MIT
// Package graph: the Descriptor — one installed topology plus its data-slot
// tables, moving through the Created→Ready lifecycle.

package graph

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/voltgraph/voltgraph/device"
	"github.com/voltgraph/voltgraph/topology"
)

// Descriptor is the unit a traversal call operates on. It owns device copies
// of its CSR arrays, two slot tables, and (lazily) the reverse adjacency
// needed for undirected traversal. Descriptors are not safe for concurrent
// mutation; traversal launches against one descriptor are serialized by the
// handle's stream.
type Descriptor struct {
	h  *Handle
	id uuid.UUID

	mu    sync.Mutex
	state State

	n, nnz int
	rowBuf *device.Buffer
	colBuf *device.Buffer
	revRow *device.Buffer
	revCol *device.Buffer
	revPos *device.Buffer
	vslots *slotTable
	eslots *slotTable
}

// ID returns the descriptor's unique identity.
func (d *Descriptor) ID() uuid.UUID { return d.id }

// Handle returns the owning handle.
func (d *Descriptor) Handle() *Handle { return d.h }

// State returns the current lifecycle phase.
func (d *Descriptor) State() State {
	if d == nil {
		return Closed
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// NumVertices returns n of the installed topology (0 before install).
func (d *Descriptor) NumVertices() int { return d.n }

// NumEdges returns nnz of the installed topology (0 before install).
func (d *Descriptor) NumEdges() int { return d.nnz }

// SetTopology validates the orientation and array lengths, uploads the CSR
// arrays into device memory, and moves the descriptor to TopologyInstalled.
// Topologies are immutable once installed: installing a second one — any
// orientation — is rejected; create a new descriptor instead. Structural
// soundness of the arrays is the caller's concern (trust boundary).
func (d *Descriptor) SetTopology(csr topology.CSR, orient topology.Orientation) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.state == Closed:
		return ErrClosed
	case d.state != Created:
		return fmt.Errorf("graph: topology already installed: %w", topology.ErrOrientation)
	case orient != topology.CSR32:
		return fmt.Errorf("graph: got %s: %w", orient, topology.ErrOrientation)
	}
	if err := csr.Validate(); err != nil {
		return err
	}

	rowBuf, err := d.h.dev.Alloc(csr.N + 1)
	if err != nil {
		return err
	}
	colBuf, err := d.h.dev.Alloc(csr.NNZ)
	if err != nil {
		_ = rowBuf.Free()

		return err
	}
	// Length checks already passed; uploads cannot mismatch.
	_ = rowBuf.Upload(csr.RowOffsets)
	_ = colBuf.Upload(csr.ColIndices)

	d.n, d.nnz = csr.N, csr.NNZ
	d.rowBuf, d.colBuf = rowBuf, colBuf
	d.state = TopologyInstalled

	return nil
}

// Topology returns a device-resident view of the installed CSR arrays.
// Engine-facing: the slices alias device memory and die with the descriptor.
func (d *Descriptor) Topology() (topology.CSR, error) {
	if d == nil {
		return topology.CSR{}, ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return topology.CSR{}, ErrClosed
	}
	if d.rowBuf == nil {
		return topology.CSR{}, ErrNoTopology
	}

	return topology.CSR{
		N:          d.n,
		NNZ:        d.nnz,
		RowOffsets: d.rowBuf.Words(),
		ColIndices: d.colBuf.Words(),
	}, nil
}

// ReverseAdjacency returns the device-resident reverse adjacency, building
// and uploading it on first use. Built once per descriptor: repeated
// undirected traversals reuse it, keeping device memory flat.
func (d *Descriptor) ReverseAdjacency() (topology.Reverse, error) {
	if d == nil {
		return topology.Reverse{}, ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return topology.Reverse{}, ErrClosed
	}
	if d.rowBuf == nil {
		return topology.Reverse{}, ErrNoTopology
	}

	if d.revRow == nil {
		rev := topology.CSR{
			N:          d.n,
			NNZ:        d.nnz,
			RowOffsets: d.rowBuf.Words(),
			ColIndices: d.colBuf.Words(),
		}.BuildReverse()

		revRow, err := d.h.dev.Alloc(d.n + 1)
		if err != nil {
			return topology.Reverse{}, err
		}
		revCol, err := d.h.dev.Alloc(d.nnz)
		if err != nil {
			_ = revRow.Free()

			return topology.Reverse{}, err
		}
		revPos, err := d.h.dev.Alloc(d.nnz)
		if err != nil {
			_ = revRow.Free()
			_ = revCol.Free()

			return topology.Reverse{}, err
		}
		_ = revRow.Upload(rev.RowOffsets)
		_ = revCol.Upload(rev.ColIndices)
		_ = revPos.Upload(rev.EdgePos)
		d.revRow, d.revCol, d.revPos = revRow, revCol, revPos
	}

	return topology.Reverse{
		RowOffsets: d.revRow.Words(),
		ColIndices: d.revCol.Words(),
		EdgePos:    d.revPos.Words(),
	}, nil
}

// AllocVertexData reserves one device array of length n per listed type,
// replacing any previous vertex table wholesale. Requires an installed
// topology (arrays are sized to n). Moves the descriptor to Ready.
func (d *Descriptor) AllocVertexData(types ...DataType) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return ErrClosed
	}
	if d.rowBuf == nil {
		return ErrNoTopology
	}

	st, err := newSlotTable(d.allocBuffer, d.n, types)
	if err != nil {
		return err
	}
	if d.vslots != nil {
		d.vslots.free()
	}
	d.vslots = st
	d.state = Ready

	return nil
}

// AllocEdgeData reserves one device array of length nnz per listed type,
// replacing any previous edge table wholesale.
func (d *Descriptor) AllocEdgeData(types ...DataType) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return ErrClosed
	}
	if d.rowBuf == nil {
		return ErrNoTopology
	}

	st, err := newSlotTable(d.allocBuffer, d.nnz, types)
	if err != nil {
		return err
	}
	if d.eslots != nil {
		d.eslots.free()
	}
	d.eslots = st
	if d.state == TopologyInstalled {
		d.state = DataAllocated
	}

	return nil
}

// allocBuffer adapts the device allocator to the slot table.
func (d *Descriptor) allocBuffer(n int) (deviceBuffer, error) {
	return d.h.dev.Alloc(n)
}

// SetVertexData copies host data into vertex slot i.
func (d *Descriptor) SetVertexData(i int, host []int32) error {
	return d.slotOp(func() *slotTable { return d.vslots }, func(st *slotTable) error {
		return st.set(i, host)
	})
}

// GetVertexData synchronizes the handle's stream, then copies vertex slot i
// into host. The synchronize mirrors a blocking device copy: any traversal
// enqueued earlier has fully finished (or surfaced its fault) first.
func (d *Descriptor) GetVertexData(i int, host []int32) error {
	if err := d.syncForRead(); err != nil {
		return err
	}

	return d.slotOp(func() *slotTable { return d.vslots }, func(st *slotTable) error {
		return st.get(i, host)
	})
}

// SetEdgeData copies host data into edge slot i.
func (d *Descriptor) SetEdgeData(i int, host []int32) error {
	return d.slotOp(func() *slotTable { return d.eslots }, func(st *slotTable) error {
		return st.set(i, host)
	})
}

// GetEdgeData synchronizes, then copies edge slot i into host.
func (d *Descriptor) GetEdgeData(i int, host []int32) error {
	if err := d.syncForRead(); err != nil {
		return err
	}

	return d.slotOp(func() *slotTable { return d.eslots }, func(st *slotTable) error {
		return st.get(i, host)
	})
}

// VertexSlotWords exposes vertex slot i's device storage to the engine.
func (d *Descriptor) VertexSlotWords(i int) ([]int32, error) {
	return d.slotWords(func() *slotTable { return d.vslots }, i)
}

// EdgeSlotWords exposes edge slot i's device storage to the engine.
func (d *Descriptor) EdgeSlotWords(i int) ([]int32, error) {
	return d.slotWords(func() *slotTable { return d.eslots }, i)
}

// VertexSlotCount returns the number of allocated vertex slots.
func (d *Descriptor) VertexSlotCount() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.vslots.count()
}

// EdgeSlotCount returns the number of allocated edge slots.
func (d *Descriptor) EdgeSlotCount() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.eslots.count()
}

// Close releases the descriptor's device memory — topology arrays, reverse
// adjacency, both slot tables — from any state. A second Close returns
// ErrClosed.
func (d *Descriptor) Close() error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.mu.Lock()
	if d.state == Closed {
		d.mu.Unlock()

		return ErrClosed
	}
	d.mu.Unlock()

	// Outstanding kernels may still touch this memory; drain them first.
	_ = d.h.stream.Synchronize()

	d.closeLocked()
	d.h.forget(d)

	return nil
}

// closeLocked releases resources without stream draining (handle teardown
// drains once for everyone).
func (d *Descriptor) closeLocked() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return
	}
	for _, b := range []*device.Buffer{d.rowBuf, d.colBuf, d.revRow, d.revCol, d.revPos} {
		if b != nil {
			_ = b.Free()
		}
	}
	d.rowBuf, d.colBuf = nil, nil
	d.revRow, d.revCol, d.revPos = nil, nil, nil
	if d.vslots != nil {
		d.vslots.free()
		d.vslots = nil
	}
	if d.eslots != nil {
		d.eslots.free()
		d.eslots = nil
	}
	d.state = Closed
}

// slotOp runs op against a slot table under the descriptor lock, with the
// shared nil/closed checks.
func (d *Descriptor) slotOp(table func() *slotTable, op func(*slotTable) error) error {
	if d == nil {
		return ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return ErrClosed
	}
	st := table()
	if st == nil {
		return ErrNotAllocated
	}

	return op(st)
}

// slotWords is the engine-facing variant of slotOp returning raw storage.
func (d *Descriptor) slotWords(table func() *slotTable, i int) ([]int32, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Closed {
		return nil, ErrClosed
	}
	st := table()
	if st == nil {
		return nil, ErrNotAllocated
	}
	buf, err := st.slot(i)
	if err != nil {
		return nil, err
	}

	return buf.Words(), nil
}

// syncForRead performs the implicit pre-read synchronization.
func (d *Descriptor) syncForRead() error {
	if d == nil {
		return ErrNilDescriptor
	}

	return d.h.Synchronize()
}
