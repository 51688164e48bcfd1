// SPDX-License-Identifier: MIT
// Package graph: typed, index-addressed data slots. A slot table is a fixed
// array of device buffers allocated in bulk; indices are chosen by the
// caller at allocation time and referenced by number ever after.

package graph

import "fmt"

// DataType is the element type of a data slot.
type DataType int

const (
	// Int32 is a 32-bit signed integer element — the only type the
	// traversal surface touches (distances, predecessors, masks).
	Int32 DataType = iota

	// Float32 is declared for the on-disk edge-value channel; slot tables
	// reject it until an algorithm needs it.
	Float32
)

// String implements fmt.Stringer.
func (t DataType) String() string {
	switch t {
	case Int32:
		return "Int32"
	case Float32:
		return "Float32"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// slotTable is one bulk allocation of typed device arrays, all of one
// length (n for vertex tables, nnz for edge tables).
type slotTable struct {
	length int
	types  []DataType
	bufs   []*bufferRef
}

// bufferRef wraps a device buffer so a table replacement can leave stale
// references clearly dead.
type bufferRef struct {
	buf deviceBuffer
}

// deviceBuffer is the slice of the device.Buffer surface the table uses;
// narrowed for testability.
type deviceBuffer interface {
	Len() int
	Upload(host []int32) error
	Download(host []int32) error
	Words() []int32
	Free() error
}

// newSlotTable reserves len(types) device arrays of the given length.
// Every type must be Int32; anything else fails before any allocation.
func newSlotTable(alloc func(n int) (deviceBuffer, error), length int, types []DataType) (*slotTable, error) {
	for i, t := range types {
		if t != Int32 {
			return nil, fmt.Errorf("slot %d is %s: %w", i, t, ErrSlotType)
		}
	}

	st := &slotTable{
		length: length,
		types:  append([]DataType(nil), types...),
		bufs:   make([]*bufferRef, len(types)),
	}
	for i := range types {
		buf, err := alloc(length)
		if err != nil {
			st.free()

			return nil, err
		}
		st.bufs[i] = &bufferRef{buf: buf}
	}

	return st, nil
}

// slot returns the buffer at index i, bounds-checked.
func (st *slotTable) slot(i int) (deviceBuffer, error) {
	if st == nil {
		return nil, ErrNotAllocated
	}
	if i < 0 || i >= len(st.bufs) {
		return nil, fmt.Errorf("index %d outside [0,%d): %w", i, len(st.bufs), ErrSlotIndex)
	}

	return st.bufs[i].buf, nil
}

// set copies host data into slot i.
func (st *slotTable) set(i int, host []int32) error {
	buf, err := st.slot(i)
	if err != nil {
		return err
	}

	return buf.Upload(host)
}

// get copies slot i back into a caller-supplied host buffer.
func (st *slotTable) get(i int, host []int32) error {
	buf, err := st.slot(i)
	if err != nil {
		return err
	}

	return buf.Download(host)
}

// count returns the number of allocated slots.
func (st *slotTable) count() int {
	if st == nil {
		return 0
	}

	return len(st.bufs)
}

// free releases every buffer in the table. Tolerates partially built
// tables (nil entries from a failed bulk allocation).
func (st *slotTable) free() {
	for _, ref := range st.bufs {
		if ref != nil && ref.buf != nil {
			_ = ref.buf.Free()
		}
	}
	st.bufs = nil
}
