package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/device"
	"github.com/voltgraph/voltgraph/graph"
	"github.com/voltgraph/voltgraph/topology"
)

// chainCSR is the 3-vertex chain 0→1→2.
func chainCSR() topology.CSR {
	return topology.CSR{
		N:          3,
		NNZ:        2,
		RowOffsets: []int32{0, 1, 2, 2},
		ColIndices: []int32{1, 2},
	}
}

// installChain installs chainCSR on d.
func installChain(t *testing.T, d *graph.Descriptor) {
	t.Helper()
	require.NoError(t, d.SetTopology(chainCSR(), topology.CSR32))
}

// newDescriptor opens a handle-descriptor pair torn down with the test.
func newDescriptor(t *testing.T) *graph.Descriptor {
	t.Helper()
	h, err := graph.NewHandle()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	d, err := h.NewDescriptor()
	require.NoError(t, err)

	return d
}

func TestDescriptor_Lifecycle(t *testing.T) {
	d := newDescriptor(t)
	assert.Equal(t, graph.Created, d.State())

	installChain(t, d)
	assert.Equal(t, graph.TopologyInstalled, d.State())
	assert.Equal(t, 3, d.NumVertices())
	assert.Equal(t, 2, d.NumEdges())

	require.NoError(t, d.AllocEdgeData(graph.Int32))
	assert.Equal(t, graph.DataAllocated, d.State())

	require.NoError(t, d.AllocVertexData(graph.Int32, graph.Int32))
	assert.Equal(t, graph.Ready, d.State())

	require.NoError(t, d.Close())
	assert.Equal(t, graph.Closed, d.State())
}

func TestDescriptor_NilReceiver(t *testing.T) {
	var d *graph.Descriptor

	assert.Equal(t, graph.Closed, d.State())
	assert.ErrorIs(t, d.SetTopology(chainCSR(), topology.CSR32), graph.ErrNilDescriptor)
	assert.ErrorIs(t, d.AllocVertexData(graph.Int32), graph.ErrNilDescriptor)
	assert.ErrorIs(t, d.SetVertexData(0, nil), graph.ErrNilDescriptor)
	assert.ErrorIs(t, d.GetVertexData(0, nil), graph.ErrNilDescriptor)
	assert.ErrorIs(t, d.Close(), graph.ErrNilDescriptor)
}

func TestSetTopology_RejectsCSC(t *testing.T) {
	d := newDescriptor(t)

	err := d.SetTopology(chainCSR(), topology.CSC32)
	assert.ErrorIs(t, err, topology.ErrOrientation)
	assert.ErrorIs(t, err, voltgraph.ErrInvalidValue)
	assert.Equal(t, graph.Created, d.State(), "a rejected install must not advance the lifecycle")
}

func TestSetTopology_RejectsInconsistentArrays(t *testing.T) {
	d := newDescriptor(t)

	bad := chainCSR()
	bad.RowOffsets = bad.RowOffsets[:2]
	err := d.SetTopology(bad, topology.CSR32)
	assert.ErrorIs(t, err, topology.ErrInconsistent)
	assert.Equal(t, graph.Created, d.State())
}

func TestSetTopology_Immutable(t *testing.T) {
	d := newDescriptor(t)
	installChain(t, d)

	err := d.SetTopology(chainCSR(), topology.CSR32)
	assert.ErrorIs(t, err, topology.ErrOrientation)
	assert.Equal(t, graph.TopologyInstalled, d.State())
}

func TestAlloc_RequiresTopology(t *testing.T) {
	d := newDescriptor(t)

	assert.ErrorIs(t, d.AllocVertexData(graph.Int32), graph.ErrNoTopology)
	assert.ErrorIs(t, d.AllocEdgeData(graph.Int32), graph.ErrNoTopology)
	assert.ErrorIs(t, d.AllocVertexData(graph.Int32), voltgraph.ErrNotReady)
}

func TestAlloc_RejectsFloat32(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	defer h.Close()
	d, err := h.NewDescriptor()
	require.NoError(t, err)
	installChain(t, d)
	free, _ := dev.MemInfo()

	allocErr := d.AllocVertexData(graph.Int32, graph.Float32)
	assert.ErrorIs(t, allocErr, graph.ErrSlotType)
	assert.Equal(t, graph.TopologyInstalled, d.State())

	after, _ := dev.MemInfo()
	assert.Equal(t, free, after, "a rejected allocation list reserves nothing")
}

func TestSlotData_RoundTrip(t *testing.T) {
	d := newDescriptor(t)
	installChain(t, d)
	require.NoError(t, d.AllocVertexData(graph.Int32, graph.Int32))
	require.NoError(t, d.AllocEdgeData(graph.Int32))

	require.NoError(t, d.SetVertexData(1, []int32{7, 8, 9}))
	require.NoError(t, d.SetEdgeData(0, []int32{1, 0}))

	got := make([]int32, 3)
	require.NoError(t, d.GetVertexData(1, got))
	assert.Equal(t, []int32{7, 8, 9}, got)

	// Slot 0 was never written: bulk allocation zero-fills.
	require.NoError(t, d.GetVertexData(0, got))
	assert.Equal(t, []int32{0, 0, 0}, got)

	mask := make([]int32, 2)
	require.NoError(t, d.GetEdgeData(0, mask))
	assert.Equal(t, []int32{1, 0}, mask)
}

func TestSlotData_Rejections(t *testing.T) {
	d := newDescriptor(t)
	installChain(t, d)

	// Before allocation.
	assert.ErrorIs(t, d.SetVertexData(0, []int32{0, 0, 0}), graph.ErrNotAllocated)
	assert.ErrorIs(t, d.GetEdgeData(0, []int32{0, 0}), graph.ErrNotAllocated)

	require.NoError(t, d.AllocVertexData(graph.Int32))

	// Out-of-range slot index.
	assert.ErrorIs(t, d.SetVertexData(1, []int32{0, 0, 0}), graph.ErrSlotIndex)
	assert.ErrorIs(t, d.SetVertexData(-1, []int32{0, 0, 0}), graph.ErrSlotIndex)

	// Host length must match the slot length exactly.
	assert.ErrorIs(t, d.SetVertexData(0, []int32{1}), device.ErrSizeMismatch)
	assert.ErrorIs(t, d.GetVertexData(0, make([]int32, 4)), device.ErrSizeMismatch)
}

func TestAlloc_ReplacesWholesale(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	defer h.Close()
	d, err := h.NewDescriptor()
	require.NoError(t, err)
	installChain(t, d)

	require.NoError(t, d.AllocVertexData(graph.Int32, graph.Int32))
	require.NoError(t, d.SetVertexData(0, []int32{5, 5, 5}))
	twoSlots, _ := dev.MemInfo()

	require.NoError(t, d.AllocVertexData(graph.Int32))
	assert.Equal(t, 1, d.VertexSlotCount())

	// The replacement is fresh storage, not a trimmed view of the old table.
	got := make([]int32, 3)
	require.NoError(t, d.GetVertexData(0, got))
	assert.Equal(t, []int32{0, 0, 0}, got)

	oneSlot, _ := dev.MemInfo()
	assert.Equal(t, twoSlots+3*4, oneSlot, "the outgoing table's memory is credited back")
}

func TestReverseAdjacency_BuiltOnce(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	defer h.Close()
	d, err := h.NewDescriptor()
	require.NoError(t, err)
	installChain(t, d)

	rev, err := d.ReverseAdjacency()
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 1, 2}, rev.RowOffsets)
	built, _ := dev.MemInfo()

	again, err := d.ReverseAdjacency()
	require.NoError(t, err)
	assert.Equal(t, rev, again)

	after, _ := dev.MemInfo()
	assert.Equal(t, built, after, "the second request must hit the cache")
}

func TestDescriptor_CloseReleasesEverything(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	defer h.Close()
	baseline, _ := dev.MemInfo()

	d, err := h.NewDescriptor()
	require.NoError(t, err)
	installChain(t, d)
	require.NoError(t, d.AllocVertexData(graph.Int32))
	require.NoError(t, d.AllocEdgeData(graph.Int32))
	_, err = d.ReverseAdjacency()
	require.NoError(t, err)

	require.NoError(t, d.Close())

	free, _ := dev.MemInfo()
	assert.Equal(t, baseline, free)

	assert.ErrorIs(t, d.Close(), graph.ErrClosed)
	assert.ErrorIs(t, d.SetVertexData(0, []int32{0, 0, 0}), graph.ErrClosed)
	_, err = d.Topology()
	assert.ErrorIs(t, err, graph.ErrClosed)
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "Int32", graph.Int32.String())
	assert.Equal(t, "Float32", graph.Float32.String())
	assert.Equal(t, "DataType(9)", graph.DataType(9).String())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Created", graph.Created.String())
	assert.Equal(t, "Closed", graph.Closed.String())
}
