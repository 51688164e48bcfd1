package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/device"
	"github.com/voltgraph/voltgraph/graph"
)

func TestNewHandle_Defaults(t *testing.T) {
	h, err := graph.NewHandle()
	require.NoError(t, err)

	assert.NotNil(t, h.Device())
	assert.NotNil(t, h.Stream())
	require.NoError(t, h.Close())
}

func TestHandle_DoubleClose(t *testing.T) {
	h, err := graph.NewHandle()
	require.NoError(t, err)

	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Close(), graph.ErrClosed)
	assert.ErrorIs(t, h.Close(), voltgraph.ErrInvalidValue)
}

func TestHandle_NilReceiver(t *testing.T) {
	var h *graph.Handle

	assert.ErrorIs(t, h.Synchronize(), graph.ErrNilHandle)
	assert.ErrorIs(t, h.Close(), graph.ErrNilHandle)
	_, err := h.NewDescriptor()
	assert.ErrorIs(t, err, graph.ErrNilHandle)
	_, err = h.Workspace(1)
	assert.ErrorIs(t, err, graph.ErrNilHandle)
}

func TestHandle_UseAfterClose(t *testing.T) {
	h, err := graph.NewHandle()
	require.NoError(t, err)
	require.NoError(t, h.Close())

	assert.ErrorIs(t, h.Synchronize(), graph.ErrClosed)
	_, err = h.NewDescriptor()
	assert.ErrorIs(t, err, graph.ErrClosed)
	_, err = h.Workspace(8)
	assert.ErrorIs(t, err, graph.ErrClosed)
}

func TestHandle_SharedDevice(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)

	a, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	b, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)

	assert.Same(t, dev, a.Device())
	assert.Same(t, dev, b.Device())
	assert.NotEqual(t, a.ID(), b.ID())

	// Closing one session must not tear down the other's device.
	require.NoError(t, a.Close())
	require.NoError(t, b.Synchronize())
	require.NoError(t, b.Close())
}

func TestHandle_WithDeviceConfig(t *testing.T) {
	h, err := graph.NewHandle(graph.WithDeviceConfig(device.Config{MemoryMB: 2}))
	require.NoError(t, err)
	defer h.Close()

	_, total := h.Device().MemInfo()
	assert.Equal(t, int64(2)<<20, total)
}

func TestHandle_CloseClosesDescriptors(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	baseline, _ := dev.MemInfo()

	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	d, err := h.NewDescriptor()
	require.NoError(t, err)
	installChain(t, d)
	require.NoError(t, d.AllocVertexData(graph.Int32))

	require.NoError(t, h.Close())

	assert.Equal(t, graph.Closed, d.State())
	free, _ := dev.MemInfo()
	assert.Equal(t, baseline, free, "handle teardown must return every byte")
}

func TestWorkspace_GrowNeverShrink(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	baseline, _ := dev.MemInfo()

	h, err := graph.NewHandle(graph.WithDevice(dev))
	require.NoError(t, err)
	defer h.Close()

	big, err := h.Workspace(100)
	require.NoError(t, err)

	// A smaller request reuses the existing workspace as-is.
	small, err := h.Workspace(10)
	require.NoError(t, err)
	assert.Same(t, big, small)
	assert.Equal(t, 100, big.Dist.Len())

	// Growth replaces, never accumulates: exactly one workspace's worth of
	// memory (three arrays of 4-byte words) stays reserved.
	grown, err := h.Workspace(200)
	require.NoError(t, err)
	assert.NotSame(t, big, grown)

	free, _ := dev.MemInfo()
	assert.Equal(t, baseline-3*200*4, free)
}
