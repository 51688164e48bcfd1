package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/device"
)

func TestNew_Defaults(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)

	assert.Positive(t, dev.Workers())
	assert.NotEmpty(t, dev.Name())

	free, total := dev.MemInfo()
	assert.Equal(t, int64(device.DefaultMemoryMB)<<20, total)
	assert.Equal(t, total, free, "a fresh device has everything free")
}

func TestNew_DistinctIdentity(t *testing.T) {
	a, err := device.New(device.Config{})
	require.NoError(t, err)
	b, err := device.New(device.Config{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNew_BadConfig(t *testing.T) {
	_, err := device.New(device.Config{Workers: -1})
	assert.ErrorIs(t, err, device.ErrBadConfig)

	_, err = device.New(device.Config{MemoryMB: -8})
	assert.ErrorIs(t, err, device.ErrBadConfig)
	assert.ErrorIs(t, err, voltgraph.ErrInvalidValue)
}

func TestAlloc_Accounting(t *testing.T) {
	dev, err := device.New(device.Config{MemoryMB: 1})
	require.NoError(t, err)
	_, total := dev.MemInfo()

	buf, err := dev.Alloc(1000)
	require.NoError(t, err)

	free, _ := dev.MemInfo()
	assert.Equal(t, total-4000, free, "4 bytes per word")

	require.NoError(t, buf.Free())
	free, _ = dev.MemInfo()
	assert.Equal(t, total, free, "Free credits every byte back")
}

func TestAlloc_OutOfMemory(t *testing.T) {
	dev, err := device.New(device.Config{MemoryMB: 1})
	require.NoError(t, err)

	// 1 MiB budget cannot cover 2^20 words (4 MiB).
	_, err = dev.Alloc(1 << 20)
	require.ErrorIs(t, err, device.ErrOutOfMemory)
	assert.ErrorIs(t, err, voltgraph.ErrAllocFailure)

	free, total := dev.MemInfo()
	assert.Equal(t, total, free, "a failed allocation must not leak budget")
}

func TestBuffer_ZeroInitialized(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	buf, err := dev.Alloc(8)
	require.NoError(t, err)

	host := []int32{9, 9, 9, 9, 9, 9, 9, 9}
	require.NoError(t, buf.Download(host))
	assert.Equal(t, make([]int32, 8), host)
}

func TestBuffer_UploadDownload(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	buf, err := dev.Alloc(4)
	require.NoError(t, err)

	require.NoError(t, buf.Upload([]int32{1, 2, 3, 4}))

	got := make([]int32, 4)
	require.NoError(t, buf.Download(got))
	assert.Equal(t, []int32{1, 2, 3, 4}, got)
}

func TestBuffer_SizeMismatch(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	buf, err := dev.Alloc(4)
	require.NoError(t, err)

	assert.ErrorIs(t, buf.Upload(make([]int32, 3)), device.ErrSizeMismatch)
	assert.ErrorIs(t, buf.Download(make([]int32, 5)), device.ErrSizeMismatch)
}

func TestBuffer_UseAfterFree(t *testing.T) {
	dev, err := device.New(device.Config{})
	require.NoError(t, err)
	buf, err := dev.Alloc(4)
	require.NoError(t, err)

	require.NoError(t, buf.Free())
	assert.ErrorIs(t, buf.Free(), device.ErrBufferFreed)
	assert.ErrorIs(t, buf.Upload(make([]int32, 4)), device.ErrBufferFreed)
	assert.ErrorIs(t, buf.Download(make([]int32, 4)), device.ErrBufferFreed)
	assert.Nil(t, buf.Words())
}
