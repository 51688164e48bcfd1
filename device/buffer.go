// SPDX-License-Identifier: MIT
// Package device: device-resident buffers and the host/device copy boundary.

package device

import "sync/atomic"

// wordBytes is the accounted size of one buffer element (int32).
const wordBytes = 4

// Buffer is a device-resident array of 32-bit words. Host code never touches
// the backing storage directly: data crosses the boundary only through
// Upload and Download, and kernels reach it through Words.
type Buffer struct {
	dev   *Device
	words []int32
	freed atomic.Bool
}

// Alloc reserves a device buffer of n words, zero-initialized.
// Returns ErrOutOfMemory when the budget cannot cover it.
func (d *Device) Alloc(n int) (*Buffer, error) {
	if err := d.reserve(int64(n) * wordBytes); err != nil {
		return nil, err
	}

	return &Buffer{dev: d, words: make([]int32, n)}, nil
}

// Len returns the buffer length in words.
func (b *Buffer) Len() int { return len(b.words) }

// Upload copies host into the buffer. The host slice must match the buffer
// length exactly; partial copies are not a thing the device does.
func (b *Buffer) Upload(host []int32) error {
	if b.freed.Load() {
		return ErrBufferFreed
	}
	if len(host) != len(b.words) {
		return ErrSizeMismatch
	}
	copy(b.words, host)

	return nil
}

// Download copies the buffer into host, which must match the buffer length.
func (b *Buffer) Download(host []int32) error {
	if b.freed.Load() {
		return ErrBufferFreed
	}
	if len(host) != len(b.words) {
		return ErrSizeMismatch
	}
	copy(host, b.words)

	return nil
}

// Words exposes the device-side storage to kernels. The returned slice
// aliases the buffer; it must not be retained past the buffer's Free.
func (b *Buffer) Words() []int32 {
	if b.freed.Load() {
		return nil
	}

	return b.words
}

// Free releases the buffer and credits its bytes back to the device budget.
// A second Free returns ErrBufferFreed.
func (b *Buffer) Free() error {
	if !b.freed.CompareAndSwap(false, true) {
		return ErrBufferFreed
	}
	b.dev.release(int64(len(b.words)) * wordBytes)
	b.words = nil

	return nil
}
