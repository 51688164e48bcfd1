// SPDX-License-Identifier: MIT
// Package graph: the shared kernel workspace. One per handle, sized to the
// largest topology traversed so far and reused by every subsequent launch —
// this reuse is what keeps steady-state device memory flat across repeated
// traversals.

package graph

import "github.com/voltgraph/voltgraph/device"

// Workspace is scratch device memory for one kernel launch. Engine-facing.
// The handle's stream serializes launches, so a single workspace per handle
// is never used by two kernels at once.
type Workspace struct {
	// Dist backs distance tracking when no distances output slot is
	// configured; the kernel still needs the claim array.
	Dist *device.Buffer

	// Curr and Next hold the current and next frontier vertex lists.
	Curr *device.Buffer
	Next *device.Buffer

	capacity int
}

// Workspace returns the handle's shared workspace, grown (never shrunk) to
// hold n vertices. Engine-facing.
func (h *Handle) Workspace(n int) (*Workspace, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}

	if h.ws != nil && h.ws.capacity >= n {
		return h.ws, nil
	}

	ws := &Workspace{capacity: n}
	var err error
	if ws.Dist, err = h.dev.Alloc(n); err != nil {
		return nil, err
	}
	if ws.Curr, err = h.dev.Alloc(n); err != nil {
		ws.free()

		return nil, err
	}
	if ws.Next, err = h.dev.Alloc(n); err != nil {
		ws.free()

		return nil, err
	}

	// Replace-not-accumulate: the outgrown workspace is released first.
	if h.ws != nil {
		h.ws.free()
	}
	h.ws = ws

	return ws, nil
}

// free releases whichever buffers were allocated. Safe on partial builds.
func (w *Workspace) free() {
	for _, b := range []*device.Buffer{w.Dist, w.Curr, w.Next} {
		if b != nil {
			_ = b.Free()
		}
	}
	w.Dist, w.Curr, w.Next = nil, nil, nil
}
