// SPDX-License-Identifier: MIT
// Package graph: the Handle — session scope, device binding, stream
// ownership, and the shared kernel workspace.

package graph

import (
	"sync"

	"github.com/google/uuid"

	"github.com/voltgraph/voltgraph/device"
)

// Option configures NewHandle.
type Option func(*handleConfig)

type handleConfig struct {
	dev    *device.Device
	devCfg device.Config
}

// WithDevice binds the handle to an already-opened device. The handle does
// not take ownership of the device: several handles may share one.
func WithDevice(dev *device.Device) Option {
	return func(c *handleConfig) {
		if dev != nil {
			c.dev = dev
		}
	}
}

// WithDeviceConfig opens a fresh device with cfg for this handle.
// Ignored when WithDevice is also given.
func WithDeviceConfig(cfg device.Config) Option {
	return func(c *handleConfig) { c.devCfg = cfg }
}

// Handle is one session on one device. It owns the stream traversals are
// enqueued on, a shared kernel workspace, and (transitively) every
// descriptor created under it. Pair every NewHandle with exactly one Close.
type Handle struct {
	id     uuid.UUID
	dev    *device.Device
	stream *device.Stream

	mu     sync.Mutex
	descrs map[*Descriptor]struct{}
	ws     *Workspace
	closed bool
}

// NewHandle opens a session. With no options it opens a default-configured
// device of its own.
func NewHandle(opts ...Option) (*Handle, error) {
	var cfg handleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	dev := cfg.dev
	if dev == nil {
		var err error
		if dev, err = device.New(cfg.devCfg); err != nil {
			return nil, err
		}
	}

	return &Handle{
		id:     uuid.New(),
		dev:    dev,
		stream: dev.NewStream(),
		descrs: make(map[*Descriptor]struct{}),
	}, nil
}

// ID returns the handle's unique identity.
func (h *Handle) ID() uuid.UUID { return h.id }

// Device returns the device this session is bound to.
func (h *Handle) Device() *device.Device { return h.dev }

// Stream returns the handle's execution stream. Engine-facing: traversal
// enqueues kernels here so all work under one handle is serialized.
func (h *Handle) Stream() *device.Stream { return h.stream }

// Synchronize blocks until all enqueued work is quiescent and surfaces the
// first deferred kernel fault, if any. Reading output slots is only defined
// after a synchronization (GetVertexData performs one implicitly).
func (h *Handle) Synchronize() error {
	if h == nil {
		return ErrNilHandle
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return ErrClosed
	}
	h.mu.Unlock()

	return h.stream.Synchronize()
}

// NewDescriptor creates an empty descriptor under this handle.
func (h *Handle) NewDescriptor() (*Descriptor, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrClosed
	}

	d := &Descriptor{h: h, id: uuid.New(), state: Created}
	h.descrs[d] = struct{}{}

	return d, nil
}

// Close tears the session down: drains the stream, closes every descriptor
// still open under the handle, and releases the shared workspace. A second
// Close returns ErrClosed.
func (h *Handle) Close() error {
	if h == nil {
		return ErrNilHandle
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return ErrClosed
	}
	h.closed = true
	descrs := make([]*Descriptor, 0, len(h.descrs))
	for d := range h.descrs {
		descrs = append(descrs, d)
	}
	h.descrs = nil
	ws := h.ws
	h.ws = nil
	h.mu.Unlock()

	// Let in-flight kernels finish before their memory goes away.
	err := h.stream.Synchronize()
	h.stream.Close()

	for _, d := range descrs {
		d.closeLocked()
	}
	if ws != nil {
		ws.free()
	}

	return err
}

// forget drops a descriptor from the handle's live set (descriptor Close).
func (h *Handle) forget(d *Descriptor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.descrs != nil {
		delete(h.descrs, d)
	}
}
