// SPDX-License-Identifier: MIT
// Package traversal: the BFS launch path — synchronous validation, then an
// asynchronous kernel enqueue on the handle's stream.

package traversal

import (
	"errors"
	"fmt"
	"time"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/graph"
	"github.com/voltgraph/voltgraph/metrics"
)

// enqueued task name, carried into deferred fault messages.
const kernelName = "traversal.BFS"

// BFS launches breadth-first search from source on the descriptor's device.
//
// The call validates its arguments synchronously — nil handle or descriptor,
// foreign descriptor, wrong lifecycle state, out-of-range source, slot
// indices outside the allocated tables — and then enqueues the kernel and
// returns. It does NOT wait for the kernel: outputs are defined only after
// Handle.Synchronize (or the implicit synchronize in GetVertexData), and a
// kernel fault surfaces there, not here. Once enqueued, a traversal runs to
// completion; there is no cancellation.
//
// On any non-nil return the configured output slots have not been touched.
func BFS(h *graph.Handle, d *graph.Descriptor, source int, opts ...Option) error {
	err := launch(h, d, source, resolve(opts))
	if err != nil {
		metrics.TraversalsTotal.WithLabelValues(statusLabel(err)).Inc()
	}

	return err
}

// launch is BFS without the metrics skin.
func launch(h *graph.Handle, d *graph.Descriptor, source int, cfg Config) error {
	if cfg.err != nil {
		return cfg.err
	}
	if h == nil {
		return graph.ErrNilHandle
	}
	if d == nil {
		return graph.ErrNilDescriptor
	}
	if d.Handle() != h {
		return ErrForeignDescriptor
	}

	switch d.State() {
	case graph.Closed:
		return graph.ErrClosed
	case graph.Created:
		return graph.ErrNoTopology
	case graph.TopologyInstalled, graph.DataAllocated:
		// Topology present, vertex slots missing: sequencing error,
		// distinct from the argument errors above.
		return graph.ErrNotAllocated
	case graph.Ready:
	}

	n := d.NumVertices()
	if source < 0 || source >= n {
		return fmt.Errorf("source=%d, n=%d: %w", source, n, ErrSourceOutOfRange)
	}
	if err := checkSlots(d, cfg); err != nil {
		return err
	}

	return h.Stream().Enqueue(kernelName, func() error {
		start := time.Now()
		err := runKernel(h, d, source, cfg)
		metrics.TraversalDuration.Observe(time.Since(start).Seconds())
		metrics.TraversalsTotal.WithLabelValues(statusLabel(err)).Inc()

		return err
	})
}

// checkSlots validates every configured slot index against the tables as
// they exist at launch time. The kernel re-resolves storage when it runs;
// this check is what makes slot errors synchronous.
func checkSlots(d *graph.Descriptor, cfg Config) error {
	if cfg.HasDistances() {
		if _, err := d.VertexSlotWords(cfg.distances); err != nil {
			return err
		}
	}
	if cfg.HasPredecessors() {
		if _, err := d.VertexSlotWords(cfg.predecessors); err != nil {
			return err
		}
	}
	if cfg.HasEdgeMask() {
		if _, err := d.EdgeSlotWords(cfg.edgeMask); err != nil {
			return err
		}
	}

	return nil
}

// statusLabel maps an error to its coarse status class for metrics.
func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, voltgraph.ErrNotReady):
		return "not_ready"
	case errors.Is(err, voltgraph.ErrAllocFailure):
		return "alloc_failure"
	case errors.Is(err, voltgraph.ErrInvalidValue):
		return "invalid_value"
	default:
		return "internal"
	}
}
