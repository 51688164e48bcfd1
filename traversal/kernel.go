// SPDX-License-Identifier: MIT
// Package traversal: the frontier-expansion kernel.
//
// Contract:
//   - Level-synchronous: the frontier at depth k is fully expanded before
//     depth k+1 begins, so a vertex's distance is exactly the level that
//     first reaches it — deterministic whatever the claim races resolve to.
//   - First discoverer wins: the claim on a vertex is a CAS on its distance
//     cell, Unreachable → level. Exactly one worker wins; only the winner
//     writes the predecessor and enqueues the vertex.
//   - A faulting worker is contained (recover) and reported as the launch's
//     single aggregate fault at synchronization time; it never tears down
//     the stream or the process.

package traversal

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/voltgraph/voltgraph"
	"github.com/voltgraph/voltgraph/graph"
	"github.com/voltgraph/voltgraph/topology"
)

// parallelFillMin is the array length below which initialization runs on a
// single worker; sharding smaller fills costs more than it saves.
const parallelFillMin = 1 << 14

// kernelState is everything one launch operates on, resolved at execution
// time so slot replacements between enqueue and execution are honored.
type kernelState struct {
	topo    topology.CSR
	rev     topology.Reverse
	dist    []int32 // claim array: output slot or workspace scratch
	pred    []int32 // nil when no predecessor output is configured
	mask    []int32 // nil when no edge mask is configured
	curr    []int32
	next    []int32
	workers int
}

// runKernel executes one BFS launch on the stream. Runs on the stream's
// executor goroutine; never concurrently with another launch on the same
// handle.
func runKernel(h *graph.Handle, d *graph.Descriptor, source int, cfg Config) error {
	st, err := prepare(h, d, cfg)
	if err != nil {
		return err
	}

	st.initialize(source)

	frontier := st.curr
	spare := st.next
	size := 1
	frontier[0] = int32(source)

	for level := int32(1); size > 0; level++ {
		size, err = st.expand(frontier[:size], spare, level)
		if err != nil {
			return err
		}
		frontier, spare = spare, frontier
	}

	return nil
}

// prepare resolves device storage for one launch: topology views, the
// reverse adjacency when undirected, output slots, mask, and workspace.
func prepare(h *graph.Handle, d *graph.Descriptor, cfg Config) (*kernelState, error) {
	topo, err := d.Topology()
	if err != nil {
		return nil, err
	}

	st := &kernelState{topo: topo, workers: h.Device().Workers()}

	if cfg.Undirected() {
		if st.rev, err = d.ReverseAdjacency(); err != nil {
			return nil, err
		}
	}

	ws, err := h.Workspace(topo.N)
	if err != nil {
		return nil, err
	}
	// The workspace may exceed n after traversing a larger graph earlier.
	st.curr = ws.Curr.Words()[:topo.N]
	st.next = ws.Next.Words()[:topo.N]
	st.dist = ws.Dist.Words()[:topo.N]

	if cfg.HasDistances() {
		if st.dist, err = d.VertexSlotWords(cfg.distances); err != nil {
			return nil, err
		}
	}
	if cfg.HasPredecessors() {
		if st.pred, err = d.VertexSlotWords(cfg.predecessors); err != nil {
			return nil, err
		}
	}
	if cfg.HasEdgeMask() {
		if st.mask, err = d.EdgeSlotWords(cfg.edgeMask); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// initialize fills the result arrays and seeds the source.
func (st *kernelState) initialize(source int) {
	fillInt32(st.dist, Unreachable, st.workers)
	if st.pred != nil {
		fillInt32(st.pred, NoPredecessor, st.workers)
	}
	st.dist[source] = 0
}

// expand processes one frontier level: every worker takes a contiguous
// chunk of the frontier, walks each vertex's edges (both adjacencies in
// undirected mode), and claims undiscovered endpoints. Returns the size of
// the next frontier, written into next.
func (st *kernelState) expand(frontier, next []int32, level int32) (int, error) {
	var cursor int32

	chunk := (len(frontier) + st.workers - 1) / st.workers
	var g errgroup.Group
	for lo := 0; lo < len(frontier); lo += chunk {
		hi := lo + chunk
		if hi > len(frontier) {
			hi = len(frontier)
		}
		part := frontier[lo:hi]

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("traversal: kernel worker panicked: %v: %w", r, voltgraph.ErrInternal)
				}
			}()

			for _, u32 := range part {
				u := int(u32)
				st.expandForward(u, level, next, &cursor)
				if st.rev.RowOffsets != nil {
					st.expandReverse(u, level, next, &cursor)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(cursor), nil
}

// expandForward walks u's outgoing edges u→v.
func (st *kernelState) expandForward(u int, level int32, next []int32, cursor *int32) {
	for e := st.topo.RowOffsets[u]; e < st.topo.RowOffsets[u+1]; e++ {
		if st.mask != nil && st.mask[e] == 0 {
			continue
		}
		st.claim(int(st.topo.ColIndices[e]), u, level, next, cursor)
	}
}

// expandReverse walks u's incoming edges w→u backwards (undirected mode).
// The mask is indexed by the original edge position so a pruned edge is
// pruned in both directions.
func (st *kernelState) expandReverse(u int, level int32, next []int32, cursor *int32) {
	for i := st.rev.RowOffsets[u]; i < st.rev.RowOffsets[u+1]; i++ {
		if st.mask != nil && st.mask[st.rev.EdgePos[i]] == 0 {
			continue
		}
		st.claim(int(st.rev.ColIndices[i]), u, level, next, cursor)
	}
}

// claim atomically takes vertex v for this level. The load is a cheap
// pre-check; the CAS is the claim. Only the CAS winner writes pred and
// appends v to the next frontier, so each vertex enters exactly once.
func (st *kernelState) claim(v, parent int, level int32, next []int32, cursor *int32) {
	if atomic.LoadInt32(&st.dist[v]) != Unreachable {
		return
	}
	if !atomic.CompareAndSwapInt32(&st.dist[v], Unreachable, level) {
		return
	}
	if st.pred != nil {
		st.pred[v] = int32(parent)
	}
	next[atomic.AddInt32(cursor, 1)-1] = int32(v)
}

// fillInt32 sets every element of dst to v, sharded across workers for
// large arrays.
func fillInt32(dst []int32, v int32, workers int) {
	if len(dst) < parallelFillMin || workers < 2 {
		for i := range dst {
			dst[i] = v
		}

		return
	}

	chunk := (len(dst) + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < len(dst); lo += chunk {
		hi := lo + chunk
		if hi > len(dst) {
			hi = len(dst)
		}
		part := dst[lo:hi]
		g.Go(func() error {
			for i := range part {
				part[i] = v
			}

			return nil
		})
	}
	// Fill workers cannot fail; Wait only joins them.
	_ = g.Wait()
}
