// SPDX-License-Identifier: MIT
// Package traversal: configuration options and sentinel errors.

package traversal

import (
	"fmt"
	"math"

	"github.com/voltgraph/voltgraph"
)

// Result-space constants.
const (
	// Unreachable is the sentinel distance for vertices no path reaches.
	Unreachable int32 = math.MaxInt32

	// NoPredecessor marks the source vertex and unreachable vertices in a
	// predecessor slot.
	NoPredecessor int32 = -1

	// unset marks an optional slot index a caller never configured.
	unset = -1
)

// Sentinel errors for traversal launches.
var (
	// ErrOptionViolation is returned when an option carries an invalid
	// value (negative slot index).
	ErrOptionViolation = fmt.Errorf("traversal: invalid option supplied: %w", voltgraph.ErrInvalidValue)

	// ErrSourceOutOfRange is returned when the source vertex lies outside
	// [0, n) of the installed topology.
	ErrSourceOutOfRange = fmt.Errorf("traversal: source vertex out of range: %w", voltgraph.ErrInvalidValue)

	// ErrForeignDescriptor is returned when the descriptor was created
	// under a different handle. Descriptors are never shared across
	// handles.
	ErrForeignDescriptor = fmt.Errorf("traversal: descriptor not owned by handle: %w", voltgraph.ErrInvalidValue)
)

// Option configures a BFS launch via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when BFS is invoked, so a
// bad configuration can never half-apply.
type Option func(*Config)

// Config is the resolved traversal configuration: which vertex slots
// receive distances and predecessors, whether an edge-mask slot gates
// expansion, and whether edges are traversable in both directions. The
// value is passed by value into the launch and never retained by the
// engine, so one Config (or option list) may be reused freely across calls.
type Config struct {
	distances    int
	predecessors int
	edgeMask     int
	undirected   bool

	// first option error, surfaced at launch
	err error
}

// DefaultConfig returns the default-initialized configuration: no outputs
// configured, no mask, directed traversal.
func DefaultConfig() Config {
	return Config{distances: unset, predecessors: unset, edgeMask: unset}
}

// WithDistances directs hop counts into vertex slot i.
func WithDistances(i int) Option {
	return func(c *Config) {
		if i < 0 {
			c.err = fmt.Errorf("%w: distances slot %d", ErrOptionViolation, i)

			return
		}
		c.distances = i
	}
}

// WithPredecessors directs BFS-tree parents into vertex slot i.
func WithPredecessors(i int) Option {
	return func(c *Config) {
		if i < 0 {
			c.err = fmt.Errorf("%w: predecessors slot %d", ErrOptionViolation, i)

			return
		}
		c.predecessors = i
	}
}

// WithEdgeMask gates expansion on edge slot i: entries are boolean gates,
// nonzero = edge active, zero = edge pruned from the traversal.
func WithEdgeMask(i int) Option {
	return func(c *Config) {
		if i < 0 {
			c.err = fmt.Errorf("%w: edge mask slot %d", ErrOptionViolation, i)

			return
		}
		c.edgeMask = i
	}
}

// WithUndirected makes every edge traversable in both directions. The
// engine discovers v→u adjacency through the descriptor's reverse-adjacency
// view; the input graph need not be symmetric.
func WithUndirected(on bool) Option {
	return func(c *Config) { c.undirected = on }
}

// HasDistances reports whether a distances output slot is configured.
func (c Config) HasDistances() bool { return c.distances != unset }

// HasPredecessors reports whether a predecessors output slot is configured.
func (c Config) HasPredecessors() bool { return c.predecessors != unset }

// HasEdgeMask reports whether an edge-mask slot is configured.
func (c Config) HasEdgeMask() bool { return c.edgeMask != unset }

// Undirected reports whether edges are traversed in both directions.
func (c Config) Undirected() bool { return c.undirected }

// resolve folds a default configuration with the supplied options.
func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
