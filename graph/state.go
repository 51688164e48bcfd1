// SPDX-License-Identifier: MIT
// Package graph: descriptor lifecycle states.

package graph

import "fmt"

// State is the lifecycle phase of a Descriptor. Transitions are linear and
// one-way; Close is reachable from every phase.
type State int

const (
	// Created: fresh descriptor, nothing installed.
	Created State = iota

	// TopologyInstalled: SetTopology succeeded; slots may be allocated.
	TopologyInstalled

	// DataAllocated: edge slots exist but vertex slots do not yet.
	DataAllocated

	// Ready: topology installed and vertex slots allocated — the earliest
	// phase in which traversal is legal.
	Ready

	// Closed: resources released; every further operation fails.
	Closed
)

// String implements fmt.Stringer for diagnostics and tests.
func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case TopologyInstalled:
		return "TopologyInstalled"
	case DataAllocated:
		return "DataAllocated"
	case Ready:
		return "Ready"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
