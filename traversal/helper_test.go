package traversal_test

import (
	"testing"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/voltgraph/voltgraph/graph"
	"github.com/voltgraph/voltgraph/topology"
	"github.com/voltgraph/voltgraph/traversal"
)

// Slot layout shared by every test in this package.
const (
	slotDist = 0
	slotPred = 1
	slotMask = 0

	unreachable = traversal.Unreachable
	noPred      = traversal.NoPredecessor
)

// setup opens a handle-descriptor pair with csr installed and two vertex
// slots allocated, torn down with the test.
func setup(t *testing.T, csr topology.CSR) (*graph.Handle, *graph.Descriptor) {
	t.Helper()

	h, err := graph.NewHandle()
	if err != nil {
		t.Fatalf("NewHandle: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })

	d, err := h.NewDescriptor()
	if err != nil {
		t.Fatalf("NewDescriptor: %v", err)
	}
	if err = d.SetTopology(csr, topology.CSR32); err != nil {
		t.Fatalf("SetTopology: %v", err)
	}
	if err = d.AllocVertexData(graph.Int32, graph.Int32); err != nil {
		t.Fatalf("AllocVertexData: %v", err)
	}

	return h, d
}

// setMask allocates the edge table and installs mask into slotMask.
func setMask(t *testing.T, d *graph.Descriptor, mask []int32) {
	t.Helper()
	if err := d.AllocEdgeData(graph.Int32); err != nil {
		t.Fatalf("AllocEdgeData: %v", err)
	}
	if err := d.SetEdgeData(slotMask, mask); err != nil {
		t.Fatalf("SetEdgeData: %v", err)
	}
}

// readSlot downloads vertex slot i.
func readSlot(t *testing.T, d *graph.Descriptor, i, n int) []int32 {
	t.Helper()
	out := make([]int32, n)
	if err := d.GetVertexData(i, out); err != nil {
		t.Fatalf("GetVertexData(%d): %v", i, err)
	}

	return out
}

// refDistances computes hop counts with an independent gonum BFS over the
// same topology, honoring the mask (nil = all edges) and directedness.
func refDistances(t *testing.T, csr topology.CSR, mask []int32, source int, undirected bool) []int32 {
	t.Helper()

	var g interface {
		gonumgraph.Graph
		gonumgraph.NodeAdder
		gonumgraph.EdgeAdder
	}
	if undirected {
		g = simple.NewUndirectedGraph()
	} else {
		g = simple.NewDirectedGraph()
	}

	for v := 0; v < csr.N; v++ {
		g.AddNode(simple.Node(v))
	}
	for u := 0; u < csr.N; u++ {
		for e := csr.RowOffsets[u]; e < csr.RowOffsets[u+1]; e++ {
			if mask != nil && mask[e] == 0 {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(csr.ColIndices[e])})
		}
	}

	dist := make([]int32, csr.N)
	for i := range dist {
		dist[i] = unreachable
	}
	bf := traverse.BreadthFirst{}
	bf.Walk(g, g.Node(int64(source)), func(n gonumgraph.Node, depth int) bool {
		dist[n.ID()] = int32(depth)

		return false
	})

	return dist
}
