package traversal_test

import (
	"fmt"

	"github.com/voltgraph/voltgraph/builder"
	"github.com/voltgraph/voltgraph/graph"
	"github.com/voltgraph/voltgraph/topology"
	"github.com/voltgraph/voltgraph/traversal"
)

// ExampleBFS traverses a 6-vertex directed ring and prints each vertex's
// hop count and BFS-tree parent.
func ExampleBFS() {
	csr, _ := builder.Cycle(6)

	h, _ := graph.NewHandle()
	defer h.Close()

	d, _ := h.NewDescriptor()
	_ = d.SetTopology(csr, topology.CSR32)
	_ = d.AllocVertexData(graph.Int32, graph.Int32)

	_ = traversal.BFS(h, d, 0,
		traversal.WithDistances(0),
		traversal.WithPredecessors(1),
	)

	dist := make([]int32, csr.N)
	pred := make([]int32, csr.N)
	_ = d.GetVertexData(0, dist) // implicit synchronize
	_ = d.GetVertexData(1, pred)

	for v := range dist {
		fmt.Printf("vertex %d: dist=%d pred=%d\n", v, dist[v], pred[v])
	}
	// Output:
	// vertex 0: dist=0 pred=-1
	// vertex 1: dist=1 pred=0
	// vertex 2: dist=2 pred=1
	// vertex 3: dist=3 pred=2
	// vertex 4: dist=4 pred=3
	// vertex 5: dist=5 pred=4
}
