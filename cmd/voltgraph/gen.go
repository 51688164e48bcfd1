package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/voltgraph/voltgraph/builder"
	"github.com/voltgraph/voltgraph/graphio"
	"github.com/voltgraph/voltgraph/topology"
)

var (
	genN      int
	genDeg    int
	genWidth  int
	genHeight int
	genSeed   int64
	genOut    string
)

var genCmd = &cobra.Command{
	Use:       "gen {cycle|path|complete|grid|sparse}",
	Short:     "Generate a fixture graph in the binary CSR format",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"cycle", "path", "complete", "grid", "sparse"},
	RunE:      runGen,
}

func init() {
	genCmd.Flags().IntVar(&genN, "n", 1024, "Vertex count (cycle, path, complete, sparse)")
	genCmd.Flags().IntVar(&genDeg, "deg", 8, "Out-degree per vertex (sparse)")
	genCmd.Flags().IntVar(&genWidth, "width", 32, "Grid width")
	genCmd.Flags().IntVar(&genHeight, "height", 32, "Grid height")
	genCmd.Flags().Int64Var(&genSeed, "seed", builder.DefaultSeed, "Random seed (sparse)")
	genCmd.Flags().StringVar(&genOut, "out", "", "Output file (required)")
	_ = genCmd.MarkFlagRequired("out")
}

func runGen(cmd *cobra.Command, args []string) error {
	var (
		csr topology.CSR
		err error
	)
	switch args[0] {
	case "cycle":
		csr, err = builder.Cycle(genN)
	case "path":
		csr, err = builder.Path(genN)
	case "complete":
		csr, err = builder.Complete(genN)
	case "grid":
		csr, err = builder.Grid(genWidth, genHeight)
	case "sparse":
		csr, err = builder.RandomSparse(genN, genDeg, builder.WithSeed(genSeed))
	default:
		return fmt.Errorf("unknown generator %q", args[0])
	}
	if err != nil {
		return err
	}

	if err = graphio.WriteFile(genOut, graphio.Graph{CSR: csr}); err != nil {
		return err
	}
	slog.Info("graph written", "file", genOut, "n", csr.N, "nnz", csr.NNZ)

	return nil
}
