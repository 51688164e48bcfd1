// Command voltgraph is the command-line front end for the traversal engine:
// run BFS over a binary CSR graph file, generate fixture graphs, or inspect
// the device the engine would run on.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltgraph/voltgraph/device"
)

var (
	// Global flags
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "voltgraph",
	Short: "Device-resident BFS over binary CSR graph files",
	Long: `voltgraph runs frontier-parallel breadth-first search over large sparse
graphs stored in the binary CSR format.

Examples:
  # Shortest hop counts from vertex 0
  voltgraph bfs --graph web.vg --source 0

  # Undirected traversal with a predecessor tree, masked edges
  voltgraph bfs --graph web.vg --source 42 --undirected --predecessors --mask-every-other

  # Generate a fixture graph
  voltgraph gen cycle --n 1024 --out cycle.vg

  # Show the device the engine would run on
  voltgraph info`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML device configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(bfsCmd, genCmd, infoCmd)

	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadDeviceConfig resolves --config into a device configuration, falling
// back to defaults when the flag is absent.
func loadDeviceConfig() (device.Config, error) {
	if configPath == "" {
		return device.Config{}, nil
	}
	cfg, err := device.LoadConfig(configPath)
	if err != nil {
		return device.Config{}, fmt.Errorf("load device config: %w", err)
	}

	return cfg, nil
}
