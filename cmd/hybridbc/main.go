// Command hybridbc runs the hybrid partitioned BSP betweenness-centrality
// engine over an edge-list file and prints one score per vertex.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hybridbc",
		Short: "Hybrid partitioned BSP betweenness centrality",
		Long:  "hybridbc computes betweenness centrality over an edge-list graph using a bulk-synchronous, partition-parallel Brandes implementation.",
	}

	root.AddCommand(newRunCmd())

	return root
}
