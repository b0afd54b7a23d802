package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hybridbc/engine/bc"
	"github.com/hybridbc/engine/core"
	"github.com/hybridbc/engine/csrconv"
	"github.com/hybridbc/engine/metrics"
)

type runFlags struct {
	edgesPath  string
	partitions int
	epsilon    float64
	directed   bool
	workers    int
	verbose    bool
	prometheus bool
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute betweenness centrality over an edge-list file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetweenness(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.edgesPath, "edges", "", "path to an edge-list file (one \"from to\" pair per line)")
	flags.IntVar(&f.partitions, "partitions", 4, "number of partitions to split the graph across")
	flags.Float64Var(&f.epsilon, "epsilon", bc.Exact, "accuracy target; 0 requests exact betweenness, >0 requests sampled approximate betweenness")
	flags.BoolVar(&f.directed, "directed", false, "treat edges as directed")
	flags.IntVar(&f.workers, "workers", 0, "CPU worker pool size per partition; 0 defers to the default")
	flags.BoolVar(&f.verbose, "verbose", false, "print per-round progress to stderr")
	flags.BoolVar(&f.prometheus, "prometheus", false, "record per-round metrics via the Prometheus default registry")

	_ = cmd.MarkFlagRequired("edges")

	return cmd
}

func runBetweenness(cmd *cobra.Command, f *runFlags) error {
	g, vertexOrder, err := loadEdgeList(f.edgesPath, f.directed)
	if err != nil {
		return fmt.Errorf("hybridbc: %w", err)
	}

	pg, err := csrconv.FromGraph(g, f.partitions, nil)
	if err != nil {
		return fmt.Errorf("hybridbc: %w", err)
	}

	opts := []bc.Option{bc.WithVerbose(f.verbose)}
	if f.workers > 0 {
		opts = append(opts, bc.WithNumCPUWorkers(f.workers))
	}
	if f.prometheus {
		opts = append(opts, bc.WithMetrics(metrics.NewPrometheusRecorder()))
	}

	out := make([]float64, g.VertexCount())

	start := time.Now()
	if err := bc.BetweennessHybrid(context.Background(), pg, f.epsilon, out, opts...); err != nil {
		return fmt.Errorf("hybridbc: %w", err)
	}
	elapsed := time.Since(start)

	w := cmd.OutOrStdout()
	for i, id := range vertexOrder {
		fmt.Fprintf(w, "%s\t%g\n", id, out[i])
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "hybridbc: %d vertices, %d partitions, elapsed %s\n", g.VertexCount(), f.partitions, elapsed)

	return nil
}

// loadEdgeList reads a simple whitespace/comma-separated edge-list file
// ("from to" or "from,to" per line, blank lines and "#"-prefixed lines
// ignored) into a core.Graph, returning the graph and its Vertices() order
// for output labeling.
func loadEdgeList(path string, directed bool) (*core.Graph, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open edge list: %w", err)
	}
	defer file.Close()

	var gopts []core.GraphOption
	if directed {
		gopts = append(gopts, core.WithDirected(true))
	}
	g := core.NewGraph(gopts...)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("malformed edge line %q: need at least two fields", line)
		}

		from, to := fields[0], fields[1]
		if !g.HasVertex(from) {
			if err := g.AddVertex(from); err != nil {
				return nil, nil, fmt.Errorf("add vertex %q: %w", from, err)
			}
		}
		if !g.HasVertex(to) {
			if err := g.AddVertex(to); err != nil {
				return nil, nil, fmt.Errorf("add vertex %q: %w", to, err)
			}
		}
		if _, err := g.AddEdge(from, to, 1); err != nil {
			return nil, nil, fmt.Errorf("add edge %q->%q: %w", from, to, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scan edge list: %w", err)
	}

	return g, g.Vertices(), nil
}
