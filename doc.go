// Package engine computes Brandes' betweenness centrality over graphs that
// are split across heterogeneous partitions using a bulk-synchronous,
// level-synchronized BFS sweep from each selected source vertex.
//
// The computation runs in two phases per source: a forward sweep that
// discovers BFS levels and counts shortest paths, and a backward sweep that
// accumulates Brandes' dependency values into the running betweenness score.
// Partitions that own remote edges exchange push/pull message buffers once
// per superstep through the grooves message fabric; a partition may be
// driven by a CPU worker pool or by the warp-batched accelerator-style
// worker, and the two are interchangeable from the engine's point of view.
//
// Subpackages:
//
//	partition/ — CSR subgraphs, per-partition algorithm state, vertex ID encoding
//	grooves/   — outbox/inbox message fabric for push/pull exchange between partitions
//	bspengine/ — the superstep driver: hook dispatch, barriers, finished-flag convergence
//	cpuworker/ — shared-memory worker pool driving a CPU-resident partition
//	warp/      — frontier construction and virtual-warp neighbor batching for accelerator partitions
//	bc/        — the forward/backward betweenness-centrality state machine and driver
//	sampler/   — source-vertex sampling for approximate betweenness centrality
//	metrics/   — Prometheus instrumentation for engine supersteps and BC runs
//	csrconv/   — conversion between core.Graph and per-partition CSR subgraphs
//	core/, bfs/, dijkstra/, builder/ — the underlying in-memory graph toolkit
//	             (unpartitioned graph type, traversal oracles, and synthetic
//	             graph constructors) carried over from the graph library this
//	             engine is built on top of.
//
// The public entry point is bc.BetweennessHybrid, mirroring the single
// betweenness_hybrid(epsilon, out_scores) contract of the system this
// package reimplements in Go.
package engine
