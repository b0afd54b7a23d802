// Package bc implements Brandes' betweenness centrality as a two-phase
// (forward sum-of-paths / backward dependency) BSP state machine layered on
// bspengine, grooves, partition, cpuworker, and warp. BetweennessHybrid is
// the package's single public entry point; everything else wires the four
// per-source rounds (forward, distance-sync, numSPs-sync, backward) into
// bspengine.Config values.
package bc
