// Package bspengine drives the bulk-synchronous-parallel execution of a
// partitioned graph algorithm: a Config registers per-partition hooks and a
// message Direction for a round; Engine.Execute fans hooks out across
// partitions with golang.org/x/sync/errgroup and barriers between
// supersteps until every partition reports finished.
package bspengine
