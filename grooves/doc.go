// Package grooves implements the message fabric that reconciles
// cross-partition edges of the hybrid BSP betweenness-centrality engine:
// per-ordered-pair Boundary buffers in push or pull direction, exchanged by
// bspengine at each superstep boundary.
package grooves
