// Package warp implements the accelerator-style partition path: a frontier
// builder that compacts the current level's vertices, and virtual-warp
// batched neighbor processing that gives each frontier vertex a
// configurable slice of goroutine parallelism across its edge list.
package warp
