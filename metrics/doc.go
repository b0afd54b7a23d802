// Package metrics instruments bspengine/bc's BSP convergence behavior with
// Prometheus counters, histograms, and gauges, grounded on the retrieval
// pack's promauto-based instrumentation style.
package metrics
