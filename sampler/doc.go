// Package sampler picks source vertices for approximate betweenness
// centrality. The default implementation samples uniformly without
// replacement via gonum.org/v1/gonum/stat/sampleuv, matching the
// approximate-BC-by-sampling approach used throughout the retrieval pack's
// independent betweenness implementations.
package sampler
