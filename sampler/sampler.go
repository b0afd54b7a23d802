package sampler

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrInvalidSampleSize is returned when k is negative.
var ErrInvalidSampleSize = errors.New("sampler: negative sample size")

// Sampler picks numSamples distinct indices from [0, total) uniformly at
// random. BetweennessHybrid uses the result as flattened (partition, local
// vertex) indices into the graph's vertex space.
type Sampler interface {
	Sample(total, numSamples int) ([]int, error)
}

// UniformSampler draws without replacement using gonum's Efraimidis-Spirakis
// weighted sampler with equal weights, which degenerates to uniform
// sampling without replacement.
type UniformSampler struct {
	rng *rand.Rand
}

// NewUniformSampler returns a UniformSampler seeded deterministically, so
// that repeated runs with the same seed sample the same sources.
func NewUniformSampler(seed int64) *UniformSampler {
	return &UniformSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns min(numSamples, total) distinct indices in [0, total). If
// numSamples >= total, it returns every index (approximate mode then
// degenerates to exact mode, matching bc.BetweennessHybrid's "sampleSize >=
// n" short-circuit convention).
func (s *UniformSampler) Sample(total, numSamples int) ([]int, error) {
	if numSamples < 0 {
		return nil, ErrInvalidSampleSize
	}
	if total <= 0 {
		return nil, nil
	}
	if numSamples >= total {
		out := make([]int, total)
		for i := range out {
			out[i] = i
		}

		return out, nil
	}

	weights := make([]float64, total)
	for i := range weights {
		weights[i] = 1
	}

	w := sampleuv.NewWeighted(weights, s.rng)
	out := make([]int, 0, numSamples)
	for len(out) < numSamples {
		idx, ok := w.Take()
		if !ok {
			break
		}
		out = append(out, idx)
	}

	return out, nil
}

// RecommendSampleSize returns a default sample count for approximate mode,
// balancing accuracy against speed. edgeCount is accepted for interface
// symmetry with the reference implementation this is modeled on; it is not
// yet used for density-aware tuning.
func RecommendSampleSize(numVertices, edgeCount int) int {
	switch {
	case numVertices < 100:
		return numVertices
	case numVertices < 500:
		minSample := 50
		sample := numVertices / 5
		if sample > minSample {
			return sample
		}

		return minSample
	case numVertices < 2000:
		return 100
	default:
		return 200
	}
}
