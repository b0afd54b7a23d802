package bc_test

// fixedOrderSampler deterministically samples the first numSamples indices,
// letting approximate-mode tests assert on a reproducible source set
// instead of depending on the default uniform sampler's seed.
type fixedOrderSampler struct{}

func newFixedOrderSampler() *fixedOrderSampler { return &fixedOrderSampler{} }

func (s *fixedOrderSampler) Sample(total, numSamples int) ([]int, error) {
	if numSamples > total {
		numSamples = total
	}
	idx := make([]int, numSamples)
	for i := range idx {
		idx[i] = i
	}

	return idx, nil
}
