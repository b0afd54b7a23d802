// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds, among others, these fields:
//   - rng:     *rand.Rand source for randomness (nil → deterministic).
//   - idFn:    IDFn to produce vertex identifiers from integer indices.
//   - weightFn: WeightFn to produce edge weights given an RNG.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// Default CompleteBipartite label prefixes, used when WithPartitionPrefix
// is not given or passes empty strings.
const (
	defLeftPrefix  = "L"
	defRightPrefix = "R"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// Option constructors that accept a required function or RNG value panic on
// nil to surface programmer error immediately; the graph algorithms they
// configure never panic at runtime.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for graph builders:
//   - rng:     source of randomness (nil means deterministic).
//   - idFn:    function mapping index→vertex ID (IDFn).
//   - weightFn: function mapping rng→edge weight (WeightFn).
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix, rightPrefix string // CompleteBipartite label prefixes; "" resolves to defaults

	amplitude  float64 // sequence amplitude A (>0) for Pulse/Chirp/OHLC
	frequency  float64 // base frequency f0 (>0); read by BuildPulse only
	trendK     float64 // linear trend coefficient for sequences
	noiseSigma float64 // Gaussian noise sigma (>=0) for sequences
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn.
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Initialize defaults
	cfg := builderConfig{
		rng:        nil,             // no RNG → deterministic ID and weight functions
		idFn:       DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:   DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix: defLeftPrefix, rightPrefix: defRightPrefix,
		amplitude: defAmp, frequency: defBaseFreq,
		trendK: defTrendSlope, noiseSigma: defSigma,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn into the builderConfig.
// Panics if idFn is nil.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.idFn = idFn
	}
}

// WithWeightFn injects a custom WeightFn into the builderConfig.
// Panics if wfn is nil.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(wfn WeightFn) BuilderOption {
	if wfn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.weightFn = wfn
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics if rng is nil; use WithSeed for a owned, seeded source instead.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible randomness.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
