// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// options.go — functional options for the builder package beyond the core
// ID/weight/RNG knobs in config.go: bipartite label prefixes and the
// sequence-generator knobs shared by Pulse/Chirp/OHLC.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig), see config.go).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (per lvlath 99-rules). Algorithms themselves MUST NOT panic.
//
// AI-Hints:
//   • WithPartitionPrefix controls K_{m,n} labels; empty values mean
//     “use defaults”, not an error (deterministic fallback).

package builder

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values are allowed and interpreted as “use defaults” in config.
// Complexity: O(1) time, O(1) space.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		// Empty values keep the default assigned by newBuilderConfig.
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}

// WithAmplitude sets the sequence amplitude A (>0) for datasets (Pulse/Chirp/OHLC).
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		// Deterministic scalar controlling signal scale.
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0) read by BuildPulse.
// BuildAudioChirp does not read it; its sweep endpoints are fixed defaults.
// Panics if f0 <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		// Fundamental frequency parameter for signal synthesis.
		c.frequency = f0
	}
}

// WithTrend sets the linear trend coefficient k for sequences.
// Any real value is accepted (including 0).
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		// Adds k*i to sample i in BuildPulse and BuildAudioChirp.
		c.trendK = k
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for sequences.
// Panics if sigma < 0. Noise draws come from c.rng when set, else from a
// source seeded with the call's seed argument.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		// Standard deviation for additive noise; 0 means noiseless.
		c.noiseSigma = sigma
	}
}
