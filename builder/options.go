// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: randomness only through WithSeed or WithRand.
//
// Deterministic defaults:
//   - idFn     = decimal index ("0","1","2",...)
//   - rng      = nil
//   - weightFn = constant 1

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

const defaultConstWeight = int64(1)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WeightFn produces a non-negative edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) int64

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: ConstantWeight(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator: index → ID. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefixIDs names vertices prefix+index ("V0", "V1", ...).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// ConstantWeight always yields value. Panics if value < 0.
func ConstantWeight(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("builder: ConstantWeight: value must be ≥ 0, got %d", value))
	}

	return func(*rand.Rand) int64 { return value }
}

// UniformWeight samples uniformly in [min, max]. With a nil RNG it yields min,
// so the result stays deterministic. Panics unless 0 ≤ min ≤ max.
func UniformWeight(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: UniformWeight: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
