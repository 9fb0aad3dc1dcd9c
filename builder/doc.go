// Package builder constructs deterministic graph fixtures for tests,
// examples and benchmarks of the shortest-path finder.
//
// Usage:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeight(0, 9))},
//	    builder.RandomSparse(100, 0.05),
//	)
//
// Constructors: Path, Cycle, Grid, Complete, RandomSparse.
// Options: WithIDScheme, WithPrefixIDs, WithSeed, WithRand, WithWeightFn.
// Weights: ConstantWeight, UniformWeight.
package builder
