// SPDX-License-Identifier: MIT

// Package sampling provides the randomness hooks that approximate-inference
// code built on lvbayes needs, without implementing any sampler itself.
//
// What:
//
//   - Source: a stream of uniform draws in [0, 1).
//   - NewUniformSource / NewUniformStream: deterministic sources backed by
//     gonum's distuv.Uniform over a math/rand/v2 PCG generator.
//   - Draw, Sample: inverse-CDF selection from a weight vector or a CPT row.
//   - PriorSample: one joint draw in topological order.
//   - BlanketConditional: P(X | Markov blanket), the per-variable update
//     distribution Gibbs-style samplers use.
//
// Determinism:
//
//	Same seed and stream ⇒ identical draws on every platform. Seed 0 selects
//	DefaultSeed so that zero-valued configuration is still reproducible.
//
// Concurrency:
//
//	A Source is not safe for concurrent use. Give each goroutine its own
//	stream via NewUniformStream(seed, worker).
package sampling
