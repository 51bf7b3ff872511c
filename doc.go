// Package lvbayes is an in-memory engine for exact inference on discrete
// Bayesian networks: declare variables and conditional probability tables,
// validate them once into an immutable DAG, then ask P(X | e) as often and
// as concurrently as you like.
//
// What is in the box?
//
//	variable/  RandomVariable (name + ordered finite domain), Assignment, Observation
//	factor/    dense row-major factors: product, sum-out, restrict, iterate, normalize
//	cpt/       conditional probability tables with row-stochastic validation
//	network/   Node, Build (acyclicity, completeness, topological order), Builder,
//	           Markov blankets
//	inference/ variable elimination (pluggable ordering, ancestor pruning, slog +
//	           OpenTelemetry), full enumeration, concurrent batch asks
//	sampling/  deterministic uniform sources and CPT draws for external samplers
//
// Guarantees:
//
//   - A network is either fully valid or never returned: cycles, missing or
//     malformed CPTs and duplicate variables fail at Build time.
//   - Every CPT row sums to 1 within 1e-8.
//   - Every answer is a normalized distribution over exactly the query
//     variables, in query order; zero-probability evidence is an error, never
//     NaN.
//   - Networks are read-only after Build; concurrent queries need no locks.
//
// Quick ASCII example:
//
//	   [Cavity]
//	   /      \
//	[Toothache] [Catch]
//
//	P(Cavity | Toothache=true) = 0.6
//
// See examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/lvbayes
package lvbayes
