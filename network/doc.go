// SPDX-License-Identifier: MIT

// Package network models a discrete Bayesian network as a validated DAG of
// nodes, each owning a conditional probability table over its parents.
//
// What:
//
//   - Node: one variable, its parents, its children (back-links recorded when
//     a child declares it as parent) and its CPT. Node is a tagged variant;
//     KindFiniteDiscrete is the only kind today.
//   - Build: eager validation from a root set. A *Network is either fully
//     valid or never returned, and is immutable afterwards.
//   - Builder: declare nodes by name in any order; parents are resolved at
//     Build time, which is also where cycles can be expressed and rejected.
//   - TopologicalOrder: parents precede children, deterministic for a given
//     root order and child declaration order.
//   - MarkovBlanket: parents, children and the children's other parents,
//     the conditioning set external samplers need.
//
// Cycle detection:
//
//	Validation runs a depth-first search that colours nodes White, Gray
//	(on the active path) and Black (finished). Only an edge into a Gray node
//	is a cycle, so diamonds such as A→B, A→C, B→D, C→D are accepted: D turns
//	Black after its first visit and the second visit is a no-op.
//
// Concurrency:
//
//	NewNode mutates the parents' child lists and is not safe for concurrent
//	use on shared parents. A built Network snapshots everything it needs and
//	is safe for concurrent readers without locking.
//
// Errors:
//
//   - ErrNoRoots               Build called without roots
//   - ErrNilNode               nil node in roots or parents
//   - ErrDuplicateRootVariable two roots share a variable name
//   - ErrNotRoot               a supplied root has parents
//   - ErrCyclicNetwork         a directed cycle (see *CycleError for the path)
//   - ErrMissingCPT            a node without a CPT matching its parents
//   - ErrUnreachableParent     a parent not reachable from the roots
//   - ErrDuplicateVariable     two distinct nodes share a variable name
//   - ErrUnknownVariable       lookup of a name outside the network
package network
