// SPDX-License-Identifier: MIT

// Package factor implements dense probability factors over discrete random
// variables and the algebra exact inference is built from.
//
// What:
//
//   - Factor: a table of non-negative numbers indexed by an assignment to an
//     ordered scope of variables. Values are stored flat, row-major: the last
//     scope variable varies fastest (gonum combin.IdxFor layout).
//   - PointwiseProductOrdered: the primitive product; the caller fixes the
//     result scope order. PointwiseProduct derives the default order
//     this.scope ++ (other.scope − this.scope).
//   - SumOut: marginalize variables away; absent variables are a no-op.
//   - Restrict: collapse evidence axes to the observed value.
//   - Iterate: visit every assignment (optionally consistent with a fixed
//     partial assignment) exactly once, in row-major order.
//   - Normalize: divide by the total mass.
//
// Ownership:
//
//	A Factor exclusively owns its value slice and is never mutated after
//	construction. Every operation allocates its result, so factors may be
//	shared across goroutines without locking.
//
// Complexity:
//
//   - Product over scope S: O(|S| · Π|dom(v)|, v∈S) time, result-sized memory.
//   - SumOut / Restrict:     O(size of input) time.
//   - ValueOf:               O(|scope|).
//
// Errors:
//
//   - ErrNilVariable       nil variable in a scope or order
//   - ErrDuplicateVariable a scope lists the same variable name twice
//   - ErrShapeMismatch     len(values) != Π|dom(v)|
//   - ErrOutOfScope        assignment misses a scope variable or names a foreign one
//   - ErrValueNotInDomain  assignment value outside the variable's domain
//   - ErrOrderMismatch     explicit order is not a permutation of the union scope
//   - ErrDomainMismatch    same-named variables disagree on domain size
//   - ErrZeroSum           normalization of a factor with no mass
package factor
