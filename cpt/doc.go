// SPDX-License-Identifier: MIT

// Package cpt implements conditional probability tables: a factor owned by
// one variable and conditioned on an ordered list of parent variables.
//
// Layout:
//
//	The underlying factor's scope is parents ++ [owner], owner last, so each
//	consecutive block of |dom(owner)| values is one row P(owner | parents=u).
//	Rows follow the parents' row-major order (last parent fastest).
//
// Invariant:
//
//	Every row sums to 1 within Tolerance (1e-8) and every entry is a finite
//	probability in [0,1]. Tables are validated once, at construction, and
//	never change afterwards.
//
// Errors:
//
//   - ErrShapeMismatch        len(values) != Π|dom(parents)| · |dom(owner)|
//   - ErrRowDoesNotSumToOne   a row's sum is outside 1 ± Tolerance
//   - ErrInvalidProbability   an entry is negative, NaN or Inf
//   - ErrDuplicateVariable    owner repeated among parents, or a parent twice
//   - ErrNilVariable          nil owner or parent
package cpt
