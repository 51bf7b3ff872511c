// SPDX-License-Identifier: MIT

// Package variable defines discrete random variables, their finite ordered
// domains, and the assignment/observation values that index factors and
// carry evidence into inference.
//
// What:
//
//   - RandomVariable: an immutable named variable with an ordered domain of
//     distinct, comparable values (|domain| ≥ 1).
//   - Assignment: variable name → value, order-independent.
//   - Observation: one (variable, value) evidence pair.
//
// Identity:
//
//	Two RandomVariable values denote the same variable iff their names are
//	equal. Everything downstream (factors, CPTs, networks) keys on Name().
//
// Errors:
//
//   - ErrEmptyName          variable name is ""
//   - ErrEmptyDomain        no domain values supplied
//   - ErrDuplicateValue     a domain value appears twice
//   - ErrIncomparableValue  a domain value cannot be used as a map key
package variable
