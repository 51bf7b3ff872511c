// SPDX-License-Identifier: MIT

package factor

import "errors"

var (
	// ErrNilFactor indicates a nil *Factor operand.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrNilVariable indicates a nil variable inside a scope or order list.
	ErrNilVariable = errors.New("factor: nil variable")

	// ErrDuplicateVariable indicates that a scope or order names a variable twice.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in scope")

	// ErrShapeMismatch indicates that the value count does not match the
	// product of the scope's domain sizes.
	ErrShapeMismatch = errors.New("factor: values do not match scope shape")

	// ErrOutOfScope indicates an assignment that misses a scope variable or
	// mentions a variable outside the scope.
	ErrOutOfScope = errors.New("factor: assignment out of scope")

	// ErrValueNotInDomain indicates a value outside its variable's domain.
	ErrValueNotInDomain = errors.New("factor: value not in domain")

	// ErrOrderMismatch indicates that an explicit product order is not a
	// permutation of the union of the operand scopes.
	ErrOrderMismatch = errors.New("factor: order does not match product scope")

	// ErrDomainMismatch indicates two variables with the same name but
	// different domain sizes.
	ErrDomainMismatch = errors.New("factor: domain size mismatch")

	// ErrZeroSum indicates normalization of a factor whose values sum to zero
	// (or to a non-finite number).
	ErrZeroSum = errors.New("factor: values sum to zero")
)
