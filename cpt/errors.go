// SPDX-License-Identifier: MIT

package cpt

import "errors"

var (
	// ErrNilVariable indicates a nil owner or parent variable.
	ErrNilVariable = errors.New("cpt: nil variable")

	// ErrShapeMismatch indicates that the number of values does not equal
	// Π|dom(parents)| · |dom(owner)|.
	ErrShapeMismatch = errors.New("cpt: values do not match table shape")

	// ErrRowDoesNotSumToOne indicates a parent row whose probabilities do not
	// sum to 1 within Tolerance.
	ErrRowDoesNotSumToOne = errors.New("cpt: row does not sum to one")

	// ErrInvalidProbability indicates a negative or non-finite entry.
	ErrInvalidProbability = errors.New("cpt: invalid probability")

	// ErrDuplicateVariable indicates that owner and parents are not distinct.
	ErrDuplicateVariable = errors.New("cpt: duplicate variable")

	// ErrUnknownParent indicates a lookup whose parent assignment misses a
	// parent or names a value outside its domain.
	ErrUnknownParent = errors.New("cpt: parent assignment incomplete")
)
