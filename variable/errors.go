// SPDX-License-Identifier: MIT

package variable

import "errors"

var (
	// ErrEmptyName indicates that a variable was created with an empty name.
	ErrEmptyName = errors.New("variable: name is empty")

	// ErrEmptyDomain indicates that a variable was created without values.
	ErrEmptyDomain = errors.New("variable: domain is empty")

	// ErrDuplicateValue indicates that a domain lists the same value twice.
	ErrDuplicateValue = errors.New("variable: duplicate domain value")

	// ErrIncomparableValue indicates a domain value of a non-comparable type
	// (slice, map, func); such values cannot index a domain.
	ErrIncomparableValue = errors.New("variable: domain value is not comparable")
)
