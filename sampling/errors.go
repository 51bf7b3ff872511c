// SPDX-License-Identifier: MIT

package sampling

import "errors"

var (
	// ErrNilSource indicates a nil Source.
	ErrNilSource = errors.New("sampling: nil source")

	// ErrNilTable indicates a nil CPT.
	ErrNilTable = errors.New("sampling: nil table")

	// ErrNilNetwork indicates a nil network.
	ErrNilNetwork = errors.New("sampling: nil network")

	// ErrSourceRange indicates a Source draw outside [0, 1).
	ErrSourceRange = errors.New("sampling: source value out of [0,1)")

	// ErrZeroWeight indicates weights with no positive mass, or an invalid
	// (negative, NaN or infinite) weight.
	ErrZeroWeight = errors.New("sampling: no positive weight")

	// ErrUnknownVariable indicates a variable that is not in the network.
	ErrUnknownVariable = errors.New("sampling: unknown variable")

	// ErrMissingValue indicates a state that does not assign a variable the
	// computation needs.
	ErrMissingValue = errors.New("sampling: missing value")
)
