// SPDX-License-Identifier: MIT

package inference

import "errors"

var (
	// ErrNilNetwork indicates a nil *network.Network.
	ErrNilNetwork = errors.New("inference: nil network")

	// ErrNoQueryVariables indicates an empty query list.
	ErrNoQueryVariables = errors.New("inference: no query variables")

	// ErrDuplicateVariable indicates a variable listed twice in the query or
	// twice in the evidence.
	ErrDuplicateVariable = errors.New("inference: duplicate variable")

	// ErrUnknownVariable indicates a query or evidence variable that is not
	// part of the network (or disagrees with the network's domain for it).
	ErrUnknownVariable = errors.New("inference: unknown variable")

	// ErrValueNotInDomain indicates an evidence value outside its variable's
	// domain.
	ErrValueNotInDomain = errors.New("inference: value not in domain")

	// ErrInconsistentEvidence indicates evidence whose joint probability is
	// zero, so no posterior exists.
	ErrInconsistentEvidence = errors.New("inference: inconsistent evidence")

	// ErrInvalidOrdering indicates that an Ordering returned a sequence that
	// is not a permutation of the retained variables, or that places a
	// variable before one of its children.
	ErrInvalidOrdering = errors.New("inference: invalid elimination ordering")
)

// queryKinds lists the errors that depend on a specific query.
var queryKinds = []error{
	ErrNilNetwork,
	ErrNoQueryVariables,
	ErrDuplicateVariable,
	ErrUnknownVariable,
	ErrValueNotInDomain,
	ErrInconsistentEvidence,
}

// IsQueryError reports whether err was caused by the query or evidence
// rather than by the network or the algorithm configuration.
func IsQueryError(err error) bool {
	for _, kind := range queryKinds {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
