// SPDX-License-Identifier: MIT

// Package inference answers exact queries P(X | e) against a validated
// network.Network.
//
// What:
//
//   - EliminationAsk: variable elimination. Variables are processed in an
//     elimination order (default: reverse topological); each contributes its
//     evidence-restricted CPT factor, and hidden variables are summed out of
//     the product of the factors that mention them. The final product is laid
//     out in query order by multiplying with a locally built identity factor,
//     then normalized.
//   - EnumerationAsk: full joint enumeration. Exponential in the number of
//     hidden variables; kept as a reference implementation and test oracle.
//   - Distribution: the normalized result over exactly the query variables.
//   - AskAll: fan a batch of queries out over one network with errgroup.
//
// Concurrency:
//
//	A Network is immutable and Ask never writes through Node or CPT values;
//	every call owns the factors it creates. Concurrent Ask calls on one
//	network, and on one EliminationAsk value, need no locking.
//
// Observability:
//
//	EliminationAsk opens one OpenTelemetry span per Ask (global tracer
//	provider unless WithTracer is given) and logs elimination steps at Debug
//	level through log/slog (discarded unless WithLogger is given).
//
// Errors:
//
//   - ErrNilNetwork            nil network
//   - ErrNoQueryVariables      empty query list
//   - ErrDuplicateVariable     a variable repeated in the query or in evidence
//   - ErrUnknownVariable       query/evidence variable not in the network
//   - ErrValueNotInDomain      evidence value outside the variable's domain
//   - ErrInconsistentEvidence  evidence with zero probability
//   - ErrInvalidOrdering       a custom Ordering broke the elimination contract
package inference
