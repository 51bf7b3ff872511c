// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/cpt"
)

var (
	// ErrNoRoots indicates that Build received no root nodes.
	ErrNoRoots = errors.New("network: no root nodes")

	// ErrNilNode indicates a nil *Node among roots or parents.
	ErrNilNode = errors.New("network: nil node")

	// ErrDuplicateRootVariable indicates two roots with the same variable name.
	ErrDuplicateRootVariable = errors.New("network: duplicate root variable")

	// ErrNotRoot indicates a node passed as root that has parents.
	ErrNotRoot = errors.New("network: root node has parents")

	// ErrCyclicNetwork indicates a directed cycle. Returned errors are
	// *CycleError values that unwrap to this sentinel.
	ErrCyclicNetwork = errors.New("network: cyclic network")

	// ErrMissingCPT indicates a reachable node whose CPT is absent or does
	// not condition on exactly its declared parents.
	ErrMissingCPT = errors.New("network: missing CPT")

	// ErrUnreachableParent indicates that a node's parent cannot be reached
	// from the supplied roots.
	ErrUnreachableParent = errors.New("network: parent not reachable from roots")

	// ErrDuplicateVariable indicates two distinct nodes (or declarations)
	// for one variable name.
	ErrDuplicateVariable = errors.New("network: duplicate variable")

	// ErrUnknownVariable indicates a lookup of a variable outside the network.
	ErrUnknownVariable = errors.New("network: unknown variable")
)

// CycleError reports a directed cycle. Path starts and ends at the same
// variable, e.g. [A B A].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicNetwork, strings.Join(e.Path, " -> "))
}

// Unwrap makes errors.Is(err, ErrCyclicNetwork) hold.
func (e *CycleError) Unwrap() error { return ErrCyclicNetwork }

// AsCycleError returns the *CycleError inside err, or nil.
func AsCycleError(err error) *CycleError {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce
	}

	return nil
}

// constructionKinds lists every sentinel that Build, Builder.Build or
// NewNode can return, including the CPT validation classes.
var constructionKinds = []error{
	ErrNoRoots,
	ErrNilNode,
	ErrDuplicateRootVariable,
	ErrNotRoot,
	ErrCyclicNetwork,
	ErrMissingCPT,
	ErrUnreachableParent,
	ErrDuplicateVariable,
	cpt.ErrShapeMismatch,
	cpt.ErrRowDoesNotSumToOne,
	cpt.ErrInvalidProbability,
	cpt.ErrDuplicateVariable,
	cpt.ErrNilVariable,
}

// IsConstructionError reports whether err is a structural or data error
// detected while building nodes or networks.
func IsConstructionError(err error) bool {
	for _, kind := range constructionKinds {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
