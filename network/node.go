// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/cpt"
	"github.com/katalvlaran/lvbayes/variable"
)

// Kind tags the node variant.
type Kind uint8

const (
	// KindFiniteDiscrete is a node over a finite discrete variable with a
	// tabular CPT.
	KindFiniteDiscrete Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindFiniteDiscrete:
		return "finite-discrete"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a vertex of a Bayesian network. Its identity is its variable name.
type Node struct {
	kind     Kind
	variable *variable.RandomVariable
	parents  []*Node
	children []*Node // appended by NewNode of each child
	table    *cpt.Table
}

// NewNode creates a finite discrete node for v with CPT values laid out over
// parents ++ [v] (see package cpt), and registers the node as a child of
// each parent.
//
// Errors: ErrNilNode, ErrDuplicateVariable, and the cpt validation errors.
// On error no parent is modified.
func NewNode(v *variable.RandomVariable, values []float64, parents ...*Node) (*Node, error) {
	parentVars := make([]*variable.RandomVariable, len(parents))
	seen := make(map[string]struct{}, len(parents))
	for i, p := range parents {
		if p == nil {
			return nil, fmt.Errorf("NewNode: parent %d: %w", i, ErrNilNode)
		}
		if _, dup := seen[p.Name()]; dup {
			return nil, fmt.Errorf("NewNode: parent %q: %w", p.Name(), ErrDuplicateVariable)
		}
		seen[p.Name()] = struct{}{}
		parentVars[i] = p.variable
	}

	table, err := cpt.New(v, values, parentVars...)
	if err != nil {
		return nil, fmt.Errorf("NewNode: %w", err)
	}

	n := &Node{
		kind:     KindFiniteDiscrete,
		variable: v,
		parents:  append([]*Node(nil), parents...),
		table:    table,
	}
	for _, p := range parents {
		p.children = append(p.children, n)
	}

	return n, nil
}

// MustNewNode is like NewNode but panics on error; for fixtures.
func MustNewNode(v *variable.RandomVariable, values []float64, parents ...*Node) *Node {
	n, err := NewNode(v, values, parents...)
	if err != nil {
		panic(err)
	}

	return n
}

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// Variable returns the node's random variable.
func (n *Node) Variable() *variable.RandomVariable { return n.variable }

// Name returns the variable name, or "" for a node without a variable.
func (n *Node) Name() string {
	if n.variable == nil {
		return ""
	}

	return n.variable.Name()
}

// CPT returns the node's conditional probability table.
func (n *Node) CPT() *cpt.Table { return n.table }

// Parents returns a copy of the ordered parent list.
func (n *Node) Parents() []*Node { return append([]*Node(nil), n.parents...) }

// Children returns a copy of the children registered so far. A built
// Network keeps its own snapshot; see Network.ChildrenOf.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// IsRoot reports whether the node has no parents.
func (n *Node) IsRoot() bool { return len(n.parents) == 0 }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s)", n.Name())
}
