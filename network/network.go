// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvbayes/variable"
)

// Network is a validated, immutable Bayesian network.
type Network struct {
	roots    []*Node
	order    []*Node            // topological: parents first
	byName   map[string]*Node   // variable name → node
	position map[string]int     // variable name → index in order
	children map[string][]*Node // child lists as of Build
}

// Build validates the network reachable from roots and returns it.
//
// Stage 1 (Roots):    non-empty, non-nil, parentless, distinct names.
// Stage 2 (Traverse): DFS over child links from each root in order.
// Stage 3 (Acyclic):  the same DFS rejects edges into the active path.
// Stage 4 (CPTs):     every node has a CPT over exactly its parents, and
// every parent is itself part of the network.
// Stage 5 (Order):    reverse post-order becomes the topological order.
//
// Complexity: O(V + E + Σ|CPT parents|).
func Build(roots ...*Node) (*Network, error) {
	// 1. Roots.
	if len(roots) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoRoots)
	}
	seen := make(map[string]struct{}, len(roots))
	for i, r := range roots {
		if r == nil {
			return nil, fmt.Errorf("Build: root %d: %w", i, ErrNilNode)
		}
		if _, dup := seen[r.Name()]; dup {
			return nil, fmt.Errorf("Build: %q: %w", r.Name(), ErrDuplicateRootVariable)
		}
		seen[r.Name()] = struct{}{}
		if !r.IsRoot() {
			return nil, fmt.Errorf("Build: %q: %w", r.Name(), ErrNotRoot)
		}
	}

	// 2–3. Reachability and acyclicity in one traversal.
	sorter := newTopoSorter()
	for _, r := range roots {
		if err := sorter.visit(r); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// 4. Every reachable node must be complete.
	for _, n := range sorter.order {
		if err := checkNode(n, sorter.byName); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// 5. Snapshot.
	bn := &Network{
		roots:    append([]*Node(nil), roots...),
		order:    sorter.topological(),
		byName:   sorter.byName,
		position: make(map[string]int, len(sorter.order)),
		children: make(map[string][]*Node, len(sorter.order)),
	}
	for i, n := range bn.order {
		bn.position[n.Name()] = i
		bn.children[n.Name()] = append([]*Node(nil), n.children...)
	}

	return bn, nil
}

// checkNode validates one reachable node against the reachable set.
func checkNode(n *Node, reachable map[string]*Node) error {
	if n.kind != KindFiniteDiscrete || n.variable == nil || n.table == nil {
		return fmt.Errorf("%q: %w", n.Name(), ErrMissingCPT)
	}
	if !n.table.Owner().Same(n.variable) {
		return fmt.Errorf("%q: CPT owned by %q: %w", n.Name(), n.table.Owner().Name(), ErrMissingCPT)
	}
	declared := make([]string, len(n.parents))
	for i, p := range n.parents {
		if p == nil {
			return fmt.Errorf("%q: parent %d: %w", n.Name(), i, ErrNilNode)
		}
		declared[i] = p.Name()
		if reachable[p.Name()] != p {
			return fmt.Errorf("%q: parent %q: %w", n.Name(), p.Name(), ErrUnreachableParent)
		}
	}
	if got := variable.Names(n.table.Parents()); !slices.Equal(got, declared) {
		return fmt.Errorf("%q: CPT conditions on %v, parents are %v: %w", n.Name(), got, declared, ErrMissingCPT)
	}

	return nil
}

// Len returns the number of nodes.
func (bn *Network) Len() int { return len(bn.order) }

// Roots returns the root nodes in the order given to Build.
func (bn *Network) Roots() []*Node { return append([]*Node(nil), bn.roots...) }

// TopologicalOrder returns all nodes, every parent before its children.
func (bn *Network) TopologicalOrder() []*Node { return append([]*Node(nil), bn.order...) }

// Variables returns all variables in topological order.
func (bn *Network) Variables() []*variable.RandomVariable {
	out := make([]*variable.RandomVariable, len(bn.order))
	for i, n := range bn.order {
		out[i] = n.variable
	}

	return out
}

// Node returns the node for name.
func (bn *Network) Node(name string) (*Node, bool) {
	n, ok := bn.byName[name]

	return n, ok
}

// Variable returns the network's variable named name.
func (bn *Network) Variable(name string) (*variable.RandomVariable, bool) {
	n, ok := bn.byName[name]
	if !ok {
		return nil, false
	}

	return n.variable, true
}

// Contains reports whether name is a network variable.
func (bn *Network) Contains(name string) bool {
	_, ok := bn.byName[name]

	return ok
}

// Position returns name's index in TopologicalOrder.
func (bn *Network) Position(name string) (int, bool) {
	i, ok := bn.position[name]

	return i, ok
}

// ChildrenOf returns the children of name as recorded at Build time.
func (bn *Network) ChildrenOf(name string) []*Node {
	return append([]*Node(nil), bn.children[name]...)
}
