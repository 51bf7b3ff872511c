// SPDX-License-Identifier: MIT

package network

import "fmt"

// Visitation states for the validating DFS.
const (
	white = iota // not visited yet
	gray         // on the active path
	black        // node and all its descendants finished
)

// topoSorter walks child links depth-first, rejecting cycles and recording
// post-order. state and path are path-local in the sense that matters: a
// node is only a cycle witness while it is Gray, i.e. on the current path.
type topoSorter struct {
	state  map[string]int   // visitation state per variable name
	byName map[string]*Node // first node seen for each name
	path   []*Node          // active DFS path
	order  []*Node          // post-order
}

func newTopoSorter() *topoSorter {
	return &topoSorter{
		state:  make(map[string]int),
		byName: make(map[string]*Node),
	}
}

// visit explores n and its descendants.
func (t *topoSorter) visit(n *Node) error {
	// 1. Identity: one node per variable name.
	name := n.Name()
	if prev, ok := t.byName[name]; ok && prev != n {
		return fmt.Errorf("%q: %w", name, ErrDuplicateVariable)
	}
	t.byName[name] = n

	// 2. Gray means n is already on the active path: back-edge.
	switch t.state[name] {
	case gray:
		return &CycleError{Path: t.cycleFrom(name)}
	case black:
		return nil
	}

	// 3. Descend through children in declaration order.
	t.state[name] = gray
	t.path = append(t.path, n)
	for _, c := range n.children {
		if c == nil {
			return fmt.Errorf("child of %q: %w", name, ErrNilNode)
		}
		if err := t.visit(c); err != nil {
			return err
		}
	}

	// 4. Backtrack.
	t.path = t.path[:len(t.path)-1]
	t.state[name] = black
	t.order = append(t.order, n)

	return nil
}

// cycleFrom returns the active path from the Gray node name back to itself.
func (t *topoSorter) cycleFrom(name string) []string {
	start := 0
	for i, n := range t.path {
		if n.Name() == name {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(t.path)-start+1)
	for _, n := range t.path[start:] {
		cycle = append(cycle, n.Name())
	}

	return append(cycle, name)
}

// topological returns the reverse post-order: parents before children.
func (t *topoSorter) topological() []*Node {
	out := make([]*Node, len(t.order))
	for i, n := range t.order {
		out[len(t.order)-1-i] = n
	}

	return out
}
