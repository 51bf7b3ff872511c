// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// Plan describes one Ask to an Ordering.
type Plan struct {
	Network  *network.Network
	Retained []*network.Node     // variables taking part, topological order
	Hidden   map[string]bool     // retained variables that are summed out
	Evidence variable.Assignment // observed values
}

// Ordering chooses the sequence in which retained variables are processed.
//
// Contract: the result is a permutation of Plan.Retained in which every
// variable comes after all of its retained children. Processing a variable
// then never sums out an axis that a later CPT factor still needs, so the
// answer is independent of the order; only intermediate factor sizes
// change.
type Ordering interface {
	Order(p Plan) []*network.Node
}

// ReverseTopological processes children before parents, in exact reverse
// of the network's topological order.
type ReverseTopological struct{}

// Order implements Ordering.
func (ReverseTopological) Order(p Plan) []*network.Node {
	out := make([]*network.Node, len(p.Retained))
	for i, n := range p.Retained {
		out[len(out)-1-i] = n
	}

	return out
}

// MinFactorSize greedily picks, among variables whose retained children are
// all processed, the one whose elimination creates the smallest factor.
// Observed and query variables cost nothing since they are never summed
// out. Ties go to the variable latest in topological order, so on networks
// where every choice costs the same it matches ReverseTopological.
//
// Complexity: O(V² · F) where F is the number of pending factors.
type MinFactorSize struct{}

// Order implements Ordering.
func (MinFactorSize) Order(p Plan) []*network.Node {
	retained := make(map[string]bool, len(p.Retained))
	for _, n := range p.Retained {
		retained[n.Name()] = true
	}
	// pending[v] = retained children of v not yet processed.
	pending := make(map[string]int, len(p.Retained))
	for _, n := range p.Retained {
		for _, c := range p.Network.ChildrenOf(n.Name()) {
			if retained[c.Name()] {
				pending[n.Name()]++
			}
		}
	}

	// Simulated factor scopes; evidence axes never appear.
	var scopes []map[string]int
	done := make(map[string]bool, len(p.Retained))
	out := make([]*network.Node, 0, len(p.Retained))
	for len(out) < len(p.Retained) {
		var pick *network.Node
		best := -1
		for i := len(p.Retained) - 1; i >= 0; i-- {
			n := p.Retained[i]
			if done[n.Name()] || pending[n.Name()] > 0 {
				continue
			}
			c := 0
			if p.Hidden[n.Name()] {
				c = eliminationCost(n, scopes, p.Evidence)
			}
			if best < 0 || c < best {
				pick, best = n, c
			}
		}

		scopes = simulate(pick, scopes, p)
		done[pick.Name()] = true
		out = append(out, pick)
		for _, parent := range pick.Parents() {
			pending[parent.Name()]--
		}
	}

	return out
}

// cptScope returns n's CPT scope without observed variables, as name → size.
func cptScope(n *network.Node, evidence variable.Assignment) map[string]int {
	s := make(map[string]int)
	for _, v := range n.CPT().Factor().Scope() {
		if _, ok := evidence[v.Name()]; !ok {
			s[v.Name()] = v.Size()
		}
	}

	return s
}

// eliminationCost is the size of the factor left after summing n out of
// the product of every factor mentioning it, n's own CPT factor included.
func eliminationCost(n *network.Node, scopes []map[string]int, evidence variable.Assignment) int {
	union := cptScope(n, evidence)
	for _, s := range scopes {
		if _, ok := s[n.Name()]; ok {
			for k, v := range s {
				union[k] = v
			}
		}
	}
	size := 1
	for k, v := range union {
		if k != n.Name() {
			size *= v
		}
	}

	return size
}

// simulate applies one processing step to the symbolic factor list.
func simulate(n *network.Node, scopes []map[string]int, p Plan) []map[string]int {
	scopes = append(scopes, cptScope(n, p.Evidence))
	if !p.Hidden[n.Name()] {
		return scopes
	}
	merged := make(map[string]int)
	rest := scopes[:0]
	for _, s := range scopes {
		if _, ok := s[n.Name()]; !ok {
			rest = append(rest, s)
			continue
		}
		for k, v := range s {
			merged[k] = v
		}
	}
	delete(merged, n.Name())

	return append(rest, merged)
}

// checkOrder verifies an Ordering result against its plan.
func checkOrder(p Plan, order []*network.Node) error {
	if len(order) != len(p.Retained) {
		return fmt.Errorf("got %d variables, want %d: %w", len(order), len(p.Retained), ErrInvalidOrdering)
	}
	want := make(map[string]*network.Node, len(p.Retained))
	for _, n := range p.Retained {
		want[n.Name()] = n
	}
	seen := make(map[string]bool, len(order))
	for i, n := range order {
		if n == nil || want[n.Name()] != n {
			return fmt.Errorf("position %d: %v not retained: %w", i, n, ErrInvalidOrdering)
		}
		if seen[n.Name()] {
			return fmt.Errorf("%q repeated: %w", n.Name(), ErrInvalidOrdering)
		}
		for _, c := range p.Network.ChildrenOf(n.Name()) {
			if _, ok := want[c.Name()]; ok && !seen[c.Name()] {
				return fmt.Errorf("%q before its child %q: %w", n.Name(), c.Name(), ErrInvalidOrdering)
			}
		}
		seen[n.Name()] = true
	}

	return nil
}
