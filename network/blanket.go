// SPDX-License-Identifier: MIT

package network

import "fmt"

// MarkovBlanket returns the parents of name, its children, and its
// children's other parents, each once, in that order. It is the
// conditioning set a Gibbs-style sampler needs for name.
func (bn *Network) MarkovBlanket(name string) ([]*Node, error) {
	n, ok := bn.byName[name]
	if !ok {
		return nil, fmt.Errorf("MarkovBlanket(%q): %w", name, ErrUnknownVariable)
	}

	seen := map[string]struct{}{name: {}}
	var out []*Node
	add := func(m *Node) {
		if _, dup := seen[m.Name()]; dup {
			return
		}
		seen[m.Name()] = struct{}{}
		out = append(out, m)
	}

	for _, p := range n.parents {
		add(p)
	}
	kids := bn.children[name]
	for _, c := range kids {
		add(c)
	}
	for _, c := range kids {
		for _, p := range c.parents {
			add(p)
		}
	}

	return out, nil
}
