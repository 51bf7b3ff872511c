// SPDX-License-Identifier: MIT

package network_test

import (
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

func boolVar(name string) *variable.RandomVariable {
	return variable.MustNew(name, true, false)
}

// diamond builds A→B, A→C, B→D, C→D.
func diamond() (a, b, c, d *network.Node) {
	a = network.MustNewNode(boolVar("A"), []float64{0.3, 0.7})
	b = network.MustNewNode(boolVar("B"), []float64{0.9, 0.1, 0.2, 0.8}, a)
	c = network.MustNewNode(boolVar("C"), []float64{0.4, 0.6, 0.5, 0.5}, a)
	d = network.MustNewNode(boolVar("D"), []float64{
		0.99, 0.01,
		0.8, 0.2,
		0.7, 0.3,
		0.05, 0.95,
	}, b, c)

	return a, b, c, d
}

// positions maps node names to their index in order.
func positions(order []*network.Node) map[string]int {
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n.Name()] = i
	}

	return pos
}
