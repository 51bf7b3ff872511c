// SPDX-License-Identifier: MIT

package sampling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/cpt"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// Draw returns index i with probability weights[i] / Σ weights, by inverse
// CDF on one draw from src. Weights need not be normalized.
//
// Errors: ErrNilSource, ErrZeroWeight, ErrSourceRange.
func Draw(weights []float64, src Source) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("Draw: weight %d = %g: %w", i, w, ErrZeroWeight)
		}
	}
	total := floats.Sum(weights)
	if !(total > 0) {
		return 0, fmt.Errorf("Draw: %w", ErrZeroWeight)
	}
	u := src.Float64()
	if u < 0 || u >= 1 || math.IsNaN(u) {
		return 0, fmt.Errorf("Draw: %g: %w", u, ErrSourceRange)
	}

	target := u * total
	last, acc := 0, 0.0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if target < acc {
			return i, nil
		}
	}

	// Rounding left target at or past the running total.
	return last, nil
}

// Sample draws a value of table's owner from P(owner | parents = given).
// Entries of given for non-parents are ignored.
func Sample(table *cpt.Table, given variable.Assignment, src Source) (any, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	row, err := table.ConditionalRow(given)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	i, err := Draw(row, src)
	if err != nil {
		return nil, fmt.Errorf("Sample(%s): %w", table.Owner().Name(), err)
	}

	return table.Owner().ValueAt(i), nil
}

// PriorSample draws one complete assignment from the network's joint
// distribution, parents before children.
func PriorSample(bn *network.Network, src Source) (variable.Assignment, error) {
	if bn == nil {
		return nil, ErrNilNetwork
	}
	out := make(variable.Assignment, bn.Len())
	for _, n := range bn.TopologicalOrder() {
		v, err := Sample(n.CPT(), out, src)
		if err != nil {
			return nil, fmt.Errorf("PriorSample: %w", err)
		}
		out[n.Name()] = v
	}

	return out, nil
}

// BlanketConditional returns P(name | mb(name)) aligned with the variable's
// domain, where the blanket values are read from state. Only the blanket is
// consulted: P(x | mb) ∝ P(x | parents) · Π_c P(c | parents(c)).
//
// Errors: ErrNilNetwork, ErrUnknownVariable, ErrMissingValue when state
// lacks a blanket variable, ErrZeroWeight when every value is impossible
// given the blanket.
func BlanketConditional(bn *network.Network, name string, state variable.Assignment) ([]float64, error) {
	if bn == nil {
		return nil, ErrNilNetwork
	}
	node, ok := bn.Node(name)
	if !ok {
		return nil, fmt.Errorf("BlanketConditional(%q): %w", name, ErrUnknownVariable)
	}
	blanket, err := bn.MarkovBlanket(name)
	if err != nil {
		return nil, fmt.Errorf("BlanketConditional(%q): %w", name, err)
	}
	for _, b := range blanket {
		if _, ok := state[b.Name()]; !ok {
			return nil, fmt.Errorf("BlanketConditional(%q): %q: %w", name, b.Name(), ErrMissingValue)
		}
	}

	asg := state.Clone()
	domain := node.Variable().Domain()
	weights := make([]float64, len(domain))
	for i, x := range domain {
		asg[name] = x
		w, err := node.CPT().Probability(x, asg)
		if err != nil {
			return nil, fmt.Errorf("BlanketConditional(%q): %w", name, err)
		}
		for _, c := range bn.ChildrenOf(name) {
			if w == 0 {
				break
			}
			p, err := c.CPT().Probability(asg[c.Name()], asg)
			if err != nil {
				return nil, fmt.Errorf("BlanketConditional(%q): %w", name, err)
			}
			w *= p
		}
		weights[i] = w
	}

	total := floats.Sum(weights)
	if !(total > 0) {
		return nil, fmt.Errorf("BlanketConditional(%q): %w", name, ErrZeroWeight)
	}
	floats.Scale(1/total, weights)

	return weights, nil
}
