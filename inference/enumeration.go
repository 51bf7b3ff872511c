// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// EnumerationAsk answers queries by summing the full joint distribution
// over every hidden variable. It shares validation and error semantics with
// EliminationAsk and serves as its reference.
//
// Complexity: O(n · Π|domain(query)| · Π|domain(hidden)|).
type EnumerationAsk struct{}

// Ask implements Inferencer.
func (EnumerationAsk) Ask(
	ctx context.Context,
	query []*variable.RandomVariable,
	evidence []variable.Observation,
	bn *network.Network,
) (*Distribution, error) {
	q, err := prepare(query, evidence, bn)
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %w", err)
	}

	// A zero factor over the query enumerates its assignments row-major.
	size := 1
	for _, v := range q.query {
		size *= v.Size()
	}
	grid, err := factor.New(q.query, make([]float64, size))
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %w", err)
	}

	nodes := bn.TopologicalOrder()
	values := make([]float64, 0, size)
	var walkErr error
	err = grid.Iterate(func(x variable.Assignment, _ float64) {
		if walkErr != nil {
			return
		}
		if walkErr = ctx.Err(); walkErr != nil {
			return
		}
		asg := q.evidence.Clone()
		for name, val := range x {
			if obs, ok := asg[name]; ok && obs != val {
				values = append(values, 0)
				return
			}
			asg[name] = val
		}
		var p float64
		p, walkErr = enumerateAll(nodes, asg)
		values = append(values, p)
	}, nil)
	if err == nil {
		err = walkErr
	}
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %w", err)
	}

	joint, err := factor.New(q.query, values)
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %w", err)
	}
	d, err := newDistribution(joint)
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %v: %w", q.evidence, err)
	}

	return d, nil
}

// enumerateAll returns Σ over unassigned nodes of Π P(node | parents),
// extending asg in place and restoring it before returning.
func enumerateAll(nodes []*network.Node, asg variable.Assignment) (float64, error) {
	if len(nodes) == 0 {
		return 1, nil
	}
	n, rest := nodes[0], nodes[1:]
	table := n.CPT()

	if val, ok := asg[n.Name()]; ok {
		p, err := table.Probability(val, asg)
		if err != nil || p == 0 {
			return 0, err
		}
		tail, err := enumerateAll(rest, asg)

		return p * tail, err
	}

	sum := 0.0
	for _, val := range n.Variable().Domain() {
		p, err := table.Probability(val, asg)
		if err != nil {
			return 0, err
		}
		if p == 0 {
			continue
		}
		asg[n.Name()] = val
		tail, err := enumerateAll(rest, asg)
		delete(asg, n.Name())
		if err != nil {
			return 0, err
		}
		sum += p * tail
	}

	return sum, nil
}
