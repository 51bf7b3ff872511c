// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// Inferencer answers P(query | evidence) on a network.
type Inferencer interface {
	Ask(ctx context.Context, query []*variable.RandomVariable, evidence []variable.Observation, bn *network.Network) (*Distribution, error)
}

// prepared is a validated query, expressed with the network's own
// variable values.
type prepared struct {
	query    []*variable.RandomVariable // network variables, caller order
	evidence variable.Assignment        // name → observed value
}

// prepare validates query and evidence against bn.
func prepare(query []*variable.RandomVariable, evidence []variable.Observation, bn *network.Network) (*prepared, error) {
	if bn == nil {
		return nil, ErrNilNetwork
	}
	if len(query) == 0 {
		return nil, ErrNoQueryVariables
	}

	p := &prepared{
		query:    make([]*variable.RandomVariable, len(query)),
		evidence: make(variable.Assignment, len(evidence)),
	}
	seen := make(map[string]struct{}, len(query))
	for i, q := range query {
		v, err := resolve(q, bn)
		if err != nil {
			return nil, fmt.Errorf("query[%d]: %w", i, err)
		}
		if _, dup := seen[v.Name()]; dup {
			return nil, fmt.Errorf("query %q: %w", v.Name(), ErrDuplicateVariable)
		}
		seen[v.Name()] = struct{}{}
		p.query[i] = v
	}

	for i, o := range evidence {
		v, err := resolve(o.Variable, bn)
		if err != nil {
			return nil, fmt.Errorf("evidence[%d]: %w", i, err)
		}
		if _, dup := p.evidence[v.Name()]; dup {
			return nil, fmt.Errorf("evidence %q: %w", v.Name(), ErrDuplicateVariable)
		}
		if _, ok := v.IndexOf(o.Value); !ok {
			return nil, fmt.Errorf("evidence %s=%v: %w", v.Name(), o.Value, ErrValueNotInDomain)
		}
		p.evidence[v.Name()] = o.Value
	}

	return p, nil
}

// resolve maps a caller variable onto the network's variable of that name.
func resolve(v *variable.RandomVariable, bn *network.Network) (*variable.RandomVariable, error) {
	if v == nil {
		return nil, fmt.Errorf("nil variable: %w", ErrUnknownVariable)
	}
	nv, ok := bn.Variable(v.Name())
	if !ok {
		return nil, fmt.Errorf("%q: %w", v.Name(), ErrUnknownVariable)
	}
	if nv.Size() != v.Size() {
		return nil, fmt.Errorf("%q: domain size %d, network has %d: %w", v.Name(), v.Size(), nv.Size(), ErrUnknownVariable)
	}

	return nv, nil
}

// pinned returns the query variables fixed by evidence, and the rest.
func (p *prepared) pinned() (free, fixed []*variable.RandomVariable) {
	for _, v := range p.query {
		if _, ok := p.evidence[v.Name()]; ok {
			fixed = append(fixed, v)
		} else {
			free = append(free, v)
		}
	}

	return free, fixed
}

// indicator returns the 0/1 factor over v that is 1 at value.
func indicator(v *variable.RandomVariable, value any) (*factor.Factor, error) {
	vals := make([]float64, v.Size())
	idx, _ := v.IndexOf(value)
	vals[idx] = 1

	return factor.New([]*variable.RandomVariable{v}, vals)
}
