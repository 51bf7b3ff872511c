// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/variable"
)

// Distribution is a categorical distribution over an ordered list of
// variables: a normalized factor whose scope is exactly that list. Values
// are aligned with the row-major cross product of the variables' domains.
type Distribution struct {
	f *factor.Factor
}

// newDistribution normalizes f, mapping an empty mass to
// ErrInconsistentEvidence.
func newDistribution(f *factor.Factor) (*Distribution, error) {
	n, err := f.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInconsistentEvidence, err)
	}

	return &Distribution{f: n}, nil
}

// Variables returns the distribution's variables in order.
func (d *Distribution) Variables() []*variable.RandomVariable { return d.f.Scope() }

// Values returns a copy of the probabilities in row-major order.
func (d *Distribution) Values() []float64 { return d.f.Values() }

// Factor returns the underlying normalized factor.
func (d *Distribution) Factor() *factor.Factor { return d.f }

// ValueOf returns the probability of a full assignment to the variables.
func (d *Distribution) ValueOf(a variable.Assignment) (float64, error) {
	return d.f.ValueOf(a)
}

// Marginal sums out every variable not named and returns the distribution
// over the named variables, in the order given.
func (d *Distribution) Marginal(names ...string) (*Distribution, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("Marginal: %w", ErrNoQueryVariables)
	}
	byName := make(map[string]*variable.RandomVariable)
	for _, v := range d.f.Scope() {
		byName[v.Name()] = v
	}
	keep := make([]*variable.RandomVariable, len(names))
	kept := make(map[string]struct{}, len(names))
	for i, name := range names {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("Marginal(%q): %w", name, ErrUnknownVariable)
		}
		if _, dup := kept[name]; dup {
			return nil, fmt.Errorf("Marginal(%q): %w", name, ErrDuplicateVariable)
		}
		kept[name] = struct{}{}
		keep[i] = v
	}
	var drop []*variable.RandomVariable
	for name, v := range byName {
		if _, ok := kept[name]; !ok {
			drop = append(drop, v)
		}
	}

	m, err := d.f.SumOut(drop...).Reorder(keep)
	if err != nil {
		return nil, fmt.Errorf("Marginal: %w", err)
	}

	return &Distribution{f: m}, nil
}

// MostLikely returns the first assignment (row-major) with maximal
// probability, and that probability.
func (d *Distribution) MostLikely() (variable.Assignment, float64) {
	vals := d.f.Values()
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}

	return d.f.At(best)
}

func (d *Distribution) String() string {
	return fmt.Sprintf("P(%v)%v", variable.Names(d.f.Scope()), d.f.Values())
}
