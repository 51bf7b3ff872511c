// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvbayes/variable"
)

// SumOut marginalizes vars out of f. The result's scope is f's scope minus
// vars, in f's order; each entry is the sum over every combination of the
// removed variables. Variables not in scope are ignored, so summing out only
// absent variables returns a factor equal to f.
func (f *Factor) SumOut(vars ...*variable.RandomVariable) *Factor {
	drop := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v != nil && f.Contains(v.Name()) {
			drop[v.Name()] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return f.clone()
	}

	// 1) Kept axes in f's order.
	kept := make([]*variable.RandomVariable, 0, len(f.scope)-len(drop))
	for _, v := range f.scope {
		if _, ok := drop[v.Name()]; !ok {
			kept = append(kept, v)
		}
	}
	out, _ := shell(kept) // kept is a sub-scope of a valid scope
	out.values = make([]float64, volume(out.dims))

	// 2) Walk f's layout sequentially; the walker tracks the target offset.
	w := newWalker(f.dims, []int{0}, [][]int{projectStrides(out, f.Names())})
	for idx := range f.values {
		out.values[w.offsets[0]] += f.values[idx]
		w.next()
	}

	return out
}

// Restrict fixes every evidence variable that is in f's scope to its
// observed value and drops that axis. Evidence about variables outside the
// scope is ignored; scope variables without evidence are retained as is.
//
// Errors: ErrValueNotInDomain if an in-scope evidence value is not in the
// variable's domain.
func (f *Factor) Restrict(evidence variable.Assignment) (*Factor, error) {
	own := strides(f.dims)
	base := 0
	kept := make([]*variable.RandomVariable, 0, len(f.scope))
	keptStrides := make([]int, 0, len(f.scope))
	for i, v := range f.scope {
		val, ok := evidence[v.Name()]
		if !ok {
			kept = append(kept, v)
			keptStrides = append(keptStrides, own[i])
			continue
		}
		idx, ok := v.IndexOf(val)
		if !ok {
			return nil, fmt.Errorf("Restrict: %s=%v: %w", v.Name(), val, ErrValueNotInDomain)
		}
		base += idx * own[i]
	}
	if len(kept) == len(f.scope) {
		return f.clone(), nil
	}

	out, _ := shell(kept)
	n := volume(out.dims)
	out.values = make([]float64, n)
	w := newWalker(out.dims, []int{base}, [][]int{keptStrides})
	for idx := 0; idx < n; idx++ {
		out.values[idx] = f.values[w.offsets[0]]
		w.next()
	}

	return out, nil
}

// Normalize returns f scaled so that its values sum to 1.
//
// Errors: ErrZeroSum when the total mass is zero, negative or not finite.
func (f *Factor) Normalize() (*Factor, error) {
	sum := floats.Sum(f.values)
	if !(sum > 0) || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("Normalize: sum=%g: %w", sum, ErrZeroSum)
	}
	out := f.clone()
	floats.Scale(1/sum, out.values)

	return out, nil
}

// clone copies f, including its value slice.
func (f *Factor) clone() *Factor {
	out := &Factor{
		scope:  make([]*variable.RandomVariable, len(f.scope)),
		dims:   make([]int, len(f.dims)),
		pos:    make(map[string]int, len(f.pos)),
		values: make([]float64, len(f.values)),
	}
	copy(out.scope, f.scope)
	copy(out.dims, f.dims)
	copy(out.values, f.values)
	for k, v := range f.pos {
		out.pos[k] = v
	}

	return out
}
