// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/variable"
)

// PointwiseProductOrdered multiplies f with others and lays the result out
// in exactly the given variable order. order must be a permutation of the
// union of all operand scopes.
//
// This is the primitive every caller that depends on output layout uses.
// Entry (x) of the result is Π f_k(x restricted to scope(f_k)).
//
// Errors: ErrNilFactor, ErrNilVariable, ErrDuplicateVariable,
// ErrOrderMismatch, ErrDomainMismatch.
func (f *Factor) PointwiseProductOrdered(order []*variable.RandomVariable, others ...*Factor) (*Factor, error) {
	operands := make([]*Factor, 0, len(others)+1)
	operands = append(operands, f)
	operands = append(operands, others...)

	out, err := productOrdered(order, operands)
	if err != nil {
		return nil, fmt.Errorf("PointwiseProductOrdered: %w", err)
	}

	return out, nil
}

// PointwiseProduct multiplies f with others using the default order:
// f's scope followed by each other operand's new variables, each side
// keeping its internal order.
func (f *Factor) PointwiseProduct(others ...*Factor) (*Factor, error) {
	operands := make([]*Factor, 0, len(others)+1)
	operands = append(operands, f)
	operands = append(operands, others...)

	order, err := unionOrder(operands)
	if err != nil {
		return nil, fmt.Errorf("PointwiseProduct: %w", err)
	}
	out, err := productOrdered(order, operands)
	if err != nil {
		return nil, fmt.Errorf("PointwiseProduct: %w", err)
	}

	return out, nil
}

// Product multiplies all factors in default order. Product() is Identity().
func Product(factors ...*Factor) (*Factor, error) {
	if len(factors) == 0 {
		return Identity(), nil
	}
	if factors[0] == nil {
		return nil, fmt.Errorf("Product: operand 0: %w", ErrNilFactor)
	}

	return factors[0].PointwiseProduct(factors[1:]...)
}

// Reorder returns f with its scope laid out in order (a permutation of
// f's scope). It is the product of f with the identity factor.
func (f *Factor) Reorder(order []*variable.RandomVariable) (*Factor, error) {
	return Identity().PointwiseProductOrdered(order, f)
}

// unionOrder computes the default product order and checks that
// same-named variables agree on domain size.
func unionOrder(operands []*Factor) ([]*variable.RandomVariable, error) {
	var order []*variable.RandomVariable
	seen := make(map[string]int)
	for k, op := range operands {
		if op == nil {
			return nil, fmt.Errorf("operand %d: %w", k, ErrNilFactor)
		}
		for _, v := range op.scope {
			if size, ok := seen[v.Name()]; ok {
				if size != v.Size() {
					return nil, fmt.Errorf("%q: %w", v.Name(), ErrDomainMismatch)
				}
				continue
			}
			seen[v.Name()] = v.Size()
			order = append(order, v)
		}
	}

	return order, nil
}

// productOrdered is the shared product kernel.
func productOrdered(order []*variable.RandomVariable, operands []*Factor) (*Factor, error) {
	// 1) Validate the requested layout.
	out, err := shell(order)
	if err != nil {
		return nil, err
	}

	// 2) Every operand variable must appear in order with the same domain
	//    size, and order must not introduce variables no operand has.
	covered := make(map[string]struct{}, len(order))
	for k, op := range operands {
		if op == nil {
			return nil, fmt.Errorf("operand %d: %w", k, ErrNilFactor)
		}
		for _, v := range op.scope {
			axis, ok := out.pos[v.Name()]
			if !ok {
				return nil, fmt.Errorf("%q missing from order: %w", v.Name(), ErrOrderMismatch)
			}
			if out.dims[axis] != v.Size() {
				return nil, fmt.Errorf("%q: %w", v.Name(), ErrDomainMismatch)
			}
			covered[v.Name()] = struct{}{}
		}
	}
	if len(covered) != len(order) {
		for _, v := range order {
			if _, ok := covered[v.Name()]; !ok {
				return nil, fmt.Errorf("%q in no operand: %w", v.Name(), ErrOrderMismatch)
			}
		}
	}

	// 3) Walk the result layout, tracking one offset per operand.
	names := out.Names()
	steps := make([][]int, len(operands))
	for k, op := range operands {
		steps[k] = projectStrides(op, names)
	}
	n := volume(out.dims)
	out.values = make([]float64, n)
	w := newWalker(out.dims, make([]int, len(operands)), steps)
	for idx := 0; idx < n; idx++ {
		p := 1.0
		for k, op := range operands {
			p *= op.values[w.offsets[k]]
		}
		out.values[idx] = p
		w.next()
	}

	return out, nil
}
