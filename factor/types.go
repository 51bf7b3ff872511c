// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvbayes/variable"
)

// Factor is an immutable dense table over an ordered scope of variables.
type Factor struct {
	scope  []*variable.RandomVariable // ordered, distinct by name
	dims   []int                      // dims[i] == scope[i].Size()
	pos    map[string]int             // name → axis
	values []float64                  // len == volume(dims)
}

// New creates a Factor over scope with the given row-major values.
// The values slice is copied; the caller keeps ownership of its argument.
//
// Errors: ErrNilVariable, ErrDuplicateVariable, ErrShapeMismatch.
// Complexity: O(|scope| + len(values)).
func New(scope []*variable.RandomVariable, values []float64) (*Factor, error) {
	f, err := shell(scope)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if want := volume(f.dims); len(values) != want {
		return nil, fmt.Errorf("New: got %d values, want %d: %w", len(values), want, ErrShapeMismatch)
	}
	f.values = make([]float64, len(values))
	copy(f.values, values)

	return f, nil
}

// Identity returns the multiplicative identity: empty scope, values [1.0].
// Each call returns a fresh factor; there is no shared instance.
func Identity() *Factor {
	return &Factor{pos: map[string]int{}, values: []float64{1}}
}

// shell validates scope and returns a Factor with scope/dims/pos populated
// and no values.
func shell(scope []*variable.RandomVariable) (*Factor, error) {
	f := &Factor{
		scope: make([]*variable.RandomVariable, len(scope)),
		dims:  make([]int, len(scope)),
		pos:   make(map[string]int, len(scope)),
	}
	for i, v := range scope {
		if v == nil {
			return nil, fmt.Errorf("scope[%d]: %w", i, ErrNilVariable)
		}
		if _, dup := f.pos[v.Name()]; dup {
			return nil, fmt.Errorf("%q: %w", v.Name(), ErrDuplicateVariable)
		}
		f.scope[i] = v
		f.dims[i] = v.Size()
		f.pos[v.Name()] = i
	}

	return f, nil
}

// volume is Π dims, with the empty product equal to 1.
// combin.Card returns 0 for an empty shape, which is wrong for a scalar factor.
func volume(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}

	return n
}

// strides returns the row-major stride of every axis.
func strides(dims []int) []int {
	s := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= dims[i]
	}

	return s
}

// offset maps a full subscript to its flat index.
func (f *Factor) offset(sub []int) int {
	if len(f.dims) == 0 {
		return 0
	}

	return combin.IdxFor(sub, f.dims)
}

// subscript maps a flat index back to a subscript.
func (f *Factor) subscript(idx int) []int {
	if len(f.dims) == 0 {
		return nil
	}

	return combin.SubFor(nil, idx, f.dims)
}

// Scope returns a copy of the ordered scope.
func (f *Factor) Scope() []*variable.RandomVariable {
	out := make([]*variable.RandomVariable, len(f.scope))
	copy(out, f.scope)

	return out
}

// Names returns the scope variable names in order.
func (f *Factor) Names() []string { return variable.Names(f.scope) }

// Contains reports whether name is in the scope.
func (f *Factor) Contains(name string) bool {
	_, ok := f.pos[name]

	return ok
}

// Size is the number of entries, Π|dom(v)|.
func (f *Factor) Size() int { return len(f.values) }

// Values returns a copy of the row-major value vector.
func (f *Factor) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// Sum returns the total mass of the factor.
func (f *Factor) Sum() float64 { return floats.Sum(f.values) }

// ValueOf returns the entry addressed by a. The assignment must give a value
// for every scope variable and nothing else; key order is irrelevant.
//
// Errors: ErrOutOfScope, ErrValueNotInDomain.
func (f *Factor) ValueOf(a variable.Assignment) (float64, error) {
	sub := make([]int, len(f.scope))
	for i, v := range f.scope {
		val, ok := a[v.Name()]
		if !ok {
			return 0, fmt.Errorf("ValueOf: missing %q: %w", v.Name(), ErrOutOfScope)
		}
		idx, ok := v.IndexOf(val)
		if !ok {
			return 0, fmt.Errorf("ValueOf: %s=%v: %w", v.Name(), val, ErrValueNotInDomain)
		}
		sub[i] = idx
	}
	if len(a) != len(f.scope) {
		for name := range a {
			if !f.Contains(name) {
				return 0, fmt.Errorf("ValueOf: foreign %q: %w", name, ErrOutOfScope)
			}
		}
	}

	return f.values[f.offset(sub)], nil
}

// At returns the assignment addressed by flat index idx together with its
// value. It panics if idx is out of range.
func (f *Factor) At(idx int) (variable.Assignment, float64) {
	sub := f.subscript(idx)
	a := make(variable.Assignment, len(f.scope))
	for i, v := range f.scope {
		a[v.Name()] = v.ValueAt(sub[i])
	}

	return a, f.values[idx]
}

// ApproxEqual reports whether f and other have the same scope order and
// values equal within tol.
func (f *Factor) ApproxEqual(other *Factor, tol float64) bool {
	if other == nil || len(f.scope) != len(other.scope) {
		return false
	}
	for i := range f.scope {
		if !f.scope[i].Same(other.scope[i]) {
			return false
		}
	}

	return floats.EqualApprox(f.values, other.values, tol)
}

// String renders the factor as Factor(A,B)[v0 v1 ...].
func (f *Factor) String() string {
	var sb strings.Builder
	sb.WriteString("Factor(")
	sb.WriteString(strings.Join(f.Names(), ","))
	sb.WriteString(")[")
	for i, v := range f.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')

	return sb.String()
}
