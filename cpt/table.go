// SPDX-License-Identifier: MIT

package cpt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/variable"
)

// Tolerance is the absolute slack allowed on each row sum.
const Tolerance = 1e-8

// Table is a validated conditional probability table P(owner | parents).
type Table struct {
	owner   *variable.RandomVariable
	parents []*variable.RandomVariable
	f       *factor.Factor
}

// New validates values and returns the table P(owner | parents).
// values are laid out row-major over parents ++ [owner].
//
// Stage 1 (Validate): nil checks and distinctness.
// Stage 2 (Shape):    len(values) must equal the table volume.
// Stage 3 (Rows):     each entry in [0,1], each row sums to 1 ± Tolerance.
//
// Complexity: O(len(values)).
func New(owner *variable.RandomVariable, values []float64, parents ...*variable.RandomVariable) (*Table, error) {
	if owner == nil {
		return nil, fmt.Errorf("New: owner: %w", ErrNilVariable)
	}
	scope := make([]*variable.RandomVariable, 0, len(parents)+1)
	rows := 1
	for i, p := range parents {
		if p == nil {
			return nil, fmt.Errorf("New(%s): parent %d: %w", owner.Name(), i, ErrNilVariable)
		}
		scope = append(scope, p)
		rows *= p.Size()
	}
	scope = append(scope, owner)

	width := owner.Size()
	if len(values) != rows*width {
		return nil, fmt.Errorf("New(%s): got %d values, want %d×%d: %w",
			owner.Name(), len(values), rows, width, ErrShapeMismatch)
	}
	for i := 0; i < rows; i++ {
		row := values[i*width : (i+1)*width]
		if err := checkRow(row); err != nil {
			return nil, fmt.Errorf("New(%s): row %d: %w", owner.Name(), i, err)
		}
	}

	f, err := factor.New(scope, values)
	if err != nil {
		if errors.Is(err, factor.ErrDuplicateVariable) {
			return nil, fmt.Errorf("New(%s): %w: %v", owner.Name(), ErrDuplicateVariable, err)
		}
		return nil, fmt.Errorf("New(%s): %w", owner.Name(), err)
	}

	return &Table{
		owner:   owner,
		parents: append([]*variable.RandomVariable(nil), parents...),
		f:       f,
	}, nil
}

// checkRow validates one conditional distribution.
func checkRow(row []float64) error {
	for _, p := range row {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1+Tolerance {
			return fmt.Errorf("entry %g: %w", p, ErrInvalidProbability)
		}
	}
	if sum := floats.Sum(row); !scalar.EqualWithinAbs(sum, 1, Tolerance) {
		return fmt.Errorf("sum %.12g: %w", sum, ErrRowDoesNotSumToOne)
	}

	return nil
}

// Owner returns the conditioned variable.
func (t *Table) Owner() *variable.RandomVariable { return t.owner }

// Parents returns a copy of the ordered parent list.
func (t *Table) Parents() []*variable.RandomVariable {
	return append([]*variable.RandomVariable(nil), t.parents...)
}

// Factor returns the underlying factor over parents ++ [owner]. Factors are
// immutable, so the returned value can be shared.
func (t *Table) Factor() *factor.Factor { return t.f }

// FactorFor returns the table's factor restricted to the evidence that
// falls inside its scope; evidence about other variables is ignored.
func (t *Table) FactorFor(evidence variable.Assignment) (*factor.Factor, error) {
	return t.f.Restrict(evidence)
}

// Probability returns P(owner=value | parents=given).
func (t *Table) Probability(value any, given variable.Assignment) (float64, error) {
	a := make(variable.Assignment, len(t.parents)+1)
	for _, p := range t.parents {
		v, ok := given[p.Name()]
		if !ok {
			return 0, fmt.Errorf("Probability(%s): missing %q: %w", t.owner.Name(), p.Name(), ErrUnknownParent)
		}
		a[p.Name()] = v
	}
	a[t.owner.Name()] = value

	return t.f.ValueOf(a)
}

// ConditionalRow returns P(owner | parents=given) as a fresh slice aligned
// with owner's domain. Entries of given for non-parents are ignored.
func (t *Table) ConditionalRow(given variable.Assignment) ([]float64, error) {
	base := 0
	for _, p := range t.parents {
		v, ok := given[p.Name()]
		if !ok {
			return nil, fmt.Errorf("ConditionalRow(%s): missing %q: %w", t.owner.Name(), p.Name(), ErrUnknownParent)
		}
		idx, ok := p.IndexOf(v)
		if !ok {
			return nil, fmt.Errorf("ConditionalRow(%s): %s=%v: %w", t.owner.Name(), p.Name(), v, ErrUnknownParent)
		}
		base = base*p.Size() + idx
	}
	width := t.owner.Size()
	all := t.f.Values()

	return all[base*width : (base+1)*width], nil
}

// String renders the table as P(Owner | P1,P2)[...].
func (t *Table) String() string {
	names := variable.Names(t.parents)
	head := "P(" + t.owner.Name()
	if len(names) > 0 {
		head += " | "
		for i, n := range names {
			if i > 0 {
				head += ","
			}
			head += n
		}
	}

	return fmt.Sprintf("%s)%v", head, t.f.Values())
}
