// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"
	"reflect"
	"strings"
)

// RandomVariable is a named discrete random variable with a finite, ordered
// domain. The zero value is not usable; construct with New or NewBoolean.
// A RandomVariable is never mutated after construction and may be shared
// freely across goroutines.
type RandomVariable struct {
	name   string
	domain []any       // ordered, distinct values
	index  map[any]int // value → position in domain
}

// New creates a RandomVariable named name whose domain is values, in order.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrEmptyDomain if no values are given.
//   - ErrIncomparableValue if a value cannot be a map key.
//   - ErrDuplicateValue if a value repeats.
//
// Complexity: O(|values|).
func New(name string, values ...any) (*RandomVariable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("New(%q): %w", name, ErrEmptyDomain)
	}

	rv := &RandomVariable{
		name:   name,
		domain: make([]any, len(values)),
		index:  make(map[any]int, len(values)),
	}
	for i, v := range values {
		if v == nil || !reflect.TypeOf(v).Comparable() {
			return nil, fmt.Errorf("New(%q): value #%d: %w", name, i, ErrIncomparableValue)
		}
		if _, dup := rv.index[v]; dup {
			return nil, fmt.Errorf("New(%q): value %v: %w", name, v, ErrDuplicateValue)
		}
		rv.domain[i] = v
		rv.index[v] = i
	}

	return rv, nil
}

// NewBoolean creates a variable with the domain [true, false].
// The true-first order matches the conventional layout of textbook CPTs.
func NewBoolean(name string) (*RandomVariable, error) {
	return New(name, true, false)
}

// MustNew is like New but panics on error. Intended for fixtures and
// package-level declarations with literal arguments.
func MustNew(name string, values ...any) *RandomVariable {
	rv, err := New(name, values...)
	if err != nil {
		panic(err)
	}

	return rv
}

// Name returns the variable's unique name.
func (rv *RandomVariable) Name() string { return rv.name }

// Size returns |domain|.
func (rv *RandomVariable) Size() int { return len(rv.domain) }

// Domain returns a copy of the ordered domain.
func (rv *RandomVariable) Domain() []any {
	out := make([]any, len(rv.domain))
	copy(out, rv.domain)

	return out
}

// IndexOf returns the position of value in the domain.
// Non-comparable values are reported as absent instead of panicking.
func (rv *RandomVariable) IndexOf(value any) (int, bool) {
	if value == nil || !reflect.TypeOf(value).Comparable() {
		return 0, false
	}
	i, ok := rv.index[value]

	return i, ok
}

// ValueAt returns the i-th domain value. It panics if i is out of range,
// mirroring slice indexing.
func (rv *RandomVariable) ValueAt(i int) any { return rv.domain[i] }

// Same reports whether rv and other denote the same variable (equal names).
func (rv *RandomVariable) Same(other *RandomVariable) bool {
	if rv == nil || other == nil {
		return rv == other
	}

	return rv.name == other.name
}

// String renders the variable as Name[v1,v2,...].
func (rv *RandomVariable) String() string {
	parts := make([]string, len(rv.domain))
	for i, v := range rv.domain {
		parts[i] = fmt.Sprint(v)
	}

	return rv.name + "[" + strings.Join(parts, ",") + "]"
}

// Names returns the names of vars in order.
func Names(vars []*RandomVariable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.name
	}

	return out
}
