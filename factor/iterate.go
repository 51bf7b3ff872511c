// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/variable"
)

// IterateFunc receives one full scope assignment and its entry. The
// assignment map is freshly allocated per call and may be retained.
type IterateFunc func(a variable.Assignment, value float64)

// Iterate calls fn once for every assignment to f's scope that is
// consistent with fixed, in row-major order (last scope variable fastest).
// fixed may be nil; entries for variables outside the scope are ignored.
//
// Errors: ErrValueNotInDomain if a fixed in-scope value is not in its domain.
func (f *Factor) Iterate(fn IterateFunc, fixed variable.Assignment) error {
	// 1) Split the scope into pinned and free axes.
	own := strides(f.dims)
	base := 0
	pinned := make(variable.Assignment, len(fixed))
	var free []*variable.RandomVariable
	var freeStrides []int
	for i, v := range f.scope {
		val, ok := fixed[v.Name()]
		if !ok {
			free = append(free, v)
			freeStrides = append(freeStrides, own[i])
			continue
		}
		idx, ok := v.IndexOf(val)
		if !ok {
			return fmt.Errorf("Iterate: %s=%v: %w", v.Name(), val, ErrValueNotInDomain)
		}
		pinned[v.Name()] = val
		base += idx * own[i]
	}

	// 2) Walk the free axes.
	dims := make([]int, len(free))
	for j, v := range free {
		dims[j] = v.Size()
	}
	n := volume(dims)
	w := newWalker(dims, []int{base}, [][]int{freeStrides})
	for step := 0; step < n; step++ {
		a := make(variable.Assignment, len(f.scope))
		for name, val := range pinned {
			a[name] = val
		}
		for j, v := range free {
			a[v.Name()] = v.ValueAt(w.sub[j])
		}
		fn(a, f.values[w.offsets[0]])
		w.next()
	}

	return nil
}
