// SPDX-License-Identifier: MIT

package factor

// walker is a mixed-radix odometer over dims that keeps one running flat
// offset per tracked table. Each table contributes a stride per walked axis
// (0 when the table does not span that axis), so advancing the odometer
// updates every offset in O(#tables) amortized time without recomputing
// indices from scratch.
type walker struct {
	dims    []int   // radix per walked axis
	sub     []int   // current subscript
	offsets []int   // current flat offset per table
	strides [][]int // strides[k][j]: step of table k along axis j
}

// newWalker creates a walker positioned at the all-zero subscript.
// base[k] is table k's offset at that position.
func newWalker(dims []int, base []int, strides [][]int) *walker {
	w := &walker{
		dims:    dims,
		sub:     make([]int, len(dims)),
		offsets: make([]int, len(base)),
		strides: strides,
	}
	copy(w.offsets, base)

	return w
}

// next advances to the following subscript in row-major order.
// Calling next after the last position wraps around to zero, which callers
// never rely on: they loop exactly volume(dims) times.
func (w *walker) next() {
	for j := len(w.dims) - 1; j >= 0; j-- {
		w.sub[j]++
		for k := range w.offsets {
			w.offsets[k] += w.strides[k][j]
		}
		if w.sub[j] < w.dims[j] {
			return
		}
		// carry: rewind axis j and continue with j-1
		for k := range w.offsets {
			w.offsets[k] -= w.strides[k][j] * w.dims[j]
		}
		w.sub[j] = 0
	}
}

// projectStrides returns, for every axis named in along, the stride that
// table f has on that axis (0 if f does not span it).
func projectStrides(f *Factor, along []string) []int {
	own := strides(f.dims)
	out := make([]int, len(along))
	for j, name := range along {
		if i, ok := f.pos[name]; ok {
			out[j] = own[i]
		}
	}

	return out
}
