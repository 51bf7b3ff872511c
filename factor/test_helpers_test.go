// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/variable"
)

const tol = 1e-12

// vars returns boolean A, B and a ternary C.
func vars() (a, b, c *variable.RandomVariable) {
	a = variable.MustNew("A", true, false)
	b = variable.MustNew("B", true, false)
	c = variable.MustNew("C", "lo", "mid", "hi")

	return a, b, c
}

// mustFactor builds a factor or fails the test.
func mustFactor(t *testing.T, scope []*variable.RandomVariable, values ...float64) *factor.Factor {
	t.Helper()
	f, err := factor.New(scope, values)
	require.NoError(t, err)

	return f
}

// valueAt reads one entry by assignment or fails the test.
func valueAt(t *testing.T, f *factor.Factor, a variable.Assignment) float64 {
	t.Helper()
	v, err := f.ValueOf(a)
	require.NoError(t, err)

	return v
}
