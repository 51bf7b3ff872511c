// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/cpt"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// TestBuild_Diamond is the regression for global "seen" cycle checks:
// a shared descendant is not a cycle.
func TestBuild_Diamond(t *testing.T) {
	a, b, c, d := diamond()

	bn, err := network.Build(a)
	require.NoError(t, err)
	assert.Equal(t, 4, bn.Len())

	pos := positions(bn.TopologicalOrder())
	assert.Less(t, pos["A"], pos["B"])
	assert.Less(t, pos["A"], pos["C"])
	assert.Less(t, pos["B"], pos["D"])
	assert.Less(t, pos["C"], pos["D"])

	for _, n := range []*network.Node{a, b, c, d} {
		got, ok := bn.Node(n.Name())
		require.True(t, ok)
		assert.Same(t, n, got)
	}
	assert.Equal(t, network.KindFiniteDiscrete, d.Kind())
	assert.Equal(t, "finite-discrete", d.Kind().String())
}

// TestBuild_Deterministic returns the same order on repeated builds.
func TestBuild_Deterministic(t *testing.T) {
	a, _, _, _ := diamond()
	first, err := network.Build(a)
	require.NoError(t, err)
	second, err := network.Build(a)
	require.NoError(t, err)

	assert.Equal(t, variable.Names(first.Variables()), variable.Names(second.Variables()))
	assert.Equal(t, []string{"A", "C", "B", "D"}, variable.Names(first.Variables()))
}

// TestBuild_RootErrors covers the root-set checks.
func TestBuild_RootErrors(t *testing.T) {
	a, b, _, _ := diamond()
	a2 := network.MustNewNode(boolVar("A"), []float64{0.5, 0.5})

	cases := []struct {
		name    string
		roots   []*network.Node
		wantErr error
	}{
		{"no roots", nil, network.ErrNoRoots},
		{"nil root", []*network.Node{nil}, network.ErrNilNode},
		{"duplicate root", []*network.Node{a, a2}, network.ErrDuplicateRootVariable},
		{"same root twice", []*network.Node{a, a}, network.ErrDuplicateRootVariable},
		{"not a root", []*network.Node{b}, network.ErrNotRoot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bn, err := network.Build(tc.roots...)
			assert.Nil(t, bn)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, network.IsConstructionError(err))
		})
	}
}

// TestBuild_UnreachableParent rejects a child whose other parent is not
// among the roots.
func TestBuild_UnreachableParent(t *testing.T) {
	r := network.MustNewNode(boolVar("R"), []float64{0.5, 0.5})
	x := network.MustNewNode(boolVar("X"), []float64{0.5, 0.5})
	network.MustNewNode(boolVar("C"), []float64{1, 0, 1, 0, 1, 0, 0, 1}, r, x)

	_, err := network.Build(r)
	assert.ErrorIs(t, err, network.ErrUnreachableParent)

	bn, err := network.Build(r, x)
	require.NoError(t, err)
	assert.Equal(t, 3, bn.Len())
}

// TestBuild_DuplicateVariable rejects two distinct nodes with one name.
func TestBuild_DuplicateVariable(t *testing.T) {
	r := network.MustNewNode(boolVar("R"), []float64{0.5, 0.5})
	network.MustNewNode(boolVar("K"), []float64{0.5, 0.5, 0.5, 0.5}, r)
	network.MustNewNode(boolVar("K"), []float64{0.1, 0.9, 0.1, 0.9}, r)

	_, err := network.Build(r)
	assert.ErrorIs(t, err, network.ErrDuplicateVariable)
}

// TestBuild_Snapshot keeps a built network unchanged by later NewNode calls.
func TestBuild_Snapshot(t *testing.T) {
	a, _, _, _ := diamond()
	bn, err := network.Build(a)
	require.NoError(t, err)

	network.MustNewNode(boolVar("Late"), []float64{0.5, 0.5, 0.5, 0.5}, a)
	assert.Equal(t, 4, bn.Len())
	assert.Len(t, bn.ChildrenOf("A"), 2)
	assert.Len(t, a.Children(), 3)
	assert.False(t, bn.Contains("Late"))
}

// TestNewNode_Errors propagates CPT validation and parent checks.
func TestNewNode_Errors(t *testing.T) {
	a := network.MustNewNode(boolVar("A"), []float64{0.5, 0.5})

	_, err := network.NewNode(boolVar("B"), []float64{0.5, 0.5}, a)
	assert.ErrorIs(t, err, cpt.ErrShapeMismatch)
	assert.True(t, network.IsConstructionError(err))

	_, err = network.NewNode(boolVar("B"), []float64{0.5, 0.6, 0.5, 0.5}, a)
	assert.ErrorIs(t, err, cpt.ErrRowDoesNotSumToOne)

	_, err = network.NewNode(boolVar("B"), []float64{0.5, 0.5}, nil)
	assert.ErrorIs(t, err, network.ErrNilNode)

	_, err = network.NewNode(boolVar("B"), []float64{1, 0, 1, 0, 1, 0, 1, 0}, a, a)
	assert.ErrorIs(t, err, network.ErrDuplicateVariable)

	assert.Empty(t, a.Children(), "failed NewNode must not link children")
}

// TestAccessors exercises the read-only surface.
func TestAccessors(t *testing.T) {
	a, b, c, d := diamond()
	bn, err := network.Build(a)
	require.NoError(t, err)

	assert.Equal(t, []*network.Node{a}, bn.Roots())
	v, ok := bn.Variable("C")
	require.True(t, ok)
	assert.Same(t, c.Variable(), v)
	_, ok = bn.Variable("Z")
	assert.False(t, ok)

	i, ok := bn.Position("D")
	require.True(t, ok)
	assert.Equal(t, 3, i)

	assert.Equal(t, []*network.Node{b, c}, d.Parents())
	assert.True(t, a.IsRoot())
	assert.Equal(t, "Node(D)", d.String())
	assert.Equal(t, []string{"B", "C", "D"}, variable.Names(d.CPT().Factor().Scope()))
}

// TestMarkovBlanket collects parents, children and co-parents.
func TestMarkovBlanket(t *testing.T) {
	a, b, c, d := diamond()
	bn, err := network.Build(a)
	require.NoError(t, err)

	mb, err := bn.MarkovBlanket("B")
	require.NoError(t, err)
	assert.Equal(t, []*network.Node{a, d, c}, mb)

	mb, err = bn.MarkovBlanket("A")
	require.NoError(t, err)
	assert.Equal(t, []*network.Node{b, c}, mb)

	mb, err = bn.MarkovBlanket("D")
	require.NoError(t, err)
	assert.Equal(t, []*network.Node{b, c}, mb)

	_, err = bn.MarkovBlanket("Nope")
	assert.ErrorIs(t, err, network.ErrUnknownVariable)
}
