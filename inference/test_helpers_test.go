// SPDX-License-Identifier: MIT

package inference_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/inference"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

func boolVar(name string) *variable.RandomVariable {
	return variable.MustNew(name, true, false)
}

// dentist is Cavity → Toothache, Cavity → Catch.
func dentist(t testing.TB) *network.Network {
	t.Helper()
	bn, err := network.NewBuilder().
		Add(boolVar("Cavity"), []float64{0.2, 0.8}).
		Add(boolVar("Toothache"), []float64{0.6, 0.4, 0.1, 0.9}, "Cavity").
		Add(boolVar("Catch"), []float64{0.9, 0.1, 0.2, 0.8}, "Cavity").
		Build()
	require.NoError(t, err)

	return bn
}

// burglary is the alarm network: Burglary, Earthquake → Alarm →
// JohnCalls, MaryCalls.
func burglary(t testing.TB) *network.Network {
	t.Helper()
	bn, err := network.NewBuilder().
		Add(boolVar("Burglary"), []float64{0.001, 0.999}).
		Add(boolVar("Earthquake"), []float64{0.002, 0.998}).
		Add(boolVar("Alarm"), []float64{
			0.95, 0.05,
			0.94, 0.06,
			0.29, 0.71,
			0.001, 0.999,
		}, "Burglary", "Earthquake").
		Add(boolVar("JohnCalls"), []float64{0.90, 0.10, 0.05, 0.95}, "Alarm").
		Add(boolVar("MaryCalls"), []float64{0.70, 0.30, 0.01, 0.99}, "Alarm").
		Build()
	require.NoError(t, err)

	return bn
}

// lawn has a three-valued root and deterministic zeros: it never rains
// when sunny, and the grass is never wet without sprinkler or rain.
func lawn(t testing.TB) *network.Network {
	t.Helper()
	weather := variable.MustNew("Weather", "sunny", "cloudy", "rainy")
	bn, err := network.NewBuilder().
		Add(weather, []float64{0.5, 0.3, 0.2}).
		Add(boolVar("Sprinkler"), []float64{
			0.6, 0.4,
			0.3, 0.7,
			0.05, 0.95,
		}, "Weather").
		Add(boolVar("Rain"), []float64{
			0.0, 1.0,
			0.4, 0.6,
			0.9, 0.1,
		}, "Weather").
		Add(boolVar("WetGrass"), []float64{
			0.99, 0.01,
			0.9, 0.1,
			0.8, 0.2,
			0.0, 1.0,
		}, "Sprinkler", "Rain").
		Build()
	require.NoError(t, err)

	return bn
}

// vars looks up network variables by name.
func vars(t testing.TB, bn *network.Network, names ...string) []*variable.RandomVariable {
	t.Helper()
	out := make([]*variable.RandomVariable, len(names))
	for i, name := range names {
		v, ok := bn.Variable(name)
		require.True(t, ok, name)
		out[i] = v
	}

	return out
}

// observe builds evidence from name/value pairs.
func observe(t testing.TB, bn *network.Network, pairs ...any) []variable.Observation {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	out := make([]variable.Observation, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, variable.Observe(vars(t, bn, pairs[i].(string))[0], pairs[i+1]))
	}

	return out
}

// fixedOrdering adapts a function to inference.Ordering.
type fixedOrdering func(p inference.Plan) []*network.Node

func (f fixedOrdering) Order(p inference.Plan) []*network.Node { return f(p) }
