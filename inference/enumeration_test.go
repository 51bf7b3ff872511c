// SPDX-License-Identifier: MIT

package inference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/inference"
	"github.com/katalvlaran/lvbayes/network"
)

// TestEliminationAsk_AgreesWithEnumeration compares every elimination
// configuration with full enumeration.
func TestEliminationAsk_AgreesWithEnumeration(t *testing.T) {
	type query struct {
		vars     []string
		evidence []any
	}
	nets := []struct {
		name    string
		bn      *network.Network
		queries []query
	}{
		{"dentist", dentist(t), []query{
			{[]string{"Cavity"}, []any{"Toothache", true}},
			{[]string{"Cavity"}, []any{"Toothache", true, "Catch", true}},
			{[]string{"Catch"}, []any{"Toothache", false}},
			{[]string{"Toothache", "Catch"}, nil},
		}},
		{"burglary", burglary(t), []query{
			{[]string{"Burglary"}, []any{"JohnCalls", true, "MaryCalls", true}},
			{[]string{"Burglary", "Earthquake"}, []any{"JohnCalls", true}},
			{[]string{"Alarm"}, nil},
			{[]string{"JohnCalls", "MaryCalls"}, []any{"Burglary", false}},
			{[]string{"Earthquake", "Burglary"}, []any{"Alarm", true, "MaryCalls", false}},
			{[]string{"MaryCalls"}, []any{"JohnCalls", true}},
		}},
		{"lawn", lawn(t), []query{
			{[]string{"Weather"}, []any{"WetGrass", true}},
			{[]string{"Sprinkler", "Rain"}, []any{"WetGrass", true}},
			{[]string{"Rain"}, []any{"Sprinkler", true, "Weather", "cloudy"}},
			{[]string{"WetGrass", "Weather"}, nil},
			{[]string{"Rain", "Weather"}, []any{"Rain", true}},
		}},
	}
	configs := map[string]*inference.EliminationAsk{
		"default":          inference.NewEliminationAsk(),
		"unpruned":         inference.NewEliminationAsk(inference.WithPruning(false)),
		"min factor":       inference.NewEliminationAsk(inference.WithOrdering(inference.MinFactorSize{})),
		"min factor full":  inference.NewEliminationAsk(inference.WithOrdering(inference.MinFactorSize{}), inference.WithPruning(false)),
		"nil options kept": inference.NewEliminationAsk(inference.WithOrdering(nil), inference.WithLogger(nil), inference.WithTracer(nil)),
	}

	for _, net := range nets {
		for _, q := range net.queries {
			want, err := inference.EnumerationAsk{}.Ask(context.Background(),
				vars(t, net.bn, q.vars...), observe(t, net.bn, q.evidence...), net.bn)
			require.NoError(t, err)

			for name, ea := range configs {
				got, err := ea.Ask(context.Background(),
					vars(t, net.bn, q.vars...), observe(t, net.bn, q.evidence...), net.bn)
				require.NoError(t, err)
				assert.Equal(t, q.vars, got.Factor().Names())
				assert.InDeltaSlice(t, want.Values(), got.Values(), 1e-9, "%s %s %v|%v", net.name, name, q.vars, q.evidence)
			}
		}
	}
}

// TestEnumerationAsk_Dentist checks the reference on a hand-computed value.
func TestEnumerationAsk_Dentist(t *testing.T) {
	bn := dentist(t)
	d, err := inference.EnumerationAsk{}.Ask(context.Background(),
		vars(t, bn, "Cavity"), observe(t, bn, "Toothache", true, "Catch", true), bn)
	require.NoError(t, err)

	// 0.2·0.6·0.9 = 0.108 vs 0.8·0.1·0.2 = 0.016.
	assert.InDeltaSlice(t, []float64{0.108 / 0.124, 0.016 / 0.124}, d.Values(), 1e-12)
}
