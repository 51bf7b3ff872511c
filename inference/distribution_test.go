// SPDX-License-Identifier: MIT

package inference_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/inference"
	"github.com/katalvlaran/lvbayes/variable"
)

func TestDistribution_Marginal(t *testing.T) {
	bn := burglary(t)
	ev := observe(t, bn, "JohnCalls", true, "MaryCalls", true)
	ea := inference.NewEliminationAsk()

	joint, err := ea.Ask(context.Background(), vars(t, bn, "Burglary", "Earthquake"), ev, bn)
	require.NoError(t, err)
	single, err := ea.Ask(context.Background(), vars(t, bn, "Earthquake"), ev, bn)
	require.NoError(t, err)

	m, err := joint.Marginal("Earthquake")
	require.NoError(t, err)
	assert.Equal(t, []string{"Earthquake"}, variable.Names(m.Variables()))
	assert.InDeltaSlice(t, single.Values(), m.Values(), 1e-12)

	swapped, err := joint.Marginal("Earthquake", "Burglary")
	require.NoError(t, err)
	want, err := joint.ValueOf(variable.Assignment{"Burglary": true, "Earthquake": false})
	require.NoError(t, err)
	// Earthquake=false, Burglary=true sits at offset 1·2 + 0.
	assert.InDelta(t, want, swapped.Values()[2], 1e-15)

	_, err = joint.Marginal()
	assert.ErrorIs(t, err, inference.ErrNoQueryVariables)
	_, err = joint.Marginal("Alarm")
	assert.ErrorIs(t, err, inference.ErrUnknownVariable)
	_, err = joint.Marginal("Burglary", "Burglary")
	assert.ErrorIs(t, err, inference.ErrDuplicateVariable)
}

func TestDistribution_MostLikely(t *testing.T) {
	bn := burglary(t)
	d, err := inference.NewEliminationAsk().Ask(context.Background(),
		vars(t, bn, "Burglary"), observe(t, bn, "JohnCalls", true, "MaryCalls", true), bn)
	require.NoError(t, err)

	a, p := d.MostLikely()
	assert.Equal(t, variable.Assignment{"Burglary": false}, a)
	assert.InDelta(t, 0.716, p, 0.001)
}

func TestDistribution_ValueOf(t *testing.T) {
	bn := dentist(t)
	d, err := inference.NewEliminationAsk().Ask(context.Background(),
		vars(t, bn, "Cavity"), observe(t, bn, "Toothache", true), bn)
	require.NoError(t, err)

	p, err := d.ValueOf(variable.Assignment{"Cavity": true})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, p, 0.001)

	_, err = d.ValueOf(variable.Assignment{"Cavity": "maybe"})
	assert.Error(t, err)
	_, err = d.ValueOf(variable.Assignment{})
	assert.Error(t, err)

	assert.True(t, strings.HasPrefix(d.String(), "P([Cavity])["), d.String())
}

func TestDistribution_ValuesIsCopy(t *testing.T) {
	bn := dentist(t)
	d, err := inference.NewEliminationAsk().Ask(context.Background(), vars(t, bn, "Cavity"), nil, bn)
	require.NoError(t, err)

	v := d.Values()
	v[0] = 42
	assert.InDeltaSlice(t, []float64{0.2, 0.8}, d.Values(), 1e-12)
}
