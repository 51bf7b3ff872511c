// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// Query is one P(Variables | Evidence) request for AskAll.
type Query struct {
	Variables []*variable.RandomVariable
	Evidence  []variable.Observation
}

// AskAll answers every query against bn concurrently and returns the
// distributions in input order. At most limit queries run at once; limit
// ≤ 0 means no limit.
//
// The first failing query cancels the rest and its error is returned,
// annotated with the query index.
func AskAll(ctx context.Context, inf Inferencer, bn *network.Network, queries []Query, limit int) ([]*Distribution, error) {
	if inf == nil {
		inf = NewEliminationAsk()
	}
	out := make([]*Distribution, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, q := range queries {
		g.Go(func() error {
			d, err := inf.Ask(gctx, q.Variables, q.Evidence, bn)
			if err != nil {
				return fmt.Errorf("AskAll: query %d: %w", i, err)
			}
			out[i] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
