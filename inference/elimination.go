// SPDX-License-Identifier: MIT

package inference

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/variable"
)

// EliminationAsk answers queries by variable elimination.
//
// A zero value is not usable; construct with NewEliminationAsk. The value
// holds configuration only and is safe for concurrent use.
type EliminationAsk struct {
	opts Options
}

// NewEliminationAsk returns an EliminationAsk configured by opts on top of
// DefaultOptions.
func NewEliminationAsk(opts ...Option) *EliminationAsk {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &EliminationAsk{opts: o}
}

// stats summarizes one run for the span.
type stats struct {
	retained   int
	eliminated int
	maxFactor  int
}

// Ask returns P(query | evidence) over exactly the query variables, in the
// order given.
//
// Steps:
//  1. Validate the query and evidence against bn.
//  2. Choose the retained variables (all of them, or the ancestors of the
//     query and evidence when pruning) and ask the Ordering for a sequence.
//  3. For each variable in that sequence, push its CPT factor restricted to
//     the evidence onto the front of the factor list. If the variable is
//     hidden, replace every factor that mentions it by their product with
//     the variable summed out.
//  4. Multiply what is left.
//  5. Lay the product out in query order by multiplying it into a fresh
//     identity factor with an explicit order. Observed query variables enter
//     this product as 0/1 indicators.
//  6. Normalize; zero mass is ErrInconsistentEvidence.
//
// ctx is checked between steps; cancellation returns ctx.Err().
//
// Complexity: exponential in the largest intermediate factor's scope, which
// the Ordering controls.
func (ea *EliminationAsk) Ask(
	ctx context.Context,
	query []*variable.RandomVariable,
	evidence []variable.Observation,
	bn *network.Network,
) (*Distribution, error) {
	ctx, span := ea.opts.Tracer.Start(ctx, "inference.EliminationAsk", trace.WithAttributes(
		attribute.Int("inference.query.count", len(query)),
		attribute.Int("inference.evidence.count", len(evidence)),
	))
	defer span.End()

	d, st, err := ea.ask(ctx, query, evidence, bn)
	span.SetAttributes(
		attribute.Int("inference.retained", st.retained),
		attribute.Int("inference.eliminated", st.eliminated),
		attribute.Int("inference.max_factor_size", st.maxFactor),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("EliminationAsk: %w", err)
	}

	return d, nil
}

func (ea *EliminationAsk) ask(
	ctx context.Context,
	query []*variable.RandomVariable,
	evidence []variable.Observation,
	bn *network.Network,
) (*Distribution, stats, error) {
	var st stats
	q, err := prepare(query, evidence, bn)
	if err != nil {
		return nil, st, err
	}

	plan := ea.plan(bn, q)
	st.retained = len(plan.Retained)
	order := ea.opts.Ordering.Order(plan)
	if err = checkOrder(plan, order); err != nil {
		return nil, st, err
	}

	var factors []*factor.Factor
	for _, n := range order {
		if err = ctx.Err(); err != nil {
			return nil, st, err
		}
		f, err := n.CPT().FactorFor(q.evidence)
		if err != nil {
			return nil, st, err
		}
		factors = append([]*factor.Factor{f}, factors...)
		st.maxFactor = max(st.maxFactor, f.Size())
		if !plan.Hidden[n.Name()] {
			continue
		}

		var width, joined int
		factors, width, joined, err = sumOut(n.Variable(), factors)
		if err != nil {
			return nil, st, err
		}
		st.eliminated++
		st.maxFactor = max(st.maxFactor, width)
		if ea.opts.Logger.Enabled(ctx, slog.LevelDebug) {
			ea.opts.Logger.LogAttrs(ctx, slog.LevelDebug, "eliminated variable",
				slog.String("variable", n.Name()),
				slog.Int("joined", joined),
				slog.Int("product_size", width),
				slog.Int("factors", len(factors)),
			)
		}
	}

	product, err := factor.Product(factors...)
	if err != nil {
		return nil, st, err
	}
	st.maxFactor = max(st.maxFactor, product.Size())

	_, fixed := q.pinned()
	operands := []*factor.Factor{product}
	for _, v := range fixed {
		ind, err := indicator(v, q.evidence[v.Name()])
		if err != nil {
			return nil, st, err
		}
		operands = append(operands, ind)
	}
	identity := factor.Identity()
	ordered, err := identity.PointwiseProductOrdered(q.query, operands...)
	if err != nil {
		return nil, st, err
	}

	d, err := newDistribution(ordered)
	if err != nil {
		return nil, st, fmt.Errorf("%v: %w", q.evidence, err)
	}
	if ea.opts.Logger.Enabled(ctx, slog.LevelDebug) {
		ea.opts.Logger.LogAttrs(ctx, slog.LevelDebug, "query answered",
			slog.Any("query", variable.Names(q.query)),
			slog.String("evidence", q.evidence.String()),
			slog.Int("eliminated", st.eliminated),
			slog.Int("max_factor_size", st.maxFactor),
		)
	}

	return d, st, nil
}

// plan selects the retained and hidden variables for q.
func (ea *EliminationAsk) plan(bn *network.Network, q *prepared) Plan {
	keep := func(string) bool { return true }
	if ea.opts.Pruning {
		seeds := variable.Names(q.query)
		for name := range q.evidence {
			seeds = append(seeds, name)
		}
		anc := ancestors(bn, seeds)
		keep = func(name string) bool { return anc[name] }
	}

	inQuery := make(map[string]bool, len(q.query))
	for _, v := range q.query {
		inQuery[v.Name()] = true
	}
	p := Plan{
		Network:  bn,
		Hidden:   make(map[string]bool),
		Evidence: q.evidence,
	}
	for _, n := range bn.TopologicalOrder() {
		if !keep(n.Name()) {
			continue
		}
		p.Retained = append(p.Retained, n)
		if _, observed := q.evidence[n.Name()]; !observed && !inQuery[n.Name()] {
			p.Hidden[n.Name()] = true
		}
	}

	return p
}

// ancestors returns seeds and all their ancestors.
func ancestors(bn *network.Network, seeds []string) map[string]bool {
	out := make(map[string]bool, len(seeds))
	stack := append([]string(nil), seeds...)
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out[name] {
			continue
		}
		out[name] = true
		n, _ := bn.Node(name)
		for _, p := range n.Parents() {
			if !out[p.Name()] {
				stack = append(stack, p.Name())
			}
		}
	}

	return out
}

// sumOut multiplies every factor mentioning v, sums v out of the product
// and puts the result at the front of the remaining factors. It also
// reports the product's size and how many factors were joined.
func sumOut(v *variable.RandomVariable, factors []*factor.Factor) ([]*factor.Factor, int, int, error) {
	var mentioning, rest []*factor.Factor
	for _, f := range factors {
		if f.Contains(v.Name()) {
			mentioning = append(mentioning, f)
		} else {
			rest = append(rest, f)
		}
	}
	product, err := factor.Product(mentioning...)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("sum out %q: %w", v.Name(), err)
	}
	out := make([]*factor.Factor, 0, len(rest)+1)
	out = append(out, product.SumOut(v))

	return append(out, rest...), product.Size(), len(mentioning), nil
}
