// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/cpt"
	"github.com/katalvlaran/lvbayes/variable"
)

// Builder assembles a network from declarations that refer to parents by
// name, so nodes can be declared in any order. All validation happens in
// Build; Add only records the first declaration error.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	decls  []declaration
	byName map[string]int
	err    error
}

type declaration struct {
	v       *variable.RandomVariable
	values  []float64
	parents []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]int)}
}

// Add declares v with CPT values over parents ++ [v]. It returns b for
// chaining.
func (b *Builder) Add(v *variable.RandomVariable, values []float64, parents ...string) *Builder {
	if b.err != nil {
		return b
	}
	if v == nil {
		b.err = fmt.Errorf("Add: declaration %d: %w", len(b.decls), cpt.ErrNilVariable)
		return b
	}
	if _, dup := b.byName[v.Name()]; dup {
		b.err = fmt.Errorf("Add(%q): %w", v.Name(), ErrDuplicateVariable)
		return b
	}
	b.byName[v.Name()] = len(b.decls)
	b.decls = append(b.decls, declaration{
		v:       v,
		values:  append([]float64(nil), values...),
		parents: append([]string(nil), parents...),
	})

	return b
}

// Build resolves parent names, builds every CPT, links children in
// declaration order and validates the result with Build.
//
// Errors:
//   - ErrNoRoots when nothing was declared.
//   - ErrMissingCPT when a parent name was never declared.
//   - ErrDuplicateVariable when a node lists a parent twice.
//   - *CycleError (ErrCyclicNetwork) when declarations form a cycle.
//   - cpt validation errors (ErrShapeMismatch, ErrRowDoesNotSumToOne, ...).
func (b *Builder) Build() (*Network, error) {
	if b.err != nil {
		return nil, fmt.Errorf("Builder.Build: %w", b.err)
	}
	if len(b.decls) == 0 {
		return nil, fmt.Errorf("Builder.Build: %w", ErrNoRoots)
	}

	// 1. One node per declaration.
	nodes := make([]*Node, len(b.decls))
	for i, d := range b.decls {
		nodes[i] = &Node{kind: KindFiniteDiscrete, variable: d.v}
	}

	// 2. Resolve parents, link children, build CPTs.
	for i, d := range b.decls {
		n := nodes[i]
		seen := make(map[string]struct{}, len(d.parents))
		parentVars := make([]*variable.RandomVariable, 0, len(d.parents))
		for _, name := range d.parents {
			j, ok := b.byName[name]
			if !ok {
				return nil, fmt.Errorf("Builder.Build: %q: parent %q never declared: %w", d.v.Name(), name, ErrMissingCPT)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("Builder.Build: %q: parent %q: %w", d.v.Name(), name, ErrDuplicateVariable)
			}
			seen[name] = struct{}{}
			p := nodes[j]
			n.parents = append(n.parents, p)
			p.children = append(p.children, n)
			parentVars = append(parentVars, p.variable)
		}
		table, err := cpt.New(d.v, d.values, parentVars...)
		if err != nil {
			return nil, fmt.Errorf("Builder.Build: %w", err)
		}
		n.table = table
	}

	// 3. Roots are the parentless declarations, in declaration order.
	var roots []*Node
	for _, n := range nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("Builder.Build: %w", findCycle(nodes))
	}

	bn, err := Build(roots...)
	if err != nil {
		return nil, fmt.Errorf("Builder.Build: %w", err)
	}

	// 4. Declarations the roots cannot reach sit on or below a cycle.
	if bn.Len() != len(nodes) {
		return nil, fmt.Errorf("Builder.Build: %w", findCycle(nodes))
	}

	return bn, nil
}

// findCycle runs the validating DFS from every node until it reports a
// cycle. It is only called when a cycle is known to exist.
func findCycle(nodes []*Node) error {
	sorter := newTopoSorter()
	for _, n := range nodes {
		if err := sorter.visit(n); err != nil {
			return err
		}
	}

	return ErrCyclicNetwork
}
