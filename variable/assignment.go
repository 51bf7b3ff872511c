// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"
	"sort"
	"strings"
)

// Assignment maps variable names to values. Lookups are order-independent;
// the same map type is used for factor lookups, evidence and iteration.
type Assignment map[string]any

// Clone returns a shallow copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// String renders the assignment with names sorted, e.g. {A=true, B=false}.
func (a Assignment) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, a[k])
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// Observation is a single piece of evidence: Variable takes Value.
type Observation struct {
	Variable *RandomVariable
	Value    any
}

// Observe is shorthand for Observation{Variable: v, Value: value}.
func Observe(v *RandomVariable, value any) Observation {
	return Observation{Variable: v, Value: value}
}

// String renders the observation as Name=value.
func (o Observation) String() string {
	if o.Variable == nil {
		return fmt.Sprintf("<nil>=%v", o.Value)
	}

	return fmt.Sprintf("%s=%v", o.Variable.name, o.Value)
}
