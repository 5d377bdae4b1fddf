// SPDX-License-Identifier: MIT

package form

import (
	"fmt"
	"slices"
	"strings"
)

// PrimalSolution maps variable identifiers to values together with the
// objective value the backend reported for them.
type PrimalSolution struct {
	// Values holds the nonzero (and reported zero) variable values.
	Values map[VarID]float64

	// Objective is the backend-reported objective value.
	Objective float64
}

// NewPrimalSolution builds an empty primal solution.
func NewPrimalSolution(objective float64) *PrimalSolution {
	return &PrimalSolution{Values: make(map[VarID]float64), Objective: objective}
}

// Value returns the value of id, 0 when absent.
func (p *PrimalSolution) Value(id VarID) float64 {
	return p.Values[id]
}

// Clone returns an independent copy.
func (p *PrimalSolution) Clone() *PrimalSolution {
	out := NewPrimalSolution(p.Objective)
	for id, v := range p.Values {
		out.Values[id] = v
	}

	return out
}

// String renders "obj=… {id=v, …}" in ascending id order. Debug only.
func (p *PrimalSolution) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "obj=%g {", p.Objective)
	for i, id := range sortedKeys(p.Values) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d=%g", id, p.Values[id])
	}
	b.WriteByte('}')

	return b.String()
}

// DualSolution maps constraint identifiers to dual values.
type DualSolution struct {
	// Values holds the dual value per constraint.
	Values map[ConstrID]float64
}

// NewDualSolution builds an empty dual solution.
func NewDualSolution() *DualSolution {
	return &DualSolution{Values: make(map[ConstrID]float64)}
}

// Value returns the dual value of id, 0 when absent.
func (d *DualSolution) Value(id ConstrID) float64 {
	return d.Values[id]
}

// Clone returns an independent copy.
func (d *DualSolution) Clone() *DualSolution {
	out := NewDualSolution()
	for id, v := range d.Values {
		out.Values[id] = v
	}

	return out
}

// sortedKeys returns the map keys ascending.
func sortedKeys[K VarID | ConstrID, V any](m map[K]V) []K {
	ids := make([]K, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
