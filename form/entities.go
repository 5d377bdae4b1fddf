// SPDX-License-Identifier: MIT

// Package form: variable and constraint records.
//
// Both records split every mutable quantity into an immutable perennial
// field fixed at creation and a current field the search may alter. The
// split is explicit so that resetting to perennial values stays an
// auditable operation (Formulation.ResetToPerennial), never an implicit
// shadow.

package form

import "fmt"

// Variable is one column of a formulation.
type Variable struct {
	// ID is unique within the owning formulation and never reused.
	ID VarID

	// Name is informational only.
	Name string

	// Duty is the structural role tag; used for view filtering only.
	Duty Duty

	// Kind records build-time (Static) vs search-time (Dynamic) insertion.
	Kind Flag

	// Active reports whether the variable participates in the current
	// problem. Deactivation replaces physical deletion.
	Active bool

	// Explicit reports whether the variable is handed to the solver
	// backend. Implicit variables exist for bookkeeping only.
	Explicit bool

	// PerennialCost is the original model cost, immutable after creation.
	PerennialCost float64

	// CurCost is the search-time cost (e.g. after a Lagrangian update).
	CurCost float64

	// PerennialLB and PerennialUB are the original bounds.
	PerennialLB, PerennialUB float64

	// CurLB and CurUB are the search-time bounds (e.g. after branching).
	CurLB, CurUB float64
}

// NewVariable builds an active, explicit variable with current values
// initialized from the perennial ones.
func NewVariable(id VarID, name string, duty Duty, kind Flag, cost, lb, ub float64) *Variable {
	return &Variable{
		ID:            id,
		Name:          name,
		Duty:          duty,
		Kind:          kind,
		Active:        true,
		Explicit:      true,
		PerennialCost: cost,
		CurCost:       cost,
		PerennialLB:   lb,
		CurLB:         lb,
		PerennialUB:   ub,
		CurUB:         ub,
	}
}

// String renders the variable for debug output.
func (v *Variable) String() string {
	return fmt.Sprintf("var %d %q duty=%s kind=%s active=%t cost=%g bounds=[%g,%g]",
		v.ID, v.Name, v.Duty, v.Kind, v.Active, v.CurCost, v.CurLB, v.CurUB)
}

// Constraint is one row of a formulation.
type Constraint struct {
	// ID is unique within the owning formulation and never reused.
	ID ConstrID

	// Name is informational only.
	Name string

	// Duty is the structural role tag; used for view filtering only.
	Duty Duty

	// Kind records build-time vs search-time insertion.
	Kind Flag

	// Active reports whether the constraint participates in the current
	// problem.
	Active bool

	// Explicit reports whether the constraint is handed to the solver
	// backend.
	Explicit bool

	// Sense relates the row expression to the right-hand side.
	Sense ConstrSense

	// PerennialRHS is the original right-hand side, immutable after creation.
	PerennialRHS float64

	// CurRHS is the search-time right-hand side.
	CurRHS float64
}

// NewConstraint builds an active, explicit constraint with the current
// right-hand side initialized from the perennial one.
func NewConstraint(id ConstrID, name string, duty Duty, kind Flag, sense ConstrSense, rhs float64) *Constraint {
	return &Constraint{
		ID:           id,
		Name:         name,
		Duty:         duty,
		Kind:         kind,
		Active:       true,
		Explicit:     true,
		Sense:        sense,
		PerennialRHS: rhs,
		CurRHS:       rhs,
	}
}

// String renders the constraint for debug output.
func (c *Constraint) String() string {
	return fmt.Sprintf("constr %d %q duty=%s kind=%s active=%t %s %g",
		c.ID, c.Name, c.Duty, c.Kind, c.Active, c.Sense, c.CurRHS)
}
