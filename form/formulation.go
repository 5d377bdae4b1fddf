// SPDX-License-Identifier: MIT

// Package form: the Formulation aggregate and its mutation surface.
//
// A Formulation is built for one search node or subproblem and mutated
// incrementally while it is evaluated: pricing inserts columns one at a
// time, branching rewrites current values. Mutation is not reentrant-safe;
// callers serialize access to a given instance. Derived read-only views
// (package calc) stay valid until the explicit entity set or a coefficient
// changes; bound-only changes do not invalidate them.

package form

import (
	"fmt"

	"github.com/katalvlaran/dantzig/coeff"
	"github.com/katalvlaran/dantzig/store"
)

// Formulation aggregates the variable store, the constraint store, the
// coefficient relation, the objective sense, and the best-known solution
// records of one problem in the decomposition tree.
type Formulation struct {
	uid    FormulationID
	name   string
	parent FormulationID // non-owning reference into the Registry

	vars    *store.Store[VarID, *Variable]
	constrs *store.Store[ConstrID, *Constraint]
	coeffs  *coeff.Relation[ConstrID, VarID]

	sense ObjSense

	bestPrimal *PrimalSolution
	bestDual   *DualSolution

	// id counters only grow; identifiers are never reused.
	nextVar    VarID
	nextConstr ConstrID

	// clone → origin bookkeeping, see CloneVariablesInto.
	varOrigins    map[VarID]VarOrigin
	constrOrigins map[ConstrID]ConstrOrigin
}

// Option configures a Formulation at creation.
type Option func(*Formulation)

// WithName sets the informational name.
func WithName(name string) Option {
	return func(f *Formulation) { f.name = name }
}

// WithParent links the formulation to its parent's uid (subproblem →
// master → reformulation). The reference is structural, not owning.
func WithParent(parent FormulationID) Option {
	return func(f *Formulation) { f.parent = parent }
}

// newFormulation builds an empty minimization formulation with the given
// uid. Registry.New is the public entry point; uids are registry-issued.
func newFormulation(uid FormulationID, opts ...Option) *Formulation {
	f := &Formulation{
		uid:           uid,
		parent:        NoParent,
		vars:          store.New[VarID, *Variable](),
		constrs:       store.New[ConstrID, *Constraint](),
		coeffs:        coeff.New[ConstrID, VarID](),
		sense:         Minimize,
		nextVar:       1,
		nextConstr:    1,
		varOrigins:    make(map[VarID]VarOrigin),
		constrOrigins: make(map[ConstrID]ConstrOrigin),
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// UID returns the registry-issued identifier.
func (f *Formulation) UID() FormulationID { return f.uid }

// Name returns the informational name.
func (f *Formulation) Name() string { return f.name }

// Parent returns the parent uid, NoParent at the tree root.
func (f *Formulation) Parent() FormulationID { return f.parent }

// ObjSense returns the objective sense (always Minimize).
func (f *Formulation) ObjSense() ObjSense { return f.sense }

// RegisterObjectiveSense records the objective sense. minimize=false always
// fails with ErrMaximizeUnsupported and leaves the sense unchanged: the
// restriction is deliberate, silent cost negation would mask sign errors in
// reduced-cost computations downstream.
func (f *Formulation) RegisterObjectiveSense(minimize bool) error {
	if !minimize {
		return ErrMaximizeUnsupported
	}
	f.sense = Minimize

	return nil
}

// Variables exposes the variable store.
func (f *Formulation) Variables() *store.Store[VarID, *Variable] { return f.vars }

// Constraints exposes the constraint store.
func (f *Formulation) Constraints() *store.Store[ConstrID, *Constraint] { return f.constrs }

// Coefficients exposes the coefficient relation.
func (f *Formulation) Coefficients() *coeff.Relation[ConstrID, VarID] { return f.coeffs }

// Variable returns the variable stored under id.
func (f *Formulation) Variable(id VarID) (*Variable, error) {
	v, err := f.vars.Get(id)
	if err != nil {
		return nil, fmt.Errorf("form: variable %d: %w", id, err)
	}

	return v, nil
}

// Constraint returns the constraint stored under id.
func (f *Formulation) Constraint(id ConstrID) (*Constraint, error) {
	c, err := f.constrs.Get(id)
	if err != nil {
		return nil, fmt.Errorf("form: constraint %d: %w", id, err)
	}

	return c, nil
}

// NewVariableID issues a fresh variable identifier, never reused.
func (f *Formulation) NewVariableID() VarID {
	id := f.nextVar
	f.nextVar++

	return id
}

// NewConstraintID issues a fresh constraint identifier, never reused.
func (f *Formulation) NewConstraintID() ConstrID {
	id := f.nextConstr
	f.nextConstr++

	return id
}

// AddVariable registers v in the variable store and, when membership is
// non-nil, installs its coefficient column (constraint id → coefficient)
// into the relation. Callable incrementally: pricing adds columns one at a
// time. Re-adding an existing id overwrites the whole record.
// Complexity: O(len(membership)) amortized.
func (f *Formulation) AddVariable(v *Variable, membership map[ConstrID]float64) error {
	if v == nil {
		return ErrNilEntity
	}
	f.vars.Set(v.ID, v)
	f.coeffs.AddCol(v.ID)
	for cid, val := range membership {
		f.coeffs.Set(cid, v.ID, val)
	}
	// Keep the id counter ahead of externally chosen ids.
	if v.ID >= f.nextVar {
		f.nextVar = v.ID + 1
	}

	return nil
}

// AddConstraint registers c in the constraint store (the perennial
// right-hand side travels on the record) and, when membership is non-nil,
// installs its coefficient row (variable id → coefficient).
// Complexity: O(len(membership)) amortized.
func (f *Formulation) AddConstraint(c *Constraint, membership map[VarID]float64) error {
	if c == nil {
		return ErrNilEntity
	}
	f.constrs.Set(c.ID, c)
	f.coeffs.AddRow(c.ID)
	for vid, val := range membership {
		f.coeffs.Set(c.ID, vid, val)
	}
	if c.ID >= f.nextConstr {
		f.nextConstr = c.ID + 1
	}

	return nil
}

// DeactivateVariable marks id inactive. The record and its coefficients
// stay in place; identifiers are never reused.
func (f *Formulation) DeactivateVariable(id VarID) error {
	v, err := f.Variable(id)
	if err != nil {
		return err
	}
	v.Active = false

	return nil
}

// DeactivateConstraint marks id inactive.
func (f *Formulation) DeactivateConstraint(id ConstrID) error {
	c, err := f.Constraint(id)
	if err != nil {
		return err
	}
	c.Active = false

	return nil
}

// ResetToPerennial restores every current value (costs, bounds, right-hand
// sides) to its perennial original. Activity flags and coefficients are
// untouched. Intended for search-node cleanup; explicit by design.
// Complexity: O(vars + constrs).
func (f *Formulation) ResetToPerennial() {
	for _, v := range f.vars.Filter(func(VarID, *Variable) bool { return true }) {
		v.CurCost = v.PerennialCost
		v.CurLB = v.PerennialLB
		v.CurUB = v.PerennialUB
	}
	for _, c := range f.constrs.Filter(func(ConstrID, *Constraint) bool { return true }) {
		c.CurRHS = c.PerennialRHS
	}
}

// BestPrimal returns the best-known primal record, nil when none.
func (f *Formulation) BestPrimal() *PrimalSolution { return f.bestPrimal }

// BestDual returns the best-known dual record, nil when none.
func (f *Formulation) BestDual() *DualSolution { return f.bestDual }

// String renders a short summary for debug output.
func (f *Formulation) String() string {
	return fmt.Sprintf("formulation %d %q vars=%d constrs=%d nnz=%d",
		f.uid, f.name, f.vars.Len(), f.constrs.Len(), f.coeffs.NNZ())
}
