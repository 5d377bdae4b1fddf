// SPDX-License-Identifier: MIT

// Package calc: the Lagrangian-subgradient view.
//
// The constraint-keep predicate intentionally mirrors the reduced-cost
// view: active, explicit, and not a convexity constraint. Whether a
// narrower selection is mathematically required is unresolved against the
// reference derivation; this is the minimal faithful reading.

package calc

import (
	"github.com/katalvlaran/dantzig/coeff"
	"github.com/katalvlaran/dantzig/form"
	"gonum.org/v1/gonum/mat"
)

// SubgradientHelper snapshots, for every active, explicit, non-convexity
// constraint of a master, its perennial right-hand side, together with the
// coefficient restriction to the representative columns (pure-master plus
// subproblem-representative variables). The consumer combines these with
// externally supplied solution values and multiplicities as
// g = rhs − A·(m ⊙ x); neither vector is owned by the helper.
type SubgradientHelper struct {
	constrIDs []form.ConstrID
	varIDs    []form.VarID
	rhs       map[form.ConstrID]float64
	matrix    *coeff.Relation[form.ConstrID, form.VarID]
	dense     *mat.Dense // rows follow constrIDs, cols follow varIDs; nil when empty
}

// NewSubgradientHelper snapshots master.
// Complexity: O(vars + constrs + nnz of the restriction).
func NewSubgradientHelper(master *form.Formulation) *SubgradientHelper {
	h := &SubgradientHelper{constrIDs: viewConstraintIDs(master)}

	h.rhs = make(map[form.ConstrID]float64, len(h.constrIDs))
	for _, cid := range h.constrIDs {
		c, err := master.Constraint(cid)
		if err != nil {
			continue // ids came from the store an instant ago
		}
		h.rhs[cid] = c.PerennialRHS
	}

	cols := master.Variables().Filter(func(_ form.VarID, v *form.Variable) bool {
		return v.Active && v.Explicit && v.Duty.In(form.RepresentativeColumnDuties)
	})
	h.varIDs = sortedIDs(cols)

	inCols := make(map[form.VarID]struct{}, len(h.varIDs))
	for _, id := range h.varIDs {
		inCols[id] = struct{}{}
	}
	inRows := make(map[form.ConstrID]struct{}, len(h.constrIDs))
	for _, id := range h.constrIDs {
		inRows[id] = struct{}{}
	}
	h.matrix = master.Coefficients().Extract(
		func(r form.ConstrID) bool { _, ok := inRows[r]; return ok },
		func(c form.VarID) bool { _, ok := inCols[c]; return ok },
	)
	h.dense = h.matrix.Dense(h.constrIDs, h.varIDs)

	return h
}

// ConstraintIDs returns the view constraints in ascending order.
func (h *SubgradientHelper) ConstraintIDs() []form.ConstrID { return h.constrIDs }

// VariableIDs returns the representative columns in ascending order.
func (h *SubgradientHelper) VariableIDs() []form.VarID { return h.varIDs }

// RHS returns the perennial right-hand-side vector keyed by constraint id:
// exactly one entry per view constraint.
func (h *SubgradientHelper) RHS() map[form.ConstrID]float64 { return h.rhs }

// Matrix returns the coefficient restriction
// {view constraints} × {representative columns}.
func (h *SubgradientHelper) Matrix() *coeff.Relation[form.ConstrID, form.VarID] {
	return h.matrix
}

// Subgradient evaluates g = rhs − A·(m ⊙ x) keyed by constraint id.
// solution concatenates master and subproblem values keyed by the master's
// representative variable ids; multiplicity is the externally selected
// per-variable multiplicity (bounded by each subproblem's convexity
// multiplicity, chosen by reduced-cost sign). Variables absent from
// multiplicity default to multiplicity 1; variables absent from solution
// contribute 0.
// Complexity: O(|view constraints| · |representative columns|).
func (h *SubgradientHelper) Subgradient(multiplicity, solution map[form.VarID]float64) map[form.ConstrID]float64 {
	out := make(map[form.ConstrID]float64, len(h.constrIDs))
	if h.dense == nil {
		for cid, rhs := range h.rhs {
			out[cid] = rhs
		}

		return out
	}

	x := mat.NewVecDense(len(h.varIDs), nil)
	for j, id := range h.varIDs {
		m, ok := multiplicity[id]
		if !ok {
			m = 1
		}
		x.SetVec(j, m*solution[id])
	}

	var ax mat.VecDense
	ax.MulVec(h.dense, x)
	for i, cid := range h.constrIDs {
		out[cid] = h.rhs[cid] - ax.AtVec(i)
	}

	return out
}
