// SPDX-License-Identifier: MIT

// Package calc derives the read-only numeric views a column-generation or
// Lagrangian-subgradient driver consumes on every iteration: the
// reduced-cost helper, the subgradient helper, and the column-inconsistency
// diagnostic.
//
// Both helpers are pure snapshots over a master formulation, built once and
// then safely shared across readers. They stay valid only while the
// source's explicit variable/constraint set and coefficients are unchanged;
// adding or removing columns or constraints invalidates them (bound-only
// changes do not), and rebuilding after such a change is the caller's
// responsibility; staleness is not validated internally.
package calc

import (
	"slices"

	"github.com/katalvlaran/dantzig/coeff"
	"github.com/katalvlaran/dantzig/form"
	"gonum.org/v1/gonum/mat"
)

// keepViewConstraint is the constraint predicate shared by both helpers:
// active, explicit, and not a convexity constraint.
func keepViewConstraint(c *form.Constraint) bool {
	return c.Active && c.Explicit && !c.Duty.In(form.ConvexityConstrDuties)
}

// partition collects the active variables of one duty category: sorted
// identifiers, perennial cost vector, and the coefficient restriction to
// {category} × {view constraints} with its cached dense form.
type partition struct {
	ids    []form.VarID
	costs  map[form.VarID]float64
	matrix *coeff.Relation[form.ConstrID, form.VarID]
	dense  *mat.Dense // rows follow constrIDs, cols follow ids; nil when empty
}

// buildPartition snapshots the variables of f matching duties.
func buildPartition(f *form.Formulation, duties form.DutySet, constrIDs []form.ConstrID) partition {
	keepVar := func(_ form.VarID, v *form.Variable) bool {
		return v.Active && v.Explicit && v.Duty.In(duties)
	}
	vars := f.Variables().Filter(keepVar)

	p := partition{costs: make(map[form.VarID]float64, len(vars))}
	for id, v := range vars {
		p.costs[id] = v.PerennialCost
	}
	p.ids = sortedIDs(p.costs)

	inPartition := make(map[form.VarID]struct{}, len(p.ids))
	for _, id := range p.ids {
		inPartition[id] = struct{}{}
	}
	keepRow := make(map[form.ConstrID]struct{}, len(constrIDs))
	for _, id := range constrIDs {
		keepRow[id] = struct{}{}
	}
	p.matrix = f.Coefficients().Extract(
		func(r form.ConstrID) bool { _, ok := keepRow[r]; return ok },
		func(c form.VarID) bool { _, ok := inPartition[c]; return ok },
	)
	p.dense = p.matrix.Dense(constrIDs, p.ids)

	return p
}

// ReducedCostsHelper partitions a master's active variables by structural
// duty (subproblem-representative vs pure-master) and restricts the
// coefficient relation to each partition over the active, explicit,
// non-convexity constraints. The four cached artifacts let a consumer
// evaluate reducedCost = cost − Aᵀ·π per partition in O(active variables)
// without rescanning the model.
type ReducedCostsHelper struct {
	constrIDs []form.ConstrID
	rep       partition
	pure      partition
}

// NewReducedCostsHelper snapshots master. Partitions with no matching
// active variable yield empty vectors and matrices, never an error.
// Complexity: O(vars + constrs + nnz of the restrictions).
func NewReducedCostsHelper(master *form.Formulation) *ReducedCostsHelper {
	h := &ReducedCostsHelper{constrIDs: viewConstraintIDs(master)}
	h.rep = buildPartition(master, form.SubprobRepVarDuties, h.constrIDs)
	h.pure = buildPartition(master, form.PureMasterVarDuties, h.constrIDs)

	return h
}

// ConstraintIDs returns the view constraints in ascending order.
func (h *ReducedCostsHelper) ConstraintIDs() []form.ConstrID { return h.constrIDs }

// RepresentativeIDs returns the subproblem-representative partition's
// variable identifiers in ascending order.
func (h *ReducedCostsHelper) RepresentativeIDs() []form.VarID { return h.rep.ids }

// PureMasterIDs returns the pure-master partition's variable identifiers in
// ascending order.
func (h *ReducedCostsHelper) PureMasterIDs() []form.VarID { return h.pure.ids }

// RepresentativeCosts returns the perennial cost vector of the
// subproblem-representative partition, keyed by variable id.
func (h *ReducedCostsHelper) RepresentativeCosts() map[form.VarID]float64 { return h.rep.costs }

// PureMasterCosts returns the perennial cost vector of the pure-master
// partition, keyed by variable id.
func (h *ReducedCostsHelper) PureMasterCosts() map[form.VarID]float64 { return h.pure.costs }

// RepresentativeMatrix returns the coefficient restriction
// {subproblem-representative} × {view constraints}.
func (h *ReducedCostsHelper) RepresentativeMatrix() *coeff.Relation[form.ConstrID, form.VarID] {
	return h.rep.matrix
}

// PureMasterMatrix returns the coefficient restriction
// {pure-master} × {view constraints}.
func (h *ReducedCostsHelper) PureMasterMatrix() *coeff.Relation[form.ConstrID, form.VarID] {
	return h.pure.matrix
}

// ReducedCosts evaluates cost − Aᵀ·π for both partitions against the given
// dual solution, using the cached dense artifacts. Dual values for
// constraints outside the view are ignored; view constraints absent from
// dual contribute 0.
// Complexity: O(|partition| · |view constraints|) dense multiply.
func (h *ReducedCostsHelper) ReducedCosts(dual *form.DualSolution) (rep, pure map[form.VarID]float64) {
	pi := mat.NewVecDense(max(len(h.constrIDs), 1), nil)
	for i, cid := range h.constrIDs {
		if dual != nil {
			pi.SetVec(i, dual.Value(cid))
		}
	}

	return h.rep.reducedCosts(pi), h.pure.reducedCosts(pi)
}

// reducedCosts computes cost − Aᵀ·π for one partition.
func (p partition) reducedCosts(pi *mat.VecDense) map[form.VarID]float64 {
	out := make(map[form.VarID]float64, len(p.ids))
	if p.dense == nil {
		// No constraints in view or empty partition: reduced cost = cost.
		for id, c := range p.costs {
			out[id] = c
		}

		return out
	}
	var atp mat.VecDense
	atp.MulVec(p.dense.T(), pi)
	for j, id := range p.ids {
		out[id] = p.costs[id] - atp.AtVec(j)
	}

	return out
}

// viewConstraintIDs returns the active, explicit, non-convexity constraint
// identifiers of f in ascending order.
func viewConstraintIDs(f *form.Formulation) []form.ConstrID {
	kept := f.Constraints().Filter(func(_ form.ConstrID, c *form.Constraint) bool {
		return keepViewConstraint(c)
	})

	return sortedIDs(kept)
}

// sortedIDs returns the keys of m ascending.
func sortedIDs[K form.VarID | form.ConstrID, V any](m map[K]V) []K {
	ids := make([]K, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}
