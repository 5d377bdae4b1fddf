// SPDX-License-Identifier: MIT

// Package highsbackend adapts the HiGHS LP/MIP binding to the form.Backend
// capability: it lays a formulation's active explicit variables and
// constraints out as a HiGHS column/row model, solves, and translates the
// HiGHS solution back into identifier-keyed primal/dual records.
//
// Only minimization is handed to HiGHS; the formulation cannot carry any
// other sense. HiGHS reports a single solution per solve, so the backend
// result count is 0 or 1.
package highsbackend

import (
	"math"
	"slices"

	"github.com/bartolsthoorn/gohighs/highs"
	"github.com/katalvlaran/dantzig/form"
)

// Backend solves formulations with HiGHS. The zero value is usable; solve
// options (time limit, gap, output) are fixed at construction.
type Backend struct {
	opts []highs.SolveOption
}

// New creates a Backend with the given HiGHS solve options.
func New(opts ...highs.SolveOption) *Backend {
	return &Backend{opts: opts}
}

// Solve implements form.Backend.
func (b *Backend) Solve(f *form.Formulation) (form.BackendResult, error) {
	model, colIDs, rowIDs := BuildModel(f)

	sol, err := model.Solve(b.opts...)
	if err != nil {
		return form.BackendResult{}, err
	}

	res := form.BackendResult{Status: translateStatus(sol.Status)}
	if !sol.HasSolution() {
		return res, nil
	}

	primal := form.NewPrimalSolution(sol.Objective)
	for j, id := range colIDs {
		primal.Values[id] = sol.Value(j)
	}
	res.Primals = []*form.PrimalSolution{primal}

	if len(sol.RowDuals) == len(rowIDs) && len(rowIDs) > 0 {
		dual := form.NewDualSolution()
		for i, id := range rowIDs {
			dual.Values[id] = sol.RowDuals[i]
		}
		res.Dual = dual
	}

	return res, nil
}

// BuildModel translates f into a HiGHS model over its active explicit
// entities. Returned slices map HiGHS column/row indices back to
// formulation identifiers, both in ascending id order.
func BuildModel(f *form.Formulation) (*highs.Model, []form.VarID, []form.ConstrID) {
	vars := f.Variables().Filter(func(_ form.VarID, v *form.Variable) bool {
		return v.Active && v.Explicit
	})
	constrs := f.Constraints().Filter(func(_ form.ConstrID, c *form.Constraint) bool {
		return c.Active && c.Explicit
	})

	colIDs := make([]form.VarID, 0, len(vars))
	for id := range vars {
		colIDs = append(colIDs, id)
	}
	slices.Sort(colIDs)
	rowIDs := make([]form.ConstrID, 0, len(constrs))
	for id := range constrs {
		rowIDs = append(rowIDs, id)
	}
	slices.Sort(rowIDs)

	colIndex := make(map[form.VarID]int, len(colIDs))
	for j, id := range colIDs {
		colIndex[id] = j
	}

	model := &highs.Model{
		Maximize: false, // the formulation carries Minimize by construction
		ColCosts: make([]float64, len(colIDs)),
		ColLower: make([]float64, len(colIDs)),
		ColUpper: make([]float64, len(colIDs)),
		RowLower: make([]float64, len(rowIDs)),
		RowUpper: make([]float64, len(rowIDs)),
	}
	for j, id := range colIDs {
		v := vars[id]
		model.ColCosts[j] = v.CurCost
		model.ColLower[j] = v.CurLB
		model.ColUpper[j] = v.CurUB
	}
	for i, id := range rowIDs {
		c := constrs[id]
		switch c.Sense {
		case form.GreaterOrEqual:
			model.RowLower[i] = c.CurRHS
			model.RowUpper[i] = math.Inf(1)
		case form.Equal:
			model.RowLower[i] = c.CurRHS
			model.RowUpper[i] = c.CurRHS
		default: // LessOrEqual
			model.RowLower[i] = math.Inf(-1)
			model.RowUpper[i] = c.CurRHS
		}
		for _, e := range f.Coefficients().Row(id) {
			j, ok := colIndex[e.ID]
			if !ok {
				continue // coefficient of an inactive or implicit column
			}
			model.ConstMatrix = append(model.ConstMatrix, highs.Nonzero{Row: i, Col: j, Val: e.Coeff})
		}
	}

	return model, colIDs, rowIDs
}

// translateStatus maps HiGHS model statuses onto termination statuses.
func translateStatus(s highs.ModelStatus) form.TerminationStatus {
	switch s {
	case highs.ModelStatusOptimal:
		return form.StatusOptimal
	case highs.ModelStatusInfeasible:
		return form.StatusInfeasible
	case highs.ModelStatusUnbounded, highs.ModelStatusUnboundedOrInfeasible:
		return form.StatusUnbounded
	case highs.ModelStatusTimeLimit, highs.ModelStatusIterationLimit,
		highs.ModelStatusObjectiveBound, highs.ModelStatusObjectiveTarget:
		return form.StatusLimit
	default:
		return form.StatusUnknown
	}
}
