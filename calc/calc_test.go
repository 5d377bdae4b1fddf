// SPDX-License-Identifier: MIT

package calc_test

import (
	"testing"

	"github.com/katalvlaran/dantzig/calc"
	"github.com/katalvlaran/dantzig/form"
	"github.com/stretchr/testify/require"
)

// buildScenario builds the canonical two-variable master: x1 (cost 2,
// pure-master) and x2 (cost 3, subproblem-representative) sharing one
// active explicit constraint c1: x1 + x2 ≤ 10.
func buildScenario(t *testing.T) (*form.Formulation, form.VarID, form.VarID, form.ConstrID) {
	t.Helper()
	reg := form.NewRegistry()
	f := reg.New(form.WithName("master"))

	c1 := form.NewConstraint(f.NewConstraintID(), "c1", form.DutyMasterConstr, form.Static, form.LessOrEqual, 10)
	require.NoError(t, f.AddConstraint(c1, nil))

	x1 := form.NewVariable(f.NewVariableID(), "x1", form.DutyPureMasterVar, form.Static, 2, 0, 10)
	require.NoError(t, f.AddVariable(x1, map[form.ConstrID]float64{c1.ID: 1}))
	x2 := form.NewVariable(f.NewVariableID(), "x2", form.DutyMasterRepVar, form.Static, 3, 0, 10)
	require.NoError(t, f.AddVariable(x2, map[form.ConstrID]float64{c1.ID: 1}))

	return f, x1.ID, x2.ID, c1.ID
}

func TestReducedCostsHelper_Scenario(t *testing.T) {
	f, x1, x2, c1 := buildScenario(t)
	h := calc.NewReducedCostsHelper(f)

	require.Equal(t, map[form.VarID]float64{x1: 2}, h.PureMasterCosts())
	require.Equal(t, map[form.VarID]float64{x2: 3}, h.RepresentativeCosts())

	v, ok := h.PureMasterMatrix().Coefficient(c1, x1)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	require.Equal(t, 1, h.PureMasterMatrix().NNZ())

	v, ok = h.RepresentativeMatrix().Coefficient(c1, x2)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	require.Equal(t, 1, h.RepresentativeMatrix().NNZ())

	require.Equal(t, []form.ConstrID{c1}, h.ConstraintIDs())
}

func TestSubgradientHelper_Scenario(t *testing.T) {
	f, x1, x2, c1 := buildScenario(t)
	h := calc.NewSubgradientHelper(f)

	// Exactly one rhs entry per active, explicit, non-convexity constraint.
	require.Equal(t, map[form.ConstrID]float64{c1: 10}, h.RHS())

	v, ok := h.Matrix().Coefficient(c1, x1)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	v, ok = h.Matrix().Coefficient(c1, x2)
	require.True(t, ok)
	require.Equal(t, 1.0, v)
	require.Equal(t, 2, h.Matrix().NNZ())
}

func TestReducedCostsHelper_Evaluation(t *testing.T) {
	f, x1, x2, c1 := buildScenario(t)
	h := calc.NewReducedCostsHelper(f)

	dual := form.NewDualSolution()
	dual.Values[c1] = 0.5

	rep, pure := h.ReducedCosts(dual)
	// rc = cost − coeff·π: x1 → 2 − 1·0.5, x2 → 3 − 1·0.5.
	require.InDelta(t, 1.5, pure[x1], 1e-12)
	require.InDelta(t, 2.5, rep[x2], 1e-12)
}

func TestReducedCostsHelper_NilDual(t *testing.T) {
	f, x1, x2, _ := buildScenario(t)
	h := calc.NewReducedCostsHelper(f)

	rep, pure := h.ReducedCosts(nil)
	require.Equal(t, 2.0, pure[x1])
	require.Equal(t, 3.0, rep[x2])
}

func TestReducedCostsHelper_ExcludesConvexityAndInactive(t *testing.T) {
	f, x1, x2, c1 := buildScenario(t)

	// A convexity constraint and an inactive constraint must not enter the view.
	conv := form.NewConstraint(f.NewConstraintID(), "conv", form.DutyConvexityConstr, form.Static, form.Equal, 1)
	require.NoError(t, f.AddConstraint(conv, map[form.VarID]float64{x2: 1}))
	dead := form.NewConstraint(f.NewConstraintID(), "dead", form.DutyMasterConstr, form.Static, form.LessOrEqual, 5)
	require.NoError(t, f.AddConstraint(dead, map[form.VarID]float64{x1: 1}))
	require.NoError(t, f.DeactivateConstraint(dead.ID))

	h := calc.NewReducedCostsHelper(f)
	require.Equal(t, []form.ConstrID{c1}, h.ConstraintIDs())
	require.Equal(t, 1, h.RepresentativeMatrix().NNZ())
	require.Equal(t, 1, h.PureMasterMatrix().NNZ())
}

func TestReducedCostsHelper_ExcludesInactiveVariables(t *testing.T) {
	f, x1, _, _ := buildScenario(t)
	require.NoError(t, f.DeactivateVariable(x1))

	h := calc.NewReducedCostsHelper(f)
	require.Empty(t, h.PureMasterCosts())
	require.Empty(t, h.PureMasterIDs())
	require.Equal(t, 0, h.PureMasterMatrix().NNZ())
}

func TestReducedCostsHelper_EmptyPartition(t *testing.T) {
	reg := form.NewRegistry()
	f := reg.New()
	// Master with a constraint but no variables at all.
	c := form.NewConstraint(f.NewConstraintID(), "c", form.DutyMasterConstr, form.Static, form.Equal, 1)
	require.NoError(t, f.AddConstraint(c, nil))

	h := calc.NewReducedCostsHelper(f)
	require.Empty(t, h.RepresentativeCosts())
	require.Empty(t, h.PureMasterCosts())
	require.Equal(t, 0, h.RepresentativeMatrix().NNZ())

	rep, pure := h.ReducedCosts(form.NewDualSolution())
	require.Empty(t, rep)
	require.Empty(t, pure)
}

func TestSubgradientHelper_Evaluation(t *testing.T) {
	f, x1, x2, c1 := buildScenario(t)
	h := calc.NewSubgradientHelper(f)

	sol := map[form.VarID]float64{x1: 2, x2: 3}
	mult := map[form.VarID]float64{x2: 2} // x1 defaults to 1

	g := h.Subgradient(mult, sol)
	// g(c1) = 10 − (1·1·2 + 1·2·3) = 2.
	require.InDelta(t, 2.0, g[c1], 1e-12)
}

func TestSubgradientHelper_PerennialRHS(t *testing.T) {
	f, _, _, c1 := buildScenario(t)
	c, err := f.Constraint(c1)
	require.NoError(t, err)
	c.CurRHS = 99 // bound-style change; the view reads perennial values

	h := calc.NewSubgradientHelper(f)
	require.Equal(t, 10.0, h.RHS()[c1])
}

func TestSubgradientHelper_NoColumns(t *testing.T) {
	reg := form.NewRegistry()
	f := reg.New()
	c := form.NewConstraint(f.NewConstraintID(), "c", form.DutyMasterConstr, form.Static, form.Equal, 4)
	require.NoError(t, f.AddConstraint(c, nil))

	h := calc.NewSubgradientHelper(f)
	g := h.Subgradient(nil, nil)
	require.Equal(t, map[form.ConstrID]float64{c.ID: 4}, g)
}

func TestColumnInconsistencyReport(t *testing.T) {
	f, x1, _, _ := buildScenario(t)

	r := calc.NewColumnInconsistencyReport(f, 7, x1, -0.25)
	require.True(t, r.InMaster)
	require.True(t, r.Active)
	require.Equal(t, x1, r.Column)
	require.Equal(t, f.UID(), r.Master)
	require.Equal(t, form.FormulationID(7), r.Subproblem)

	s := r.String()
	require.Contains(t, s, "already in master")
	require.Contains(t, s, "-0.25")
}

func TestColumnInconsistencyReport_UnknownColumn(t *testing.T) {
	f, _, _, _ := buildScenario(t)
	r := calc.NewColumnInconsistencyReport(f, 7, 999, 1)
	require.False(t, r.InMaster)
	require.False(t, r.Active)
}
