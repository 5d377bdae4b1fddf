// SPDX-License-Identifier: MIT

package highsbackend_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dantzig/form"
	"github.com/katalvlaran/dantzig/highsbackend"
	"github.com/stretchr/testify/require"
)

func TestBuildModel_Layout(t *testing.T) {
	reg := form.NewRegistry()
	f := reg.New(form.WithName("master"))

	le := form.NewConstraint(f.NewConstraintID(), "le", form.DutyMasterConstr, form.Static, form.LessOrEqual, 10)
	require.NoError(t, f.AddConstraint(le, nil))
	ge := form.NewConstraint(f.NewConstraintID(), "ge", form.DutyMasterConstr, form.Static, form.GreaterOrEqual, 1)
	require.NoError(t, f.AddConstraint(ge, nil))
	eq := form.NewConstraint(f.NewConstraintID(), "eq", form.DutyConvexityConstr, form.Static, form.Equal, 1)
	require.NoError(t, f.AddConstraint(eq, nil))

	x1 := form.NewVariable(f.NewVariableID(), "x1", form.DutyPureMasterVar, form.Static, 2, 0, 4)
	require.NoError(t, f.AddVariable(x1, map[form.ConstrID]float64{le.ID: 1, ge.ID: 3}))
	x2 := form.NewVariable(f.NewVariableID(), "x2", form.DutyMasterRepVar, form.Static, 3, 0, 1)
	require.NoError(t, f.AddVariable(x2, map[form.ConstrID]float64{le.ID: 1, eq.ID: 1}))

	model, colIDs, rowIDs := highsbackend.BuildModel(f)

	require.Equal(t, []form.VarID{x1.ID, x2.ID}, colIDs)
	require.Equal(t, []form.ConstrID{le.ID, ge.ID, eq.ID}, rowIDs)

	require.False(t, model.Maximize)
	require.Equal(t, []float64{2, 3}, model.ColCosts)
	require.Equal(t, []float64{0, 0}, model.ColLower)
	require.Equal(t, []float64{4, 1}, model.ColUpper)

	// le: (-inf, 10]; ge: [1, +inf); eq: [1, 1].
	require.True(t, math.IsInf(model.RowLower[0], -1))
	require.Equal(t, 10.0, model.RowUpper[0])
	require.Equal(t, 1.0, model.RowLower[1])
	require.True(t, math.IsInf(model.RowUpper[1], 1))
	require.Equal(t, 1.0, model.RowLower[2])
	require.Equal(t, 1.0, model.RowUpper[2])

	// Nonzeros in row-major (ascending row, then column) order.
	require.Len(t, model.ConstMatrix, 4)
	require.Equal(t, 0, model.ConstMatrix[0].Row)
	require.Equal(t, 0, model.ConstMatrix[0].Col)
	require.Equal(t, 1.0, model.ConstMatrix[0].Val)
	require.Equal(t, 1, model.ConstMatrix[2].Row)
	require.Equal(t, 3.0, model.ConstMatrix[2].Val)
}

func TestBuildModel_SkipsInactiveAndImplicit(t *testing.T) {
	reg := form.NewRegistry()
	f := reg.New()

	c := form.NewConstraint(f.NewConstraintID(), "c", form.DutyMasterConstr, form.Static, form.LessOrEqual, 5)
	require.NoError(t, f.AddConstraint(c, nil))

	x := form.NewVariable(f.NewVariableID(), "x", form.DutyPureMasterVar, form.Static, 1, 0, 1)
	require.NoError(t, f.AddVariable(x, map[form.ConstrID]float64{c.ID: 1}))
	dead := form.NewVariable(f.NewVariableID(), "dead", form.DutyPureMasterVar, form.Static, 1, 0, 1)
	require.NoError(t, f.AddVariable(dead, map[form.ConstrID]float64{c.ID: 1}))
	require.NoError(t, f.DeactivateVariable(dead.ID))
	ghost := form.NewVariable(f.NewVariableID(), "ghost", form.DutyPureMasterVar, form.Static, 1, 0, 1)
	ghost.Explicit = false
	require.NoError(t, f.AddVariable(ghost, map[form.ConstrID]float64{c.ID: 1}))

	model, colIDs, _ := highsbackend.BuildModel(f)
	require.Equal(t, []form.VarID{x.ID}, colIDs)
	// Coefficients of skipped columns never reach the matrix.
	require.Len(t, model.ConstMatrix, 1)
}
