// SPDX-License-Identifier: MIT

package form_test

import (
	"testing"

	"github.com/katalvlaran/dantzig/form"
	"github.com/katalvlaran/dantzig/store"
	"github.com/stretchr/testify/require"
)

// buildSubproblem returns a subproblem with two variables sharing one
// constraint row, ready for cloning into a master.
func buildSubproblem(t *testing.T, reg *form.Registry) (*form.Formulation, []form.VarID, form.ConstrID) {
	t.Helper()
	sp := reg.New(form.WithName("sp"))

	c := form.NewConstraint(sp.NewConstraintID(), "link", form.DutySubprobConstr, form.Static, form.LessOrEqual, 4)
	require.NoError(t, sp.AddConstraint(c, nil))

	y1 := form.NewVariable(sp.NewVariableID(), "y1", form.DutySubprobVar, form.Static, 5, 0, 1)
	require.NoError(t, sp.AddVariable(y1, map[form.ConstrID]float64{c.ID: 2}))
	y2 := form.NewVariable(sp.NewVariableID(), "y2", form.DutySubprobVar, form.Static, 8, 0, 3)
	require.NoError(t, sp.AddVariable(y2, map[form.ConstrID]float64{c.ID: -1}))

	return sp, []form.VarID{y1.ID, y2.ID}, c.ID
}

func TestCloneVariablesInto_TransfersMembership(t *testing.T) {
	reg := form.NewRegistry()
	master := reg.New(form.WithName("master"))
	sp, ids, _ := buildSubproblem(t, reg)

	mapping, err := form.CloneVariablesInto(ids, sp, master, form.Dynamic, form.DutyMasterRepVar)
	require.NoError(t, err)
	require.Len(t, mapping, 2)

	for _, origID := range ids {
		cloneID := mapping[origID]
		clone, err := master.Variable(cloneID)
		require.NoError(t, err)

		// Fresh identity, caller-chosen duty/flag, copied values.
		orig, err := sp.Variable(origID)
		require.NoError(t, err)
		require.Equal(t, form.DutyMasterRepVar, clone.Duty)
		require.Equal(t, form.Dynamic, clone.Kind)
		require.Equal(t, orig.PerennialCost, clone.PerennialCost)
		require.Equal(t, orig.CurUB, clone.CurUB)

		// Every explicit pair of the source column survives under the new id.
		for _, e := range sp.Coefficients().Col(origID) {
			got, ok := master.Coefficients().Coefficient(e.ID, cloneID)
			require.True(t, ok)
			require.Equal(t, e.Coeff, got)
		}

		// Origin hook points back at the source.
		o, ok := master.VariableOrigin(cloneID)
		require.True(t, ok)
		require.Equal(t, sp.UID(), o.Formulation)
		require.Equal(t, origID, o.Var)
	}
}

func TestCloneVariablesInto_CloneIsDistinct(t *testing.T) {
	reg := form.NewRegistry()
	master := reg.New()
	sp, ids, _ := buildSubproblem(t, reg)

	mapping, err := form.CloneVariablesInto(ids[:1], sp, master, form.Static, form.DutyMasterRepVar)
	require.NoError(t, err)

	clone, err := master.Variable(mapping[ids[0]])
	require.NoError(t, err)
	orig, err := sp.Variable(ids[0])
	require.NoError(t, err)

	// Mutating the clone must not reach the origin.
	clone.CurCost = 99
	require.NotEqual(t, clone.CurCost, orig.CurCost)
}

func TestCloneVariablesInto_MissingID(t *testing.T) {
	reg := form.NewRegistry()
	master := reg.New()
	sp, _, _ := buildSubproblem(t, reg)

	_, err := form.CloneVariablesInto([]form.VarID{77}, sp, master, form.Static, form.DutyMasterRepVar)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCloneConstraintsInto_TransfersRow(t *testing.T) {
	reg := form.NewRegistry()
	master := reg.New()
	sp, _, cid := buildSubproblem(t, reg)

	mapping, err := form.CloneConstraintsInto([]form.ConstrID{cid}, sp, master, form.Static, form.DutyMasterConstr)
	require.NoError(t, err)
	cloneID := mapping[cid]

	clone, err := master.Constraint(cloneID)
	require.NoError(t, err)
	require.Equal(t, form.DutyMasterConstr, clone.Duty)
	require.Equal(t, 4.0, clone.PerennialRHS)

	for _, e := range sp.Coefficients().Row(cid) {
		got, ok := master.Coefficients().Coefficient(cloneID, e.ID)
		require.True(t, ok)
		require.Equal(t, e.Coeff, got)
	}

	o, ok := master.ConstraintOrigin(cloneID)
	require.True(t, ok)
	require.Equal(t, sp.UID(), o.Formulation)
	require.Equal(t, cid, o.Constr)
}
