// SPDX-License-Identifier: MIT

// Package calc: pricing-correctness diagnostics.

package calc

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dantzig/form"
)

// ColumnInconsistencyReport describes a pricing-correctness violation: a
// subproblem returned a column whose reduced cost has the wrong sign for an
// improving move while the column is already active in the master, a
// condition that must never occur under exact pricing with consistent
// tolerances. The report is informational: it is surfaced to the operator
// and the consuming algorithm decides whether to treat it as fatal. It is
// never silently corrected.
type ColumnInconsistencyReport struct {
	// Column is the offending variable's master identifier.
	Column form.VarID

	// InMaster reports whether the column exists in the master store.
	InMaster bool

	// Active reports whether the column is currently active there.
	Active bool

	// ReducedCost is the reduced cost the pricing round reported.
	ReducedCost float64

	// Master is the master formulation's uid.
	Master form.FormulationID

	// Subproblem is the offending pricing subproblem's uid.
	Subproblem form.FormulationID
}

// NewColumnInconsistencyReport inspects master for the column's presence
// and activity and assembles the report.
func NewColumnInconsistencyReport(master *form.Formulation, subproblem form.FormulationID, column form.VarID, reducedCost float64) ColumnInconsistencyReport {
	r := ColumnInconsistencyReport{
		Column:      column,
		ReducedCost: reducedCost,
		Master:      master.UID(),
		Subproblem:  subproblem,
	}
	if v, err := master.Variable(column); err == nil {
		r.InMaster = true
		r.Active = v.Active
	}

	return r
}

// String renders the report as one line of structured text for operator logs.
func (r ColumnInconsistencyReport) String() string {
	return fmt.Sprintf(
		"column %d from subproblem %d already in master %d (in_master=%t active=%t) with reduced cost %g",
		r.Column, r.Subproblem, r.Master, r.InMaster, r.Active, r.ReducedCost,
	)
}

// LogValue renders the report as a structured slog group.
func (r ColumnInconsistencyReport) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("column", int64(r.Column)),
		slog.Bool("in_master", r.InMaster),
		slog.Bool("active", r.Active),
		slog.Float64("reduced_cost", r.ReducedCost),
		slog.Int64("master", int64(r.Master)),
		slog.Int64("subproblem", int64(r.Subproblem)),
	)
}
