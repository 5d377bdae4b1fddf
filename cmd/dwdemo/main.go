// SPDX-License-Identifier: MIT

// Command dwdemo walks through the formulation core on a toy master: it
// builds a master/subproblem pair, clones a subproblem variable into the
// master as a representative, derives both per-iteration views, evaluates
// one reduced-cost and one subgradient round, and shows how a
// column-inconsistency report surfaces in operator logs.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/dantzig/calc"
	"github.com/katalvlaran/dantzig/form"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	reg := form.NewRegistry()
	master := reg.New(form.WithName("master"))
	sp := reg.New(form.WithName("sp1"), form.WithParent(master.UID()))

	// Master: one linking constraint x1 + (rep) <= 10 and a pure variable.
	link := form.NewConstraint(master.NewConstraintID(), "link", form.DutyMasterConstr, form.Static, form.LessOrEqual, 10)
	if err := master.AddConstraint(link, nil); err != nil {
		fatal("add link constraint", err)
	}
	x1 := form.NewVariable(master.NewVariableID(), "x1", form.DutyPureMasterVar, form.Static, 2, 0, 10)
	if err := master.AddVariable(x1, map[form.ConstrID]float64{link.ID: 1}); err != nil {
		fatal("add x1", err)
	}

	// Subproblem variable, then its master-side representative.
	y := form.NewVariable(sp.NewVariableID(), "y", form.DutySubprobVar, form.Static, 3, 0, 10)
	if err := sp.AddVariable(y, nil); err != nil {
		fatal("add y", err)
	}
	mapping, err := form.CloneVariablesInto([]form.VarID{y.ID}, sp, master, form.Dynamic, form.DutyMasterRepVar)
	if err != nil {
		fatal("clone y into master", err)
	}
	rep := mapping[y.ID]
	master.Coefficients().Set(link.ID, rep, 1)

	// Convexity row for sp1, excluded from every coefficient view.
	conv := form.NewConstraint(master.NewConstraintID(), "conv-sp1", form.DutyConvexityConstr, form.Static, form.LessOrEqual, 1)
	if err := master.AddConstraint(conv, map[form.VarID]float64{rep: 1}); err != nil {
		fatal("add convexity constraint", err)
	}

	slog.Info("master assembled",
		"vars", master.Variables().Len(),
		"constrs", master.Constraints().Len(),
		"nnz", master.Coefficients().NNZ(),
	)

	// One reduced-cost round against a made-up dual.
	rch := calc.NewReducedCostsHelper(master)
	dual := form.NewDualSolution()
	dual.Values[link.ID] = 0.5
	repRC, pureRC := rch.ReducedCosts(dual)
	slog.Info("reduced costs",
		"pure", pureRC[x1.ID],
		"representative", repRC[rep],
		"view_constrs", len(rch.ConstraintIDs()),
	)

	// One subgradient round against a made-up primal.
	sgh := calc.NewSubgradientHelper(master)
	g := sgh.Subgradient(
		map[form.VarID]float64{rep: 1},
		map[form.VarID]float64{x1.ID: 2, rep: 3},
	)
	slog.Info("subgradient", "link", g[link.ID], "rhs", sgh.RHS()[link.ID])

	// A pricing round claiming the already-active representative improves
	// again would be a correctness violation; it is reported, not corrected.
	report := calc.NewColumnInconsistencyReport(master, sp.UID(), rep, -0.25)
	slog.Warn("column already inserted", "report", report)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
