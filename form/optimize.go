// SPDX-License-Identifier: MIT

// Package form: solver delegation.
//
// Solving is an external capability: a Backend consumes the formulation's
// variables, constraints, coefficient relation, and objective sense, runs
// to completion, and reports a termination status plus zero or more primal
// solutions and an optional dual. Optimize only adapts that report; its
// single side effect is the optional overwrite of the formulation's
// best-known records. A zero-result report is an ordinary outcome signaled
// through the returned objective (+Inf), never a raised fault.

package form

import (
	"cmp"
	"math"
	"slices"
)

// TerminationStatus is the backend-reported outcome of a solve.
type TerminationStatus uint8

const (
	// StatusUnknown - the backend reported no interpretable status.
	StatusUnknown TerminationStatus = iota

	// StatusOptimal - proven optimal solution.
	StatusOptimal

	// StatusInfeasible - proven infeasible.
	StatusInfeasible

	// StatusUnbounded - proven unbounded.
	StatusUnbounded

	// StatusLimit - iteration/time/objective limit reached.
	StatusLimit
)

// statusNames renders statuses for diagnostics.
var statusNames = [...]string{
	StatusUnknown:    "unknown",
	StatusOptimal:    "optimal",
	StatusInfeasible: "infeasible",
	StatusUnbounded:  "unbounded",
	StatusLimit:      "limit",
}

// String returns a stable lowercase name for the status.
func (s TerminationStatus) String() string {
	if int(s) >= len(statusNames) {
		return "invalid"
	}

	return statusNames[s]
}

// BackendResult is everything a backend reports for one solve: the
// termination status, every primal solution found (the result count is
// len(Primals)), and the dual solution when one exists.
type BackendResult struct {
	Status  TerminationStatus
	Primals []*PrimalSolution
	Dual    *DualSolution
}

// Backend is the abstract "solve this formulation" capability. Solve blocks
// until the backend terminates; cancellation and limits are backend
// configuration. Implementations must only read the formulation.
type Backend interface {
	Solve(f *Formulation) (BackendResult, error)
}

// OptimizeOutput is the adapted solve report.
type OptimizeOutput struct {
	// Status is the backend termination status.
	Status TerminationStatus

	// Objective is the best primal objective, +Inf when the backend
	// reported zero results.
	Objective float64

	// Primals holds every primal solution found, best first.
	Primals []*PrimalSolution

	// Dual is the dual solution, nil when absent.
	Dual *DualSolution
}

// OptimizeOption configures one Optimize call.
type OptimizeOption func(*optimizeConfig)

type optimizeConfig struct {
	record bool
}

// WithoutRecording leaves the formulation's best-known primal/dual records
// untouched regardless of what the backend found.
func WithoutRecording() OptimizeOption {
	return func(c *optimizeConfig) { c.record = false }
}

// Optimize delegates to the backend and adapts its report.
//
// With at least one result: returns the status, the best (lowest) primal
// objective, all primal solutions found ordered best first, and the dual
// when present; unless WithoutRecording was given, the best primal and the
// dual overwrite the formulation's best-known records.
//
// With zero results: returns the status, objective +Inf, no solutions and
// no dual, and no error. Callers inspect len(Primals) before using
// solutions.
func (f *Formulation) Optimize(b Backend, opts ...OptimizeOption) (OptimizeOutput, error) {
	if b == nil {
		return OptimizeOutput{}, ErrNilBackend
	}
	cfg := optimizeConfig{record: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := b.Solve(f)
	if err != nil {
		return OptimizeOutput{}, err
	}

	if len(res.Primals) == 0 {
		return OptimizeOutput{Status: res.Status, Objective: math.Inf(1)}, nil
	}

	// Order best (lowest objective) first; minimization is the only sense.
	primals := make([]*PrimalSolution, len(res.Primals))
	copy(primals, res.Primals)
	slices.SortStableFunc(primals, func(a, b *PrimalSolution) int {
		return cmp.Compare(a.Objective, b.Objective)
	})

	if cfg.record {
		f.bestPrimal = primals[0].Clone()
		if res.Dual != nil {
			f.bestDual = res.Dual.Clone()
		}
	}

	return OptimizeOutput{
		Status:    res.Status,
		Objective: primals[0].Objective,
		Primals:   primals,
		Dual:      res.Dual,
	}, nil
}

// ComputeOriginalCost evaluates sol against the perennial costs: the sum
// over nonzero entries of perennial cost × value. Used to cross-check the
// backend-reported objective. Fails with a wrapped store.ErrNotFound when
// the solution references an identifier absent from the variable store.
func (f *Formulation) ComputeOriginalCost(sol *PrimalSolution) (float64, error) {
	total := 0.0
	for id, val := range sol.Values {
		if val == 0 {
			continue
		}
		v, err := f.Variable(id)
		if err != nil {
			return 0, err
		}
		total += v.PerennialCost * val
	}

	return total, nil
}
