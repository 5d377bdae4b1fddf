// Package dantzig is the formulation data model behind a Dantzig-Wolfe
// decomposition / column-generation solver: variables, constraints, the
// sparse coefficient relation between them, and the read-only numeric
// views a column-generation or Lagrangian-subgradient driver consumes on
// every iteration.
//
// What lives where:
//
//	store/        — generic identifier-keyed entity store (variables, constraints)
//	coeff/        — dual-indexed sparse coefficient relation + dense export
//	form/         — the Formulation aggregate: duties, perennial/current values,
//	                cloning across formulations, registry, solver delegation
//	calc/         — derived snapshots: reduced-cost helper, subgradient helper,
//	                column-inconsistency diagnostics
//	highsbackend/ — a concrete solve backend over the HiGHS binding
//	cmd/dwdemo/   — a runnable tour of the views
//
// dantzig does not solve anything by itself: the iterative search drivers
// and the LP/MIP engine are external collaborators reached through the
// form.Backend capability. Only minimization masters are supported.
//
//	go get github.com/katalvlaran/dantzig
package dantzig
