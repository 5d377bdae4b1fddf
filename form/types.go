// SPDX-License-Identifier: MIT

// Package form holds the formulation aggregate of a Dantzig-Wolfe
// decomposition: variable and constraint stores, the sparse coefficient
// relation between them, the objective sense, best-known solution records,
// and the non-owning parent link placing a formulation inside a
// master/subproblem/reformulation tree managed by a Registry.
//
// Structural roles are expressed as Duty tags grouped into DutySet
// categories. Duties are used for membership tests only: filtering which
// entities a derived view covers, never for behavioral dispatch.
//
// Every entity carries two explicit value fields: the perennial value fixed
// at creation (original cost, bound, right-hand side) and the current value
// a search may alter (branching, fixing). Entities are never physically
// deleted, only deactivated, so identifiers stay stable for cloning and
// warm starts.
//
// Errors:
//
//	ErrMaximizeUnsupported - maximization sense requested; only minimization exists.
//	ErrNilEntity           - nil variable/constraint passed to an add operation.
//	ErrNilBackend          - Optimize called with a nil backend.
//	ErrUnknownFormulation  - registry lookup with an unregistered uid.
//	store.ErrNotFound      - identifier lookups on absent entities.
package form

import "errors"

// Sentinel errors for formulation operations.
var (
	// ErrMaximizeUnsupported rejects a maximization objective sense.
	// Only minimization is supported; silent cost negation would mask sign
	// errors in reduced-cost computations.
	ErrMaximizeUnsupported = errors.New("form: maximization sense not supported")

	// ErrNilEntity indicates a nil variable or constraint was passed to Add.
	ErrNilEntity = errors.New("form: nil entity")

	// ErrNilBackend indicates Optimize was invoked without a backend.
	ErrNilBackend = errors.New("form: nil solver backend")

	// ErrUnknownFormulation indicates a registry lookup with a uid that was
	// never issued.
	ErrUnknownFormulation = errors.New("form: unknown formulation uid")
)

// VarID uniquely identifies a variable within one formulation.
// Identifiers are stable for the entity's lifetime and never reused,
// even after deactivation.
type VarID int32

// ConstrID uniquely identifies a constraint within one formulation.
type ConstrID int32

// FormulationID is the uid of a formulation inside a Registry. It doubles
// as the non-owning parent reference forming the decomposition tree.
type FormulationID int32

// NoParent marks a formulation without a parent (the reformulation root).
const NoParent FormulationID = -1

// Duty tags the structural role of a variable or constraint within the
// decomposition. Duties classify, they never dispatch.
type Duty uint8

const (
	// DutyUndefined is the zero duty; it belongs to no category.
	DutyUndefined Duty = iota

	// DutyPureMasterVar - a variable living only in the master.
	DutyPureMasterVar

	// DutyMasterRepVar - the master-side representative of a subproblem variable.
	DutyMasterRepVar

	// DutyMasterCol - a generated column in the master.
	DutyMasterCol

	// DutySubprobVar - a variable of a pricing subproblem.
	DutySubprobVar

	// DutyMasterConstr - an ordinary explicit master constraint.
	DutyMasterConstr

	// DutyConvexityConstr - a master convexity constraint bounding the
	// multiplicity of one subproblem's solutions.
	DutyConvexityConstr

	// DutySubprobConstr - a constraint of a pricing subproblem.
	DutySubprobConstr

	dutyCount // keep last
)

// dutyNames renders duties for diagnostics.
var dutyNames = [dutyCount]string{
	DutyUndefined:       "undefined",
	DutyPureMasterVar:   "pure-master-var",
	DutyMasterRepVar:    "master-rep-var",
	DutyMasterCol:       "master-col",
	DutySubprobVar:      "subprob-var",
	DutyMasterConstr:    "master-constr",
	DutyConvexityConstr: "convexity-constr",
	DutySubprobConstr:   "subprob-constr",
}

// String returns a stable lowercase name for the duty.
func (d Duty) String() string {
	if d >= dutyCount {
		return "invalid"
	}

	return dutyNames[d]
}

// DutySet is a category of duties, tested with Duty.In. Categories replace
// the subtype-style duty hierarchy of classical implementations with plain
// set membership.
type DutySet uint16

// NewDutySet builds a category from its member duties.
func NewDutySet(duties ...Duty) DutySet {
	var s DutySet
	for _, d := range duties {
		s |= 1 << d
	}

	return s
}

// In reports whether d belongs to the category.
func (d Duty) In(s DutySet) bool {
	return s&(1<<d) != 0
}

// Canonical duty categories consumed by the calc views.
var (
	// PureMasterVarDuties selects variables priced entirely inside the master.
	PureMasterVarDuties = NewDutySet(DutyPureMasterVar)

	// SubprobRepVarDuties selects master-side representatives of subproblem
	// variables, generated columns included.
	SubprobRepVarDuties = NewDutySet(DutyMasterRepVar, DutyMasterCol)

	// RepresentativeColumnDuties is the union consumed by the subgradient
	// view: pure-master plus subproblem-representative variables.
	RepresentativeColumnDuties = NewDutySet(DutyPureMasterVar, DutyMasterRepVar, DutyMasterCol)

	// ConvexityConstrDuties selects convexity constraints, which every
	// coefficient view excludes.
	ConvexityConstrDuties = NewDutySet(DutyConvexityConstr)
)

// Flag records whether an entity was present at model build (Static) or
// inserted during the search (Dynamic), e.g. a generated column.
type Flag uint8

const (
	// Static marks entities present at model build.
	Static Flag = iota

	// Dynamic marks entities added during search.
	Dynamic
)

// String returns "static" or "dynamic".
func (f Flag) String() string {
	if f == Dynamic {
		return "dynamic"
	}

	return "static"
}

// ObjSense is the objective sense of a formulation. Only minimization is
// representable; see Formulation.RegisterObjectiveSense.
type ObjSense uint8

// Minimize is the single supported objective sense.
const Minimize ObjSense = iota

// ConstrSense is the relational sense of a constraint row.
type ConstrSense uint8

const (
	// LessOrEqual: row ≤ rhs.
	LessOrEqual ConstrSense = iota

	// GreaterOrEqual: row ≥ rhs.
	GreaterOrEqual

	// Equal: row = rhs.
	Equal
)

// String renders the sense as its operator.
func (s ConstrSense) String() string {
	switch s {
	case GreaterOrEqual:
		return ">="
	case Equal:
		return "="
	default:
		return "<="
	}
}
