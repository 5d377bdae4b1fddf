// SPDX-License-Identifier: MIT

// Package form: cloning entities across formulations.
//
// Cloning materializes, e.g., the master-side representative of a
// subproblem variable: the clone is a distinct entity with a fresh
// identifier in the destination, a caller-chosen flag and duty, perennial
// and current values copied from the origin, and the origin's coefficient
// row/column transferred so membership is preserved under the new identity.
// The clone → origin mapping is retained on the destination for later
// bookkeeping (correlating a representative with its source variable).

package form

// VarOrigin locates the source of a cloned variable.
type VarOrigin struct {
	// Formulation is the uid of the source formulation.
	Formulation FormulationID

	// Var is the identifier the origin had there.
	Var VarID
}

// ConstrOrigin locates the source of a cloned constraint.
type ConstrOrigin struct {
	// Formulation is the uid of the source formulation.
	Formulation FormulationID

	// Constr is the identifier the origin had there.
	Constr ConstrID
}

// CloneVariablesInto copies the variables named by ids from src into dst.
// Each clone receives a fresh dst identifier, the given kind and duty, and
// value fields copied from its origin; the origin's coefficient column is
// transferred entry by entry (the constraint axis is shared between the
// two relations, so membership survives the identity change). Returns the
// origin → clone identifier mapping.
// Complexity: O(len(ids) + transferred nonzeros).
func CloneVariablesInto(ids []VarID, src, dst *Formulation, kind Flag, duty Duty) (map[VarID]VarID, error) {
	mapping := make(map[VarID]VarID, len(ids))
	for _, id := range ids {
		orig, err := src.Variable(id)
		if err != nil {
			return nil, err
		}
		clone := *orig
		clone.ID = dst.NewVariableID()
		clone.Kind = kind
		clone.Duty = duty
		if err = dst.AddVariable(&clone, nil); err != nil {
			return nil, err
		}
		for _, e := range src.coeffs.Col(id) {
			dst.coeffs.Set(e.ID, clone.ID, e.Coeff)
		}
		dst.varOrigins[clone.ID] = VarOrigin{Formulation: src.uid, Var: id}
		mapping[id] = clone.ID
	}

	return mapping, nil
}

// CloneConstraintsInto copies the constraints named by ids from src into
// dst, analogously to CloneVariablesInto: fresh identifiers, caller-chosen
// kind and duty, perennial right-hand sides copied, coefficient rows
// transferred over the shared variable axis.
// Complexity: O(len(ids) + transferred nonzeros).
func CloneConstraintsInto(ids []ConstrID, src, dst *Formulation, kind Flag, duty Duty) (map[ConstrID]ConstrID, error) {
	mapping := make(map[ConstrID]ConstrID, len(ids))
	for _, id := range ids {
		orig, err := src.Constraint(id)
		if err != nil {
			return nil, err
		}
		clone := *orig
		clone.ID = dst.NewConstraintID()
		clone.Kind = kind
		clone.Duty = duty
		if err = dst.AddConstraint(&clone, nil); err != nil {
			return nil, err
		}
		for _, e := range src.coeffs.Row(id) {
			dst.coeffs.Set(clone.ID, e.ID, e.Coeff)
		}
		dst.constrOrigins[clone.ID] = ConstrOrigin{Formulation: src.uid, Constr: id}
		mapping[id] = clone.ID
	}

	return mapping, nil
}

// VariableOrigin returns the origin of a cloned variable and whether id was
// produced by CloneVariablesInto.
func (f *Formulation) VariableOrigin(id VarID) (VarOrigin, bool) {
	o, ok := f.varOrigins[id]

	return o, ok
}

// ConstraintOrigin returns the origin of a cloned constraint and whether id
// was produced by CloneConstraintsInto.
func (f *Formulation) ConstraintOrigin(id ConstrID) (ConstrOrigin, bool) {
	o, ok := f.constrOrigins[id]

	return o, ok
}
