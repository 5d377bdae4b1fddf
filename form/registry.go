// SPDX-License-Identifier: MIT

// Package form: the formulation registry.
//
// Formulations reference each other by uid rather than by pointer: the
// parent link of a subproblem names its master, the master's names the
// reformulation root. Keeping the tree as indices into one registry avoids
// cyclic ownership between formulations entirely.

package form

// Registry issues formulation uids and resolves parent references.
// Not safe for concurrent mutation; see the package concurrency notes.
type Registry struct {
	forms []*Formulation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// New creates a formulation, issues the next uid, and registers it.
func (r *Registry) New(opts ...Option) *Formulation {
	f := newFormulation(FormulationID(len(r.forms)), opts...)
	r.forms = append(r.forms, f)

	return f
}

// Get resolves a uid. Fails with ErrUnknownFormulation for uids the
// registry never issued.
func (r *Registry) Get(uid FormulationID) (*Formulation, error) {
	if uid < 0 || int(uid) >= len(r.forms) {
		return nil, ErrUnknownFormulation
	}

	return r.forms[int(uid)], nil
}

// ParentOf resolves f's parent link. Returns ErrUnknownFormulation when f
// has no parent or the link is dangling.
func (r *Registry) ParentOf(f *Formulation) (*Formulation, error) {
	return r.Get(f.Parent())
}

// Len returns the number of registered formulations.
func (r *Registry) Len() int {
	return len(r.forms)
}
