// SPDX-License-Identifier: MIT

// Package coeff implements the bipartite sparse coefficient relation between
// constraint identifiers and variable identifiers.
//
// A Relation stores (row id, column id) → coefficient pairs indexed on both
// axes, so a constraint row and a variable column are each iterable in
// O(nonzeros) and a pair reads identically whichever axis it is reached
// from. The nested-map layout follows the same hashed-adjacency scheme as
// an adjacency list: O(1) amortized insertion, no positional storage.
//
// Extract produces a new Relation restricted by row/column keep-predicates;
// it is a pure filter and never mutates the source. Dense exports a
// restriction into a gonum matrix for numeric consumers.
package coeff

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Entry is one nonzero of a row or column view.
type Entry[K cmp.Ordered] struct {
	// ID is the identifier on the opposite axis.
	ID K

	// Coeff is the stored coefficient.
	Coeff float64
}

// Relation is a dual-indexed sparse coefficient store.
// R is the row (constraint) identifier type, C the column (variable) one.
// The zero value is not usable; construct with New.
type Relation[R, C cmp.Ordered] struct {
	// rows[r][c] and cols[c][r] always hold the same coefficient.
	rows map[R]map[C]float64
	cols map[C]map[R]float64
}

// New creates an empty Relation.
// Complexity: O(1).
func New[R, C cmp.Ordered]() *Relation[R, C] {
	return &Relation[R, C]{
		rows: make(map[R]map[C]float64),
		cols: make(map[C]map[R]float64),
	}
}

// AddRow registers an empty row for r. Idempotent.
// Complexity: O(1).
func (m *Relation[R, C]) AddRow(r R) {
	if m.rows[r] == nil {
		m.rows[r] = make(map[C]float64)
	}
}

// AddCol registers an empty column for c. Idempotent.
// Complexity: O(1).
func (m *Relation[R, C]) AddCol(c C) {
	if m.cols[c] == nil {
		m.cols[c] = make(map[R]float64)
	}
}

// Set stores the coefficient for (r, c) on both axes, registering the row
// and column as needed. Setting an existing pair overwrites it.
// Complexity: O(1) amortized.
func (m *Relation[R, C]) Set(r R, c C, v float64) {
	m.AddRow(r)
	m.AddCol(c)
	m.rows[r][c] = v
	m.cols[c][r] = v
}

// Coefficient returns the value stored for (r, c) and whether the pair is
// explicit. Complexity: O(1).
func (m *Relation[R, C]) Coefficient(r R, c C) (float64, bool) {
	v, ok := m.rows[r][c]

	return v, ok
}

// Row returns the explicit entries of row r in ascending column-id order.
// An unregistered row yields an empty slice.
// Complexity: O(k log k) for k nonzeros in the row.
func (m *Relation[R, C]) Row(r R) []Entry[C] {
	out := make([]Entry[C], 0, len(m.rows[r]))
	for c, v := range m.rows[r] {
		out = append(out, Entry[C]{ID: c, Coeff: v})
	}
	sortEntries(out)

	return out
}

// Col returns the explicit entries of column c in ascending row-id order.
// Complexity: O(k log k) for k nonzeros in the column.
func (m *Relation[R, C]) Col(c C) []Entry[R] {
	out := make([]Entry[R], 0, len(m.cols[c]))
	for r, v := range m.cols[c] {
		out = append(out, Entry[R]{ID: r, Coeff: v})
	}
	sortEntries(out)

	return out
}

// RowIDs returns all registered row identifiers in ascending order.
func (m *Relation[R, C]) RowIDs() []R {
	ids := make([]R, 0, len(m.rows))
	for r := range m.rows {
		ids = append(ids, r)
	}
	slices.Sort(ids)

	return ids
}

// ColIDs returns all registered column identifiers in ascending order.
func (m *Relation[R, C]) ColIDs() []C {
	ids := make([]C, 0, len(m.cols))
	for c := range m.cols {
		ids = append(ids, c)
	}
	slices.Sort(ids)

	return ids
}

// NNZ returns the number of explicit pairs. Complexity: O(rows).
func (m *Relation[R, C]) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}

	return n
}

// Extract returns a new Relation containing exactly the pairs whose row
// passes keepRow AND whose column passes keepCol, with coefficients copied
// verbatim. Rows and columns passing their predicate are registered in the
// result even when they end up empty, so the restriction keeps its shape.
// The source is never mutated.
// Complexity: O(rows + cols + nnz).
func (m *Relation[R, C]) Extract(keepRow func(R) bool, keepCol func(C) bool) *Relation[R, C] {
	out := New[R, C]()
	// Register kept columns first so empty columns survive the restriction.
	for c := range m.cols {
		if keepCol(c) {
			out.AddCol(c)
		}
	}
	for r, row := range m.rows {
		if !keepRow(r) {
			continue
		}
		out.AddRow(r)
		for c, v := range row {
			if keepCol(c) {
				out.Set(r, c, v)
			}
		}
	}

	return out
}

// Clone returns a deep copy of the relation.
// Complexity: O(rows + cols + nnz).
func (m *Relation[R, C]) Clone() *Relation[R, C] {
	return m.Extract(func(R) bool { return true }, func(C) bool { return true })
}

// Dense materializes the relation into a dense gonum matrix laid out by the
// supplied identifier orderings: row i of the result is rowIDs[i], column j
// is colIDs[j]. Pairs outside the given identifiers are ignored; absent
// pairs read as 0. Returns nil when either dimension is zero (gonum
// rejects empty shapes).
// Complexity: O(len(rowIDs)·len(colIDs)).
func (m *Relation[R, C]) Dense(rowIDs []R, colIDs []C) *mat.Dense {
	if len(rowIDs) == 0 || len(colIDs) == 0 {
		return nil
	}
	d := mat.NewDense(len(rowIDs), len(colIDs), nil)
	for i, r := range rowIDs {
		row := m.rows[r]
		if row == nil {
			continue
		}
		for j, c := range colIDs {
			if v, ok := row[c]; ok {
				d.Set(i, j, v)
			}
		}
	}

	return d
}

// String renders the explicit pairs as "(r,c)=v" lines in ascending
// (row, column) order. Debug output only.
func (m *Relation[R, C]) String() string {
	var b strings.Builder
	for _, r := range m.RowIDs() {
		for _, e := range m.Row(r) {
			fmt.Fprintf(&b, "(%v,%v)=%v\n", r, e.ID, e.Coeff)
		}
	}

	return b.String()
}

// sortEntries orders entries by identifier ascending.
func sortEntries[K cmp.Ordered](es []Entry[K]) {
	slices.SortFunc(es, func(a, b Entry[K]) int { return cmp.Compare(a.ID, b.ID) })
}
