// SPDX-License-Identifier: MIT

// Package store provides the identifier-keyed entity container used by a
// formulation for its variables and constraints.
//
// A Store maps small ordered identifiers to entity values with
// insert-or-overwrite semantics: Set always replaces the whole value
// (last-write-wins, no partial merge), Get on an absent identifier returns
// ErrNotFound. Insertion order carries no semantic meaning; IDs() sorts
// purely for deterministic debug rendering.
//
// Errors:
//
//	ErrNotFound - requested identifier is not present in the store.
package store

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotFound indicates a lookup of an identifier absent from the store.
var ErrNotFound = errors.New("store: identifier not found")

// Store is a generic identifier → value container.
// The zero value is not usable; construct with New.
type Store[K cmp.Ordered, V any] struct {
	items map[K]V
}

// New creates an empty Store.
// Complexity: O(1).
func New[K cmp.Ordered, V any]() *Store[K, V] {
	return &Store[K, V]{items: make(map[K]V)}
}

// Contains reports whether id is present.
// Complexity: O(1).
func (s *Store[K, V]) Contains(id K) bool {
	_, ok := s.items[id]

	return ok
}

// Get returns the value stored under id.
// Returns the zero value and ErrNotFound when id is absent.
// Complexity: O(1).
func (s *Store[K, V]) Get(id K) (V, error) {
	v, ok := s.items[id]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	return v, nil
}

// Set inserts or overwrites the value under id.
// Overwriting replaces the previous value entirely.
// Complexity: O(1) amortized.
func (s *Store[K, V]) Set(id K, v V) {
	s.items[id] = v
}

// IDs returns all identifiers in ascending order.
// Complexity: O(n log n).
func (s *Store[K, V]) IDs() []K {
	ids := make([]K, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Filter returns a fresh map of all entries satisfying pred.
// The map shares values with the store but mutating it does not touch the store.
// Complexity: O(n).
func (s *Store[K, V]) Filter(pred func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for id, v := range s.items {
		if pred(id, v) {
			out[id] = v
		}
	}

	return out
}

// Len returns the number of stored entries. O(1).
func (s *Store[K, V]) Len() int {
	return len(s.items)
}

// String renders the store as "{id: value, ...}" in ascending id order.
// Intended for debug output only.
func (s *Store[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.IDs() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", id, s.items[id])
	}
	b.WriteByte('}')

	return b.String()
}
