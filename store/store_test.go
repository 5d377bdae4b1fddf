// SPDX-License-Identifier: MIT

package store_test

import (
	"testing"

	"github.com/katalvlaran/dantzig/store"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetContains(t *testing.T) {
	s := store.New[int32, string]()
	require.False(t, s.Contains(1))

	s.Set(1, "x1")
	require.True(t, s.Contains(1))
	v, err := s.Get(1)
	require.NoError(t, err)
	require.Equal(t, "x1", v)
}

func TestStore_GetMissing(t *testing.T) {
	s := store.New[int32, string]()
	_, err := s.Get(42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_LastWriteWins(t *testing.T) {
	s := store.New[int32, string]()
	s.Set(7, "old")
	s.Set(7, "new")
	v, err := s.Get(7)
	require.NoError(t, err)
	require.Equal(t, "new", v)
	require.Equal(t, 1, s.Len())
}

func TestStore_IDsSorted(t *testing.T) {
	s := store.New[int32, string]()
	s.Set(3, "c")
	s.Set(1, "a")
	s.Set(2, "b")
	require.Equal(t, []int32{1, 2, 3}, s.IDs())
}

func TestStore_Filter(t *testing.T) {
	s := store.New[int32, int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(3, 30)
	got := s.Filter(func(id int32, v int) bool { return v >= 20 })
	require.Equal(t, map[int32]int{2: 20, 3: 30}, got)
	// Filter result is detached from the store.
	delete(got, 2)
	require.True(t, s.Contains(2))
}

func TestStore_String(t *testing.T) {
	s := store.New[int32, string]()
	s.Set(2, "b")
	s.Set(1, "a")
	require.Equal(t, "{1: a, 2: b}", s.String())
}
