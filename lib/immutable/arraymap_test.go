// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func toArrayMap(vals []int) ArrayMap[int, int] {
	ret := NewArrayMap[int, int](NativeCompare[int])
	for _, val := range vals {
		ret = ret.Insert(val, val)
	}
	return ret
}

func TestArrayMapSearchForSpecificKey(t *testing.T) {
	m := NewArrayMap(NativeCompare[int],
		Entry[int, int]{K: 1, V: 3},
		Entry[int, int]{K: 2, V: 4})

	requireFound(t, m, 1, 3)
	requireFound(t, m, 2, 4)
	requireNotFound(t, m, 3)
}

func TestArrayMapRemoveKeyValuePair(t *testing.T) {
	m := NewArrayMap(NativeCompare[int],
		Entry[int, int]{K: 1, V: 3},
		Entry[int, int]{K: 2, V: 4})

	m2 := m.Delete(1)
	requireFound(t, m2, 2, 4)
	requireNotFound(t, m2, 1)

	// Make sure the original is not mutated.
	requireFound(t, m, 1, 3)
	requireFound(t, m, 2, 4)
}

func TestArrayMapMoreRemovals(t *testing.T) {
	m := NewArrayMap[int, int](NativeCompare[int]).
		Insert(1, 1).
		Insert(50, 50).
		Insert(3, 3).
		Insert(4, 4).
		Insert(7, 7).
		Insert(9, 9).
		Insert(1, 20).
		Insert(18, 18).
		Insert(3, 2).
		Insert(4, 71).
		Insert(7, 42).
		Insert(9, 88)

	requireFound(t, m, 7, 42)
	requireFound(t, m, 3, 2)
	requireFound(t, m, 1, 20)

	s1 := m.Delete(7)
	s2 := m.Delete(3)
	s3 := m.Delete(1)

	requireNotFound(t, s1, 7)
	requireFound(t, s1, 3, 2)
	requireFound(t, s1, 1, 20)

	requireFound(t, s2, 7, 42)
	requireNotFound(t, s2, 3)
	requireFound(t, s2, 1, 20)

	requireFound(t, s3, 7, 42)
	requireFound(t, s3, 3, 2)
	requireNotFound(t, s3, 1)
}

func TestArrayMapRemovesMiddle(t *testing.T) {
	m := toArrayMap([]int{1, 2, 3})

	s1 := m.Delete(2)
	requireFound(t, s1, 1, 1)
	requireNotFound(t, s1, 2)
	requireFound(t, s1, 3, 3)
}

func TestArrayMapIncreasing(t *testing.T) {
	m := toArrayMap(seq(0, ArrayMapMaxSize, 1))
	require.Equal(t, ArrayMapMaxSize, m.Len())

	for i := 0; i < ArrayMapMaxSize; i++ {
		m = m.Delete(i)
	}
	require.Equal(t, 0, m.Len())
}

func TestArrayMapOverride(t *testing.T) {
	m := NewArrayMap[int, int](NativeCompare[int]).
		Insert(10, 10).
		Insert(10, 8)

	requireFound(t, m, 10, 8)
	require.Equal(t, 1, m.Len())
}

func TestArrayMapChecksSize(t *testing.T) {
	m := toArrayMap(seq(0, ArrayMapMaxSize, 1))

	// Replacing an existing entry must not grow the map.
	m = m.Insert(5, 10)
	require.Equal(t, ArrayMapMaxSize, m.Len())

	require.Panics(t, func() {
		m.Insert(ArrayMapMaxSize, ArrayMapMaxSize)
	})
}

func TestArrayMapEmpty(t *testing.T) {
	m := NewArrayMap[int, int](NativeCompare[int]).Insert(10, 10).Delete(10)
	require.Equal(t, 0, m.Len())
	requireNotFound(t, m, 1)
	requireNotFound(t, m, 10)
}

func TestArrayMapEmptyRemoval(t *testing.T) {
	m := NewArrayMap[int, int](NativeCompare[int])
	m2 := m.Delete(1)
	require.Equal(t, 0, m2.Len())
	requireNotFound(t, m2, 1)
}

func TestArrayMapReverseTraversal(t *testing.T) {
	m := toArrayMap([]int{1, 5, 3, 2, 4})
	require.Equal(t, seq(5, 0, -1), reverseKeysOf(m))
}

func TestArrayMapInsertionAndRemovalOfMaxItems(t *testing.T) {
	toInsert := shuffled(seq(0, ArrayMapMaxSize, 1))
	toRemove := shuffled(toInsert)

	m := toArrayMap(toInsert)
	require.Equal(t, ArrayMapMaxSize, m.Len())
	require.Equal(t, seq(0, ArrayMapMaxSize, 1), keysOf(m))

	for _, i := range toRemove {
		m = m.Delete(i)
	}
	require.Equal(t, 0, m.Len())
}

func TestArrayMapBalanceProblem(t *testing.T) {
	m := toArrayMap([]int{1, 7, 8, 5, 2, 6, 4, 0, 3})
	require.Equal(t, seq(0, 9, 1), keysOf(m))
}

func TestArrayMapKeysFrom(t *testing.T) {
	m := toArrayMap(shuffled(seq(2, 42, 2)))
	require.Equal(t, 20, m.Len())

	require.Equal(t, seq(2, 42, 2), keysFrom(m, 0))   // before all keys
	require.Equal(t, []int(nil), keysFrom(m, 100))    // after all keys
	require.Equal(t, seq(10, 42, 2), keysFrom(m, 10)) // from a key in the map
	require.Equal(t, seq(12, 42, 2), keysFrom(m, 11)) // from in between keys
}

func TestArrayMapKeysIn(t *testing.T) {
	m := toArrayMap(shuffled(seq(2, 42, 2)))
	require.Equal(t, 20, m.Len())

	require.Equal(t, []int(nil), keysIn(m, 0, 1))    // before to before
	require.Equal(t, seq(2, 42, 2), keysIn(m, 0, 100))
	require.Equal(t, seq(2, 6, 2), keysIn(m, 0, 6))
	require.Equal(t, seq(2, 8, 2), keysIn(m, 0, 7))

	require.Equal(t, []int(nil), keysIn(m, 100, 0))
	require.Equal(t, []int(nil), keysIn(m, 100, 110))

	require.Equal(t, []int(nil), keysIn(m, 6, 0))
	require.Equal(t, seq(6, 42, 2), keysIn(m, 6, 100))
	require.Equal(t, seq(6, 10, 2), keysIn(m, 6, 10))
	require.Equal(t, seq(6, 12, 2), keysIn(m, 6, 11))

	require.Equal(t, []int(nil), keysIn(m, 7, 0))
	require.Equal(t, seq(8, 42, 2), keysIn(m, 7, 100))
	require.Equal(t, seq(8, 10, 2), keysIn(m, 7, 10))
	require.Equal(t, seq(8, 12, 2), keysIn(m, 7, 11))
}

func TestArrayMapReverseKeysFrom(t *testing.T) {
	m := toArrayMap(shuffled(seq(2, 42, 2)))
	require.Equal(t, 20, m.Len())

	require.Equal(t, []int(nil), reverseKeysFrom(m, 0))     // before all keys
	require.Equal(t, seq(40, 0, -2), reverseKeysFrom(m, 100)) // after all keys
	require.Equal(t, seq(10, 0, -2), reverseKeysFrom(m, 10))  // from a key in the map
	require.Equal(t, seq(10, 0, -2), reverseKeysFrom(m, 11))  // from in between keys
}

func TestArrayMapFindIndex(t *testing.T) {
	m := toArrayMap([]int{1, 3, 4, 7, 9, 50})

	require.Equal(t, NotFound, m.IndexOf(0))
	require.Equal(t, 0, m.IndexOf(1))
	require.Equal(t, NotFound, m.IndexOf(2))
	require.Equal(t, 1, m.IndexOf(3))
	require.Equal(t, 2, m.IndexOf(4))
	require.Equal(t, NotFound, m.IndexOf(5))
	require.Equal(t, NotFound, m.IndexOf(6))
	require.Equal(t, 3, m.IndexOf(7))
	require.Equal(t, NotFound, m.IndexOf(8))
	require.Equal(t, 4, m.IndexOf(9))
	require.Equal(t, 5, m.IndexOf(50))
}

func TestArrayMapAvoidsCopying(t *testing.T) {
	m := NewArrayMap[int, int](NativeCompare[int]).Insert(10, 20)

	// Re-inserting an identical entry must return the same backing
	// array, not an equal copy of it.
	duped := m.Insert(10, 20)
	require.Same(t, m.arr, duped.arr)

	// Inserting a different value must not.
	changed := m.Insert(10, 30)
	require.NotSame(t, m.arr, changed.arr)
}

func TestArrayMapMinMax(t *testing.T) {
	m := toArrayMap([]int{5, 1, 9})

	min, ok := m.Min()
	require.True(t, ok)
	require.Equal(t, 1, min.K)

	max, ok := m.Max()
	require.True(t, ok)
	require.Equal(t, 9, max.K)

	_, ok = NewArrayMap[int, int](NativeCompare[int]).Min()
	require.False(t, ok)
}
