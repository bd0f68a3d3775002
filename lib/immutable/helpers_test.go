// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// intMap is the part of the map contract shared by all three
// representations, over int keys and values.  Mutations return
// concrete types and stay per-representation.
type intMap interface {
	Len() int
	Get(int) (int, bool)
	IndexOf(int) int
	Min() (Entry[int, int], bool)
	Max() (Entry[int, int], bool)
	Range(func(int, int) bool)
	RangeReverse(func(int, int) bool)
	RangeFrom(int, func(int, int) bool)
	RangeIn(int, int, func(int, int) bool)
	RangeReverseFrom(int, func(int, int) bool)
}

var (
	_ intMap = ArrayMap[int, int]{}
	_ intMap = TreeMap[int, int]{}
	_ intMap = Map[int, int]{}
)

// seq returns the integers from start up to (but not including) end,
// stepping by step; a negative step counts down.
func seq(start, end, step int) []int {
	var ret []int
	if step > 0 {
		for i := start; i < end; i += step {
			ret = append(ret, i)
		}
	} else {
		for i := start; i > end; i += step {
			ret = append(ret, i)
		}
	}
	return ret
}

func shuffled(vals []int) []int {
	ret := append([]int(nil), vals...)
	rand.New(rand.NewSource(0)).Shuffle(len(ret), func(i, j int) {
		ret[i], ret[j] = ret[j], ret[i]
	})
	return ret
}

func keysOf(m intMap) []int {
	var ret []int
	m.Range(func(k, _ int) bool {
		ret = append(ret, k)
		return true
	})
	return ret
}

func reverseKeysOf(m intMap) []int {
	var ret []int
	m.RangeReverse(func(k, _ int) bool {
		ret = append(ret, k)
		return true
	})
	return ret
}

func keysFrom(m intMap, key int) []int {
	var ret []int
	m.RangeFrom(key, func(k, _ int) bool {
		ret = append(ret, k)
		return true
	})
	return ret
}

func keysIn(m intMap, lo, hi int) []int {
	var ret []int
	m.RangeIn(lo, hi, func(k, _ int) bool {
		ret = append(ret, k)
		return true
	})
	return ret
}

func reverseKeysFrom(m intMap, key int) []int {
	var ret []int
	m.RangeReverseFrom(key, func(k, _ int) bool {
		ret = append(ret, k)
		return true
	})
	return ret
}

func requireFound(t *testing.T, m intMap, key, want int) {
	t.Helper()
	val, ok := m.Get(key)
	require.Truef(t, ok, "key %v should be present", key)
	require.Equalf(t, want, val, "key %v", key)
}

func requireNotFound(t *testing.T, m intMap, key int) {
	t.Helper()
	_, ok := m.Get(key)
	require.Falsef(t, ok, "key %v should be absent", key)
}
