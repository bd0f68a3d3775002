// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

// Map is a value type containing a sorted map.  It is a closed variant
// over the two backing representations: array-backed while small,
// tree-backed once it has ever grown past ArrayMapMaxSize entries.
// The representation switch happens on the Insert that would overflow
// the array; a map never demotes back to the array representation.
//
// Like ArrayMap and TreeMap, a Map is immutable: mutations return a
// new Map value sharing backing storage with the original.
//
// A zero Map is not usable; it must be created with NewMap.
type Map[K, V any] struct {
	array ArrayMap[K, V]
	tree  TreeMap[K, V]
	// isTree selects which representation is active.
	isTree bool
}

// NewMap returns a Map of the given entries, ordered by cmp.
// Duplicate keys keep the last value given.
func NewMap[K, V any](cmp Comparator[K], entries ...Entry[K, V]) Map[K, V] {
	ret := Map[K, V]{array: NewArrayMap[K, V](cmp)}
	for _, entry := range entries {
		ret = ret.Insert(entry.K, entry.V)
	}
	return ret
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int {
	if m.isTree {
		return m.tree.Len()
	}
	return m.array.Len()
}

// Get returns the value stored for key, if any.
func (m Map[K, V]) Get(key K) (V, bool) {
	if m.isTree {
		return m.tree.Get(key)
	}
	return m.array.Get(key)
}

// IndexOf returns the position of key in the map's key order, or
// NotFound if the key is absent.
func (m Map[K, V]) IndexOf(key K) int {
	if m.isTree {
		return m.tree.IndexOf(key)
	}
	return m.array.IndexOf(key)
}

// Min returns the entry with the smallest key, if any.
func (m Map[K, V]) Min() (Entry[K, V], bool) {
	if m.isTree {
		return m.tree.Min()
	}
	return m.array.Min()
}

// Max returns the entry with the largest key, if any.
func (m Map[K, V]) Max() (Entry[K, V], bool) {
	if m.isTree {
		return m.tree.Max()
	}
	return m.array.Max()
}

// Insert returns a map identical to this one, but with key set to
// value.  This map is unaffected.
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	if m.isTree {
		return Map[K, V]{tree: m.tree.Insert(key, value), isTree: true}
	}
	if m.array.Len() == ArrayMapMaxSize && m.array.IndexOf(key) == NotFound {
		// This insert would overflow the array; promote to the tree
		// representation first.
		tree := NewTreeMap[K, V](m.array.cmp)
		m.array.Range(func(k K, v V) bool {
			tree = tree.Insert(k, v)
			return true
		})
		return Map[K, V]{tree: tree.Insert(key, value), isTree: true}
	}
	return Map[K, V]{array: m.array.Insert(key, value)}
}

// Delete returns a map identical to this one, but without key.
// Deleting an absent key is a no-op and returns the original map.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.isTree {
		return Map[K, V]{tree: m.tree.Delete(key), isTree: true}
	}
	return Map[K, V]{array: m.array.Delete(key)}
}

// TreeStats returns balance statistics for the backing tree, or false
// while the map is still array-backed.
func (m Map[K, V]) TreeStats() (TreeStats, bool) {
	if !m.isTree {
		return TreeStats{}, false
	}
	return m.tree.Stats(), true
}

// Range calls fn for each entry in ascending key order, until fn
// returns false.
func (m Map[K, V]) Range(fn func(K, V) bool) {
	if m.isTree {
		m.tree.Range(fn)
	} else {
		m.array.Range(fn)
	}
}

// RangeReverse calls fn for each entry in descending key order, until
// fn returns false.
func (m Map[K, V]) RangeReverse(fn func(K, V) bool) {
	if m.isTree {
		m.tree.RangeReverse(fn)
	} else {
		m.array.RangeReverse(fn)
	}
}

// RangeFrom calls fn for each entry whose key is not less than key, in
// ascending key order, until fn returns false.
func (m Map[K, V]) RangeFrom(key K, fn func(K, V) bool) {
	if m.isTree {
		m.tree.RangeFrom(key, fn)
	} else {
		m.array.RangeFrom(key, fn)
	}
}

// RangeIn calls fn for each entry whose key is not less than lo and
// less than hi, in ascending key order, until fn returns false.
func (m Map[K, V]) RangeIn(lo, hi K, fn func(K, V) bool) {
	if m.isTree {
		m.tree.RangeIn(lo, hi, fn)
	} else {
		m.array.RangeIn(lo, hi, fn)
	}
}

// RangeReverseFrom calls fn for each entry whose key is not greater
// than key, in descending key order, until fn returns false.
func (m Map[K, V]) RangeReverseFrom(key K, fn func(K, V) bool) {
	if m.isTree {
		m.tree.RangeReverseFrom(key, fn)
	} else {
		m.array.RangeReverseFrom(key, fn)
	}
}
