// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

// TreeMap is a value type containing a sorted map backed by a
// left-leaning red-black tree.  It is immutable, but has methods to
// efficiently create new maps that are mutations of it: a mutation
// allocates O(log n) nodes along the root-to-leaf path it touches and
// shares every unaffected subtree with the original map.
//
// A zero TreeMap is not usable; it must be created with NewTreeMap.
type TreeMap[K, V any] struct {
	root *node[K, V]
	cmp  Comparator[K]
}

// NewTreeMap returns a TreeMap of the given entries, ordered by cmp.
// Duplicate keys keep the last value given.
func NewTreeMap[K, V any](cmp Comparator[K], entries ...Entry[K, V]) TreeMap[K, V] {
	ret := TreeMap[K, V]{cmp: cmp}
	for _, entry := range entries {
		ret = ret.Insert(entry.K, entry.V)
	}
	return ret
}

func (m TreeMap[K, V]) wrap(root *node[K, V]) TreeMap[K, V] {
	return TreeMap[K, V]{root: root, cmp: m.cmp}
}

// Len returns the number of entries in the map.
func (m TreeMap[K, V]) Len() int {
	return int(m.root.getSize())
}

// Get returns the value stored for key, if any.
func (m TreeMap[K, V]) Get(key K) (V, bool) {
	if n := m.root.get(key, m.cmp); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// IndexOf returns the position of key in the map's key order, or
// NotFound if the key is absent.  The subtree size stored in each node
// makes this O(log n).
func (m TreeMap[K, V]) IndexOf(key K) int {
	idx := 0
	for n := m.root; n != nil; {
		switch c := m.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			idx += int(n.left.getSize()) + 1
			n = n.right
		default:
			return idx + int(n.left.getSize())
		}
	}
	return NotFound
}

// Min returns the entry with the smallest key, if any.
func (m TreeMap[K, V]) Min() (Entry[K, V], bool) {
	if m.root == nil {
		return Entry[K, V]{}, false
	}
	n := m.root.min()
	return Entry[K, V]{K: n.key, V: n.value}, true
}

// Max returns the entry with the largest key, if any.
func (m TreeMap[K, V]) Max() (Entry[K, V], bool) {
	if m.root == nil {
		return Entry[K, V]{}, false
	}
	n := m.root
	for n.right != nil {
		n = n.right
	}
	return Entry[K, V]{K: n.key, V: n.value}, true
}

// Insert returns a map identical to this one, but with key set to
// value.  This map is unaffected.
func (m TreeMap[K, V]) Insert(key K, value V) TreeMap[K, V] {
	return m.wrap(m.root.insert(key, value, m.cmp))
}

// Delete returns a map identical to this one, but without key.
// Deleting an absent key is a no-op and returns the original map.
func (m TreeMap[K, V]) Delete(key K) TreeMap[K, V] {
	return m.wrap(m.root.remove(key, m.cmp))
}

// Iter returns an iterator positioned on the first entry in ascending
// key order.
func (m TreeMap[K, V]) Iter() *Iterator[K, V] {
	return newIterator(m.root, m.cmp, ascending).seekBegin()
}

// IterEnd returns an ascending iterator positioned one past the last
// entry; stepping it backward yields the last entry.
func (m TreeMap[K, V]) IterEnd() *Iterator[K, V] {
	return newIterator(m.root, m.cmp, ascending).seekEnd()
}

// IterFrom returns an ascending iterator positioned on the first entry
// whose key is not less than key.
func (m TreeMap[K, V]) IterFrom(key K) *Iterator[K, V] {
	return newIterator(m.root, m.cmp, ascending).seekLowerBound(key)
}

// IterReverse returns an iterator positioned on the first entry in
// descending key order.
func (m TreeMap[K, V]) IterReverse() *Iterator[K, V] {
	return newIterator(m.root, m.cmp, descending).seekBegin()
}

// IterReverseEnd returns a descending iterator positioned one past the
// smallest entry.
func (m TreeMap[K, V]) IterReverseEnd() *Iterator[K, V] {
	return newIterator(m.root, m.cmp, descending).seekEnd()
}

// IterReverseFrom returns a descending iterator positioned on the
// first entry whose key is not greater than key.
func (m TreeMap[K, V]) IterReverseFrom(key K) *Iterator[K, V] {
	return newIterator(m.root, m.cmp, descending).seekLowerBound(key)
}

// TreeStats describes the shape of a TreeMap's backing tree.
type TreeStats struct {
	Size        int
	Height      int
	BlackHeight int
}

// Stats returns size and balance statistics for the map's backing
// tree.  Size is O(1); the heights cost a walk of the tree.
func (m TreeMap[K, V]) Stats() TreeStats {
	ret := TreeStats{
		Size:   m.Len(),
		Height: m.root.height(),
	}
	// Every root-to-leaf path has the same number of black nodes;
	// count down the leftmost one.
	for n := m.root; n != nil; n = n.left {
		if !n.getColor() {
			ret.BlackHeight++
		}
	}
	return ret
}

// Range calls fn for each entry in ascending key order, until fn
// returns false.
func (m TreeMap[K, V]) Range(fn func(K, V) bool) {
	for it := m.Iter(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// RangeReverse calls fn for each entry in descending key order, until
// fn returns false.
func (m TreeMap[K, V]) RangeReverse(fn func(K, V) bool) {
	for it := m.IterReverse(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// RangeFrom calls fn for each entry whose key is not less than key, in
// ascending key order, until fn returns false.
func (m TreeMap[K, V]) RangeFrom(key K, fn func(K, V) bool) {
	for it := m.IterFrom(key); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// RangeIn calls fn for each entry whose key is not less than lo and
// less than hi, in ascending key order, until fn returns false.  An
// empty or inverted range yields nothing.
func (m TreeMap[K, V]) RangeIn(lo, hi K, fn func(K, V) bool) {
	m.RangeFrom(lo, func(k K, v V) bool {
		if m.cmp(k, hi) >= 0 {
			return false
		}
		return fn(k, v)
	})
}

// RangeReverseFrom calls fn for each entry whose key is not greater
// than key, in descending key order, until fn returns false.
func (m TreeMap[K, V]) RangeReverseFrom(key K, fn func(K, V) bool) {
	for it := m.IterReverseFrom(key); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
