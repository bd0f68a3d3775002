// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

import (
	"fmt"
	"reflect"
	"sort"
)

// ArrayMapMaxSize is the maximum number of entries an ArrayMap may
// hold.  It is the crossover threshold at which Map switches from the
// array representation to the tree representation; it trades the cost
// of an O(n) whole-array copy per mutation against the pointer-chasing
// overhead of a tree, and was chosen such that the copy stays cheap.
const ArrayMapMaxSize = 25

// fixedArray is a bounded, size-tracked buffer of entries.  It is
// append-only while an ArrayMap mutation is constructing it, and
// frozen (shared, never written again) once the mutation returns.
type fixedArray[K, V any] struct {
	size     int
	contents [ArrayMapMaxSize]Entry[K, V]
}

// append copies entries on to the end of the array.  Exceeding
// ArrayMapMaxSize is a contract violation by the caller (the caller
// should have switched to a TreeMap before then), and fails loudly
// rather than silently truncating.
func (a *fixedArray[K, V]) append(entries ...Entry[K, V]) {
	newSize := a.size + len(entries)
	if newSize > ArrayMapMaxSize {
		panic(fmt.Errorf("immutable: ArrayMap overflow: %d entries > max %d; "+
			"should have switched to TreeMap", newSize, ArrayMapMaxSize))
	}
	copy(a.contents[a.size:], entries)
	a.size = newSize
}

// entries returns the frozen entries, in key order.  Callers must not
// write to the returned slice.
func (a *fixedArray[K, V]) entries() []Entry[K, V] {
	if a == nil {
		return nil
	}
	return a.contents[:a.size]
}

// ArrayMap is a value type containing a sorted map backed by a flat
// sorted array.  It is immutable, but has methods to efficiently
// create new maps that are mutations of it.  The backing array is
// shared between a map and the maps derived from it whenever a
// mutation turns out to be a no-op.
//
// A zero ArrayMap is not usable; it must be created with NewArrayMap.
type ArrayMap[K, V any] struct {
	arr *fixedArray[K, V] // nil means empty; the canonical empty map
	cmp Comparator[K]
}

// NewArrayMap returns an ArrayMap of the given entries, ordered by
// cmp.  Duplicate keys keep the last value given.
func NewArrayMap[K, V any](cmp Comparator[K], entries ...Entry[K, V]) ArrayMap[K, V] {
	ret := ArrayMap[K, V]{cmp: cmp}
	for _, entry := range entries {
		ret = ret.Insert(entry.K, entry.V)
	}
	return ret
}

func (m ArrayMap[K, V]) wrap(arr *fixedArray[K, V]) ArrayMap[K, V] {
	return ArrayMap[K, V]{arr: arr, cmp: m.cmp}
}

// Len returns the number of entries in the map.
func (m ArrayMap[K, V]) Len() int {
	if m.arr == nil {
		return 0
	}
	return m.arr.size
}

// lowerBound returns the index of the first entry whose key is not
// less than key; Len() if there is no such entry.
func (m ArrayMap[K, V]) lowerBound(key K) int {
	entries := m.arr.entries()
	return sort.Search(len(entries), func(i int) bool {
		return m.cmp(entries[i].K, key) >= 0
	})
}

// IndexOf returns the position of key in the map's key order, or
// NotFound if the key is absent.
func (m ArrayMap[K, V]) IndexOf(key K) int {
	pos := m.lowerBound(key)
	if pos < m.Len() && m.cmp(m.arr.contents[pos].K, key) == 0 {
		return pos
	}
	return NotFound
}

// Get returns the value stored for key, if any.
func (m ArrayMap[K, V]) Get(key K) (V, bool) {
	if pos := m.IndexOf(key); pos != NotFound {
		return m.arr.contents[pos].V, true
	}
	var zero V
	return zero, false
}

// Min returns the entry with the smallest key, if any.
func (m ArrayMap[K, V]) Min() (Entry[K, V], bool) {
	if m.Len() == 0 {
		return Entry[K, V]{}, false
	}
	return m.arr.contents[0], true
}

// Max returns the entry with the largest key, if any.
func (m ArrayMap[K, V]) Max() (Entry[K, V], bool) {
	if m.Len() == 0 {
		return Entry[K, V]{}, false
	}
	return m.arr.contents[m.arr.size-1], true
}

// Insert returns a map identical to this one, but with key set to
// value.  If an identical entry is already present then the original
// map is returned as-is, backing array included; otherwise the new map
// gets a freshly allocated backing array and this map is unaffected.
func (m ArrayMap[K, V]) Insert(key K, value V) ArrayMap[K, V] {
	entries := m.arr.entries()
	pos := m.lowerBound(key)
	replacing := pos < len(entries) && m.cmp(entries[pos].K, key) == 0
	if replacing && valuesEqual(entries[pos].V, value) {
		return m
	}

	arr := new(fixedArray[K, V])
	arr.append(entries[:pos]...)
	arr.append(Entry[K, V]{K: key, V: value})
	if replacing {
		arr.append(entries[pos+1:]...)
	} else {
		arr.append(entries[pos:]...)
	}
	return m.wrap(arr)
}

// Delete returns a map identical to this one, but without key.
// Deleting an absent key is a no-op and returns the original map;
// deleting the last entry returns the canonical empty map.
func (m ArrayMap[K, V]) Delete(key K) ArrayMap[K, V] {
	pos := m.IndexOf(key)
	switch {
	case pos == NotFound:
		return m
	case m.Len() == 1:
		return m.wrap(nil)
	}

	entries := m.arr.entries()
	arr := new(fixedArray[K, V])
	arr.append(entries[:pos]...)
	arr.append(entries[pos+1:]...)
	return m.wrap(arr)
}

// Range calls fn for each entry in ascending key order, until fn
// returns false.
func (m ArrayMap[K, V]) Range(fn func(K, V) bool) {
	for _, entry := range m.arr.entries() {
		if !fn(entry.K, entry.V) {
			return
		}
	}
}

// RangeReverse calls fn for each entry in descending key order, until
// fn returns false.
func (m ArrayMap[K, V]) RangeReverse(fn func(K, V) bool) {
	entries := m.arr.entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if !fn(entries[i].K, entries[i].V) {
			return
		}
	}
}

// RangeFrom calls fn for each entry whose key is not less than key, in
// ascending key order, until fn returns false.
func (m ArrayMap[K, V]) RangeFrom(key K, fn func(K, V) bool) {
	entries := m.arr.entries()
	for _, entry := range entries[m.lowerBound(key):] {
		if !fn(entry.K, entry.V) {
			return
		}
	}
}

// RangeIn calls fn for each entry whose key is not less than lo and
// less than hi, in ascending key order, until fn returns false.  An
// empty or inverted range yields nothing.
func (m ArrayMap[K, V]) RangeIn(lo, hi K, fn func(K, V) bool) {
	m.RangeFrom(lo, func(k K, v V) bool {
		if m.cmp(k, hi) >= 0 {
			return false
		}
		return fn(k, v)
	})
}

// RangeReverseFrom calls fn for each entry whose key is not greater
// than key, in descending key order, until fn returns false.
func (m ArrayMap[K, V]) RangeReverseFrom(key K, fn func(K, V) bool) {
	entries := m.arr.entries()
	// lowerBound is the first entry >= key; back up past entries == key
	// to make the bound inclusive.
	pos := m.lowerBound(key)
	for pos < len(entries) && m.cmp(entries[pos].K, key) == 0 {
		pos++
	}
	for i := pos - 1; i >= 0; i-- {
		if !fn(entries[i].K, entries[i].V) {
			return
		}
	}
}

// valuesEqual reports whether an entry holding a is interchangeable
// with one holding b, for the purpose of eliding a copy when
// re-inserting an entry that is already present.  Equality is
// best-effort: values of uncomparable types are never considered
// equal, which costs an allocation but is always correct.
func valuesEqual[V any](a, b V) bool {
	anyA := any(a)
	if t := reflect.TypeOf(anyA); t == nil || !t.Comparable() {
		return false
	}
	return anyA == any(b)
}
