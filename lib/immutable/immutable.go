// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package immutable implements persistent (immutable) sorted maps.
//
// A "mutation" of a persistent map returns a new map value that shares
// most of its backing storage with the original; the original map is
// never modified and remains valid.  Because no operation ever writes
// to memory reachable from an existing map value, any number of
// goroutines may hold and read the same map value (or maps derived
// from it) without coordination.
//
// Two representations are provided: ArrayMap is backed by a flat
// sorted array and is the better choice for small maps (at most
// ArrayMapMaxSize entries); TreeMap is backed by a left-leaning
// red-black tree and scales to large maps with O(log n) mutations.
// Map composes the two, starting out array-backed and promoting
// itself to the tree representation when it outgrows the array.
package immutable

import (
	"golang.org/x/exp/constraints"
)

// A Comparator is a total order over K: negative if a<b, zero if a==b,
// positive if a>b.  It must be consistent (irreflexive, transitive);
// the sort and uniqueness invariants of every map in this package are
// undefined if it is not.  Comparators compare keys only; values never
// participate in ordering.
type Comparator[K any] func(a, b K) int

// NativeCompare is a Comparator for types that are ordered by the
// built-in `<` operator.
func NativeCompare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Entry is a single key/value pair in a map.
type Entry[K, V any] struct {
	K K
	V V
}

// NotFound is the index returned by IndexOf for keys that are not in
// the map.
const NotFound = -1
