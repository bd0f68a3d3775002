// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

// direction is an Iterator's traversal policy.  "forward" is the
// direction the iterator yields entries in; "backward" is the other
// one.  For ascending iteration forward descends right and backward
// descends left; descending iteration is the mirror image.
type direction int8

const (
	ascending direction = iota
	descending
)

// Iterator is a bidirectional cursor over a TreeMap.
//
// The tree is persistent, so nodes cannot carry parent pointers (a
// node is shared by arbitrarily many versions of the tree, each with a
// different parent in each).  The iterator instead keeps an explicit
// stack holding the chain of ancestors of the current node (the
// current node on top), and reconstructs ancestor information as it
// steps.
//
// An iterator is valid only as long as some map value referencing the
// same tree is retained.  It never mutates the tree.
type Iterator[K, V any] struct {
	root  *node[K, V]
	cmp   Comparator[K]
	dir   direction
	stack []*node[K, V]
	atEnd bool
}

// fwd returns n's child in the iterator's forward direction.
func (it *Iterator[K, V]) fwd(n *node[K, V]) *node[K, V] {
	if it.dir == ascending {
		return n.right
	}
	return n.left
}

// rev returns n's child in the iterator's backward direction.
func (it *Iterator[K, V]) rev(n *node[K, V]) *node[K, V] {
	if it.dir == ascending {
		return n.left
	}
	return n.right
}

func newIterator[K, V any](root *node[K, V], cmp Comparator[K], dir direction) *Iterator[K, V] {
	return &Iterator[K, V]{root: root, cmp: cmp, dir: dir}
}

// seekBegin positions the iterator on the first entry: the chain of
// backward children down from the root.  An empty tree is immediately
// at the end.
func (it *Iterator[K, V]) seekBegin() *Iterator[K, V] {
	it.stack = it.stack[:0]
	for n := it.root; n != nil; n = it.rev(n) {
		it.stack = append(it.stack, n)
	}
	it.atEnd = len(it.stack) == 0
	return it
}

// seekEnd positions the iterator one past the last entry.  The stack
// keeps the chain of forward children so that a Prev steps back onto
// the last entry.
func (it *Iterator[K, V]) seekEnd() *Iterator[K, V] {
	it.stack = it.stack[:0]
	for n := it.root; n != nil; n = it.fwd(n) {
		it.stack = append(it.stack, n)
	}
	it.atEnd = true
	return it
}

// seekLowerBound positions the iterator on the first entry that is not
// before key in iteration order: for ascending iteration the first
// entry with entry.K >= key, for descending the first with
// entry.K <= key.  If every entry is before key the iterator lands at
// the end.
func (it *Iterator[K, V]) seekLowerBound(key K) *Iterator[K, V] {
	it.stack = it.stack[:0]
	n := it.root
	for n != nil {
		it.stack = append(it.stack, n)
		c := it.cmp(n.key, key)
		if c == 0 {
			it.atEnd = false
			return it
		}
		if it.before(n.key, key) {
			n = it.fwd(n)
		} else {
			n = it.rev(n)
		}
	}
	// Every node left on the stack that is still before key was only
	// passed through on the way forward; drop those so that the top is
	// the bound itself (with exactly its ancestor chain beneath it).
	for len(it.stack) > 0 && it.before(it.stack[len(it.stack)-1].key, key) {
		it.stack = it.stack[:len(it.stack)-1]
	}
	if len(it.stack) == 0 {
		return it.seekEnd()
	}
	it.atEnd = false
	return it
}

// before reports whether a comes before b in iteration order.
func (it *Iterator[K, V]) before(a, b K) bool {
	if it.dir == ascending {
		return it.cmp(a, b) < 0
	}
	return it.cmp(a, b) > 0
}

// Valid reports whether the iterator is positioned on an entry (as
// opposed to one past the last one).
func (it *Iterator[K, V]) Valid() bool {
	return !it.atEnd && len(it.stack) > 0
}

func (it *Iterator[K, V]) top() *node[K, V] {
	return it.stack[len(it.stack)-1]
}

// Key returns the key of the current entry.  The iterator must be
// Valid.
func (it *Iterator[K, V]) Key() K {
	return it.top().key
}

// Value returns the value of the current entry.  The iterator must be
// Valid.
func (it *Iterator[K, V]) Value() V {
	return it.top().value
}

// Entry returns the current entry.  The iterator must be Valid.
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	n := it.top()
	return Entry[K, V]{K: n.key, V: n.value}
}

// Next advances the iterator one entry in the forward direction.
// Advancing past the last entry leaves the iterator at the end;
// advancing an at-end iterator is a no-op.
func (it *Iterator[K, V]) Next() {
	if it.atEnd {
		return
	}
	cur := it.top()
	if next := it.fwd(cur); next != nil {
		// The successor is the backward-most entry of the forward
		// subtree.
		for n := next; n != nil; n = it.rev(n) {
			it.stack = append(it.stack, n)
		}
		return
	}
	// No forward subtree: climb until we leave a backward child (those
	// ancestors have not been yielded yet); ancestors we reached
	// through their forward child are already behind us.
	child := it.pop()
	for len(it.stack) > 0 && it.fwd(it.top()) == child {
		child = it.pop()
	}
	if len(it.stack) == 0 {
		it.seekEnd()
	}
}

// Prev steps the iterator one entry backward.  Stepping backward from
// the end lands on the last entry; stepping backward from the first
// entry is a no-op.
func (it *Iterator[K, V]) Prev() {
	if it.atEnd {
		// seekEnd (and an exhausted Next) leave the forward spine on
		// the stack, so the last entry is already on top.
		it.atEnd = len(it.stack) == 0 // only an empty tree stays at end
		return
	}
	cur := it.top()
	if prev := it.rev(cur); prev != nil {
		for n := prev; n != nil; n = it.fwd(n) {
			it.stack = append(it.stack, n)
		}
		return
	}
	child := it.pop()
	for len(it.stack) > 0 && it.rev(it.top()) == child {
		child = it.pop()
	}
	if len(it.stack) == 0 {
		// Stepped backward from the first entry; stay on it.
		it.seekBegin()
	}
}

func (it *Iterator[K, V]) pop() *node[K, V] {
	n := it.top()
	it.stack = it.stack[:len(it.stack)-1]
	return n
}

// Equal reports whether two iterators reference the same entry of the
// same tree (by node identity), or are both at the end.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	if it.atEnd || other.atEnd {
		return it.atEnd == other.atEnd
	}
	return it.top() == other.top()
}
