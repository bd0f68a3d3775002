// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

// node is a node in the left-leaning red-black tree backing a TreeMap.
//
// Nodes are immutable once published: an insertion or deletion copies
// the root-to-leaf path it touches and shares every other subtree with
// the previous version of the tree.  The empty tree (and every leaf's
// children) is the nil pointer; the accessors below are nil-safe so
// that nil behaves as the black, zero-size sentinel.
//
// The LLRB invariants maintained by fixUp:
//
//   - no red node has a red right child (red links lean left);
//   - no path has two consecutive red links;
//   - every root-to-leaf path has the same number of black nodes;
//   - size == 1 + left.size() + right.size().
type node[K, V any] struct {
	key   K
	value V

	red  bool
	size uint32

	left, right *node[K, V]
}

func (n *node[K, V]) getSize() uint32 {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[K, V]) getColor() bool {
	if n == nil {
		return false // nil is black
	}
	return n.red
}

// clone returns a fresh unshared copy of n.  All structural edits in
// this file happen on such unpublished copies; published nodes are
// never written to.
func (n *node[K, V]) clone() *node[K, V] {
	ret := *n
	return &ret
}

// insert returns the root of a new tree that contains the given
// key/value pair in addition to everything n contains.  If the key is
// already present only its value is replaced; the shape of the tree
// (and therefore its balance) is unchanged.
func (n *node[K, V]) insert(key K, value V, cmp Comparator[K]) *node[K, V] {
	root := n.insertRec(key, value, cmp)
	// The root is always black.  insertRec may hand back a red root
	// (a color flip at the top does that); the root it hands back is
	// freshly allocated, so recoloring it here is not a mutation of
	// anything shared.
	root.red = false
	return root
}

func (n *node[K, V]) insertRec(key K, value V, cmp Comparator[K]) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, value: value, red: true, size: 1}
	}

	ret := n.clone()
	switch c := cmp(key, n.key); {
	case c < 0:
		ret.left = n.left.insertRec(key, value, cmp)
		ret.fixUp()
	case c > 0:
		ret.right = n.right.insertRec(key, value, cmp)
		ret.fixUp()
	default:
		ret.value = value
	}
	return ret
}

// fixUp restores the LLRB invariants at n on the way back up from an
// edit lower in the tree.  n must be an unpublished copy.
func (n *node[K, V]) fixUp() {
	n.size = n.left.getSize() + 1 + n.right.getSize()

	if n.right.getColor() && !n.left.getColor() {
		n.rotateLeft()
	}
	if n.left.getColor() && n.left.left.getColor() {
		n.rotateRight()
	}
	if n.left.getColor() && n.right.getColor() {
		n.flipColors()
	}
}

// rotateLeft turns a right-leaning red link into a left-leaning one:
//
//	     n              r
//	   /   \          /   \
//	  a     r   =>   n     c
//	       / \      / \
//	      b   c    a   b
//
// The node keeps its color and total size; the demoted node is red.
func (n *node[K, V]) rotateLeft() {
	r := n.right
	demoted := &node[K, V]{
		key:   n.key,
		value: n.value,
		red:   true,
		left:  n.left,
		right: r.left,
	}
	demoted.size = demoted.left.getSize() + 1 + demoted.right.getSize()
	n.key, n.value = r.key, r.value
	n.left, n.right = demoted, r.right
}

// rotateRight is the mirror image of rotateLeft:
//
//	      n           l
//	    /   \       /   \
//	   l     c =>  a     n
//	  / \               / \
//	 a   b             b   c
func (n *node[K, V]) rotateRight() {
	l := n.left
	demoted := &node[K, V]{
		key:   n.key,
		value: n.value,
		red:   true,
		left:  l.right,
		right: n.right,
	}
	demoted.size = demoted.left.getSize() + 1 + demoted.right.getSize()
	n.key, n.value = l.key, l.value
	n.left, n.right = l.left, demoted
}

// flipColors inverts the color of n and of both of its children
// (which must both exist).  Key, value, and size are unchanged.
func (n *node[K, V]) flipColors() {
	left := n.left.clone()
	left.red = !left.red
	right := n.right.clone()
	right.red = !right.red

	n.red = !n.red
	n.left, n.right = left, right
}

// get returns the node holding key, or nil.
func (n *node[K, V]) get(key K, cmp Comparator[K]) *node[K, V] {
	for n != nil {
		switch c := cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// min returns the node with the smallest key in n's subtree.  n must
// not be nil.
func (n *node[K, V]) min() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// height returns the number of nodes on the longest root-to-leaf path
// in n's subtree.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if r > l {
		l = r
	}
	return l + 1
}

// remove returns the root of a new tree that contains everything n
// contains except the given key.  Removing an absent key returns n
// itself unchanged.
//
// This is the standard LLRB deletion: red links are pushed down ahead
// of the descent (moveRedLeft/moveRedRight) so that the node being
// removed is never a lone black leaf, and fixUp repairs the invariants
// on the way back up.  As with insert, the touched path is copied and
// everything else is shared.
func (n *node[K, V]) remove(key K, cmp Comparator[K]) *node[K, V] {
	if n.get(key, cmp) == nil {
		return n
	}

	root := n.clone()
	if !root.left.getColor() && !root.right.getColor() {
		root.red = true
	}
	root = root.removeRec(key, cmp)
	if root != nil {
		root.red = false
	}
	return root
}

// removeRec removes key from the subtree rooted at n.  n must be an
// unpublished copy, and key must be present in the subtree.
func (n *node[K, V]) removeRec(key K, cmp Comparator[K]) *node[K, V] {
	if cmp(key, n.key) < 0 {
		if !n.left.getColor() && !n.left.left.getColor() {
			n.moveRedLeft()
		}
		n.left = n.left.clone().removeRec(key, cmp)
	} else {
		if n.left.getColor() {
			n.rotateRight()
		}
		if cmp(key, n.key) == 0 && n.right == nil {
			return nil
		}
		if !n.right.getColor() && !n.right.left.getColor() {
			n.moveRedRight()
		}
		if cmp(key, n.key) == 0 {
			successor := n.right.min()
			n.key, n.value = successor.key, successor.value
			n.right = n.right.clone().removeMinRec()
		} else {
			n.right = n.right.clone().removeRec(key, cmp)
		}
	}
	n.fixUp()
	return n
}

// removeMinRec removes the smallest-keyed node from the subtree rooted
// at n.  n must be an unpublished copy.
func (n *node[K, V]) removeMinRec() *node[K, V] {
	if n.left == nil {
		return nil
	}
	if !n.left.getColor() && !n.left.left.getColor() {
		n.moveRedLeft()
	}
	n.left = n.left.clone().removeMinRec()
	n.fixUp()
	return n
}

// moveRedLeft makes either n.left or one of its children red, given
// that n is red and both n.left and n.left.left are black.
func (n *node[K, V]) moveRedLeft() {
	n.flipColors()
	if n.right.left.getColor() {
		right := n.right.clone()
		right.rotateRight()
		n.right = right
		n.rotateLeft()
		n.flipColors()
	}
}

// moveRedRight makes either n.right or one of its children red, given
// that n is red and both n.right and n.right.left are black.
func (n *node[K, V]) moveRedRight() {
	n.flipColors()
	if n.left.left.getColor() {
		n.rotateRight()
		n.flipColors()
	}
}
