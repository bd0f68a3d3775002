// Copyright (C) 2024-2026  Lodestone contributors
//
// SPDX-License-Identifier: Apache-2.0

package immutable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkLLRB verifies the left-leaning red-black invariants for the
// whole tree rooted at n, and returns the tree's black-height.
//
//  1. The root is black.
//  2. No red node has a red right child (red links lean left).
//  3. No red node has a red left child (no two consecutive red links).
//  4. Every root-to-leaf path has the same number of black nodes.
//  5. Every node's size field is 1 + size(left) + size(right).
func checkLLRB[K, V any](t *testing.T, n *node[K, V]) int {
	t.Helper()
	require.False(t, n.getColor(), "the root must be black")
	return checkLLRBNode(t, n)
}

func checkLLRBNode[K, V any](t *testing.T, n *node[K, V]) int {
	t.Helper()
	if n == nil {
		return 1 // nil is black
	}

	require.Falsef(t, n.right.getColor(),
		"node %v: red link leans right", n)
	if n.getColor() {
		require.Falsef(t, n.left.getColor() || n.right.getColor(),
			"node %v: two consecutive red links", n)
	}
	require.Equalf(t, n.left.getSize()+1+n.right.getSize(), n.size,
		"node %v: wrong subtree size", n)

	leftHeight := checkLLRBNode(t, n.left)
	rightHeight := checkLLRBNode(t, n.right)
	require.Equalf(t, leftHeight, rightHeight,
		"node %v: unequal black-heights", n)

	if !n.getColor() {
		leftHeight++
	}
	return leftHeight
}

func TestLLRBNodeEmpty(t *testing.T) {
	var empty *node[int, int]
	require.Equal(t, uint32(0), empty.getSize())
	require.False(t, empty.getColor())
	require.Nil(t, empty.get(1, NativeCompare[int]))
}

func TestLLRBNodeInsertFromEmpty(t *testing.T) {
	var empty *node[int, int]
	root := empty.insert(1, 1, NativeCompare[int])
	require.Equal(t, uint32(1), root.size)
	require.Equal(t, 1, root.key)
	require.False(t, root.red)
}

func TestLLRBNodeRotatesLeft(t *testing.T) {
	var root *node[int, int]
	root = root.insert(1, 1, NativeCompare[int])
	root = root.insert(2, 2, NativeCompare[int])

	// Inserting an ascending pair produces a right-leaning red link,
	// which the fix-up must rotate away: 2 ends up on top.
	require.Equal(t, 2, root.key)
	require.Equal(t, 1, root.left.key)
	checkLLRB(t, root)
}

func TestLLRBNodeRotatesRight(t *testing.T) {
	var root *node[int, int]
	cmp := NativeCompare[int]
	root = root.insert(3, 3, cmp)
	require.Equal(t, 3, root.key)

	root = root.insert(2, 2, cmp)
	require.Equal(t, 3, root.key)

	root = root.insert(1, 1, cmp)
	require.Equal(t, 2, root.key)
	require.Equal(t, 1, root.left.key)
	require.Equal(t, 3, root.right.key)
	checkLLRB(t, root)
}

func TestLLRBNodeColorInvariants(t *testing.T) {
	var root *node[int, int]
	cmp := NativeCompare[int]

	root = root.insert(3, 3, cmp)
	require.False(t, root.red)

	// Insert a predecessor: leans left, no rotation.
	root = root.insert(2, 2, cmp)
	require.False(t, root.red)
	require.True(t, root.left.red)
	require.False(t, root.right.getColor())

	// Insert another predecessor: rotation plus color flip.
	root = root.insert(1, 1, cmp)
	require.Equal(t, 2, root.key)
	require.False(t, root.red)
	require.False(t, root.left.red)
	require.False(t, root.right.red)
}

func TestLLRBNodeRotationCarriesEntries(t *testing.T) {
	// A rotation moves whole entries; a tree whose values differ from
	// its keys catches a rotation that moves only one of the two.
	var root *node[int, string]
	cmp := NativeCompare[int]
	root = root.insert(1, "one", cmp)
	root = root.insert(2, "two", cmp)
	root = root.insert(3, "three", cmp)

	require.Equal(t, 2, root.key)
	require.Equal(t, "two", root.value)
	require.Equal(t, "one", root.left.value)
	require.Equal(t, "three", root.right.value)
}

func TestLLRBNodeSize(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	expected := make(map[int]struct{})

	var root *node[int, int]
	for i := 0; i < 100; i++ {
		val := rng.Intn(1000)
		expected[val] = struct{}{}
		root = root.insert(val, val, NativeCompare[int])
		require.Equal(t, uint32(len(expected)), root.size)
	}
	checkLLRB(t, root)
}

func TestLLRBNodeInsertDoesNotMutate(t *testing.T) {
	var root *node[int, int]
	cmp := NativeCompare[int]
	for _, val := range []int{1, 7, 8, 5, 2, 6, 4, 0, 3} {
		prev := root
		prevSize := prev.getSize()
		root = root.insert(val, val, cmp)
		require.Equal(t, prevSize, prev.getSize())
		if prev != nil {
			require.Nil(t, prev.get(val, cmp))
		}
	}
}

func TestLLRBNodeRemove(t *testing.T) {
	var root *node[int, int]
	cmp := NativeCompare[int]
	for _, val := range shuffled(seq(0, 100, 1)) {
		root = root.insert(val, val, cmp)
	}

	for _, val := range shuffled(seq(0, 100, 1)) {
		prev := root
		root = root.remove(val, cmp)
		require.Nil(t, root.get(val, cmp))
		require.Equal(t, prev.getSize()-1, root.getSize())
		// The previous version still contains the removed key.
		require.NotNil(t, prev.get(val, cmp))
		if root != nil {
			checkLLRB(t, root)
		}
	}
	require.Nil(t, root)
}

func TestLLRBNodeRemoveAbsent(t *testing.T) {
	var root *node[int, int]
	cmp := NativeCompare[int]
	root = root.insert(1, 1, cmp)
	root = root.insert(3, 3, cmp)

	require.Same(t, root, root.remove(2, cmp))
	require.Nil(t, (*node[int, int])(nil).remove(2, cmp))
}

func FuzzLLRBNode(f *testing.F) {
	Ins := uint8(0b0100_0000)
	Del := uint8(0)

	f.Add([]uint8{})
	f.Add([]uint8{Ins | 5, Del | 5})
	f.Add([]uint8{Ins | 5, Del | 6})
	f.Add([]uint8{Del | 6})
	f.Add([]uint8{
		Ins | 1, Ins | 7, Ins | 8, Ins | 5, Ins | 2,
		Ins | 6, Ins | 4, Ins | 0, Ins | 3,
		Del | 5, Del | 0, Del | 8,
	})

	f.Fuzz(func(t *testing.T, dat []uint8) {
		cmp := NativeCompare[uint8]
		var root *node[uint8, uint8]
		model := make(map[uint8]uint8)

		for _, b := range dat {
			ins := (b & 0b0100_0000) != 0
			val := b & 0b0011_1111
			if ins {
				t.Logf("insert(%v)", val)
				root = root.insert(val, val, cmp)
				model[val] = val
			} else {
				t.Logf("remove(%v)", val)
				root = root.remove(val, cmp)
				delete(model, val)
			}
			t.Logf("\n%s\n", TreeMap[uint8, uint8]{root: root, cmp: cmp}.ASCIIArt())

			if root != nil {
				checkLLRB(t, root)
			}
			require.Equal(t, len(model), int(root.getSize()))
			for k, v := range model {
				n := root.get(k, cmp)
				require.NotNil(t, n)
				require.Equal(t, v, n.value)
			}
		}
	})
}
