// Copyright 2026 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arbor is an in-memory ordered key/value container backed by a
// binary search tree with an optional self-balancing (AVL) mode.
//
// A tree is built in one of four shapes: key-value (Tree) or key-only
// (KeyTree), each either unbalanced or AVL. Duplicate keys are a
// per-tree policy fixed at construction. In AVL mode duplicates live in
// an ordered side list on the owning node, so they never disturb the
// balance; in unbalanced mode a duplicate key becomes a real node nested
// in the left subtree of its equal.
//
// A tree is not safe for concurrent use. Mutating calls (insert, remove,
// clear, load) require exclusive access; read-only queries may run
// concurrently with each other but never with a mutation. That exclusion
// is the caller's job.
package arbor

import "cmp"

// Key is the constraint for tree keys: totally ordered and comparable.
type Key interface {
	cmp.Ordered
}

// Value is the constraint for tree values. Equality is needed for
// value-qualified search, removal and counting.
type Value interface {
	comparable
}

// Tree is an ordered key/value container. The zero value is not usable;
// construct with NewBST or NewAVL, or load one from a file with LoadBST
// or LoadAVL.
type Tree[K Key, V Value] struct {
	root      *node[K, V]
	balanced  bool
	keyOnly   bool
	allowDups bool

	// count tracks live items including duplicate-list entries. height is
	// a cache, valid only while staleHeight is unset; structural mutations
	// flip the flag and Height recomputes on demand.
	count       int
	height      int
	staleHeight bool
}

// NewBST returns an empty unbalanced binary search tree.
func NewBST[K Key, V Value](allowDuplicates bool) *Tree[K, V] {
	return &Tree[K, V]{allowDups: allowDuplicates}
}

// NewAVL returns an empty self-balancing (AVL) tree.
func NewAVL[K Key, V Value](allowDuplicates bool) *Tree[K, V] {
	return &Tree[K, V]{balanced: true, allowDups: allowDuplicates}
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// DuplicatesAllowed reports the duplicate-key policy fixed at construction.
func (t *Tree[K, V]) DuplicatesAllowed() bool {
	return t.allowDups
}

// Balanced reports whether the tree runs in AVL mode.
func (t *Tree[K, V]) Balanced() bool {
	return t.balanced
}

// Count returns the number of live items, duplicates included.
func (t *Tree[K, V]) Count() int {
	return t.count
}

// Clear removes every item, resetting the tree to its empty state.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
	t.height = 0
	t.staleHeight = false
}

// Height returns the number of levels from the root to the deepest leaf;
// an empty tree has height 0. The value is cached and only recomputed
// after a structural mutation.
func (t *Tree[K, V]) Height() int {
	if t.staleHeight {
		t.height = subtreeHeight(t.root)
		t.staleHeight = false
	}
	return t.height
}

func subtreeHeight[K Key, V Value](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(subtreeHeight(n.left), subtreeHeight(n.right))
}

// Min returns the smallest key with its value. In AVL mode with
// duplicates the reported occurrence is the most recently inserted one,
// mirroring where a duplicate would have landed had it become a real
// left-nested node. ok is false on an empty tree.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.left != nil {
		n = n.left
	}
	if t.balanced {
		it := n.lastEncountered()
		return it.Key, it.Value, true
	}
	return n.key, n.value, true
}

// Max returns the largest key with its value. Unlike Min, the primary
// slot always wins: duplicates conceptually nest left, so the first
// occurrence is the right-most. ok is false on an empty tree.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// CountKey returns the number of live occurrences of key.
func (t *Tree[K, V]) CountKey(key K) int {
	c := 0
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			if t.balanced {
				return c + n.count()
			}
			c++
			if !t.allowDups {
				return c
			}
			n = n.left
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return c
}

// CountValue returns the number of live occurrences matching both key
// and value.
func (t *Tree[K, V]) CountValue(key K, value V) int {
	c := 0
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			if t.balanced {
				return c + n.countValue(value)
			}
			if n.value == value {
				c++
			}
			if !t.allowDups {
				return c
			}
			n = n.left
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return c
}
