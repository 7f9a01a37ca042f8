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

package arbor

// KeyTree is the key-only variant of Tree: an ordered multiset (or set,
// under a no-duplicate policy). It shares Tree's machinery with an empty
// value slot; rendering and serialization skip the value entirely.
type KeyTree[K Key] struct {
	t Tree[K, struct{}]
}

// NewKeyBST returns an empty unbalanced key-only tree.
func NewKeyBST[K Key](allowDuplicates bool) *KeyTree[K] {
	return &KeyTree[K]{t: Tree[K, struct{}]{keyOnly: true, allowDups: allowDuplicates}}
}

// NewKeyAVL returns an empty self-balancing key-only tree.
func NewKeyAVL[K Key](allowDuplicates bool) *KeyTree[K] {
	return &KeyTree[K]{t: Tree[K, struct{}]{balanced: true, keyOnly: true, allowDups: allowDuplicates}}
}

// LoadKeyBST reads a key-only file written by Serialize into a fresh
// unbalanced tree.
func LoadKeyBST[K Key](path string) (*KeyTree[K], error) {
	t, err := load[K, struct{}](path, false, true)
	return &KeyTree[K]{t: *t}, err
}

// LoadKeyAVL reads a key-only file written by Serialize into a fresh
// AVL tree.
func LoadKeyAVL[K Key](path string) (*KeyTree[K], error) {
	t, err := load[K, struct{}](path, true, true)
	return &KeyTree[K]{t: *t}, err
}

// Insert adds one occurrence of key, returning false only when the key
// exists and duplicates are forbidden.
func (kt *KeyTree[K]) Insert(key K) bool {
	return kt.t.Insert(key, struct{}{})
}

// InsertKeys adds a batch of keys and returns how many were accepted.
func (kt *KeyTree[K]) InsertKeys(keys []K) int {
	inserted := 0
	for _, key := range keys {
		if kt.t.Insert(key, struct{}{}) {
			inserted++
		}
	}
	return inserted
}

// Search reports whether key is present.
func (kt *KeyTree[K]) Search(key K) bool {
	_, _, ok := kt.t.Search(key, false)
	return ok
}

// Remove deletes one occurrence of key, or every occurrence when all is
// set, returning the number removed.
func (kt *KeyTree[K]) Remove(key K, all bool) int {
	return kt.t.Remove(key, all)
}

// RemoveKeys deletes a batch of keys (first occurrence each, or all
// occurrences when all is set) and returns the total removed.
func (kt *KeyTree[K]) RemoveKeys(keys []K, all bool) int {
	removed := 0
	for _, key := range keys {
		removed += kt.t.Remove(key, all)
	}
	return removed
}

// Clear removes every key, resetting the tree to its empty state.
func (kt *KeyTree[K]) Clear() { kt.t.Clear() }

// IsEmpty reports whether the tree holds no keys.
func (kt *KeyTree[K]) IsEmpty() bool { return kt.t.IsEmpty() }

// DuplicatesAllowed reports the duplicate-key policy fixed at construction.
func (kt *KeyTree[K]) DuplicatesAllowed() bool { return kt.t.DuplicatesAllowed() }

// Balanced reports whether the tree runs in AVL mode.
func (kt *KeyTree[K]) Balanced() bool { return kt.t.Balanced() }

// Count returns the number of live keys, duplicates included.
func (kt *KeyTree[K]) Count() int { return kt.t.Count() }

// CountKey returns the number of live occurrences of key.
func (kt *KeyTree[K]) CountKey(key K) int { return kt.t.CountKey(key) }

// Height returns the number of levels from the root to the deepest leaf.
func (kt *KeyTree[K]) Height() int { return kt.t.Height() }

// Min returns the smallest key; ok is false on an empty tree.
func (kt *KeyTree[K]) Min() (key K, ok bool) {
	key, _, ok = kt.t.Min()
	return key, ok
}

// Max returns the largest key; ok is false on an empty tree.
func (kt *KeyTree[K]) Max() (key K, ok bool) {
	key, _, ok = kt.t.Max()
	return key, ok
}

// SortedKeys returns the distinct node keys in ascending order, or
// descending when reverse is set.
func (kt *KeyTree[K]) SortedKeys(reverse bool) []K {
	return kt.t.SortedKeys(reverse)
}

// Keys returns every live key, duplicates included, in level order.
func (kt *KeyTree[K]) Keys() []K {
	items := kt.t.Items()
	keys := make([]K, len(items))
	for i, it := range items {
		keys[i] = it.Key
	}
	return keys
}

// Serialize writes the tree to path; see Tree.Serialize.
func (kt *KeyTree[K]) Serialize(path string, deleteOnFailure bool) error {
	return kt.t.Serialize(path, deleteOnFailure)
}

// String renders the tree level by level; see Tree.String.
func (kt *KeyTree[K]) String() string { return kt.t.String() }
