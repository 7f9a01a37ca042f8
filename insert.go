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

// Insert adds one key/value occurrence. It returns false only when the
// key already exists and the tree forbids duplicates.
//
// With duplicates allowed, an equal key appends to the owning node's
// duplicate list in AVL mode (no structural change, no rebalancing) and
// descends left in unbalanced mode until a free slot is found, so later
// duplicates always nest in the left subtree of earlier ones.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key == n.key:
			if !t.allowDups {
				return false
			}
			if t.balanced {
				if !n.addDuplicate(Item[K, V]{Key: key, Value: value}) {
					return false
				}
				t.count++
				return true
			}
			link = &n.left
		case key < n.key:
			link = &n.left
		default:
			link = &n.right
		}
	}

	*link = &node[K, V]{key: key, value: value}
	t.count++
	t.staleHeight = true
	if t.balanced {
		t.rebalance()
	}
	return true
}

// InsertItems adds a batch of items and returns how many were accepted.
// Duplicates rejected under a no-duplicate policy do not count.
func (t *Tree[K, V]) InsertItems(items []Item[K, V]) int {
	inserted := 0
	for _, it := range items {
		if t.Insert(it.Key, it.Value) {
			inserted++
		}
	}
	return inserted
}
