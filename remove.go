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

// unlink detaches the node held by link, splicing its subtrees back into
// the tree. A two-child node is replaced by its in-order successor, the
// smallest key of the right subtree. Equal keys nest in left subtrees,
// so when that smallest key repeats along the spine the shallowest node
// of the run is promoted; the rest ride along in its left subtree
// instead of ending up above an equal key, where lookups that only
// descend left would never find them.
func unlink[K Key, V Value](link **node[K, V]) {
	n := *link
	switch {
	case n.left != nil && n.right != nil:
		floor := n.right
		for floor.left != nil {
			floor = floor.left
		}
		slink := &n.right
		for (*slink).key != floor.key {
			slink = &(*slink).left
		}
		succ := *slink
		*slink = succ.right
		// succ keeps its own left run; the removed node's left subtree
		// hangs below the run's last node.
		last := &succ.left
		for *last != nil {
			last = &(*last).left
		}
		*last = n.left
		succ.right = n.right
		*link = succ
	case n.left != nil:
		*link = n.left
	case n.right != nil:
		*link = n.right
	default:
		*link = nil
	}
}

// Remove deletes occurrences of key and returns how many items went
// away. With all=false a single occurrence is removed; in AVL mode that
// pops the oldest duplicate into the primary slot when the node has one
// (no structural change), otherwise the node itself is detached and the
// tree rebalanced. With all=true the node goes in one shot, duplicates
// included; the unbalanced tree instead keeps hunting the left subtree
// for further equal-key nodes until none remain.
func (t *Tree[K, V]) Remove(key K, all bool) int {
	removed := 0
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key == n.key:
			if t.balanced {
				if all || len(n.dups) == 0 {
					removed = n.count()
					unlink(link)
					t.count -= removed
					t.staleHeight = true
					t.rebalance()
				} else {
					n.popDuplicate()
					removed = 1
					t.count--
				}
				return removed
			}
			unlink(link)
			removed++
			t.count--
			t.staleHeight = true
			if !all || !t.allowDups {
				return removed
			}
			// Any remaining equal key now lives in the subtree that took
			// this slot; re-examine it without advancing.
		case key < n.key:
			link = &n.left
		default:
			link = &n.right
		}
	}
	return removed
}

// RemoveValue deletes occurrences matching both key and value and
// returns how many items went away.
func (t *Tree[K, V]) RemoveValue(key K, value V, all bool) int {
	removed := 0
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key == n.key:
			if t.balanced {
				if len(n.dups) == 0 {
					if n.value == value {
						removed += n.count()
						unlink(link)
						t.count -= n.count()
						t.staleHeight = true
						t.rebalance()
					}
					return removed
				}
				if n.value == value {
					n.popDuplicate()
					removed++
					t.count--
					if !all {
						return removed
					}
					// The promoted duplicate may match too.
					continue
				}
				dropped := n.removeDuplicates(value, all)
				removed += dropped
				t.count -= dropped
				return removed
			}
			if n.value != value {
				if !t.allowDups {
					return removed
				}
				link = &n.left
				continue
			}
			unlink(link)
			removed++
			t.count--
			t.staleHeight = true
			if !all || !t.allowDups {
				return removed
			}
		case key < n.key:
			link = &n.left
		default:
			link = &n.right
		}
	}
	return removed
}

// RemoveKeys deletes a batch of keys, summing the per-key removal counts.
func (t *Tree[K, V]) RemoveKeys(keys []K, all bool) int {
	removed := 0
	for _, key := range keys {
		removed += t.Remove(key, all)
	}
	return removed
}

// RemoveItems deletes a batch of key/value pairs, summing the per-pair
// removal counts.
func (t *Tree[K, V]) RemoveItems(items []Item[K, V], all bool) int {
	removed := 0
	for _, it := range items {
		removed += t.RemoveValue(it.Key, it.Value, all)
	}
	return removed
}
