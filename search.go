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

// Search looks a key up and returns the stored occurrence. The returned
// key is the stored one, which can differ from the query in fields a
// custom ordering ignores. With last=true and duplicates allowed, the
// most recently inserted occurrence is returned instead of the first:
// the duplicate-list tail in AVL mode, the deepest left-nested equal in
// unbalanced mode. ok is false when the key is absent.
func (t *Tree[K, V]) Search(key K, last bool) (k K, v V, ok bool) {
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			if !t.allowDups || !last {
				return n.key, n.value, true
			}
			if t.balanced {
				it := n.lastEncountered()
				return it.Key, it.Value, true
			}
			// Later duplicates sit in the left subtree; keep the latest
			// match seen so far and continue down.
			k, v, ok = n.key, n.value, true
			n = n.left
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return k, v, ok
}

// SearchValue looks up an occurrence matching both key and value. The
// last flag picks between first and most recent among equal-key
// occurrences, as in Search.
func (t *Tree[K, V]) SearchValue(key K, value V, last bool) (k K, v V, ok bool) {
	for n := t.root; n != nil; {
		switch {
		case key == n.key:
			if t.balanced {
				it, found := n.searchValue(value, last)
				if found {
					return it.Key, it.Value, true
				}
				return k, v, false
			}
			if !t.allowDups || !last {
				if n.value == value {
					return n.key, n.value, true
				}
				if !t.allowDups {
					return k, v, false
				}
				n = n.left
				continue
			}
			if n.value == value {
				k, v, ok = n.key, n.value, true
			}
			n = n.left
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}
	return k, v, ok
}
