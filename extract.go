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

// SortedKeys returns the node keys in ascending order, or descending
// with reverse. AVL duplicate-list entries carry the same key as their
// owning node and are not repeated here; unbalanced duplicates are real
// nodes and therefore appear once each.
func (t *Tree[K, V]) SortedKeys(reverse bool) []K {
	keys := make([]K, 0, t.count)
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		if reverse {
			walk(n.right)
			keys = append(keys, n.key)
			walk(n.left)
		} else {
			walk(n.left)
			keys = append(keys, n.key)
			walk(n.right)
		}
	}
	walk(t.root)
	return keys
}

// SortedItems returns the node items in key order, or descending with
// reverse. As with SortedKeys, AVL duplicate-list entries are not
// repeated.
func (t *Tree[K, V]) SortedItems(reverse bool) []Item[K, V] {
	items := make([]Item[K, V], 0, t.count)
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		if reverse {
			walk(n.right)
			items = append(items, Item[K, V]{Key: n.key, Value: n.value})
			walk(n.left)
		} else {
			walk(n.left)
			items = append(items, Item[K, V]{Key: n.key, Value: n.value})
			walk(n.right)
		}
	}
	walk(t.root)
	return items
}

// Items flattens the tree in level order, each node followed by its
// duplicate-list entries in their original insertion order. Reinserting
// the result into a fresh tree with the same policy reproduces the
// content exactly, which is what the serializer relies on.
func (t *Tree[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, t.count)
	if t.root == nil {
		return items
	}
	// Queue walk rather than the slot grid String uses: a skewed tree
	// has 2^height slots but only count nodes.
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		items = append(items, Item[K, V]{Key: n.key, Value: n.value})
		items = append(items, n.dups...)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return items
}

// nodesAtLevel returns the 2^level slots of a level, nil where no node
// exists. prev must be the slice returned for level-1, or nil to have it
// derived from the root; reusing it keeps the level walk linear.
func (t *Tree[K, V]) nodesAtLevel(level int, prev []*node[K, V]) []*node[K, V] {
	if level == 0 {
		return []*node[K, V]{t.root}
	}
	if prev == nil {
		prev = t.nodesAtLevel(level-1, nil)
	}
	nodes := make([]*node[K, V], 1<<level)
	i := 0
	for _, p := range prev {
		if p != nil {
			nodes[i] = p.left
			nodes[i+1] = p.right
		}
		i += 2
	}
	return nodes
}
