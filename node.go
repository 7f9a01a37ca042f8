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

import (
	"fmt"
	"strings"
)

// Item is a single key/value occurrence stored in a tree. Key-only trees
// use a zero-sized value type and never expose the Value field.
type Item[K Key, V Value] struct {
	Key   K
	Value V
}

// node is the unit of storage. balance and dups are only maintained in
// AVL mode: balance is height(right) - height(left), and dups holds
// same-key items in insertion order. In the unbalanced tree duplicates
// are ordinary nodes nested in the left subtree instead.
type node[K Key, V Value] struct {
	key     K
	value   V
	balance int
	dups    []Item[K, V]
	left    *node[K, V]
	right   *node[K, V]
}

// addDuplicate appends an item to the duplicate list. The append is
// refused when the candidate key differs from the node's key.
func (n *node[K, V]) addDuplicate(it Item[K, V]) bool {
	if it.Key != n.key {
		return false
	}
	n.dups = append(n.dups, it)
	return true
}

// popDuplicate shifts the oldest duplicate into the node's primary slot.
// The caller must ensure the list is non-empty.
func (n *node[K, V]) popDuplicate() {
	n.key = n.dups[0].Key
	n.value = n.dups[0].Value
	n.dups = n.dups[1:]
}

// lastEncountered returns the most recently inserted occurrence: the tail
// of the duplicate list, or the node's own item if there are no duplicates.
func (n *node[K, V]) lastEncountered() Item[K, V] {
	if len(n.dups) > 0 {
		return n.dups[len(n.dups)-1]
	}
	return Item[K, V]{Key: n.key, Value: n.value}
}

// searchValue scans the node's own value and its duplicates for a value
// match. With last=false the node's own value is checked first and the
// list is scanned head to tail, stopping at the first match. With
// last=true the list is scanned tail to head preferring the most recent
// match, and the node's own value only counts when no duplicate matches.
func (n *node[K, V]) searchValue(value V, last bool) (Item[K, V], bool) {
	if last {
		for i := len(n.dups) - 1; i >= 0; i-- {
			if n.dups[i].Value == value {
				return n.dups[i], true
			}
		}
		if n.value == value {
			return Item[K, V]{Key: n.key, Value: n.value}, true
		}
		return Item[K, V]{}, false
	}
	if n.value == value {
		return Item[K, V]{Key: n.key, Value: n.value}, true
	}
	for _, it := range n.dups {
		if it.Value == value {
			return it, true
		}
	}
	return Item[K, V]{}, false
}

// removeDuplicates deletes list entries whose value matches, front to
// back, stopping after the first hit unless all is set. It returns the
// number of entries deleted.
func (n *node[K, V]) removeDuplicates(value V, all bool) int {
	removed := 0
	kept := n.dups[:0]
	for i, it := range n.dups {
		if it.Value == value && (all || removed == 0) {
			removed++
			continue
		}
		kept = append(kept, n.dups[i])
	}
	n.dups = kept
	return removed
}

// count reports the node's live occurrences: the primary slot plus every
// duplicate entry.
func (n *node[K, V]) count() int {
	return 1 + len(n.dups)
}

// countValue reports occurrences whose value matches.
func (n *node[K, V]) countValue(value V) int {
	c := 0
	if n.value == value {
		c = 1
	}
	for _, it := range n.dups {
		if it.Value == value {
			c++
		}
	}
	return c
}

// label renders the node for tree diagrams, e.g. <K = -5, V = Mango,
// BF = 0, C = 3>. The value part is dropped for key-only trees and the
// balance/count parts for unbalanced ones.
func (n *node[K, V]) label(keyOnly, balanced bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<K = %v", n.key)
	if !keyOnly {
		fmt.Fprintf(&b, ", V = %v", n.value)
	}
	if balanced {
		fmt.Fprintf(&b, ", BF = %d, C = %d", n.balance, n.count())
	}
	b.WriteString(">")
	return b.String()
}
