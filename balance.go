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

// refreshBalance recomputes balance factors bottom-up across the whole
// subtree and returns its height together with the link of the deepest
// node violating |balance| <= 1, or nil when the subtree satisfies the
// AVL invariant. Preferring the deepest offender keeps rotations local.
func refreshBalance[K Key, V Value](link **node[K, V]) (height int, offender **node[K, V]) {
	n := *link
	if n == nil {
		return 0, nil
	}
	lh, lo := refreshBalance(&n.left)
	rh, ro := refreshBalance(&n.right)
	n.balance = rh - lh
	switch {
	case lo != nil:
		offender = lo
	case ro != nil:
		offender = ro
	case n.balance > 1 || n.balance < -1:
		offender = link
	}
	return 1 + max(lh, rh), offender
}

// rotateLeft promotes the right child into link's position and hands its
// left subtree over to the demoted node. Pure pointer relinking, no
// allocation.
func rotateLeft[K Key, V Value](link **node[K, V]) {
	x := *link
	*link = x.right
	x.right = (*link).left
	(*link).left = x
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[K Key, V Value](link **node[K, V]) {
	x := *link
	*link = x.left
	x.left = (*link).right
	(*link).right = x
}

// rebalance restores the AVL invariant after a structural mutation. It
// refreshes every balance factor, rotates the deepest imbalanced node
// (with a preliminary child rotation when the heavy child leans the
// other way), and repeats until a refresh finds no offender. A single
// insertion needs at most one rotation; a removal can shorten a subtree
// and leave several ancestors out of bound, hence the loop.
func (t *Tree[K, V]) rebalance() {
	for {
		_, offender := refreshBalance(&t.root)
		if offender == nil {
			return
		}
		n := *offender
		if n.balance > 1 {
			if n.right.balance < 0 {
				rotateRight(&n.right)
			}
			rotateLeft(offender)
		} else {
			if n.left.balance > 0 {
				rotateLeft(&n.left)
			}
			rotateRight(offender)
		}
	}
}
