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

// String renders the tree level by level, every node block right-aligned
// to the widest label so parent links line up visually:
//
//	Tree<Size = 3, Height = 2>:
//	           <K = 5, V = b>
//	<K = 2, V = a>  <K = 8, V = c>
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "Empty-Tree<Size = 0, Height = 0>"
	}

	height := t.Height()
	width := maxLabelLen(t.root, t.keyOnly, t.balanced)

	var b strings.Builder
	fmt.Fprintf(&b, "Tree<Size = %d, Height = %d>:\n", t.count, height)
	var nodes []*node[K, V]
	for level := 0; level < height; level++ {
		nodes = t.nodesAtLevel(level, nodes)
		b.WriteString(t.levelString(level, height, width, nodes))
		b.WriteString("\n")
	}
	return b.String()
}

func maxLabelLen[K Key, V Value](n *node[K, V], keyOnly, balanced bool) int {
	if n == nil {
		return 0
	}
	return max(len(n.label(keyOnly, balanced)),
		maxLabelLen(n.left, keyOnly, balanced),
		maxLabelLen(n.right, keyOnly, balanced))
}

// levelSpacing computes the leading padding and the gap between adjacent
// slots for a level, both measured in node-wide blocks. The bottom level
// packs blocks one gap apart; each level above centers itself over the
// pair of child slots beneath it.
func levelSpacing(level, height int) (padding, gap int) {
	if level == height-1 {
		return 0, 1
	}
	nextPad, nextGap := levelSpacing(level+1, height)
	padding = nextPad + (nextGap-1)/2 + 1
	if level > 0 {
		gap = (1 << height) - (1 << level)
		gap -= 2*padding + 1
		gap /= (1 << level) - 1
	}
	return padding, gap
}

func (t *Tree[K, V]) levelString(level, height, width int, nodes []*node[K, V]) string {
	padding, gap := levelSpacing(level, height)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", padding*width))
	for _, n := range nodes {
		if n != nil {
			label := n.label(t.keyOnly, t.balanced)
			b.WriteString(strings.Repeat(" ", width-len(label)))
			b.WriteString(label)
		} else {
			b.WriteString(strings.Repeat(" ", width))
		}
		b.WriteString(strings.Repeat(" ", gap*width))
	}
	return strings.TrimRight(b.String(), " ")
}
