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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmpty(t *testing.T) {
	assert.Equal(t, "Empty-Tree<Size = 0, Height = 0>", NewBST[int, string](false).String())
	assert.Equal(t, "Empty-Tree<Size = 0, Height = 0>", NewKeyAVL[int](true).String())
}

func TestStringKeyValue(t *testing.T) {
	tree := NewBST[int, string](false)
	tree.Insert(5, "b")
	tree.Insert(2, "a")
	tree.Insert(8, "c")

	// Every label block is 14 wide; the root sits centered over its two
	// children, one block in.
	want := "Tree<Size = 3, Height = 2>:\n" +
		"              <K = 5, V = b>\n" +
		"<K = 2, V = a>              <K = 8, V = c>\n"
	assert.Equal(t, want, tree.String())
}

func TestStringBalancedLabels(t *testing.T) {
	tree := NewKeyAVL[int](true)
	for i := 0; i < 3; i++ {
		require.True(t, tree.Insert(40))
	}
	// Key-only AVL labels drop the value but carry balance and count.
	assert.Equal(t, "Tree<Size = 3, Height = 1>:\n<K = 40, BF = 0, C = 3>\n", tree.String())
}

func TestStringShape(t *testing.T) {
	tree := NewAVL[int, int](false)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.True(t, tree.Insert(k, k*10))
	}

	s := tree.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	require.Len(t, lines, 4, "header plus one line per level")
	assert.Equal(t, "Tree<Size = 7, Height = 3>:", lines[0])

	// Each level holds its own keys and lower levels spread wider.
	assert.Contains(t, lines[1], "K = 4")
	assert.Contains(t, lines[2], "K = 2")
	assert.Contains(t, lines[2], "K = 6")
	for _, k := range []string{"K = 1", "K = 3", "K = 5", "K = 7"} {
		assert.Contains(t, lines[3], k)
	}
	assert.Greater(t, len(lines[1]), len(strings.TrimLeft(lines[1], " ")),
		"upper levels are indented")
}

func TestStringAlignsGaps(t *testing.T) {
	// An unbalanced chain renders one node per level with no trailing
	// spaces on any line.
	tree := NewBST[int, string](false)
	for _, k := range []int{1, 2, 3, 4} {
		require.True(t, tree.Insert(k, "v"))
	}
	for _, line := range strings.Split(tree.String(), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}
