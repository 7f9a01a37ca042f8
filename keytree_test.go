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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyTreeBasics(t *testing.T) {
	tree := NewKeyAVL[string](false)
	assert.True(t, tree.IsEmpty())
	assert.True(t, tree.Balanced())
	assert.False(t, tree.DuplicatesAllowed())

	words := []string{"pear", "apple", "quince", "fig", "lime"}
	assert.Equal(t, 5, tree.InsertKeys(words))
	assert.False(t, tree.Insert("pear"), "duplicate rejected")
	assert.Equal(t, 5, tree.Count())

	assert.True(t, tree.Search("fig"))
	assert.False(t, tree.Search("mango"))

	k, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, "apple", k)
	k, ok = tree.Max()
	require.True(t, ok)
	assert.Equal(t, "quince", k)

	assert.Equal(t, []string{"apple", "fig", "lime", "pear", "quince"}, tree.SortedKeys(false))
	assert.Equal(t, []string{"quince", "pear", "lime", "fig", "apple"}, tree.SortedKeys(true))

	assert.Equal(t, 1, tree.Remove("pear", false))
	assert.Equal(t, 0, tree.Remove("pear", false))
	assert.Equal(t, 4, tree.Count())

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	k, ok = tree.Min()
	assert.False(t, ok)
	assert.Empty(t, k)
}

func TestKeyTreeDuplicates(t *testing.T) {
	for _, balanced := range []bool{false, true} {
		name := "BST"
		if balanced {
			name = "AVL"
		}
		t.Run(name, func(t *testing.T) {
			tree := NewKeyBST[int](true)
			if balanced {
				tree = NewKeyAVL[int](true)
			}
			assert.Equal(t, len(fruitKeys), tree.InsertKeys(fruitKeys))
			assert.Equal(t, len(fruitKeys), tree.Count())
			assert.Equal(t, 2, tree.CountKey(-5))

			wantHeight := bstFruitHeights[len(fruitKeys)-1]
			if balanced {
				wantHeight = avlFruitHeights[len(fruitKeys)-1]
			}
			assert.Equal(t, wantHeight, tree.Height())

			assert.Len(t, tree.Keys(), tree.Count())

			assert.Equal(t, 2, tree.Remove(-5, true))
			assert.Equal(t, 0, tree.CountKey(-5))
			assert.Equal(t, 2, tree.RemoveKeys([]int{10, 7, 99}, false))
			assert.Equal(t, 6, tree.Count())
		})
	}
}

func TestKeyTreeSerializeBST(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.tree")
	tree := NewKeyBST[int](true)
	tree.InsertKeys(fruitKeys)
	require.NoError(t, tree.Serialize(path, false))

	loaded, err := LoadKeyBST[int](path)
	require.NoError(t, err)
	assert.False(t, loaded.Balanced())
	assert.True(t, loaded.DuplicatesAllowed())
	assert.Equal(t, tree.Count(), loaded.Count())
	assert.Equal(t, tree.Height(), loaded.Height())
	assert.Equal(t, tree.String(), loaded.String())
}
