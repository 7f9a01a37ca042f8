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
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTripBST(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.tree")
	tree := fruitTree(t, false, true)
	require.NoError(t, tree.Serialize(path, false))

	loaded, err := LoadBST[int, string](path)
	require.NoError(t, err)
	assert.True(t, loaded.DuplicatesAllowed())
	assert.Equal(t, tree.Count(), loaded.Count())
	assert.Equal(t, tree.SortedKeys(false), loaded.SortedKeys(false))
	// Level-order storage reproduces the unbalanced shape exactly.
	assert.Equal(t, tree.Height(), loaded.Height())
	assert.Equal(t, tree.String(), loaded.String())
}

func TestSerializeRoundTripAVL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruit.tree")
	tree := fruitTree(t, true, true)
	require.NoError(t, tree.Serialize(path, false))

	loaded, err := LoadAVL[int, string](path)
	require.NoError(t, err)
	assert.True(t, loaded.Balanced())
	assert.Equal(t, tree.Count(), loaded.Count())
	assert.Equal(t, tree.SortedKeys(false), loaded.SortedKeys(false))
	assert.Equal(t, 2, loaded.CountKey(-5))
	checkBalanced(t, loaded)

	_, v, ok := loaded.Search(-5, true)
	require.True(t, ok)
	assert.Equal(t, "Pineapple", v)
}

func TestSerializeRoundTripKeyOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.tree")
	tree := NewKeyAVL[int](true)
	require.Equal(t, len(fruitKeys), tree.InsertKeys(fruitKeys))
	require.NoError(t, tree.Serialize(path, false))

	loaded, err := LoadKeyAVL[int](path)
	require.NoError(t, err)
	assert.Equal(t, tree.Count(), loaded.Count())
	assert.Equal(t, tree.SortedKeys(false), loaded.SortedKeys(false))
	assert.Equal(t, 2, loaded.CountKey(-5))
}

func TestSerializeEmptyTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tree")
	tree := NewBST[int, string](false)
	require.NoError(t, tree.Serialize(path, false))

	loaded, err := LoadBST[int, string](path)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	// The policy flag survives even with no items.
	assert.False(t, loaded.DuplicatesAllowed())
}

func TestLoadMissingFile(t *testing.T) {
	loaded, err := LoadBST[int, string](filepath.Join(t.TempDir(), "no-such.tree"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	// Even on failure the returned tree is usable.
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsEmpty())
	assert.True(t, loaded.Insert(1, "x"))
}

func TestLoadCorruptFile(t *testing.T) {
	write := func(t *testing.T) string {
		path := filepath.Join(t.TempDir(), "fruit.tree")
		tree := fruitTree(t, false, true)
		require.NoError(t, tree.Serialize(path, false))
		return path
	}

	t.Run("TruncatedPayload", func(t *testing.T) {
		path := write(t)
		info, err := os.Stat(path)
		require.NoError(t, err)
		// Chop into the last value's payload.
		require.NoError(t, os.Truncate(path, info.Size()-3))

		loaded, err := LoadBST[int, string](path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorrupt))
		assert.True(t, loaded.IsEmpty(), "a corrupt load never yields a half tree")
		assert.True(t, loaded.DuplicatesAllowed())
	})

	t.Run("TruncatedSizeHeader", func(t *testing.T) {
		path := write(t)
		// Four bytes cannot even hold the policy record's size.
		require.NoError(t, os.Truncate(path, 4))

		loaded, err := LoadBST[int, string](path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorrupt))
		assert.True(t, loaded.IsEmpty())
	})

	t.Run("EmptyFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		// The policy record is mandatory, so a zero-byte file is corrupt
		// rather than an empty tree.
		_, err := LoadBST[int, string](path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCorrupt))
	})
}

func TestSerializeOpenFailure(t *testing.T) {
	tree := fruitTree(t, false, true)
	err := tree.Serialize(filepath.Join(t.TempDir(), "missing-dir", "fruit.tree"), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
}
