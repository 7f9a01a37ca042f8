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

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CommandTestCase struct {
	Name     string
	Setup    []string
	Command  string
	Expected string
	WantErr  bool
}

func TestSessionExecute(t *testing.T) {
	testCases := []CommandTestCase{
		{
			Name:     "Insert",
			Command:  "insert 5 Mango",
			Expected: "inserted 5 (size 1, height 1)",
		},
		{
			Name:     "InsertQuotedValue",
			Command:  `insert 3 "green apple"`,
			Expected: "inserted 3 (size 1, height 1)",
		},
		{
			Name:    "InsertMissingValue",
			Command: "insert 5",
			WantErr: true,
		},
		{
			Name:    "InsertBadKey",
			Command: "insert five Mango",
			WantErr: true,
		},
		{
			Name:     "SearchHit",
			Setup:    []string{"insert 5 Mango"},
			Command:  "search 5",
			Expected: `found 5 = "Mango"`,
		},
		{
			Name:     "SearchMiss",
			Setup:    []string{"insert 5 Mango"},
			Command:  "search 9",
			Expected: "9 not found",
		},
		{
			Name:     "SearchLastDuplicate",
			Setup:    []string{"insert 5 Mango", "insert 5 Pineapple"},
			Command:  "search-last 5",
			Expected: `found 5 = "Pineapple"`,
		},
		{
			Name:     "RemoveOne",
			Setup:    []string{"insert 5 Mango", "insert 5 Pineapple"},
			Command:  "remove 5",
			Expected: "removed 1 item(s) (size 1, height 1)",
		},
		{
			Name:     "RemoveAll",
			Setup:    []string{"insert 5 Mango", "insert 5 Pineapple"},
			Command:  "remove-all 5",
			Expected: "removed 2 item(s) (size 0, height 0)",
		},
		{
			Name:     "RemoveMiss",
			Command:  "remove 5",
			Expected: "nothing matched 5",
		},
		{
			Name:     "CountEmpty",
			Command:  "count",
			Expected: "0 item(s), height 0",
		},
		{
			Name:     "CountKey",
			Setup:    []string{"insert 5 Mango", "insert 5 Pineapple"},
			Command:  "count 5",
			Expected: "2 occurrence(s) of 5",
		},
		{
			Name:     "CountKeyValue",
			Setup:    []string{"insert 5 Mango", "insert 5 Pineapple"},
			Command:  "count 5 Mango",
			Expected: `1 occurrence(s) of 5 = "Mango"`,
		},
		{
			Name:     "MinMax",
			Setup:    []string{"insert 5 Mango", "insert -3 Kiwi", "insert 9 Fig"},
			Command:  "min",
			Expected: `min is -3 = "Kiwi"`,
		},
		{
			Name:     "Keys",
			Setup:    []string{"insert 5 Mango", "insert -3 Kiwi", "insert 9 Fig"},
			Command:  "keys",
			Expected: "-3 5 9",
		},
		{
			Name:     "KeysDescending",
			Setup:    []string{"insert 5 Mango", "insert -3 Kiwi", "insert 9 Fig"},
			Command:  "keys desc",
			Expected: "9 5 -3",
		},
		{
			Name:     "Clear",
			Setup:    []string{"insert 5 Mango"},
			Command:  "clear",
			Expected: "cleared",
		},
		{
			Name:    "Unknown",
			Command: "frobnicate 5",
			WantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			session := NewSession(true, false, true)
			for _, line := range tc.Setup {
				_, err := session.Execute(line)
				require.NoError(t, err)
			}
			result, err := session.Execute(tc.Command)
			if tc.WantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, result)
		})
	}
}

func TestSessionKeysOnly(t *testing.T) {
	session := NewSession(false, true, false)
	assert.Equal(t, "BST key-only tree, no duplicates", session.Flavor())

	out, err := session.Execute("insert 7")
	require.NoError(t, err)
	assert.Equal(t, "inserted 7 (size 1, height 1)", out)

	out, err = session.Execute("insert 7")
	require.NoError(t, err)
	assert.Equal(t, "rejected: key 7 exists and duplicates are off", out)

	_, err = session.Execute("insert 7 Mango")
	require.Error(t, err, "values are not accepted on a key-only tree")

	out, err = session.Execute("search 7")
	require.NoError(t, err)
	assert.Equal(t, "found 7", out)
}

func TestSessionSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbench.tree")

	session := NewSession(true, false, true)
	for _, line := range []string{"insert 5 Mango", "insert 5 Pineapple", "insert -3 Kiwi"} {
		_, err := session.Execute(line)
		require.NoError(t, err)
	}
	out, err := session.Execute("save " + path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved 3 item(s)")

	fresh := NewSession(true, false, false)
	out, err = fresh.Execute("load " + path)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 3 item(s)")
	// The file's duplicate policy wins over the session's.
	assert.True(t, fresh.allowDuplicates)

	out, err = fresh.Execute("count 5")
	require.NoError(t, err)
	assert.Equal(t, "2 occurrence(s) of 5", out)
}

func TestSessionLoadMissingFile(t *testing.T) {
	session := NewSession(false, true, true)
	_, err := session.Execute("load " + filepath.Join(t.TempDir(), "nope.tree"))
	require.Error(t, err)
	// The session keeps working after a failed load.
	_, err = session.Execute("insert 1")
	require.NoError(t, err)
}
