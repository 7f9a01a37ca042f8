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
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/arbor"
	shellwords "github.com/mattn/go-shellwords"
)

// Session owns the tree a workbench run operates on. Keys are ints;
// values, when the flavor carries them, are free-form strings. Exactly
// one of keys/items is set, depending on the flavor.
type Session struct {
	balanced        bool
	keysOnly        bool
	allowDuplicates bool

	keys  *arbor.KeyTree[int]
	items *arbor.Tree[int, string]
}

func NewSession(balanced, keysOnly, allowDuplicates bool) *Session {
	s := &Session{
		balanced:        balanced,
		keysOnly:        keysOnly,
		allowDuplicates: allowDuplicates,
	}
	switch {
	case keysOnly && balanced:
		s.keys = arbor.NewKeyAVL[int](allowDuplicates)
	case keysOnly:
		s.keys = arbor.NewKeyBST[int](allowDuplicates)
	case balanced:
		s.items = arbor.NewAVL[int, string](allowDuplicates)
	default:
		s.items = arbor.NewBST[int, string](allowDuplicates)
	}
	return s
}

// Flavor describes the session's tree in one line, e.g.
// "AVL key-value tree, duplicates allowed".
func (s *Session) Flavor() string {
	kind := "BST"
	if s.balanced {
		kind = "AVL"
	}
	content := "key-value"
	if s.keysOnly {
		content = "key-only"
	}
	policy := "no duplicates"
	if s.allowDuplicates {
		policy = "duplicates allowed"
	}
	return fmt.Sprintf("%s %s tree, %s", kind, content, policy)
}

// Render returns the leveled diagram of the current tree.
func (s *Session) Render() string {
	if s.keysOnly {
		return s.keys.String()
	}
	return s.items.String()
}

func (s *Session) count() int {
	if s.keysOnly {
		return s.keys.Count()
	}
	return s.items.Count()
}

func (s *Session) height() int {
	if s.keysOnly {
		return s.keys.Height()
	}
	return s.items.Height()
}

// Execute parses one workbench command line and applies it, returning a
// human-readable result. Lines are split shell-style so quoted values
// may contain spaces.
func (s *Session) Execute(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", errors.Wrap(err, "parsing command")
	}
	if len(args) == 0 {
		return "", nil
	}

	verb, args := strings.ToLower(args[0]), args[1:]
	switch verb {
	case "insert":
		return s.insert(args)
	case "remove":
		return s.remove(args, false)
	case "remove-all":
		return s.remove(args, true)
	case "search":
		return s.search(args, false)
	case "search-last":
		return s.search(args, true)
	case "count":
		return s.countCmd(args)
	case "min":
		return s.minMax(true)
	case "max":
		return s.minMax(false)
	case "keys":
		return s.sortedKeys(args)
	case "clear":
		s.clear()
		return "cleared", nil
	case "save":
		return s.save(args)
	case "load":
		return s.load(args)
	default:
		return "", errors.Newf("unknown command %q, try help", verb)
	}
}

func parseKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Newf("key must be an integer, got %q", arg)
	}
	return key, nil
}

func (s *Session) insert(args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: insert KEY [VALUE]")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}

	var inserted bool
	if s.keysOnly {
		if len(args) > 1 {
			return "", errors.New("this tree stores keys only")
		}
		inserted = s.keys.Insert(key)
	} else {
		if len(args) < 2 {
			return "", errors.New("usage: insert KEY VALUE")
		}
		inserted = s.items.Insert(key, args[1])
	}
	if !inserted {
		return fmt.Sprintf("rejected: key %d exists and duplicates are off", key), nil
	}
	return fmt.Sprintf("inserted %d (size %d, height %d)", key, s.count(), s.height()), nil
}

func (s *Session) remove(args []string, all bool) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: remove KEY [VALUE]")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}

	var removed int
	switch {
	case len(args) == 1 && s.keysOnly:
		removed = s.keys.Remove(key, all)
	case len(args) == 1:
		removed = s.items.Remove(key, all)
	case s.keysOnly:
		return "", errors.New("this tree stores keys only")
	default:
		removed = s.items.RemoveValue(key, args[1], all)
	}
	if removed == 0 {
		return fmt.Sprintf("nothing matched %s", strings.Join(args, " ")), nil
	}
	return fmt.Sprintf("removed %d item(s) (size %d, height %d)", removed, s.count(), s.height()), nil
}

func (s *Session) search(args []string, last bool) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: search KEY [VALUE]")
	}
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}

	if s.keysOnly {
		if len(args) > 1 {
			return "", errors.New("this tree stores keys only")
		}
		if s.keys.Search(key) {
			return fmt.Sprintf("found %d", key), nil
		}
		return fmt.Sprintf("%d not found", key), nil
	}

	var (
		k  int
		v  string
		ok bool
	)
	if len(args) > 1 {
		k, v, ok = s.items.SearchValue(key, args[1], last)
	} else {
		k, v, ok = s.items.Search(key, last)
	}
	if !ok {
		return fmt.Sprintf("%s not found", strings.Join(args, " ")), nil
	}
	return fmt.Sprintf("found %d = %q", k, v), nil
}

func (s *Session) countCmd(args []string) (string, error) {
	switch len(args) {
	case 0:
		return fmt.Sprintf("%d item(s), height %d", s.count(), s.height()), nil
	case 1:
		key, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		var n int
		if s.keysOnly {
			n = s.keys.CountKey(key)
		} else {
			n = s.items.CountKey(key)
		}
		return fmt.Sprintf("%d occurrence(s) of %d", n, key), nil
	default:
		if s.keysOnly {
			return "", errors.New("this tree stores keys only")
		}
		key, err := parseKey(args[0])
		if err != nil {
			return "", err
		}
		n := s.items.CountValue(key, args[1])
		return fmt.Sprintf("%d occurrence(s) of %d = %q", n, key, args[1]), nil
	}
}

func (s *Session) minMax(min bool) (string, error) {
	name := "max"
	if min {
		name = "min"
	}
	if s.keysOnly {
		var (
			k  int
			ok bool
		)
		if min {
			k, ok = s.keys.Min()
		} else {
			k, ok = s.keys.Max()
		}
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("%s is %d", name, k), nil
	}

	var (
		k  int
		v  string
		ok bool
	)
	if min {
		k, v, ok = s.items.Min()
	} else {
		k, v, ok = s.items.Max()
	}
	if !ok {
		return "tree is empty", nil
	}
	return fmt.Sprintf("%s is %d = %q", name, k, v), nil
}

func (s *Session) sortedKeys(args []string) (string, error) {
	reverse := len(args) > 0 && strings.EqualFold(args[0], "desc")
	var keys []int
	if s.keysOnly {
		keys = s.keys.SortedKeys(reverse)
	} else {
		keys = s.items.SortedKeys(reverse)
	}
	if len(keys) == 0 {
		return "tree is empty", nil
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " "), nil
}

func (s *Session) clear() {
	if s.keysOnly {
		s.keys.Clear()
	} else {
		s.items.Clear()
	}
}

func (s *Session) save(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: save PATH")
	}
	var err error
	if s.keysOnly {
		err = s.keys.Serialize(args[0], true)
	} else {
		err = s.items.Serialize(args[0], true)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %d item(s) to %s", s.count(), args[0]), nil
}

// load replaces the session's tree with the file's content. The file
// dictates the duplicate policy; the session keeps its own flavor.
func (s *Session) load(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: load PATH")
	}
	path := args[0]
	if s.keysOnly {
		var (
			loaded *arbor.KeyTree[int]
			err    error
		)
		if s.balanced {
			loaded, err = arbor.LoadKeyAVL[int](path)
		} else {
			loaded, err = arbor.LoadKeyBST[int](path)
		}
		if err != nil {
			return "", err
		}
		s.keys = loaded
		s.allowDuplicates = loaded.DuplicatesAllowed()
	} else {
		var (
			loaded *arbor.Tree[int, string]
			err    error
		)
		if s.balanced {
			loaded, err = arbor.LoadAVL[int, string](path)
		} else {
			loaded, err = arbor.LoadBST[int, string](path)
		}
		if err != nil {
			return "", err
		}
		s.items = loaded
		s.allowDuplicates = loaded.DuplicatesAllowed()
	}
	return fmt.Sprintf("loaded %d item(s) from %s", s.count(), path), nil
}
