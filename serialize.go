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
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Serialize writes the tree to path, truncating any existing file. The
// first record is the duplicate policy, then one key record per item in
// level order (value record following each key on a key-value tree), so
// reloading an unbalanced tree reproduces its exact shape.
//
// On failure the file is left behind half-written unless deleteOnFailure
// is set. Errors are marked ErrOpen or ErrWrite.
func (t *Tree[K, V]) Serialize(path string, deleteOnFailure bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "creating %q", path), ErrOpen)
	}

	w := bufio.NewWriter(f)
	err = t.appendTo(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		return nil
	}

	err = errors.Mark(errors.Wrapf(err, "serializing to %q", path), ErrWrite)
	if deleteOnFailure {
		if rerr := os.Remove(path); rerr != nil {
			err = errors.CombineErrors(err, rerr)
		}
	}
	return err
}

func (t *Tree[K, V]) appendTo(w io.Writer) error {
	if err := writeRecord(w, &t.allowDups); err != nil {
		return err
	}
	for _, it := range t.Items() {
		if err := writeRecord(w, &it.Key); err != nil {
			return err
		}
		if !t.keyOnly {
			if err := writeRecord(w, &it.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadBST reads a key-value file written by Serialize into a fresh
// unbalanced tree.
func LoadBST[K Key, V Value](path string) (*Tree[K, V], error) {
	return load[K, V](path, false, false)
}

// LoadAVL reads a key-value file written by Serialize into a fresh AVL
// tree. The stored item order is irrelevant here: rebalancing decides
// the shape.
func LoadAVL[K Key, V Value](path string) (*Tree[K, V], error) {
	return load[K, V](path, true, false)
}

// load always returns a usable tree. On a corrupt file the error is
// marked ErrCorrupt and the tree comes back empty rather than
// half-populated.
func load[K Key, V Value](path string, balanced, keyOnly bool) (*Tree[K, V], error) {
	t := &Tree[K, V]{balanced: balanced, keyOnly: keyOnly}

	f, err := os.Open(path)
	if err != nil {
		return t, errors.Mark(errors.Wrapf(err, "opening %q", path), ErrOpen)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	// The duplicate-policy record is mandatory; a stream ending before it
	// is complete is corrupt, not empty.
	var allowDups bool
	if err := readRecord(r, &allowDups); err != nil {
		return t, errors.Mark(errors.Wrapf(err, "duplicate policy in %q", path), ErrCorrupt)
	}
	t.allowDups = allowDups

	for {
		var key K
		err := readRecord(r, &key)
		if err == io.EOF {
			return t, nil
		}
		if err == nil && !keyOnly {
			// EOF between a key and its value is still mid-item.
			var value V
			if err = readRecord(r, &value); err == nil {
				t.Insert(key, value)
			}
		} else if err == nil {
			var zero V
			t.Insert(key, zero)
		}
		if err != nil {
			t.Clear()
			t.allowDups = allowDups
			return t, errors.Mark(errors.Wrapf(err, "item records in %q", path), ErrCorrupt)
		}
	}
}
