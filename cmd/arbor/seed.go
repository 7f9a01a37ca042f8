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
	"math/rand"

	"github.com/schollz/progressbar/v3"
)

// seedTree fills a fresh session with n random keys and writes it to
// path. Keys land in [-keyRange, keyRange], so larger counts with a
// small range exercise the duplicate paths heavily.
func seedTree(session *Session, path string, n, keyRange int) error {
	bar := progressbar.NewOptions(n,
		progressbar.OptionSetDescription("Seeding tree"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	inserted := 0
	for i := 0; i < n; i++ {
		key := rand.Intn(2*keyRange+1) - keyRange
		if session.keysOnly {
			if session.keys.Insert(key) {
				inserted++
			}
		} else {
			if session.items.Insert(key, fmt.Sprintf("item-%d", i)) {
				inserted++
			}
		}
		bar.Add(1)
	}

	if _, err := session.save([]string{path}); err != nil {
		return err
	}
	fmt.Printf("🌱 Seeded %d of %d item(s) into %s (height %d)\n",
		inserted, n, path, session.height())
	return nil
}

// dumpTree loads a tree file into the session and prints its diagram
// with a summary line.
func dumpTree(session *Session, path string) error {
	if _, err := session.load([]string{path}); err != nil {
		return err
	}
	fmt.Println(session.Render())
	fmt.Printf("%s: %d item(s), height %d\n",
		session.Flavor(), session.count(), session.height())
	return nil
}
