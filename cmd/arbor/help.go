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
	"runtime"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

const guideCacheKey = "workbench-guide"

func guideMarkdown() string {
	return fmt.Sprintf(`
**Arbor %s**

An ordered key/value workbench on top of a binary search tree, with an
optional self-balancing (AVL) mode. Built with Go %s.

# Commands

* `+"`insert KEY [VALUE]`"+`: add an item; VALUE is required on key-value trees
* `+"`remove KEY [VALUE]`"+`: delete one occurrence, by key or by key and value
* `+"`remove-all KEY [VALUE]`"+`: delete every matching occurrence
* `+"`search KEY [VALUE]`"+`: find the first occurrence
* `+"`search-last KEY [VALUE]`"+`: find the most recently inserted occurrence
* `+"`count [KEY [VALUE]]`"+`: size of the tree, of a key, or of a key-value pair
* `+"`min`"+` / `+"`max`"+`: smallest and largest key
* `+"`keys [desc]`"+`: sorted keys, ascending or descending
* `+"`clear`"+`: empty the tree
* `+"`save PATH`"+` / `+"`load PATH`"+`: persist to and restore from a file
* `+"`help`"+`: this guide
* `+"`quit`"+`: leave the workbench (esc works too)

# Notes

* Quote values that contain spaces: `+"`insert 3 \"green apple\"`"+`
* In AVL mode duplicate keys pile up on one node; in plain BST mode each
  duplicate becomes a node in the left subtree of its equal
* Saved files carry the duplicate policy; loading replaces the tree

# License
Licensed under the Apache License, Version 2.0
Copyright © 2026 Naren Yellavula
`, version, runtime.Version())
}

// renderGuide returns the glamour-rendered guide, keeping the rendered
// form in the cache since rendering is the slow part.
func renderGuide(c *cache.Cache, renderer *glamour.TermRenderer) string {
	if val, ok := c.Get(guideCacheKey); ok {
		return val.(string)
	}

	text := guideMarkdown()
	if renderer != nil {
		if rendered, err := renderer.Render(text); err == nil {
			text = rendered
		}
	}
	c.Set(guideCacheKey, text, cache.DefaultExpiration)
	return text
}

// getHelpMessage renders the guide for the plain terminal (usage
// subcommand), outside the TUI.
func getHelpMessage() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return guideMarkdown()
	}
	rendered, err := renderer.Render(guideMarkdown())
	if err != nil {
		return guideMarkdown()
	}
	return rendered
}
