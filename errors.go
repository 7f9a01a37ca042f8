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

import "github.com/cockroachdb/errors"

// Reference errors for the persistence layer, matched with errors.Is.
// Domain outcomes (key absent, duplicate rejected) are never errors;
// they come back as ok flags and counts.
var (
	// ErrOpen marks a failure to open the tree file.
	ErrOpen = errors.New("arbor: cannot open tree file")

	// ErrWrite marks a failed or incomplete serialization write.
	ErrWrite = errors.New("arbor: tree file write failed")

	// ErrCorrupt marks a record truncated mid-stream during load. A clean
	// end of file between records is normal termination, not corruption.
	ErrCorrupt = errors.New("arbor: corrupt tree file")
)
