/*
   Copyright 2025 The git-journal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package document builds the in-memory changelog model (C4): sections of
// parsed commits, sorted per configuration, with per-section footer
// aggregation and (as a supplement beyond the base grammar) a suggested
// next semantic version per section.
package document

import (
	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/grammar"
)

// UnreleasedName mirrors history.UnreleasedName; kept as its own constant
// so this package does not need to import history for a single string.
const UnreleasedName = "Unreleased"

// Section is one release's worth of parsed commits, or the Unreleased
// bucket.
type Section struct {
	Name    string
	Date    string
	Commits []grammar.ParsedCommit

	// Footers is the per-section footer aggregate (see footers.go).
	Footers grammar.Footers

	// SuggestedBump and SuggestedVersion are the "Suggested Next Version"
	// supplement's output; SuggestedVersion is the zero Version when no
	// PreviousVersion was supplied to Build.
	SuggestedBump   change.Bump
	SuggestedVersion change.Version
}

// IsZero reports whether s carries no commits.
func (s Section) IsZero() bool { return len(s.Commits) == 0 }

// Items flattens s's commits into the ordered top-level bullet list the
// default renderer walks: each commit contributes its summary item
// followed by its top-level body items, in section order.
func (s Section) Items() []grammar.ParsedItem {
	var out []grammar.ParsedItem
	for _, c := range s.Commits {
		out = append(out, c.Summary)
		out = append(out, c.Body...)
	}
	return out
}
