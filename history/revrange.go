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

// Package history walks a repository's commit history into raw, tag-bucketed
// sections (component C2). It never touches git itself: it consumes whatever
// a history.Provider hands it and applies the tag-anchor and tags-count
// policy described in spec §4.2.
package history

import (
	"strings"

	"github.com/dirpx/gitjournal/internal/errors"
)

// RevisionRange is either a single revision (walk ancestors, stopping at a
// configured number of tag anchors) or an explicit "A..B" git range (no
// implicit stopping; standard set-exclusion semantics).
type RevisionRange struct {
	Single bool
	From   string // empty when Single is true
	To     string
}

// DefaultRevision is used when the CLI receives no positional revision
// argument.
const DefaultRevision = "HEAD"

// ParseRevisionRange parses the CLI's positional revision argument: either a
// bare revision ("HEAD", "v1.2.3", a hash) or an "A..B" range.
func ParseRevisionRange(s string) (RevisionRange, error) {
	if s == "" {
		s = DefaultRevision
	}
	if from, to, ok := strings.Cut(s, ".."); ok {
		if to == "" {
			return RevisionRange{}, &errors.ParseError{Type: "RevisionRange", Value: s}
		}
		return RevisionRange{From: from, To: to}, nil
	}
	return RevisionRange{Single: true, To: s}, nil
}

// String renders the range in git's own notation.
func (r RevisionRange) String() string {
	if r.Single {
		return r.To
	}
	return r.From + ".." + r.To
}
