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

package history

import "time"

// RawCommit is the primitive unit a Provider emits: a commit's identity,
// authored time, raw message split into summary/body, and the names of any
// tags pointing directly at it. Nothing here is parsed against the
// changelog grammar yet; that is the Parse Orchestrator's job (C3).
type RawCommit struct {
	OID     string
	Time    time.Time
	Summary string
	Body    string
	// Tags holds every tag ref (short name, without "refs/tags/") pointing
	// directly at this commit, in no particular order.
	Tags []string
}

// anchorTag returns the first tag on c that does not match exclude, and
// true, or ("", false) if none qualifies. exclude may be nil.
func anchorTag(c RawCommit, exclude matcher) (string, bool) {
	for _, t := range c.Tags {
		if exclude == nil || !exclude.MatchString(t) {
			return t, true
		}
	}
	return "", false
}

// matcher is satisfied by *regexp.Regexp; kept as an interface so tests can
// supply a trivial stand-in without importing regexp.
type matcher interface {
	MatchString(string) bool
}
