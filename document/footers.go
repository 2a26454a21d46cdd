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

package document

import "github.com/dirpx/gitjournal/grammar"

// aggregateFooters scans every commit's footers in order and collects them
// into a single ordered multiset, skipping an exact (key, value) repeat
// that has already been recorded (spec §4.4's "stable de-duplication step
// that keeps all values" — duplicates are only ever collapsed when both
// the key and the value are identical; distinct values for the same key
// are always kept, since footers are multisets per key).
func aggregateFooters(commits []grammar.ParsedCommit) grammar.Footers {
	var out grammar.Footers
	seen := make(map[grammar.Footer]bool)
	for _, c := range commits {
		for _, f := range c.Footers {
			if seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
