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

package grammar

import "time"

// ParsedCommit is the fully-structured result of parsing one commit's
// message against the configured grammar (spec §4.1). It is the unit that
// flows from the parse orchestrator (C3) into the document builder (C4).
type ParsedCommit struct {
	// OID is the commit's hash, as reported by the history walker.
	OID string
	// Time is the commit's authored (not committer) timestamp.
	Time time.Time
	// Summary is the parsed summary-line item (Kind == KindSummary).
	Summary ParsedItem
	// Body holds the body's item blocks (paragraphs and list items), in
	// source order. Empty for single-line commits.
	Body []ParsedItem
	// Footers holds the body's trailing Key: Value block, if any.
	Footers Footers
}

// TypeName identifies this type for error messages and logging.
func (ParsedCommit) TypeName() string { return "ParsedCommit" }

// IsZero reports whether c carries no usable content.
func (c ParsedCommit) IsZero() bool {
	return c.OID == "" && c.Summary.IsZero() && len(c.Body) == 0
}

// AllItems returns the summary followed by every top-level body item, for
// callers that want to walk everything the commit contributed without
// caring about the summary/body distinction.
func (c ParsedCommit) AllItems() []ParsedItem {
	out := make([]ParsedItem, 0, 1+len(c.Body))
	out = append(out, c.Summary)
	out = append(out, c.Body...)
	return out
}

// ShortOID returns the first n characters of OID, or the whole OID if it is
// shorter than n. Used by the renderer's commit-hash linking.
func (c ParsedCommit) ShortOID(n int) string {
	if len(c.OID) <= n {
		return c.OID
	}
	return c.OID[:n]
}
