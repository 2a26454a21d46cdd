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

// Package orchestrate is the Parse Orchestrator (C3): it parses every raw
// commit in a history.RawSection through the grammar package in parallel,
// while preserving input order exactly as a serial parse would (spec
// §4.3, §5). Unparsable commits are logged at INFO and dropped; a section
// that ends up with no parsable commits is dropped entirely.
package orchestrate

import (
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"

	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/history"
)

// parseResult pairs a ParsedCommit with the error (if any) its own source
// commit produced, so the order-preserving map can report per-commit
// failures without losing its slot.
type parseResult struct {
	commit grammar.ParsedCommit
	oid    string
	err    error
}

// Run parses every section produced by history.Walk into a
// document.Section, using opts for the grammar. Parsing within a section
// happens concurrently (via sourcegraph/conc/iter.Map, a bounded
// work-stealing parallel map) but the resulting commit order is always
// identical to parsing serially; only CPU-bound parsing is parallelized,
// never the section ordering itself.
//
// Sections that end up with zero parsable commits are omitted from the
// result, matching document.Document's invariant that empty sections never
// appear.
func Run(log zerolog.Logger, sections []history.RawSection, opts grammar.Options) []document.Section {
	out := make([]document.Section, 0, len(sections))
	for _, rs := range sections {
		commits := parseSection(log, rs, opts)
		if len(commits) == 0 {
			continue
		}
		out = append(out, document.Section{
			Name:    rs.Name,
			Date:    rs.Date,
			Commits: commits,
		})
	}
	return out
}

func parseSection(log zerolog.Logger, rs history.RawSection, opts grammar.Options) []grammar.ParsedCommit {
	results := iter.Map(rs.Commits, func(c *history.RawCommit) parseResult {
		message := c.Summary
		if c.Body != "" {
			message += "\n\n" + c.Body
		}
		parsed, err := grammar.Parse(c.OID, c.Time, message, opts)
		return parseResult{commit: parsed, oid: c.OID, err: err}
	})

	out := make([]grammar.ParsedCommit, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			log.Info().Str("oid", shortOID(r.oid)).Err(r.err).Msg("skipping unparsable commit")
			continue
		}
		out = append(out, r.commit)
	}
	return out
}

func shortOID(oid string) string {
	if len(oid) <= 7 {
		return oid
	}
	return oid[:7]
}
