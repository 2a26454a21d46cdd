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

import (
	"sort"

	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/grammar"
)

// SortBy selects how commits within a section are ordered.
type SortBy string

const (
	SortByDate SortBy = "date"
	SortByName SortBy = "name"
)

// BuildOptions configures Build.
type BuildOptions struct {
	SortBy SortBy

	// Ignore drops any item (and, if it is a commit's summary, the whole
	// commit) whose tag set intersects this list, before any template
	// projection ever sees the section (the "ignore-before-routing"
	// policy; see DESIGN.md's open question decisions).
	Ignore []grammar.Tag

	// Bumps and PreviousVersions feed the Suggested Next Version
	// supplement; PreviousVersions maps a section's own name (e.g.
	// "Unreleased") to the version that section bumps from. A nil/missing
	// entry leaves SuggestedVersion at its zero value.
	Bumps            change.CategoryBumpMap
	PreviousVersions map[string]change.Version
}

// Build turns orchestrator sections into a Document: sorting each
// section's commits, filtering ignored items, aggregating footers, and
// computing the suggested next version.
func Build(sections []Section, opts BuildOptions) Document {
	bumps := opts.Bumps
	if bumps == nil {
		bumps = change.DefaultCategoryBumpMap()
	}

	doc := Document{Sections: make([]Section, 0, len(sections))}
	for _, s := range sections {
		commits := filterIgnored(s.Commits, opts.Ignore)
		if len(commits) == 0 {
			continue
		}
		sortCommits(commits, opts.SortBy)

		s.Commits = commits
		s.Footers = aggregateFooters(commits)
		s.SuggestedBump = change.Suggest(commits, bumps)
		if prev, ok := opts.PreviousVersions[s.Name]; ok {
			s.SuggestedVersion = prev.Bump(s.SuggestedBump)
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

func sortCommits(commits []grammar.ParsedCommit, by SortBy) {
	switch by {
	case SortByName:
		sort.SliceStable(commits, func(i, j int) bool {
			return commits[i].Summary.Text < commits[j].Summary.Text
		})
	case SortByDate:
		sort.SliceStable(commits, func(i, j int) bool {
			return commits[i].Time.After(commits[j].Time)
		})
	}
}

// filterIgnored drops commits whose summary carries an ignored tag, and
// prunes ignored subtrees from the remaining commits' body items.
func filterIgnored(commits []grammar.ParsedCommit, ignore []grammar.Tag) []grammar.ParsedCommit {
	if len(ignore) == 0 {
		return commits
	}
	out := make([]grammar.ParsedCommit, 0, len(commits))
	for _, c := range commits {
		if hasAnyTag(c.Summary.Tags, ignore) {
			continue
		}
		c.Body = pruneItems(c.Body, ignore)
		out = append(out, c)
	}
	return out
}

func pruneItems(items []grammar.ParsedItem, ignore []grammar.Tag) []grammar.ParsedItem {
	out := make([]grammar.ParsedItem, 0, len(items))
	for _, it := range items {
		if hasAnyTag(it.Tags, ignore) {
			continue
		}
		it.Children = pruneItems(it.Children, ignore)
		out = append(out, it)
	}
	return out
}

func hasAnyTag(tags []grammar.Tag, ignore []grammar.Tag) bool {
	for _, t := range tags {
		for _, ig := range ignore {
			if t.Equal(ig) {
				return true
			}
		}
	}
	return false
}
