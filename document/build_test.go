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
	"testing"
	"time"

	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/grammar"
)

func TestBuildSortByName(t *testing.T) {
	sections := []Section{{
		Name: UnreleasedName,
		Commits: []grammar.ParsedCommit{
			{Summary: grammar.ParsedItem{Category: "Added", Text: "zeta"}},
			{Summary: grammar.ParsedItem{Category: "Added", Text: "alpha"}},
		},
	}}
	doc := Build(sections, BuildOptions{SortBy: SortByName})
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %+v", doc.Sections)
	}
	got := doc.Sections[0].Commits
	if got[0].Summary.Text != "alpha" || got[1].Summary.Text != "zeta" {
		t.Errorf("got %+v", got)
	}
}

func TestBuildFooterAggregation(t *testing.T) {
	sections := []Section{{
		Name: UnreleasedName,
		Commits: []grammar.ParsedCommit{
			{Summary: grammar.ParsedItem{Category: "Fixed", Text: "a"}, Footers: grammar.Footers{{Key: "Fixes", Value: "#1"}}},
			{Summary: grammar.ParsedItem{Category: "Fixed", Text: "b"}, Footers: grammar.Footers{{Key: "Fixes", Value: "#2, #3"}}},
		},
	}}
	doc := Build(sections, BuildOptions{})
	got := doc.Sections[0].Footers
	if len(got) != 2 || got[0].Value != "#1" || got[1].Value != "#2, #3" {
		t.Errorf("footers = %+v", got)
	}
}

func TestBuildIgnoreDropsCommitAndSubtree(t *testing.T) {
	sections := []Section{{
		Name: UnreleasedName,
		Commits: []grammar.ParsedCommit{
			{Summary: grammar.ParsedItem{Category: "Added", Text: "keep", Tags: []grammar.Tag{"core"}}},
			{Summary: grammar.ParsedItem{Category: "Added", Text: "drop", Tags: []grammar.Tag{"experimental"}}},
			{
				Summary: grammar.ParsedItem{Category: "Changed", Text: "mixed"},
				Body: []grammar.ParsedItem{
					{Kind: grammar.KindListItem, Category: "Added", Text: "keep child"},
					{Kind: grammar.KindListItem, Category: "Added", Text: "drop child", Tags: []grammar.Tag{"experimental"}},
				},
			},
		},
	}}
	doc := Build(sections, BuildOptions{Ignore: []grammar.Tag{"experimental"}})
	commits := doc.Sections[0].Commits
	if len(commits) != 2 {
		t.Fatalf("commits = %+v", commits)
	}
	if commits[0].Summary.Text != "keep" {
		t.Errorf("commits[0] = %+v", commits[0])
	}
	if len(commits[1].Body) != 1 || commits[1].Body[0].Text != "keep child" {
		t.Errorf("commits[1].Body = %+v", commits[1].Body)
	}
}

func TestBuildSuggestedVersion(t *testing.T) {
	sections := []Section{{
		Name: "v2",
		Commits: []grammar.ParsedCommit{
			{Summary: grammar.ParsedItem{Category: "Added", Text: "feature"}},
		},
	}}
	doc := Build(sections, BuildOptions{
		PreviousVersions: map[string]change.Version{"v2": {Major: 1, Minor: 0, Patch: 0}},
	})
	if doc.Sections[0].SuggestedBump != change.BumpMinor {
		t.Errorf("bump = %v", doc.Sections[0].SuggestedBump)
	}
	if doc.Sections[0].SuggestedVersion.String() != "1.1.0" {
		t.Errorf("version = %v", doc.Sections[0].SuggestedVersion)
	}
}

func testTime() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
