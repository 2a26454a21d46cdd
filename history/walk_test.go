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

import (
	"regexp"
	"testing"
	"time"
)

func at(daysAgo int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

func TestWalkBasicChangelog(t *testing.T) {
	commits := []RawCommit{
		{OID: "1", Time: at(0), Summary: "[Added] file1"},
		{OID: "2", Time: at(1), Summary: "[Removed] file1"},
		{OID: "3", Time: at(2), Summary: "[Added] file2", Tags: []string{"v1"}},
		{OID: "4", Time: at(3), Summary: "[Added] file1"},
	}

	sections := Walk(commits, WalkOptions{SingleRevision: true, TagsCount: 1})

	if len(sections) != 2 {
		t.Fatalf("sections = %+v", sections)
	}
	if sections[0].Name != UnreleasedName || len(sections[0].Commits) != 2 {
		t.Errorf("section[0] = %+v", sections[0])
	}
	if sections[1].Name != "v1" || len(sections[1].Commits) != 2 {
		t.Errorf("section[1] = %+v", sections[1])
	}
	if sections[1].Commits[0].OID != "3" || sections[1].Commits[1].OID != "4" {
		t.Errorf("v1 commits = %+v", sections[1].Commits)
	}
}

func TestWalkSkipUnreleased(t *testing.T) {
	commits := []RawCommit{
		{OID: "1", Time: at(0), Summary: "[Added] file1"},
		{OID: "2", Time: at(1), Summary: "[Added] file2", Tags: []string{"v1"}},
	}
	sections := Walk(commits, WalkOptions{SingleRevision: true, TagsCount: 1, SkipUnreleased: true})
	if len(sections) != 1 || sections[0].Name != "v1" {
		t.Fatalf("sections = %+v", sections)
	}
}

func TestWalkExcludedTagMergesForward(t *testing.T) {
	exclude := regexp.MustCompile(DefaultExcludePattern)
	commits := []RawCommit{
		{OID: "1", Time: at(0), Summary: "[Added] file1", Tags: []string{"v3-rc"}},
		{OID: "2", Time: at(1), Summary: "[Added] file2", Tags: []string{"v2"}},
		{OID: "3", Time: at(2), Summary: "[Added] file3", Tags: []string{"v1"}},
	}
	sections := Walk(commits, WalkOptions{All: true, Exclude: exclude})

	if len(sections) != 2 {
		t.Fatalf("sections = %+v", sections)
	}
	if sections[0].Name != "v2" || len(sections[0].Commits) != 2 {
		t.Errorf("section[0] = %+v, want v2 with the excluded v3-rc commit folded in", sections[0])
	}
	if sections[1].Name != "v1" {
		t.Errorf("section[1] = %+v", sections[1])
	}
}

func TestWalkTagsCountStopsEarly(t *testing.T) {
	commits := []RawCommit{
		{OID: "1", Time: at(0), Summary: "x", Tags: []string{"v2"}},
		{OID: "2", Time: at(1), Summary: "y", Tags: []string{"v1"}},
	}
	sections := Walk(commits, WalkOptions{SingleRevision: true, TagsCount: 1})
	if len(sections) != 1 || sections[0].Name != "v2" {
		t.Fatalf("sections = %+v", sections)
	}
}

func TestWalkAllDoesNotStop(t *testing.T) {
	commits := []RawCommit{
		{OID: "1", Time: at(0), Summary: "x", Tags: []string{"v2"}},
		{OID: "2", Time: at(1), Summary: "y", Tags: []string{"v1"}},
	}
	sections := Walk(commits, WalkOptions{SingleRevision: true, TagsCount: 1, All: true})
	if len(sections) != 2 {
		t.Fatalf("sections = %+v", sections)
	}
}

func TestParseRevisionRange(t *testing.T) {
	r, err := ParseRevisionRange("v1..v2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Single || r.From != "v1" || r.To != "v2" {
		t.Errorf("got %+v", r)
	}

	r2, err := ParseRevisionRange("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r2.Single || r2.To != DefaultRevision {
		t.Errorf("got %+v", r2)
	}
}
