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

package template

import (
	"testing"

	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
)

const sampleTemplate = `
[[tag]]
tag = "feature"
name = "Features"

[[tag]]
tag = "doc"
name = "Docs"
`

func TestLoadRejectsDuplicateTag(t *testing.T) {
	_, err := Load([]byte(`
[[tag]]
tag = "feature"
name = "A"
[[tag]]
tag = "feature"
name = "B"
`))
	if err == nil {
		t.Fatal("expected error for duplicate tag id")
	}
}

func TestLoadRejectsInvalidTagToken(t *testing.T) {
	_, err := Load([]byte(`
[[tag]]
tag = "Has Space"
name = "A"
`))
	if err == nil {
		t.Fatal("expected error for invalid tag token")
	}
}

func TestProjectRebucketing(t *testing.T) {
	tmpl, err := Load([]byte(sampleTemplate))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sec := document.Section{
		Name: "Unreleased",
		Commits: []grammar.ParsedCommit{{
			Summary: grammar.ParsedItem{Category: "Changed", Text: "root"},
			Body: []grammar.ParsedItem{
				{Kind: grammar.KindListItem, Category: "Added", Text: "X", Tags: []grammar.Tag{"feature"}},
				{Kind: grammar.KindListItem, Category: "Fixed", Text: "Y", Tags: []grammar.Tag{"doc", "feature"}},
				{Kind: grammar.KindListItem, Category: "Improved", Text: "Z"},
			},
		}},
	}

	ts := Project(sec, tmpl)

	var features, docs *ProjectedNode
	for _, n := range ts.Root {
		switch n.Node.Name {
		case "Features":
			features = n
		case "Docs":
			docs = n
		}
	}
	if features == nil || docs == nil {
		t.Fatalf("missing nodes: %+v", ts.Root)
	}
	if len(features.Items) != 2 {
		t.Errorf("features items = %+v, want X and Y", features.Items)
	}
	if len(docs.Items) != 1 || docs.Items[0].Text != "Y" {
		t.Errorf("docs items = %+v, want just Y", docs.Items)
	}

	foundZ := false
	for _, item := range ts.Default {
		if item.Text == "Z" {
			foundZ = true
		}
	}
	if !foundZ {
		t.Errorf("default bucket = %+v, want Z (no matching tag)", ts.Default)
	}
}

func TestProjectNoMatchingTagsGoesToDefault(t *testing.T) {
	tmpl, err := Load([]byte(`
[[tag]]
tag = "other"
name = "Other"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sec := document.Section{
		Name: "Unreleased",
		Commits: []grammar.ParsedCommit{{
			Summary: grammar.ParsedItem{Category: "Added", Text: "untagged"},
		}},
	}
	ts := Project(sec, tmpl)
	if len(ts.Default) != 1 || ts.Default[0].Text != "untagged" {
		t.Errorf("default = %+v", ts.Default)
	}
}

func TestHasTag(t *testing.T) {
	tmpl, err := Load([]byte(sampleTemplate))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tmpl.HasTag("feature") {
		t.Error("expected HasTag(feature) to be true")
	}
	if tmpl.HasTag("nonexistent") {
		t.Error("expected HasTag(nonexistent) to be false")
	}
}
