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

import (
	"testing"
	"time"
)

func testOpts(t *testing.T) Options {
	t.Helper()
	opts, err := DefaultOptions().Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return opts
}

func TestParseSummaryLine(t *testing.T) {
	opts := testOpts(t)

	tests := []struct {
		name     string
		line     string
		wantCat  Category
		wantText string
		wantTags []Tag
		wantErr  bool
	}{
		{
			name:     "basic",
			line:     "[Added] support for nested lists",
			wantCat:  "Added",
			wantText: "support for nested lists",
		},
		{
			name:     "case insensitive category",
			line:     "[added] lowercase works",
			wantCat:  "Added",
			wantText: "lowercase works",
		},
		{
			name:     "bare category without delimiters",
			line:     "Added file1",
			wantCat:  "Added",
			wantText: "file1",
		},
		{
			name:     "with tag",
			line:     "[Fixed] crash on startup :core:",
			wantCat:  "Fixed",
			wantText: "crash on startup",
			wantTags: []Tag{"core"},
		},
		{
			name:    "missing category",
			line:    "just a plain summary",
			wantErr: true,
		},
		{
			name:    "unknown category",
			line:    "[Frobnicated] something",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item, err := parseSummaryLine(tc.line, opts)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.Category != tc.wantCat {
				t.Errorf("category = %q, want %q", item.Category, tc.wantCat)
			}
			if item.Text != tc.wantText {
				t.Errorf("text = %q, want %q", item.Text, tc.wantText)
			}
			if len(item.Tags) != len(tc.wantTags) {
				t.Fatalf("tags = %v, want %v", item.Tags, tc.wantTags)
			}
			for i, tag := range tc.wantTags {
				if item.Tags[i] != tag {
					t.Errorf("tags[%d] = %q, want %q", i, item.Tags[i], tag)
				}
			}
		})
	}
}

func TestParseSummaryLineWithPrefix(t *testing.T) {
	opts := DefaultOptions()
	opts.PrefixPattern = `[A-Z]+-\d+`
	opts, err := opts.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	item, err := parseSummaryLine("JIRA-1234 [Added] ticketed feature", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Category != "Added" || item.Text != "ticketed feature" {
		t.Errorf("got category=%q text=%q", item.Category, item.Text)
	}
}

func TestParseBodyParagraph(t *testing.T) {
	opts := testOpts(t)

	items, footers, err := parseBody("This explains the change in more depth.\nStill part of the same paragraph.", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(footers) != 0 {
		t.Fatalf("unexpected footers: %v", footers)
	}
	if len(items) != 1 || items[0].Kind != KindParagraph {
		t.Fatalf("items = %+v", items)
	}
	want := "This explains the change in more depth. Still part of the same paragraph."
	if items[0].Text != want {
		t.Errorf("text = %q, want %q", items[0].Text, want)
	}
}

func TestParseBodyFooters(t *testing.T) {
	opts := testOpts(t)

	body := "Some paragraph text.\n\nSigned-off-by: Jane Doe\nSee-also: #123"
	items, footers, err := parseBody(body, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %+v", items)
	}
	if len(footers) != 2 {
		t.Fatalf("footers = %+v", footers)
	}
	if footers[0].Key != "Signed-off-by" || footers[0].Value != "Jane Doe" {
		t.Errorf("footers[0] = %+v", footers[0])
	}
	if footers[1].Key != "See-also" || footers[1].Value != "#123" {
		t.Errorf("footers[1] = %+v", footers[1])
	}
}

func TestParseBodyBreakingFooter(t *testing.T) {
	opts := testOpts(t)

	body := "BREAKING CHANGE: the config format changed"
	_, footers, err := parseBody(body, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !footers.HasBreaking() {
		t.Fatalf("expected breaking footer, got %+v", footers)
	}
}

func TestParseBodyNestedList(t *testing.T) {
	opts := testOpts(t)

	body := "- [Added] top level item :core:\n" +
		"  continuation text for the item\n" +
		"  - [Fixed] nested child one\n" +
		"  - [Improved] nested child two\n" +
		"- [Removed] second top level item"

	items, _, err := parseBody(body, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}
	first := items[0]
	if first.Category != "Added" || len(first.Tags) != 1 || first.Tags[0] != "core" {
		t.Errorf("first = %+v", first)
	}
	if first.Text != "top level item continuation text for the item" {
		t.Errorf("first.Text = %q", first.Text)
	}
	if len(first.Children) != 2 {
		t.Fatalf("children = %+v", first.Children)
	}
	if first.Children[0].Category != "Fixed" || first.Children[1].Category != "Improved" {
		t.Errorf("children = %+v", first.Children)
	}
	if items[1].Category != "Removed" {
		t.Errorf("second item = %+v", items[1])
	}
}

func TestParseBodyListItemMissingCategory(t *testing.T) {
	opts := testOpts(t)
	_, _, err := parseBody("- no category here", opts)
	if err == nil {
		t.Fatal("expected error for list item without category")
	}
}

func TestParseRoundTrip(t *testing.T) {
	opts := testOpts(t)

	messages := []string{
		"[Added] a simple feature",
		"[Fixed] a bug :core: :cli:\n\nMore detail about the bug in a paragraph.",
		"[Changed] behavior\n\n- [Added] a sub change\n  - [Fixed] a nested fix\n- [Removed] a sibling\n\nSigned-off-by: Jane Doe",
	}

	for _, msg := range messages {
		parsed, err := Parse("abc123", time.Unix(0, 0), msg, opts)
		if err != nil {
			t.Fatalf("Parse(%q): %v", msg, err)
		}
		rendered := RenderMessage(parsed, opts)
		reparsed, err := Parse("abc123", time.Unix(0, 0), rendered, opts)
		if err != nil {
			t.Fatalf("re-Parse(%q) from rendered %q: %v", msg, rendered, err)
		}
		if !commitsEqual(parsed, reparsed) {
			t.Errorf("round trip mismatch:\noriginal: %+v\nrendered: %q\nreparsed: %+v", parsed, rendered, reparsed)
		}
	}
}

func commitsEqual(a, b ParsedCommit) bool {
	return itemsEqual(a.Summary, b.Summary) && itemsSliceEqual(a.Body, b.Body) && footersEqual(a.Footers, b.Footers)
}

func itemsEqual(a, b ParsedItem) bool {
	if a.Kind != b.Kind || !a.Category.Equal(b.Category) || a.Text != b.Text || len(a.Tags) != len(b.Tags) {
		return false
	}
	for i := range a.Tags {
		if !a.Tags[i].Equal(b.Tags[i]) {
			return false
		}
	}
	return itemsSliceEqual(a.Children, b.Children)
}

func itemsSliceEqual(a, b []ParsedItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !itemsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func footersEqual(a, b Footers) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
