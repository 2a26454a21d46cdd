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
	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
)

// ProjectedNode mirrors a Node but carries the items and footer values
// routed to it for one section.
type ProjectedNode struct {
	Node    *Node
	Items   []grammar.ParsedItem
	Footers grammar.Footers
	Subtags []*ProjectedNode
}

// IsEmpty reports whether n (and everything beneath it) carries nothing to
// render; an empty node is omitted entirely (spec §4.6).
func (n *ProjectedNode) IsEmpty() bool {
	if len(n.Items) > 0 || len(n.Footers) > 0 {
		return false
	}
	for _, s := range n.Subtags {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// TemplatedSection is document.Section re-bucketed into the template tree.
type TemplatedSection struct {
	Name string
	Date string

	// SuggestedVersion carries document.Section's "Suggested Next
	// Version" supplement value through to the renderer unchanged.
	SuggestedVersion change.Version

	Root    []*ProjectedNode
	Default []grammar.ParsedItem
}

// Project re-buckets sec into t's tree (spec §4.5): every item routes into
// every node whose tag is present on the item; items matching nothing go
// to the section-level default bucket. Paragraphs are promoted to list
// items so the templated Markdown stays a clean nested list.
func Project(sec document.Section, t *Template) TemplatedSection {
	ts := TemplatedSection{Name: sec.Name, Date: sec.Date, SuggestedVersion: sec.SuggestedVersion}
	ts.Root = projectNodes(t.Root, sec)

	for _, item := range sec.Items() {
		if len(t.nodesForTagsOf(item)) == 0 {
			ts.Default = append(ts.Default, promote(item))
		}
	}
	return ts
}

// nodesForTagsOf returns the union of nodes any of item's tags route to.
func (t *Template) nodesForTagsOf(item grammar.ParsedItem) []*Node {
	var out []*Node
	for _, tag := range item.Tags {
		out = append(out, t.nodesForTag(tag)...)
	}
	return out
}

func projectNodes(nodes []*Node, sec document.Section) []*ProjectedNode {
	out := make([]*ProjectedNode, 0, len(nodes))
	for _, n := range nodes {
		pn := &ProjectedNode{Node: n, Footers: filterFooters(sec.Footers, n.Footers)}
		for _, item := range sec.Items() {
			if item.HasTag(n.Tag) {
				pn.Items = append(pn.Items, promote(item))
			}
		}
		pn.Subtags = projectNodes(n.Subtags, sec)
		out = append(out, pn)
	}
	return out
}

// promote converts a standalone paragraph into a list item under template
// projection (spec §4.5's "paragraph-to-list normalization"); every other
// kind passes through unchanged.
func promote(item grammar.ParsedItem) grammar.ParsedItem {
	if item.Kind == grammar.KindParagraph {
		item.Kind = grammar.KindListItem
	}
	return item
}

// filterFooters returns the subset of pool whose Key is in keys,
// preserving pool's order.
func filterFooters(pool grammar.Footers, keys []string) grammar.Footers {
	if len(keys) == 0 {
		return nil
	}
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var out grammar.Footers
	for _, f := range pool {
		if want[f.Key] {
			out = append(out, f)
		}
	}
	return out
}
