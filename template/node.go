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

// Package template loads a tag/subtag tree from toml (C5) and re-projects
// a document.Section into that tree, so the renderer can emit one Markdown
// subsection per configured tag instead of the flat default shape.
package template

import "github.com/dirpx/gitjournal/grammar"

// DefaultNodeName is the implicit bucket every item with no matching tag
// (or, at the root, every unrouted item) is filed under.
const DefaultNodeName = "default"

// Node is one entry in the loaded template tree.
type Node struct {
	Tag     grammar.Tag
	Name    string
	Footers []string
	Subtags []*Node
}

// HeaderFooter is the optional root-level header/footer prose block.
type HeaderFooter struct {
	Text string
	Once bool
}

// Template is an immutable tag/subtag tree built once from toml, plus a
// precomputed tag-id -> matching-nodes index (spec §9's "precomputed map
// from tag-id to set of leaf nodes, routing items in O(tags-per-item)").
type Template struct {
	Root   []*Node
	Header *HeaderFooter
	Footer *HeaderFooter

	byTag map[grammar.Tag][]*Node
}

// nodesForTag returns every node registered under tag, or nil if none.
func (t *Template) nodesForTag(tag grammar.Tag) []*Node {
	return t.byTag[tag]
}

// buildIndex walks the full tree and populates byTag.
func (t *Template) buildIndex() {
	t.byTag = make(map[grammar.Tag][]*Node)
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			t.byTag[n.Tag] = append(t.byTag[n.Tag], n)
			walk(n.Subtags)
		}
	}
	walk(t.Root)
}

// HasTag reports whether tag is routable anywhere in the template, used by
// hooks.Verify to detect unknown tags (spec §4.7).
func (t *Template) HasTag(tag grammar.Tag) bool {
	_, ok := t.byTag[tag]
	return ok
}
