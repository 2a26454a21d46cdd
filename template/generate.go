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
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
)

// Generate builds a fresh, loadable Template from every tag observed on any
// item in doc, for the -g/--generate CLI flag (spec §6, §9 "resolved open
// questions" #2): one flat top-level node per distinct tag, named after the
// tag itself capitalized, in first-seen order across sections, plus an
// explicit "default" node so a message with no tag still routes somewhere
// and `verify` never reports a false TemplateViolation against a freshly
// generated template.
//
// A doc with zero tagged items still yields a Template whose only node is
// "default" — never one with an entirely empty tag list — so the result is
// always a valid, re-loadable template per Load's rules.
func Generate(doc document.Document) *Template {
	var order []grammar.Tag
	seen := make(map[grammar.Tag]bool)
	for _, sec := range doc.Sections {
		for _, item := range sec.Items() {
			item.Walk(func(it grammar.ParsedItem) {
				for _, tag := range it.Tags {
					if !seen[tag] {
						seen[tag] = true
						order = append(order, tag)
					}
				}
			})
		}
	}

	nodes := make([]*Node, 0, len(order)+1)
	for _, tag := range order {
		nodes = append(nodes, &Node{Tag: tag, Name: capitalizeName(tag.String())})
	}
	nodes = append(nodes, &Node{Tag: DefaultNodeName, Name: capitalizeName(DefaultNodeName)})

	t := &Template{Root: nodes}
	t.buildIndex()
	return t
}

// capitalizeName upper-cases the first rune of a tag id for display, e.g.
// "feature" -> "Feature".
func capitalizeName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Marshal renders t back into the toml shape Load accepts, for writing out
// a --generate result.
func (t *Template) Marshal() ([]byte, error) {
	root := tomlRoot{Tag: marshalNodes(t.Root)}
	if t.Header != nil {
		root.Header = &tomlHeaderFooter{Text: t.Header.Text, Once: t.Header.Once}
	}
	if t.Footer != nil {
		root.Footer = &tomlHeaderFooter{Text: t.Footer.Text, Once: t.Footer.Once}
	}
	return toml.Marshal(root)
}

func marshalNodes(nodes []*Node) []tomlNode {
	out := make([]tomlNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, tomlNode{
			Tag:     string(n.Tag),
			Name:    n.Name,
			Footers: n.Footers,
			Subtag:  marshalNodes(n.Subtags),
		})
	}
	return out
}
