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
	"github.com/pelletier/go-toml/v2"

	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/internal/errors"
)

type tomlNode struct {
	Tag     string     `toml:"tag"`
	Name    string     `toml:"name"`
	Footers []string   `toml:"footers"`
	Subtag  []tomlNode `toml:"subtag"`
}

type tomlHeaderFooter struct {
	Text string `toml:"text"`
	Once bool   `toml:"once"`
}

type tomlRoot struct {
	Tag    []tomlNode        `toml:"tag"`
	Header *tomlHeaderFooter `toml:"header"`
	Footer *tomlHeaderFooter `toml:"footer"`
}

// Load parses a template toml document per spec §4.5, rejecting a
// duplicate tag id at any one level or a tag token that is not a valid
// grammar.Tag.
func Load(data []byte) (*Template, error) {
	var root tomlRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, &errors.TemplateError{Kind: "load", Reason: err.Error()}
	}

	nodes, err := buildNodes(root.Tag)
	if err != nil {
		return nil, err
	}

	t := &Template{Root: nodes}
	if root.Header != nil {
		t.Header = &HeaderFooter{Text: root.Header.Text, Once: root.Header.Once}
	}
	if root.Footer != nil {
		t.Footer = &HeaderFooter{Text: root.Footer.Text, Once: root.Footer.Once}
	}
	t.buildIndex()
	return t, nil
}

func buildNodes(in []tomlNode) ([]*Node, error) {
	seen := make(map[string]bool, len(in))
	out := make([]*Node, 0, len(in))
	for _, n := range in {
		if seen[n.Tag] {
			return nil, &errors.TemplateError{Kind: "load", Reason: "duplicate tag id: " + n.Tag}
		}
		seen[n.Tag] = true

		tag, err := grammar.ParseTag(n.Tag)
		if err != nil {
			return nil, &errors.TemplateError{Kind: "load", Reason: "invalid tag token: " + n.Tag}
		}
		subtags, err := buildNodes(n.Subtag)
		if err != nil {
			return nil, err
		}
		out = append(out, &Node{Tag: tag, Name: n.Name, Footers: n.Footers, Subtags: subtags})
	}
	return out, nil
}
