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

package config

import (
	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/render"
)

// GrammarOptions translates c into grammar.Options, falling back to
// grammar.DefaultOptions for every field c leaves unset.
func (c Config) GrammarOptions() (grammar.Options, error) {
	opts := grammar.DefaultOptions()

	if len(c.Categories) > 0 {
		opts.Categories = grammar.NewCategorySet(c.Categories)
	}
	if len(c.CategoryDelimiters) == 2 {
		opts.CategoryOpen, opts.CategoryClose = c.CategoryDelimiters[0], c.CategoryDelimiters[1]
	}
	if c.TagDelimiter != "" {
		opts.TagDelimiter = c.TagDelimiter[0]
	}
	return opts.Compile()
}

// RenderConfig translates c into render.Config, overlaying only the fields
// .gitjournal.toml can set; cli flags such as -s/--short are applied by the
// caller on top of this result.
func (c Config) RenderConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.ColoredOutput = c.ColoredOutput
	cfg.ShowCommitHash = c.ShowCommitHash
	if c.SortBy != "" {
		cfg.SortBy = c.SortBy
	}
	if len(c.CategoryDelimiters) == 2 {
		cfg.CategoryOpen, cfg.CategoryClose = c.CategoryDelimiters[0], c.CategoryDelimiters[1]
	}
	if c.TagDelimiter != "" {
		cfg.TagDelimiter = c.TagDelimiter[0]
	}
	return cfg
}

// DocumentSortBy translates c.SortBy into document.SortBy, defaulting to
// SortByDate.
func (c Config) DocumentSortBy() document.SortBy {
	if c.SortBy == "name" {
		return document.SortByName
	}
	return document.SortByDate
}

// IgnoreTags parses c.ExcludedCommitTags into grammar.Tag, skipping any
// malformed entry rather than failing the whole config load (it already
// passed Validate by the time this is called).
func (c Config) IgnoreTags() []grammar.Tag {
	var out []grammar.Tag
	for _, raw := range c.ExcludedCommitTags {
		if tag, err := grammar.ParseTag(raw); err == nil {
			out = append(out, tag)
		}
	}
	return out
}
