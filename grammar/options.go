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
	"regexp"

	"github.com/dirpx/gitjournal/internal/errors"
)

// Default line-length limits carried over from the conventional-commit
// grammar this project's grammar descends from: a defensive cap, not a
// style preference, so a pathological commit message cannot make the
// parser do unbounded work on a single line.
const (
	DefaultMaxSummaryLen = 120
	DefaultMaxBodyLineLen = 1000
	DefaultMaxBodyLines  = 2000
)

// Options configures the grammar parser: the delimiters a category and a
// tag are wrapped in, the optional issue-reference prefix pattern allowed
// before the category on a summary line, and the category vocabulary
// itself.
type Options struct {
	Categories CategorySet

	// CategoryOpen/CategoryClose bracket a category token, e.g. "[" and
	// "]" for "[Added]". Either may be empty to accept a bare token.
	CategoryOpen  string
	CategoryClose string

	// TagDelimiter wraps both sides of a tag token, e.g. ':' for ":auth:".
	TagDelimiter byte

	// PrefixPattern, if non-empty, is a regular expression matched at the
	// very start of the summary line; when it matches, the matched text
	// and any following whitespace are consumed before the category is
	// parsed (e.g. an issue key like "JIRA-1234"). The pattern is matched
	// anchored at position 0 but need not contain "^" itself.
	PrefixPattern string

	MaxSummaryLen  int
	MaxBodyLineLen int
	MaxBodyLines   int

	prefixRE *regexp.Regexp
}

// DefaultOptions returns grammar options matching spec §3's defaults: the
// five built-in categories, "[" "]" category delimiters, ':' tag
// delimiter, and no prefix pattern.
func DefaultOptions() Options {
	return Options{
		Categories:     NewCategorySet(DefaultCategories),
		CategoryOpen:   "[",
		CategoryClose:  "]",
		TagDelimiter:   ':',
		MaxSummaryLen:  DefaultMaxSummaryLen,
		MaxBodyLineLen: DefaultMaxBodyLineLen,
		MaxBodyLines:   DefaultMaxBodyLines,
	}
}

// Compile validates o and compiles its PrefixPattern, returning a copy
// ready to be passed to Parse. Callers should call Compile once after
// loading configuration and reuse the result across every commit.
func (o Options) Compile() (Options, error) {
	if len(o.Categories.order) == 0 {
		o.Categories = NewCategorySet(DefaultCategories)
	}
	if o.TagDelimiter == 0 {
		o.TagDelimiter = ':'
	}
	if o.MaxSummaryLen == 0 {
		o.MaxSummaryLen = DefaultMaxSummaryLen
	}
	if o.MaxBodyLineLen == 0 {
		o.MaxBodyLineLen = DefaultMaxBodyLineLen
	}
	if o.MaxBodyLines == 0 {
		o.MaxBodyLines = DefaultMaxBodyLines
	}
	if o.PrefixPattern != "" {
		re, err := regexp.Compile(`^(?:` + o.PrefixPattern + `)`)
		if err != nil {
			return o, &errors.ConfigError{Reason: "invalid prefix_pattern: " + err.Error()}
		}
		o.prefixRE = re
	}
	return o, nil
}
