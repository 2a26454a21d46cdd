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

// Package hooks is the Verifier/Preparer (C7): it lets a prepare-commit-msg
// or commit-msg hook enforce the grammar on an arbitrary commit message
// file, and generate a default template for the editor to present.
package hooks

import (
	"os"
	"strings"
	"time"

	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/internal/errors"
	"github.com/dirpx/gitjournal/template"
)

// Verifier runs the grammar (and, if configured, a template tag check)
// against a commit message file.
type Verifier struct {
	Options grammar.Options
	// CommentChar mirrors git's core.commentchar (default '#'); lines
	// beginning with it are stripped before parsing, as git itself would
	// strip them from the final commit message.
	CommentChar byte
	// Template, if non-nil, makes Verify additionally check that every tag
	// on every parsed item is routable somewhere in the tree.
	Template *template.Template
}

// NewVerifier returns a Verifier with '#' as the comment character.
func NewVerifier(opts grammar.Options, tmpl *template.Template) Verifier {
	return Verifier{Options: opts, CommentChar: '#', Template: tmpl}
}

// Verify reads path, strips comment lines, and parses the remainder against
// v.Options. It returns a *errors.CommitParseError if the grammar itself
// rejects the message, or a *errors.TemplateError{Kind:"violation"} if
// v.Template is set and some tag used in the message routes nowhere.
func (v Verifier) Verify(path string) (grammar.ParsedCommit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.ParsedCommit{}, &errors.IOError{Path: path, Op: "read", Err: err}
	}

	msg := v.stripComments(string(data))

	commit, err := grammar.Parse("", time.Time{}, msg, v.Options)
	if err != nil {
		return grammar.ParsedCommit{}, err
	}

	if v.Template != nil {
		if bad := unknownTags(commit, v.Template); len(bad) > 0 {
			return commit, &errors.TemplateError{Kind: "violation", Tags: bad}
		}
	}
	return commit, nil
}

// stripComments removes any line beginning with v.CommentChar, the same way
// git strips the hint lines it writes into COMMIT_EDITMSG before applying
// the message (core.commentchar, default '#').
func (v Verifier) stripComments(msg string) string {
	ch := v.CommentChar
	if ch == 0 {
		ch = '#'
	}
	lines := strings.Split(msg, "\n")
	out := lines[:0]
	for _, line := range lines {
		if len(line) > 0 && line[0] == ch {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// unknownTags returns, in first-seen order, every tag used on commit that
// tmpl does not route anywhere.
func unknownTags(commit grammar.ParsedCommit, tmpl *template.Template) []string {
	seen := make(map[string]bool)
	var out []string
	check := func(item grammar.ParsedItem) {
		for _, tag := range item.Tags {
			if tmpl.HasTag(tag) || seen[tag.String()] {
				continue
			}
			seen[tag.String()] = true
			out = append(out, tag.String())
		}
	}
	commit.Summary.Walk(check)
	for _, item := range commit.Body {
		item.Walk(check)
	}
	return out
}
