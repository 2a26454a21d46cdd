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

package hooks

import (
	"os"
	"strings"

	"github.com/dirpx/gitjournal/internal/errors"
)

// DefaultTemplatePrefix is prepare's default issue-key placeholder, per
// spec §6's template_prefix default.
const DefaultTemplatePrefix = "JIRA-1234"

// amendSourceTypes are the prepare-commit-msg "commit source" values that
// mean there is already a message worth keeping; prepare is a no-op for all
// of them (spec §4.7: "If type indicates an amend, prepare is a no-op").
var amendSourceTypes = map[string]bool{
	"commit": true,
	"squash": true,
	"merge":  true,
}

// Preparer writes a default template commit message, or (when the message
// was already supplied by the user) verifies it.
type Preparer struct {
	Verifier
	TemplatePrefix string
}

// NewPreparer returns a Preparer with the configured verifier and prefix;
// an empty prefix falls back to DefaultTemplatePrefix.
func NewPreparer(v Verifier, templatePrefix string) Preparer {
	if templatePrefix == "" {
		templatePrefix = DefaultTemplatePrefix
	}
	return Preparer{Verifier: v, TemplatePrefix: templatePrefix}
}

// Prepare implements prepare-commit-msg's contract (spec §4.7): for an
// amend-like source it does nothing; for "message" (the message already
// came from -m) it verifies the existing file; otherwise it overwrites path
// with a scaffolded default template.
func (p Preparer) Prepare(path, commitSourceType string) error {
	if amendSourceTypes[commitSourceType] {
		return nil
	}
	if commitSourceType == "message" {
		_, err := p.Verify(path)
		return err
	}

	if err := os.WriteFile(path, []byte(p.scaffold()), 0o644); err != nil {
		return &errors.IOError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// scaffold builds the commented default template: the prefix followed by
// an "Added ..." placeholder summary, a blank line, a commented description
// block, and a commented bullet listing each configured category.
func (p Preparer) scaffold() string {
	var b strings.Builder

	open, close := "[", "]"
	if p.Options.CategoryOpen != "" || p.Options.CategoryClose != "" {
		open, close = p.Options.CategoryOpen, p.Options.CategoryClose
	}

	b.WriteString(p.TemplatePrefix)
	b.WriteString(" ")
	b.WriteString(open)
	b.WriteString("Added")
	b.WriteString(close)
	b.WriteString(" ...\n\n")
	b.WriteString("# Describe the change above. Lines starting with '#' are stripped.\n")
	b.WriteString("#\n")
	b.WriteString("# Available categories:\n")
	for _, name := range p.Options.Categories.SortedNames() {
		b.WriteString("# - ")
		b.WriteString(open)
		b.WriteString(name)
		b.WriteString(close)
		b.WriteString(" ...\n")
	}
	return b.String()
}
