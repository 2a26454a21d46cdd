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
	"strings"

	"github.com/dirpx/gitjournal/internal/errors"
)

// Tag is a lowercase identifier used to route a parsed item into the
// template engine's tree, e.g. the "auth" in ":auth:". Tags are always
// lowercase; ParseTag lowercases its input.
type Tag string

// isTagByte reports whether b may appear in the body of a tag token:
// lowercase letters, digits, underscore and hyphen (a token needs at least
// one such byte).
func isTagByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_' || b == '-'
}

// ParseTag validates and lowercases raw into a Tag.
func ParseTag(raw string) (Tag, error) {
	if raw == "" {
		return "", &errors.ParseError{Type: "Tag", Value: raw}
	}
	lower := strings.ToLower(raw)
	for i := 0; i < len(lower); i++ {
		if !isTagByte(lower[i]) {
			return "", &errors.ParseError{Type: "Tag", Value: raw}
		}
	}
	return Tag(lower), nil
}

// Wrap renders t wrapped in delim on both sides, e.g. Wrap(":") yields
// ":auth:".
func (t Tag) Wrap(delim string) string { return delim + string(t) + delim }

func (t Tag) String() string   { return string(t) }
func (t Tag) Redacted() string { return string(t) }
func (t Tag) TypeName() string { return "Tag" }
func (t Tag) IsZero() bool     { return t == "" }

func (t Tag) Equal(other Tag) bool { return t == other }

// Validate reports whether t is a well-formed, already-lowercased tag.
func (t Tag) Validate() error {
	if t.IsZero() {
		return &errors.ValidationError{Type: "Tag", Reason: "must not be empty"}
	}
	for i := 0; i < len(t); i++ {
		if !isTagByte(t[i]) {
			return &errors.ValidationError{Type: "Tag", Reason: "must be lowercase alphanumeric, '_' or '-'", Value: string(t)}
		}
	}
	return nil
}

// extractTags scans text for delim-wrapped tag tokens (e.g. ":auth:" for
// delim ":"), returning the tags found in first-seen order and text with
// every tag occurrence removed and whitespace collapsed.
func extractTags(text string, delim byte) ([]Tag, string) {
	var tags []Tag
	var out strings.Builder
	i := 0
	for i < len(text) {
		if text[i] == delim {
			j := i + 1
			for j < len(text) && isTagByte(text[j]) {
				j++
			}
			if j > i+1 && j < len(text) && text[j] == delim {
				tags = append(tags, Tag(text[i+1:j]))
				i = j + 1
				continue
			}
		}
		out.WriteByte(text[i])
		i++
	}
	return tags, collapseSpaces(out.String())
}

// collapseSpaces trims and collapses runs of whitespace to a single space,
// used after tag removal leaves gaps in the surrounding text.
func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
