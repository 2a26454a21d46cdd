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
	"encoding/json"
	"sort"
	"strings"

	"github.com/dirpx/gitjournal/internal/errors"
	"gopkg.in/yaml.v3"
)

// Category is a verb-token describing what a change did ("Added", "Fixed",
// ...). Unlike a Go enum, the set of valid categories is not closed at
// compile time: a CategorySet loaded from configuration can extend the
// default five. Category always stores the canonical capitalization chosen
// by the CategorySet that produced it, so two Categories compare equal with
// plain string comparison once parsed through the same set.
type Category string

// DefaultCategories is the closed default set from spec §3: a category name
// in display (canonical) capitalization, matched case-insensitively.
var DefaultCategories = []string{"Added", "Changed", "Fixed", "Improved", "Removed"}

// CategorySet is an immutable, case-insensitive lookup from a configured
// category token to its canonical display form. Build one with
// NewCategorySet; the zero value is not usable.
type CategorySet struct {
	canonical map[string]string // casefolded token -> canonical form
	order     []string          // canonical forms, in configuration order
}

// NewCategorySet builds a CategorySet from an ordered list of canonical
// category names (typically DefaultCategories plus any configured
// extensions). Duplicate names (case-insensitively) are collapsed, keeping
// the first occurrence's capitalization.
func NewCategorySet(names []string) CategorySet {
	cs := CategorySet{canonical: make(map[string]string, len(names))}
	for _, n := range names {
		key := strings.ToLower(n)
		if _, ok := cs.canonical[key]; ok {
			continue
		}
		cs.canonical[key] = n
		cs.order = append(cs.order, n)
	}
	return cs
}

// Lookup resolves a bare category token (any delimiters already removed by
// the caller) to its canonical Category. Matching is ASCII
// case-insensitive. ok is false if token is not a configured category,
// including when it still carries its delimiters.
func (cs CategorySet) Lookup(token string) (Category, bool) {
	canon, ok := cs.canonical[strings.ToLower(token)]
	if !ok {
		return "", false
	}
	return Category(canon), true
}

// Names returns the canonical category names in configuration order.
func (cs CategorySet) Names() []string {
	out := make([]string, len(cs.order))
	copy(out, cs.order)
	return out
}

// Wrap renders c wrapped in the given open/close delimiter pair, e.g.
// Wrap("[", "]") on Category("Added") yields "[Added]".
func (c Category) Wrap(open, close string) string {
	return open + string(c) + close
}

// String returns the bare category token without delimiters.
func (c Category) String() string { return string(c) }

// Redacted is identical to String: categories are never sensitive.
func (c Category) Redacted() string { return string(c) }

// TypeName identifies this type for error messages and logging.
func (c Category) TypeName() string { return "Category" }

// IsZero reports whether c is the empty category (used by Paragraph items,
// which may carry no category at all).
func (c Category) IsZero() bool { return c == "" }

// Equal reports whether c and other name the same category, ASCII
// case-insensitively.
func (c Category) Equal(other Category) bool {
	return strings.EqualFold(string(c), string(other))
}

// Validate checks that c, if non-zero, looks like a category token: a
// run of ASCII letters. It does not check membership in any particular
// CategorySet since Category values are frequently validated before a set
// is available (e.g. during JSON decode); use CategorySet.Lookup for
// membership checks.
func (c Category) Validate() error {
	if c.IsZero() {
		return nil
	}
	for _, r := range string(c) {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return &errors.ValidationError{Type: "Category", Reason: "must contain only ASCII letters", Value: string(c)}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Category) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
	}
	*c = Category(s)
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler.
func (c Category) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return string(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Category", Reason: err.Error()}
	}
	*c = Category(s)
	return c.Validate()
}

// SortedNames returns cs's configured category names sorted lexically; used
// by the prepare hook to list the categories in its scaffolded message in a
// deterministic order.
func (cs CategorySet) SortedNames() []string {
	out := cs.Names()
	sort.Strings(out)
	return out
}
