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

package change

import (
	"testing"

	"github.com/dirpx/gitjournal/grammar"
)

func TestParseVersionAndBump(t *testing.T) {
	v, err := ParseVersion("v1.2.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Fatalf("got %q", v.String())
	}

	if got := v.Bump(BumpMinor).String(); got != "1.3.0" {
		t.Errorf("BumpMinor = %q", got)
	}
	if got := v.Bump(BumpMajor).String(); got != "2.0.0" {
		t.Errorf("BumpMajor = %q", got)
	}
	if got := v.Bump(BumpPatch).String(); got != "1.2.4" {
		t.Errorf("BumpPatch = %q", got)
	}
	if got := v.Bump(BumpNone).String(); got != "1.2.3" {
		t.Errorf("BumpNone = %q", got)
	}
}

func TestSuggest(t *testing.T) {
	bumps := DefaultCategoryBumpMap()

	commits := []grammar.ParsedCommit{
		{Summary: grammar.ParsedItem{Category: "Fixed"}},
		{Summary: grammar.ParsedItem{Category: "Added"}},
	}
	if got := Suggest(commits, bumps); got != BumpMinor {
		t.Errorf("got %v, want BumpMinor", got)
	}

	breaking := append(commits, grammar.ParsedCommit{
		Summary: grammar.ParsedItem{Category: "Changed"},
		Footers: grammar.Footers{{Key: "BREAKING CHANGE", Value: "removed old API"}},
	})
	if got := Suggest(breaking, bumps); got != BumpMajor {
		t.Errorf("got %v, want BumpMajor", got)
	}

	if got := Suggest(nil, bumps); got != BumpNone {
		t.Errorf("got %v, want BumpNone", got)
	}
}
