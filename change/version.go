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

// Package change computes the suggested next semantic version for a section
// of a changelog (SPEC_FULL.md's "Suggested Next Version" supplement): given
// a tag anchoring the previous release and the categories/footers observed
// since, it decides whether the next version should bump major, minor, or
// patch.
package change

import (
	"fmt"
	"strings"

	bsemver "github.com/blang/semver/v4"
	"github.com/dirpx/gitjournal/grammar"
)

// Version is a thin, JSON/YAML-friendly wrapper around a parsed SemVer 2.0.0
// version. Parsing is delegated to github.com/blang/semver/v4; String and
// Bump are implemented here, and Version has no comparison method.
type Version struct {
	Major, Minor, Patch int
	Prerelease          string
	Metadata            string
}

// ParseVersion parses a SemVer 2.0.0 string, tolerating an optional leading
// "v" (as git tags conventionally carry one).
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return fromBlang(bv), nil
}

func fromBlang(bv bsemver.Version) Version {
	var pre, meta string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		pre = strings.Join(parts, ".")
	}
	if len(bv.Build) > 0 {
		meta = strings.Join(bv.Build, ".")
	}
	return Version{Major: int(bv.Major), Minor: int(bv.Minor), Patch: int(bv.Patch), Prerelease: pre, Metadata: meta}
}

// String renders v per SemVer 2.0.0: "Major.Minor.Patch[-Prerelease][+Metadata]".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Bump returns the next version after applying b to v. BumpNone returns v
// unchanged; any other bump resets the components below it to zero and
// drops prerelease/metadata, per SemVer precedence rules.
func (v Version) Bump(b Bump) Version {
	switch b {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}

// Bump is the concrete version-component increment suggested for a section.
type Bump int

const (
	BumpNone Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	default:
		return "none"
	}
}

// maxBump returns the higher-precedence of two bumps (major > minor > patch > none).
func maxBump(a, b Bump) Bump {
	if a > b {
		return a
	}
	return b
}

// CategoryBumpMap configures which Bump a category implies, e.g. the
// default {"Added": BumpMinor, "Changed": BumpPatch, "Fixed": BumpPatch,
// "Improved": BumpPatch, "Removed": BumpMinor}.
type CategoryBumpMap map[string]Bump

// DefaultCategoryBumpMap returns the built-in mapping from the five default
// categories to their suggested bump.
func DefaultCategoryBumpMap() CategoryBumpMap {
	return CategoryBumpMap{
		"Added":    BumpMinor,
		"Changed":  BumpPatch,
		"Fixed":    BumpPatch,
		"Improved": BumpPatch,
		"Removed":  BumpMinor,
	}
}

// Suggest computes the Bump implied by a set of parsed commits: the highest
// precedence bump among their categories, escalated to BumpMajor if any
// commit carries a BREAKING CHANGE footer.
func Suggest(commits []grammar.ParsedCommit, bumps CategoryBumpMap) Bump {
	result := BumpNone
	for _, c := range commits {
		if c.Footers.HasBreaking() {
			return BumpMajor
		}
		if b, ok := bumps[c.Summary.Category.String()]; ok {
			result = maxBump(result, b)
		}
	}
	return result
}
