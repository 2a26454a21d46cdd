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

package history

import "regexp"

// DefaultExcludePattern is applied to tag names to decide whether a tag can
// anchor a section boundary; "rc" release candidates never get their own
// heading (spec §4.2, scenario 3).
const DefaultExcludePattern = "rc"

// WalkOptions configures the bucketing pass in Walk.
type WalkOptions struct {
	// TagsCount bounds how many tag anchors a single-revision walk may
	// cross before stopping. Ignored for an explicit A..B range and when
	// All is set.
	TagsCount int
	// All disables the TagsCount stop, consuming every commit the
	// Provider returned.
	All bool
	// SkipUnreleased drops the leading Unreleased bucket from the result.
	SkipUnreleased bool
	// Exclude matches tag names that must never anchor a section; such
	// tags' commits are folded into whatever section is still
	// accumulating (property P7). A nil Exclude matches nothing.
	Exclude *regexp.Regexp
	// SingleRevision mirrors RevisionRange.Single: only single-revision
	// walks honor TagsCount/All.
	SingleRevision bool
}

// Walk buckets commits (newest first, as returned by a Provider) into
// RawSections per spec §4.2: commits before the first tag (of any kind)
// form "Unreleased". From there, a tag anchor only names the section it
// opens; it does not close it. A section keeps accumulating every older
// commit, anchor or not, until the next anchor is found, at which point
// it is finally pushed under its name and the next section starts.
//
// A trailing bucket left open when commits run out without ever reaching
// a valid (non-excluded) anchor has no tag to be named after and is
// dropped rather than invented a name for.
func Walk(commits []RawCommit, opts WalkOptions) []RawSection {
	// A nil *regexp.Regexp stored in the matcher interface is not itself a
	// nil interface, so only a non-nil Exclude is handed to anchorTag.
	var exclude matcher
	if opts.Exclude != nil {
		exclude = opts.Exclude
	}

	i := 0
	for i < len(commits) && len(commits[i].Tags) == 0 {
		i++
	}

	var sections []RawSection
	if i > 0 {
		sections = append(sections, RawSection{
			Name:    UnreleasedName,
			Date:    commits[0].Time.Format("2006-01-02"),
			Commits: commits[:i],
		})
	}

	var pending []RawCommit
	var openName, openDate string
	open := false
	tagsSeen := 0

	flush := func() {
		if open {
			sections = append(sections, RawSection{Name: openName, Date: openDate, Commits: pending})
			pending = nil
		}
	}

	for _, c := range commits[i:] {
		if tag, ok := anchorTag(c, exclude); ok {
			if !opts.All && opts.SingleRevision && opts.TagsCount > 0 && tagsSeen >= opts.TagsCount {
				break
			}
			flush()
			openName = tag
			openDate = c.Time.Format("2006-01-02")
			open = true
			tagsSeen++
		}
		pending = append(pending, c)
	}
	flush()

	if opts.SkipUnreleased {
		sections = dropUnreleased(sections)
	}
	return sections
}

func dropUnreleased(sections []RawSection) []RawSection {
	out := make([]RawSection, 0, len(sections))
	for _, s := range sections {
		if s.Name == UnreleasedName {
			continue
		}
		out = append(out, s)
	}
	return out
}
