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

// Package render is the Renderer (C6): a pure function from a
// document.Document (or a slice of template.TemplatedSection) plus a
// Config to Markdown bytes.
package render

// Config is the renderer's closed set of options (spec §4.6).
type Config struct {
	Short          bool
	ColoredOutput  bool
	ShowCommitHash bool
	// RepoURL, when non-empty, turns a commit hash link into
	// "([oid7](RepoURL/commit/oid))"; otherwise ShowCommitHash renders a
	// bare "(oid7)".
	RepoURL string

	CategoryOpen  string
	CategoryClose string
	TagDelimiter  byte

	// SortBy is carried for callers that want to log/display it; sorting
	// itself already happened in document.Build.
	SortBy string
}

// DefaultConfig returns the renderer defaults matching grammar.DefaultOptions.
func DefaultConfig() Config {
	return Config{
		CategoryOpen:  "[",
		CategoryClose: "]",
		TagDelimiter:  ':',
	}
}
