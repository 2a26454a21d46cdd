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

import "context"

// Provider is the external collaborator boundary spec §1 calls out: it owns
// every bit of actual git plumbing (resolving revisions, walking the
// commit DAG, reading refs, filtering by path) and hands back commits
// already materialized in memory, newest first. Walk (in walk.go) performs
// all of the in-scope bucketing logic on top of whatever a Provider
// returns; gitrepo.Repository is the concrete implementation used by the
// CLI.
//
// For a single revision, Commits must return ancestors in reverse
// chronological (or reverse topological, if the underlying VCS prefers
// that for merge commits) order starting at rev, with no artificial limit:
// Walk itself enforces the tags-count stopping rule, so a Provider that
// truncates early would silently under-report tag boundaries.
type Provider interface {
	// Commits returns every commit in rng touching at least one of
	// pathSpec (or all commits, if pathSpec is empty), newest first.
	Commits(ctx context.Context, rng RevisionRange, pathSpec []string) ([]RawCommit, error)
}
