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

// Package gitrepo is the concrete git-plumbing collaborator spec §1 places
// out of core scope: it implements history.Provider on top of
// github.com/go-git/go-git/v5, the only place in this module that touches
// an actual repository on disk.
package gitrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	gjerrors "github.com/dirpx/gitjournal/internal/errors"
	"github.com/dirpx/gitjournal/history"
)

// Repository opens a working directory's enclosing git repository and
// implements history.Provider over it.
type Repository struct {
	repo *git.Repository
	path string
}

// Open walks up from path to find the repository root and opens it. path
// is typically the CLI's -p/--path working directory.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &gjerrors.ConfigError{Path: path, Reason: "not a git repository: " + err.Error()}
	}
	return &Repository{repo: repo, path: path}, nil
}

// errStopWalk is an internal sentinel used to halt a go-git log iterator
// once the exclusive lower bound of an A..B range is reached.
var errStopWalk = errors.New("gitrepo: stop walk")

// Commits implements history.Provider.
func (r *Repository) Commits(ctx context.Context, rng history.RevisionRange, pathSpec []string) ([]history.RawCommit, error) {
	toHash, err := r.resolve(rng.To)
	if err != nil {
		return nil, err
	}

	var fromHash plumbing.Hash
	if !rng.Single && rng.From != "" {
		fromHash, err = r.resolve(rng.From)
		if err != nil {
			return nil, err
		}
	}

	tagsByHash, err := r.tagsByCommit()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: toHash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, &gjerrors.ConfigError{Path: r.path, Reason: "walking history: " + err.Error()}
	}
	defer iter.Close()

	var out []history.RawCommit
	walkErr := iter.ForEach(func(c *object.Commit) error {
		if !fromHash.IsZero() && c.Hash == fromHash {
			return errStopWalk
		}
		if len(pathSpec) > 0 {
			touches, err := commitTouchesPaths(c, pathSpec)
			if err != nil {
				return err
			}
			if !touches {
				return nil
			}
		}
		summary, body := splitMessage(c.Message)
		out = append(out, history.RawCommit{
			OID:     c.Hash.String(),
			Time:    c.Author.When,
			Summary: summary,
			Body:    body,
			Tags:    tagsByHash[c.Hash],
		})
		return nil
	})
	if walkErr != nil && walkErr != errStopWalk {
		return nil, &gjerrors.ConfigError{Path: r.path, Reason: "walking history: " + walkErr.Error()}
	}
	return out, nil
}

// resolve turns a symbolic revision (branch, tag, HEAD, short/long hash)
// into a concrete commit hash.
func (r *Repository) resolve(rev string) (plumbing.Hash, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, &gjerrors.ConfigError{Path: r.path, Reason: fmt.Sprintf("cannot resolve revision %q: %v", rev, err)}
	}
	return *h, nil
}

// tagsByCommit maps a commit hash to every tag name pointing at it,
// resolving annotated tags to the commit they reference.
func (r *Repository) tagsByCommit() (map[plumbing.Hash][]string, error) {
	out := make(map[plumbing.Hash][]string)
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, &gjerrors.ConfigError{Path: r.path, Reason: "listing tags: " + err.Error()}
	}
	defer iter.Close()

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		hash := ref.Hash()
		if tag, tErr := r.repo.TagObject(hash); tErr == nil {
			hash = tag.Target
		}
		out[hash] = append(out[hash], name)
		return nil
	})
	if err != nil {
		return nil, &gjerrors.ConfigError{Path: r.path, Reason: "resolving tags: " + err.Error()}
	}
	return out, nil
}

// commitTouchesPaths reports whether c's tree differs from its first
// parent's tree at any of paths. Commits with zero or multiple parents
// (roots and merges) are always considered to touch every path, since a
// single unambiguous diff is not available.
func commitTouchesPaths(c *object.Commit, paths []string) (bool, error) {
	if c.NumParents() != 1 {
		return true, nil
	}
	parent, err := c.Parent(0)
	if err != nil {
		return false, err
	}
	curTree, err := c.Tree()
	if err != nil {
		return false, err
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return false, err
	}
	for _, p := range paths {
		curEntry, curErr := curTree.FindEntry(p)
		parentEntry, parentErr := parentTree.FindEntry(p)
		switch {
		case curErr == nil && parentErr == nil:
			if curEntry.Hash != parentEntry.Hash {
				return true, nil
			}
		case curErr == nil || parentErr == nil:
			return true, nil // added or removed under p
		}
	}
	return false, nil
}

// splitMessage separates a git commit message into its summary line and
// body, matching git's own convention of a blank line after the subject.
func splitMessage(msg string) (summary, body string) {
	for i := 0; i < len(msg); i++ {
		if msg[i] == '\n' {
			return msg[:i], trimLeadingNewlines(msg[i+1:])
		}
	}
	return msg, ""
}

func trimLeadingNewlines(s string) string {
	for len(s) > 0 && s[0] == '\n' {
		s = s[1:]
	}
	return s
}
