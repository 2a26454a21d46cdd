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

package commands

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/config"
	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/gitrepo"
	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/history"
	gjerrors "github.com/dirpx/gitjournal/internal/errors"
	"github.com/dirpx/gitjournal/logging"
	"github.com/dirpx/gitjournal/orchestrate"
	"github.com/dirpx/gitjournal/template"
)

// splitPathSpec separates the positional args cobra hands RunE into the
// revision argument (before "--") and the trailing PATH_SPEC (after it),
// per spec §6's "PATH_SPEC (trailing after --)" flag row. Without a literal
// "--" on the command line, every positional arg is treated as (at most)
// the revision; ArgsLenAtDash returns -1 in that case.
func splitPathSpec(cmd *cobra.Command, args []string) (revArgs, pathSpec []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

// pipeline bundles everything runGenerate (and --generate) need after
// loading configuration and opening the repository: the compiled grammar
// options, the render config overlay, and the ignore-tag list, all derived
// from .gitjournal.toml plus the CLI flags layered on top of it.
type pipeline struct {
	cfg    config.Config
	opts   grammar.Options
	ignore []grammar.Tag
	repo   *gitrepo.Repository
}

// loadPipeline resolves .gitjournal.toml starting at rootFlags.path,
// compiles its grammar options, and opens the enclosing repository.
func loadPipeline() (*pipeline, error) {
	cfg, err := config.Load(rootFlags.path)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.GrammarOptions()
	if err != nil {
		return nil, err
	}
	repo, err := gitrepo.Open(rootFlags.path)
	if err != nil {
		return nil, err
	}

	ignore := cfg.IgnoreTags()
	for _, raw := range rootFlags.ignore {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if tag, err := grammar.ParseTag(raw); err == nil {
			ignore = append(ignore, tag)
		}
	}

	return &pipeline{cfg: cfg, opts: opts, ignore: ignore, repo: repo}, nil
}

// buildDocument runs the full C2->C3->C4 pipeline for rng, honoring
// rootFlags' -a/-n/-e/-u/PATH_SPEC.
func (p *pipeline) buildDocument(ctx context.Context, rng history.RevisionRange, pathSpec []string) (document.Document, error) {
	raw, err := p.repo.Commits(ctx, rng, pathSpec)
	if err != nil {
		return document.Document{}, err
	}

	excludeRE, err := regexp.Compile(rootFlags.exclude)
	if err != nil {
		return document.Document{}, &gjerrors.ConfigError{Reason: "invalid -e pattern: " + err.Error()}
	}

	sections := history.Walk(raw, history.WalkOptions{
		TagsCount:      rootFlags.tagsCount,
		All:            rootFlags.all,
		SkipUnreleased: rootFlags.skipUnreleased,
		Exclude:        excludeRE,
		SingleRevision: rng.Single,
	})

	log := logging.New(logging.Config{Debug: p.cfg.EnableDebug})
	parsed := orchestrate.Run(log, sections, p.opts)

	doc := document.Build(parsed, document.BuildOptions{
		SortBy:           p.cfg.DocumentSortBy(),
		Ignore:           p.ignore,
		Bumps:            change.DefaultCategoryBumpMap(),
		PreviousVersions: previousVersions(parsed),
	})
	return doc, nil
}

// previousVersions feeds the Suggested Next Version supplement: it maps
// the Unreleased section's name to the version parsed from the newest
// release tag immediately following it, when that tag name parses as
// SemVer. Every other section's suggested version stays at its zero value,
// matching SPEC_FULL.md's "for the Unreleased section only" scope.
func previousVersions(sections []document.Section) map[string]change.Version {
	if len(sections) < 2 || sections[0].Name != document.UnreleasedName {
		return nil
	}
	v, err := change.ParseVersion(sections[1].Name)
	if err != nil {
		return nil
	}
	return map[string]change.Version{document.UnreleasedName: v}
}

// loadDefaultTemplate loads p.cfg.DefaultTemplate, if configured, returning
// a nil *template.Template (not an error) when no default template is set:
// an unconfigured default template means verify only checks the grammar.
func loadDefaultTemplate(p *pipeline) (*template.Template, error) {
	if p.cfg.DefaultTemplate == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.cfg.DefaultTemplate)
	if err != nil {
		return nil, &gjerrors.IOError{Path: p.cfg.DefaultTemplate, Op: "read", Err: err}
	}
	return template.Load(data)
}

// writeOutput writes rendered to rootFlags.output in append mode with a
// "---" separator between invocations, or to stdout when no output path is
// configured (spec §6's -o/--output).
func writeOutput(rendered string) error {
	if rootFlags.output == "" {
		_, err := os.Stdout.WriteString(rendered)
		return err
	}

	f, err := os.OpenFile(rootFlags.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &gjerrors.IOError{Path: rootFlags.output, Op: "open", Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &gjerrors.IOError{Path: rootFlags.output, Op: "stat", Err: err}
	}

	payload := rendered
	if info.Size() > 0 {
		payload = "---\n" + payload
	}
	if _, err := f.WriteString(payload); err != nil {
		return &gjerrors.IOError{Path: rootFlags.output, Op: "write", Err: err}
	}
	return nil
}
