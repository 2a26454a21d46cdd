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

// Package config loads .gitjournal.toml (spec §6): the file is searched for
// starting at a working directory and walking up through its parents, the
// same way git itself discovers .git. Unknown keys are a fatal ConfigError,
// not a warning.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dirpx/gitjournal/internal/errors"
)

// FileName is the configuration file git-journal looks for.
const FileName = ".gitjournal.toml"

// Config is the closed set of keys spec §6 allows in .gitjournal.toml.
type Config struct {
	Categories         []string `toml:"categories"`
	CategoryDelimiters []string `toml:"category_delimiters"`
	TagDelimiter       string   `toml:"tag_delimiter"`
	ColoredOutput      bool     `toml:"colored_output"`
	EnableDebug        bool     `toml:"enable_debug"`
	DefaultTemplate    string   `toml:"default_template"`
	ShowCommitHash     bool     `toml:"show_commit_hash"`
	SortBy             string   `toml:"sort_by"`
	ExcludedCommitTags []string `toml:"excluded_commit_tags"`
	TemplatePrefix     string   `toml:"template_prefix"`
	EnableFooters      bool     `toml:"enable_footers"`
}

// TypeName identifies this type for error messages and logging.
func (Config) TypeName() string { return "Config" }

// IsZero reports whether c is the unconfigured default (no file found).
func (c Config) IsZero() bool {
	return c.Categories == nil && c.TagDelimiter == "" && c.SortBy == "" &&
		c.DefaultTemplate == "" && c.TemplatePrefix == ""
}

// Validate checks the closed-set invariants Load cannot express through
// struct decoding alone: sort_by must be one of the two allowed values, and
// category_delimiters, if present, must be exactly an open/close pair.
func (c Config) Validate() error {
	if c.SortBy != "" && c.SortBy != "date" && c.SortBy != "name" {
		return &errors.ValidationError{Type: "Config", Field: "sort_by", Reason: `must be "date" or "name"`, Value: c.SortBy}
	}
	if len(c.CategoryDelimiters) != 0 && len(c.CategoryDelimiters) != 2 {
		return &errors.ValidationError{Type: "Config", Field: "category_delimiters", Reason: "must be exactly [open, close]", Value: c.CategoryDelimiters}
	}
	if len(c.TagDelimiter) > 1 {
		return &errors.ValidationError{Type: "Config", Field: "tag_delimiter", Reason: "must be a single character", Value: c.TagDelimiter}
	}
	return nil
}

// Load finds and strict-decodes .gitjournal.toml, walking from startDir up
// through its parents. It returns the zero Config, with no error, when no
// file is found anywhere in the tree: an absent config file is the normal
// "use every default" case, not a failure.
func Load(startDir string) (Config, error) {
	path, err := find(startDir)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return Config{}, nil
	}
	return loadFile(path)
}

// find walks from dir up to the filesystem root, returning the first
// .gitjournal.toml it encounters, or "" if none exists anywhere above dir.
func find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &errors.ConfigError{Reason: err.Error()}
	}
	for {
		candidate := filepath.Join(abs, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &errors.ConfigError{Path: path, Reason: err.Error()}
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Config
	if err := dec.Decode(&c); err != nil {
		return Config{}, &errors.ConfigError{Path: path, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return Config{}, &errors.ConfigError{Path: path, Reason: err.Error()}
	}
	return c, nil
}
