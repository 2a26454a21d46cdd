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

// Package commands implements the git-journal CLI using cobra: one file per
// verb/subcommand, a persistent rootCmd carrying the default "generate
// changelog" behavior, and an Execute entry point called from main.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "git-journal [REV | REV..REV] [-- PATH_SPEC...]",
	Short:   "Generate a changelog from structured commit messages",
	Version: Version,
	Long: `git-journal parses structured commit messages following a
delimiter/category/tag grammar, walks a repository's history over a
revision range, and renders the result as Markdown — either in a default
shape or through a user-supplied template.`,
	RunE: runGenerate,
}

// flags holds every persistent flag from spec §6's CLI surface table.
type flags struct {
	path           string
	all            bool
	tagsCount      int
	exclude        string
	templatePath   string
	output         string
	short          bool
	skipUnreleased bool
	generate       bool
	ignore         []string
}

var rootFlags flags

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	f := rootCmd.PersistentFlags()
	f.StringVarP(&rootFlags.path, "path", "p", ".", "working directory; up-walks to the enclosing repository root")
	f.BoolVarP(&rootFlags.all, "all", "a", false, "do not stop at the first tag; overrides -n")
	f.IntVarP(&rootFlags.tagsCount, "tags-count", "n", 1, "stop after N tag anchors when a single revision is given")
	f.StringVarP(&rootFlags.exclude, "exclude", "e", "rc", "exclude tags matching this pattern from section boundaries")
	f.StringVarP(&rootFlags.templatePath, "template", "t", "", "use a template file for rendering")
	f.StringVarP(&rootFlags.output, "output", "o", "", "append rendered output to file, separated by ---")
	f.BoolVarP(&rootFlags.short, "short", "s", false, "short (summary-only) rendering")
	f.BoolVarP(&rootFlags.skipUnreleased, "skip-unreleased", "u", false, "drop the Unreleased section")
	f.BoolVarP(&rootFlags.generate, "generate", "g", false, "emit a fresh default template from the parsed range instead of a changelog")
	f.StringSliceVarP(&rootFlags.ignore, "ignore", "i", nil, "drop items whose tag set intersects this csv of tags")
}

// Execute runs the root command and maps any returned error to spec §7's
// fatal-error reporting contract: a "[git-journal] [ERROR]" prefix on
// stderr and a nonzero exit code. Per-commit parse errors never reach
// here — the orchestrator already logged and dropped them.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[git-journal] [ERROR] %v\n", err)
		os.Exit(1)
	}
}
