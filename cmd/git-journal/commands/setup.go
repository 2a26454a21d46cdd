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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	gjerrors "github.com/dirpx/gitjournal/internal/errors"
)

const hookShebang = "#!/bin/sh\n"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the prepare-commit-msg and commit-msg hooks into .git/hooks",
	Long: `setup writes two shell scripts into the enclosing repository's
.git/hooks directory: prepare-commit-msg calls "git-journal prepare", and
commit-msg calls "git-journal verify". Existing hooks not written by a
prior setup run are left untouched and setup refuses to overwrite them.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	hooksDir, err := gitHooksDir(rootFlags.path)
	if err != nil {
		return err
	}

	binary, err := os.Executable()
	if err != nil {
		return &gjerrors.IOError{Path: "self", Op: "locate binary", Err: err}
	}

	installs := []struct {
		name, body string
	}{
		{"prepare-commit-msg", fmt.Sprintf(hookShebang+"exec %q prepare \"$@\"\n", binary)},
		{"commit-msg", fmt.Sprintf(hookShebang+"exec %q verify \"$1\"\n", binary)},
	}

	for _, h := range installs {
		path := filepath.Join(hooksDir, h.name)
		if err := installHook(path, h.body); err != nil {
			return err
		}
		fmt.Printf("installed %s\n", path)
	}
	return nil
}

// installHook refuses to clobber a hook it didn't write itself: a git-journal
// hook script always starts with hookMarker on its second line.
const hookMarker = "# managed by git-journal setup\n"

func installHook(path, body string) error {
	if existing, err := os.ReadFile(path); err == nil {
		if len(existing) > 0 && !hasMarker(existing) {
			return &gjerrors.ConfigError{Reason: fmt.Sprintf("%s already exists and was not installed by git-journal setup", path)}
		}
	}

	content := hookShebang + hookMarker + body[len(hookShebang):]
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return &gjerrors.IOError{Path: path, Op: "write", Err: err}
	}
	return nil
}

func hasMarker(content []byte) bool {
	const marker = hookMarker
	if len(content) < len(hookShebang)+len(marker) {
		return false
	}
	return string(content[len(hookShebang):len(hookShebang)+len(marker)]) == marker
}

// gitHooksDir resolves <repo>/.git/hooks starting from dir, up-walking the
// same way config.Load does for .gitjournal.toml.
func gitHooksDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &gjerrors.IOError{Path: dir, Op: "resolve", Err: err}
	}

	for {
		gitDir := filepath.Join(abs, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			hooksDir := filepath.Join(gitDir, "hooks")
			if err := os.MkdirAll(hooksDir, 0o755); err != nil {
				return "", &gjerrors.IOError{Path: hooksDir, Op: "mkdir", Err: err}
			}
			return hooksDir, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", &gjerrors.ConfigError{Reason: "no .git directory found above " + dir}
		}
		abs = parent
	}
}
