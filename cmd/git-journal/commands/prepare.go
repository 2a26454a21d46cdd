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
	"github.com/spf13/cobra"

	"github.com/dirpx/gitjournal/hooks"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare COMMIT_MSG [TYPE]",
	Short: "Scaffold or verify a commit message file before it reaches the editor",
	Long: `prepare implements the prepare-commit-msg hook contract (spec §4.7):
called with no TYPE (or an amend-like one) it is a no-op or scaffolds a
default template; called with TYPE "message" it verifies the message the
user already supplied via -m.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPrepare,
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	p, err := loadPipeline()
	if err != nil {
		return err
	}
	tmpl, err := loadDefaultTemplate(p)
	if err != nil {
		return err
	}

	sourceType := ""
	if len(args) > 1 {
		sourceType = args[1]
	}

	preparer := hooks.NewPreparer(hooks.NewVerifier(p.opts, tmpl), p.cfg.TemplatePrefix)
	return preparer.Prepare(args[0], sourceType)
}
