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

var verifyCmd = &cobra.Command{
	Use:   "verify COMMIT_MSG",
	Short: "Verify a commit message file against the grammar and default template",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	v, err := newVerifier()
	if err != nil {
		return err
	}
	_, err = v.Verify(args[0])
	return err
}

// newVerifier builds a hooks.Verifier from the resolved configuration,
// loading the default template (if configured) so Verify can additionally
// check tags against it.
func newVerifier() (hooks.Verifier, error) {
	p, err := loadPipeline()
	if err != nil {
		return hooks.Verifier{}, err
	}
	tmpl, err := loadDefaultTemplate(p)
	if err != nil {
		return hooks.Verifier{}, err
	}
	return hooks.NewVerifier(p.opts, tmpl), nil
}
