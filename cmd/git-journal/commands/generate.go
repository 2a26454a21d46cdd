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

	"github.com/spf13/cobra"

	"github.com/dirpx/gitjournal/history"
	gjerrors "github.com/dirpx/gitjournal/internal/errors"
	"github.com/dirpx/gitjournal/render"
	"github.com/dirpx/gitjournal/template"
)

// runGenerate is rootCmd's default behavior: build the Document for the
// requested revision range and render it, either in the default shape, a
// user-supplied template's shape, or (with -g) emit a fresh template
// instead of a changelog.
func runGenerate(cmd *cobra.Command, args []string) error {
	revArgs, pathSpec := splitPathSpec(cmd, args)

	revArg := ""
	if len(revArgs) > 0 {
		revArg = revArgs[0]
	}
	rng, err := history.ParseRevisionRange(revArg)
	if err != nil {
		return err
	}

	p, err := loadPipeline()
	if err != nil {
		return err
	}

	doc, err := p.buildDocument(context.Background(), rng, pathSpec)
	if err != nil {
		return err
	}

	if rootFlags.generate {
		data, err := template.Generate(doc).Marshal()
		if err != nil {
			return err
		}
		return writeOutput(string(data))
	}

	cfg := p.cfg.RenderConfig()
	cfg.Short = rootFlags.short

	if rootFlags.templatePath == "" {
		return writeOutput(render.Default(doc, cfg))
	}

	data, err := os.ReadFile(rootFlags.templatePath)
	if err != nil {
		return &gjerrors.IOError{Path: rootFlags.templatePath, Op: "read", Err: err}
	}
	tmpl, err := template.Load(data)
	if err != nil {
		return err
	}

	sections := make([]template.TemplatedSection, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		sections = append(sections, template.Project(sec, tmpl))
	}
	return writeOutput(render.Templated(sections, tmpl, cfg))
}
