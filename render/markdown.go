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

package render

import (
	"fmt"
	"strings"

	"github.com/dirpx/gitjournal/change"
	"github.com/dirpx/gitjournal/document"
	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/template"
)

// Default renders doc using the default (untemplated) Markdown shape: a
// heading per section, a flat bulleted list of each commit's summary (plus
// body items, unless cfg.Short), then every footer key present in the
// section.
func Default(doc document.Document, cfg Config) string {
	var b strings.Builder
	for _, sec := range doc.Sections {
		writeHeading(&b, sec.Name, sec.Date, sec.SuggestedVersion, cfg)

		for _, c := range sec.Commits {
			writeCommitBullet(&b, c, cfg, 0)
			if !cfg.Short {
				for _, item := range c.Body {
					writeItemBullet(&b, item, cfg, 1)
				}
			}
		}
		b.WriteString("\n")
		writeFooters(&b, sec.Footers, sec.Footers.Keys(), cfg)
	}
	return b.String()
}

// Templated renders one TemplatedSection per element of sections, in the
// shape described by spec §4.6: a section heading, optional header/footer
// prose, then a depth-first walk of the template tree emitting one
// "## <name>" (deeper for deeper nesting) block per non-empty node, and
// finally the section's untagged Default bucket.
func Templated(sections []template.TemplatedSection, tmpl *template.Template, cfg Config) string {
	var b strings.Builder
	headerPrinted := false
	footerPrinted := false

	for i, sec := range sections {
		if tmpl.Header != nil && (!tmpl.Header.Once || !headerPrinted) {
			b.WriteString(tmpl.Header.Text)
			b.WriteString("\n\n")
			headerPrinted = true
		}

		writeHeading(&b, sec.Name, sec.Date, sec.SuggestedVersion, cfg)
		for _, n := range sec.Root {
			writeProjectedNode(&b, n, cfg, 2)
		}
		if len(sec.Default) > 0 {
			b.WriteString(colorHeading(cfg, "## "+capitalize(template.DefaultNodeName)) + "\n")
			for _, item := range sec.Default {
				writeItemBullet(&b, item, cfg, 0)
			}
		}
		b.WriteString("\n")

		if tmpl.Footer != nil && (!tmpl.Footer.Once || !footerPrinted) {
			b.WriteString(tmpl.Footer.Text)
			b.WriteString("\n\n")
			footerPrinted = true
		}
		_ = i
	}
	return b.String()
}

func writeProjectedNode(b *strings.Builder, n *template.ProjectedNode, cfg Config, depth int) {
	if n.IsEmpty() {
		return
	}
	b.WriteString(colorHeading(cfg, strings.Repeat("#", depth)+" "+n.Node.Name) + "\n")
	if !cfg.Short {
		for _, item := range n.Items {
			writeItemBullet(b, item, cfg, 0)
		}
	}
	writeFooters(b, n.Footers, n.Node.Footers, cfg)
	for _, s := range n.Subtags {
		writeProjectedNode(b, s, cfg, depth+1)
	}
}

// writeHeading writes a section heading. When suggested is a non-zero
// version (only ever set on the Unreleased section; see
// document.BuildOptions), it takes the place of the date, per SPEC_FULL.md's
// Suggested Next Version supplement: "# Unreleased (suggests v1.4.0):".
func writeHeading(b *strings.Builder, name, date string, suggested change.Version, cfg Config) {
	if suggested != (change.Version{}) {
		b.WriteString(colorHeading(cfg, fmt.Sprintf("# %s (suggests v%s):", name, suggested)))
	} else {
		b.WriteString(colorHeading(cfg, fmt.Sprintf("# %s (%s):", name, date)))
	}
	b.WriteString("\n")
}

func writeCommitBullet(b *strings.Builder, c grammar.ParsedCommit, cfg Config, depth int) {
	writeBulletLine(b, c.Summary, cfg, depth)
	if cfg.ShowCommitHash {
		b.WriteString(" " + commitHashSuffix(c, cfg))
	}
	b.WriteString("\n")
}

func commitHashSuffix(c grammar.ParsedCommit, cfg Config) string {
	short := c.ShortOID(7)
	if cfg.RepoURL == "" {
		return "(" + short + ")"
	}
	return fmt.Sprintf("([%s](%s/commit/%s))", short, strings.TrimRight(cfg.RepoURL, "/"), c.OID)
}

func writeItemBullet(b *strings.Builder, item grammar.ParsedItem, cfg Config, depth int) {
	writeBulletLine(b, item, cfg, depth)
	b.WriteString("\n")
	for _, child := range item.Children {
		writeItemBullet(b, child, cfg, depth+1)
	}
}

func writeBulletLine(b *strings.Builder, item grammar.ParsedItem, cfg Config, depth int) {
	b.WriteString(strings.Repeat(" ", depth*4))
	b.WriteString("- ")
	if !item.Category.IsZero() {
		b.WriteString(colorCategory(cfg, item.Category.Wrap(cfg.CategoryOpen, cfg.CategoryClose)))
		b.WriteString(" ")
	}
	b.WriteString(item.Text)
}

func writeFooters(b *strings.Builder, footers grammar.Footers, keys []string, cfg Config) {
	for _, key := range keys {
		values := footers.Values(key)
		if len(values) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(colorFooterKey(cfg, key+":"))
		b.WriteString("\n")
		b.WriteString(strings.Join(values, ", "))
		b.WriteString("\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
