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

package grammar

import "strings"

// RenderMessage renders c back into raw commit-message text under opts. It
// is the inverse of Parse: RenderMessage(c) fed back through Parse yields
// an equal ParsedCommit (property P1, "parse-render round-trip"), modulo
// whitespace this grammar does not consider significant.
func RenderMessage(c ParsedCommit, opts Options) string {
	var b strings.Builder
	b.WriteString(renderSummaryText(c.Summary, opts))

	if len(c.Body) > 0 || len(c.Footers) > 0 {
		b.WriteString("\n\n")
	}
	for i, item := range c.Body {
		if i > 0 {
			b.WriteString("\n\n")
		}
		renderItem(&b, item, 0, opts)
	}
	if len(c.Footers) > 0 {
		if len(c.Body) > 0 {
			b.WriteString("\n\n")
		}
		for i, f := range c.Footers {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(f.Key)
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
	}
	return b.String()
}

func renderSummaryText(item ParsedItem, opts Options) string {
	var b strings.Builder
	b.WriteString(item.Category.Wrap(opts.CategoryOpen, opts.CategoryClose))
	b.WriteByte(' ')
	b.WriteString(renderTextWithTags(item.Text, item.Tags, opts.TagDelimiter))
	return b.String()
}

func renderItem(b *strings.Builder, item ParsedItem, indent int, opts Options) {
	pad := strings.Repeat(" ", indent)
	switch item.Kind {
	case KindParagraph:
		b.WriteString(pad)
		if !item.Category.IsZero() {
			b.WriteString(item.Category.Wrap(opts.CategoryOpen, opts.CategoryClose))
			b.WriteByte(' ')
		}
		b.WriteString(renderTextWithTags(item.Text, item.Tags, opts.TagDelimiter))
	case KindListItem:
		b.WriteString(pad)
		b.WriteString("- ")
		b.WriteString(item.Category.Wrap(opts.CategoryOpen, opts.CategoryClose))
		b.WriteByte(' ')
		b.WriteString(renderTextWithTags(item.Text, item.Tags, opts.TagDelimiter))
		for _, child := range item.Children {
			b.WriteByte('\n')
			renderItem(b, child, indent+2, opts)
		}
	}
}

func renderTextWithTags(text string, tags []Tag, delim byte) string {
	if len(tags) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	for _, t := range tags {
		b.WriteByte(' ')
		b.WriteString(t.Wrap(string(delim)))
	}
	return b.String()
}
