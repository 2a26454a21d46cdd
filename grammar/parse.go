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

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dirpx/gitjournal/internal/errors"
)

// buildCategoryRE builds the regexp that extracts, from the start of a line,
// a category token followed by required whitespace and the remainder of the
// line. The token may already be wrapped in the configured delimiters, or
// bare (spec §4.1): delimiters decorate the token, they never gate the
// match. Since the delimiters are configurable, the regexp is built from
// them on every call; Options.Compile does not precompile it.
func buildCategoryRE(open, close string) *regexp.Regexp {
	o := regexp.QuoteMeta(open)
	c := regexp.QuoteMeta(close)
	return regexp.MustCompile(`^(?:` + o + `([A-Za-z]+)` + c + `|([A-Za-z]+))\s+(.*)$`)
}

// matchCategory runs catRE against s and returns the matched category
// token (whichever of the wrapped/bare alternatives fired) along with the
// remainder of the line.
func matchCategory(catRE *regexp.Regexp, s string) (name, rest string, ok bool) {
	m := catRE.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	if m[1] != "" {
		return m[1], m[3], true
	}
	return m[2], m[3], true
}

// Parse parses a raw commit message (the full "<summary>\n\n<body>" text,
// as git reports it) into a ParsedCommit. oid and authored are supplied by
// the caller (the history walker) since they are not part of the message
// text itself.
//
// Parse returns a *errors.CommitParseError if the summary line or any body
// block fails to parse; per spec §7 this is never fatal and callers
// (the orchestrator) are expected to log and skip the commit.
func Parse(oid string, authored time.Time, message string, opts Options) (ParsedCommit, error) {
	message = strings.TrimRight(message, "\n")
	summaryLine, rest, _ := strings.Cut(message, "\n")

	summary, err := parseSummaryLine(summaryLine, opts)
	if err != nil {
		return ParsedCommit{}, &errors.CommitParseError{Kind: "summary", OID: oid, Reason: err.Error()}
	}

	body := strings.TrimLeft(rest, "\n")
	items, footers, err := parseBody(body, opts)
	if err != nil {
		return ParsedCommit{}, err
	}

	return ParsedCommit{
		OID:     oid,
		Time:    authored,
		Summary: summary,
		Body:    items,
		Footers: footers,
	}, nil
}

// parseSummaryLine implements spec §3's summary grammar:
//
//	summary := optional_prefix SP category SP rest
func parseSummaryLine(line string, opts Options) (ParsedItem, error) {
	if len(line) > opts.MaxSummaryLen {
		return ParsedItem{}, &errors.ValidationError{Type: "Summary", Reason: "exceeds max length " + strconv.Itoa(opts.MaxSummaryLen)}
	}
	line = strings.TrimSpace(line)

	if opts.prefixRE != nil {
		if loc := opts.prefixRE.FindStringIndex(line); loc != nil {
			line = strings.TrimLeft(line[loc[1]:], " \t")
		}
	}

	catRE := buildCategoryRE(opts.CategoryOpen, opts.CategoryClose)
	name, rest, ok := matchCategory(catRE, line)
	if !ok {
		return ParsedItem{}, &errors.ValidationError{Type: "Summary", Reason: "missing category", Value: line}
	}
	cat, ok := opts.Categories.Lookup(name)
	if !ok {
		return ParsedItem{}, &errors.ValidationError{Type: "Summary", Reason: "unknown category", Value: name}
	}
	tags, text := extractTags(rest, opts.TagDelimiter)
	if text == "" {
		return ParsedItem{}, &errors.ValidationError{Type: "Summary", Reason: "empty summary text"}
	}
	return ParsedItem{Kind: KindSummary, Category: cat, Tags: tags, Text: text}, nil
}

// parseBody implements spec §3's body grammar: blank-line-separated
// blocks, with the final block treated as a footers block if every one of
// its non-blank lines is a recognized "Key: Value" footer.
func parseBody(body string, opts Options) ([]ParsedItem, Footers, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil, nil
	}
	lines := strings.Split(body, "\n")
	if len(lines) > opts.MaxBodyLines {
		return nil, nil, &errors.CommitParseError{Kind: "body", Reason: "body exceeds max line count " + strconv.Itoa(opts.MaxBodyLines)}
	}
	for i, l := range lines {
		if len(l) > opts.MaxBodyLineLen {
			return nil, nil, &errors.CommitParseError{Kind: "body", Line: i + 1, Reason: "line exceeds max length " + strconv.Itoa(opts.MaxBodyLineLen)}
		}
	}

	blocks := splitBlocks(lines)
	if len(blocks) == 0 {
		return nil, nil, nil
	}

	var footers Footers
	last := blocks[len(blocks)-1]
	if isFooterBlock(last) {
		blocks = blocks[:len(blocks)-1]
		for _, l := range last {
			f, _ := parseFooterLine(strings.TrimSpace(l.text))
			footers = append(footers, f)
		}
	}

	var items []ParsedItem
	for _, block := range blocks {
		if len(block) == 0 {
			continue
		}
		var item ParsedItem
		var err error
		if strings.HasPrefix(block[0].text, "- ") {
			parsed, perr := parseListLines(block, 0, opts)
			if perr != nil {
				return nil, nil, perr
			}
			items = append(items, parsed...)
			continue
		}
		item, err = parseParagraphBlock(block, opts)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, footers, nil
}

// indentedLine is a body line paired with its leading-space count.
type indentedLine struct {
	indent int
	text   string // with leading indent stripped
}

// splitBlocks groups raw lines into blank-line-delimited blocks, recording
// each surviving line's indentation.
func splitBlocks(lines []string) [][]indentedLine {
	var blocks [][]indentedLine
	var cur []indentedLine
	for _, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		cur = append(cur, indentedLine{indent: indent, text: raw[indent:]})
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// isFooterBlock reports whether every line in block parses as a footer.
func isFooterBlock(block []indentedLine) bool {
	for _, l := range block {
		if _, ok := parseFooterLine(strings.TrimSpace(l.text)); !ok {
			return false
		}
	}
	return true
}

// parseParagraphBlock parses a non-bulleted block into a single paragraph
// item: an optional leading category, tags anywhere, text joined with
// single spaces.
func parseParagraphBlock(block []indentedLine, opts Options) (ParsedItem, error) {
	joined := make([]string, len(block))
	for i, l := range block {
		joined[i] = l.text
	}
	text := strings.Join(joined, " ")

	var cat Category
	catRE := buildCategoryRE(opts.CategoryOpen, opts.CategoryClose)
	if name, rest, ok := matchCategory(catRE, text); ok {
		if c, ok := opts.Categories.Lookup(name); ok {
			cat = c
			text = rest
		}
	}
	tags, clean := extractTags(text, opts.TagDelimiter)
	if clean == "" {
		return ParsedItem{}, &errors.CommitParseError{Kind: "body", Reason: "empty paragraph"}
	}
	return ParsedItem{Kind: KindParagraph, Category: cat, Tags: tags, Text: clean}, nil
}

// parseListLines recursively parses a run of indented list lines into a
// slice of (possibly nested) ParsedItem list items. baseIndent is the
// indentation every top-level bullet in lines is expected to share; a
// bullet at baseIndent+2 opens a nested Children list.
func parseListLines(lines []indentedLine, baseIndent int, opts Options) ([]ParsedItem, error) {
	var items []ParsedItem
	catRE := buildCategoryRE(opts.CategoryOpen, opts.CategoryClose)

	i := 0
	for i < len(lines) {
		line := lines[i]
		if line.indent != baseIndent || !strings.HasPrefix(line.text, "- ") {
			return nil, &errors.CommitParseError{Kind: "body", Reason: "malformed list item: " + line.text}
		}
		content := strings.TrimPrefix(line.text, "- ")
		i++

		var continuation []string
		var childRun []indentedLine
		collectingChildren := false
		for i < len(lines) && lines[i].indent > baseIndent {
			l := lines[i]
			if !collectingChildren && l.indent == baseIndent+2 && strings.HasPrefix(l.text, "- ") {
				collectingChildren = true
			}
			if collectingChildren {
				childRun = append(childRun, l)
			} else {
				continuation = append(continuation, l.text)
			}
			i++
		}

		if len(continuation) > 0 {
			content = strings.Join(append([]string{content}, continuation...), " ")
		}

		var cat Category
		name, rest, ok := matchCategory(catRE, content)
		if !ok {
			return nil, &errors.CommitParseError{Kind: "body", Reason: "list item missing category: " + content}
		}
		c, ok := opts.Categories.Lookup(name)
		if !ok {
			return nil, &errors.CommitParseError{Kind: "body", Reason: "list item has unknown category: " + name}
		}
		cat = c
		tags, text := extractTags(rest, opts.TagDelimiter)
		if text == "" {
			return nil, &errors.CommitParseError{Kind: "body", Reason: "empty list item text"}
		}

		var children []ParsedItem
		if len(childRun) > 0 {
			var err error
			children, err = parseListLines(childRun, baseIndent+2, opts)
			if err != nil {
				return nil, err
			}
		}

		items = append(items, ParsedItem{Kind: KindListItem, Category: cat, Tags: tags, Text: text, Children: children})
	}
	return items, nil
}
