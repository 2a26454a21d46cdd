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

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle  = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd7ff")).Bold(true)
	footerKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#af87ff"))
)

// colorHeading, colorCategory, and colorFooterKey apply terminal styling
// when cfg.ColoredOutput is set, and pass text through unchanged otherwise
// (the renderer always writes plain Markdown-compatible text; color codes
// are ANSI escapes laid over it for terminal display only).
func colorHeading(cfg Config, s string) string {
	if !cfg.ColoredOutput {
		return s
	}
	return headingStyle.Render(s)
}

func colorCategory(cfg Config, s string) string {
	if !cfg.ColoredOutput {
		return s
	}
	return categoryStyle.Render(s)
}

func colorFooterKey(cfg Config, s string) string {
	if !cfg.ColoredOutput {
		return s
	}
	return footerKeyStyle.Render(s)
}
