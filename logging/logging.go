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

// Package logging wraps zerolog for git-journal's diagnostic output: the
// per-commit INFO lines the parse orchestrator (C3) emits for a skipped
// commit, and nothing else. Fatal configuration/template/IO errors are
// never routed through here; the CLI layer writes those to stderr itself
// with the "[git-journal] [ERROR]" prefix spec §7 mandates.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config controls how New builds a zerolog.Logger.
type Config struct {
	// Debug enables debug-level output (the .gitjournal.toml
	// "enable_debug" key); otherwise only info and above are logged.
	Debug bool
	// JSON selects structured JSON output; otherwise a human-readable
	// console writer is used, matching what a terminal hook invocation
	// wants to see.
	JSON bool
	// Writer defaults to os.Stderr when nil.
	Writer io.Writer
}

// New builds a zerolog.Logger per cfg. Output always goes to stderr (or
// cfg.Writer) so a changelog written to stdout is never interleaved with
// diagnostics.
func New(cfg Config) zerolog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	var out io.Writer = w
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Discard returns a Logger that drops every event; used by callers (tests,
// library consumers) that do not want orchestrator diagnostics at all.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
