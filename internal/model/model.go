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

// Package model defines the contracts that git-journal's domain types
// implement: validation, JSON/YAML round-tripping, safe-vs-full logging,
// type identification, and zero-value detection. grammar.Category satisfies
// the full Model; the other domain types (Tag, ParsedCommit, Section,
// Document, ...) implement only the individual contracts they need, such as
// Identifiable, ZeroCheckable or Validatable, which is what the generic
// helpers in helpers.go operate over.
//
// Most git-journal domain types are immutable value types built once per
// run (see spec §5, "Lifecycle"); concurrent reads are safe, concurrent
// writes are not supported and are not needed.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining every fundamental contract a
// git-journal domain type must satisfy.
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable checks that a value satisfies its own invariants.
type Validatable interface {
	// Validate returns nil if the instance is valid, or a descriptive error
	// naming which invariant failed. It must not mutate the receiver.
	Validate() error
}

// Serializable provides JSON and YAML round-tripping. Implementations
// should validate before marshaling and after unmarshaling, as
// grammar.Category's Marshal/Unmarshal methods do.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable provides both a safe (Redacted) and full (String) textual
// representation. Most git-journal domain types carry nothing sensitive
// (commit subjects and tag names are not secrets), so Redacted and String
// are often identical; the distinction exists for types that wrap
// repository paths or footer values that could carry operator-supplied
// free text.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable reports a constant, package-free type name for logs and
// error messages.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable reports whether a value is in its empty, uninitialized
// state.
type ZeroCheckable interface {
	IsZero() bool
}

// Comparable is satisfied by value types that support deep equality
// comparison; useful in tests and de-duplication logic.
type Comparable[T any] interface {
	Equal(other T) bool
}
