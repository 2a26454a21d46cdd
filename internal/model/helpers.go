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

package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateAll validates every model in models and returns a single combined
// error aggregating all failures (via go.uber.org/multierr), or nil if every
// model is valid. Each failure is annotated with the model's index and
// TypeName so callers can tell which element of the batch was invalid.
func ValidateAll[T Model](models []T) error {
	var err error
	for i, m := range models {
		if verr := m.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), verr))
		}
	}
	return err
}

// FilterZero returns a new slice containing only the non-zero models in
// models, preserving order.
func FilterZero[T ZeroCheckable](models []T) []T {
	out := make([]T, 0, len(models))
	for _, m := range models {
		if !m.IsZero() {
			out = append(out, m)
		}
	}
	return out
}
