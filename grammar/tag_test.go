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
	"reflect"
	"testing"
)

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("CORE-mod")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != "core-mod" {
		t.Errorf("got %q", tag)
	}

	if _, err := ParseTag(""); err == nil {
		t.Fatal("expected error for empty tag")
	}
	if _, err := ParseTag("has space"); err == nil {
		t.Fatal("expected error for tag with space")
	}
}

func TestExtractTags(t *testing.T) {
	tags, text := extractTags("fix the bug :core: in :auth: handling", ':')
	want := []Tag{"core", "auth"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("tags = %v, want %v", tags, want)
	}
	if text != "fix the bug in handling" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractTagsNone(t *testing.T) {
	tags, text := extractTags("no tags here", ':')
	if tags != nil {
		t.Errorf("tags = %v, want nil", tags)
	}
	if text != "no tags here" {
		t.Errorf("text = %q", text)
	}
}
