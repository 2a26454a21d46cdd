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

package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dirpx/gitjournal/grammar"
	"github.com/dirpx/gitjournal/internal/errors"
	"github.com/dirpx/gitjournal/template"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestVerifyStripsCommentsAndParses(t *testing.T) {
	path := writeTemp(t, "[Added] login page\n# this is a hint\n\n# more hints\n")
	v := NewVerifier(grammar.DefaultOptions(), nil)

	commit, err := v.Verify(path)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if commit.Summary.Text != "login page" {
		t.Errorf("Summary.Text = %q, want %q", commit.Summary.Text, "login page")
	}
}

func TestVerifyRejectsMalformedSummary(t *testing.T) {
	path := writeTemp(t, "not a valid summary line\n")
	v := NewVerifier(grammar.DefaultOptions(), nil)

	if _, err := v.Verify(path); err == nil {
		t.Fatal("expected parse error for malformed summary")
	}
}

// TestVerifyUnknownTagFails mirrors spec scenario 6: a template lacking
// "tag1" makes a message using :tag1: fail verification.
func TestVerifyUnknownTagFails(t *testing.T) {
	tmpl, err := template.Load([]byte(`
[[tag]]
tag = "tag2"
name = "Tag2"
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := writeTemp(t, "[Added] foo\n\n- [Added] foo :tag1:\n")
	v := NewVerifier(grammar.DefaultOptions(), tmpl)

	_, err = v.Verify(path)
	if err == nil {
		t.Fatal("expected TemplateError for unknown tag")
	}
	var terr *errors.TemplateError
	if !asTemplateError(err, &terr) {
		t.Fatalf("expected *errors.TemplateError, got %T: %v", err, err)
	}
	if terr.Kind != "violation" {
		t.Errorf("Kind = %q, want violation", terr.Kind)
	}
	if !strings.Contains(strings.Join(terr.Tags, ","), "tag1") {
		t.Errorf("Tags = %v, want to include tag1", terr.Tags)
	}
	if !strings.Contains(err.Error(), "tag1") {
		t.Errorf("error message %q does not mention tag1", err.Error())
	}
}

func asTemplateError(err error, out **errors.TemplateError) bool {
	te, ok := err.(*errors.TemplateError)
	if !ok {
		return false
	}
	*out = te
	return true
}

func TestPrepareScaffoldsDefaultTemplate(t *testing.T) {
	path := writeTemp(t, "")
	v := NewVerifier(grammar.DefaultOptions(), nil)
	p := NewPreparer(v, "")

	if err := p.Prepare(path, ""); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, DefaultTemplatePrefix+" [Added] ...") {
		t.Errorf("expected scaffold to start with prefix, got:\n%s", out)
	}
	if !strings.Contains(out, "# - [Removed] ...") {
		t.Errorf("expected a commented category hint, got:\n%s", out)
	}
}

func TestPrepareIsNoopOnAmend(t *testing.T) {
	path := writeTemp(t, "original message\n")
	v := NewVerifier(grammar.DefaultOptions(), nil)
	p := NewPreparer(v, "")

	if err := p.Prepare(path, "commit"); err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "original message\n" {
		t.Errorf("expected message untouched, got:\n%s", data)
	}
}

func TestPrepareMessageTypeVerifiesExisting(t *testing.T) {
	path := writeTemp(t, "not a valid summary\n")
	v := NewVerifier(grammar.DefaultOptions(), nil)
	p := NewPreparer(v, "")

	if err := p.Prepare(path, "message"); err == nil {
		t.Fatal("expected verification failure to propagate")
	}
}
