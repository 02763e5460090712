package driver

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calls"+SessionFileSuffix)
	writeFile(t, path, `
steps:
  - "int a = 5;"
  - input: "a + 1"
    expect:
      value: "6"
      type: int
  - input: "foo(1)"
    expect:
      error: UnknownMethod
  - input: "a = 2;"
    expect:
      void: false
`)

	session, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if session.Name != "calls" {
		t.Fatalf("Name = %q", session.Name)
	}
	if len(session.Steps) != 4 {
		t.Fatalf("steps = %d", len(session.Steps))
	}
	first := session.Steps[0]
	if first.Input != "int a = 5;" || first.Expect != nil {
		t.Fatalf("shorthand step = %#v", first)
	}
	second := session.Steps[1]
	if second.Expect == nil || second.Expect.Value == nil || *second.Expect.Value != "6" || second.Expect.Type != "int" {
		t.Fatalf("second step expect = %#v", second.Expect)
	}
	if second.Line != 3 {
		t.Fatalf("second step line = %d, want 3", second.Line)
	}
	if session.Steps[2].Expect.Error != "UnknownMethod" {
		t.Fatalf("third step expect = %#v", session.Steps[2].Expect)
	}
}

func TestLoadSessionRejectsUnknownStepKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad"+SessionFileSuffix)
	writeFile(t, path, `
steps:
  - input: "1"
    expect:
      valeu: "1"
`)
	if _, err := LoadSession(path); err == nil || !strings.Contains(err.Error(), "valeu") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
}

func TestLoadSessionValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid"+SessionFileSuffix)
	writeFile(t, path, `
name: invalid
steps:
  - input: ""
  - input: "1"
    expect:
      value: "1"
      error: TypeMismatch
`)
	_, err := LoadSession(path)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Issues) != 2 {
		t.Fatalf("issues = %#v", validation.Issues)
	}
}

func TestLoadSessionEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty"+SessionFileSuffix)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSession(path); err == nil {
		t.Fatalf("expected error for empty session")
	}
}

func TestDiscoverSessions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b"+SessionFileSuffix), `steps: ["1"]`)
	writeFile(t, filepath.Join(root, "nested", "a"+SessionFileSuffix), `steps: ["1"]`)
	writeFile(t, filepath.Join(root, ".hidden", "c"+SessionFileSuffix), `steps: ["1"]`)
	writeFile(t, filepath.Join(root, "notes.yml"), `steps: ["1"]`)

	got, err := DiscoverSessions([]string{root, filepath.Join(root, "b"+SessionFileSuffix)})
	if err != nil {
		t.Fatalf("DiscoverSessions: %v", err)
	}
	want := []string{
		filepath.Join(root, "b"+SessionFileSuffix),
		filepath.Join(root, "nested", "a"+SessionFileSuffix),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DiscoverSessions = %#v, want %#v", got, want)
	}
}

func TestDiscoverSessionsMissingPath(t *testing.T) {
	if _, err := DiscoverSessions([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
