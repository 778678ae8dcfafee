package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveymodel/pkg/wizard"
)

const demoYAML = `
title: Demo
completedHtml: <p>Thanks</p><script>alert(1)</script>
pages:
  - name: p1
    questions:
      - type: text
        name: q1
`

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, driver wizard.PromptDriver, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
		driver: driver,
	}
	env := filepath.Join(t.TempDir(), "missing.env")
	code := a.run(context.Background(), append([]string{"-env", env}, args...))
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestKinds(t *testing.T) {
	res := runCLI(t, "", nil, "kinds")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	for _, want := range []string{"text", "bootstrapslider", "paneldynamic"} {
		if !strings.Contains(res.stdout, want+" ") {
			t.Errorf("kinds output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.yaml", demoYAML)
	bad := writeFile(t, "bad.json", `{"pages":[{"questions":[{"type":"rating","rateMin":9,"rateMax":1}]}]}`)

	res := runCLI(t, "", nil, "validate", good)
	if res.code != 0 || !strings.Contains(res.stdout, "ok "+good) {
		t.Fatalf("exit %d, stdout %q, stderr %q", res.code, res.stdout, res.stderr)
	}

	res = runCLI(t, "", nil, "validate", good, bad)
	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	for _, want := range []string{"invalid " + bad, "title", "rate_min"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("output missing %q:\n%s", want, res.stdout)
		}
	}
	if lines := strings.Count(res.stdout, "\n  "); lines != 2 {
		t.Fatalf("expected two error lines, got %d:\n%s", lines, res.stdout)
	}
	if !strings.Contains(res.stderr, "1 of 2 surveys invalid") {
		t.Fatalf("unexpected stderr %q", res.stderr)
	}
}

func TestFormat(t *testing.T) {
	path := writeFile(t, "demo.yaml", demoYAML)
	res := runCLI(t, "", nil, "format", "-omit-defaults", "-sanitize", "-indent", "", path)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.stdout)
	}
	want := map[string]any{
		"title":         "Demo",
		"completedHtml": "<p>Thanks</p>",
		"pages": []any{map[string]any{
			"name":      "p1",
			"questions": []any{map[string]any{"type": "text", "name": "q1"}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if strings.Count(res.stdout, "\n") != 1 {
		t.Fatalf("expected compact output, got:\n%s", res.stdout)
	}
}

func TestFormatFromStdinToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	res := runCLI(t, `{"title":"Piped"}`, nil, "format", "-omit-defaults", "-o", out, "-")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if diff := cmp.Diff("{\n  \"title\": \"Piped\"\n}\n", string(data)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema(t *testing.T) {
	res := runCLI(t, "", nil, "schema")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	var doc struct {
		Ref  string                     `json:"$ref"`
		Defs map[string]json.RawMessage `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Ref != "#/$defs/Survey" || doc.Defs["Select2"] == nil {
		t.Fatalf("unexpected schema ref %q", doc.Ref)
	}

	res = runCLI(t, "", nil, "schema", "-format", "openapi")
	if res.code != 0 || !strings.Contains(res.stdout, `"openapi": "3.0.3"`) {
		t.Fatalf("exit %d, stdout prefix %.80q", res.code, res.stdout)
	}

	res = runCLI(t, "", nil, "schema", "-format", "xml")
	if res.code != 1 || !strings.Contains(res.stderr, "unknown schema format") {
		t.Fatalf("exit %d, stderr %q", res.code, res.stderr)
	}
}

type scriptedDriver struct {
	inputs  []string
	confirm []bool
}

func (s *scriptedDriver) Input(context.Context, wizard.InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func (s *scriptedDriver) Confirm(context.Context, wizard.ConfirmConfig) (bool, error) {
	if len(s.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	next := s.confirm[0]
	s.confirm = s.confirm[1:]
	return next, nil
}

func (s *scriptedDriver) Select(context.Context, wizard.SelectConfig) (int, error) {
	return 0, errors.New("no select scripted")
}

func (s *scriptedDriver) Info(context.Context, string) error { return nil }

func TestNew(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Empty survey", "welcome", "Welcome"},
		confirm: []bool{false, false},
	}
	res := runCLI(t, "", driver, "new")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	var got struct {
		Title string `json:"title"`
		Pages []struct {
			Name  string `json:"name"`
			Title string `json:"title"`
		} `json:"pages"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, res.stdout)
	}
	if got.Title != "Empty survey" || len(got.Pages) != 1 || got.Pages[0].Name != "welcome" {
		t.Fatalf("unexpected survey %+v", got)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"unknown"},
		{"format"},
		{"validate"},
	}
	for _, args := range cases {
		if res := runCLI(t, "", nil, args...); res.code != 2 {
			t.Errorf("%v: expected exit 2, got %d", args, res.code)
		}
	}
}
