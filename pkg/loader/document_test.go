package loader_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveymodel/pkg/loader"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		location string
		raw      string
		want     loader.Format
	}{
		{"survey.yaml", `{"title": "x"}`, loader.FormatYAML},
		{"survey.YML", "title: x", loader.FormatYAML},
		{"survey.json", "title: x", loader.FormatJSON},
		{"https://example.com/survey", `  {"title": "x"}`, loader.FormatJSON},
		{"", "title: x", loader.FormatYAML},
	}
	for _, tt := range tests {
		if got := loader.DetectFormat(tt.location, []byte(tt.raw)); got != tt.want {
			t.Fatalf("%q: expected %s, got %s", tt.location, tt.want, got)
		}
	}
}

func TestToJSONPreservesYAMLOrder(t *testing.T) {
	raw := []byte(`
zeta: 1
alpha:
  - 2.5
  - null
  - yes
nested:
  b: x
  a: &anchor {k: v}
copy: *anchor
`)
	got, err := loader.ToJSON(raw, loader.FormatYAML)
	if err != nil {
		t.Fatalf("to json: %v", err)
	}
	want := `{"zeta":1,"alpha":[2.5,null,"yes"],"nested":{"b":"x","a":{"k":"v"}},"copy":{"k":"v"}}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsEmptyAndInvalid(t *testing.T) {
	if _, err := loader.Decode(nil, []byte(" \n"), loader.FormatJSON); err == nil {
		t.Fatalf("expected empty payload to fail")
	}
	if _, err := loader.Decode(nil, []byte(`{"a":`), loader.FormatJSON); err == nil {
		t.Fatalf("expected invalid json to fail")
	}
	if _, err := loader.Decode(nil, []byte("a: [1"), loader.FormatYAML); err == nil {
		t.Fatalf("expected invalid yaml to fail")
	}
	if _, err := loader.Decode(nil, []byte("{}"), loader.Format("toml")); err == nil {
		t.Fatalf("expected unsupported format to fail")
	}
}

func TestParseSource(t *testing.T) {
	src, err := loader.ParseSource("https://example.com/survey.json")
	if err != nil || src.Kind() != loader.SourceKindURL {
		t.Fatalf("expected url source, got %v (%v)", src, err)
	}
	src, err = loader.ParseSource("./surveys/../demo.json")
	if err != nil || src.Kind() != loader.SourceKindFile || src.Location() != "demo.json" {
		t.Fatalf("expected cleaned file source, got %v (%v)", src, err)
	}
	if _, err := loader.ParseSource("  "); err == nil {
		t.Fatalf("expected empty source to fail")
	}

	doc, err := loader.NewDocument(loader.SourceFromMemory("inline.yaml"), []byte("title: Demo"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	if doc.Format() != loader.FormatYAML || string(doc.JSON()) != `{"title":"Demo"}` {
		t.Fatalf("unexpected document %s %s", doc.Format(), doc.JSON())
	}
	if _, err := loader.NewDocument(nil, []byte("{}")); err == nil || errors.Unwrap(err) != nil {
		t.Fatalf("expected plain source error, got %v", err)
	}
}
