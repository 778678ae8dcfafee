package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// MustLoadSurvey parses a survey fixture, failing the test on error.
func MustLoadSurvey(t *testing.T, path string) *model.Entity {
	t.Helper()

	survey, err := LoadSurvey(path)
	if err != nil {
		t.Fatalf("load survey: %v", err)
	}
	return survey
}

// LoadSurvey parses a survey fixture without requiring testing.T so setup
// helpers can share it.
func LoadSurvey(path string) (*model.Entity, error) {
	if path == "" {
		return nil, errors.New("testsupport: survey path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read survey: %w", err)
	}
	survey, err := catalog.ParseSurvey(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse survey: %w", err)
	}
	return survey, nil
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// DiffJSON compares two JSON documents structurally and returns a cmp diff,
// empty when they are equivalent. Key order is ignored.
func DiffJSON(t *testing.T, want, got []byte) string {
	t.Helper()
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("unmarshal want: %v", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Fatalf("unmarshal got: %v", err)
	}
	return cmp.Diff(wantValue, gotValue)
}

// Keys lists the top-level keys of a JSON object in document order.
func Keys(t *testing.T, data []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	token, err := dec.Token()
	if err != nil || token != json.Delim('{') {
		t.Fatalf("expected JSON object, got %v (%v)", token, err)
	}
	var keys []string
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		keys = append(keys, token.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("skip value: %v", err)
		}
	}
	return keys
}
