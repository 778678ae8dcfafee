package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-surveymodel/internal/loader"
	pkgloader "github.com/goliatone/go-surveymodel/pkg/loader"
)

const surveyJSON = `{"title": "Demo", "pages": [{"name": "p1"}]}`

const surveyYAML = `
title: Demo
customFlag: true
pages:
  - name: p1
    questions:
      - type: text
        name: q1
`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.json")
	if err := os.WriteFile(path, []byte(surveyJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(pkgloader.NewLoaderOptions())
	doc, err := l.Load(context.Background(), pkgloader.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if doc.Format() != pkgloader.FormatJSON {
		t.Fatalf("expected json format, got %q", doc.Format())
	}
	if got := string(doc.JSON()); got != surveyJSON {
		t.Fatalf("unexpected payload %s", got)
	}
	if doc.Location() != path {
		t.Fatalf("expected location %q, got %q", path, doc.Location())
	}
}

func TestLoadFromFSConvertsYAML(t *testing.T) {
	files := fstest.MapFS{
		"surveys/demo.yaml": &fstest.MapFile{Data: []byte(surveyYAML)},
	}
	l := loader.New(pkgloader.NewLoaderOptions(pkgloader.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), pkgloader.SourceFromFS("surveys/demo.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Format() != pkgloader.FormatYAML {
		t.Fatalf("expected yaml format, got %q", doc.Format())
	}
	want := `{"title":"Demo","customFlag":true,"pages":[{"name":"p1","questions":[{"type":"text","name":"q1"}]}]}`
	if diff := cmp.Diff(want, string(doc.JSON())); diff != "" {
		t.Fatalf("canonical json mismatch (-want +got):\n%s", diff)
	}

	if _, err := l.Load(context.Background(), pkgloader.SourceFromFS("missing.yaml")); err == nil {
		t.Fatalf("expected missing fs entry to fail")
	}
}

func TestLoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(surveyJSON))
	}))
	defer server.Close()

	disabled := loader.New(pkgloader.NewLoaderOptions())
	if _, err := disabled.Load(context.Background(), pkgloader.SourceFromURL(server.URL)); err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected http to be disabled by default, got %v", err)
	}

	l := loader.New(pkgloader.NewLoaderOptions(pkgloader.WithHTTPClient(server.Client())))
	doc, err := l.Load(context.Background(), pkgloader.SourceFromURL(server.URL+"/survey"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if got := string(doc.JSON()); got != surveyJSON {
		t.Fatalf("unexpected payload %s", got)
	}

	if _, err := l.Load(context.Background(), pkgloader.SourceFromURL(server.URL+"/missing")); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := fstest.MapFS{"demo.json": &fstest.MapFile{Data: []byte(surveyJSON)}}
	l := loader.New(pkgloader.NewLoaderOptions(pkgloader.WithFileSystem(files)))
	if _, err := l.Load(ctx, pkgloader.SourceFromFS("demo.json")); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadLogsResolvedSources(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	files := fstest.MapFS{"demo.json": &fstest.MapFile{Data: []byte(surveyJSON)}}
	l := loader.New(pkgloader.NewLoaderOptions(
		pkgloader.WithFileSystem(files),
		pkgloader.WithLogger(zap.New(core)),
	))

	if _, err := l.Load(context.Background(), pkgloader.SourceFromFS("demo.json")); err != nil {
		t.Fatalf("load: %v", err)
	}
	entries := logs.FilterMessage("survey source loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["source"] != "demo.json" || fields["kind"] != "fs" || fields["format"] != "json" {
		t.Fatalf("unexpected log fields %v", fields)
	}
}

func TestLoadRejectsNilAndInvalid(t *testing.T) {
	l := loader.New(pkgloader.NewLoaderOptions(pkgloader.WithFileSystem(fstest.MapFS{
		"broken.json": &fstest.MapFile{Data: []byte(`{"title": `)},
		"empty.json":  &fstest.MapFile{Data: []byte("  ")},
	})))
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected nil source to fail")
	}
	for _, name := range []string{"broken.json", "empty.json"} {
		if _, err := l.Load(context.Background(), pkgloader.SourceFromFS(name)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
