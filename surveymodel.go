// Package surveymodel is the entry point for reading and writing SurveyJS
// survey definitions. Load and Parse return validated Survey entities from
// the catalog; Marshal writes them back in wire form.
package surveymodel

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	internalloader "github.com/goliatone/go-surveymodel/internal/loader"
	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/loader"
	"github.com/goliatone/go-surveymodel/pkg/model"
	"github.com/goliatone/go-surveymodel/pkg/sanitize"
)

// Entity aliases model.Entity so callers can stay on the root package.
type Entity = model.Entity

// Values aliases model.Values.
type Values = model.Values

// Source aliases loader.Source.
type Source = loader.Source

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...loader.LoaderOption) loader.Loader {
	return internalloader.New(loader.NewLoaderOptions(options...))
}

// Load fetches src and parses it as a survey.
func Load(ctx context.Context, src loader.Source, options ...loader.LoaderOption) (*model.Entity, error) {
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return nil, err
	}
	survey, err := catalog.ParseSurvey(doc.JSON())
	if err != nil {
		return nil, fmt.Errorf("surveymodel: %s: %w", doc.Location(), err)
	}
	return survey, nil
}

// Parse decodes a JSON or YAML survey payload.
func Parse(data []byte) (*model.Entity, error) {
	doc, err := loader.NewDocument(loader.SourceFromMemory("inline"), data)
	if err != nil {
		return nil, err
	}
	return catalog.ParseSurvey(doc.JSON())
}

// Marshal encodes an entity in wire form.
func Marshal(e *model.Entity, options ...model.EncodeOption) ([]byte, error) {
	return model.Encode(e, options...)
}

// Sanitize rewrites the HTML fields of root in place with the default policy.
func Sanitize(root *model.Entity) ([]sanitize.Change, error) {
	return sanitize.Entity(root)
}

// SourceFromFile returns a Source for a local path.
func SourceFromFile(path string) loader.Source {
	return loader.SourceFromFile(path)
}

// SourceFromFS returns a Source resolved against the WithFileSystem option.
func SourceFromFS(name string) loader.Source {
	return loader.SourceFromFS(name)
}

// ParseSource turns a path or http(s) URL into a Source.
func ParseSource(location string) (loader.Source, error) {
	return loader.ParseSource(location)
}

// WithOmitDefaults drops unset fields from Marshal output.
func WithOmitDefaults() model.EncodeOption {
	return model.WithOmitDefaults()
}

// WithIndent pretty-prints Marshal output.
func WithIndent(prefix, indent string) model.EncodeOption {
	return model.WithIndent(prefix, indent)
}

// WithFileSystem serves fs sources from files.
func WithFileSystem(files fs.FS) loader.LoaderOption {
	return loader.WithFileSystem(files)
}

// WithHTTPClient enables URL sources with client.
func WithHTTPClient(client *http.Client) loader.LoaderOption {
	return loader.WithHTTPClient(client)
}

// WithHTTPFallback enables URL sources with a default client.
func WithHTTPFallback(timeout time.Duration) loader.LoaderOption {
	return loader.WithHTTPFallback(timeout)
}

// WithLogger routes loader debug records to logger.
func WithLogger(logger *zap.Logger) loader.LoaderOption {
	return loader.WithLogger(logger)
}
