package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgloader "github.com/goliatone/go-surveymodel/pkg/loader"
)

// Loader implements pkgloader.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	logger    *zap.Logger
}

var _ pkgloader.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgloader.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		logger:    logger,
	}
}

// Load fetches a document from src and converts it to canonical JSON.
func (l *Loader) Load(ctx context.Context, src pkgloader.Source) (pkgloader.Document, error) {
	if src == nil {
		return pkgloader.Document{}, errors.New("loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgloader.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgloader.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgloader.SourceKindURL:
		if !l.allowHTTP {
			return pkgloader.Document{}, errors.New("loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		l.logger.Debug("survey source failed",
			zap.String("source", src.Location()),
			zap.String("kind", string(src.Kind())),
			zap.Error(err),
		)
		return pkgloader.Document{}, err
	}

	doc, err := pkgloader.NewDocument(src, data)
	if err != nil {
		return pkgloader.Document{}, fmt.Errorf("%s: %w", src.Location(), err)
	}
	l.logger.Debug("survey source loaded",
		zap.String("source", src.Location()),
		zap.String("kind", string(src.Kind())),
		zap.String("format", string(doc.Format())),
		zap.Int("bytes", len(data)),
	)
	return doc, nil
}
