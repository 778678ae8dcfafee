package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	surveymodel "github.com/goliatone/go-surveymodel"
	"github.com/goliatone/go-surveymodel/internal/config"
	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/export"
	"github.com/goliatone/go-surveymodel/pkg/loader"
	"github.com/goliatone/go-surveymodel/pkg/model"
	"github.com/goliatone/go-surveymodel/pkg/wizard"
)

var errUsage = errors.New("usage")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	logger *zap.Logger
	driver wizard.PromptDriver
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(ctx, os.Args[1:]))
}

func (a *app) usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] <command> [args]\n\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  validate <src>...   check survey documents")
		fmt.Fprintln(out, "  format <src>        rewrite a survey in canonical JSON")
		fmt.Fprintln(out, "  schema              print the JSON Schema or OpenAPI description")
		fmt.Fprintln(out, "  kinds               list question kinds")
		fmt.Fprintln(out, "  new                 build a survey interactively")
		fmt.Fprintln(out, "\nSources are paths, http(s) URLs or - for stdin.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
	}
}

func (a *app) run(ctx context.Context, args []string) int {
	global := flag.NewFlagSet("surveymodel", flag.ContinueOnError)
	global.SetOutput(a.stderr)
	global.Usage = a.usage(global)
	envFile := global.String("env", ".env", "optional dotenv file")
	level := global.String("log-level", "", "log level (overrides SURVEYMODEL_LOG_LEVEL)")
	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err == nil && *level != "" {
		cfg.LogLevel = *level
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "surveymodel: %v\n", err)
		return 2
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(a.stderr, "surveymodel: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	a.cfg, a.logger = cfg, logger

	commands := map[string]func(context.Context, []string) error{
		"validate": a.validate,
		"format":   a.format,
		"schema":   a.schema,
		"kinds":    a.kinds,
		"new":      a.create,
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(a.stderr, "surveymodel: unknown command %q\n", rest[0])
		global.Usage()
		return 2
	}
	if err := cmd(ctx, rest[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return 2
		}
		fmt.Fprintf(a.stderr, "surveymodel: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) flags(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: surveymodel %s %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func (a *app) validate(ctx context.Context, args []string) error {
	fs := a.flags("validate", "<src>...")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	var failed int
	for _, location := range fs.Args() {
		survey, err := a.load(ctx, location)
		if err != nil {
			failed++
			leaves := flatten(err)
			a.logger.Warn("survey invalid",
				zap.String("source", location),
				zap.Int("errors", len(leaves)))
			fmt.Fprintf(a.stdout, "invalid %s\n", location)
			for _, leaf := range leaves {
				fmt.Fprintf(a.stdout, "  %v\n", leaf)
			}
			continue
		}
		a.logger.Debug("survey valid",
			zap.String("source", location),
			zap.String("kind", survey.Type().Name()),
			zap.Int("pages", len(survey.Entities("pages"))))
		fmt.Fprintf(a.stdout, "ok %s\n", location)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d surveys invalid", failed, fs.NArg())
	}
	return nil
}

func (a *app) format(ctx context.Context, args []string) error {
	fs := a.flags("format", "[flags] <src>")
	omit := fs.Bool("omit-defaults", a.cfg.OmitDefaults, "drop fields left at their default")
	clean := fs.Bool("sanitize", a.cfg.Sanitize, "sanitize HTML fields")
	indent := fs.String("indent", a.cfg.Indent, "indent string, empty for compact output")
	output := fs.String("o", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	survey, err := a.load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if *clean {
		changes, err := surveymodel.Sanitize(survey)
		if err != nil {
			return err
		}
		for _, change := range changes {
			a.logger.Info("sanitized field",
				zap.String("source", fs.Arg(0)),
				zap.String("path", change.Path),
				zap.String("field", change.Field))
		}
	}
	return a.writeSurvey(survey, *omit, *indent, *output)
}

func (a *app) schema(_ context.Context, args []string) error {
	fs := a.flags("schema", "[flags]")
	format := fs.String("format", "jsonschema", "jsonschema or openapi")
	root := fs.String("root", catalog.Survey.Name(), "root type for jsonschema output")
	output := fs.String("o", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var doc any
	switch *format {
	case "jsonschema":
		t := findType(catalog.Default, *root)
		if t == nil {
			return fmt.Errorf("unknown root type %q", *root)
		}
		schema, err := export.JSONSchema(catalog.Default, t)
		if err != nil {
			return err
		}
		doc = schema
	case "openapi":
		api, err := export.OpenAPI(catalog.Default, nil)
		if err != nil {
			return err
		}
		doc = api
	default:
		return fmt.Errorf("unknown schema format %q", *format)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	return a.write(a.indent(data), *output)
}

func (a *app) kinds(_ context.Context, args []string) error {
	fs := a.flags("kinds", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, kind := range catalog.Kinds() {
		t, _ := catalog.Lookup(kind, "")
		fmt.Fprintf(a.stdout, "%-18s %s\n", kind, t.Name())
	}
	return nil
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := a.flags("new", "[flags]")
	output := fs.String("o", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	driver := a.driver
	if driver == nil {
		driver = wizard.NewTerminalDriver(a.stderr)
	}
	survey, err := wizard.New(wizard.WithPromptDriver(driver)).Run(ctx)
	if err != nil {
		return err
	}
	return a.writeSurvey(survey, a.cfg.OmitDefaults, a.cfg.Indent, *output)
}

func (a *app) load(ctx context.Context, location string) (*model.Entity, error) {
	if location == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return surveymodel.Parse(data)
	}
	src, err := surveymodel.ParseSource(location)
	if err != nil {
		return nil, err
	}
	options := []loader.LoaderOption{surveymodel.WithLogger(a.logger)}
	if a.cfg.AllowHTTP {
		options = append(options, surveymodel.WithHTTPFallback(a.cfg.HTTPTimeout))
	}
	return surveymodel.Load(ctx, src, options...)
}

func (a *app) writeSurvey(survey *model.Entity, omit bool, indent, output string) error {
	var options []model.EncodeOption
	if omit {
		options = append(options, surveymodel.WithOmitDefaults())
	}
	if indent != "" {
		options = append(options, surveymodel.WithIndent("", indent))
	}
	data, err := surveymodel.Marshal(survey, options...)
	if err != nil {
		return err
	}
	return a.write(data, output)
}

func (a *app) indent(data []byte) []byte {
	if a.cfg.Indent == "" {
		return data
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", a.cfg.Indent); err != nil {
		return data
	}
	return buf.Bytes()
}

func (a *app) write(data []byte, output string) error {
	data = append(data, '\n')
	if output == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	a.logger.Info("survey written", zap.String("path", output), zap.Int("bytes", len(data)))
	return nil
}

func findType(reg *model.Registry, name string) *model.Type {
	for _, t := range reg.Types() {
		if strings.EqualFold(t.Name(), name) {
			return t
		}
	}
	return nil
}

// flatten expands joined errors into their leaves, looking through a single
// layer of wrapping.
func flatten(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, inner := range joined.Unwrap() {
			out = append(out, flatten(inner)...)
		}
		return out
	}
	if inner := errors.Unwrap(err); inner != nil {
		if _, ok := inner.(interface{ Unwrap() []error }); ok {
			return flatten(inner)
		}
	}
	return []error{err}
}
