package wizard_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/model"
	"github.com/goliatone/go-surveymodel/pkg/wizard"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	prompts      []string
	inputPos     int
	selectPos    int
	confirmPos   int
	failInput    error
}

func (s *stubDriver) Input(_ context.Context, cfg wizard.InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.failInput != nil {
		return "", s.failInput
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg wizard.ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg wizard.SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func kindIndex(t *testing.T, kind string) int {
	t.Helper()
	idx := slices.Index(catalog.Kinds(), kind)
	if idx < 0 {
		t.Fatalf("kind %q not registered", kind)
	}
	return idx
}

func TestRunBuildsSurvey(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"Customer feedback",
			"", "Intro",                                      // page name, page title
			"", "Your email",                                 // text: name, title
			"grid", "", "quality, speed", "morning, evening", // matrix: name, title, columns, rows
		},
		selectIdx: []int{kindIndex(t, "text"), kindIndex(t, "matrix"), 1},
		confirm: []bool{
			true, true,  // add question, text is required
			true, false, // add question, matrix not required
			false,       // no more questions
			false,       // no more pages
		},
	}
	w := wizard.New(
		wizard.WithPromptDriver(driver),
		wizard.WithNameGenerator(func() string { return "q1" }),
	)

	survey, err := w.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if survey.Type() != catalog.Survey || survey.String("title") != "Customer feedback" {
		t.Fatalf("unexpected survey %s %q", survey.Type(), survey.String("title"))
	}
	pages := survey.Entities("pages")
	if len(pages) != 1 {
		t.Fatalf("expected one page, got %d", len(pages))
	}
	if pages[0].String("name") != "page1" || pages[0].String("title") != "Intro" {
		t.Fatalf("unexpected page %q %q", pages[0].String("name"), pages[0].String("title"))
	}

	questions := pages[0].Entities("questions")
	if len(questions) != 2 {
		t.Fatalf("expected two questions, got %d", len(questions))
	}
	text := questions[0]
	if text.Type() != catalog.Text || text.String("name") != "q1" || !text.Bool("is_required") {
		t.Fatalf("unexpected text question %s %q", text.Type(), text.String("name"))
	}
	matrix := questions[1]
	if matrix.Type() != catalog.Matrix || matrix.String("rows_order") != "random" {
		t.Fatalf("unexpected matrix %s %q", matrix.Type(), matrix.String("rows_order"))
	}
	rows, _ := matrix.Get("rows")
	want := []any{
		map[string]any{"value": "morning", "text": "morning"},
		map[string]any{"value": "evening", "text": "evening"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if matrix.IsSet("title") {
		t.Fatalf("blank title should stay unset")
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("unexpected messages %v", driver.infoMessages)
	}
}

func TestRunSkipsRejectedQuestion(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"Gallery",
			"photos", "",
			"hero", "", "not a url", // image: name, title, imageLink
		},
		selectIdx: []int{kindIndex(t, "image")},
		confirm:   []bool{true, false, false, false},
	}
	survey, err := wizard.New(wizard.WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	page := survey.Entities("pages")[0]
	if len(page.Entities("questions")) != 0 {
		t.Fatalf("rejected question should be skipped")
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], `"hero" skipped`) {
		t.Fatalf("expected a skip message, got %v", driver.infoMessages)
	}
	if !slices.Contains(driver.prompts, "imageLink") {
		t.Fatalf("expected a prompt for imageLink, got %v", driver.prompts)
	}
}

func TestRunGeneratesNames(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Names", "", "", "", ""},
		selectIdx: []int{kindIndex(t, "comment")},
		confirm:   []bool{true, false, false, false},
	}
	survey, err := wizard.New(wizard.WithPromptDriver(driver)).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	name := survey.Entities("pages")[0].Entities("questions")[0].String("name")
	if !strings.HasPrefix(name, "question_") || len(name) != len("question_")+12 {
		t.Fatalf("unexpected generated name %q", name)
	}
}

func TestRunPropagatesAbort(t *testing.T) {
	driver := &stubDriver{failInput: wizard.ErrAborted}
	_, err := wizard.New(wizard.WithPromptDriver(driver)).Run(context.Background())
	if !errors.Is(err, wizard.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRunRejectsOutOfRangeKind(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Survey", "", ""},
		selectIdx: []int{-1},
		confirm:   []bool{true},
	}
	_, err := wizard.New(wizard.WithPromptDriver(driver)).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestRunWithoutKinds(t *testing.T) {
	reg := model.NewRegistry(nil)
	_, err := wizard.New(wizard.WithPromptDriver(&stubDriver{}), wizard.WithRegistry(reg)).Run(context.Background())
	if !errors.Is(err, wizard.ErrNoKinds) {
		t.Fatalf("expected ErrNoKinds, got %v", err)
	}
}
