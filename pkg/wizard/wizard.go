// Package wizard scaffolds a survey from terminal prompts. It asks for a
// title, then pages and their questions, offering the element kinds of a
// registry and prompting for every field the chosen kind requires. The
// resulting Survey entity has passed the same validation as a parsed
// document.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Wizard drives the prompt session.
type Wizard struct {
	driver   PromptDriver
	registry *model.Registry
	names    func() string
}

// New returns a wizard bound to catalog.Default and the terminal unless
// options say otherwise.
func New(options ...Option) *Wizard {
	w := &Wizard{
		registry: catalog.Default,
		names:    generatedName,
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	if w.driver == nil {
		w.driver = NewTerminalDriver(nil)
	}
	return w
}

// Run asks for a survey and returns it once validated.
func (w *Wizard) Run(ctx context.Context) (*model.Entity, error) {
	kinds := w.registry.Kinds(model.FamilyElement)
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}

	title, err := w.driver.Input(ctx, InputConfig{
		Message:   "Survey title",
		Validator: notBlank,
	})
	if err != nil {
		return nil, err
	}

	var pages []*model.Entity
	for {
		page, err := w.page(ctx, len(pages)+1, kinds)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)

		more, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Add another page?"})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	return w.registry.New(catalog.Survey, model.Values{
		"title": strings.TrimSpace(title),
		"pages": pages,
	})
}

func (w *Wizard) page(ctx context.Context, index int, kinds []string) (*model.Entity, error) {
	fallback := fmt.Sprintf("page%d", index)
	name, err := w.driver.Input(ctx, InputConfig{Message: "Page name", Default: fallback})
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = fallback
	}
	title, err := w.driver.Input(ctx, InputConfig{Message: "Page title", Help: "Optional"})
	if err != nil {
		return nil, err
	}

	var questions []*model.Entity
	for {
		add, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add a question to %s?", name),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !add {
			break
		}
		question, err := w.question(ctx, kinds)
		if err != nil {
			return nil, err
		}
		if question != nil {
			questions = append(questions, question)
		}
	}

	values := model.Values{"name": name, "questions": questions}
	if title = strings.TrimSpace(title); title != "" {
		values["title"] = title
	}
	return w.registry.New(catalog.Page, values)
}

// question returns a nil entity when the answers were rejected; the reason
// has already been shown through the driver.
func (w *Wizard) question(ctx context.Context, kinds []string) (*model.Entity, error) {
	choice, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Question kind",
		Options:      kinds,
		DefaultIndex: slices.Index(kinds, "text"),
		PageSize:     12,
	})
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(kinds) {
		return nil, fmt.Errorf("wizard: kind selection %d out of range", choice)
	}
	kind := kinds[choice]
	t, ok := w.registry.Resolve(model.FamilyElement, kind, "")
	if !ok {
		return nil, fmt.Errorf("wizard: kind %q is not registered", kind)
	}

	name, err := w.driver.Input(ctx, InputConfig{Message: "Question name", Help: "Leave blank to generate one"})
	if err != nil {
		return nil, err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = w.names()
	}
	values := model.Values{"kind": kind, "name": name}

	title, err := w.driver.Input(ctx, InputConfig{Message: "Question title", Help: "Optional"})
	if err != nil {
		return nil, err
	}
	if title = strings.TrimSpace(title); title != "" {
		values["title"] = title
	}

	for _, field := range t.Fields() {
		if !field.Required || field.Fixed || field.Name == "kind" || field.Name == "name" {
			continue
		}
		value, err := w.ask(ctx, field)
		if err != nil {
			return nil, err
		}
		values[field.Name] = value
	}

	if _, ok := t.Field("is_required"); ok {
		required, err := w.driver.Confirm(ctx, ConfirmConfig{Message: "Is an answer required?"})
		if err != nil {
			return nil, err
		}
		values["is_required"] = required
	}

	question, err := w.registry.New(t, values)
	if err != nil {
		if infoErr := w.driver.Info(ctx, fmt.Sprintf("question %q skipped: %v", name, err)); infoErr != nil {
			return nil, errors.Join(err, infoErr)
		}
		return nil, nil
	}
	return question, nil
}

// ask prompts for a required field according to its declared type.
func (w *Wizard) ask(ctx context.Context, field model.Field) (any, error) {
	message := field.External
	switch field.Type {
	case model.FieldEnum:
		options, _ := w.registry.Constraints().AllowedValues(field.Constraint)
		options = slices.DeleteFunc(slices.Clone(options), func(s string) bool { return s == "" })
		if len(options) == 0 {
			break
		}
		choice, err := w.driver.Select(ctx, SelectConfig{Message: message, Options: options})
		if err != nil {
			return nil, err
		}
		if choice < 0 || choice >= len(options) {
			return nil, fmt.Errorf("wizard: %s selection %d out of range", message, choice)
		}
		return options[choice], nil
	case model.FieldBoolean:
		return w.driver.Confirm(ctx, ConfirmConfig{Message: message})
	case model.FieldInteger:
		raw, err := w.driver.Input(ctx, InputConfig{Message: message, Validator: integer})
		if err != nil {
			return nil, err
		}
		return strconv.Atoi(strings.TrimSpace(raw))
	case model.FieldObject:
		return map[string]any{}, nil
	case model.FieldStringList, model.FieldURLList, model.FieldList:
		raw, err := w.driver.Input(ctx, InputConfig{Message: message, Help: "Comma separated values"})
		if err != nil {
			return nil, err
		}
		return listItems(field, raw), nil
	}

	raw, err := w.driver.Input(ctx, InputConfig{Message: message, Validator: notBlank})
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(raw), nil
}

func listItems(field model.Field, raw string) []any {
	items := []any{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch field.Items {
		case model.ShapeStringMap, model.ShapeObject, model.ShapeStringOrObject:
			items = append(items, map[string]any{"value": part, "text": part})
		default:
			items = append(items, part)
		}
	}
	return items
}

func notBlank(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func integer(value string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return errors.New("an integer is required")
	}
	return nil
}
