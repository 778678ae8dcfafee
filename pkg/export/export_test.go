package export_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveymodel/pkg/catalog"
	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/export"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

func TestJSONSchemaDefinitions(t *testing.T) {
	schema, err := export.JSONSchema(catalog.Default, catalog.Survey)
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	if schema.Ref != "#/$defs/Survey" {
		t.Fatalf("unexpected root ref %q", schema.Ref)
	}
	for _, typ := range catalog.Default.Types() {
		if _, ok := schema.Definitions[typ.Name()]; !ok {
			t.Errorf("missing definition for %s", typ.Name())
		}
	}

	survey := schema.Definitions["Survey"]
	if diff := cmp.Diff([]string{"title"}, survey.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	var order []string
	for pair := survey.Properties.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	if diff := cmp.Diff([]string{"title", "pages", "calculatedValues"}, order[:3]); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}

	text := schema.Definitions["Text"]
	kind, _ := text.Properties.Get("type")
	if kind.Const != "text" {
		t.Fatalf("expected const text, got %v", kind.Const)
	}
	location, _ := text.Properties.Get("titleLocation")
	if diff := cmp.Diff([]any{"default", "top", "bottom", "left", "hidden"}, location.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if location.Default != "default" {
		t.Fatalf("expected default, got %v", location.Default)
	}

	page := schema.Definitions["Page"]
	questions, _ := page.Properties.Get("questions")
	if got, want := len(questions.Items.AnyOf), len(catalog.Elements)+1; got != want {
		t.Fatalf("expected %d element refs, got %d", want, got)
	}
	validators, _ := text.Properties.Get("validators")
	if validators.Items.Ref != "#/$defs/Validator" {
		t.Fatalf("expected single validator ref, got %+v", validators.Items)
	}
}

func TestJSONSchemaMarshals(t *testing.T) {
	schema, err := export.JSONSchema(catalog.Default, catalog.Survey)
	if err != nil {
		t.Fatalf("JSONSchema: %v", err)
	}
	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc struct {
		Defs map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	var byURL struct {
		PropertyNames struct {
			Enum []string `json:"enum"`
		} `json:"propertyNames"`
	}
	if err := json.Unmarshal(doc.Defs["Dropdown"].Properties["choicesByUrl"], &byURL); err != nil {
		t.Fatalf("choicesByUrl: %v", err)
	}
	if diff := cmp.Diff([]string{"url", "path", "valueName", "titleName", "imageLinkName"}, byURL.PropertyNames.Enum); diff != "" {
		t.Fatalf("property names mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSchemaRejectsUnregisteredRoot(t *testing.T) {
	orphan := model.NewType("Orphan", model.FamilyElement, model.Discriminator("orphan"))
	if _, err := export.JSONSchema(catalog.Default, orphan); err == nil {
		t.Fatalf("expected error for unregistered root")
	}
	if _, err := export.JSONSchema(nil, catalog.Survey); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestOpenAPIValidates(t *testing.T) {
	doc, err := export.OpenAPI(catalog.Default, nil)
	if err != nil {
		t.Fatalf("OpenAPI: %v", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("document did not validate: %v", err)
	}
	if doc.Info.Title != "Survey model" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	for _, name := range []string{"Survey", "Page", "Validator", "Question", "Select2", "PanelDynamic"} {
		if _, ok := doc.Components.Schemas[name]; !ok {
			t.Errorf("missing component %s", name)
		}
	}

	select2 := doc.Components.Schemas["Select2"].Value
	if diff := cmp.Diff([]any{"select2"}, select2.Properties["renderAs"].Value.Enum); diff != "" {
		t.Fatalf("renderAs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Question", "Choices", "Dropdown", "Select2"}, select2.Extensions["x-lineage"]); diff != "" {
		t.Fatalf("lineage mismatch (-want +got):\n%s", diff)
	}

	items := doc.Components.Schemas["Panel"].Value.Properties["elements"].Value.Items.Value
	if got, want := len(items.AnyOf), len(catalog.Elements)+1; got != want {
		t.Fatalf("expected %d element refs, got %d", want, got)
	}
	if items.AnyOf[0].Ref != "#/components/schemas/Question" {
		t.Fatalf("unexpected first ref %q", items.AnyOf[0].Ref)
	}

	rate := doc.Components.Schemas["Rating"].Value.Properties["rateMax"].Value
	if err := rate.VisitJSON(float64(10)); err != nil {
		t.Fatalf("rateMax rejected integer: %v", err)
	}
	if err := rate.VisitJSON("ten"); err == nil {
		t.Fatalf("rateMax accepted a string")
	}
}

func TestOpenAPIUsesRegistryConstraints(t *testing.T) {
	table := constraints.Builtin()
	table.Register(constraints.TitleLocations, "default", "top")
	reg, err := catalog.NewRegistry(table)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	doc, err := export.OpenAPI(reg, &openapi3.Info{Title: "Custom", Version: "2.0.0"})
	if err != nil {
		t.Fatalf("OpenAPI: %v", err)
	}
	location := doc.Components.Schemas["Text"].Value.Properties["titleLocation"].Value
	if diff := cmp.Diff([]any{"default", "top"}, location.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if err := location.VisitJSON("left"); err == nil {
		t.Fatalf("expected left to be rejected by the custom table")
	}
	if doc.Info.Version != "2.0.0" {
		t.Fatalf("info not kept: %+v", doc.Info)
	}
}
