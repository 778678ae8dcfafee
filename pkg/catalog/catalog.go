// Package catalog declares every SurveyJS entity variant as a composition of
// model field tables: the question base and its shapes, the third-party
// widget questions, layout blocks, pages and the survey root. Default binds
// them to the built-in constraint tables; NewRegistry binds the same types to
// a caller-supplied table.
package catalog

import (
	"slices"

	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Elements lists the registered element variants in declaration order.
// Select2 is absent because it shares the dropdown kind.
var Elements = []*model.Type{
	Question,
	Text,
	RadioGroup,
	Dropdown,
	Checkbox,
	ImagePicker,
	Boolean,
	SignaturePad,
	MultipleText,
	Comment,
	Rating,
	File,
	Matrix,
	MatrixDropdown,
	MatrixDynamic,
	TagBox,
	JQueryUIDatePicker,
	BootstrapDatePicker,
	BarRating,
	SortableList,
	NoUISlider,
	CKEditor,
	BootstrapSlider,
	EmotionsRating,
	Microphone,
	HTML,
	Image,
	Expression,
	Panel,
	PanelDynamic,
}

// Default validates against constraints.Builtin(). Types constructed through
// model.New and model.Decode use it.
var Default = MustNewRegistry(nil)

// NewRegistry registers the catalog against provider. A nil provider uses the
// built-in tables. It fails when provider rejects one of the catalog's enum
// defaults.
func NewRegistry(provider constraints.Provider) (*model.Registry, error) {
	reg := model.NewRegistry(provider)
	for _, t := range append([]*model.Type{Validator, Page, Survey}, Elements...) {
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}
	if err := reg.RegisterRenderAs(Select2, "select2"); err != nil {
		return nil, err
	}
	reg.SetFallback(model.FamilyElement, Question)
	reg.SetFallback(model.FamilyValidator, Validator)
	return reg, nil
}

// MustNewRegistry is NewRegistry, panicking on error.
func MustNewRegistry(provider constraints.Provider) *model.Registry {
	reg, err := NewRegistry(provider)
	if err != nil {
		panic(err)
	}
	return reg
}

// Kinds lists the element discriminators of the default registry.
func Kinds() []string {
	return Default.Kinds(model.FamilyElement)
}

// Lookup returns the element variant for kind, honouring a renderAs hint.
// Unlike parsing, unknown kinds are reported instead of falling back.
func Lookup(kind, renderAs string) (*model.Type, bool) {
	if !slices.Contains(Kinds(), kind) {
		return nil, false
	}
	return Default.Resolve(model.FamilyElement, kind, renderAs)
}

// NewSurvey builds a survey root. values may carry pages as entities,
// model.Values or raw JSON objects.
func NewSurvey(values model.Values) (*model.Entity, error) {
	return Default.New(Survey, values)
}

// NewPage builds a page.
func NewPage(values model.Values) (*model.Entity, error) {
	return Default.New(Page, values)
}

// NewQuestion builds the element variant registered for kind.
func NewQuestion(kind string, values model.Values) (*model.Entity, error) {
	renderAs, _ := values["render_as"].(string)
	if renderAs == "" {
		renderAs, _ = values["renderAs"].(string)
	}
	t, ok := Lookup(kind, renderAs)
	if !ok {
		return nil, &model.ConstraintError{Entity: Question.Name(), Field: "kind", Value: kind, Allowed: Kinds()}
	}
	return Default.New(t, values)
}

// ParseSurvey decodes a complete survey document.
func ParseSurvey(data []byte) (*model.Entity, error) {
	return Default.Decode(Survey, data)
}

// ParsePage decodes a single page object.
func ParsePage(data []byte) (*model.Entity, error) {
	return Default.Decode(Page, data)
}

// ParseQuestion decodes a single element, dispatching on its "type" key.
func ParseQuestion(data []byte) (*model.Entity, error) {
	return Default.DecodeFamily(model.FamilyElement, data)
}
