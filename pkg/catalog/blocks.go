package catalog

import (
	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// HTML renders static markup between questions.
var HTML = Question.Extend("HTML",
	model.Discriminator("html"),
	model.HTML("html", ""),
)

// Image requires a resource link.
var Image = Question.Extend("Image",
	model.Discriminator("image"),
	model.Int("image_height", 200),
	model.Int("image_width", 300),
	model.Enum("image_fit", constraints.ImageFitValues, "none"),
	model.URL("image_link", "").AsRequired(),
	model.Enum("content_mode", constraints.ImageContentModes, "image"),
)

var Expression = Question.Extend("Expression",
	model.Discriminator("expression"),
	model.String("expression", "").AsRequired(),
	model.String("currency", "USD"),
	model.Enum("display_style", constraints.ExpressionDisplayStyles, "none"),
	model.String("expression_format", ""),
	model.Int("maximum_fraction_digits", -1),
	model.Int("minimum_fraction_digits", -1),
	model.Bool("use_grouping", true),
)

// Panel groups elements, panels included.
var Panel = Question.Extend("Panel",
	model.Discriminator("panel"),
	model.Int("inner_indent", 1),
	model.Entities("elements", model.FamilyElement),
	model.String("question_start_index", ""),
	model.Enum("question_title_location", constraints.TitleLocations, "default"),
	model.Bool("show_number", false),
	model.Enum("show_question_numbers", constraints.ShowQuestionNumbersValues, "default"),
	model.Enum("state", constraints.PanelStates, "default"),
)

// PanelDynamic repeats template_elements once per panel.
var PanelDynamic = Question.Extend("PanelDynamic",
	model.Discriminator("paneldynamic"),
	model.Int("inner_indent", 1),
	model.Enum("render_mode", constraints.PanelRenderModes, "list"),
	model.Int("panel_count", 1),
	model.String("panel_add_text", ""),
	model.String("panel_remove_text", ""),
	model.String("template_title", ""),
	model.Entities("template_elements", model.FamilyElement),
	model.Bool("allow_add_panel", true),
	model.Bool("allow_remove_panel", true),
	model.Bool("confirm_delete", false),
	model.String("confirm_delete_text", ""),
	model.Bool("default_value_from_last_panel", false),
	model.String("key_duplication_error", ""),
	model.String("key_name", ""),
	model.Int("max_panel_count", 100),
	model.Int("min_panel_count", 1),
	model.String("panel_next_text", ""),
	model.String("panel_prev_text", ""),
	model.Enum("panels_state", constraints.PanelStates, "default"),
	model.Enum("show_question_numbers", constraints.ShowQuestionNumbersValues, "default"),
	model.Bool("show_range_in_progress", true),
	model.String("template_description", ""),
	model.Enum("template_title_location", constraints.TitleLocations, "default"),
).WithRange("min_panel_count", "panel_count", "max_panel_count")
