package catalog

import (
	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Validator is a question validator. Only its kind is declared; everything
// else a validator carries (text, regex, minValue...) travels as extras.
var Validator = model.NewType("Validator", model.FamilyValidator,
	model.String("kind", "").AsRequired(),
)

// Question is the base every question and block variant composes. It is
// also the fallback for element kinds the catalog does not declare.
var Question = model.NewType("Question", model.FamilyElement,
	model.String("kind", "").AsRequired(),
	model.String("name", ""),
	model.String("title", ""),
	model.String("description", ""),
	model.Bool("is_required", false),
	model.Bool("visible", true),
	model.String("default_value", ""),
	model.String("correct_answer", ""),
	model.String("visible_if", ""),
	model.String("enable_if", ""),
	model.Bool("start_with_new_line", true),
	model.String("value_name", ""),
	model.String("required_if", ""),
	model.String("required_error_text", ""),
	model.Bool("hide_number", true),
	model.Int("indent", 0),
	model.Enum("title_location", constraints.TitleLocations, "default"),
	model.Enum("description_location", constraints.DescriptionLocations, "default"),
	model.String("width", ""),
	model.String("max_width", "initial"),
	model.String("min_width", "300px"),
	model.Bool("use_display_values_in_title", true),
	model.Entities("validators", model.FamilyValidator),
	model.URLs("extra_js"),
	model.URLs("extra_css"),
)

var Text = Question.Extend("Text",
	model.Discriminator("text"),
	model.String("place_holder", ""),
	model.Enum("input_type", constraints.TextInputTypes, "text"),
	model.Int("max_length", -1),
	model.String("max_value", ""),
	model.String("min_value", ""),
	model.Int("size", 0),
	model.String("step", ""),
	model.Enum("text_update_mode", constraints.TextUpdateModes, "default"),
	model.String("input_mask", "none"),
	model.String("input_format", ""),
	model.String("prefix", ""),
	model.Bool("auto_unmask", true),
	model.URLs("extra_js",
		"https://unpkg.com/jquery",
		"https://unpkg.com/inputmask@5.0.3/dist/inputmask.js",
	),
)

// Choices is the abstract shape shared by the choice-based questions. It is
// not registered; its kind stays required.
var Choices = Question.Extend("Choices",
	model.Int("col_count", 4),
	model.List("choices", model.ShapeStringOrObject),
	model.Object("choices_by_url", model.ShapeString).KeysIn(constraints.ChoicesByURLKeys),
	model.Enum("choices_order", constraints.ChoiceOrderValues, "none"),
	model.String("choices_enable_if", ""),
	model.String("choices_visible_if", ""),
	model.Bool("hide_if_choices_empty", true),
	model.Bool("has_other", false),
	model.String("other_text", "Other"),
	model.String("other_error_text", ""),
	model.String("other_place_holder", ""),
	model.String("none_text", "None"),
)

var RadioGroup = Choices.Extend("RadioGroup",
	model.Discriminator("radiogroup"),
	model.Bool("show_clear_button", false),
)

var Dropdown = Choices.Extend("Dropdown",
	model.Discriminator("dropdown"),
	model.Int("choices_max", 0),
	model.Int("choices_min", 0),
	model.Int("choices_step", 1),
	model.String("options_caption", ""),
	model.Bool("show_options_caption", true),
)

var Checkbox = Choices.Extend("Checkbox",
	model.Discriminator("checkbox"),
	model.Bool("has_none", false),
	model.Bool("has_select_all", false),
	model.String("select_all_text", ""),
)

var ImagePicker = Choices.Extend("ImagePicker",
	model.Discriminator("imagepicker"),
	model.Enum("content_mode", constraints.ImageContentModes, "image"),
	model.Bool("show_label", false),
	model.Int("image_height", 200),
	model.Int("image_width", 300),
	model.Enum("image_fit", constraints.ImageFitValues, "none"),
	model.Bool("multi_select", false),
)

var Boolean = Question.Extend("Boolean",
	model.Discriminator("boolean"),
	model.String("label_true", ""),
	model.String("label_false", ""),
	model.Bool("show_title", false),
	model.String("value_true", "true"),
	model.String("value_false", "false"),
)

var SignaturePad = Question.Extend("SignaturePad",
	model.Discriminator("signaturepad"),
	model.Int("height", 200),
	model.Int("width", 300),
	model.Bool("allow_clear", false),
)

var MultipleText = Question.Extend("MultipleText",
	model.Discriminator("multipletext"),
	model.Int("col_count", 2),
	model.List("items", model.ShapeStringMap),
	model.Int("item_size", 0),
)

var Comment = Question.Extend("Comment",
	model.Discriminator("comment"),
	model.Int("rows", 3),
	model.Int("cols", 50),
	model.Int("max_length", -1),
	model.String("place_holder", ""),
	model.Enum("text_update_mode", constraints.TextUpdateModes, "default"),
)

var Rating = Question.Extend("Rating",
	model.Discriminator("rating"),
	model.String("min_rate_description", ""),
	model.String("max_rate_description", ""),
	model.Int("rate_max", 5),
	model.Int("rate_min", 1),
	model.Int("rate_step", 1),
	model.List("rate_values", model.ShapeIntegerOrObject),
).WithRange("rate_min", "", "rate_max")

var File = Question.Extend("File",
	model.Discriminator("file"),
	model.Bool("show_preview", true),
	model.Bool("allow_multiple", false),
	model.Bool("store_data_as_text", true),
	model.Int("image_height", 100),
	model.Int("image_width", 150),
	model.Int("max_size", 0),
	model.String("accepted_types", ""),
	model.Bool("allow_images_preview", true),
	model.Bool("need_confirm_remove_file", false),
	model.Bool("wait_for_upload", true),
)

// Matrix is the single-choice grid. Columns, rows, cells and row order have
// no default and must be supplied.
var Matrix = Question.Extend("Matrix",
	model.Discriminator("matrix"),
	model.List("columns", model.ShapeStringMap).AsRequired(),
	model.List("rows", model.ShapeStringMap).AsRequired(),
	model.Bool("all_rows_required", false),
	model.Object("cells", model.ShapeStringMap).AsRequired(),
	model.String("columns_visible_if", ""),
	model.Enum("rows_order", constraints.RowOrderValues, "").AsRequired(),
	model.String("rows_visible_if", ""),
	model.Bool("show_header", true),
)

var MatrixDropdown = Question.Extend("MatrixDropdown", append(matrixCellFields("matrixdropdown"),
	model.String("row_title_width", ""),
	model.String("total_text", ""),
)...)

var MatrixDynamic = Question.Extend("MatrixDynamic", append(matrixCellFields("matrixdynamic"),
	model.Enum("add_row_location", constraints.MatrixRowLocations, "default"),
	model.String("add_row_text", ""),
	model.Bool("allow_add_rows", true),
	model.Bool("allow_remove_rows", true),
	model.Bool("confirm_delete", false),
	model.String("confirm_delete_text", ""),
	model.Any("default_row_value", ""),
	model.Bool("default_value_from_last_row", false),
	model.String("key_duplication_error", ""),
	model.String("key_name", ""),
	model.Int("max_row_count", 100),
	model.Int("min_row_count", 1),
	model.String("remove_row_text", ""),
	model.Int("row_count", 1),
)...).WithRange("min_row_count", "row_count", "max_row_count")

// matrixCellFields is shared by the dropdown and dynamic matrices, whose
// columns and cells hold editor definitions rather than plain text.
func matrixCellFields(kind string) []model.Field {
	return []model.Field{
		model.Discriminator(kind),
		model.List("columns", model.ShapeObject).AsRequired(),
		model.List("rows", model.ShapeStringMap).AsRequired(),
		model.Bool("all_rows_required", false),
		model.Object("cells", model.ShapeObject).AsRequired(),
		model.String("columns_visible_if", ""),
		model.Enum("rows_order", constraints.RowOrderValues, "").AsRequired(),
		model.String("rows_visible_if", ""),
		model.Bool("show_header", true),
		model.Enum("cell_type", constraints.MatrixCellTypes, "dropdown"),
		model.List("choices", model.ShapeAny),
		model.Int("column_col_count", 1),
		model.Enum("column_layout", constraints.MatrixColumnLayouts, "horizontal"),
		model.String("column_min_width", ""),
		model.Bool("horizontal_scroll", false),
		model.String("options_caption", ""),
	}
}
