package catalog

import (
	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Widget variants wrap a third-party script. Their extra_js and extra_css
// defaults list the resources the renderer must load; an explicit list
// replaces the default entirely.

const (
	jquery     = "https://unpkg.com/jquery"
	select2JS  = "https://cdnjs.cloudflare.com/ajax/libs/select2/4.0.4/js/select2.min.js"
	select2CSS = "https://cdnjs.cloudflare.com/ajax/libs/select2/4.0.4/css/select2.min.css"
	bootstrap3 = "https://unpkg.com/bootstrap@3.3.7/dist/css/bootstrap.min.css"
)

var TagBox = Dropdown.Extend("TagBox",
	model.Discriminator("tagbox"),
	model.String("select2_config", ""),
	model.URLs("extra_js", jquery, select2JS),
	model.URLs("extra_css", select2CSS),
)

var JQueryUIDatePicker = Text.Extend("JQueryUIDatePicker",
	model.Discriminator("datepicker"),
	model.String("date_format", "mm/dd/yy"),
	model.String("config", ""),
	model.String("max_date", ""),
	model.String("min_date", ""),
	model.URLs("extra_js",
		jquery,
		"https://code.jquery.com/ui/1.11.4/jquery-ui.min.js",
	),
	model.URLs("extra_css",
		"https://ajax.googleapis.com/ajax/libs/jqueryui/1.8.18/themes/smoothness/jquery-ui.css",
	),
)

var BootstrapDatePicker = Text.Extend("BootstrapDatePicker",
	model.Discriminator("bootstrapdatepicker"),
	model.String("date_format", "mm/dd/yy"),
	model.String("start_date", ""),
	model.String("end_date", ""),
	model.Bool("today_highlight", true),
	model.Int("week_start", 0),
	model.Bool("clear_button", false),
	model.Bool("auto_close", true),
	model.String("days_of_week_highlighted", ""),
	model.Bool("disable_touch_keyboard", true),
	model.URLs("extra_js",
		jquery,
		"https://unpkg.com/moment@2.24.0/moment.js",
		"https://cdnjs.cloudflare.com/ajax/libs/bootstrap-datepicker/1.9.0/js/bootstrap-datepicker.js",
	),
	model.URLs("extra_css",
		bootstrap3,
		"https://cdnjs.cloudflare.com/ajax/libs/bootstrap-datepicker/1.9.0/css/bootstrap-datepicker.min.css",
	),
)

// Select2 keeps the dropdown kind and is selected by its renderAs hint.
var Select2 = Dropdown.Extend("Select2",
	model.RenderAs("select2"),
	model.String("select2_config", ""),
	model.URLs("extra_js", jquery, select2JS),
	model.URLs("extra_css", select2CSS),
)

var BarRating = Dropdown.Extend("BarRating",
	model.Discriminator("barrating"),
	model.Enum("rating_theme", constraints.BarRatingThemes, "fontawesome-stars"),
	model.Bool("show_values", false),
	model.URLs("extra_js", jquery, "https://unpkg.com/jquery-bar-rating"),
	model.URLs("extra_css", barRatingCSS()...),
)

func barRatingCSS() []string {
	urls := []string{"https://maxcdn.bootstrapcdn.com/font-awesome/latest/css/font-awesome.min.css"}
	for _, theme := range []string{
		"bars-1to10", "bars-movie", "bars-pill", "bars-reversed", "bars-horizontal",
		"fontawesome-stars", "css-stars", "fontawesome-stars-o",
	} {
		urls = append(urls, "https://unpkg.com/jquery-bar-rating@1.2.2/dist/themes/"+theme+".css")
	}
	return urls
}

var SortableList = Checkbox.Extend("SortableList",
	model.Discriminator("sortablelist"),
	model.String("empty_text", ""),
	model.Int("max_answers_count", -1),
	model.URLs("extra_js", jquery, "https://unpkg.com/sortablejs@1.7.0/Sortable.js"),
)

var NoUISlider = Question.Extend("NoUISlider",
	model.Discriminator("nouislider"),
	model.Int("step", 1),
	model.Int("range_min", 0),
	model.Int("range_max", 100),
	model.String("pips_mode", "positions"),
	model.Ints("pips_values", 0, 25, 50, 75, 100),
	model.List("pips_text", model.ShapeIntegerOrString, 0, 25, 50, 75, 100),
	model.Int("pips_density", 5),
	model.String("orientation", "horizontal"),
	model.String("direction", "ltr"),
	model.Bool("tooltips", true),
	model.URLs("extra_js",
		jquery,
		"https://unpkg.com/nouislider@9.2.0/distribute/nouislider.js",
		"https://unpkg.com/wnumb@1.1.0",
	),
	model.URLs("extra_css", "https://unpkg.com/nouislider@9.2.0/distribute/nouislider.min.css"),
).WithRange("range_min", "", "range_max")

var CKEditor = Question.Extend("CKEditor",
	model.Discriminator("editor"),
	model.String("height", "300px"),
	model.URLs("extra_js", jquery, "https://cdn.ckeditor.com/4.14.1/standard/ckeditor.js"),
)

var BootstrapSlider = Question.Extend("BootstrapSlider",
	model.Discriminator("bootstrapslider"),
	model.Int("step", 1),
	model.Int("range_min", 0),
	model.Int("range_max", 100),
	model.URLs("extra_js",
		jquery,
		"https://cdnjs.cloudflare.com/ajax/libs/bootstrap-slider/10.0.0/bootstrap-slider.js",
	),
	model.URLs("extra_css",
		bootstrap3,
		"https://cdnjs.cloudflare.com/ajax/libs/bootstrap-slider/10.0.0/css/bootstrap-slider.css",
	),
).WithRange("range_min", "", "range_max")

var EmotionsRating = Dropdown.Extend("EmotionsRating",
	model.Discriminator("emotionsratings"),
	model.Strings("emotions", "angry", "disappointed", "meh", "happy", "inLove"),
	model.Int("emotion_size", 30),
	model.Int("emotions_count", 5),
	model.String("bg_emotion", "happy"),
	model.String("emotion_color", "FF0066"),
	model.URLs("extra_js", jquery, "https://unpkg.com/emotion-ratings@2.0.1/dist/emotion-ratings.js"),
)

var Microphone = Question.Extend("Microphone",
	model.Discriminator("microphone"),
	model.URLs("extra_js", "https://www.WebRTC-Experiment.com/RecordRTC.js"),
)
