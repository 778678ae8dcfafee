package catalog

import (
	"github.com/goliatone/go-surveymodel/pkg/constraints"
	"github.com/goliatone/go-surveymodel/pkg/model"
)

// Page holds an ordered element list. Pages carry no kind.
var Page = model.NewType("Page", model.FamilyPage,
	model.String("name", ""),
	model.String("title", ""),
	model.Entities("questions", model.FamilyElement),
	model.String("description", ""),
	// seconds, 0 means unlimited
	model.Int("max_time_to_finish", 0),
	model.Enum("navigation_buttons_visibility", constraints.NavButtonsVisibility, "inherit"),
	model.Enum("question_title_location", constraints.TitleLocations, "default"),
	model.Enum("questions_order", constraints.QuestionOrderValues, "default"),
)

// Survey is the document root. Only its title is mandatory.
var Survey = model.NewType("Survey", model.FamilySurvey,
	model.String("title", "").AsRequired(),
	model.Entities("pages", model.FamilyPage),
	model.List("calculated_values", model.ShapeAny),
	model.Enum("check_errors_mode", constraints.CheckErrorsModes, "onNextPage"),
	model.Enum("clear_invisible_values", constraints.ClearInvisibleValues, "onComplete"),
	model.HTML("completed_before_html", ""),
	model.HTML("completed_html", ""),
	model.List("completed_html_on_condition", model.ShapeStringMap),
	model.String("complete_text", ""),
	model.String("cookie_name", ""),
	model.String("description", ""),
	model.String("edit_text", ""),
	model.Bool("first_page_is_started", false),
	model.Bool("focus_first_question_automatic", true),
	model.Bool("focus_on_first_error", true),
	model.Bool("go_next_page_automatic", false),
	model.HTML("loading_html", ""),
	model.Enum("locale", constraints.Locales, ""),
	model.URL("logo", ""),
	model.Enum("logo_fit", constraints.ImageFitValues, "contain"),
	model.Int("logo_height", 200),
	model.Enum("logo_position", constraints.LogoPositions, "left"),
	model.Int("logo_width", 300),
	model.Int("max_others_length", 0),
	model.Int("max_text_length", 0),
	model.Int("max_time_to_finish", 0),
	model.Enum("mode", constraints.SurveyModes, "edit"),
	model.URL("navigate_to_url", ""),
	model.List("navigate_to_url_on_condition", model.ShapeStringMap),
	model.String("page_next_text", ""),
	model.String("page_prev_text", ""),
	model.String("preview_text", ""),
	model.Enum("progress_bar_type", constraints.ProgressBarTypes, "pages"),
	model.Enum("question_description_location", constraints.QuestionDescriptionLocations, "underTitle"),
	model.Enum("question_error_location", constraints.QuestionErrorLocations, "top"),
	model.Enum("questions_on_page_mode", constraints.QuestionPageModes, "standard"),
	model.Enum("questions_order", constraints.QuestionOrderValues, "initial"),
	model.String("question_start_index", ""),
	model.Enum("question_title_location", constraints.TitleLocations, "top"),
	model.String("question_title_pattern", "numTitleRequire"),
	model.String("question_title_template", ""),
	model.String("required_text", "*"),
	model.Bool("send_result_on_page_next", false),
	model.Bool("show_completed_page", false),
	model.Enum("show_navigation_buttons", constraints.NavButtonsPositions, "bottom"),
	model.Bool("show_page_numbers", true),
	model.Bool("show_page_titles", true),
	model.Bool("show_prev_button", true),
	model.Enum("show_preview_before_complete", constraints.ShowPreviewValues, "noPreview"),
	model.Enum("show_progress_bar", constraints.ShowProgressBarOptions, "off"),
	model.Enum("show_question_numbers", constraints.PageShowQuestionNumbersValues, "on"),
	model.Enum("show_timer_panel", constraints.ShowTimerValues, "none"),
	model.Enum("show_timer_panel_mode", constraints.ShowTimerModes, "all"),
	model.Bool("show_title", true),
	model.String("start_survey_text", ""),
	model.Bool("store_others_as_comment", true),
	model.String("survey_id", ""),
	model.String("survey_post_id", ""),
	model.Bool("survey_show_data_saving", true),
	model.Enum("text_update_mode", constraints.TextUpdateModes, "onBlur"),
	model.List("triggers", model.ShapeAny),
)
