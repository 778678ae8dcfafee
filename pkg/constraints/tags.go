package constraints

// Tag names the semantic of a constrained field. Several fields across
// unrelated variants share a tag and therefore the same allowed-value set.
type Tag string

const (
	TitleLocations                Tag = "title_locations"
	DescriptionLocations          Tag = "description_locations"
	TextInputTypes                Tag = "text_input_types"
	TextUpdateModes               Tag = "text_update_modes"
	ChoicesByURLKeys              Tag = "choices_by_url_keys"
	ChoiceOrderValues             Tag = "choice_order_values"
	ImageContentModes             Tag = "image_content_modes"
	ImageFitValues                Tag = "image_fit_values"
	RowOrderValues                Tag = "row_order_values"
	MatrixCellTypes               Tag = "matrix_cell_types"
	MatrixColumnLayouts           Tag = "matrix_column_layouts"
	MatrixRowLocations            Tag = "matrix_row_locations"
	BarRatingThemes               Tag = "bar_rating_themes"
	ExpressionDisplayStyles       Tag = "expression_display_styles"
	ShowQuestionNumbersValues     Tag = "show_question_numbers_values"
	PanelStates                   Tag = "panel_states"
	PanelRenderModes              Tag = "panel_render_modes"
	NavButtonsVisibility          Tag = "nav_buttons_visibility"
	QuestionOrderValues           Tag = "question_order_values"
	CheckErrorsModes              Tag = "check_errors_modes"
	ClearInvisibleValues          Tag = "clear_invisible_values"
	Locales                       Tag = "locales"
	LogoPositions                 Tag = "logo_positions"
	SurveyModes                   Tag = "survey_modes"
	ProgressBarTypes              Tag = "progress_bar_types"
	QuestionDescriptionLocations  Tag = "question_description_locations"
	QuestionErrorLocations        Tag = "question_error_locations"
	QuestionPageModes             Tag = "question_page_modes"
	NavButtonsPositions           Tag = "nav_buttons_positions"
	ShowPreviewValues             Tag = "show_preview_values"
	ShowProgressBarOptions        Tag = "show_progress_bar_options"
	PageShowQuestionNumbersValues Tag = "page_show_question_numbers_values"
	ShowTimerValues               Tag = "show_timer_values"
	ShowTimerModes                Tag = "show_timer_modes"
)

var builtinValues = map[Tag][]string{
	TitleLocations:       {"default", "top", "bottom", "left", "hidden"},
	DescriptionLocations: {"default", "underInput", "underTitle"},
	TextInputTypes: {
		"color", "date", "datetime", "datetime-local", "email", "month",
		"number", "password", "range", "tel", "text", "time", "url", "week",
	},
	TextUpdateModes:     {"default", "onBlur", "onTyping"},
	ChoicesByURLKeys:    {"url", "path", "valueName", "titleName", "imageLinkName"},
	ChoiceOrderValues:   {"none", "asc", "desc", "random"},
	ImageContentModes:   {"image", "video"},
	ImageFitValues:      {"none", "contain", "cover", "fill"},
	RowOrderValues:      {"initial", "random"},
	MatrixCellTypes:     {"dropdown", "checkbox", "radiogroup", "text", "comment", "boolean", "expression", "rating"},
	MatrixColumnLayouts: {"horizontal", "vertical"},
	MatrixRowLocations:  {"default", "top", "bottom", "topBottom"},
	BarRatingThemes: {
		"fontawesome-stars", "css-stars", "bars-pill", "bars-1to10", "bars-movie",
		"bars-square", "bars-reversed", "bars-horizontal", "bootstrap-stars",
		"fontawesome-stars-o",
	},
	ExpressionDisplayStyles:   {"none", "decimal", "currency", "percent", "date"},
	ShowQuestionNumbersValues: {"default", "onpanel", "off"},
	PanelStates:               {"default", "collapsed", "expanded"},
	PanelRenderModes:          {"list", "progressTop", "progressBottom", "progressTopBottom"},
	NavButtonsVisibility:      {"inherit", "show", "hide"},
	QuestionOrderValues:       {"default", "initial", "random"},
	CheckErrorsModes:          {"onNextPage", "onValueChanged", "onComplete"},
	ClearInvisibleValues:      {"none", "onComplete", "onHidden"},
	Locales: {
		"", "en", "ar", "bg", "ca", "cs", "da", "de", "es", "et", "fa", "fi",
		"fr", "gr", "he", "hu", "id", "is", "it", "ja", "ka", "ko", "lt", "lv",
		"nl", "no", "pl", "pt", "pt-br", "ro", "ru", "sv", "sw", "tg", "th",
		"tr", "ua", "zh-cn", "zh-tw",
	},
	LogoPositions:                 {"none", "left", "right", "top", "bottom"},
	SurveyModes:                   {"edit", "display"},
	ProgressBarTypes:              {"pages", "questions", "requiredQuestions", "correctQuestions", "buttons"},
	QuestionDescriptionLocations:  {"underInput", "underTitle"},
	QuestionErrorLocations:        {"top", "bottom"},
	QuestionPageModes:             {"standard", "singlePage", "questionPerPage"},
	NavButtonsPositions:           {"none", "top", "bottom", "both"},
	ShowPreviewValues:             {"noPreview", "showAllQuestions", "showAnsweredQuestions"},
	ShowProgressBarOptions:        {"off", "top", "bottom", "both"},
	PageShowQuestionNumbersValues: {"on", "onPage", "off"},
	ShowTimerValues:               {"none", "top", "bottom"},
	ShowTimerModes:                {"all", "page", "survey"},
}
