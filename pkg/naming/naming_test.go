package naming

import "testing"

func TestExternal(t *testing.T) {
	cases := map[string]string{
		"kind":                        "type",
		"all_rows_required":           "isAllRowRequired",
		"expression_format":           "format",
		"max_value":                   "max",
		"min_value":                   "min",
		"is_required":                 "isRequired",
		"start_with_new_line":         "startWithNewLine",
		"title":                       "title",
		"select2_config":              "select2Config",
		"days_of_week_highlighted":    "daysOfWeekHighlighted",
		"use_display_values_in_title": "useDisplayValuesInTitle",
	}
	for internal, want := range cases {
		if got := External(internal); got != want {
			t.Errorf("External(%q) = %q, want %q", internal, got, want)
		}
	}
}

func TestInternalReversesExternal(t *testing.T) {
	names := []string{
		"kind", "all_rows_required", "expression_format", "max_value", "min_value",
		"is_required", "start_with_new_line", "select2_config", "show_progress_bar",
		"max_time_to_finish", "completed_html_on_condition",
	}
	for _, name := range names {
		external := External(name)
		if got := Internal(external); got != name {
			t.Errorf("Internal(External(%q)) = %q (external %q)", name, got, external)
		}
	}
}

func TestOverridesReturnsCopy(t *testing.T) {
	table := Overrides()
	table["kind"] = "changed"
	if got := External("kind"); got != "type" {
		t.Fatalf("override table mutated through copy: %q", got)
	}
}
