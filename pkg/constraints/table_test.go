package constraints

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuiltinCoversEveryTag(t *testing.T) {
	table := Builtin()
	if got, want := len(table.Tags()), len(builtinValues); got != want {
		t.Fatalf("expected %d tags, got %d", want, got)
	}

	values, ok := table.AllowedValues(ChoiceOrderValues)
	if !ok {
		t.Fatalf("choice order values missing")
	}
	if diff := cmp.Diff([]string{"none", "asc", "desc", "random"}, values); diff != "" {
		t.Fatalf("choice order mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRegisterDedupesAndReplaces(t *testing.T) {
	table := NewTable()
	table.Register(PanelStates, "default", "collapsed", "default")
	values, _ := table.AllowedValues(PanelStates)
	if diff := cmp.Diff([]string{"default", "collapsed"}, values); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	table.Register(PanelStates, "open")
	if table.Contains(PanelStates, "default") {
		t.Fatalf("expected register to replace previous values")
	}
	if !table.Contains(PanelStates, "open") {
		t.Fatalf("expected replacement value to be allowed")
	}
}

func TestAllowedValuesReturnsCopy(t *testing.T) {
	table := Builtin()
	values, _ := table.AllowedValues(SurveyModes)
	values[0] = "mutated"
	if !table.Contains(SurveyModes, "edit") {
		t.Fatalf("table mutated through returned slice")
	}
}

type listProvider map[Tag][]string

func (p listProvider) AllowedValues(tag Tag) ([]string, bool) {
	values, ok := p[tag]
	return values, ok
}

func TestAllows(t *testing.T) {
	provider := listProvider{Locales: {"", "en"}}

	cases := []struct {
		name  string
		tag   Tag
		value string
		want  bool
	}{
		{name: "allowed", tag: Locales, value: "en", want: true},
		{name: "empty allowed", tag: Locales, value: "", want: true},
		{name: "rejected", tag: Locales, value: "xx", want: false},
		{name: "unknown tag", tag: SurveyModes, value: "anything", want: true},
		{name: "no tag", tag: "", value: "anything", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Allows(provider, tc.tag, tc.value); got != tc.want {
				t.Fatalf("Allows(%q, %q) = %v, want %v", tc.tag, tc.value, got, tc.want)
			}
		})
	}

	if !Allows(nil, Locales, "xx") {
		t.Fatalf("nil provider should allow everything")
	}
}
